package voronoi

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var testBounds = NewBounds(0, 0, 1000, 1000)

func TestBorderLocation(t *testing.T) {
	tests := []struct {
		p    r2.Point
		want BorderLocation
	}{
		{r2.Point{X: 500, Y: 500}, NotOnBorder},
		{r2.Point{X: 0, Y: 500}, Left},
		{r2.Point{X: 500, Y: 0}, Bottom},
		{r2.Point{X: 1000, Y: 500}, Right},
		{r2.Point{X: 500, Y: 1000}, Top},
		{r2.Point{X: 0, Y: 0}, BottomLeft},
		{r2.Point{X: 1000, Y: 0}, BottomRight},
		{r2.Point{X: 1000, Y: 1000}, TopRight},
		{r2.Point{X: 0, Y: 1000}, TopLeft},
		{r2.Point{X: 1e-12, Y: 500}, NotOnBorder},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := borderLocation(tt.p, testBounds); got != tt.want {
				t.Errorf("borderLocation(%v) = %v, want %v", tt.p, got, tt.want)
			}
			if got, want := tt.want.IsCorner(), tt.want >= BottomLeft; got != want {
				t.Errorf("%v.IsCorner() = %v, want %v", tt.want, got, want)
			}
		})
	}
}

func TestBorderLocation_String(t *testing.T) {
	if got := BorderLocation(42).String(); got != "BorderLocation(42)" {
		t.Errorf("BorderLocation(42).String() = %v, want BorderLocation(42)", got)
	}
}

func TestPerimeterPosition(t *testing.T) {
	bounds := NewBounds(0, 0, 4, 2)
	points := []r2.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 1}, {X: 4, Y: 2},
		{X: 3, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 1},
	}
	want := []float64{0, 1, 4, 5, 6, 7, 10, 11}
	got := make([]float64, len(points))
	for i, p := range points {
		got[i] = perimeterPosition(p, bounds)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("perimeterPosition mismatch (-want +got):\n%s", diff)
	}
}

func TestValidBounds(t *testing.T) {
	tests := []struct {
		name   string
		bounds r2.Rect
		want   bool
	}{
		{"unit", NewBounds(0, 0, 1, 1), true},
		{"negative", NewBounds(-10, -5, -1, -2), true},
		{"empty width", NewBounds(1, 0, 1, 1), false},
		{"inverted", NewBounds(0, 1, 1, 0), false},
		{"infinite", NewBounds(0, 0, math.Inf(1), 1), false},
		{"nan", NewBounds(math.NaN(), 0, 1, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validBounds(tt.bounds); got != tt.want {
				t.Errorf("validBounds(%v) = %v, want %v", tt.bounds, got, tt.want)
			}
		})
	}
}

func TestOnSegment(t *testing.T) {
	a := r2.Point{X: 0, Y: 0}
	b := r2.Point{X: 10, Y: 0}
	tests := []struct {
		name string
		p    r2.Point
		want bool
	}{
		{"middle", r2.Point{X: 5, Y: 0}, true},
		{"start", a, true},
		{"end", b, true},
		{"within eps", r2.Point{X: 5, Y: 1e-12}, true},
		{"off the line", r2.Point{X: 5, Y: 1e-3}, false},
		{"past the end", r2.Point{X: 10.1, Y: 0}, false},
		{"before the start", r2.Point{X: -0.1, Y: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := onSegment(tt.p, a, b, defaultEps); got != tt.want {
				t.Errorf("onSegment(%v, %v, %v) = %v, want %v", tt.p, a, b, got, tt.want)
			}
		})
	}
}

func TestCircumcenter(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c r2.Point
		want    r2.Point
		wantOK  bool
	}{
		{"right triangle", r2.Point{X: 0, Y: 0}, r2.Point{X: 2, Y: 0}, r2.Point{X: 0, Y: 2}, r2.Point{X: 1, Y: 1}, true},
		{"plus shape", r2.Point{X: 300, Y: 500}, r2.Point{X: 500, Y: 300}, r2.Point{X: 700, Y: 500}, r2.Point{X: 500, Y: 500}, true},
		{"collinear", r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 1}, r2.Point{X: 2, Y: 2}, r2.Point{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := circumcenter(tt.a, tt.b, tt.c)
			if ok != tt.wantOK {
				t.Fatalf("circumcenter(%v, %v, %v) ok = %v, want %v", tt.a, tt.b, tt.c, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("circumcenter mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPolygonAreaCentroid(t *testing.T) {
	ccw := []r2.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 2}, {X: 0, Y: 2}}
	if got := polygonArea(ccw); got != 8 {
		t.Errorf("polygonArea(ccw) = %v, want 8", got)
	}
	cw := []r2.Point{ccw[3], ccw[2], ccw[1], ccw[0]}
	if got := polygonArea(cw); got != -8 {
		t.Errorf("polygonArea(cw) = %v, want -8", got)
	}
	c, ok := polygonCentroid(ccw)
	if !ok {
		t.Fatalf("polygonCentroid(ccw) ok = false")
	}
	if diff := cmp.Diff(r2.Point{X: 2, Y: 1}, c); diff != "" {
		t.Errorf("polygonCentroid mismatch (-want +got):\n%s", diff)
	}
	if _, ok := polygonCentroid([]r2.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}); ok {
		t.Errorf("polygonCentroid(degenerate) ok = true, want false")
	}
}
