package sitegen

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"

	"github.com/zzwx/voronoi/v2"
)

var bounds = voronoi.NewBounds(0, 0, 1000, 500)

func TestGenerateRandomPoints_Length(t *testing.T) {
	tests := []struct {
		name string
		cnt  int
		dist Distribution
		seed int64
	}{
		{"zero points", 0, Uniform, 42},
		{"one point", 1, Uniform, 42},
		{"ten points", 10, Gaussian, 0},
		{"hundred points", 100, Uniform, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := GenerateRandomPoints(tt.cnt, bounds, tt.dist, tt.seed)
			if len(points) != tt.cnt {
				t.Errorf("GenerateRandomPoints(%v, %v, %v) len = %v, want %v", tt.cnt, tt.dist, tt.seed,
					len(points), tt.cnt)
			}
		})
	}
}

func TestGenerateRandomPoints_InBounds(t *testing.T) {
	for _, dist := range []Distribution{Uniform, Gaussian} {
		t.Run(dist.String(), func(t *testing.T) {
			points := GenerateRandomPoints(1000, bounds, dist, 7)
			for i, p := range points {
				if !bounds.ContainsPoint(p) {
					t.Errorf("GenerateRandomPoints(1000, %v, 7)[%d] = %v, outside %v", dist, i, p, bounds)
				}
			}
		})
	}
}

func TestGenerateRandomPoints_Reproducible(t *testing.T) {
	a := GenerateRandomPoints(50, bounds, Gaussian, 3)
	b := GenerateRandomPoints(50, bounds, Gaussian, 3)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("GenerateRandomPoints with the same seed mismatch (-first +second):\n%s", diff)
	}

	c := GenerateRandomPoints(50, bounds, Gaussian, 4)
	if cmp.Equal(a, c) {
		t.Errorf("GenerateRandomPoints with seeds 3 and 4 returned the same points")
	}
}

func TestGenerateRandomSites(t *testing.T) {
	points := GenerateRandomPoints(20, bounds, Uniform, 11)
	sites := GenerateRandomSites(20, bounds, Uniform, 11)
	got := make([]r2.Point, len(sites))
	for i, s := range sites {
		got[i] = s.Point
	}
	if diff := cmp.Diff(points, got); diff != "" {
		t.Errorf("GenerateRandomSites mismatch (-want +got):\n%s", diff)
	}
}

func TestDistribution_String(t *testing.T) {
	tests := []struct {
		dist Distribution
		want string
	}{
		{Uniform, "uniform"},
		{Gaussian, "gaussian"},
		{Distribution(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.dist.String(); got != tt.want {
			t.Errorf("Distribution(%d).String() = %v, want %v", int(tt.dist), got, tt.want)
		}
	}
}
