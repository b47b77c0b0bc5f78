// MIT License: See https://github.com/pzsz/voronoi/LICENSE.md

// Author: Przemyslaw Szczepaniak (przeszczep@gmail.com)
// Port of Raymond Hill's (rhill@raymondhill.net) JavaScript implementation
// of Steven Forune's algorithm to compute Voronoi diagrams
package voronoi

import (
	"fmt"
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

const (
	// Tolerance of the geometry predicates for bounds a thousand units wide.
	defaultEps = 1e-9
	// Tolerance relative to the scale of the bounds, used unless WithEps
	// is given.
	relativeEps = defaultEps / 1000
)

// boundsEps returns the tolerance matching the scale of b: the larger of its
// sides and of the magnitude of its coordinates.
func boundsEps(b r2.Rect) float64 {
	scale := max(b.X.Length(), b.Y.Length(),
		math.Abs(b.X.Lo), math.Abs(b.X.Hi), math.Abs(b.Y.Lo), math.Abs(b.Y.Hi))
	return relativeEps * scale
}

// BorderLocation tells which side (or corner) of the bounds a point sits on.
// Y grows upward: Bottom is the minimum Y side.
type BorderLocation int

const (
	NotOnBorder BorderLocation = iota
	Left
	Bottom
	Right
	Top
	BottomLeft
	BottomRight
	TopRight
	TopLeft
)

var borderLocationNames = [...]string{
	NotOnBorder: "NotOnBorder",
	Left:        "Left",
	Bottom:      "Bottom",
	Right:       "Right",
	Top:         "Top",
	BottomLeft:  "BottomLeft",
	BottomRight: "BottomRight",
	TopRight:    "TopRight",
	TopLeft:     "TopLeft",
}

func (b BorderLocation) String() string {
	if b < 0 || int(b) >= len(borderLocationNames) {
		return fmt.Sprintf("BorderLocation(%d)", int(b))
	}
	return borderLocationNames[b]
}

// IsCorner reports whether the location is one of the four corners.
func (b BorderLocation) IsCorner() bool {
	return b >= BottomLeft
}

// Point is a vertex of the diagram. Vertices shared by several edges are
// the same *Point.
type Point struct {
	r2.Point
	BorderLocation BorderLocation
}

func newPoint(x, y float64) *Point {
	return &Point{Point: r2.Point{X: x, Y: y}}
}

func (p *Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// NewBounds creates the clipping rectangle from its lower-left and
// upper-right coordinates.
func NewBounds(minX, minY, maxX, maxY float64) r2.Rect {
	return r2.Rect{
		X: r1.Interval{Lo: minX, Hi: maxX},
		Y: r1.Interval{Lo: minY, Hi: maxY},
	}
}

func validBounds(bounds r2.Rect) bool {
	for _, v := range []float64{bounds.X.Lo, bounds.X.Hi, bounds.Y.Lo, bounds.Y.Hi} {
		if !finite(v) {
			return false
		}
	}
	return bounds.X.Lo < bounds.X.Hi && bounds.Y.Lo < bounds.Y.Hi
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func borderLocation(p r2.Point, bounds r2.Rect) BorderLocation {
	left := p.X == bounds.X.Lo
	right := p.X == bounds.X.Hi
	bottom := p.Y == bounds.Y.Lo
	top := p.Y == bounds.Y.Hi
	switch {
	case bottom && left:
		return BottomLeft
	case bottom && right:
		return BottomRight
	case top && right:
		return TopRight
	case top && left:
		return TopLeft
	case left:
		return Left
	case bottom:
		return Bottom
	case right:
		return Right
	case top:
		return Top
	}
	return NotOnBorder
}

// perimeterPosition maps a point on the border of bounds to its distance
// along the counterclockwise walk that starts at the lower-left corner.
func perimeterPosition(p r2.Point, bounds r2.Rect) float64 {
	w := bounds.X.Length()
	h := bounds.Y.Length()
	switch {
	case p.Y == bounds.Y.Lo:
		return p.X - bounds.X.Lo
	case p.X == bounds.X.Hi:
		return w + p.Y - bounds.Y.Lo
	case p.Y == bounds.Y.Hi:
		return w + h + bounds.X.Hi - p.X
	}
	return 2*w + h + bounds.Y.Hi - p.Y
}

func equalWithEpsilon(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func nearPoint(a, b r2.Point, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

// orientation is twice the signed area of the triangle a, b, c: positive
// when c lies to the left of a→b.
func orientation(a, b, c r2.Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// onSegment reports whether p lies on the segment a-b within eps.
func onSegment(p, a, b r2.Point, eps float64) bool {
	d := b.Sub(a)
	l := d.Norm()
	if l < eps {
		return nearPoint(p, a, eps)
	}
	if math.Abs(d.Cross(p.Sub(a)))/l >= eps {
		return false
	}
	t := p.Sub(a).Dot(d) / (l * l)
	return t >= -eps/l && t <= 1+eps/l
}

// circumcenter returns the center of the circle through a, b and c, with
// the origin moved to a to limit rounding. ok is false for collinear input.
func circumcenter(a, b, c r2.Point) (center r2.Point, ok bool) {
	bx := b.X - a.X
	by := b.Y - a.Y
	cx := c.X - a.X
	cy := c.Y - a.Y
	d := 2 * (bx*cy - by*cx)
	if d == 0 {
		return r2.Point{}, false
	}
	hb := bx*bx + by*by
	hc := cx*cx + cy*cy
	return r2.Point{X: (cy*hb-by*hc)/d + a.X, Y: (bx*hc-cx*hb)/d + a.Y}, true
}

// polygonArea is the signed area of the ring, positive when
// counterclockwise.
func polygonArea(ring []r2.Point) float64 {
	var a float64
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		a += p.Cross(q)
	}
	return a / 2
}

func polygonCentroid(ring []r2.Point) (r2.Point, bool) {
	var cx, cy, a float64
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		f := p.Cross(q)
		a += f
		cx += (p.X + q.X) * f
		cy += (p.Y + q.Y) * f
	}
	if a == 0 {
		return r2.Point{}, false
	}
	return r2.Point{X: cx / (3 * a), Y: cy / (3 * a)}, true
}
