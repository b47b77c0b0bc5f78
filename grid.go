package voronoi

import (
	"math"

	"github.com/golang/geo/r2"
)

// pointGrid buckets values by position to find the one lying within eps of
// a point without comparing against every other.
type pointGrid[T any] struct {
	origin r2.Point
	cell   float64
	eps    float64
	cells  map[[2]int64][]gridEntry[T]
}

type gridEntry[T any] struct {
	p r2.Point
	v T
}

func newPointGrid[T any](bounds r2.Rect, eps float64) *pointGrid[T] {
	// cells no smaller than eps keep near points in adjacent cells, and no
	// smaller than a 1e-15 share of the bounds keep the keys in range
	size := math.Max(bounds.X.Length(), bounds.Y.Length())
	return &pointGrid[T]{
		origin: bounds.Lo(),
		cell:   max(eps, size*1e-15),
		eps:    eps,
		cells:  make(map[[2]int64][]gridEntry[T]),
	}
}

func (g *pointGrid[T]) key(p r2.Point) [2]int64 {
	return [2]int64{
		int64(math.Floor((p.X - g.origin.X) / g.cell)),
		int64(math.Floor((p.Y - g.origin.Y) / g.cell)),
	}
}

// find returns a value added within eps of p.
func (g *pointGrid[T]) find(p r2.Point) (T, bool) {
	k := g.key(p)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for _, e := range g.cells[[2]int64{k[0] + dx, k[1] + dy}] {
				if nearPoint(e.p, p, g.eps) {
					return e.v, true
				}
			}
		}
	}
	var zero T
	return zero, false
}

func (g *pointGrid[T]) add(p r2.Point, v T) {
	k := g.key(p)
	g.cells[k] = append(g.cells[k], gridEntry[T]{p: p, v: v})
}
