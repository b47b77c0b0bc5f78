package voronoi_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"

	"github.com/zzwx/voronoi/v2"
	"github.com/zzwx/voronoi/v2/sitegen"
)

// bruteForceCell clips the bounds by the half-planes closer to sites[i] than
// to any other site.
func bruteForceCell(sites []r2.Point, i int, b r2.Rect) []r2.Point {
	poly := []r2.Point{
		{X: b.X.Lo, Y: b.Y.Lo}, {X: b.X.Hi, Y: b.Y.Lo}, {X: b.X.Hi, Y: b.Y.Hi}, {X: b.X.Lo, Y: b.Y.Hi},
	}
	s := sites[i]
	for j, o := range sites {
		if j == i {
			continue
		}
		// keep p where (p - mid)·(o - s) <= 0
		n := o.Sub(s)
		mid := s.Add(o).Mul(0.5)
		side := func(p r2.Point) float64 { return p.Sub(mid).Dot(n) }

		var out []r2.Point
		for k, p := range poly {
			q := poly[(k+1)%len(poly)]
			sp, sq := side(p), side(q)
			if sp <= 0 {
				out = append(out, p)
			}
			if (sp < 0 && sq > 0) || (sp > 0 && sq < 0) {
				t := sp / (sp - sq)
				out = append(out, p.Add(q.Sub(p).Mul(t)))
			}
		}
		poly = out
		if len(poly) == 0 {
			break
		}
	}
	return poly
}

func TestComputeDiagram_HalfPlaneOracle(t *testing.T) {
	tests := []struct {
		name string
		cnt  int
		dist sitegen.Distribution
		seed int64
	}{
		{"uniform small", 10, sitegen.Uniform, 1},
		{"uniform", 150, sitegen.Uniform, 2},
		{"gaussian", 150, sitegen.Gaussian, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := sitegen.GenerateRandomPoints(tt.cnt, bounds, tt.dist, tt.seed)
			d := mustCompute(t, pointsToSites(points...), bounds)
			checkDiagram(t, d)

			for i, site := range d.Sites {
				if site.Duplicate {
					continue
				}
				want := math.Abs(signedArea(bruteForceCell(points, i, bounds)))
				if got := site.Area(); math.Abs(got-want) > 1e-6*math.Max(1, want) {
					t.Errorf("%v area = %v, want %v", site, got, want)
				}
				c := site.Centroid()
				for j, o := range points {
					if j != i && c.Sub(o).Norm() < c.Sub(site.Point).Norm()-1e-6 {
						t.Errorf("%v centroid %v is closer to site %d", site, c, j)
						break
					}
				}
			}
		})
	}
}

// delaunay triangulates points through the lower hull of their lifting onto
// the paraboloid z = x² + y².
func delaunay(points []r2.Point, b r2.Rect) [][3]int {
	size := math.Max(b.X.Length(), b.Y.Length())
	center := b.Center()
	lifted := make([]r3.Vector, len(points))
	var mean r3.Vector
	for i, p := range points {
		q := p.Sub(center).Mul(1 / size)
		lifted[i] = r3.Vector{X: q.X, Y: q.Y, Z: q.X*q.X + q.Y*q.Y}
		mean = mean.Add(lifted[i])
	}
	mean = mean.Mul(1 / float64(len(points)))

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(lifted, true, true, 0)

	var ret [][3]int
	for k := 0; k+2 < len(ch.Indices); k += 3 {
		tri := [3]int{ch.Indices[k], ch.Indices[k+1], ch.Indices[k+2]}
		a, bb, c := lifted[tri[0]], lifted[tri[1]], lifted[tri[2]]
		n := bb.Sub(a).Cross(c.Sub(a))
		if n.Dot(a.Sub(mean)) < 0 {
			n = n.Mul(-1)
		}
		if n.Z < 0 {
			ret = append(ret, tri)
		}
	}
	return ret
}

func TestComputeDiagram_DelaunayOracle(t *testing.T) {
	for _, seed := range []int64{11, 12, 13} {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			points := sitegen.GenerateRandomPoints(200, bounds, sitegen.Uniform, seed)
			d := mustCompute(t, pointsToSites(points...), bounds)
			triangles := delaunay(points, bounds)
			if len(triangles) == 0 {
				t.Fatalf("delaunay() returned no triangles")
			}

			type pair struct{ a, b int }
			adjacent := make(map[pair]bool)
			for _, tri := range triangles {
				for k := range 3 {
					a, b := tri[k], tri[(k+1)%3]
					adjacent[pair{a, b}] = true
					adjacent[pair{b, a}] = true
				}
			}

			// every pair of neighbouring cells is a Delaunay edge
			for _, e := range d.Edges {
				if e.IsBorder() {
					continue
				}
				if !adjacent[pair{e.Left.Index, e.Right.Index}] {
					t.Errorf("cells of %v and %v are adjacent, sites are not Delaunay neighbours", e.Left, e.Right)
				}
			}

			// every triangle circumcenter well inside the bounds is a vertex
			vertices := d.Vertices()
			inner := bounds.ExpandedByMargin(-1)
			for _, tri := range triangles {
				c, ok := triangleCircumcenter(points[tri[0]], points[tri[1]], points[tri[2]])
				if !ok || !inner.ContainsPoint(c) {
					continue
				}
				if !hasVertexNear(vertices, c, 1e-6) {
					t.Errorf("circumcenter %v of triangle %v is not a vertex", c, tri)
				}
			}
		})
	}
}

func triangleCircumcenter(a, b, c r2.Point) (r2.Point, bool) {
	bx, by := b.X-a.X, b.Y-a.Y
	cx, cy := c.X-a.X, c.Y-a.Y
	d := 2 * (bx*cy - by*cx)
	if d == 0 {
		return r2.Point{}, false
	}
	hb := bx*bx + by*by
	hc := cx*cx + cy*cy
	return r2.Point{X: a.X + (cy*hb-by*hc)/d, Y: a.Y + (bx*hc-cx*hb)/d}, true
}

func hasVertexNear(vertices []*voronoi.Point, p r2.Point, tolerance float64) bool {
	for _, v := range vertices {
		if v.Sub(p).Norm() < tolerance {
			return true
		}
	}
	return false
}
