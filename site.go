package voronoi

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Site is an input point together with the cell computed for it.
type Site struct {
	r2.Point

	// Index is the position of the site in the input slice.
	Index int

	// Duplicate marks a site within eps of an earlier one. Duplicates own
	// no cell.
	Duplicate bool

	// Cell holds the halfedges bounding the cell, counterclockwise.
	Cell []*HalfEdge

	// Points are the cell vertices, in the order of Cell.
	Points []*Point

	// LiesOnEdge is the single cell edge the site lies on, if any.
	LiesOnEdge *Edge

	// LiesOnCorner is the cell vertex the site coincides with, if any.
	LiesOnCorner *Point

	edges []*Edge
	// tolerance of the diagram the cell belongs to
	eps float64
}

// NewSite creates a site at x, y.
func NewSite(x, y float64) *Site {
	return &Site{Point: r2.Point{X: x, Y: y}}
}

// SitesFromPoints wraps every point into a new site.
func SitesFromPoints(points []r2.Point) []*Site {
	sites := make([]*Site, len(points))
	for i, p := range points {
		sites[i] = &Site{Point: p}
	}
	return sites
}

func (s *Site) String() string {
	return fmt.Sprintf("site#%d(%v, %v)", s.Index, s.X, s.Y)
}

// Neighbors returns the sites sharing a cell edge with s, in cell order.
func (s *Site) Neighbors() []*Site {
	var ret []*Site
	for _, h := range s.Cell {
		if n := h.Twin.Site; n != nil {
			ret = append(ret, n)
		}
	}
	return ret
}

func (s *Site) ring() []r2.Point {
	ring := make([]r2.Point, len(s.Points))
	for i, p := range s.Points {
		ring[i] = p.Point
	}
	return ring
}

// Area is the area of the cell.
func (s *Site) Area() float64 {
	if len(s.Points) < 3 {
		return 0
	}
	return math.Abs(polygonArea(s.ring()))
}

// Centroid returns the center of mass of the cell, or the site itself when
// the cell is degenerate.
func (s *Site) Centroid() r2.Point {
	if len(s.Points) < 3 {
		return s.Point
	}
	if c, ok := polygonCentroid(s.ring()); ok {
		return c
	}
	return s.Point
}

// Contains reports whether p is inside the cell or on its boundary.
func (s *Site) Contains(p r2.Point) bool {
	if len(s.Points) < 3 {
		return false
	}
	for i, a := range s.Points {
		b := s.Points[(i+1)%len(s.Points)]
		if orientation(a.Point, b.Point, p) < -s.eps*b.Sub(a.Point).Norm() {
			return false
		}
	}
	return true
}
