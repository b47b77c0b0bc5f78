package voronoi

import (
	"math"

	"github.com/golang/geo/r2"
)

// Edge separates the cells of Left and Right. Left lies on the left of
// Start→End. Border edges have no Right site.
type Edge struct {
	Start *Point
	End   *Point
	Left  *Site
	Right *Site

	halves  [2]HalfEdge
	removed bool
}

// HalfEdge is one directed side of an Edge, as seen from Site.
type HalfEdge struct {
	Edge *Edge
	// Site owning the cell on the left of the halfedge; nil for the outer
	// side of a border edge.
	Site *Site
	// Twin is the other side of the same edge.
	Twin *HalfEdge

	angle float64
}

// Start is where the halfedge begins when walking the cell of Site.
func (h *HalfEdge) Start() *Point {
	if h == &h.Edge.halves[0] {
		return h.Edge.Start
	}
	return h.Edge.End
}

// End is where the halfedge ends when walking the cell of Site.
func (h *HalfEdge) End() *Point {
	if h == &h.Edge.halves[0] {
		return h.Edge.End
	}
	return h.Edge.Start
}

// IsBorder reports whether the edge runs along the bounds.
func (e *Edge) IsBorder() bool {
	return e.Right == nil
}

// Half returns the halfedge of e belonging to site, or nil.
func (e *Edge) Half(site *Site) *HalfEdge {
	switch site {
	case e.halves[0].Site:
		return &e.halves[0]
	case e.halves[1].Site:
		return &e.halves[1]
	}
	return nil
}

// Halves returns both sides of the edge: the Left one first.
func (e *Edge) Halves() (*HalfEdge, *HalfEdge) {
	return &e.halves[0], &e.halves[1]
}

// OtherSite returns the site across e from site.
func (e *Edge) OtherSite(site *Site) *Site {
	if site == e.Left {
		return e.Right
	} else if site == e.Right {
		return e.Left
	}
	return nil
}

// Length returns the length of the edge.
func (e *Edge) Length() float64 {
	return e.End.Sub(e.Start.Point).Norm()
}

// Mid returns the middle of the edge.
func (e *Edge) Mid() r2.Point {
	return e.Start.Add(e.End.Point).Mul(0.5)
}

// graph accumulates edges while the sweep runs. Vertex slots stay nil until
// a circle event or the clipper resolves them.
type graph struct {
	edges []*Edge
}

func (g *graph) newEdge(left, right *Site) *Edge {
	e := &Edge{Left: left, Right: right}
	e.halves[0] = HalfEdge{Edge: e, Twin: &e.halves[1]}
	e.halves[1] = HalfEdge{Edge: e, Twin: &e.halves[0]}
	g.edges = append(g.edges, e)
	if left != nil {
		left.edges = append(left.edges, e)
	}
	if right != nil {
		right.edges = append(right.edges, e)
	}
	return e
}

func (g *graph) createEdge(left, right *Site, va, vb *Point) *Edge {
	e := g.newEdge(left, right)
	if va != nil {
		g.setStart(e, left, right, va)
	}
	if vb != nil {
		g.setEnd(e, left, right, vb)
	}
	return e
}

func (g *graph) createBorderEdge(owner *Site, va, vb *Point) *Edge {
	e := g.newEdge(owner, nil)
	e.Start = va
	e.End = vb
	return e
}

// setStart fills the vertex slot of e that starts the edge as seen from
// left. The first vertex of an edge fixes its Left/Right orientation.
func (g *graph) setStart(e *Edge, left, right *Site, v *Point) {
	if e.Start == nil && e.End == nil {
		e.Start = v
		e.Left = left
		e.Right = right
	} else if e.Left == right {
		e.End = v
	} else {
		e.Start = v
	}
}

func (g *graph) setEnd(e *Edge, left, right *Site, v *Point) {
	g.setStart(e, right, left, v)
}

// orient makes Left lie on the left of Start→End and binds the halves to
// their sites.
func (e *Edge) orient() {
	if e.Right != nil && orientation(e.Start.Point, e.End.Point, e.Left.Point) < 0 {
		e.Start, e.End = e.End, e.Start
	}
	e.halves[0].Site = e.Left
	e.halves[1].Site = e.Right
	e.halves[0].angle = e.halves[0].outwardAngle()
	e.halves[1].angle = e.halves[1].outwardAngle()
}

// outwardAngle is the direction of the outward normal of the halfedge,
// used to sort the halfedges of a cell counterclockwise. Between two sites
// this is the direction from the site to its neighbour; border halfedges
// use the perpendicular of the segment.
func (h *HalfEdge) outwardAngle() float64 {
	if h.Site != nil && h.Twin.Site != nil {
		return math.Atan2(h.Twin.Site.Y-h.Site.Y, h.Twin.Site.X-h.Site.X)
	}
	d := h.End().Sub(h.Start().Point)
	return math.Atan2(-d.X, d.Y)
}
