// Copyright 2013 Przemyslaw Szczepaniak.
// MIT License: See https://github.com/gorhill/Javascript-Voronoi/LICENSE.md

// Author: Przemyslaw Szczepaniak (przeszczep@gmail.com)
// Port of Raymond Hill's (rhill@raymondhill.net) JavaScript implementation
// of Steven Fortune's algorithm to compute Voronoi diagrams
package voronoi

import (
	"sort"
)

// HalfEdges sorts by the angle of the outward normal.
type HalfEdges []*HalfEdge

func (s HalfEdges) Len() int           { return len(s) }
func (s HalfEdges) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s HalfEdges) Less(i, j int) bool { return s[i].angle < s[j].angle }

// halves returns the halfedges of the site that survived clipping.
func (s *Site) halves() []*HalfEdge {
	var ret []*HalfEdge
	for _, e := range s.edges {
		if !e.removed {
			ret = append(ret, e.Half(s))
		}
	}
	return ret
}

// closeCell links the halfedges of the site into one closed
// counterclockwise loop, starting at the lowest then leftmost vertex.
func closeCell(site *Site) {
	halves := site.halves()
	if len(halves) == 0 {
		return
	}

	next := make(map[*Point]*HalfEdge, len(halves))
	first := halves[0]
	for _, h := range halves {
		start := h.Start()
		_, dup := next[start]
		assertf(!dup, "cell of %v has two halfedges leaving %v", site, start)
		next[start] = h
		if lowerLeft(start, first.Start()) {
			first = h
		}
	}

	cell := make([]*HalfEdge, 0, len(halves))
	points := make([]*Point, 0, len(halves))
	h := first
	for {
		cell = append(cell, h)
		points = append(points, h.Start())
		n, ok := next[h.End()]
		assertf(ok, "cell of %v does not close at %v", site, h.End())
		if n == first {
			break
		}
		assertf(len(cell) < len(halves), "cell of %v loops without reaching its first halfedge", site)
		h = n
	}
	assertf(len(cell) == len(halves), "cell of %v leaves %d halfedges out of its boundary", site, len(halves)-len(cell))

	site.Cell = cell
	site.Points = points
}

// openCell orders the halfedges of a cell that was not closed by border
// edges. Points follow the halfedges; where two consecutive halfedges don't
// meet, both ends are kept and the gap is placed at the end.
func openCell(site *Site) {
	halves := site.halves()
	if len(halves) == 0 {
		return
	}
	sort.Sort(HalfEdges(halves))

	n := len(halves)
	start := 0
	for i := range n {
		prev := halves[(i+n-1)%n]
		if prev.End() != halves[i].Start() {
			start = i
			break
		}
	}
	cell := make([]*HalfEdge, 0, n)
	cell = append(cell, halves[start:]...)
	cell = append(cell, halves[:start]...)

	points := make([]*Point, 0, n+1)
	for i, h := range cell {
		points = append(points, h.Start())
		if cell[(i+1)%n].Start() != h.End() {
			points = append(points, h.End())
		}
	}

	site.Cell = cell
	site.Points = points
}

func lowerLeft(a, b *Point) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
