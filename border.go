package voronoi

import (
	"math"
	"sort"

	"go.uber.org/zap"
)

// borderEdges subdivides the border of the bounds at every point where an
// edge meets it and hands each piece to the cell it closes. With no edges
// at all the border is the four sides of the bounds.
func (c *clipper) borderEdges(g *graph, edges []*Edge, sites []*Site) []*Edge {
	incident := make(map[*Point][]*Edge)
	var points []*Point
	seen := make(map[*Point]bool)
	add := func(p *Point) {
		if !seen[p] {
			seen[p] = true
			points = append(points, p)
		}
	}
	for _, p := range c.corners {
		add(p)
	}
	for _, e := range edges {
		for _, p := range [2]*Point{e.Start, e.End} {
			if p.BorderLocation == NotOnBorder {
				continue
			}
			incident[p] = append(incident[p], e)
			add(p)
		}
	}

	sort.Slice(points, func(i, j int) bool {
		return perimeterPosition(points[i].Point, c.bounds) < perimeterPosition(points[j].Point, c.bounds)
	})

	ret := make([]*Edge, 0, len(points))
	for i, a := range points {
		b := points[(i+1)%len(points)]
		e := g.createBorderEdge(borderOwner(a, b, incident, sites), a, b)
		e.orient()
		ret = append(ret, e)
	}

	c.log.Debug("border subdivided", zap.Int("segments", len(ret)))
	return ret
}

// borderOwner finds the site whose cell holds the border segment a-b: the
// nearest one among the cells meeting at its ends, or among all sites when
// no edge reaches the segment.
func borderOwner(a, b *Point, incident map[*Point][]*Edge, sites []*Site) *Site {
	mid := a.Add(b.Point).Mul(0.5)
	var owner *Site
	best := math.Inf(1)
	consider := func(s *Site) {
		if s == nil {
			return
		}
		d := s.Sub(mid)
		if dist := d.Dot(d); dist < best {
			owner, best = s, dist
		}
	}
	for _, e := range incident[a] {
		consider(e.Left)
		consider(e.Right)
	}
	for _, e := range incident[b] {
		consider(e.Left)
		consider(e.Right)
	}
	if owner == nil {
		for _, s := range sites {
			consider(s)
		}
	}
	return owner
}
