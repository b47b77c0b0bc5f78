// MIT License: See https://github.com/pzsz/voronoi/LICENSE.md

// Author: Przemyslaw Szczepaniak (przeszczep@gmail.com)
// Port of Raymond Hill's (rhill@raymondhill.net) JavaScript implementation
// of Steven Fortune's algorithm to compute Voronoi diagrams

package voronoi

import (
	"fmt"

	"github.com/golang/geo/r2"
	"go.uber.org/zap"
)

// Diagram is a Voronoi diagram clipped to Bounds.
type Diagram struct {
	// Sites in input order, duplicates included.
	Sites []*Site
	// Edges between cells first, then the border edges when enabled.
	Edges []*Edge
	// Bounds the diagram is clipped to.
	Bounds r2.Rect

	opts DiagramOptions
}

// ComputeDiagram computes the Voronoi diagram of sites clipped to bounds.
// The cells are written into the sites themselves, which must all lie
// within bounds and be distinct values. A site within eps of an earlier one
// is marked Duplicate and gets no cell.
func ComputeDiagram(sites []*Site, bounds r2.Rect, setters ...DiagramOption) (*Diagram, error) {
	opts := defaultOptions()
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	if !validBounds(bounds) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBounds, bounds)
	}
	opts = opts.forBounds(bounds)

	given := make(map[*Site]int, len(sites))
	for i, site := range sites {
		if site == nil {
			return nil, fmt.Errorf("%w: site %d is nil", ErrInvalidSite, i)
		}
		if j, ok := given[site]; ok {
			return nil, fmt.Errorf("%w: site %d is site %d given again", ErrInvalidSite, i, j)
		}
		given[site] = i
		if !finite(site.X) || !finite(site.Y) {
			return nil, fmt.Errorf("%w: site %d at (%v, %v)", ErrInvalidSite, i, site.X, site.Y)
		}
		if !bounds.ContainsPoint(site.Point) {
			return nil, fmt.Errorf("%w: site %d at (%v, %v) outside %v", ErrSiteOutOfBounds, i, site.X, site.Y, bounds)
		}
	}

	unique := make([]*Site, 0, len(sites))
	seen := newPointGrid[*Site](bounds, opts.Eps)
	for i, site := range sites {
		*site = Site{Point: site.Point, Index: i}
		if first, ok := seen.find(site.Point); ok {
			site.Duplicate = true
			opts.Logger.Debug("duplicate site",
				zap.Stringer("site", site),
				zap.Stringer("first", first),
			)
			continue
		}
		seen.add(site.Point, site)
		unique = append(unique, site)
	}

	s := newSweeper(opts)
	s.sweep(unique)

	c := newClipper(bounds, opts)
	edges := c.clipEdges(s.graph.edges)

	if opts.BorderEdges {
		edges = append(edges, c.borderEdges(&s.graph, edges, unique)...)
		for _, site := range unique {
			closeCell(site)
		}
	} else {
		for _, site := range unique {
			openCell(site)
		}
	}
	for _, site := range unique {
		classifySite(site, opts.Eps)
	}
	s.setPhase(phaseDone)

	opts.Logger.Debug("diagram computed",
		zap.Int("sites", len(sites)),
		zap.Int("duplicates", len(sites)-len(unique)),
		zap.Int("edges", len(edges)),
	)

	return &Diagram{
		Sites:  sites,
		Edges:  edges,
		Bounds: bounds,
		opts:   opts,
	}, nil
}

// Vertices returns every distinct vertex of the diagram, in the order the
// edges first reach them.
func (d *Diagram) Vertices() []*Point {
	var ret []*Point
	seen := make(map[*Point]bool)
	for _, e := range d.Edges {
		for _, p := range [2]*Point{e.Start, e.End} {
			if !seen[p] {
				seen[p] = true
				ret = append(ret, p)
			}
		}
	}
	return ret
}

// VertexEdges returns the edges meeting at every vertex.
func (d *Diagram) VertexEdges() map[*Point][]*Edge {
	ret := make(map[*Point][]*Edge)
	for _, e := range d.Edges {
		ret[e.Start] = append(ret[e.Start], e)
		ret[e.End] = append(ret[e.End], e)
	}
	return ret
}
