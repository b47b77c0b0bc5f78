package voronoi

// classifySite records whether the site sits on a vertex or on a single edge
// of its own cell. Only border sites can, since an interior site is strictly
// inside its cell.
func classifySite(site *Site, eps float64) {
	site.eps = eps
	site.LiesOnCorner = nil
	site.LiesOnEdge = nil

	for _, p := range site.Points {
		if nearPoint(site.Point, p.Point, eps) {
			site.LiesOnCorner = p
			return
		}
	}

	var on *Edge
	for _, h := range site.Cell {
		if !onSegment(site.Point, h.Start().Point, h.End().Point, eps) {
			continue
		}
		if on != nil {
			return
		}
		on = h.Edge
	}
	site.LiesOnEdge = on
}
