package voronoi

import (
	"math"

	"github.com/golang/geo/r2"
)

// beachSection is one parabolic arc of the beach line.
type beachSection struct {
	rbNode
	site   *Site
	circle *event
	// edge traced by the breakpoint on the left of this arc
	edge *Edge
}

// leftBreakPoint returns the x of the breakpoint between arc and its left
// neighbour for the given directrix.
func leftBreakPoint(arc *beachSection, directrix float64) float64 {
	// http://en.wikipedia.org/wiki/Parabola
	// http://en.wikipedia.org/wiki/Quadratic_equation
	// The origin is moved to the right focus to reduce rounding errors.
	rfocx := arc.site.X
	rfocy := arc.site.Y
	pby2 := rfocy - directrix
	// degenerate parabola: the focus is on the directrix
	if pby2 == 0 {
		return rfocx
	}
	lArc := arc.previous
	if lArc == nil {
		return math.Inf(-1)
	}
	lfocx := lArc.site.X
	lfocy := lArc.site.Y
	plby2 := lfocy - directrix
	if plby2 == 0 {
		return lfocx
	}
	hl := lfocx - rfocx
	aby2 := 1/pby2 - 1/plby2
	b := hl / plby2
	if aby2 != 0 {
		return (-b+math.Sqrt(b*b-2*aby2*(hl*hl/(-2*plby2)-lfocy+plby2/2+rfocy-pby2/2)))/aby2 + rfocx
	}
	// both parabolas have the same distance to the directrix
	return (rfocx + lfocx) / 2
}

// rightBreakPoint returns the x of the breakpoint between arc and its right
// neighbour for the given directrix.
func rightBreakPoint(arc *beachSection, directrix float64) float64 {
	if rArc := arc.next; rArc != nil {
		return leftBreakPoint(rArc, directrix)
	}
	if arc.site.Y == directrix {
		return arc.site.X
	}
	return math.Inf(1)
}

// findArcAbove locates the arcs surrounding x at the given directrix. When
// x falls strictly inside an arc, lArc == rArc. When x falls on a
// breakpoint, lArc and rArc are the arcs on either side of it. rArc is nil
// when x lies past the last arc.
func (s *sweeper) findArcAbove(x, directrix float64) (lArc, rArc *beachSection) {
	eps := s.eps
	node := s.beachline.root
	for node != nil {
		dxl := leftBreakPoint(node, directrix) - x
		if dxl > eps {
			// x falls before the left edge of the arc
			node = node.left
			continue
		}
		dxr := x - rightBreakPoint(node, directrix)
		if dxr > eps {
			// x falls after the right edge of the arc
			if node.right == nil {
				return node, nil
			}
			node = node.right
			continue
		}
		switch {
		case dxl > -eps:
			// exactly on the left edge
			return node.previous, node
		case dxr > -eps:
			// exactly on the right edge
			return node, node.next
		default:
			return node, node
		}
	}
	return nil, nil
}

// insertSite adds the arc of site to the beach line.
func (s *sweeper) insertSite(site *Site) {
	lArc, rArc := s.findArcAbove(site.X, site.Y)

	newArc := &beachSection{site: site}
	s.beachline.insertSuccessor(lArc, newArc)

	switch {
	case lArc == nil && rArc == nil:
		// first arc of the beach line: no transition yet

	case lArc == rArc:
		// the new arc splits an existing one: one new transition appears,
		// and both halves of the split arc may now be collapsing
		s.detachCircleEvent(lArc)

		rArc = &beachSection{site: lArc.site}
		s.beachline.insertSuccessor(newArc, rArc)

		newArc.edge = s.graph.createEdge(lArc.site, site, nil, nil)
		rArc.edge = newArc.edge

		s.attachCircleEvent(lArc)
		s.attachCircleEvent(rArc)

	case rArc == nil:
		// the new arc is the rightmost one: all arcs so far share the y of
		// the site
		newArc.edge = s.graph.createEdge(lArc.site, site, nil, nil)

	case lArc == nil:
		// the site falls on the left end of the leftmost arc, which is
		// degenerate at this y: the new arc takes its place as the leftmost
		s.detachCircleEvent(rArc)
		rArc.edge = s.graph.createEdge(site, rArc.site, nil, nil)
		s.attachCircleEvent(rArc)

	default:
		// the site falls exactly on the breakpoint between lArc and rArc:
		// that transition ends at the circumcenter of the three sites and
		// two new transitions start from it
		s.detachCircleEvent(lArc)
		s.detachCircleEvent(rArc)

		center, ok := circumcenter(lArc.site.Point, site.Point, rArc.site.Point)
		assertf(ok, "site %v on the breakpoint of collinear sites %v and %v", site, lArc.site, rArc.site)
		vertex := newPoint(center.X, center.Y)
		s.vertices++

		s.graph.setStart(rArc.edge, lArc.site, rArc.site, vertex)

		newArc.edge = s.graph.createEdge(lArc.site, site, nil, vertex)
		rArc.edge = s.graph.createEdge(site, rArc.site, nil, vertex)

		s.attachCircleEvent(lArc)
		s.attachCircleEvent(rArc)
	}
}

// removeArc collapses the arc whose circle event fired, together with any
// neighbour collapsing at the same vertex.
func (s *sweeper) removeArc(circle *event) {
	arc := circle.arc
	arc.circle = nil
	center := circle.center
	vertex := newPoint(center.X, center.Y)
	lArc := arc.previous
	rArc := arc.next

	s.detachBeachSection(arc)

	// More than one arc vanishes at this vertex when more than three sites
	// are cocircular. Neighbours keep collapsing as long as their triplet
	// meets at the vertex, whether their own event is pending or not. A
	// collapsing arc always has a neighbour on both sides.
	var left []*beachSection
	right := []*beachSection{arc}
	for {
		if s.collapsesAt(lArc, center) {
			left = append(left, lArc)
			previous := lArc.previous
			s.detachBeachSection(lArc)
			lArc = previous
			continue
		}
		if s.collapsesAt(rArc, center) {
			right = append(right, rArc)
			next := rArc.next
			s.detachBeachSection(rArc)
			rArc = next
			continue
		}
		break
	}
	s.detachCircleEvent(lArc)
	s.detachCircleEvent(rArc)

	// left was collected right to left
	arcs := make([]*beachSection, 0, len(left)+len(right)+2)
	arcs = append(arcs, lArc)
	for i := len(left) - 1; i >= 0; i-- {
		arcs = append(arcs, left[i])
	}
	arcs = append(arcs, right...)
	arcs = append(arcs, rArc)

	// every transition between the collapsed arcs ends at the vertex
	for i := 1; i < len(arcs); i++ {
		s.graph.setStart(arcs[i].edge, arcs[i-1].site, arcs[i].site, vertex)
	}

	// the surviving neighbours are now adjacent: a new edge starts here
	rArc.edge = s.graph.createEdge(lArc.site, rArc.site, nil, vertex)

	s.vertices++
	s.attachCircleEvent(lArc)
	s.attachCircleEvent(rArc)
}

// collapsesAt reports whether arc shrinks to nothing at center, given its
// current neighbours.
func (s *sweeper) collapsesAt(arc *beachSection, center r2.Point) bool {
	if arc == nil {
		return false
	}
	if arc.circle != nil && nearPoint(center, arc.circle.center, s.eps) {
		return true
	}
	c, _, ok := s.circleOf(arc)
	return ok && nearPoint(center, c, s.eps)
}

func (s *sweeper) detachBeachSection(arc *beachSection) {
	s.detachCircleEvent(arc)
	s.beachline.removeNode(arc)
}

// attachCircleEvent schedules the collapse of arc if its neighbours make it
// shrink.
func (s *sweeper) attachCircleEvent(arc *beachSection) {
	center, y, ok := s.circleOf(arc)
	if !ok {
		return
	}
	ev := &event{
		arc:    arc,
		x:      center.X,
		y:      y,
		center: center,
	}
	arc.circle = ev
	s.queue.push(ev)
	s.circleEvents++
}

// circleOf returns the circle through the sites of arc and its neighbours,
// and the y at which the sweep reaches its top, when arc is shrinking.
func (s *sweeper) circleOf(arc *beachSection) (center r2.Point, y float64, ok bool) {
	lArc := arc.previous
	rArc := arc.next
	if lArc == nil || rArc == nil {
		return r2.Point{}, 0, false
	}
	lSite := lArc.site
	cSite := arc.site
	rSite := rArc.site

	// the same site on both sides can't converge
	if lSite == rSite {
		return r2.Point{}, 0, false
	}

	// Circumscribed circle of the triplet, origin at cSite. The top of the
	// circle is the event, its center a vertex of the diagram.
	bx := cSite.X
	by := cSite.Y
	ax := lSite.X - bx
	ay := lSite.Y - by
	cx := rSite.X - bx
	cy := rSite.Y - by

	// If l→c→r turn clockwise (or are collinear) the middle arc does not
	// collapse. d is negated orientation.
	d := 2 * (ax*cy - ay*cx)
	if d >= -s.areaEps {
		return r2.Point{}, 0, false
	}

	ha := ax*ax + ay*ay
	hc := cx*cx + cy*cy
	x := (cy*ha - ay*hc) / d
	yc := (ax*hc - cx*ha) / d
	return r2.Point{X: x + bx, Y: yc + by}, yc + by + math.Sqrt(x*x+yc*yc), true
}

// detachCircleEvent cancels the pending circle event of arc. The event stays
// in the queue and is skipped when popped.
func (s *sweeper) detachCircleEvent(arc *beachSection) {
	if arc.circle != nil {
		arc.circle.cancelled = true
		arc.circle = nil
		s.cancelledEvents++
	}
}
