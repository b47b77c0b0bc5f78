package voronoi

import (
	"github.com/golang/geo/r2"
	"go.uber.org/zap"
)

// clipper turns the unbounded edges left by the sweep into segments inside
// the bounds, and keeps every vertex unique: points closer than eps are
// merged into one *Point.
type clipper struct {
	bounds r2.Rect
	eps    float64
	log    *zap.Logger

	corners  [4]*Point
	border   []*Point // points registered on the border, corners included
	vertices *pointGrid[*Point]
	merged   map[*Point]*Point

	dropped int
}

func newClipper(bounds r2.Rect, opts DiagramOptions) *clipper {
	c := &clipper{
		bounds: bounds,
		eps:    opts.Eps,
		log:    opts.Logger,
		merged: make(map[*Point]*Point),

		vertices: newPointGrid[*Point](bounds, opts.Eps),
	}
	// counterclockwise from the lower-left corner
	c.corners = [4]*Point{
		{Point: r2.Point{X: bounds.X.Lo, Y: bounds.Y.Lo}, BorderLocation: BottomLeft},
		{Point: r2.Point{X: bounds.X.Hi, Y: bounds.Y.Lo}, BorderLocation: BottomRight},
		{Point: r2.Point{X: bounds.X.Hi, Y: bounds.Y.Hi}, BorderLocation: TopRight},
		{Point: r2.Point{X: bounds.X.Lo, Y: bounds.Y.Hi}, BorderLocation: TopLeft},
	}
	c.border = append(c.border, c.corners[:]...)
	return c
}

// connectEdge gives a dangling edge its missing end point(s) on the lines
// of the bounds. It returns false when the edge can't be visible.
func connectEdge(e *Edge, bounds r2.Rect, eps float64) bool {
	// skip if end point already connected
	if e.End != nil {
		return true
	}

	va := e.Start
	minX, maxX := bounds.X.Lo, bounds.X.Hi
	minY, maxY := bounds.Y.Lo, bounds.Y.Hi
	lx, ly := e.Left.X, e.Left.Y
	rx, ry := e.Right.X, e.Right.Y
	fx := (lx + rx) / 2
	fy := (ly + ry) / 2

	// line equation of the bisector, unless it is vertical
	var fm, fb float64
	vertical := equalWithEpsilon(ry, ly, eps)
	if !vertical {
		fm = (lx - rx) / (ry - ly)
		fb = fy - fm*fx
	}

	// Direction of the edge relative to its left site:
	//   toward max y: lx > rx, toward min y: lx < rx
	//   toward max x: ly < ry, toward min x: ly > ry
	var vb *Point
	switch {
	case vertical:
		if fx <= minX || fx >= maxX {
			return false
		}
		if lx > rx {
			if va == nil {
				va = newPoint(fx, minY)
			} else if va.Y >= maxY {
				return false
			}
			vb = newPoint(fx, maxY)
		} else {
			if va == nil {
				va = newPoint(fx, maxY)
			} else if va.Y <= minY {
				return false
			}
			vb = newPoint(fx, minY)
		}

	// closer to vertical than horizontal: connect to the min/max y sides
	case fm < -1 || fm > 1:
		if lx > rx {
			if va == nil {
				va = newPoint((minY-fb)/fm, minY)
			} else if va.Y >= maxY {
				return false
			}
			vb = newPoint((maxY-fb)/fm, maxY)
		} else {
			if va == nil {
				va = newPoint((maxY-fb)/fm, maxY)
			} else if va.Y <= minY {
				return false
			}
			vb = newPoint((minY-fb)/fm, minY)
		}

	// closer to horizontal than vertical: connect to the min/max x sides
	default:
		if ly < ry {
			if va == nil {
				va = newPoint(minX, fm*minX+fb)
			} else if va.X >= maxX {
				return false
			}
			vb = newPoint(maxX, fm*maxX+fb)
		} else {
			if va == nil {
				va = newPoint(maxX, fm*maxX+fb)
			} else if va.X <= minX {
				return false
			}
			vb = newPoint(minX, fm*minX+fb)
		}
	}
	e.Start = va
	e.End = vb
	return true
}

// clipEdge cuts the edge to the bounds (Liang–Barsky). It returns false
// when the edge lies wholly outside. Clipped ends get new points: the old
// ones may be shared with other edges.
func clipEdge(e *Edge, bounds r2.Rect) bool {
	ax, ay := e.Start.X, e.Start.Y
	bx, by := e.End.X, e.End.Y
	t0, t1 := 0.0, 1.0
	dx := bx - ax
	dy := by - ay

	// each side is a (p, q) pair of the parametric inequality p*t <= q
	clipSide := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return false
			}
			if r < t1 {
				t1 = r
			}
		}
		return true
	}
	if !clipSide(-dx, ax-bounds.X.Lo) ||
		!clipSide(dx, bounds.X.Hi-ax) ||
		!clipSide(-dy, ay-bounds.Y.Lo) ||
		!clipSide(dy, bounds.Y.Hi-ay) {
		return false
	}

	if t0 > 0 {
		e.Start = newPoint(ax+t0*dx, ay+t0*dy)
	}
	if t1 < 1 {
		e.End = newPoint(ax+t1*dx, ay+t1*dy)
	}
	return true
}

func (c *clipper) find(p *Point) *Point {
	for {
		q, ok := c.merged[p]
		if !ok {
			return p
		}
		p = q
	}
}

func (c *clipper) merge(keep, drop *Point) {
	if keep != drop {
		c.merged[drop] = keep
	}
}

// unify returns the vertex already kept within eps of p, or keeps p.
func (c *clipper) unify(p *Point) *Point {
	if q, ok := c.vertices.find(p.Point); ok {
		q = c.find(q)
		c.merge(q, p)
		return q
	}
	c.vertices.add(p.Point, p)
	return p
}

// snap moves a point lying within eps of the border onto it, and returns
// the registered border point it coincides with.
func (c *clipper) snap(p *Point) *Point {
	q := p.Point
	switch {
	case equalWithEpsilon(q.X, c.bounds.X.Lo, c.eps):
		q.X = c.bounds.X.Lo
	case equalWithEpsilon(q.X, c.bounds.X.Hi, c.eps):
		q.X = c.bounds.X.Hi
	}
	switch {
	case equalWithEpsilon(q.Y, c.bounds.Y.Lo, c.eps):
		q.Y = c.bounds.Y.Lo
	case equalWithEpsilon(q.Y, c.bounds.Y.Hi, c.eps):
		q.Y = c.bounds.Y.Hi
	}
	loc := borderLocation(q, c.bounds)
	if loc == NotOnBorder {
		return p
	}
	for _, b := range c.border {
		if nearPoint(b.Point, q, c.eps) {
			c.merge(b, p)
			return b
		}
	}
	p.Point = q
	p.BorderLocation = loc
	c.border = append(c.border, p)
	return p
}

// collapse drops a point-like edge and merges its ends, keeping the border
// point if there is one.
func (c *clipper) collapse(e *Edge) {
	a, b := e.Start, e.End
	if a.BorderLocation == NotOnBorder && b.BorderLocation != NotOnBorder {
		a, b = b, a
	}
	c.merge(a, b)
}

// clipEdges connects dangling edges to the bounds, cuts them, and discards
// edges outside the bounds or looking more like a point than a line. The
// surviving edges come back oriented.
func (c *clipper) clipEdges(edges []*Edge) []*Edge {
	var kept []*Edge
	for _, e := range edges {
		if !connectEdge(e, c.bounds, c.eps) || !clipEdge(e, c.bounds) {
			c.drop(e)
			continue
		}
		e.Start = c.snap(c.unify(c.find(e.Start)))
		e.End = c.snap(c.unify(c.find(e.End)))
		if e.Start == e.End || nearPoint(e.Start.Point, e.End.Point, c.eps) {
			c.collapse(e)
			c.drop(e)
			continue
		}
		kept = append(kept, e)
	}

	// merges made after an edge was kept may have reached its ends
	ret := kept[:0]
	for _, e := range kept {
		e.Start = c.find(e.Start)
		e.End = c.find(e.End)
		if e.Start == e.End {
			c.drop(e)
			continue
		}
		e.orient()
		ret = append(ret, e)
	}

	c.log.Debug("edges clipped",
		zap.Int("kept", len(ret)),
		zap.Int("dropped", c.dropped),
		zap.Int("merged", len(c.merged)),
	)
	return ret
}

func (c *clipper) drop(e *Edge) {
	e.removed = true
	c.dropped++
}
