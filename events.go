package voronoi

import (
	"container/heap"

	"github.com/golang/geo/r2"
)

// event is either a site event (site != nil) or a circle event (arc != nil).
// Both are keyed by the sweep position y at which they fire, then by x.
type event struct {
	x, y float64

	site *Site

	arc       *beachSection
	center    r2.Point
	cancelled bool

	seq int
}

func (e *event) isCircle() bool {
	return e.site == nil
}

// eventQueue is a min-heap of events. Circle events are never removed from
// it: a cancelled one is discarded when it reaches the top.
type eventQueue struct {
	items []*event
	seq   int
}

func (q *eventQueue) Len() int { return len(q.items) }

func (q *eventQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.y != b.y {
		return a.y < b.y
	}
	if a.x != b.x {
		return a.x < b.x
	}
	// at the very same position a collapsing arc goes first
	if a.isCircle() != b.isCircle() {
		return a.isCircle()
	}
	return a.seq < b.seq
}

func (q *eventQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *eventQueue) Push(x any) { q.items = append(q.items, x.(*event)) }

func (q *eventQueue) Pop() any {
	n := len(q.items) - 1
	e := q.items[n]
	q.items[n] = nil
	q.items = q.items[:n]
	return e
}

func (q *eventQueue) push(e *event) {
	e.seq = q.seq
	q.seq++
	heap.Push(q, e)
}

func (q *eventQueue) pushSite(site *Site) {
	q.push(&event{x: site.X, y: site.Y, site: site})
}

func (q *eventQueue) popMin() *event {
	return heap.Pop(q).(*event)
}

func (q *eventQueue) empty() bool {
	return len(q.items) == 0
}
