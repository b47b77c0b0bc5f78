package voronoi

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
)

func TestEventQueue_Order(t *testing.T) {
	var q eventQueue
	q.pushSite(NewSite(5, 3))
	q.pushSite(NewSite(1, 3))
	q.pushSite(NewSite(9, 1))
	q.push(&event{x: 1, y: 3, arc: &beachSection{}})
	q.push(&event{x: 0, y: 7, arc: &beachSection{}})
	q.pushSite(NewSite(0, 7))

	type key struct {
		X, Y   float64
		Circle bool
	}
	var got []key
	for !q.empty() {
		e := q.popMin()
		got = append(got, key{e.x, e.y, e.isCircle()})
	}
	want := []key{
		{9, 1, false},
		{1, 3, true},
		{1, 3, false},
		{5, 3, false},
		{0, 7, true},
		{0, 7, false},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("event order mismatch (-want +got):\n%s", diff)
	}
}

func TestEventQueue_InsertionOrderOnTies(t *testing.T) {
	var q eventQueue
	first := &event{x: 2, y: 2, arc: &beachSection{}}
	second := &event{x: 2, y: 2, arc: &beachSection{}}
	q.push(first)
	q.push(second)
	if got := q.popMin(); got != first {
		t.Errorf("popMin() returned the later of two equal events")
	}
}

func TestDetachCircleEvent_Lazy(t *testing.T) {
	s := newSweeper(defaultOptions().forBounds(testBounds))
	a := &beachSection{site: NewSite(0, 1)}
	b := &beachSection{site: NewSite(1, 0)}
	c := &beachSection{site: NewSite(2, 1)}
	s.beachline.insertSuccessor(nil, a)
	s.beachline.insertSuccessor(a, b)
	s.beachline.insertSuccessor(b, c)

	s.attachCircleEvent(b)
	ev := b.circle
	if ev == nil {
		t.Fatalf("attachCircleEvent() scheduled nothing for a converging triplet")
	}
	if diff := cmp.Diff(r2.Point{X: 1, Y: 1}, ev.center); diff != "" {
		t.Errorf("circle center mismatch (-want +got):\n%s", diff)
	}
	if ev.y != 2 {
		t.Errorf("circle event y = %v, want 2", ev.y)
	}

	s.detachCircleEvent(b)
	if b.circle != nil {
		t.Errorf("arc still references its circle event after detach")
	}
	if !ev.cancelled {
		t.Errorf("detached event is not cancelled")
	}
	if s.queue.Len() != 1 {
		t.Errorf("queue len = %v after detach, want 1: cancelled events stay queued", s.queue.Len())
	}
	if s.cancelledEvents != 1 {
		t.Errorf("cancelledEvents = %v, want 1", s.cancelledEvents)
	}
}

func TestAttachCircleEvent_Diverging(t *testing.T) {
	tests := []struct {
		name    string
		l, c, r r2.Point
	}{
		{"clockwise", r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 1}, r2.Point{X: 2, Y: 0}},
		{"collinear", r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 0}, r2.Point{X: 2, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSweeper(defaultOptions().forBounds(testBounds))
			a := &beachSection{site: &Site{Point: tt.l}}
			b := &beachSection{site: &Site{Point: tt.c}}
			c := &beachSection{site: &Site{Point: tt.r}}
			s.beachline.insertSuccessor(nil, a)
			s.beachline.insertSuccessor(a, b)
			s.beachline.insertSuccessor(b, c)

			s.attachCircleEvent(b)
			if b.circle != nil || !s.queue.empty() {
				t.Errorf("attachCircleEvent() scheduled an event for a diverging triplet")
			}
		})
	}
}
