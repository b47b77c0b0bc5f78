package voronoi

import (
	"go.uber.org/zap"
)

type sweepPhase int

const (
	// events remain in the queue
	phaseRunning sweepPhase = iota
	// queue empty, unbounded edges wait for the clipper
	phaseDraining
	phaseDone
)

func (p sweepPhase) String() string {
	switch p {
	case phaseRunning:
		return "running"
	case phaseDraining:
		return "draining"
	case phaseDone:
		return "done"
	}
	return "unknown"
}

// sweeper owns all the state of one run of the sweep. Runs share nothing.
type sweeper struct {
	eps     float64
	areaEps float64 // tolerance on twice the area of a triplet of sites
	log     *zap.Logger

	beachline rbTree
	queue     eventQueue
	graph     graph
	phase     sweepPhase

	siteEvents      int
	circleEvents    int
	cancelledEvents int
	skippedEvents   int
	vertices        int
}

func newSweeper(opts DiagramOptions) *sweeper {
	return &sweeper{
		eps:     opts.Eps,
		areaEps: 2e6 * opts.Eps * opts.Eps, // 2e-12 for bounds a thousand units wide
		log:     opts.Logger,
	}
}

func (s *sweeper) setPhase(p sweepPhase) {
	s.phase = p
	s.log.Debug("sweep phase", zap.Stringer("phase", p))
}

// sweep runs the event loop over sites, which must hold no duplicates.
func (s *sweeper) sweep(sites []*Site) {
	for _, site := range sites {
		s.queue.pushSite(site)
	}

	s.setPhase(phaseRunning)
	for !s.queue.empty() {
		ev := s.queue.popMin()
		switch {
		case !ev.isCircle():
			s.siteEvents++
			s.insertSite(ev.site)
		case ev.cancelled:
			s.skippedEvents++
		default:
			s.removeArc(ev)
		}
	}
	s.setPhase(phaseDraining)

	s.log.Debug("sweep finished",
		zap.Int("siteEvents", s.siteEvents),
		zap.Int("circleEvents", s.circleEvents),
		zap.Int("cancelledEvents", s.cancelledEvents),
		zap.Int("skippedEvents", s.skippedEvents),
		zap.Int("vertices", s.vertices),
		zap.Int("edges", len(s.graph.edges)),
	)
}
