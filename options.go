package voronoi

import (
	"fmt"

	"github.com/golang/geo/r2"
	"go.uber.org/zap"
)

// DiagramOptions configures ComputeDiagram.
type DiagramOptions struct {
	// Eps is the tolerance of the geometric predicates. Zero derives it
	// from the size of the bounds.
	Eps float64
	// BorderEdges closes the cells with edges along the bounds.
	BorderEdges bool
	// Logger receives debug traces of the sweep.
	Logger *zap.Logger
}

// DiagramOption sets a field of DiagramOptions.
type DiagramOption func(*DiagramOptions) error

func defaultOptions() DiagramOptions {
	return DiagramOptions{
		BorderEdges: true,
		Logger:      zap.NewNop(),
	}
}

// WithEps sets the tolerance used to decide coincidence and incidence.
func WithEps(eps float64) DiagramOption {
	return func(o *DiagramOptions) error {
		if !(eps > 0) || !finite(eps) {
			return fmt.Errorf("%w: eps must be positive, got %v", ErrInvalidOption, eps)
		}
		o.Eps = eps
		return nil
	}
}

// WithBorderEdges controls whether edges along the bounds are generated.
// Without them, cells touching the bounds are left open.
func WithBorderEdges(enabled bool) DiagramOption {
	return func(o *DiagramOptions) error {
		o.BorderEdges = enabled
		return nil
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.Logger) DiagramOption {
	return func(o *DiagramOptions) error {
		if logger == nil {
			return fmt.Errorf("%w: nil logger", ErrInvalidOption)
		}
		o.Logger = logger
		return nil
	}
}

// forBounds returns the options with Eps resolved for bounds.
func (o DiagramOptions) forBounds(bounds r2.Rect) DiagramOptions {
	if o.Eps == 0 {
		o.Eps = boundsEps(bounds)
	}
	return o
}
