package voronoi

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBounds is returned for bounds that are not finite or whose
	// minimum is not strictly below the maximum on both axes.
	ErrInvalidBounds = errors.New("voronoi: invalid bounds")
	// ErrInvalidSite is returned for a nil site or one with NaN or infinite
	// coordinates.
	ErrInvalidSite = errors.New("voronoi: invalid site")
	// ErrSiteOutOfBounds is returned for a site outside the bounds.
	ErrSiteOutOfBounds = errors.New("voronoi: site out of bounds")
	// ErrInvalidOption is returned by options given an unusable value.
	ErrInvalidOption = errors.New("voronoi: invalid option")
)

// assertf panics when an invariant of the diagram does not hold. Such a
// failure is a bug, never a consequence of the input.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("voronoi: "+format, args...))
	}
}
