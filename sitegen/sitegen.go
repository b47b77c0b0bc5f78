// Package sitegen provides reproducible random sites for Voronoi diagrams.
package sitegen

import (
	"math/rand"

	"github.com/golang/geo/r2"

	"github.com/zzwx/voronoi/v2"
)

// Distribution selects how sites are spread over the bounds.
type Distribution int

const (
	// Uniform spreads sites evenly over the bounds.
	Uniform Distribution = iota
	// Gaussian clusters sites around the center of the bounds, with a
	// standard deviation of a sixth of each side. Samples falling outside
	// are clamped onto the border.
	Gaussian
)

func (d Distribution) String() string {
	switch d {
	case Uniform:
		return "uniform"
	case Gaussian:
		return "gaussian"
	}
	return "unknown"
}

// GenerateRandomPoints generates cnt points inside bounds. The seed
// parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, bounds r2.Rect, dist Distribution, seed int64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r2.Point, cnt)

	center := bounds.Center()
	size := bounds.Size()
	for i := range cnt {
		var p r2.Point
		switch dist {
		case Gaussian:
			p = r2.Point{
				X: center.X + random.NormFloat64()*size.X/6,
				Y: center.Y + random.NormFloat64()*size.Y/6,
			}
		default:
			p = r2.Point{
				X: bounds.X.Lo + random.Float64()*size.X,
				Y: bounds.Y.Lo + random.Float64()*size.Y,
			}
		}
		points[i] = bounds.ClampPoint(p)
	}

	return points
}

// GenerateRandomSites is GenerateRandomPoints wrapped into sites.
func GenerateRandomSites(cnt int, bounds r2.Rect, dist Distribution, seed int64) []*voronoi.Site {
	return voronoi.SitesFromPoints(GenerateRandomPoints(cnt, bounds, dist, seed))
}
