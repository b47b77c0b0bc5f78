// Package render draws diagrams as SVG and exports them as GeoJSON.
package render

import (
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/golang/geo/r2"

	"github.com/zzwx/voronoi/v2"
)

const (
	polygonStyle = "fill:rgb(255,255,255);stroke:rgb(170,170,170);stroke-width:1;stroke-opacity:1.0"
	edgeStyle    = "stroke:rgb(170,170,170);stroke-width:1"
	siteStyle    = "fill:rgb(255,0,0)"
	borderStyle  = "fill:rgb(0,0,255)"
)

// SVGOptions controls the drawing.
type SVGOptions struct {
	// Scale maps one unit of the bounds to Scale pixels. Zero means 1.
	Scale float64
	// SiteRadius of the site dots in pixels. Zero hides the sites.
	SiteRadius int
}

type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	w.err = err
	return n, err
}

// SVG writes the cells of d. The y axis is flipped so the bounds keep their
// orientation on screen. Open cells are drawn as polylines.
func SVG(w io.Writer, d *voronoi.Diagram, opts SVGOptions) error {
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	toScreen := func(p r2.Point) (int, int) {
		x := (p.X - d.Bounds.X.Lo) * scale
		y := (d.Bounds.Y.Hi - p.Y) * scale
		return int(math.Round(x)), int(math.Round(y))
	}
	size := d.Bounds.Size().Mul(scale)

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(int(math.Ceil(size.X)), int(math.Ceil(size.Y)))
	canvas.Rect(0, 0, int(math.Ceil(size.X)), int(math.Ceil(size.Y)), "fill:rgb(255,255,255)")

	xPoints := make([]int, 0)
	yPoints := make([]int, 0)
	for _, site := range d.Sites {
		if site.Duplicate || len(site.Points) == 0 {
			continue
		}
		xPoints = xPoints[:0]
		yPoints = yPoints[:0]
		for _, p := range site.Points {
			x, y := toScreen(p.Point)
			xPoints = append(xPoints, x)
			yPoints = append(yPoints, y)
		}
		if closed(site) {
			canvas.Polygon(xPoints, yPoints, polygonStyle)
		} else {
			canvas.Polyline(xPoints, yPoints, "fill:none;"+edgeStyle)
		}
	}

	if opts.SiteRadius > 0 {
		for _, site := range d.Sites {
			if site.Duplicate {
				continue
			}
			style := siteStyle
			if site.LiesOnEdge != nil || site.LiesOnCorner != nil {
				style = borderStyle
			}
			x, y := toScreen(site.Point)
			canvas.Circle(x, y, opts.SiteRadius, style)
		}
	}
	canvas.End()
	return ew.err
}

// closed reports whether the cell boundary of site is a loop.
func closed(site *voronoi.Site) bool {
	n := len(site.Cell)
	return n > 0 && len(site.Points) == n && site.Cell[n-1].End() == site.Cell[0].Start()
}
