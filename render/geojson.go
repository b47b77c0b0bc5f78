package render

import (
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/zzwx/voronoi/v2"
)

// FeatureCollection converts every cell of d into a feature: a polygon for a
// closed cell, a line string for an open one. Duplicate sites are skipped.
func FeatureCollection(d *voronoi.Diagram) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, site := range d.Sites {
		if site.Duplicate || len(site.Points) == 0 {
			continue
		}

		var geometry orb.Geometry
		if closed(site) {
			ring := make(orb.Ring, 0, len(site.Points)+1)
			for _, p := range site.Points {
				ring = append(ring, orb.Point{p.X, p.Y})
			}
			ring = append(ring, ring[0])
			geometry = orb.Polygon{ring}
		} else {
			line := make(orb.LineString, 0, len(site.Points))
			for _, p := range site.Points {
				line = append(line, orb.Point{p.X, p.Y})
			}
			geometry = line
		}

		f := geojson.NewFeature(geometry)
		f.Properties["index"] = site.Index
		f.Properties["site"] = []float64{site.X, site.Y}
		f.Properties["liesOnEdge"] = site.LiesOnEdge != nil
		f.Properties["liesOnCorner"] = site.LiesOnCorner != nil
		fc.Append(f)
	}
	return fc
}

// GeoJSON writes the feature collection of d.
func GeoJSON(w io.Writer, d *voronoi.Diagram) error {
	data, err := FeatureCollection(d).MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
