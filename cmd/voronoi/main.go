package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/geo/r2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tdewolff/argp"
	"go.uber.org/zap"

	"github.com/zzwx/voronoi/v2"
	"github.com/zzwx/voronoi/v2/render"
	"github.com/zzwx/voronoi/v2/sitegen"
)

type Diagram struct {
	Sites   int     `short:"n" default:"100" desc:"Number of random sites"`
	Seed    int64   `short:"s" default:"0" desc:"Seed of the random sites"`
	Dist    string  `default:"uniform" desc:"Distribution of the random sites: uniform or gaussian"`
	Width   float64 `default:"1000" desc:"Width of the bounds"`
	Height  float64 `default:"1000" desc:"Height of the bounds"`
	Relax   int     `short:"r" default:"0" desc:"Lloyd relaxation steps"`
	Eps     float64 `default:"0" desc:"Tolerance of the geometric predicates, derived from the bounds when zero"`
	Open    bool    `desc:"Leave the cells open along the bounds"`
	Format  string  `short:"f" default:"" desc:"Output format: svg or geojson, guessed from the output file by default"`
	Scale   float64 `default:"1" desc:"Pixels per unit in SVG output"`
	Output  string  `short:"o" default:"" desc:"Output file, standard output by default"`
	Verbose bool    `short:"v" desc:"Log the sweep"`
	Input   string  `index:"0" default:"" desc:"GeoJSON file with Point features to use as sites"`
}

func main() {
	root := argp.NewCmd(&Diagram{}, "Bounded Voronoi diagrams with Fortune's sweep")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Diagram) Run() error {
	if !(0 < cmd.Width) || !(0 < cmd.Height) {
		fmt.Println("ERROR: bounds must have a positive width and height")
		return argp.ShowUsage
	}

	format := cmd.Format
	if format == "" {
		switch filepath.Ext(cmd.Output) {
		case ".json", ".geojson":
			format = "geojson"
		default:
			format = "svg"
		}
	}
	if format != "svg" && format != "geojson" {
		fmt.Printf("ERROR: unknown format %q\n", format)
		return argp.ShowUsage
	}

	logger := zap.NewNop()
	if cmd.Verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
	}

	bounds := voronoi.NewBounds(0, 0, cmd.Width, cmd.Height)
	var sites []*voronoi.Site
	if cmd.Input != "" {
		points, err := readPoints(cmd.Input)
		if err != nil {
			return err
		}
		sites = voronoi.SitesFromPoints(points)
	} else {
		var dist sitegen.Distribution
		switch cmd.Dist {
		case "uniform":
			dist = sitegen.Uniform
		case "gaussian":
			dist = sitegen.Gaussian
		default:
			fmt.Printf("ERROR: unknown distribution %q\n", cmd.Dist)
			return argp.ShowUsage
		}
		sites = sitegen.GenerateRandomSites(cmd.Sites, bounds, dist, cmd.Seed)
	}
	logger.Info("computing diagram",
		zap.Int("sites", len(sites)),
		zap.Float64("width", cmd.Width),
		zap.Float64("height", cmd.Height),
	)

	opts := []voronoi.DiagramOption{
		voronoi.WithBorderEdges(!cmd.Open),
		voronoi.WithLogger(logger),
	}
	if cmd.Eps != 0 {
		opts = append(opts, voronoi.WithEps(cmd.Eps))
	}
	d, err := voronoi.ComputeDiagram(sites, bounds, opts...)
	if err != nil {
		return err
	}
	if cmd.Relax > 0 {
		if d, err = d.Relax(cmd.Relax); err != nil {
			return err
		}
	}

	var w io.Writer = os.Stdout
	if cmd.Output != "" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if format == "geojson" {
		err = render.GeoJSON(w, d)
	} else {
		err = render.SVG(w, d, render.SVGOptions{Scale: cmd.Scale, SiteRadius: 3})
	}
	if err != nil {
		return err
	}
	logger.Info("diagram written", zap.String("format", format), zap.Int("edges", len(d.Edges)))
	return nil
}

// readPoints loads the Point features of a GeoJSON feature collection.
func readPoints(filename string) ([]r2.Point, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	var points []r2.Point
	for _, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case orb.Point:
			points = append(points, r2.Point{X: g[0], Y: g[1]})
		case orb.MultiPoint:
			for _, p := range g {
				points = append(points, r2.Point{X: p[0], Y: p[1]})
			}
		}
	}
	return points, nil
}
