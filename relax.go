package voronoi

import (
	"fmt"
)

// Relax applies steps iterations of Lloyd's algorithm: every site moves to
// the centroid of its cell and the diagram is computed again with the same
// options. Duplicate sites are left out. The receiver is not modified.
func (d *Diagram) Relax(steps int) (*Diagram, error) {
	if steps < 0 {
		return nil, fmt.Errorf("%w: negative relax steps %d", ErrInvalidOption, steps)
	}

	ret := d
	for range steps {
		sites := make([]*Site, 0, len(ret.Sites))
		for _, site := range ret.Sites {
			if site.Duplicate {
				continue
			}
			sites = append(sites, &Site{Point: d.Bounds.ClampPoint(site.Centroid())})
		}

		var err error
		ret, err = ComputeDiagram(sites, d.Bounds, func(o *DiagramOptions) error {
			*o = d.opts
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("relax: %w", err)
		}
	}
	return ret, nil
}
