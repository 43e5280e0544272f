package demo

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"geowkt/internal/geom"
)

// Result is the outcome of one step. Geom is nil when the build failed; WKT
// is empty when the geometry could not be written.
type Result struct {
	Name string
	Geom *geom.GeomColl
	WKT  string
	Err  error
}

// Build runs every step independently; a failing step does not affect the others.
func Build(steps []Step) []Result {
	out := make([]Result, 0, len(steps))
	for _, s := range steps {
		out = append(out, build(s))
	}
	return out
}

func build(s Step) Result {
	r := Result{Name: s.Name}
	g, err := s.Build()
	if err != nil {
		r.Err = fmt.Errorf("step %s: %w", s.Name, err)
		log.Error().Err(err).Str("step", s.Name).Msg("Build failed")
		return r
	}
	r.Geom = g
	r.WKT, err = g.WKT()
	if err != nil {
		r.Err = fmt.Errorf("step %s: %w", s.Name, err)
		log.Error().Err(err).Str("step", s.Name).Msg("WKT failed")
		return r
	}
	log.Debug().
		Str("step", s.Name).
		Str("type", g.Type().String()).
		Int("dimension", g.Dimension()).
		Int("points", g.NumPoints()).
		Int("linestrings", g.NumLinestrings()).
		Int("polygons", g.NumPolygons()).
		Msg("Step built")
	return r
}

// Run builds the steps and writes, for each, its header and optionally its
// dump, followed by a final section listing every step's WKT. It returns the
// joined step errors, if any.
func Run(w io.Writer, steps []Step, p *Printer, dump bool) ([]Result, error) {
	results := Build(steps)
	var errs []error
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if r.Geom == nil {
			fmt.Fprintf(w, "step#%d: %s failed: %v\n", i+1, r.Name, r.Err)
			errs = append(errs, r.Err)
			continue
		}
		fmt.Fprintln(w, p.Header(i+1, r.Geom))
		if dump {
			if err := p.Dump(w, r.Geom); err != nil {
				return results, err
			}
		}
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}

	fmt.Fprintf(w, "\nstep#%d: checking WKT representations\n", len(results)+1)
	for _, r := range results {
		if r.WKT == "" {
			continue
		}
		fmt.Fprintf(w, "\n%s\n", r.WKT)
	}
	return results, errors.Join(errs...)
}

// Release destroys every built geometry.
func Release(results []Result) {
	for i := range results {
		results[i].Geom.Destroy()
		results[i].Geom = nil
	}
}
