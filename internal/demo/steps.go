// Package demo builds the sample geometries, one per OGC kind, and prints
// their structure and WKT.
package demo

import (
	"fmt"

	"geowkt/internal/geom"
)

// Step is one named geometry build.
type Step struct {
	Name  string
	Build func() (*geom.GeomColl, error)
}

// Steps returns the built-in steps in their canonical order.
func Steps() []Step {
	return []Step{
		{Name: "point", Build: buildPoint},
		{Name: "linestring", Build: buildLinestring},
		{Name: "polygon", Build: buildPolygon},
		{Name: "multipoint", Build: buildMultiPoint},
		{Name: "multilinestring", Build: buildMultiLinestring},
		{Name: "multipolygon", Build: buildMultiPolygon},
		{Name: "collection", Build: buildCollection},
	}
}

// FromWKT returns a step that parses wkt.
func FromWKT(name, wkt string) Step {
	return Step{
		Name: name,
		Build: func() (*geom.GeomColl, error) {
			return geom.ParseWKT(wkt)
		},
	}
}

// Select keeps the steps named in names, in the order of steps.
// An empty names keeps everything.
func Select(steps []Step, names []string) ([]Step, error) {
	if len(names) == 0 {
		return steps, nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var out []Step
	for _, s := range steps {
		if want[s.Name] {
			out = append(out, s)
			delete(want, s.Name)
		}
	}
	for n := range want {
		return nil, fmt.Errorf("unknown step %q", n)
	}
	return out, nil
}

func set(c *geom.Coords, xy ...float64) error {
	for i := 0; i+1 < len(xy); i += 2 {
		if err := c.SetVertex(i/2, xy[i], xy[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// square adds a closed axis-aligned square with no holes.
func square(g *geom.GeomColl, x, y, side float64) error {
	p, err := g.AddPolygon(5, 0)
	if err != nil {
		return err
	}
	return set(&p.Exterior().Coords, x, y, x+side, y, x+side, y+side, x, y+side, x, y)
}

func segment(g *geom.GeomColl, x0, y0, x1, y1 float64) error {
	l, err := g.AddLinestring(2)
	if err != nil {
		return err
	}
	return set(&l.Coords, x0, y0, x1, y1)
}

func buildPoint() (*geom.GeomColl, error) {
	g := geom.New()
	g.AddPoint(1.5, 2.75)
	return g, nil
}

func buildLinestring() (*geom.GeomColl, error) {
	g := geom.New()
	l, err := g.AddLinestring(5)
	if err != nil {
		return nil, err
	}
	if err := set(&l.Coords, 1, 1, 2, 1, 2, 2, 100, 2, 100, 100); err != nil {
		return nil, err
	}
	return g, nil
}

func buildPolygon() (*geom.GeomColl, error) {
	g := geom.New()
	p, err := g.AddPolygon(5, 2)
	if err != nil {
		return nil, err
	}
	// rings are closed: last vertex repeats the first
	if err := set(&p.Exterior().Coords, 0, 0, 50, 0, 50, 50, 0, 50, 0, 0); err != nil {
		return nil, err
	}
	holes := []float64{40, 30}
	for i, o := range holes {
		r, err := p.AddInteriorRing(i, 5)
		if err != nil {
			return nil, err
		}
		if err := set(&r.Coords, o, o, o+1, o, o+1, o+1, o, o+1, o, o); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func buildMultiPoint() (*geom.GeomColl, error) {
	g := geom.New()
	for _, p := range [][2]float64{{5, 5}, {15, 5}, {5, 15}, {25, 5}, {5, 25}} {
		g.AddPoint(p[0], p[1])
	}
	return g, nil
}

func buildMultiLinestring() (*geom.GeomColl, error) {
	g := geom.New()
	if err := segment(g, 30, 10, 10, 30); err != nil {
		return nil, err
	}
	if err := segment(g, 40, 50, 50, 40); err != nil {
		return nil, err
	}
	return g, nil
}

func buildMultiPolygon() (*geom.GeomColl, error) {
	g := geom.New()
	for _, o := range []float64{60, 80} {
		if err := square(g, o, o, 10); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func buildCollection() (*geom.GeomColl, error) {
	g := geom.New()
	g.AddPoint(100, 100)
	g.AddPoint(100, 0)
	if err := segment(g, 130, 110, 110, 130); err != nil {
		return nil, err
	}
	if err := segment(g, 140, 150, 150, 140); err != nil {
		return nil, err
	}
	for _, o := range []float64{160, 180} {
		if err := square(g, o, o, 10); err != nil {
			return nil, err
		}
	}
	return g, nil
}
