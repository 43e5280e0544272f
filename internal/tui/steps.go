package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"

	"geowkt/internal/demo"
	"geowkt/internal/geom"
)

type stepItem struct {
	title, desc string
	index       int
}

func (s stepItem) Title() string       { return s.title }
func (s stepItem) Description() string { return s.desc }
func (s stepItem) FilterValue() string { return s.title }

func (m *Model) refreshSteps() {
	items := make([]list.Item, 0, len(m.results))
	for i, r := range m.results {
		desc := "failed"
		if r.Geom != nil {
			desc = r.Geom.Type().String()
		}
		items = append(items, stepItem{title: fmt.Sprintf("%d %s", i+1, r.Name), desc: desc, index: i})
	}
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no steps"
	}
}

// selectStep loads result i into the renderable layers and resets the view.
func (m *Model) selectStep(i int) {
	if i < 0 || i >= len(m.results) {
		return
	}
	m.sel = i
	m.l.Select(i)
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.inspectPopup = ""
	r := m.results[i]
	if r.Geom == nil {
		m.points, m.lines, m.polygons, m.bbox = nil, nil, nil, geom.BBox{}
		m.status = fmt.Sprintf("%s: %v", r.Name, r.Err)
		return
	}
	m.points, m.lines, m.polygons = layers(r.Geom)
	m.bbox = viewBBox(r.Geom)
	m.status = fmt.Sprintf("%s  counts: pts=%d ls=%d poly=%d", r.Name, len(m.points), len(m.lines), len(m.polygons))
}

// addPasted parses wkt and appends it as a new step.
func (m *Model) addPasted(wkt string) error {
	g, err := geom.ParseWKT(wkt)
	if err != nil {
		return err
	}
	m.pasted++
	name := fmt.Sprintf("paste-%d", m.pasted)
	m.results = append(m.results, demo.Build([]demo.Step{{
		Name:  name,
		Build: func() (*geom.GeomColl, error) { return g, nil },
	}})...)
	m.refreshSteps()
	m.selectStep(len(m.results) - 1)
	return nil
}

// layers flattens g into plain coordinate slices; unset vertices are skipped.
func layers(g *geom.GeomColl) (points [][2]float64, lines [][][2]float64, polygons [][][][2]float64) {
	coords := func(c *geom.Coords) [][2]float64 {
		out := make([][2]float64, 0, c.Len())
		for i, n := 0, c.Len(); i < n; i++ {
			if v, ok := c.Vertex(i); ok {
				out = append(out, [2]float64{v.X, v.Y})
			}
		}
		return out
	}
	for _, p := range g.Points() {
		points = append(points, [2]float64{p.X, p.Y})
	}
	for _, l := range g.Linestrings() {
		lines = append(lines, coords(&l.Coords))
	}
	for _, pg := range g.Polygons() {
		rings := [][][2]float64{coords(&pg.Exterior().Coords)}
		for j, n := 0, pg.NumInteriors(); j < n; j++ {
			if r := pg.Interior(j); r != nil {
				rings = append(rings, coords(&r.Coords))
			}
		}
		polygons = append(polygons, rings)
	}
	return points, lines, polygons
}

// viewBBox pads the geometry bounds so that a single point or an
// axis-aligned line still has a drawable extent.
func viewBBox(g *geom.GeomColl) geom.BBox {
	b, ok := g.BBox()
	if !ok {
		return geom.BBox{}
	}
	padX := (b.MaxX - b.MinX) * 0.05
	padY := (b.MaxY - b.MinY) * 0.05
	if padX == 0 {
		padX = 1
	}
	if padY == 0 {
		padY = 1
	}
	return geom.BBox{MinX: b.MinX - padX, MinY: b.MinY - padY, MaxX: b.MaxX + padX, MaxY: b.MaxY + padY}
}
