package tui

import (
	"fmt"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
)

func summaryColumns() []table.Column {
	return []table.Column{
		{Title: "step", Width: 16},
		{Title: "type", Width: 18},
		{Title: "dim", Width: 3},
		{Title: "pts", Width: 4},
		{Title: "ls", Width: 4},
		{Title: "poly", Width: 4},
		{Title: "bbox", Width: 28},
	}
}

// refreshSummary rebuilds the summary table from the current results.
func (m *Model) refreshSummary() {
	rows := make([]table.Row, 0, len(m.results))
	for _, r := range m.results {
		if r.Geom == nil {
			rows = append(rows, table.Row{r.Name, "failed", "", "", "", "", ""})
			continue
		}
		g := r.Geom
		bbox := "-"
		if b, ok := g.BBox(); ok {
			bbox = fmt.Sprintf("%g %g, %g %g", b.MinX, b.MinY, b.MaxX, b.MaxY)
		}
		rows = append(rows, table.Row{
			r.Name,
			g.Type().String(),
			strconv.Itoa(g.Dimension()),
			strconv.Itoa(g.NumPoints()),
			strconv.Itoa(g.NumLinestrings()),
			strconv.Itoa(g.NumPolygons()),
			bbox,
		})
	}
	m.tbl.SetRows(rows)
	m.tbl.SetCursor(m.sel)
}
