package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"geowkt/internal/geom"
)

// Printer writes the structural dump of a geometry.
type Printer struct {
	Precision int
	Color     bool

	head lipgloss.Style
	kind lipgloss.Style
	dim  lipgloss.Style
}

func NewPrinter(precision int, color bool) *Printer {
	p := &Printer{Precision: precision, Color: color}
	if color {
		p.head = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
		p.kind = lipgloss.NewStyle().Foreground(lipgloss.Color("#E6E6E6")).Bold(true)
		p.dim = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"})
	}
	return p
}

func (p *Printer) style(s lipgloss.Style, text string) string {
	if !p.Color {
		return text
	}
	return s.Render(text)
}

func (p *Printer) xy(x, y float64) string {
	return fmt.Sprintf("x=%.*f y=%.*f", p.Precision, x, p.Precision, y)
}

// Header returns the one-line summary printed before each step's dump.
func (p *Printer) Header(n int, g *geom.GeomColl) string {
	return fmt.Sprintf("%s %s\tDimension=%d",
		p.style(p.head, fmt.Sprintf("step#%d:", n)),
		p.style(p.kind, g.Type().String()),
		g.Dimension())
}

// Dump writes every point, linestring vertex and polygon ring of g.
// Unset vertices are shown as "unset".
func (p *Printer) Dump(w io.Writer, g *geom.GeomColl) error {
	var b strings.Builder
	indent := func(n int) string { return strings.Repeat("\t", n) }
	vertex := func(depth int, c *geom.Coords) {
		for i, n := 0, c.Len(); i < n; i++ {
			v, ok := c.Vertex(i)
			coord := p.style(p.dim, "unset")
			if ok {
				coord = p.xy(v.X, v.Y)
			}
			fmt.Fprintf(&b, "%svertex %d/%d %s\n", indent(depth), i, c.Len(), coord)
		}
	}

	pts := g.Points()
	for i, pt := range pts {
		fmt.Fprintf(&b, "%s%s %d/%d %s\n", indent(3), p.style(p.kind, "POINT"), i, len(pts), p.xy(pt.X, pt.Y))
	}

	lines := g.Linestrings()
	for i, l := range lines {
		fmt.Fprintf(&b, "%s%s %d/%d has %d vertices\n", indent(3), p.style(p.kind, "LINESTRING"), i, len(lines), l.Len())
		vertex(4, &l.Coords)
	}

	polys := g.Polygons()
	for i, pg := range polys {
		holes := "holes"
		if pg.NumInteriors() == 1 {
			holes = "hole"
		}
		fmt.Fprintf(&b, "%s%s %d/%d has %d %s\n", indent(3), p.style(p.kind, "POLYGON"), i, len(polys), pg.NumInteriors(), holes)
		ext := pg.Exterior()
		fmt.Fprintf(&b, "%sExteriorRing has %d vertices\n", indent(4), ext.Len())
		vertex(5, &ext.Coords)
		for j, n := 0, pg.NumInteriors(); j < n; j++ {
			r := pg.Interior(j)
			if r == nil {
				fmt.Fprintf(&b, "%sInteriorRing %d/%d %s\n", indent(4), j, pg.NumInteriors(), p.style(p.dim, "not added"))
				continue
			}
			fmt.Fprintf(&b, "%sInteriorRing %d/%d has %d vertices\n", indent(4), j, pg.NumInteriors(), r.Len())
			vertex(5, &r.Coords)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
