package geom

import (
	"bytes"
	"io"
	"strconv"
)

const (
	tPoint              = "POINT "
	tMultiPoint         = "MULTIPOINT "
	tLineString         = "LINESTRING "
	tMultiLineString    = "MULTILINESTRING "
	tPolygon            = "POLYGON "
	tMultiPolygon       = "MULTIPOLYGON "
	tGeometryCollection = "GEOMETRYCOLLECTION "
	tEmpty              = "EMPTY"
)

// WKT returns the Well-Known Text form of g. A nil or empty collection is
// written as GEOMETRYCOLLECTION EMPTY. Collections mixing kinds list all
// points first, then all linestrings, then all polygons.
func (g *GeomColl) WKT() (string, error) {
	b := &bytes.Buffer{}
	if err := write(b, g); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteWKT writes the WKT form of g to w.
func WriteWKT(w io.Writer, g *GeomColl) error {
	b := &bytes.Buffer{}
	if err := write(b, g); err != nil {
		return err
	}
	_, err := b.WriteTo(w)
	return err
}

func write(b *bytes.Buffer, g *GeomColl) error {
	if err := g.Check(); err != nil {
		return err
	}
	switch g.Type() {
	case TypeEmpty:
		b.WriteString(tGeometryCollection + tEmpty)
	case TypePoint:
		b.WriteString(tPoint)
		writePoint(b, g.points[0])
	case TypeLineString:
		b.WriteString(tLineString)
		writeCoords(b, &g.lines[0].Coords)
	case TypePolygon:
		b.WriteString(tPolygon)
		writePolygon(b, g.polygons[0])
	case TypeMultiPoint:
		b.WriteString(tMultiPoint)
		b.WriteByte('(')
		for i, p := range g.points {
			if i != 0 {
				b.WriteString(", ")
			}
			writeXY(b, p.X, p.Y)
		}
		b.WriteByte(')')
	case TypeMultiLineString:
		b.WriteString(tMultiLineString)
		b.WriteByte('(')
		for i, l := range g.lines {
			if i != 0 {
				b.WriteString(", ")
			}
			writeCoords(b, &l.Coords)
		}
		b.WriteByte(')')
	case TypeMultiPolygon:
		b.WriteString(tMultiPolygon)
		b.WriteByte('(')
		for i, p := range g.polygons {
			if i != 0 {
				b.WriteString(", ")
			}
			writePolygon(b, p)
		}
		b.WriteByte(')')
	case TypeGeometryCollection:
		writeCollection(b, g)
	}
	return nil
}

func writeCollection(b *bytes.Buffer, g *GeomColl) {
	b.WriteString(tGeometryCollection)
	b.WriteByte('(')
	n := 0
	sep := func() {
		if n != 0 {
			b.WriteString(", ")
		}
		n++
	}
	for _, p := range g.points {
		sep()
		b.WriteString(tPoint)
		writePoint(b, p)
	}
	for _, l := range g.lines {
		sep()
		b.WriteString(tLineString)
		writeCoords(b, &l.Coords)
	}
	for _, p := range g.polygons {
		sep()
		b.WriteString(tPolygon)
		writePolygon(b, p)
	}
	b.WriteByte(')')
}

func writePoint(b *bytes.Buffer, p *Point) {
	b.WriteByte('(')
	writeXY(b, p.X, p.Y)
	b.WriteByte(')')
}

func writePolygon(b *bytes.Buffer, p *Polygon) {
	b.WriteByte('(')
	writeCoords(b, &p.exterior.Coords)
	for _, r := range p.interiors {
		b.WriteString(", ")
		writeCoords(b, &r.Coords)
	}
	b.WriteByte(')')
}

func writeCoords(b *bytes.Buffer, c *Coords) {
	b.WriteByte('(')
	for i, p := range c.xy {
		if i != 0 {
			b.WriteString(", ")
		}
		writeXY(b, p.X, p.Y)
	}
	b.WriteByte(')')
}

func writeXY(b *bytes.Buffer, x, y float64) {
	b.WriteString(formatFloat(x))
	b.WriteByte(' ')
	b.WriteString(formatFloat(y))
}

// formatFloat writes the shortest decimal that round-trips, never in exponent form.
func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
