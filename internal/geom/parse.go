package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseWKT parses 2D WKT into a new GeomColl.
// Supported: POINT, LINESTRING, POLYGON, MULTIPOINT (with or without
// parenthesised members), MULTILINESTRING, MULTIPOLYGON and GEOMETRYCOLLECTION,
// each optionally EMPTY. Nested collections are flattened.
func ParseWKT(wkt string) (*GeomColl, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, fmt.Errorf("empty wkt: %w", ErrSyntax)
	}
	p := &wktParser{s: s}
	g := New()
	if err := p.geometry(g); err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.s) {
		return nil, p.errorf("unexpected trailing %q", p.s[p.pos:])
	}
	return g, nil
}

type wktParser struct {
	s   string
	pos int
}

func (p *wktParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%s at offset %d: %w", fmt.Sprintf(format, args...), p.pos, ErrSyntax)
}

func (p *wktParser) skipSpace() {
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *wktParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

func (p *wktParser) expect(c byte) error {
	if p.peek() != c {
		return p.errorf("expected %q", c)
	}
	p.pos++
	return nil
}

// accept consumes c if it is next.
func (p *wktParser) accept(c byte) bool {
	if p.peek() != c {
		return false
	}
	p.pos++
	return true
}

func (p *wktParser) keyword() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			break
		}
		p.pos++
	}
	return strings.ToUpper(p.s[start:p.pos])
}

// empty reports whether the body is EMPTY; any other tag such as Z or M is rejected.
func (p *wktParser) empty() (bool, error) {
	c := p.peek()
	if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
		return false, nil
	}
	kw := p.keyword()
	if kw == "EMPTY" {
		return true, nil
	}
	return false, p.errorf("unsupported tag %q, only 2D geometries are accepted", kw)
}

func (p *wktParser) number() (float64, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.s) && strings.IndexByte("+-.0123456789eE", p.s[p.pos]) >= 0 {
		p.pos++
	}
	if start == p.pos {
		return 0, p.errorf("expected number")
	}
	v, err := strconv.ParseFloat(p.s[start:p.pos], 64)
	if err != nil {
		return 0, p.errorf("bad number %q", p.s[start:p.pos])
	}
	return v, nil
}

func (p *wktParser) coord() (Coord, error) {
	x, err := p.number()
	if err != nil {
		return Coord{}, err
	}
	y, err := p.number()
	if err != nil {
		return Coord{}, err
	}
	if c := p.peek(); c != ',' && c != ')' {
		return Coord{}, p.errorf("expected 2D coordinate")
	}
	return Coord{X: x, Y: y}, nil
}

// list parses "(" item {"," item} ")".
func (p *wktParser) list(item func() error) error {
	if err := p.expect('('); err != nil {
		return err
	}
	for {
		if err := item(); err != nil {
			return err
		}
		if !p.accept(',') {
			break
		}
	}
	return p.expect(')')
}

func (p *wktParser) coordList() ([]Coord, error) {
	var out []Coord
	err := p.list(func() error {
		c, err := p.coord()
		out = append(out, c)
		return err
	})
	return out, err
}

func (p *wktParser) ringList() ([][]Coord, error) {
	var out [][]Coord
	err := p.list(func() error {
		r, err := p.coordList()
		out = append(out, r)
		return err
	})
	return out, err
}

func (p *wktParser) geometry(g *GeomColl) error {
	kw := p.keyword()
	if kw == "" {
		return p.errorf("expected geometry type")
	}
	empty, err := p.empty()
	if err != nil || empty {
		return err
	}
	switch kw {
	case "POINT":
		var c Coord
		err := p.list(func() error {
			var err error
			c, err = p.coord()
			return err
		})
		if err != nil {
			return err
		}
		g.AddPoint(c.X, c.Y)
		return nil
	case "LINESTRING":
		cs, err := p.coordList()
		if err != nil {
			return err
		}
		return addLinestring(g, cs)
	case "POLYGON":
		rings, err := p.ringList()
		if err != nil {
			return err
		}
		return addPolygon(g, rings)
	case "MULTIPOINT":
		return p.list(func() error {
			var (
				c   Coord
				err error
			)
			if p.peek() == '(' {
				err = p.list(func() error {
					c, err = p.coord()
					return err
				})
			} else {
				c, err = p.coord()
			}
			if err != nil {
				return err
			}
			g.AddPoint(c.X, c.Y)
			return nil
		})
	case "MULTILINESTRING":
		return p.list(func() error {
			cs, err := p.coordList()
			if err != nil {
				return err
			}
			return addLinestring(g, cs)
		})
	case "MULTIPOLYGON":
		return p.list(func() error {
			rings, err := p.ringList()
			if err != nil {
				return err
			}
			return addPolygon(g, rings)
		})
	case "GEOMETRYCOLLECTION":
		return p.list(func() error {
			return p.geometry(g)
		})
	}
	return p.errorf("unsupported wkt type %q", kw)
}

func addLinestring(g *GeomColl, cs []Coord) error {
	l, err := g.AddLinestring(len(cs))
	if err != nil {
		return err
	}
	for i, c := range cs {
		if err := l.SetVertex(i, c.X, c.Y); err != nil {
			return err
		}
	}
	return nil
}

func addPolygon(g *GeomColl, rings [][]Coord) error {
	pg, err := g.AddPolygon(len(rings[0]), len(rings)-1)
	if err != nil {
		return err
	}
	fill := func(r *Ring, cs []Coord) error {
		for i, c := range cs {
			if err := r.SetVertex(i, c.X, c.Y); err != nil {
				return err
			}
		}
		return nil
	}
	if err := fill(pg.Exterior(), rings[0]); err != nil {
		return err
	}
	for i, cs := range rings[1:] {
		r, err := pg.AddInteriorRing(i, len(cs))
		if err != nil {
			return err
		}
		if err := fill(r, cs); err != nil {
			return err
		}
	}
	return nil
}
