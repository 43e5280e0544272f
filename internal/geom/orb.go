package geom

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Orb converts g to the matching orb geometry: a single member maps to
// orb.Point, orb.LineString or orb.Polygon, a single kind to the orb Multi*
// type and a mixture to orb.Collection ordered points, lines, polygons.
// An empty collection maps to an empty orb.Collection.
func (g *GeomColl) Orb() (orb.Geometry, error) {
	if err := g.Check(); err != nil {
		return nil, err
	}
	switch g.Type() {
	case TypePoint:
		return orbPoint(g.points[0]), nil
	case TypeLineString:
		return orbLineString(g.lines[0]), nil
	case TypePolygon:
		return orbPolygon(g.polygons[0]), nil
	case TypeMultiPoint:
		mp := make(orb.MultiPoint, 0, len(g.points))
		for _, p := range g.points {
			mp = append(mp, orbPoint(p))
		}
		return mp, nil
	case TypeMultiLineString:
		ml := make(orb.MultiLineString, 0, len(g.lines))
		for _, l := range g.lines {
			ml = append(ml, orbLineString(l))
		}
		return ml, nil
	case TypeMultiPolygon:
		mp := make(orb.MultiPolygon, 0, len(g.polygons))
		for _, p := range g.polygons {
			mp = append(mp, orbPolygon(p))
		}
		return mp, nil
	}
	c := orb.Collection{}
	if g == nil {
		return c, nil
	}
	for _, p := range g.points {
		c = append(c, orbPoint(p))
	}
	for _, l := range g.lines {
		c = append(c, orbLineString(l))
	}
	for _, p := range g.polygons {
		c = append(c, orbPolygon(p))
	}
	return c, nil
}

func orbPoint(p *Point) orb.Point { return orb.Point{p.X, p.Y} }

func orbPoints(c *Coords) []orb.Point {
	out := make([]orb.Point, len(c.xy))
	for i, v := range c.xy {
		out[i] = orb.Point{v.X, v.Y}
	}
	return out
}

func orbLineString(l *Linestring) orb.LineString { return orb.LineString(orbPoints(&l.Coords)) }

func orbPolygon(p *Polygon) orb.Polygon {
	pg := make(orb.Polygon, 0, 1+len(p.interiors))
	pg = append(pg, orb.Ring(orbPoints(&p.exterior.Coords)))
	for _, r := range p.interiors {
		pg = append(pg, orb.Ring(orbPoints(&r.Coords)))
	}
	return pg
}

// FromOrb builds a GeomColl from an orb geometry. Collections are flattened
// and bounds become their rectangle polygon.
func FromOrb(og orb.Geometry) (*GeomColl, error) {
	g := New()
	if err := addOrb(g, og); err != nil {
		return nil, err
	}
	return g, nil
}

func addOrb(g *GeomColl, og orb.Geometry) error {
	switch v := og.(type) {
	case nil:
		return nil
	case orb.Point:
		g.AddPoint(v[0], v[1])
	case orb.MultiPoint:
		for _, p := range v {
			g.AddPoint(p[0], p[1])
		}
	case orb.LineString:
		return addLinestring(g, coordsOf(v))
	case orb.MultiLineString:
		for _, l := range v {
			if err := addLinestring(g, coordsOf(l)); err != nil {
				return err
			}
		}
	case orb.Ring:
		return addPolygon(g, [][]Coord{coordsOf(v)})
	case orb.Polygon:
		return addOrbPolygon(g, v)
	case orb.MultiPolygon:
		for _, p := range v {
			if err := addOrbPolygon(g, p); err != nil {
				return err
			}
		}
	case orb.Bound:
		return addOrbPolygon(g, v.ToPolygon())
	case orb.Collection:
		for _, m := range v {
			if err := addOrb(g, m); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("orb geometry %T: %w", og, ErrInvalidArgument)
	}
	return nil
}

func addOrbPolygon(g *GeomColl, p orb.Polygon) error {
	if len(p) == 0 {
		return nil
	}
	rings := make([][]Coord, len(p))
	for i, r := range p {
		rings[i] = coordsOf(r)
	}
	return addPolygon(g, rings)
}

func coordsOf[T ~[]orb.Point](pts T) []Coord {
	out := make([]Coord, len(pts))
	for i, p := range pts {
		out[i] = Coord{X: p[0], Y: p[1]}
	}
	return out
}

// BBox returns the minimum bounding rectangle of g. ok is false for an
// empty or malformed collection.
func (g *GeomColl) BBox() (bbox BBox, ok bool) {
	if g.Type() == TypeEmpty {
		return BBox{}, false
	}
	og, err := g.Orb()
	if err != nil {
		return BBox{}, false
	}
	b := og.Bound()
	return BBox{MinX: b.Min[0], MinY: b.Min[1], MaxX: b.Max[0], MaxY: b.Max[1]}, true
}
