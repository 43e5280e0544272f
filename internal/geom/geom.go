// Package geom holds a 2D simple-features geometry container and its WKT codec.
//
// A GeomColl owns three ordered sequences: points, linestrings and polygons.
// Its OGC type is derived from how many of each it holds, so a collection
// with a single point is a POINT, two points a MULTIPOINT, and a point plus a
// polygon a GEOMETRYCOLLECTION.
//
// A GeomColl is built by one owner. Once every vertex is set it is not
// mutated again and may be read from several goroutines.
package geom

import "fmt"

const (
	minLineVertices = 2
	minRingVertices = 4
)

// Coords is a fixed-size vertex sequence, filled in by index after allocation.
type Coords struct {
	xy    []Coord
	set   []bool
	unset int
}

func newCoords(n int) Coords {
	return Coords{
		xy:    make([]Coord, n),
		set:   make([]bool, n),
		unset: n,
	}
}

// Len returns the declared vertex count.
func (c *Coords) Len() int { return len(c.xy) }

// SetVertex overwrites the vertex at index i.
func (c *Coords) SetVertex(i int, x, y float64) error {
	if i < 0 || i >= len(c.xy) {
		return fmt.Errorf("set vertex %d of %d: %w", i, len(c.xy), ErrIndexOutOfRange)
	}
	c.xy[i] = Coord{X: x, Y: y}
	if !c.set[i] {
		c.set[i] = true
		c.unset--
	}
	return nil
}

// Vertex returns the vertex at index i; ok is false when the slot was never set.
func (c *Coords) Vertex(i int) (Coord, bool) {
	if i < 0 || i >= len(c.xy) {
		return Coord{}, false
	}
	return c.xy[i], c.set[i]
}

// Complete reports whether every slot has been set.
func (c *Coords) Complete() bool { return c.unset == 0 }

func (c *Coords) check() error {
	if c.unset > 0 {
		for i, ok := range c.set {
			if !ok {
				return fmt.Errorf("vertex %d of %d never set: %w", i, len(c.xy), ErrMalformedGeometry)
			}
		}
	}
	for i, p := range c.xy {
		if !p.finite() {
			return fmt.Errorf("vertex %d is not finite: %w", i, ErrMalformedGeometry)
		}
	}
	return nil
}

type Point struct {
	X float64
	Y float64
}

type Linestring struct {
	Coords
}

// Ring is a closed vertex sequence bounding a Polygon. Closing it is up to the caller.
type Ring struct {
	Coords
}

// Closed reports whether the first and last vertices are set and identical.
func (r *Ring) Closed() bool {
	n := r.Len()
	first, ok1 := r.Vertex(0)
	last, ok2 := r.Vertex(n - 1)
	return ok1 && ok2 && first == last
}

type Polygon struct {
	exterior  *Ring
	interiors []*Ring // nil until AddInteriorRing fills the slot
}

func (p *Polygon) Exterior() *Ring { return p.exterior }

func (p *Polygon) NumInteriors() int { return len(p.interiors) }

// Interior returns the interior ring in slot i, or nil if the slot is empty or out of range.
func (p *Polygon) Interior(i int) *Ring {
	if i < 0 || i >= len(p.interiors) {
		return nil
	}
	return p.interiors[i]
}

// AddInteriorRing allocates n vertex slots for interior ring i.
// Filling a slot twice replaces the earlier ring.
func (p *Polygon) AddInteriorRing(i, n int) (*Ring, error) {
	if i < 0 || i >= len(p.interiors) {
		return nil, fmt.Errorf("interior ring %d of %d: %w", i, len(p.interiors), ErrIndexOutOfRange)
	}
	if n < minRingVertices {
		return nil, fmt.Errorf("interior ring with %d vertices, need %d: %w", n, minRingVertices, ErrInvalidArgument)
	}
	r := &Ring{Coords: newCoords(n)}
	p.interiors[i] = r
	return r, nil
}

func (p *Polygon) check() error {
	if err := p.exterior.check(); err != nil {
		return fmt.Errorf("exterior ring: %w", err)
	}
	for i, r := range p.interiors {
		if r == nil {
			return fmt.Errorf("interior ring %d never added: %w", i, ErrMalformedGeometry)
		}
		if err := r.check(); err != nil {
			return fmt.Errorf("interior ring %d: %w", i, err)
		}
	}
	return nil
}

// GeomColl is the general geometry container.
type GeomColl struct {
	points   []*Point
	lines    []*Linestring
	polygons []*Polygon
}

func New() *GeomColl {
	return &GeomColl{}
}

// AddPoint appends a point.
func (g *GeomColl) AddPoint(x, y float64) *Point {
	p := &Point{X: x, Y: y}
	g.points = append(g.points, p)
	return p
}

// AddLinestring appends a linestring with n unset vertices.
func (g *GeomColl) AddLinestring(n int) (*Linestring, error) {
	if n < minLineVertices {
		return nil, fmt.Errorf("linestring with %d vertices, need %d: %w", n, minLineVertices, ErrInvalidArgument)
	}
	l := &Linestring{Coords: newCoords(n)}
	g.lines = append(g.lines, l)
	return l, nil
}

// AddPolygon appends a polygon whose exterior ring has n unset vertices and
// which reserves the given number of interior ring slots.
func (g *GeomColl) AddPolygon(n, interiors int) (*Polygon, error) {
	if n < minRingVertices {
		return nil, fmt.Errorf("exterior ring with %d vertices, need %d: %w", n, minRingVertices, ErrInvalidArgument)
	}
	if interiors < 0 {
		return nil, fmt.Errorf("%d interior rings: %w", interiors, ErrInvalidArgument)
	}
	p := &Polygon{
		exterior:  &Ring{Coords: newCoords(n)},
		interiors: make([]*Ring, interiors),
	}
	g.polygons = append(g.polygons, p)
	return p, nil
}

func (g *GeomColl) Points() []*Point           { return g.points }
func (g *GeomColl) Linestrings() []*Linestring { return g.lines }
func (g *GeomColl) Polygons() []*Polygon       { return g.polygons }

func (g *GeomColl) NumPoints() int      { return len(g.points) }
func (g *GeomColl) NumLinestrings() int { return len(g.lines) }
func (g *GeomColl) NumPolygons() int    { return len(g.polygons) }

// Type derives the OGC geometry type from the occupancy counts.
func (g *GeomColl) Type() GeometryType {
	if g == nil {
		return TypeEmpty
	}
	return typeOf(len(g.points), len(g.lines), len(g.polygons))
}

// Dimension returns the highest topological dimension held: 0 for points,
// 1 for linestrings, 2 for polygons and -1 when empty.
func (g *GeomColl) Dimension() int {
	switch {
	case g == nil:
		return -1
	case len(g.polygons) > 0:
		return 2
	case len(g.lines) > 0:
		return 1
	case len(g.points) > 0:
		return 0
	}
	return -1
}

// Check walks every owned geometry and reports the first vertex or ring slot
// that was never filled, or any non-finite coordinate.
func (g *GeomColl) Check() error {
	if g == nil {
		return nil
	}
	for i, p := range g.points {
		if !(Coord{X: p.X, Y: p.Y}).finite() {
			return fmt.Errorf("point %d is not finite: %w", i, ErrMalformedGeometry)
		}
	}
	for i, l := range g.lines {
		if err := l.check(); err != nil {
			return fmt.Errorf("linestring %d: %w", i, err)
		}
	}
	for i, p := range g.polygons {
		if err := p.check(); err != nil {
			return fmt.Errorf("polygon %d: %w", i, err)
		}
	}
	return nil
}

// Destroy releases everything the collection owns and leaves it empty.
func (g *GeomColl) Destroy() {
	if g == nil {
		return
	}
	clear(g.points)
	clear(g.lines)
	clear(g.polygons)
	g.points, g.lines, g.polygons = nil, nil, nil
}
