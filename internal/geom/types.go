package geom

import "math"

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Coord is a single 2D vertex.
type Coord struct {
	X float64
	Y float64
}

func (c Coord) finite() bool {
	return !math.IsNaN(c.X) && !math.IsNaN(c.Y) && !math.IsInf(c.X, 0) && !math.IsInf(c.Y, 0)
}

// GeometryType is the OGC kind of a GeomColl, derived from what it holds.
type GeometryType int

const (
	TypeEmpty GeometryType = iota
	TypePoint
	TypeLineString
	TypePolygon
	TypeMultiPoint
	TypeMultiLineString
	TypeMultiPolygon
	TypeGeometryCollection
)

var typeNames = [...]string{
	TypeEmpty:              "EMPTY / NULL GEOMETRY",
	TypePoint:              "POINT",
	TypeLineString:         "LINESTRING",
	TypePolygon:            "POLYGON",
	TypeMultiPoint:         "MULTIPOINT",
	TypeMultiLineString:    "MULTILINESTRING",
	TypeMultiPolygon:       "MULTIPOLYGON",
	TypeGeometryCollection: "GEOMETRYCOLLECTION",
}

func (t GeometryType) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return typeNames[TypeEmpty]
	}
	return typeNames[t]
}

// typeOf maps the per-kind occupancy counts to a GeometryType.
func typeOf(points, lines, polys int) GeometryType {
	kinds := 0
	for _, n := range [3]int{points, lines, polys} {
		if n > 0 {
			kinds++
		}
	}
	switch {
	case kinds == 0:
		return TypeEmpty
	case kinds > 1:
		return TypeGeometryCollection
	case points == 1:
		return TypePoint
	case points > 1:
		return TypeMultiPoint
	case lines == 1:
		return TypeLineString
	case lines > 1:
		return TypeMultiLineString
	case polys == 1:
		return TypePolygon
	default:
		return TypeMultiPolygon
	}
}
