package demo

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geowkt/internal/geom"
)

var wantWKT = map[string]string{
	"point":           "POINT (1.5 2.75)",
	"linestring":      "LINESTRING (1 1, 2 1, 2 2, 100 2, 100 100)",
	"polygon":         "POLYGON ((0 0, 50 0, 50 50, 0 50, 0 0), (40 40, 41 40, 41 41, 40 41, 40 40), (30 30, 31 30, 31 31, 30 31, 30 30))",
	"multipoint":      "MULTIPOINT (5 5, 15 5, 5 15, 25 5, 5 25)",
	"multilinestring": "MULTILINESTRING ((30 10, 10 30), (40 50, 50 40))",
	"multipolygon":    "MULTIPOLYGON (((60 60, 70 60, 70 70, 60 70, 60 60)), ((80 80, 90 80, 90 90, 80 90, 80 80)))",
	"collection": "GEOMETRYCOLLECTION (POINT (100 100), POINT (100 0), " +
		"LINESTRING (130 110, 110 130), LINESTRING (140 150, 150 140), " +
		"POLYGON ((160 160, 170 160, 170 170, 160 170, 160 160)), " +
		"POLYGON ((180 180, 190 180, 190 190, 180 190, 180 180)))",
}

func TestSteps(t *testing.T) {
	wantType := map[string]geom.GeometryType{
		"point":           geom.TypePoint,
		"linestring":      geom.TypeLineString,
		"polygon":         geom.TypePolygon,
		"multipoint":      geom.TypeMultiPoint,
		"multilinestring": geom.TypeMultiLineString,
		"multipolygon":    geom.TypeMultiPolygon,
		"collection":      geom.TypeGeometryCollection,
	}
	wantDim := map[string]int{
		"point": 0, "linestring": 1, "polygon": 2,
		"multipoint": 0, "multilinestring": 1, "multipolygon": 2, "collection": 2,
	}

	results := Build(Steps())
	require.Len(t, results, 7)
	for _, r := range results {
		require.NoError(t, r.Err, r.Name)
		assert.Equal(t, wantType[r.Name], r.Geom.Type(), r.Name)
		assert.Equal(t, wantDim[r.Name], r.Geom.Dimension(), r.Name)
		assert.Equal(t, wantWKT[r.Name], r.WKT, r.Name)
	}

	Release(results)
	for _, r := range results {
		assert.Nil(t, r.Geom)
	}
}

func TestPolygonRingsClosed(t *testing.T) {
	g, err := buildPolygon()
	require.NoError(t, err)
	pg := g.Polygons()[0]
	assert.True(t, pg.Exterior().Closed())
	for i, n := 0, pg.NumInteriors(); i < n; i++ {
		assert.True(t, pg.Interior(i).Closed(), "interior %d", i)
	}
}

func TestSelect(t *testing.T) {
	all := Steps()
	got, err := Select(all, nil)
	require.NoError(t, err)
	assert.Len(t, got, len(all))

	got, err = Select(all, []string{"collection", "point"})
	require.NoError(t, err)
	var names []string
	for _, s := range got {
		names = append(names, s.Name)
	}
	if diff := cmp.Diff([]string{"point", "collection"}, names); diff != "" {
		t.Errorf("selected steps (-want +got):\n%s", diff)
	}

	_, err = Select(all, []string{"point", "circle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circle")
}

func TestRun(t *testing.T) {
	steps, err := Select(Steps(), []string{"point", "polygon"})
	require.NoError(t, err)

	var buf bytes.Buffer
	results, err := Run(&buf, steps, NewPrinter(4, false), true)
	require.NoError(t, err)
	require.Len(t, results, 2)

	out := buf.String()
	for _, want := range []string{
		"step#1: POINT\tDimension=0\n",
		"\t\t\tPOINT 0/1 x=1.5000 y=2.7500\n",
		"step#2: POLYGON\tDimension=2\n",
		"\t\t\tPOLYGON 0/1 has 2 holes\n",
		"\t\t\t\tExteriorRing has 5 vertices\n",
		"\t\t\t\t\tvertex 1/5 x=50.0000 y=0.0000\n",
		"\t\t\t\tInteriorRing 1/2 has 5 vertices\n",
		"step#3: checking WKT representations\n",
		"\n" + wantWKT["point"] + "\n",
		"\n" + wantWKT["polygon"] + "\n",
	} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, wantWKT["point"]), strings.Index(out, wantWKT["polygon"]))
}

func TestRunIsolatesFailures(t *testing.T) {
	broken := Step{Name: "broken", Build: func() (*geom.GeomColl, error) {
		g := geom.New()
		_, err := g.AddLinestring(1)
		return nil, err
	}}
	unset := Step{Name: "unset", Build: func() (*geom.GeomColl, error) {
		g := geom.New()
		_, err := g.AddLinestring(3)
		return g, err
	}}
	steps := []Step{Steps()[0], broken, unset, FromWKT("extra", "MULTIPOINT((1 2),(3 4))")}

	var buf bytes.Buffer
	results, err := Run(&buf, steps, NewPrinter(2, false), true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, geom.ErrInvalidArgument))
	assert.True(t, errors.Is(err, geom.ErrMalformedGeometry))

	require.Len(t, results, 4)
	assert.Equal(t, wantWKT["point"], results[0].WKT)
	assert.Nil(t, results[1].Geom)
	assert.NotNil(t, results[2].Geom)
	assert.Empty(t, results[2].WKT)
	assert.Equal(t, "MULTIPOINT (1 2, 3 4)", results[3].WKT)

	out := buf.String()
	assert.Contains(t, out, "step#2: broken failed")
	assert.Contains(t, out, "step#3: LINESTRING\tDimension=1")
	assert.Contains(t, out, "vertex 0/3 unset")
	assert.Contains(t, out, "step#5: checking WKT representations")
}

func TestHeaderColor(t *testing.T) {
	g, err := buildPoint()
	require.NoError(t, err)
	plain := NewPrinter(4, false).Header(1, g)
	assert.Equal(t, "step#1: POINT\tDimension=0", plain)
	colored := NewPrinter(4, true).Header(1, g)
	assert.Contains(t, colored, "POINT")
}
