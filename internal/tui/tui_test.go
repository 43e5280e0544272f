package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geowkt/internal/demo"
)

func newModel(t *testing.T) Model {
	t.Helper()
	results := demo.Build(demo.Steps())
	m := New(results, demo.NewPrinter(4, false))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func key(t *testing.T, m Model, k string) Model {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestNewSelectsFirstStep(t *testing.T) {
	m := newModel(t)
	assert.Equal(t, 0, m.sel)
	assert.Len(t, m.points, 1)
	assert.Contains(t, m.status, "point")
	assert.True(t, m.bbox.MaxX > m.bbox.MinX, "single point gets a padded extent")
}

func TestStepNavigation(t *testing.T) {
	m := newModel(t)
	m = key(t, m, "]")
	assert.Equal(t, 1, m.sel)
	assert.Len(t, m.lines, 1)
	m = key(t, m, "down")
	assert.Equal(t, 2, m.sel)
	require.Len(t, m.polygons, 1)
	assert.Len(t, m.polygons[0], 3, "exterior plus two holes")
	m = key(t, m, "[")
	assert.Equal(t, 1, m.sel)

	for i := 0; i < 20; i++ {
		m = key(t, m, "]")
	}
	assert.Equal(t, len(m.results)-1, m.sel, "selection stops at the last step")
}

func TestPasteAddsStep(t *testing.T) {
	m := newModel(t)
	n := len(m.results)
	m = key(t, m, "p")
	require.True(t, m.pasteMode)

	m.ta.SetValue("MULTIPOINT((1 2),(3 4))")
	m = key(t, m, "enter")
	assert.False(t, m.pasteMode)
	require.Len(t, m.results, n+1)
	assert.Equal(t, n, m.sel)
	assert.Equal(t, "paste-1", m.results[n].Name)
	assert.Equal(t, "MULTIPOINT (1 2, 3 4)", m.results[n].WKT)

	m = key(t, m, "p")
	m.ta.SetValue("LINESTRING(1 1)")
	m = key(t, m, "enter")
	assert.True(t, m.pasteMode, "stays in paste mode on error")
	assert.Contains(t, m.status, "wkt error")
	assert.Len(t, m.results, n+1)
	m = key(t, m, "esc")
	assert.False(t, m.pasteMode)
}

func TestSummaryTable(t *testing.T) {
	m := newModel(t)
	m = key(t, m, "a")
	require.True(t, m.showSummary)
	rows := m.tbl.Rows()
	require.Len(t, rows, 7)
	assert.Equal(t, "collection", rows[6][0])
	assert.Equal(t, "GEOMETRYCOLLECTION", rows[6][1])
	assert.Equal(t, "2", rows[6][2])
	assert.Equal(t, "1 1, 100 100", rows[1][6])
	m = key(t, m, "a")
	assert.False(t, m.showSummary)
}

func TestLayerToggles(t *testing.T) {
	m := newModel(t)
	m = key(t, m, "2")
	assert.False(t, m.showLines)
	m = key(t, m, "l")
	assert.True(t, m.showPoints && m.showLines && m.showPolys)
	m = key(t, m, "l")
	assert.False(t, m.showPoints || m.showLines || m.showPolys)
}

func TestRenderMap(t *testing.T) {
	m := newModel(t)
	m = key(t, m, "]")
	out := m.renderMap(40, 10)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 10)
	assert.True(t, strings.ContainsFunc(out, func(r rune) bool { return r > 0x2800 && r <= 0x28FF }), "linestring is drawn")

	m.showLines = false
	assert.Equal(t, strings.TrimSpace(strings.ReplaceAll(m.renderMap(40, 10), "\n", "")), "", "hidden layer draws nothing")
}

func TestInspect(t *testing.T) {
	m := newModel(t)
	m = key(t, m, "i")
	assert.Contains(t, m.inspectPopup, "point 0")
	assert.Contains(t, m.inspectPopup, "x=1.5 y=2.75")
	m = key(t, m, "i")
	assert.Empty(t, m.inspectPopup)
}

func TestView(t *testing.T) {
	m := newModel(t)
	v := m.View()
	assert.Contains(t, v, "geodemo")
	assert.Contains(t, v, "POINT (1.5 2.75)")
}
