package tui

import (
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"geowkt/internal/demo"
	"geowkt/internal/geom"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool
	showText    bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// Step browser
	l       list.Model
	results []demo.Result
	sel     int
	printer *demo.Printer
	pasted  int

	// Selected geometry, flattened for rendering
	points   [][2]float64
	bbox     geom.BBox
	lines    [][][2]float64
	polygons [][][][2]float64

	// last rendered map size (for inspect)
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	showPoints bool
	showLines  bool
	showPolys  bool

	// inspect popup
	inspectPopup string

	// step summary table
	showSummary bool
	tbl         table.Model
}

// New returns a browser over already built step results.
func New(results []demo.Result, printer *demo.Printer) Model {
	m := Model{
		showSidebar: true,
		helpVisible: true,
		showText:    true,
		zoom:        1.0,
		status:      "geodemo ready",
		showPoints:  true,
		showLines:   true,
		showPolys:   true,
		results:     results,
		printer:     printer,
	}
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = true
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Steps"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(false)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT, LINESTRING, POLYGON, MULTI*, GEOMETRYCOLLECTION). Press Enter to add; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// summary table setup
	m.tbl = table.New(table.WithColumns(summaryColumns()), table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshSteps()
	if len(m.results) > 0 {
		m.selectStep(0)
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }
