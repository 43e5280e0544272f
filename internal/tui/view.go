package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	// Layout sizes
	sideW := 0
	if m.showSidebar {
		sideW = sidebarWidth
	}
	headerHeight := 1
	footerHeight := 2
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)

	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, contentHeight-2)
	}

	// Header
	header := titleStyle.Render(" geodemo ─ geometry model and WKT ")
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sideW).Render(m.l.View())
	}

	mainWidth := max(10, contentWidth-sideW-1)

	// Text panel below the map
	textView := ""
	if m.showText && !m.showSummary && !m.pasteMode {
		textView = boxStyle.Width(mainWidth - 2).Render(m.stepText(max(3, contentHeight/2-2)))
	}
	mapHeight := max(4, contentHeight-lipgloss.Height(textView))
	if textView == "" {
		mapHeight = contentHeight
	}
	m.mapW = max(8, mainWidth)
	m.mapH = max(4, mapHeight)

	var mapView string
	switch {
	case m.showSummary:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(mainWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(contentHeight-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(mainWidth, contentHeight, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(m.mapW)
		m.ta.SetHeight(min(contentHeight, 12))
		mapView = lipgloss.NewStyle().Width(mainWidth).Height(contentHeight).Render(m.ta.View())
	default:
		mapView = lipgloss.NewStyle().Width(mainWidth).Height(mapHeight).Render(m.renderMap(m.mapW, m.mapH))
		if textView != "" {
			mapView = lipgloss.JoinVertical(lipgloss.Left, mapView, textView)
		}
	}

	// Inspect popup, center-left overlay
	popup := ""
	if m.inspectPopup != "" && !m.showSummary {
		maxPopupW := max(20, min(48, contentWidth/2))
		box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MaxWidth(maxPopupW).Render(m.inspectPopup)
		popup = lipgloss.Place(contentWidth, contentHeight, lipgloss.Left, lipgloss.Center, box)
	}

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	} else {
		body = mapView
	}

	// Footer / help
	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp()))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, popup, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// stepText returns the header, WKT and structural dump of the selected step,
// cut to at most maxLines lines.
func (m Model) stepText(maxLines int) string {
	if len(m.results) == 0 {
		return dimStyle.Render("no steps")
	}
	r := m.results[m.sel]
	var b strings.Builder
	if r.Geom == nil {
		return errStyle.Render(fmt.Sprintf("%s: %v", r.Name, r.Err))
	}
	b.WriteString(m.printer.Header(m.sel+1, r.Geom))
	b.WriteByte('\n')
	if r.WKT != "" {
		b.WriteString(r.WKT)
	} else {
		b.WriteString(errStyle.Render(r.Err.Error()))
	}
	b.WriteByte('\n')
	_ = m.printer.Dump(&b, r.Geom)

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) > maxLines {
		lines = append(lines[:maxLines-1], dimStyle.Render(fmt.Sprintf("… %d more lines", len(lines)-maxLines+1)))
	}
	for i, l := range lines {
		lines[i] = strings.ReplaceAll(l, "\t", "  ")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓ step",
		"[ ] prev/next",
		"←→ pan",
		"+/- zoom",
		"Tab sidebar",
		"w text",
		"p paste",
		"a summary",
		"i inspect",
		"l layers",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
