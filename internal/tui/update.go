package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const sidebarWidth = 28

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.l.SetSize(sidebarWidth-2, m.height-1-2) // provisional; will be refined in View
	case tea.KeyMsg:
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				m.status = "view mode"
				return m, nil
			case "enter":
				w := strings.TrimSpace(m.ta.Value())
				if w == "" {
					m.status = "paste: empty"
					return m, nil
				}
				if err := m.addPasted(w); err != nil {
					m.status = "wkt error: " + err.Error()
					return m, nil
				}
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		if m.showSummary {
			switch msg.String() {
			case "a", "esc":
				m.showSummary = false
				return m, nil
			case "enter":
				m.selectStep(m.tbl.Cursor())
				m.showSummary = false
				return m, nil
			case "ctrl+c", "q":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.showPoints = !m.showPoints
			m.status = fmt.Sprintf("points: %v", m.showPoints)
		case "2":
			m.showLines = !m.showLines
			m.status = fmt.Sprintf("lines: %v", m.showLines)
		case "3":
			m.showPolys = !m.showPolys
			m.status = fmt.Sprintf("polys: %v", m.showPolys)
		case "l":
			// toggle all layers
			all := m.showPoints && m.showLines && m.showPolys
			m.showPoints = !all
			m.showLines = !all
			m.showPolys = !all
			m.status = fmt.Sprintf("layers: pts=%v ls=%v poly=%v", m.showPoints, m.showLines, m.showPolys)
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "tab":
			m.showSidebar = !m.showSidebar
		case "w":
			m.showText = !m.showText
		case "h":
			m.helpVisible = !m.helpVisible
		case "p":
			m.pasteMode = true
			m.inspectPopup = ""
			m.ta.SetValue("")
			m.status = "paste mode"
			return m, m.ta.Focus()
		case "a":
			m.showSummary = true
			m.refreshSummary()
		case "i":
			if m.inspectPopup != "" {
				m.inspectPopup = ""
				break
			}
			x, y, what, ok := m.inspectNearest()
			if !ok {
				m.inspectPopup = "no vertex nearby"
				m.status = m.inspectPopup
				break
			}
			r := m.results[m.sel]
			m.inspectPopup = strings.Join([]string{
				fmt.Sprintf("step: %s", r.Name),
				fmt.Sprintf("type: %s", r.Geom.Type()),
				fmt.Sprintf("nearest: %s", what),
				fmt.Sprintf("x=%g y=%g", x, y),
			}, "\n")
			m.status = "inspect popup"
		case "]", "n":
			m.selectStep(m.sel + 1)
		case "[", "N":
			m.selectStep(m.sel - 1)
		case "up", "down":
			if m.showSidebar {
				var cmd tea.Cmd
				m.l, cmd = m.l.Update(msg)
				if it, ok := m.l.SelectedItem().(stepItem); ok && it.index != m.sel {
					m.selectStep(it.index)
				}
				return m, cmd
			}
			if msg.String() == "up" {
				m.offsetY -= 1
			} else {
				m.offsetY += 1
			}
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	}
	return m, nil
}
