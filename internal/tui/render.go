package tui

import (
	"fmt"
	"strings"
)

// renderMap draws the selected geometry into a w x h cell braille canvas.
func (m Model) renderMap(w, h int) string {
	c := newCanvas(w, h)

	if m.showPolys {
		for _, poly := range m.polygons {
			var rings [][][2]int
			for _, ring := range poly {
				var sm [][2]int
				for _, p := range ring {
					mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
					if !ok {
						continue
					}
					sm = append(sm, [2]int{mx, my})
				}
				if len(sm) >= 3 {
					rings = append(rings, sm)
				}
			}
			if len(rings) == 0 {
				continue
			}
			c.fill(rings)
			for _, r := range rings {
				c.outline(r)
			}
		}
	}

	if m.showLines {
		for _, ls := range m.lines {
			var prev *[2]int
			for _, p := range ls {
				mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
				if !ok {
					continue
				}
				if prev != nil {
					c.line(prev[0], prev[1], mx, my)
				}
				prev = &[2]int{mx, my}
			}
		}
	}

	// points get a 2x2 dot so they remain visible next to filled polygons
	if m.showPoints {
		for _, p := range m.points {
			mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
			if !ok {
				continue
			}
			c.set(mx, my)
			c.set(mx+1, my)
			c.set(mx, my+1)
			c.set(mx+1, my+1)
		}
	}
	return strings.Join(c.lines(), "\n")
}

// screenXYMicro maps x/y into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(x, y float64, w, h int) (int, int, bool) {
	if !(m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY) {
		return 0, 0, false
	}
	nx := (x - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	ny := (y - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// inspectNearest finds the vertex closest to the viewport center.
func (m Model) inspectNearest() (x, y float64, what string, ok bool) {
	w, h := m.mapW, m.mapH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	cx, cy := w, h*2 // center in micro coords
	bestD := -1
	consider := func(p [2]float64, label string) {
		sx, sy, ok := m.screenXYMicro(p[0], p[1], w, h)
		if !ok {
			return
		}
		dx, dy := sx-cx, sy-cy
		if d := dx*dx + dy*dy; bestD < 0 || d < bestD {
			bestD = d
			x, y, what = p[0], p[1], label
		}
	}
	for i, p := range m.points {
		consider(p, fmt.Sprintf("point %d", i))
	}
	for i, ls := range m.lines {
		for j, p := range ls {
			consider(p, fmt.Sprintf("linestring %d vertex %d", i, j))
		}
	}
	for i, poly := range m.polygons {
		for r, ring := range poly {
			for j, p := range ring {
				consider(p, fmt.Sprintf("polygon %d ring %d vertex %d", i, r, j))
			}
		}
	}
	return x, y, what, bestD >= 0
}
