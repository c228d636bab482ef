package main

import (
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/quintinfsmith/wrecked"
)

// compositorLayer adapts a wrecked.RectManager's composed grid to bubbletea
// v2's tea.Layer, mirroring the role the teacher's render/bubbletea.Renderer
// plays for its own immediate-mode buffer (Draw reads a snapshot produced
// on the update goroutine; ultraviolet calls it from its own render loop).
// Unlike the teacher's Renderer, there is no separate front/back buffer
// here: the RectManager's composed grid already only changes between
// Update calls, and Draw only ever runs between those, so reading it
// directly is safe without an extra swap step.
type compositorLayer struct {
	m *wrecked.RectManager
}

func (l *compositorLayer) Draw(s uv.Screen, rect uv.Rectangle) {
	grid := l.m.Grid()
	w, h := grid.Width(), grid.Height()

	for y := rect.Min.Y; y < rect.Max.Y && y < h; y++ {
		if y < 0 {
			continue
		}
		for x := rect.Min.X; x < rect.Max.X && x < w; x++ {
			if x < 0 {
				continue
			}
			cell := grid.At(x, y)
			ch := cell.Ch
			if ch == 0 {
				ch = ' '
			}

			var style uv.Style
			if fg, ok := cell.Fx.FgColor(); ok {
				style.Fg = ansiPalette[fg]
			}
			if bg, ok := cell.Fx.BgColor(); ok {
				style.Bg = ansiPalette[bg]
			}
			var attrs uint8
			if cell.Fx.Bold() {
				attrs |= uv.AttrBold
			}
			if cell.Fx.Invert() {
				attrs |= uv.AttrReverse
			}
			style.Attrs = attrs
			if cell.Fx.Underline() {
				style.Underline = uv.UnderlineSingle
			}

			s.SetCell(x, y, &uv.Cell{
				Content: string(ch),
				Style:   style,
				Width:   1,
			})
		}
	}
}
