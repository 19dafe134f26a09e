package termhost

import (
	"github.com/gdamore/tcell/v2"

	"Waystation/scripts"
)

var (
	styleDefault = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Bold(true)
	styleBox     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleActive  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

func (h *Host) draw() {
	h.screen.Clear()
	drawText(h.screen, 1, 0, styleTitle, h.cfg.Window.Title)
	drawText(h.screen, len(h.cfg.Window.Title)+3, 0, styleDim, "click or drag the controls, Esc quits")

	for _, b := range h.layout.boxes {
		h.drawBox(b)
	}
	for i, line := range statusLines(h.scene, h.capture) {
		drawText(h.screen, 1, h.layout.Bottom()+1+i, styleDefault, line)
	}
	h.screen.Show()
}

func (h *Host) drawBox(b box) {
	style := styleBox
	e, _ := h.scene.Entry(b.Name)
	switch sc := e.Script.(type) {
	case *scripts.Button:
		if sc.Pressed() {
			style = styleActive
		}
		drawFrame(h.screen, b, style)
		label := "[  PUSH  ]"
		if sc.Pressed() {
			label = "[ ###### ]"
		}
		drawText(h.screen, b.X+(b.W-len(label))/2, b.Y+b.H/2, style, label)
	case *scripts.Lever:
		if sc.Held() {
			style = styleActive
		}
		drawFrame(h.screen, b, style)
		track := b.H - 2
		col := b.X + b.W/2
		knob := leverBar(sc.Position(), track)
		for i := 0; i < track; i++ {
			r := '│'
			if i == knob {
				r = '█'
			}
			h.screen.SetContent(col, b.Y+1+i, r, nil, style)
		}
	}
	drawText(h.screen, b.X+1, b.Y, style, truncate(b.Name, b.W-2))
}

func drawFrame(s tcell.Screen, b box, style tcell.Style) {
	right, bottom := b.X+b.W-1, b.Y+b.H-1
	for x := b.X + 1; x < right; x++ {
		s.SetContent(x, b.Y, '─', nil, style)
		s.SetContent(x, bottom, '─', nil, style)
	}
	for y := b.Y + 1; y < bottom; y++ {
		s.SetContent(b.X, y, '│', nil, style)
		s.SetContent(right, y, '│', nil, style)
	}
	s.SetContent(b.X, b.Y, '┌', nil, style)
	s.SetContent(right, b.Y, '┐', nil, style)
	s.SetContent(b.X, bottom, '└', nil, style)
	s.SetContent(right, bottom, '┘', nil, style)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
