package termhost

import (
	"Waystation/internal/config"
	"Waystation/internal/scene"
)

const (
	boxWidth  = 16
	boxHeight = 7
	boxGap    = 2
	boxTop    = 2
)

// box is the cell rectangle a control is drawn in and clicked through.
type box struct {
	Name string
	Kind string
	X, Y int
	W, H int
}

func (b box) contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// layout places the scene's buttons and levers side by side, wrapping at the
// terminal width.
type layout struct {
	boxes []box
}

func newLayout(s *scene.Scene, width int) layout {
	var l layout
	x, y := boxGap, boxTop
	for _, name := range s.Names() {
		e, _ := s.Entry(name)
		kind := e.Config.Kind
		if kind != config.KindButton && kind != config.KindLever {
			continue
		}
		if x+boxWidth > width && x > boxGap {
			x = boxGap
			y += boxHeight + 1
		}
		l.boxes = append(l.boxes, box{Name: name, Kind: kind, X: x, Y: y, W: boxWidth, H: boxHeight})
		x += boxWidth + boxGap
	}
	return l
}

// At returns the control under a cell, or "" for empty space.
func (l layout) At(x, y int) string {
	for _, b := range l.boxes {
		if b.contains(x, y) {
			return b.Name
		}
	}
	return ""
}

// Bottom is the first row below every box.
func (l layout) Bottom() int {
	bottom := boxTop
	for _, b := range l.boxes {
		if b.Y+b.H > bottom {
			bottom = b.Y + b.H
		}
	}
	return bottom
}
