// Package input defines the events scripts react to and the router hosts feed them through.
package input

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
)

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return fmt.Sprintf("button(%d)", uint8(b))
	}
}

// Event is one of PointerPress, PointerRelease, PointerMotion, ActionPress or
// ActionRelease. Consumers switch on the concrete type.
type Event interface {
	event()
}

// PointerPress is a pointer button going down. Target names the hit area under the
// pointer, empty when nothing was hit.
type PointerPress struct {
	Button   MouseButton
	Position mgl32.Vec2
	Target   string
}

// PointerRelease is a pointer button going up.
type PointerRelease struct {
	Button   MouseButton
	Position mgl32.Vec2
	Target   string
}

// PointerMotion carries the pointer position and the screen-space delta since the
// previous motion event.
type PointerMotion struct {
	Position mgl32.Vec2
	Relative mgl32.Vec2
	Target   string
}

// ActionPress is a named action becoming active.
type ActionPress struct {
	Action string
}

// ActionRelease is a named action becoming inactive.
type ActionRelease struct {
	Action string
}

func (PointerPress) event()   {}
func (PointerRelease) event() {}
func (PointerMotion) event()  {}
func (ActionPress) event()    {}
func (ActionRelease) event()  {}

// target returns the hit area an event is aimed at.
func target(ev Event) string {
	switch e := ev.(type) {
	case PointerPress:
		return e.Target
	case PointerRelease:
		return e.Target
	case PointerMotion:
		return e.Target
	}
	return ""
}

// IsLeftPress reports whether ev is a left pointer button press.
func IsLeftPress(ev Event) bool {
	p, ok := ev.(PointerPress)
	return ok && p.Button == ButtonLeft
}

// IsLeftRelease reports whether ev is a left pointer button release.
func IsLeftRelease(ev Event) bool {
	r, ok := ev.(PointerRelease)
	return ok && r.Button == ButtonLeft
}
