package engine

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"Waystation/internal/input"
)

var namedKeys = map[glfw.Key]string{
	glfw.KeyUp:           "Up",
	glfw.KeyDown:         "Down",
	glfw.KeyLeft:         "Left",
	glfw.KeyRight:        "Right",
	glfw.KeySpace:        "Space",
	glfw.KeyEnter:        "Enter",
	glfw.KeyTab:          "Tab",
	glfw.KeyEscape:       "Escape",
	glfw.KeyLeftShift:    "Shift",
	glfw.KeyRightShift:   "Shift",
	glfw.KeyLeftControl:  "Ctrl",
	glfw.KeyRightControl: "Ctrl",
	glfw.KeyLeftAlt:      "Alt",
	glfw.KeyRightAlt:     "Alt",
}

// keyName returns the binding name of key: "A".."Z", "0".."9" or one of the
// named keys. Unknown keys have no name.
func keyName(key glfw.Key) (string, bool) {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return string(rune('A' + (key - glfw.KeyA))), true
	case key >= glfw.Key0 && key <= glfw.Key9:
		return string(rune('0' + (key - glfw.Key0))), true
	}
	name, ok := namedKeys[key]
	return name, ok
}

// mouseButton maps a glfw button to a pointer button and its binding name.
func mouseButton(b glfw.MouseButton) (input.MouseButton, string, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return input.ButtonLeft, "mouse_left", true
	case glfw.MouseButtonRight:
		return input.ButtonRight, "mouse_right", true
	case glfw.MouseButtonMiddle:
		return input.ButtonMiddle, "mouse_middle", true
	}
	return 0, "", false
}

// cursorMode maps a capture mode to a glfw cursor mode. glfw 3.3 cannot
// confine a visible cursor, so Confined shows a normal cursor.
func cursorMode(m input.CaptureMode) int {
	if m == input.CaptureCaptured {
		return glfw.CursorDisabled
	}
	return glfw.CursorNormal
}

// wheelName names a scroll step; zero offsets have no name.
func wheelName(yoff float64) (string, bool) {
	switch {
	case yoff > 0:
		return "wheel_up", true
	case yoff < 0:
		return "wheel_down", true
	}
	return "", false
}
