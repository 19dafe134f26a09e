package engine

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"Waystation/internal/input"
)

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  glfw.Key
		want string
		ok   bool
	}{
		{glfw.KeyW, "W", true},
		{glfw.KeyA, "A", true},
		{glfw.KeyZ, "Z", true},
		{glfw.Key3, "3", true},
		{glfw.KeyUp, "Up", true},
		{glfw.KeyRightShift, "Shift", true},
		{glfw.KeyF5, "", false},
	}
	for _, tt := range tests {
		got, ok := keyName(tt.key)
		if got != tt.want || ok != tt.ok {
			t.Errorf("keyName(%v): Expected %q/%v, got %q/%v", tt.key, tt.want, tt.ok, got, ok)
		}
	}
}

func TestMouseButton(t *testing.T) {
	b, name, ok := mouseButton(glfw.MouseButtonRight)
	if !ok || b != input.ButtonRight || name != "mouse_right" {
		t.Errorf("Expected right/mouse_right, got %v/%q", b, name)
	}
	if _, _, ok := mouseButton(glfw.MouseButton4); ok {
		t.Error("extra buttons should not map")
	}
}

func TestCursorMode(t *testing.T) {
	if cursorMode(input.CaptureCaptured) != glfw.CursorDisabled {
		t.Error("captured should disable the cursor")
	}
	if cursorMode(input.CaptureConfined) != glfw.CursorNormal || cursorMode(input.CaptureFree) != glfw.CursorNormal {
		t.Error("free and confined should show the cursor")
	}
}

func TestWheelName(t *testing.T) {
	if n, _ := wheelName(1); n != "wheel_up" {
		t.Errorf("Expected wheel_up, got %q", n)
	}
	if n, _ := wheelName(-0.5); n != "wheel_down" {
		t.Errorf("Expected wheel_down, got %q", n)
	}
	if _, ok := wheelName(0); ok {
		t.Error("zero scroll should not map")
	}
}
