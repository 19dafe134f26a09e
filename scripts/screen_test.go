package scripts

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"Waystation/internal/config"
	"Waystation/internal/ui"
)

func newTestScreen(t *testing.T, p config.ScreenParams) (*Screen, *ui.Viewport, *ui.Sprite) {
	t.Helper()
	vp, sprite := ui.NewViewport(), ui.NewSprite()
	s, err := NewScreen(p, ScreenDeps{Viewport: vp, Sprite: sprite})
	if err != nil {
		t.Fatalf("NewScreen failed: %v", err)
	}
	return s, vp, sprite
}

func TestScreenAppliesSize(t *testing.T) {
	p := config.DefaultScreen()
	p.X, p.Y, p.Width = 200, 100, 2
	_, vp, sprite := newTestScreen(t, p)

	if vp.Width != 200 || vp.Height != 100 {
		t.Errorf("Expected viewport 200x100, got %dx%d", vp.Width, vp.Height)
	}
	if !sprite.WorldSize().ApproxEqual(mgl32.Vec2{2, 1}) {
		t.Errorf("Expected quad 2x1, got %v", sprite.WorldSize())
	}
}

func TestScreenSettersReapply(t *testing.T) {
	s, vp, sprite := newTestScreen(t, config.DefaultScreen())

	s.SetX(400)
	s.SetWidth(4)
	if vp.Width != 400 {
		t.Errorf("Expected viewport width 400, got %d", vp.Width)
	}
	if !sprite.WorldSize().ApproxEqual(mgl32.Vec2{4, 1}) {
		t.Errorf("Expected quad 4x1, got %v", sprite.WorldSize())
	}

	s.SetY(0)
	if vp.Height != 100 {
		t.Errorf("non-positive height should be ignored, got %d", vp.Height)
	}
}

func TestScreenChangeUI(t *testing.T) {
	p := config.DefaultScreen()
	p.Template = "first"
	s, vp, _ := newTestScreen(t, p)

	first := s.Canvas()
	other := &ui.Canvas{Name: "overlay"}
	vp.AddChild(other)

	if err := s.ChangeUI(&ui.Template{Name: "second"}); err != nil {
		t.Fatalf("ChangeUI failed: %v", err)
	}
	if !first.Freed() {
		t.Error("old canvas should be freed")
	}
	children := vp.Children()
	if len(children) != 2 || children[0].Name != "second" {
		t.Errorf("new canvas should be first child, got %v", children)
	}

	s.ClearUI()
	if s.Canvas() != nil || len(vp.Children()) != 1 {
		t.Error("ClearUI should drop the canvas")
	}

	if err := s.ChangeUI(&ui.Template{}); !errors.Is(err, ui.ErrEmptyTemplate) {
		t.Errorf("Expected ErrEmptyTemplate, got %v", err)
	}
}

func TestScreenPower(t *testing.T) {
	p := config.DefaultScreen()
	p.Template = "status"
	p.On = false
	s, _, _ := newTestScreen(t, p)

	if s.Canvas().Visible() {
		t.Fatal("screen built off should hide its canvas")
	}

	on, _ := s.Slot("turn_on")
	on()
	if !s.On() || !s.Canvas().Visible() {
		t.Error("turn_on should show the canvas")
	}

	s.Toggle()
	if s.On() || s.Canvas().Visible() {
		t.Error("toggle should turn the screen off")
	}
	s.Toggle()
	if !s.On() {
		t.Error("toggle should turn the screen back on")
	}
}

func TestScreenSetLines(t *testing.T) {
	p := config.DefaultScreen()
	p.Template = "status"
	p.Lines = []string{"idle"}
	s, _, _ := newTestScreen(t, p)

	s.SetLines("spinning", "inner 0.1")
	if got := s.Canvas().Lines; len(got) != 2 || got[0] != "spinning" {
		t.Errorf("unexpected lines %v", got)
	}
}

func TestNewScreenNeedsViewport(t *testing.T) {
	_, err := NewScreen(config.DefaultScreen(), ScreenDeps{Sprite: ui.NewSprite()})
	if !errors.Is(err, ErrMissingCollaborator) {
		t.Errorf("Expected ErrMissingCollaborator, got %v", err)
	}
}

func screenObject(t *testing.T, params map[string]any) config.Object {
	t.Helper()
	obj := config.Object{Name: "status_screen", Kind: config.KindScreen}
	if err := obj.Params.Encode(params); err != nil {
		t.Fatal(err)
	}
	return obj
}

func TestScreenRetuneWithoutTemplateClears(t *testing.T) {
	p := config.DefaultScreen()
	p.Template, p.Lines = "status", []string{"GATE IDLE"}
	s, vp, _ := newTestScreen(t, p)
	old := s.Canvas()

	if err := s.Retune(screenObject(t, map[string]any{"x": 100})); err != nil {
		t.Fatalf("Retune failed: %v", err)
	}
	if s.Canvas() != nil || !old.Freed() {
		t.Error("dropping the template should clear the canvas")
	}
	if len(vp.Children()) != 0 {
		t.Errorf("Expected an empty viewport, got %d children", len(vp.Children()))
	}
}

func TestScreenRetuneUpdatesLines(t *testing.T) {
	p := config.DefaultScreen()
	p.Template, p.Lines = "status", []string{"GATE IDLE"}
	s, _, _ := newTestScreen(t, p)
	c := s.Canvas()

	err := s.Retune(screenObject(t, map[string]any{"template": "status", "lines": []string{"GATE SPINNING"}}))
	if err != nil {
		t.Fatalf("Retune failed: %v", err)
	}
	if s.Canvas() != c {
		t.Error("same template should keep the canvas")
	}
	if len(c.Lines) != 1 || c.Lines[0] != "GATE SPINNING" {
		t.Errorf("Expected [GATE SPINNING], got %v", c.Lines)
	}
}
