package scripts

import (
	"fmt"

	"go.uber.org/zap"

	"Waystation/internal/behaviour"
	"Waystation/internal/config"
	"Waystation/internal/logger"
	"Waystation/internal/ui"
)

type ScreenDeps struct {
	Viewport *ui.Viewport
	Sprite   *ui.Sprite
}

// Screen shows one UI canvas on a quad in the world. The quad keeps its world
// width while the viewport resolution changes.
type Screen struct {
	behaviour.BaseComponent
	slots

	template *ui.Template
	x, y     int
	width    float32
	on       bool

	viewport *ui.Viewport
	sprite   *ui.Sprite
	canvas   *ui.Canvas
}

func NewScreen(p config.ScreenParams, deps ScreenDeps) (*Screen, error) {
	if deps.Viewport == nil || deps.Sprite == nil {
		return nil, fmt.Errorf("%w: screen needs a viewport and a sprite", ErrMissingCollaborator)
	}

	s := &Screen{
		x:        p.X,
		y:        p.Y,
		width:    p.Width,
		on:       p.On,
		viewport: deps.Viewport,
		sprite:   deps.Sprite,
	}
	s.slots = slots{
		"turn_on":  s.TurnOn,
		"turn_off": s.TurnOff,
		"toggle":   s.Toggle,
	}
	s.ApplySize()
	if p.Template != "" {
		if err := s.ChangeUI(&ui.Template{Name: p.Template, Lines: p.Lines}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Screen) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeScript
}

func (s *Screen) GetTypeName() string {
	return "Screen"
}

// ApplySize matches the sprite and viewport to the x by y resolution.
func (s *Screen) ApplySize() {
	s.sprite.SetRegion(float32(s.x), float32(s.y))
	s.sprite.SetPixelSize(s.width / float32(s.x))
	s.viewport.SetSize(s.x, s.y)
}

// ChangeUI discards the current canvas and shows a new instance of t.
func (s *Screen) ChangeUI(t *ui.Template) error {
	s.ClearUI()
	c, err := t.Instantiate()
	if err != nil {
		return err
	}
	s.template = t
	s.canvas = c
	s.viewport.AddChild(c)
	s.viewport.MoveChild(c, 0)
	c.SetVisible(s.on)
	return nil
}

func (s *Screen) ClearUI() {
	if s.canvas == nil {
		return
	}
	s.viewport.RemoveChild(s.canvas)
	s.canvas.Free()
	s.canvas = nil
}

func (s *Screen) TurnOn()  { s.setOn(true) }
func (s *Screen) TurnOff() { s.setOn(false) }
func (s *Screen) Toggle()  { s.setOn(!s.on) }

func (s *Screen) setOn(on bool) {
	s.on = on
	if s.canvas != nil {
		s.canvas.SetVisible(on)
	}
	logger.Log.Debug("Screen power", zap.String("screen", objectName(s)), zap.Bool("on", on))
}

func (s *Screen) SetTemplate(t *ui.Template) error {
	return s.ChangeUI(t)
}

// SetX and SetY ignore non-positive sizes.
func (s *Screen) SetX(x int) {
	if x <= 0 {
		return
	}
	s.x = x
	s.ApplySize()
}

func (s *Screen) SetY(y int) {
	if y <= 0 {
		return
	}
	s.y = y
	s.ApplySize()
}

func (s *Screen) SetWidth(width float32) {
	s.width = width
	s.ApplySize()
}

// SetLines replaces the text of the current canvas.
func (s *Screen) SetLines(lines ...string) {
	if s.canvas == nil {
		return
	}
	s.canvas.Lines = append(s.canvas.Lines[:0], lines...)
}

func (s *Screen) On() bool {
	return s.on
}

// Canvas returns the canvas on display, nil after ClearUI.
func (s *Screen) Canvas() *ui.Canvas {
	return s.canvas
}

// Retune resizes the screen and swaps the canvas when the template changed.
// An unchanged template takes the new lines; no template clears the canvas.
// Power is left as it is.
func (s *Screen) Retune(obj config.Object) error {
	p := config.DefaultScreen()
	if err := obj.Decode(&p); err != nil {
		return err
	}
	s.x, s.y, s.width = p.X, p.Y, p.Width
	s.ApplySize()
	switch {
	case p.Template == "":
		s.template = nil
		s.ClearUI()
	case s.template == nil || s.template.Name != p.Template || s.canvas == nil:
		return s.ChangeUI(&ui.Template{Name: p.Template, Lines: p.Lines})
	default:
		s.template.Lines = p.Lines
		s.SetLines(p.Lines...)
	}
	return nil
}

func (s *Screen) OnDestroy() {
	s.ClearUI()
}
