// Package ui holds the offscreen surfaces a screen renders into: a viewport
// with attached canvases and the sprite quad that shows it in the world.
package ui

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// Canvas is an instantiated UI scene.
type Canvas struct {
	Name    string
	Lines   []string
	visible bool
	freed   bool
}

func (c *Canvas) SetVisible(v bool) {
	c.visible = v
}

func (c *Canvas) Visible() bool {
	return c.visible
}

// Free marks the canvas as discarded. A freed canvas is never shown again.
func (c *Canvas) Free() {
	c.freed = true
	c.visible = false
}

func (c *Canvas) Freed() bool {
	return c.freed
}

// Template instantiates canvases.
type Template struct {
	Name  string
	Lines []string
}

var ErrEmptyTemplate = errors.New("ui: template has no name")

func (t *Template) Instantiate() (*Canvas, error) {
	if t == nil || t.Name == "" {
		return nil, ErrEmptyTemplate
	}
	lines := make([]string, len(t.Lines))
	copy(lines, t.Lines)
	return &Canvas{Name: t.Name, Lines: lines, visible: true}, nil
}

// Viewport is an offscreen render target holding canvases in draw order.
type Viewport struct {
	Width, Height int
	children      []*Canvas
}

func NewViewport() *Viewport {
	return &Viewport{}
}

func (v *Viewport) SetSize(width, height int) {
	v.Width, v.Height = width, height
}

func (v *Viewport) AddChild(c *Canvas) {
	v.children = append(v.children, c)
}

func (v *Viewport) RemoveChild(c *Canvas) {
	for i, child := range v.children {
		if child == c {
			v.children = append(v.children[:i], v.children[i+1:]...)
			return
		}
	}
}

// MoveChild moves c to index, clamped to the child range.
func (v *Viewport) MoveChild(c *Canvas, index int) {
	v.RemoveChild(c)
	if index < 0 {
		index = 0
	}
	if index > len(v.children) {
		index = len(v.children)
	}
	v.children = append(v.children, nil)
	copy(v.children[index+1:], v.children[index:])
	v.children[index] = c
}

func (v *Viewport) Children() []*Canvas {
	return v.children
}

// Sprite is the world-space quad that displays a viewport.
type Sprite struct {
	Region    mgl32.Vec2
	PixelSize float32
}

func NewSprite() *Sprite {
	return &Sprite{PixelSize: 0.01}
}

func (s *Sprite) SetRegion(width, height float32) {
	s.Region = mgl32.Vec2{width, height}
}

func (s *Sprite) SetPixelSize(size float32) {
	s.PixelSize = size
}

// WorldSize returns the quad size in world units.
func (s *Sprite) WorldSize() mgl32.Vec2 {
	return s.Region.Mul(s.PixelSize)
}
