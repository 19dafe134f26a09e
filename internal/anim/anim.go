// Package anim plays named animation cues on transforms.
package anim

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"Waystation/internal/behaviour"
	"Waystation/internal/logger"
)

// CuePlayer starts the animation registered under a cue name. It is fire and
// forget: callers never wait on or query the result.
type CuePlayer interface {
	Play(cue string)
}

// Fanout forwards each cue to several players, e.g. a tween and a sound.
type Fanout []CuePlayer

func (f Fanout) Play(cue string) {
	for _, p := range f {
		if p != nil {
			p.Play(cue)
		}
	}
}

// Clip moves the target between two offsets from its rest position.
type Clip struct {
	Name     string
	Duration float32
	From     mgl32.Vec3
	To       mgl32.Vec3
}

// Player tweens a transform through clips. It is a component so the manager
// advances it every frame.
type Player struct {
	behaviour.BaseComponent

	target  *behaviour.Transform
	rest    mgl32.Vec3
	clips   map[string]Clip
	current *Clip
	elapsed float32
	last    string
}

// NewPlayer animates target. The target's current position is taken as rest.
func NewPlayer(target *behaviour.Transform, clips ...Clip) *Player {
	p := &Player{
		target: target,
		rest:   target.Position,
		clips:  make(map[string]Clip, len(clips)),
	}
	for _, c := range clips {
		p.clips[c.Name] = c
	}
	return p
}

func (p *Player) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeAnimation
}

func (p *Player) GetTypeName() string {
	return "AnimationPlayer"
}

func (p *Player) Play(cue string) {
	clip, ok := p.clips[cue]
	if !ok {
		logger.Log.Warn("Unknown animation cue", zap.String("cue", cue))
		return
	}
	p.current = &clip
	p.elapsed = 0
	p.last = cue
	if clip.Duration <= 0 {
		p.apply(1)
	}
}

func (p *Player) Update(dt float32) {
	if p.current == nil {
		return
	}
	p.elapsed += dt
	t := float32(1)
	if p.current.Duration > 0 {
		t = mgl32.Clamp(p.elapsed/p.current.Duration, 0, 1)
	}
	p.apply(t)
}

func (p *Player) apply(t float32) {
	c := p.current
	offset := c.From.Add(c.To.Sub(c.From).Mul(t))
	p.target.SetPosition(p.rest.Add(offset))
	if t >= 1 {
		p.current = nil
	}
}

// Playing returns the cue in progress, empty when idle.
func (p *Player) Playing() string {
	if p.current == nil {
		return ""
	}
	return p.current.Name
}

// Last returns the most recently started cue.
func (p *Player) Last() string {
	return p.last
}

// ButtonClips returns the press and release clips for a button cap that sinks
// by depth.
func ButtonClips(depth, duration float32) []Clip {
	down := mgl32.Vec3{0, -depth, 0}
	return []Clip{
		{Name: "press", Duration: duration, To: down},
		{Name: "release", Duration: duration, From: down},
	}
}
