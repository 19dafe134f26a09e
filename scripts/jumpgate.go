package scripts

import (
	"fmt"

	"go.uber.org/zap"

	"Waystation/internal/behaviour"
	"Waystation/internal/config"
	"Waystation/internal/logger"
	"Waystation/internal/mathx"
)

type JumpgateDeps struct {
	Inner *behaviour.Transform // spins about Z
	Outer *behaviour.Transform // spins about X
}

// Jumpgate ramps two ring velocities toward their targets at a fixed
// acceleration. A ring only turns while its velocity is positive.
type Jumpgate struct {
	behaviour.BaseComponent
	slots

	acceleration  float32
	spinInner     float32
	spinOuter     float32
	innerVelocity float32
	outerVelocity float32
	targetInner   float32
	targetOuter   float32
	inner, outer  *behaviour.Transform
}

func NewJumpgate(p config.JumpgateParams, deps JumpgateDeps) (*Jumpgate, error) {
	if deps.Inner == nil || deps.Outer == nil {
		return nil, fmt.Errorf("%w: jumpgate needs both rings", ErrMissingCollaborator)
	}

	g := &Jumpgate{
		acceleration: p.Acceleration,
		spinInner:    p.SpinInnerVelocity,
		spinOuter:    p.SpinOuterVelocity,
		targetInner:  p.InitialInnerTarget,
		targetOuter:  p.InitialOuterTarget,
		inner:        deps.Inner,
		outer:        deps.Outer,
	}
	g.slots = slots{
		"spin_up": func() {
			g.SetTargetInnerVelocity(g.spinInner)
			g.SetTargetOuterVelocity(g.spinOuter)
		},
		"spin_down": func() {
			g.SetTargetInnerVelocity(0)
			g.SetTargetOuterVelocity(0)
		},
		"spin_up_inner":   func() { g.SetTargetInnerVelocity(g.spinInner) },
		"spin_down_inner": func() { g.SetTargetInnerVelocity(0) },
		"spin_up_outer":   func() { g.SetTargetOuterVelocity(g.spinOuter) },
		"spin_down_outer": func() { g.SetTargetOuterVelocity(0) },
		"stop":            g.Stop,
	}
	return g, nil
}

func (g *Jumpgate) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeScript
}

func (g *Jumpgate) GetTypeName() string {
	return "Jumpgate"
}

func (g *Jumpgate) Update(dt float32) {
	step := g.acceleration * dt
	if g.innerVelocity != g.targetInner {
		g.innerVelocity = mathx.MoveToward(g.innerVelocity, g.targetInner, step)
	}
	if g.outerVelocity != g.targetOuter {
		g.outerVelocity = mathx.MoveToward(g.outerVelocity, g.targetOuter, step)
	}

	// Negative velocities are tracked but never turn the rings.
	if g.innerVelocity > 0 {
		g.inner.RotateZ(g.innerVelocity * dt)
	}
	if g.outerVelocity > 0 {
		g.outer.RotateX(g.outerVelocity * dt)
	}
}

func (g *Jumpgate) SetTargetInnerVelocity(v float32) {
	g.targetInner = v
	logger.Log.Debug("Jumpgate inner target", zap.Float32("velocity", v))
}

func (g *Jumpgate) SetTargetOuterVelocity(v float32) {
	g.targetOuter = v
	logger.Log.Debug("Jumpgate outer target", zap.Float32("velocity", v))
}

// Stop halts both rings at once instead of ramping down.
func (g *Jumpgate) Stop() {
	g.targetInner, g.targetOuter = 0, 0
	g.innerVelocity, g.outerVelocity = 0, 0
	logger.Log.Debug("Jumpgate stopped")
}

func (g *Jumpgate) InnerVelocity() float32       { return g.innerVelocity }
func (g *Jumpgate) OuterVelocity() float32       { return g.outerVelocity }
func (g *Jumpgate) TargetInnerVelocity() float32 { return g.targetInner }
func (g *Jumpgate) TargetOuterVelocity() float32 { return g.targetOuter }

// Retune changes acceleration and spin speeds. Current velocities and targets
// are kept.
func (g *Jumpgate) Retune(obj config.Object) error {
	p := config.DefaultJumpgate()
	if err := obj.Decode(&p); err != nil {
		return err
	}
	g.acceleration = p.Acceleration
	g.spinInner = p.SpinInnerVelocity
	g.spinOuter = p.SpinOuterVelocity
	return nil
}
