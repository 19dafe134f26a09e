package scripts

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"Waystation/internal/behaviour"
	"Waystation/internal/config"
)

func newTestGate(t *testing.T, accel float32) (*Jumpgate, *behaviour.GameObject, *behaviour.GameObject) {
	t.Helper()
	inner := behaviour.NewGameObject("inner")
	outer := behaviour.NewGameObject("outer")
	p := config.DefaultJumpgate()
	p.Acceleration = accel
	g, err := NewJumpgate(p, JumpgateDeps{Inner: inner.Transform, Outer: outer.Transform})
	if err != nil {
		t.Fatalf("NewJumpgate failed: %v", err)
	}
	return g, inner, outer
}

func TestJumpgateRampsWithoutOvershoot(t *testing.T) {
	g, _, _ := newTestGate(t, 2)
	g.SetTargetInnerVelocity(10)

	g.Update(1)
	if g.InnerVelocity() != 2 {
		t.Fatalf("Expected 2 after one tick, got %v", g.InnerVelocity())
	}

	for i := 0; i < 4; i++ {
		g.Update(1)
	}
	if g.InnerVelocity() != 10 {
		t.Fatalf("Expected 10 after five ticks, got %v", g.InnerVelocity())
	}

	g.Update(1)
	if g.InnerVelocity() != 10 {
		t.Errorf("velocity should stay at target, got %v", g.InnerVelocity())
	}
	if g.OuterVelocity() != 0 {
		t.Errorf("outer ring should be untouched, got %v", g.OuterVelocity())
	}
}

func TestJumpgateRampsDown(t *testing.T) {
	g, _, _ := newTestGate(t, 3)
	g.SetTargetOuterVelocity(4)
	g.Update(1)
	g.Update(1)
	g.SetTargetOuterVelocity(0)
	g.Update(1)
	if g.OuterVelocity() != 1 {
		t.Errorf("Expected 1, got %v", g.OuterVelocity())
	}
	g.Update(1)
	if g.OuterVelocity() != 0 {
		t.Errorf("Expected 0 without undershoot, got %v", g.OuterVelocity())
	}
}

func TestJumpgateRotatesOnlyForward(t *testing.T) {
	g, inner, outer := newTestGate(t, 100)

	g.SetTargetInnerVelocity(1)
	g.SetTargetOuterVelocity(-1)
	g.Update(0.5)

	want := mgl32.QuatRotate(0.5, mgl32.Vec3{0, 0, 1})
	if !inner.Transform.Rotation.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("inner ring: Expected %v, got %v", want, inner.Transform.Rotation)
	}
	if g.OuterVelocity() != -1 {
		t.Errorf("Expected outer velocity -1, got %v", g.OuterVelocity())
	}
	if !outer.Transform.Rotation.ApproxEqual(mgl32.QuatIdent()) {
		t.Errorf("negative velocity should not rotate, got %v", outer.Transform.Rotation)
	}
}

func TestJumpgateSlots(t *testing.T) {
	g, _, _ := newTestGate(t, 1)
	p := config.DefaultJumpgate()

	spinUp, _ := g.Slot("spin_up")
	spinUp()
	if g.TargetInnerVelocity() != p.SpinInnerVelocity || g.TargetOuterVelocity() != p.SpinOuterVelocity {
		t.Errorf("spin_up should target the spin velocities, got %v/%v", g.TargetInnerVelocity(), g.TargetOuterVelocity())
	}

	g.Update(1)
	stop, _ := g.Slot("stop")
	stop()
	if g.InnerVelocity() != 0 || g.TargetInnerVelocity() != 0 {
		t.Error("stop should halt the rings immediately")
	}

	for _, name := range []string{"spin_down", "spin_up_inner", "spin_down_inner", "spin_up_outer", "spin_down_outer"} {
		if _, ok := g.Slot(name); !ok {
			t.Errorf("missing slot %q", name)
		}
	}
}

func TestNewJumpgateNeedsRings(t *testing.T) {
	inner := behaviour.NewGameObject("inner")
	_, err := NewJumpgate(config.DefaultJumpgate(), JumpgateDeps{Inner: inner.Transform})
	if !errors.Is(err, ErrMissingCollaborator) {
		t.Errorf("Expected ErrMissingCollaborator, got %v", err)
	}
}
