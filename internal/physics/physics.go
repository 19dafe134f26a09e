// Package physics resolves character movement against static level geometry.
//
// Horizontal movement runs on a Chipmunk space laid out in the XZ plane:
// bodies are circles and walls are segments. The vertical axis is a flat
// floor at a fixed height.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakecoffman/cp"

	"Waystation/internal/behaviour"
)

// Solver moves a body with a requested velocity and reports the outcome.
type Solver interface {
	// Move integrates velocity over dt, resolves collisions and returns the
	// velocity that remains afterwards.
	Move(velocity mgl32.Vec3, dt float32) mgl32.Vec3
	OnFloor() bool
	Velocity() mgl32.Vec3
	Gravity() mgl32.Vec3
}

// World owns the collision space.
type World struct {
	space   *cp.Space
	floorY  float32
	gravity mgl32.Vec3
	walls   []*cp.Shape
}

func NewWorld(floorY float32, gravity mgl32.Vec3) *World {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})

	return &World{
		space:   space,
		floorY:  floorY,
		gravity: gravity,
	}
}

// FloorY returns the floor height.
func (w *World) FloorY() float32 {
	return w.floorY
}

// AddWall adds a static wall between two points of the XZ plane.
func (w *World) AddWall(a, b mgl32.Vec2, thickness float32) {
	shape := cp.NewSegment(w.space.StaticBody, toCP(a), toCP(b), float64(thickness))
	shape.SetFriction(0)
	shape.SetElasticity(0)
	w.space.AddShape(shape)
	w.walls = append(w.walls, shape)
}

// Walls returns the number of static walls.
func (w *World) Walls() int {
	return len(w.walls)
}

// NewBody creates a character body with its feet at pos.
func (w *World) NewBody(pos mgl32.Vec3, radius float32) *Body {
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: float64(pos.X()), Y: float64(pos.Z())})
	shape := cp.NewCircle(body, float64(radius), cp.Vector{})
	shape.SetFriction(0)
	shape.SetElasticity(0)
	w.space.AddBody(body)
	w.space.AddShape(shape)

	b := &Body{
		world: w,
		body:  body,
		shape: shape,
		y:     pos.Y(),
	}
	b.onFloor = b.y <= w.floorY
	return b
}

func toCP(v mgl32.Vec2) cp.Vector {
	return cp.Vector{X: float64(v.X()), Y: float64(v.Y())}
}

// Body is a character controlled by velocity. As a component it writes its
// resolved position to the owning transform.
type Body struct {
	behaviour.BaseComponent

	world    *World
	body     *cp.Body
	shape    *cp.Shape
	y        float32
	velocity mgl32.Vec3
	onFloor  bool
}

func (b *Body) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeBody
}

func (b *Body) GetTypeName() string {
	return "Body"
}

// Start snaps the body to its owner's position.
func (b *Body) Start() {
	if obj := b.GetGameObject(); obj != nil {
		b.Teleport(obj.Transform.Position)
	}
}

// Teleport moves the body without collision checks.
func (b *Body) Teleport(pos mgl32.Vec3) {
	b.body.SetPosition(cp.Vector{X: float64(pos.X()), Y: float64(pos.Z())})
	b.y = pos.Y()
	b.onFloor = b.y <= b.world.floorY
}

func (b *Body) Move(velocity mgl32.Vec3, dt float32) mgl32.Vec3 {
	if dt <= 0 {
		return velocity
	}

	b.body.SetVelocityVector(cp.Vector{X: float64(velocity.X()), Y: float64(velocity.Z())})
	b.world.space.Step(float64(dt))
	v := b.body.Velocity()

	vy := velocity.Y()
	b.y += vy * dt
	b.onFloor = false
	if b.y <= b.world.floorY {
		b.y = b.world.floorY
		b.onFloor = true
		if vy < 0 {
			vy = 0
		}
	}

	b.velocity = mgl32.Vec3{float32(v.X), vy, float32(v.Y)}
	if obj := b.GetGameObject(); obj != nil {
		obj.Transform.SetPosition(b.Position())
	}
	return b.velocity
}

func (b *Body) Position() mgl32.Vec3 {
	p := b.body.Position()
	return mgl32.Vec3{float32(p.X), b.y, float32(p.Y)}
}

func (b *Body) Velocity() mgl32.Vec3 {
	return b.velocity
}

func (b *Body) OnFloor() bool {
	return b.onFloor
}

func (b *Body) Gravity() mgl32.Vec3 {
	return b.world.gravity
}

// OnDestroy removes the body from the space.
func (b *Body) OnDestroy() {
	if b.shape != nil {
		b.world.space.RemoveShape(b.shape)
		b.world.space.RemoveBody(b.body)
		b.shape = nil
	}
}
