package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"Waystation/internal/behaviour"
)

// Camera is a perspective camera that follows the world transform of the object
// it is attached to. Pitch is applied to that object's local X rotation.
type Camera struct {
	behaviour.BaseComponent

	// HOT DATA - refreshed every frame from the owning transform
	Position   mgl32.Vec3 // Camera position in world space
	Front      mgl32.Vec3 // Forward direction vector
	Up         mgl32.Vec3 // Up direction vector
	Right      mgl32.Vec3 // Right direction vector
	Projection mgl32.Mat4 // Projection matrix

	// COLD DATA - configuration
	Fov         float32 // Vertical field of view in degrees
	Near        float32 // Near clipping plane
	Far         float32 // Far clipping plane
	AspectRatio float32 // Width over height

	pitch float32

	Name     string
	IsActive bool
}

func NewCamera(width, height int32) *Camera {
	c := &Camera{
		Front:       mgl32.Vec3{0, 0, -1},
		Up:          mgl32.Vec3{0, 1, 0},
		Right:       mgl32.Vec3{1, 0, 0},
		Fov:         75.0,
		Near:        0.05,
		Far:         10000.0,
		AspectRatio: float32(width) / float32(height),
		IsActive:    true,
	}
	c.UpdateProjection()
	return c
}

func (c *Camera) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeCamera
}

func (c *Camera) GetTypeName() string {
	return "Camera"
}

func (c *Camera) UpdateProjection() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
}

// Setter methods that automatically update projection
func (c *Camera) SetNear(near float32) {
	c.Near = near
	c.UpdateProjection()
}

func (c *Camera) SetFar(far float32) {
	c.Far = far
	c.UpdateProjection()
}

func (c *Camera) SetFov(fov float32) {
	c.Fov = fov
	c.UpdateProjection()
}

func (c *Camera) SetAspectRatio(aspectRatio float32) {
	c.AspectRatio = aspectRatio
	c.UpdateProjection()
}

// Pitch returns the rotation about the local X axis in radians.
func (c *Camera) Pitch() float32 {
	return c.pitch
}

// SetPitch sets the rotation about the local X axis in radians and applies it
// to the owning transform right away.
func (c *Camera) SetPitch(pitch float32) {
	c.pitch = pitch
	if obj := c.GetGameObject(); obj != nil {
		obj.Transform.SetEuler(pitch, 0, 0)
	}
	c.Sync()
}

func (c *Camera) Start() {
	c.SetPitch(c.pitch)
}

func (c *Camera) Update(dt float32) {
	c.Sync()
}

// Sync refreshes position and basis vectors from the owning transform.
func (c *Camera) Sync() {
	obj := c.GetGameObject()
	if obj == nil {
		return
	}
	world := obj.Transform.WorldMatrix()
	c.Position = mgl32.TransformCoordinate(mgl32.Vec3{}, world)
	c.Front = mgl32.TransformNormal(mgl32.Vec3{0, 0, -1}, world).Normalize()
	c.Up = mgl32.TransformNormal(mgl32.Vec3{0, 1, 0}, world).Normalize()
	c.Right = c.Front.Cross(c.Up).Normalize()
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return c.Projection
}

func (c *Camera) GetViewProjection() mgl32.Mat4 {
	return c.Projection.Mul4(c.GetViewMatrix())
}
