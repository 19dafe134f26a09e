// Package picking resolves which hit area lies under the pointer.
package picking

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"Waystation/internal/behaviour"
	"Waystation/internal/camera"
)

// Ray represents a ray in 3D space
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// RayIntersectSphere tests if a ray intersects a sphere
// Returns: (intersected, distance, intersection point)
func RayIntersectSphere(ray Ray, sphereCenter mgl32.Vec3, radius float32) (bool, float32, mgl32.Vec3) {
	oc := ray.Origin.Sub(sphereCenter)

	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return false, 0, mgl32.Vec3{}
	}

	sqrtDisc := float32(math.Sqrt(float64(discriminant)))
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	// Closest non-negative hit. An origin inside the sphere hits at the far side.
	var t float32
	switch {
	case t1 >= 0:
		t = t1
	case t2 >= 0:
		t = t2
	default:
		return false, 0, mgl32.Vec3{}
	}

	return true, t, ray.Origin.Add(ray.Direction.Mul(t))
}

// ScreenToRay converts a screen position to a world space ray from the camera
func ScreenToRay(cam *camera.Camera, screenX, screenY float32, windowWidth, windowHeight int) Ray {
	ndcX := 2.0*screenX/float32(windowWidth) - 1.0
	ndcY := 1.0 - 2.0*screenY/float32(windowHeight)

	clipCoords := mgl32.Vec4{ndcX, ndcY, -1.0, 1.0}

	eyeCoords := cam.Projection.Inv().Mul4x1(clipCoords)
	eyeCoords = mgl32.Vec4{eyeCoords.X(), eyeCoords.Y(), -1.0, 0.0}

	worldDir := cam.GetViewMatrix().Inv().Mul4x1(eyeCoords).Vec3().Normalize()

	return Ray{
		Origin:    cam.Position,
		Direction: worldDir,
	}
}

// Area is a spherical hit region that follows a transform.
type Area struct {
	Name      string
	Transform *behaviour.Transform
	Offset    mgl32.Vec3
	Radius    float32
}

// Center returns the world position of the area.
func (a *Area) Center() mgl32.Vec3 {
	if a.Transform == nil {
		return a.Offset
	}
	return mgl32.TransformCoordinate(a.Offset, a.Transform.WorldMatrix())
}

// Picker holds the hit areas of a scene.
type Picker struct {
	areas []*Area
}

func NewPicker() *Picker {
	return &Picker{}
}

// Add registers an area. A second area with the same name replaces the first.
func (p *Picker) Add(area *Area) {
	p.Remove(area.Name)
	p.areas = append(p.areas, area)
}

func (p *Picker) Remove(name string) {
	for i, a := range p.areas {
		if a.Name == name {
			p.areas = append(p.areas[:i], p.areas[i+1:]...)
			return
		}
	}
}

func (p *Picker) Areas() []*Area {
	return p.areas
}

// Pick returns the nearest area hit by ray.
func (p *Picker) Pick(ray Ray) (string, bool) {
	best := ""
	bestDist := float32(math.MaxFloat32)
	for _, a := range p.areas {
		hit, dist, _ := RayIntersectSphere(ray, a.Center(), a.Radius)
		if hit && dist < bestDist {
			best, bestDist = a.Name, dist
		}
	}
	return best, best != ""
}
