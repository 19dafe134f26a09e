// Package mathx holds the small numeric helpers shared by the scripts.
package mathx

import "github.com/go-gl/mathgl/mgl32"

// MoveToward steps from toward to by at most delta and never past it.
// A non-positive delta leaves from unchanged.
func MoveToward(from, to, delta float32) float32 {
	if delta <= 0 {
		return from
	}
	if to > from {
		if from+delta > to {
			return to
		}
		return from + delta
	}
	if from-delta < to {
		return to
	}
	return from - delta
}

// MoveTowardVec3 applies MoveToward to each axis independently.
func MoveTowardVec3(from, to mgl32.Vec3, delta float32) mgl32.Vec3 {
	return mgl32.Vec3{
		MoveToward(from[0], to[0], delta),
		MoveToward(from[1], to[1], delta),
		MoveToward(from[2], to[2], delta),
	}
}

// Clamp bounds v to [min, max].
func Clamp(v, min, max float32) float32 {
	return mgl32.Clamp(v, min, max)
}
