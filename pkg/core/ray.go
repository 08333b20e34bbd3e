package core

import (
	"fmt"
	"math"
)

// unitTolerance is how far a ray direction's length may stray from 1
const unitTolerance = 1e-4

// Ray represents a ray with an origin and a unit direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray. The direction must be unit length.
func NewRay(origin, direction Vec3) (Ray, error) {
	// Written so that NaN and Inf lengths fail the check
	if !(math.Abs(direction.Length()-1.0) <= unitTolerance) {
		return Ray{}, fmt.Errorf("%w: ray direction %v has length %g, expected a unit vector",
			ErrInvalidGeometry, direction, direction.Length())
	}
	return Ray{Origin: origin, Direction: direction}, nil
}

// MustRay is like NewRay but panics when the direction is not unit length.
// Use it where the direction was just normalized.
func MustRay(origin, direction Vec3) Ray {
	ray, err := NewRay(origin, direction)
	if err != nil {
		panic(err)
	}
	return ray
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
