package integrator

import "github.com/df07/go-diffuse-raytracer/pkg/core"

// Gradient is a sky that blends vertically from Bottom to Top
type Gradient struct {
	Bottom core.Vec3 // Color seen looking straight down
	Top    core.Vec3 // Color seen looking straight up
}

// DefaultGradient returns the white to sky-blue background
func DefaultGradient() Gradient {
	return Gradient{
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
		Top:    core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Color returns the background color for a ray that escaped the scene.
// Only the vertical component of the unit direction matters.
func (g Gradient) Color(ray core.Ray) core.Vec3 {
	a := 0.5 * (ray.Direction.Y + 1.0)
	return g.Bottom.Lerp(g.Top, a)
}
