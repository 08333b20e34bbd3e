package integrator

import (
	"math"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
	"github.com/df07/go-diffuse-raytracer/pkg/geometry"
)

// ShadowAcneBias is the smallest t accepted for a hit. It keeps a bounced ray
// from hitting the surface it just left.
const ShadowAcneBias = 0.001

// PathTracingIntegrator follows each ray through material scattering until it
// escapes to the background or runs out of bounces
type PathTracingIntegrator struct {
	background Gradient
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(background Gradient) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		background: background,
	}
}

// RayColor computes the color for a single ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler, depth int) core.Vec3 {
	// Out of bounces: no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(ShadowAcneBias, math.Inf(1)))
	if !isHit {
		return pt.background.Color(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Material absorbed the ray
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	return scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, world, sampler, depth-1))
}
