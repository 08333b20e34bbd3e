package material

import (
	"fmt"
	"math"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
)

// Dielectric is a clear refractive material such as glass or water
type Dielectric struct {
	RefractiveIndex float64 // Relative to the surrounding medium, e.g. 1.5 for glass in air
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Validate checks the refractive index
func (d *Dielectric) Validate() error {
	if !(d.RefractiveIndex > 0) || math.IsInf(d.RefractiveIndex, 0) {
		return fmt.Errorf("%w: refractive index must be positive and finite, got %g",
			core.ErrInvalidConfiguration, d.RefractiveIndex)
	}
	return nil
}

// indexRatio returns the incident over transmitted index for a ray striking face
func (d *Dielectric) indexRatio(face FaceSide) float64 {
	if face == Inward {
		return d.RefractiveIndex // Leaving the material
	}
	return 1.0 / d.RefractiveIndex // Entering from outside
}

// Scatter either reflects or refracts. Past the critical angle it always
// reflects; otherwise it reflects with the Schlick probability.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	eta := d.indexRatio(hit.Face)
	direction := rayIn.Direction

	cosTheta := math.Min(direction.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	var scattered core.Vec3
	if eta*sinTheta > 1.0 || Reflectance(cosTheta, eta) > sampler.Get1D() {
		scattered = reflect(direction, hit.Normal)
	} else {
		scattered = refract(direction, hit.Normal, eta)
	}

	return ScatterResult{
		Scattered:   core.MustRay(hit.Point, scattered.Normalize()),
		Attenuation: core.NewVec3(1, 1, 1), // Clear glass absorbs nothing
	}, true
}
