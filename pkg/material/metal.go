package material

import (
	"github.com/df07/go-diffuse-raytracer/pkg/core"
)

// Metal reflects like a mirror, blurred by Fuzzness
type Metal struct {
	Albedo   core.Vec3 // Fraction of light kept per bounce, per channel
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material. Fuzzness is clamped to [0, 1].
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	return &Metal{Albedo: albedo, Fuzzness: core.NewInterval(0, 1).Clamp(fuzzness)}
}

// Validate checks that the albedo is a valid fraction
func (m *Metal) Validate() error {
	return validateAlbedo("metal", m.Albedo)
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := reflect(rayIn.Direction, hit.Normal)

	// Fuzz moves the end of the mirror direction to a random point in a ball of radius Fuzzness
	if m.Fuzzness > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(sampler).Multiply(m.Fuzzness))
	}

	// Rays pushed below the surface are absorbed
	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   core.MustRay(hit.Point, reflected.Normalize()),
		Attenuation: m.Albedo,
	}, true
}
