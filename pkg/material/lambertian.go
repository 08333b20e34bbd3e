package material

import (
	"github.com/df07/go-diffuse-raytracer/pkg/core"
)

// Lambertian represents a diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Fraction of light kept per bounce, per channel
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// NewUniformDiffuse creates a gray lambertian material that keeps the same
// fraction of light in every channel
func NewUniformDiffuse(reflectance float64) *Lambertian {
	return NewLambertian(core.NewVec3(reflectance, reflectance, reflectance))
}

// Validate checks that the albedo is a valid fraction
func (l *Lambertian) Validate() error {
	return validateAlbedo("lambertian", l.Albedo)
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.MustRay(hit.Point, DiffuseDirection(hit.Normal, sampler)),
		Attenuation: l.Albedo,
	}, true
}

// DiffuseDirection returns unit(normal + r) where r is a random unit vector
// flipped into the normal's hemisphere
func DiffuseDirection(normal core.Vec3, sampler core.Sampler) core.Vec3 {
	r := core.RandomOnUnitSphere(sampler)
	if normal.Dot(r) <= 0 {
		r = r.Negate()
	}
	// |normal + r| >= 1 here, so the result is always a valid unit vector
	return normal.Add(r).Normalize()
}
