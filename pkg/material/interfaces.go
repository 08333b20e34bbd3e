package material

import (
	"fmt"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
)

// Material decides how a surface responds to an incident ray
type Material interface {
	// Scatter returns the attenuation and the scattered ray, or false when
	// the ray is absorbed
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// Validator is implemented by materials whose parameters can be out of range
type Validator interface {
	Validate() error
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// FaceSide records which side of a surface a ray struck
type FaceSide int

const (
	// Outward means the ray arrived from outside the surface
	Outward FaceSide = iota
	// Inward means the ray started inside the surface
	Inward
)

func (f FaceSide) String() string {
	switch f {
	case Outward:
		return "outward"
	case Inward:
		return "inward"
	default:
		return "unknown"
	}
}

// HitRecord contains information about a ray-object intersection.
// Material is shared by every record produced against the same shape.
type HitRecord struct {
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Unit surface normal, always facing against the incoming ray
	T        float64   // Parameter t along the ray
	Face     FaceSide  // Which side of the surface was hit
	Material Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines the face side
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	if outwardNormal.Dot(ray.Direction) < 0 {
		h.Face = Outward
		h.Normal = outwardNormal
	} else {
		h.Face = Inward
		h.Normal = outwardNormal.Negate()
	}
}

// FrontFace reports whether the ray hit the outside of the surface
func (h *HitRecord) FrontFace() bool {
	return h.Face == Outward
}

// validateAlbedo rejects channels outside [0, 1]. A surface may not return
// more light than reaches it.
func validateAlbedo(kind string, albedo core.Vec3) error {
	unit := core.NewInterval(0, 1)
	for axis := 0; axis < 3; axis++ {
		if c := albedo.Component(axis); !unit.Contains(c) {
			return fmt.Errorf("%w: %s albedo %v has channel %d = %g, expected [0, 1]",
				core.ErrInvalidConfiguration, kind, albedo, axis, c)
		}
	}
	return nil
}
