package geometry

import (
	"github.com/df07/go-diffuse-raytracer/pkg/core"
	"github.com/df07/go-diffuse-raytracer/pkg/material"
)

// Hittable is anything a ray can be intersected with. Hit returns the
// intersection whose t lies strictly inside interval, or false if there is none.
type Hittable interface {
	Hit(ray core.Ray, interval core.Interval) (*material.HitRecord, bool)
}
