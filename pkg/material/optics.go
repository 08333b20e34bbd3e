package material

import (
	"math"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
)

// reflect mirrors v about a surface with unit normal n: v - 2(v·n)n
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// refract bends the unit vector uv through a surface with unit normal n
// (facing against uv) using Snell's law. eta is the incident index over the
// transmitted index.
func refract(uv, n core.Vec3, eta float64) core.Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	perpendicular := uv.Add(n.Multiply(cosTheta)).Multiply(eta)
	parallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - perpendicular.LengthSquared())))
	return perpendicular.Add(parallel)
}

// Reflectance is Schlick's approximation of the fraction of light reflected
// at incidence cosine cosine for index ratio eta
func Reflectance(cosine, eta float64) float64 {
	r0 := (1 - eta) / (1 + eta)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
