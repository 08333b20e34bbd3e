package scene

import (
	"github.com/df07/go-diffuse-raytracer/pkg/core"
	"github.com/df07/go-diffuse-raytracer/pkg/material"
)

// DefaultReflectance is the fraction of light the default scene's surfaces keep per bounce
const DefaultReflectance = 0.2

// NewDefaultScene creates a small sphere resting on a large ground sphere,
// both a uniform gray diffuse
func NewDefaultScene() *Scene {
	s := NewScene("default")

	gray := s.AddMaterial("gray", material.NewUniformDiffuse(DefaultReflectance))

	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, gray)
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, gray)

	return s
}

// NewMaterialsScene creates three spheres on a diffuse ground: glass on the
// left, diffuse in the middle and fuzzy metal on the right
func NewMaterialsScene() *Scene {
	s := NewScene("materials")
	s.CameraOptions.SamplesPerPixel = 50
	s.CameraOptions.MaxBounces = 25

	ground := s.AddMaterial("ground", material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))
	center := s.AddMaterial("center", material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	glass := s.AddMaterial("glass", material.NewDielectric(1.5))
	gold := s.AddMaterial("gold", material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3))

	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, ground)
	s.AddSphere(core.NewVec3(0, 0, -1.2), 0.5, center)
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.5, glass)
	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, gold)

	return s
}

// NewEmptyScene creates a scene with nothing but sky
func NewEmptyScene() *Scene {
	return NewScene("empty")
}
