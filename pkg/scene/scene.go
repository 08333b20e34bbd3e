package scene

import (
	"fmt"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
	"github.com/df07/go-diffuse-raytracer/pkg/geometry"
	"github.com/df07/go-diffuse-raytracer/pkg/material"
	"github.com/df07/go-diffuse-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name          string
	CameraOptions renderer.CameraOptions
	World         *geometry.HittableList
	Spheres       []*geometry.Sphere           // Every sphere in World, for validation and inspection
	Materials     map[string]material.Material // Named materials shared between spheres
}

// NewScene creates an empty scene with default camera options
func NewScene(name string) *Scene {
	return &Scene{
		Name:          name,
		CameraOptions: renderer.DefaultCameraOptions(),
		World:         geometry.NewHittableList(),
		Materials:     make(map[string]material.Material),
	}
}

// AddMaterial registers a named material
func (s *Scene) AddMaterial(name string, mat material.Material) material.Material {
	s.Materials[name] = mat
	return mat
}

// AddSphere adds a sphere to the world
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, mat)
	s.Spheres = append(s.Spheres, sphere)
	s.World.Add(sphere)
	return sphere
}

// Validate checks the camera options and every sphere
func (s *Scene) Validate() error {
	if err := s.CameraOptions.Validate(); err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	for name, mat := range s.Materials {
		if err := validateMaterial(mat); err != nil {
			return fmt.Errorf("scene %q material %q: %w", s.Name, name, err)
		}
	}
	for i, sphere := range s.Spheres {
		if err := sphere.Validate(); err != nil {
			return fmt.Errorf("scene %q sphere %d: %w", s.Name, i, err)
		}
		if err := validateMaterial(sphere.Material); err != nil {
			return fmt.Errorf("scene %q sphere %d: %w", s.Name, i, err)
		}
	}
	return nil
}

func validateMaterial(mat material.Material) error {
	if v, ok := mat.(material.Validator); ok {
		return v.Validate()
	}
	return nil
}
