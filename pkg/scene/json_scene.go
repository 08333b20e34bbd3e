package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
	"github.com/df07/go-diffuse-raytracer/pkg/material"
	"github.com/df07/go-diffuse-raytracer/pkg/renderer"
)

// Vec3Cfg is a vector written as a JSON array: [x, y, z]
type Vec3Cfg [3]float64

// Vec3 converts the config value to a vector
func (v Vec3Cfg) Vec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// CameraCfg overrides the default camera options. Missing fields keep their defaults.
type CameraCfg struct {
	AspectRatio     *float64 `json:"aspectRatio,omitempty"`
	ImageWidth      *int     `json:"imageWidth,omitempty"`
	FocalLength     *float64 `json:"focalLength,omitempty"`
	ViewportHeight  *float64 `json:"viewportHeight,omitempty"`
	Center          *Vec3Cfg `json:"center,omitempty"`
	SamplesPerPixel *int     `json:"samplesPerPixel,omitempty"`
	MaxBounces      *int     `json:"maxBounces,omitempty"`
}

// MaterialCfg describes one material. Type is "lambertian", "metal" or "dielectric".
type MaterialCfg struct {
	Type            string   `json:"type"`
	Albedo          *Vec3Cfg `json:"albedo,omitempty"`
	Reflectance     *float64 `json:"reflectance,omitempty"` // Gray lambertian shorthand
	Fuzz            float64  `json:"fuzz,omitempty"`
	RefractiveIndex float64  `json:"refractiveIndex,omitempty"`
}

// SphereCfg places a sphere with a named material
type SphereCfg struct {
	Center   Vec3Cfg `json:"center"`
	Radius   float64 `json:"radius"`
	Material string  `json:"material"`
}

// Config is the JSON scene file format
type Config struct {
	Name      string                 `json:"name,omitempty"`
	Camera    CameraCfg              `json:"camera"`
	Materials map[string]MaterialCfg `json:"materials"`
	Spheres   []SphereCfg            `json:"spheres"`
}

// LoadScene reads a JSON scene file
func LoadScene(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening scene file: %v", core.ErrInvalidConfiguration, err)
	}
	defer f.Close()

	s, err := ParseScene(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// ParseScene decodes a JSON scene and builds it
func ParseScene(r io.Reader) (*Scene, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	var cfg Config
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: decoding scene: %v", core.ErrInvalidConfiguration, err)
	}
	return cfg.Build()
}

// Build turns the config into a validated scene
func (cfg Config) Build() (*Scene, error) {
	s := NewScene(cfg.Name)
	cfg.Camera.apply(&s.CameraOptions)

	for name, mc := range cfg.Materials {
		mat, err := mc.build()
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		s.AddMaterial(name, mat)
	}

	for i, sc := range cfg.Spheres {
		mat, ok := s.Materials[sc.Material]
		if !ok {
			return nil, fmt.Errorf("%w: sphere %d uses unknown material %q", core.ErrInvalidConfiguration, i, sc.Material)
		}
		s.AddSphere(sc.Center.Vec3(), sc.Radius, mat)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (c CameraCfg) apply(options *renderer.CameraOptions) {
	if c.AspectRatio != nil {
		options.AspectRatio = *c.AspectRatio
	}
	if c.ImageWidth != nil {
		options.ImageWidth = *c.ImageWidth
	}
	if c.FocalLength != nil {
		options.FocalLength = *c.FocalLength
	}
	if c.ViewportHeight != nil {
		options.ViewportHeight = *c.ViewportHeight
	}
	if c.Center != nil {
		options.Center = c.Center.Vec3()
	}
	if c.SamplesPerPixel != nil {
		options.SamplesPerPixel = *c.SamplesPerPixel
	}
	if c.MaxBounces != nil {
		options.MaxBounces = *c.MaxBounces
	}
}

func (mc MaterialCfg) build() (material.Material, error) {
	mat, err := mc.create()
	if err != nil {
		return nil, err
	}
	if err := validateMaterial(mat); err != nil {
		return nil, err
	}
	return mat, nil
}

func (mc MaterialCfg) create() (material.Material, error) {
	switch strings.ToLower(mc.Type) {
	case "lambertian", "diffuse":
		switch {
		case mc.Albedo != nil:
			return material.NewLambertian(mc.Albedo.Vec3()), nil
		case mc.Reflectance != nil:
			return material.NewUniformDiffuse(*mc.Reflectance), nil
		default:
			return nil, fmt.Errorf("%w: lambertian needs an albedo or a reflectance", core.ErrInvalidConfiguration)
		}
	case "metal":
		if mc.Albedo == nil {
			return nil, fmt.Errorf("%w: metal needs an albedo", core.ErrInvalidConfiguration)
		}
		return material.NewMetal(mc.Albedo.Vec3(), mc.Fuzz), nil
	case "dielectric", "glass":
		return material.NewDielectric(mc.RefractiveIndex), nil
	default:
		return nil, fmt.Errorf("%w: unknown material type %q", core.ErrInvalidConfiguration, mc.Type)
	}
}
