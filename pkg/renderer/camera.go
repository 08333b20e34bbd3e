package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
)

// CameraOptions holds every camera setting. Start from DefaultCameraOptions
// and override fields as needed.
type CameraOptions struct {
	AspectRatio     float64   // Image width over height
	ImageWidth      int       // Pixel columns; the height is derived
	FocalLength     float64   // Distance from the eye to the viewport
	ViewportHeight  float64   // World-space height of the viewport
	Center          core.Vec3 // Eye position
	SamplesPerPixel int       // Rays averaged per pixel
	MaxBounces      int       // Recursion depth cap for each ray
}

// DefaultCameraOptions returns the default camera settings
func DefaultCameraOptions() CameraOptions {
	return CameraOptions{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      400,
		FocalLength:     1.0,
		ViewportHeight:  2.0,
		Center:          core.NewVec3(0, 0, 0),
		SamplesPerPixel: 10,
		MaxBounces:      10,
	}
}

// ImageHeight returns the pixel rows these options produce
func (o CameraOptions) ImageHeight() int {
	return int(float64(o.ImageWidth) / o.AspectRatio)
}

// Validate checks that the options describe a usable camera
func (o CameraOptions) Validate() error {
	positive := func(name string, v float64) error {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be positive and finite, got %g", core.ErrInvalidConfiguration, name, v)
		}
		return nil
	}

	if err := positive("aspect ratio", o.AspectRatio); err != nil {
		return err
	}
	if err := positive("focal length", o.FocalLength); err != nil {
		return err
	}
	if err := positive("viewport height", o.ViewportHeight); err != nil {
		return err
	}
	if o.ImageWidth < 1 {
		return fmt.Errorf("%w: image width must be at least 1, got %d", core.ErrInvalidConfiguration, o.ImageWidth)
	}
	if h := o.ImageHeight(); h < 1 {
		return fmt.Errorf("%w: image width %d with aspect ratio %g gives image height %d",
			core.ErrInvalidConfiguration, o.ImageWidth, o.AspectRatio, h)
	}
	if o.SamplesPerPixel < 0 {
		return fmt.Errorf("%w: samples per pixel cannot be negative, got %d", core.ErrInvalidConfiguration, o.SamplesPerPixel)
	}
	if o.MaxBounces < 0 {
		return fmt.Errorf("%w: max bounces cannot be negative, got %d", core.ErrInvalidConfiguration, o.MaxBounces)
	}
	return nil
}

// Camera maps pixels to rays. It is immutable after construction.
type Camera struct {
	imageWidth      int
	imageHeight     int
	center          core.Vec3
	pixel00Loc      core.Vec3 // Center of the upper-left pixel
	pixelDeltaU     core.Vec3 // Offset from one pixel to the next column
	pixelDeltaV     core.Vec3 // Offset from one pixel to the next row
	samplesPerPixel int
	maxBounces      int
}

// NewCamera derives the viewport geometry from options
func NewCamera(options CameraOptions) (*Camera, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}

	imageWidth := options.ImageWidth
	imageHeight := options.ImageHeight()

	// Use the real pixel ratio rather than the requested aspect ratio,
	// since the height was truncated
	viewportHeight := options.ViewportHeight
	viewportWidth := viewportHeight * (float64(imageWidth) / float64(imageHeight))

	// u runs left to right, v runs top to bottom
	viewportU := core.NewVec3(viewportWidth, 0, 0)
	viewportV := core.NewVec3(0, -viewportHeight, 0)

	pixelDeltaU := viewportU.Divide(float64(imageWidth))
	pixelDeltaV := viewportV.Divide(float64(imageHeight))

	viewportUpperLeft := options.Center.
		Subtract(core.NewVec3(0, 0, options.FocalLength)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	return &Camera{
		imageWidth:      imageWidth,
		imageHeight:     imageHeight,
		center:          options.Center,
		pixel00Loc:      pixel00Loc,
		pixelDeltaU:     pixelDeltaU,
		pixelDeltaV:     pixelDeltaV,
		samplesPerPixel: options.SamplesPerPixel,
		maxBounces:      options.MaxBounces,
	}, nil
}

// GetRay returns a ray through pixel (i, j) jittered uniformly within the pixel
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := sampler.Get2D()
	return c.RayThrough(i, j, offset.X-0.5, offset.Y-0.5)
}

// PixelCenterRay returns the unjittered ray through the center of pixel (i, j)
func (c *Camera) PixelCenterRay(i, j int) core.Ray {
	return c.RayThrough(i, j, 0, 0)
}

// RayThrough returns the ray from the camera center through pixel (i, j)
// shifted by (offsetX, offsetY) pixels
func (c *Camera) RayThrough(i, j int, offsetX, offsetY float64) core.Ray {
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetX)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetY))
	return core.MustRay(c.center, pixelSample.Subtract(c.center).Normalize())
}

// ImageWidth returns the number of pixel columns
func (c *Camera) ImageWidth() int { return c.imageWidth }

// ImageHeight returns the number of pixel rows
func (c *Camera) ImageHeight() int { return c.imageHeight }

// Center returns the eye position
func (c *Camera) Center() core.Vec3 { return c.center }

// Pixel00Loc returns the world position of the upper-left pixel's center
func (c *Camera) Pixel00Loc() core.Vec3 { return c.pixel00Loc }

// PixelDeltas returns the world offsets between adjacent columns and rows
func (c *Camera) PixelDeltas() (u, v core.Vec3) { return c.pixelDeltaU, c.pixelDeltaV }

// SamplesPerPixel returns the number of rays averaged per pixel
func (c *Camera) SamplesPerPixel() int { return c.samplesPerPixel }

// MaxBounces returns the bounce cap for each camera ray
func (c *Camera) MaxBounces() int { return c.maxBounces }
