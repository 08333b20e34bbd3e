package renderer

import (
	"time"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	SamplesPerPixel int           // Samples taken for each pixel
	MaxBounces      int           // Bounce cap for each sample
	Workers         int           // Number of scanline workers used
	Duration        time.Duration // Wall time spent rendering
}

// PixelStats accumulates samples for a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the average color. With no samples the sum is divided
// by one, giving black.
func (ps *PixelStats) GetColor() core.Vec3 {
	return ps.ColorAccum.Divide(float64(max(ps.SampleCount, 1)))
}
