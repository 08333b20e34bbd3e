package renderer

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
	"github.com/df07/go-diffuse-raytracer/pkg/geometry"
	"github.com/df07/go-diffuse-raytracer/pkg/integrator"
	"github.com/df07/go-diffuse-raytracer/pkg/material"
)

// recordingLogger keeps every message for inspection
type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (r *recordingLogger) Printf(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

// constantIntegrator returns the same color for every ray
type constantIntegrator struct {
	color core.Vec3
}

func (c constantIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler, depth int) core.Vec3 {
	return c.color
}

func smallCamera(t *testing.T, samples int) *Camera {
	t.Helper()
	options := DefaultCameraOptions()
	options.ImageWidth = 16
	options.SamplesPerPixel = samples
	options.MaxBounces = 5
	camera, err := NewCamera(options)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return camera
}

func diffuseWorld() *geometry.HittableList {
	gray := material.NewUniformDiffuse(0.2)
	return geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, gray),
	)
}

func TestRaytracer_SingleUnjitteredSampleMatchesCenterRay(t *testing.T) {
	camera := smallCamera(t, 1)
	mirror := material.NewMetal(core.NewVec3(0.8, 0.6, 0.4), 0)
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, mirror),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, mirror),
	)
	rt := NewRaytracer(camera, world, DefaultRenderConfig(), nil)
	pathTracer := integrator.NewPathTracingIntegrator(integrator.DefaultGradient())
	noJitter := constantSampler{0.5}

	for j := 0; j < camera.ImageHeight(); j++ {
		for i := 0; i < camera.ImageWidth(); i++ {
			got, err := rt.RenderPixel(i, j, noJitter)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			linear := pathTracer.RayColor(camera.PixelCenterRay(i, j), world, noJitter, camera.MaxBounces())
			expected, err := NewColorFromLinear(linear)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != expected {
				t.Fatalf("Pixel (%d, %d): expected %v, got %v", i, j, expected, got)
			}
		}
	}
}

func TestRaytracer_DeterministicAcrossWorkerCounts(t *testing.T) {
	camera := smallCamera(t, 4)
	world := diffuseWorld()

	var frames []*Frame
	for _, workers := range []int{1, 3, 0} {
		rt := NewRaytracer(camera, world, RenderConfig{Seed: 7, NumWorkers: workers}, nil)
		frame, stats, err := rt.Render()
		if err != nil {
			t.Fatalf("Unexpected error with %d workers: %v", workers, err)
		}
		if stats.TotalPixels != 16*9 || stats.TotalSamples != 16*9*4 {
			t.Errorf("Unexpected stats %+v", stats)
		}
		frames = append(frames, frame)
	}

	for k := 1; k < len(frames); k++ {
		for idx := range frames[0].Pixels {
			if frames[k].Pixels[idx] != frames[0].Pixels[idx] {
				t.Fatalf("Frame %d differs at pixel %d: %v vs %v", k, idx, frames[k].Pixels[idx], frames[0].Pixels[idx])
			}
		}
	}

	// A different seed changes the noise
	rt := NewRaytracer(camera, world, RenderConfig{Seed: 8, NumWorkers: 1}, nil)
	other, _, err := rt.Render()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	differs := false
	for idx := range other.Pixels {
		if other.Pixels[idx] != frames[0].Pixels[idx] {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("Expected a different seed to change the image")
	}
}

func TestRaytracer_SkyOnlyImage(t *testing.T) {
	camera := smallCamera(t, 3)
	rt := NewRaytracer(camera, geometry.NewHittableList(), RenderConfig{Seed: 1, NumWorkers: 2}, nil)

	frame, _, err := rt.Render()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if frame.Width != 16 || frame.Height != 9 || len(frame.Pixels) != 16*9 {
		t.Fatalf("Unexpected frame size %dx%d with %d pixels", frame.Width, frame.Height, len(frame.Pixels))
	}

	// The sky gets bluer (less red) toward the top and blue stays saturated
	for i := 0; i < frame.Width; i++ {
		top, bottom := frame.Pixel(i, 0), frame.Pixel(i, frame.Height-1)
		if top.R >= bottom.R {
			t.Errorf("Column %d: expected top red %d < bottom red %d", i, top.R, bottom.R)
		}
		if top.B != 255 || bottom.B != 255 {
			t.Errorf("Column %d: expected full blue, got %d and %d", i, top.B, bottom.B)
		}
	}
}

func TestRaytracer_ZeroSamplesIsBlack(t *testing.T) {
	camera := smallCamera(t, 0)
	rt := NewRaytracer(camera, diffuseWorld(), DefaultRenderConfig(), nil)

	frame, stats, err := rt.Render()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for idx, pixel := range frame.Pixels {
		if pixel != (Color{}) {
			t.Fatalf("Pixel %d: expected black, got %v", idx, pixel)
		}
	}
	if stats.TotalSamples != 0 {
		t.Errorf("Expected no samples, got %d", stats.TotalSamples)
	}
}

func TestRaytracer_ProgressLogging(t *testing.T) {
	camera := smallCamera(t, 1)
	logger := &recordingLogger{}
	rt := NewRaytracer(camera, diffuseWorld(), RenderConfig{Seed: 1, NumWorkers: 2}, logger)

	if _, _, err := rt.Render(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	remaining := 0
	for _, message := range logger.messages {
		if strings.HasPrefix(message, "Scanlines remaining:") {
			remaining++
		}
	}
	if remaining != camera.ImageHeight() {
		t.Errorf("Expected %d progress lines, got %d", camera.ImageHeight(), remaining)
	}
	if last := logger.messages[len(logger.messages)-1]; last != "Done.\n" {
		t.Errorf("Expected final message \"Done.\", got %q", last)
	}
	if first := logger.messages[len(logger.messages)-2]; first != "Scanlines remaining: 1\n" {
		t.Errorf("Expected last progress line to count down to 1, got %q", first)
	}
}

func TestRaytracer_OutOfRangeColorFailsRender(t *testing.T) {
	camera := smallCamera(t, 2)
	logger := &recordingLogger{}
	rt := NewRaytracer(camera, diffuseWorld(), DefaultRenderConfig(), logger)
	rt.SetIntegrator(constantIntegrator{color: core.NewVec3(2, 0, 0)})

	frame, _, err := rt.Render()
	if !errors.Is(err, core.ErrColorOutOfRange) {
		t.Fatalf("Expected ErrColorOutOfRange, got %v", err)
	}
	if frame != nil {
		t.Error("Expected no frame on failure")
	}
	for _, message := range logger.messages {
		if message == "Done.\n" {
			t.Error("Did not expect completion marker on failure")
		}
	}
}

func TestRaytracer_UsesIntegratorAverage(t *testing.T) {
	camera := smallCamera(t, 5)
	rt := NewRaytracer(camera, diffuseWorld(), DefaultRenderConfig(), nil)
	rt.SetIntegrator(constantIntegrator{color: core.NewVec3(0.25, 1, 0)})

	pixel, err := rt.RenderPixel(0, 0, core.NewSeededSampler(1))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if pixel != NewColor(127, 255, 0) {
		t.Errorf("Expected (127, 255, 0), got %v", pixel)
	}
}

func TestRowSeed_AdjacentSeedsDoNotShareRows(t *testing.T) {
	seen := make(map[int64]bool)
	for seed := int64(-20); seed < 20; seed++ {
		for row := 0; row < 50; row++ {
			if rowSeed(seed+1, row) == rowSeed(seed, row+1) {
				t.Fatalf("Seed %d row %d shares a generator with seed %d row %d", seed+1, row, seed, row+1)
			}
			s := rowSeed(seed, row)
			if seen[s] {
				t.Fatalf("Duplicate row seed for seed %d row %d", seed, row)
			}
			seen[s] = true
		}
	}
}
