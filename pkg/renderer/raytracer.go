package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
	"github.com/df07/go-diffuse-raytracer/pkg/geometry"
	"github.com/df07/go-diffuse-raytracer/pkg/integrator"
)

// RenderConfig contains settings that affect how, not what, is rendered
type RenderConfig struct {
	Seed       int64 // Base seed; each row derives its own generator seed from it
	NumWorkers int   // Scanline workers (1 = sequential, 0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Seed:       42,
		NumWorkers: 1,
	}
}

// Raytracer renders a world through a camera
type Raytracer struct {
	camera     *Camera
	world      geometry.Hittable
	integrator integrator.Integrator
	config     RenderConfig
	logger     core.Logger
}

// NewRaytracer creates a new raytracer using path tracing against the default sky
func NewRaytracer(camera *Camera, world geometry.Hittable, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDiscardLogger()
	}
	return &Raytracer{
		camera:     camera,
		world:      world,
		integrator: integrator.NewPathTracingIntegrator(integrator.DefaultGradient()),
		config:     config,
		logger:     logger,
	}
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// Render renders every pixel and returns the finished frame. Rows are rendered
// in parallel, each with its own seeded sampler, so the result for a given seed
// does not depend on the number of workers.
func (rt *Raytracer) Render() (*Frame, RenderStats, error) {
	startTime := time.Now()
	width, height := rt.camera.ImageWidth(), rt.camera.ImageHeight()
	frame := NewFrame(width, height)

	pool := NewWorkerPool(height, rt.config.NumWorkers, rt.RenderScanline)

	rt.logger.Printf("Rendering %dx%d, %d samples per pixel, %d max bounces (using %d workers)...\n",
		width, height, rt.camera.SamplesPerPixel(), rt.camera.MaxBounces(), pool.GetNumWorkers())

	pool.Start()
	for j := 0; j < height; j++ {
		pool.SubmitTask(ScanlineTask{Row: j})
	}

	var firstErr error
	for remaining := height; remaining > 0; remaining-- {
		rt.logger.Printf("Scanlines remaining: %d\n", remaining)
		result, ok := pool.GetResult()
		if !ok {
			firstErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("rendering scanline %d: %w", result.Row, result.Error)
			}
			continue
		}
		frame.SetRow(result.Row, result.Pixels)
	}
	pool.Stop()

	if firstErr != nil {
		return nil, RenderStats{}, firstErr
	}
	rt.logger.Printf("Done.\n")

	stats := RenderStats{
		TotalPixels:     width * height,
		TotalSamples:    width * height * rt.camera.SamplesPerPixel(),
		SamplesPerPixel: rt.camera.SamplesPerPixel(),
		MaxBounces:      rt.camera.MaxBounces(),
		Workers:         pool.GetNumWorkers(),
		Duration:        time.Since(startTime),
	}
	return frame, stats, nil
}

// RenderScanline renders row j left to right
func (rt *Raytracer) RenderScanline(j int) ([]Color, error) {
	sampler := core.NewSeededSampler(rowSeed(rt.config.Seed, j))
	row := make([]Color, rt.camera.ImageWidth())
	for i := range row {
		pixel, err := rt.RenderPixel(i, j, sampler)
		if err != nil {
			return nil, fmt.Errorf("pixel (%d, %d): %w", i, j, err)
		}
		row[i] = pixel
	}
	return row, nil
}

// RenderPixel averages the camera's samples for pixel (i, j) and gamma corrects the result
func (rt *Raytracer) RenderPixel(i, j int, sampler core.Sampler) (Color, error) {
	var ps PixelStats
	for sample := 0; sample < rt.camera.SamplesPerPixel(); sample++ {
		ray := rt.camera.GetRay(i, j, sampler)
		ps.AddSample(rt.integrator.RayColor(ray, rt.world, sampler, rt.camera.MaxBounces()))
	}
	return NewColorFromLinear(ps.GetColor())
}

// rowSeed derives row j's generator seed with a splitmix64 step, so nearby
// base seeds do not share row streams
func rowSeed(seed int64, j int) int64 {
	z := uint64(seed) + uint64(j+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return int64(z ^ (z >> 31))
}
