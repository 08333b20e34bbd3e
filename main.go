package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
	"github.com/df07/go-diffuse-raytracer/pkg/renderer"
	"github.com/df07/go-diffuse-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneName string
	config    string
	output    string
	width     int
	aspect    float64
	samples   int
	bounces   int
	seed      int64
	workers   int
	quiet     bool
	help      bool
	set       map[string]bool // Flags given explicitly on the command line
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run parses args, renders the selected scene and writes the image
func run(args []string, stdout, stderr io.Writer) error {
	opts, fs, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if opts.help {
		printHelp(stdout, fs)
		return nil
	}

	logger := renderer.NewDefaultLogger(stderr)
	if opts.quiet {
		logger = renderer.NewDiscardLogger()
	}

	sceneName := opts.sceneName
	if opts.config != "" {
		sceneName = opts.config
	}
	selectedScene, err := createScene(sceneName)
	if err != nil {
		return err
	}
	applyOverrides(&selectedScene.CameraOptions, opts)

	camera, err := renderer.NewCamera(selectedScene.CameraOptions)
	if err != nil {
		return fmt.Errorf("scene %q: %w", selectedScene.Name, err)
	}

	logger.Printf("Using scene %q (%d objects)\n", selectedScene.Name, selectedScene.World.Len())

	config := renderer.DefaultRenderConfig()
	config.Seed = opts.seed
	config.NumWorkers = opts.workers

	raytracer := renderer.NewRaytracer(camera, selectedScene.World, config, logger)
	frame, stats, err := raytracer.Render()
	if err != nil {
		return err
	}

	logger.Printf("Render completed in %v (%d samples)\n", stats.Duration, stats.TotalSamples)

	if err := writeOutput(opts.output, frame, stdout); err != nil {
		return err
	}
	if opts.output != "-" {
		logger.Printf("Render saved as %s\n", opts.output)
	}
	return nil
}

func parseFlags(args []string, stderr io.Writer) (options, *flag.FlagSet, error) {
	defaults := renderer.DefaultCameraOptions()
	renderDefaults := renderer.DefaultRenderConfig()

	var opts options
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.sceneName, "scene", "default", "Scene name (see -help) or path to a .json scene file")
	fs.StringVar(&opts.config, "config", "", "Path to a JSON scene file (overrides -scene)")
	fs.StringVar(&opts.output, "output", "-", "Output path; '-' writes PPM to stdout, a .png suffix writes PNG")
	fs.IntVar(&opts.width, "width", defaults.ImageWidth, "Image width in pixels")
	fs.Float64Var(&opts.aspect, "aspect", defaults.AspectRatio, "Aspect ratio (width / height)")
	fs.IntVar(&opts.samples, "samples", defaults.SamplesPerPixel, "Samples per pixel")
	fs.IntVar(&opts.bounces, "bounces", defaults.MaxBounces, "Maximum ray bounces")
	fs.Int64Var(&opts.seed, "seed", renderDefaults.Seed, "Random seed")
	fs.IntVar(&opts.workers, "workers", renderDefaults.NumWorkers, "Number of scanline workers (1 = sequential, 0 = auto-detect CPU count)")
	fs.BoolVar(&opts.quiet, "quiet", false, "Suppress progress output")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return opts, fs, err
	}
	if fs.NArg() > 0 {
		return opts, fs, fmt.Errorf("%w: unexpected arguments %v", core.ErrInvalidConfiguration, fs.Args())
	}

	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})
	return opts, fs, nil
}

// applyOverrides copies explicitly set flags over the scene's camera options
func applyOverrides(cameraOptions *renderer.CameraOptions, opts options) {
	if opts.set["width"] {
		cameraOptions.ImageWidth = opts.width
	}
	if opts.set["aspect"] {
		cameraOptions.AspectRatio = opts.aspect
	}
	if opts.set["samples"] {
		cameraOptions.SamplesPerPixel = opts.samples
	}
	if opts.set["bounces"] {
		cameraOptions.MaxBounces = opts.bounces
	}
}

// createScene creates a scene based on the scene name
func createScene(sceneName string) (*scene.Scene, error) {
	if sceneName == "" {
		return nil, fmt.Errorf("%w: no scene given", core.ErrInvalidConfiguration)
	}
	return scene.CreateScene(sceneName)
}

// writeOutput encodes the frame to stdout or to a file chosen by extension
func writeOutput(path string, frame *renderer.Frame, stdout io.Writer) error {
	if path == "-" {
		return renderer.WritePPM(stdout, frame)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".png") {
		err = renderer.WritePNG(file, frame)
	} else {
		err = renderer.WritePPM(file, frame)
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func printHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Diffuse Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options] > image.ppm")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")

	scenes, err := scene.ListScenes()
	if err != nil {
		fmt.Fprintf(w, "  (failed to list scenes: %v)\n", err)
		return
	}
	for _, info := range scenes {
		if info.Description != "" {
			fmt.Fprintf(w, "  %-22s %s\n", info.ID, info.Description)
		} else {
			fmt.Fprintf(w, "  %-22s %s\n", info.ID, info.FilePath)
		}
	}
}
