package renderer

import (
	"testing"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
)

func TestPixelStats_Average(t *testing.T) {
	var ps PixelStats
	ps.AddSample(core.NewVec3(1, 0, 0.5))
	ps.AddSample(core.NewVec3(0, 1, 0.5))

	if ps.SampleCount != 2 {
		t.Errorf("Expected 2 samples, got %d", ps.SampleCount)
	}
	if got := ps.GetColor(); got != core.NewVec3(0.5, 0.5, 0.5) {
		t.Errorf("Expected (0.5, 0.5, 0.5), got %v", got)
	}
}

func TestPixelStats_NoSamplesIsBlack(t *testing.T) {
	var ps PixelStats
	if got := ps.GetColor(); got != (core.Vec3{}) {
		t.Errorf("Expected black, got %v", got)
	}
}

func TestPixelStats_AverageOfUnitValuesStaysInRange(t *testing.T) {
	var ps PixelStats
	for i := 0; i < 7; i++ {
		ps.AddSample(core.NewVec3(1, 0.1, 0.7))
	}
	got := ps.GetColor()
	if got.X > 1 {
		t.Errorf("Expected average of ones to stay <= 1, got %.17g", got.X)
	}
	if _, err := NewColorFromLinear(got); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}
