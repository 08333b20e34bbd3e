package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomOnUnitSphere_UnitLength(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		v := RandomOnUnitSphere(sampler)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Sample %d: expected unit vector, got %v with length %f", i, v, v.Length())
		}
	}
}

func TestRandomOnUnitSphere_Uniform(t *testing.T) {
	sampler := NewSeededSampler(7)
	const samples = 20000

	// Uniform directions average to the origin and split evenly between hemispheres
	var mean Vec3
	upper := 0
	for i := 0; i < samples; i++ {
		v := RandomOnUnitSphere(sampler)
		mean = mean.Add(v)
		if v.Y > 0 {
			upper++
		}
	}
	mean = mean.Divide(samples)

	if mean.Length() > 0.03 {
		t.Errorf("Expected mean direction near zero, got %v", mean)
	}
	fraction := float64(upper) / samples
	if math.Abs(fraction-0.5) > 0.02 {
		t.Errorf("Expected about half the samples in the upper hemisphere, got %f", fraction)
	}
}

func TestRandomInUnitSphere_Bounded(t *testing.T) {
	sampler := NewSeededSampler(3)
	for i := 0; i < 1000; i++ {
		if p := RandomInUnitSphere(sampler); p.Length() > 1 {
			t.Fatalf("Expected point inside unit ball, got %v", p)
		}
	}
}

func TestSeededSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(99)
	b := NewSeededSampler(99)

	for i := 0; i < 10; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
	if a.Get2D() != b.Get2D() || a.Get3D() != b.Get3D() {
		t.Error("Expected identical 2D and 3D samples for identical seeds")
	}
}
