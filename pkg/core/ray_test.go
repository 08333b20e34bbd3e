package core

import (
	"errors"
	"math"
	"testing"
)

func TestNewRay_RejectsNonUnitDirection(t *testing.T) {
	tests := []struct {
		name      string
		direction Vec3
		wantErr   bool
	}{
		{"unit x", NewVec3(1, 0, 0), false},
		{"normalized diagonal", NewVec3(1, 1, 1).Normalize(), false},
		{"within tolerance", NewVec3(0, 0, 1.00005), false},
		{"too long", NewVec3(0, 0, 2), true},
		{"too short", NewVec3(0, 0.5, 0), true},
		{"zero", NewVec3(0, 0, 0), true},
		{"nan", NewVec3(math.NaN(), 0, 0), true},
		{"infinite", NewVec3(0, math.Inf(1), 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRay(NewVec3(0, 0, 0), tt.direction)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidGeometry) {
					t.Errorf("Expected ErrInvalidGeometry, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestMustRay_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for non-unit direction")
		}
	}()
	MustRay(NewVec3(0, 0, 0), NewVec3(3, 0, 0))
}

func TestRay_At(t *testing.T) {
	origin := NewVec3(1, 2, 3)
	directions := []Vec3{
		NewVec3(1, 0, 0),
		NewVec3(0, -1, 0),
		NewVec3(1, 2, -2).Normalize(),
	}

	for _, direction := range directions {
		ray := MustRay(origin, direction)

		if got := ray.At(0); got != origin {
			t.Errorf("Expected At(0) == origin %v, got %v", origin, got)
		}

		for _, param := range []float64{-2, 0.5, 1, 3.25} {
			expected := origin.Add(direction.Multiply(param))
			if got := ray.At(param); !vecNear(got, expected, 1e-12) {
				t.Errorf("At(%f): expected %v, got %v", param, expected, got)
			}
		}
	}
}
