package material

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
)

func TestMaterialValidate(t *testing.T) {
	tests := []struct {
		name    string
		mat     Validator
		wantErr bool
	}{
		{"lambertian in range", NewLambertian(core.NewVec3(0, 0.5, 1)), false},
		{"lambertian above one", NewLambertian(core.NewVec3(0.5, 0.5, 1.01)), true},
		{"lambertian negative", NewUniformDiffuse(-0.1), true},
		{"lambertian nan", NewLambertian(core.NewVec3(math.NaN(), 0, 0)), true},
		{"metal in range", NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3), false},
		{"metal above one", NewMetal(core.NewVec3(3, 3, 3), 0), true},
		{"glass", NewDielectric(1.5), false},
		{"zero index", NewDielectric(0), true},
		{"infinite index", NewDielectric(math.Inf(1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mat.Validate()
			if tt.wantErr {
				if !errors.Is(err, core.ErrInvalidConfiguration) {
					t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}
