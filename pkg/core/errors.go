package core

import "errors"

var (
	// ErrInvalidGeometry is returned for rays and shapes that violate their invariants
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrInvalidConfiguration is returned for camera, render and scene settings that cannot be used
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrColorOutOfRange is returned when a linear color channel falls outside [0, 1]
	ErrColorOutOfRange = errors.New("color out of range")
)
