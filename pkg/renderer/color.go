package renderer

import (
	"fmt"
	"image/color"
	"math"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
)

// unitRange is the valid range of a linear color channel
var unitRange = core.NewInterval(0, 1)

// Color is a displayable RGB triple with channels in [0, 255]
type Color struct {
	R, G, B int
}

// NewColor creates a new Color
func NewColor(r, g, b int) Color {
	return Color{R: r, G: g, B: b}
}

// NewColorFromLinear gamma corrects a linear intensity (gamma 2, i.e. a square
// root) and scales it to [0, 255]. Every channel must lie in [0, 1].
func NewColorFromLinear(v core.Vec3) (Color, error) {
	names := [3]string{"red", "green", "blue"}
	var channels [3]int
	for axis := 0; axis < 3; axis++ {
		c := v.Component(axis)
		if !unitRange.Contains(c) {
			return Color{}, fmt.Errorf("%w: %s channel of %v is %g, expected [0, 1]",
				core.ErrColorOutOfRange, names[axis], v, c)
		}
		channels[axis] = int(255.999 * math.Sqrt(c))
	}
	return NewColor(channels[0], channels[1], channels[2]), nil
}

// String formats the color as a PPM pixel: "R G B"
func (c Color) String() string {
	return fmt.Sprintf("%d %d %d", c.R, c.G, c.B)
}

// RGBA converts the color to an opaque image/color value
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 255}
}
