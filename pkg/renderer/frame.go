package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// Frame holds the rendered pixels in row-major order, top row first
type Frame struct {
	Width  int
	Height int
	Pixels []Color
}

// NewFrame creates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// Pixel returns the color at column x, row y
func (f *Frame) Pixel(x, y int) Color {
	return f.Pixels[y*f.Width+x]
}

// SetRow copies a full scanline into row y
func (f *Frame) SetRow(y int, row []Color) {
	copy(f.Pixels[y*f.Width:(y+1)*f.Width], row)
}

// ColorModel implements image.Image
func (f *Frame) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

// At implements image.Image
func (f *Frame) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(f.Bounds())) {
		return color.RGBA{}
	}
	return f.Pixel(x, y).RGBA()
}

// WritePPM writes the frame as an ASCII PPM (P3) image, one pixel per line
func WritePPM(w io.Writer, f *Frame) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", f.Width, f.Height); err != nil {
		return fmt.Errorf("writing ppm header: %w", err)
	}
	for _, pixel := range f.Pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", pixel.R, pixel.G, pixel.B); err != nil {
			return fmt.Errorf("writing ppm pixels: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing ppm: %w", err)
	}
	return nil
}

// WritePNG writes the frame as a PNG image
func WritePNG(w io.Writer, f *Frame) error {
	if err := png.Encode(w, f); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
