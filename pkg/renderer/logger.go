package renderer

import (
	"fmt"
	"io"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to an io.Writer
type DefaultLogger struct {
	w io.Writer
}

// Printf writes a formatted message
func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(dl.w, format, args...)
}

// NewDefaultLogger creates a logger writing to w. The image goes to stdout,
// so pass os.Stderr for progress output.
func NewDefaultLogger(w io.Writer) core.Logger {
	return &DefaultLogger{w: w}
}

// NewDiscardLogger creates a logger that drops every message
func NewDiscardLogger() core.Logger {
	return &DefaultLogger{w: io.Discard}
}
