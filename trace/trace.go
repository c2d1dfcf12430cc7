// Package trace turns black-and-white bitmaps into vector outlines. Two
// backends are provided: the external potrace binary and a pure Go tracer.
// Both return coordinates with the origin in the bottom-left corner and the
// y-axis pointing up, in units of source image pixels.
package trace

import (
	"fmt"
	"image"

	"github.com/tdewolff/perfo"
)

// Result is the outcome of tracing a bitmap: the traced outlines and the
// dimensions of the coordinate space they live in.
type Result struct {
	Paths  []*perfo.Path
	Width  float64
	Height float64
}

// Tracer vectorizes a bitmap in which ink pixels are black.
type Tracer interface {
	Trace(bitmap *image.Gray) (*Result, error)
}

// ToolError reports a failed invocation of an external tracing tool.
type ToolError struct {
	Tool   string
	Stderr string
	Err    error
}

func (e *ToolError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s failed: %v: %s", e.Tool, e.Err, e.Stderr)
	}
	return fmt.Sprintf("%s failed: %v", e.Tool, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}
