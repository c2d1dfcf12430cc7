// Package svg writes paths as a minimal SVG document suitable for laser
// cutter toolchains: hairline strokes, no fill, millimeter-agnostic user
// units matching the source image pixels.
package svg

import (
	"fmt"
	"image/color"
	"io"

	"github.com/tdewolff/perfo"
)

// Style selects how a path is stroked.
type Style struct {
	Stroke      color.RGBA
	StrokeWidth float64
}

// Black is opaque black.
var Black = color.RGBA{0, 0, 0, 255}

// DefaultStyle is a thin black stroke, the usual cut line style.
var DefaultStyle = Style{
	Stroke:      Black,
	StrokeWidth: 1.0,
}

// Writer streams an SVG document of stroked paths to w. Close must be called
// to write the closing tag.
type Writer struct {
	w      io.Writer
	width  float64
	height float64
	err    error
}

// New starts an SVG document of the given size in user units.
func New(w io.Writer, width, height float64) *Writer {
	svg := &Writer{
		w:      w,
		width:  width,
		height: height,
	}
	_, svg.err = fmt.Fprintf(w, `<svg version="1.1" width="%v" height="%v" viewBox="0 0 %v %v" xmlns="http://www.w3.org/2000/svg">`, num(width), num(height), num(width), num(height))
	return svg
}

// Width returns the document width in user units.
func (svg *Writer) Width() float64 {
	return svg.width
}

// Height returns the document height in user units.
func (svg *Writer) Height() float64 {
	return svg.height
}

// WritePath writes one path element with the given stroke style and no fill.
func (svg *Writer) WritePath(p *perfo.Path, style Style) {
	if svg.err != nil || p.Empty() {
		return
	}
	_, svg.err = fmt.Fprintf(svg.w, `<path d="%s" fill="none" stroke="%s" stroke-width="%v" stroke-linecap="round" stroke-linejoin="round"/>`, p, cssColor(style.Stroke), dec(style.StrokeWidth))
}

// Close writes the closing tag and returns the first error encountered while
// writing the document.
func (svg *Writer) Close() error {
	if svg.err != nil {
		return svg.err
	}
	_, err := fmt.Fprintf(svg.w, `</svg>`)
	return err
}
