package trace

import (
	"image/color"
	"testing"

	"github.com/tdewolff/test"
)

func TestBuiltinTrace(t *testing.T) {
	bitmap := whiteBitmap(40, 40)
	for y := 10; y < 30; y++ {
		for x := 10; x < 30; x++ {
			bitmap.SetGray(x, y, color.Gray{0})
		}
	}

	res, err := NewBuiltin().Trace(bitmap)
	test.Error(t, err)
	test.Float(t, res.Width, 40.0)
	test.Float(t, res.Height, 40.0)
	test.That(t, 0 < len(res.Paths))

	p := res.Paths[0]
	test.That(t, p.Closed())
	test.That(t, 30.0 < p.Length() && p.Length() < 90.0)
	for _, seg := range p.Segments() {
		test.That(t, 0.0 <= seg.Start.X && seg.Start.X <= 40.0)
		test.That(t, 0.0 <= seg.Start.Y && seg.Start.Y <= 40.0)
	}
}

func TestBuiltinTraceFlipsY(t *testing.T) {
	// ink in the top rows of the image must end up at high y values
	bitmap := whiteBitmap(20, 20)
	for y := 2; y < 6; y++ {
		for x := 2; x < 18; x++ {
			bitmap.SetGray(x, y, color.Gray{0})
		}
	}

	res, err := NewBuiltin().Trace(bitmap)
	test.Error(t, err)
	test.That(t, 0 < len(res.Paths))
	for _, p := range res.Paths {
		for _, seg := range p.Segments() {
			test.That(t, 12.0 <= seg.Start.Y)
		}
	}
}

func TestBuiltinTraceEmpty(t *testing.T) {
	res, err := NewBuiltin().Trace(whiteBitmap(10, 10))
	test.Error(t, err)
	test.T(t, len(res.Paths), 0)
}
