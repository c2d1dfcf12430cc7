package perfo

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestSegmentAt(t *testing.T) {
	line := Line(Point{0.0, 0.0}, Point{10.0, 0.0})
	test.T(t, line.At(0.0), Point{0.0, 0.0})
	test.T(t, line.At(0.5), Point{5.0, 0.0})
	test.T(t, line.At(1.0), Point{10.0, 0.0})

	quad := Quad(Point{0.0, 0.0}, Point{5.0, 10.0}, Point{10.0, 0.0})
	test.T(t, quad.At(0.5), Point{5.0, 5.0})

	cube := Cube(Point{0.0, 0.0}, Point{0.0, 10.0}, Point{10.0, 10.0}, Point{10.0, 0.0})
	test.T(t, cube.At(0.5), Point{5.0, 7.5})
}

func TestSegmentAtPanics(t *testing.T) {
	defer func() {
		test.That(t, recover() != nil)
	}()
	Line(Point{0.0, 0.0}, Point{10.0, 0.0}).At(1.5)
}

func TestSegmentLength(t *testing.T) {
	test.Float(t, Line(Point{0.0, 0.0}, Point{3.0, 4.0}).Length(), 5.0)

	// degenerate curves along a straight line have exact lengths
	quad := Quad(Point{0.0, 0.0}, Point{5.0, 0.0}, Point{10.0, 0.0})
	test.That(t, math.Abs(quad.Length()-10.0) < lengthTolerance)

	cube := Cube(Point{0.0, 0.0}, Point{3.0, 0.0}, Point{7.0, 0.0}, Point{10.0, 0.0})
	test.That(t, math.Abs(cube.Length()-10.0) < lengthTolerance)

	// cubic approximation of a quarter circle with radius 10
	k := 5.5228474983
	arc := Cube(Point{10.0, 0.0}, Point{10.0, k}, Point{k, 10.0}, Point{0.0, 10.0})
	test.That(t, math.Abs(arc.Length()-math.Pi*5.0) < 0.01)
}

func TestSegmentParameterAt(t *testing.T) {
	line := Line(Point{0.0, 0.0}, Point{10.0, 0.0})
	test.Float(t, line.parameterAt(0.0), 0.0)
	test.Float(t, line.parameterAt(2.5), 0.25)
	test.Float(t, line.parameterAt(10.0), 1.0)
	test.Float(t, line.parameterAt(15.0), 1.0)

	quad := Quad(Point{0.0, 0.0}, Point{5.0, 10.0}, Point{10.0, 0.0})
	mid := quad.parameterAt(quad.Length() / 2.0)
	test.That(t, math.Abs(mid-0.5) < 1e-3)
}

func TestSegmentSplit(t *testing.T) {
	cube := Cube(Point{0.0, 0.0}, Point{0.0, 10.0}, Point{10.0, 10.0}, Point{10.0, 0.0})
	head, tail := cube.Split(0.3)
	test.T(t, head.Start, cube.Start)
	test.T(t, tail.End, cube.End)
	test.That(t, head.End.Equals(tail.Start))
	test.That(t, head.End.Equals(cube.At(0.3)))
	test.That(t, math.Abs(head.Length()+tail.Length()-cube.Length()) < 2.0*lengthTolerance)

	line := Line(Point{0.0, 0.0}, Point{10.0, 0.0})
	head, tail = line.Split(0.5)
	test.T(t, head, Line(Point{0.0, 0.0}, Point{5.0, 0.0}))
	test.T(t, tail, Line(Point{5.0, 0.0}, Point{10.0, 0.0}))
}

func TestSegmentTransform(t *testing.T) {
	m := Identity.Translate(1.0, 2.0).Scale(2.0, 2.0)
	line := Line(Point{0.0, 0.0}, Point{10.0, 0.0}).transform(m)
	test.T(t, line.Start, Point{1.0, 2.0})
	test.T(t, line.End, Point{21.0, 2.0})
}
