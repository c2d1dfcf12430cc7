package perfo

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestNum(t *testing.T) {
	test.T(t, num(1.0).String(), "1")
	test.T(t, num(10.0).String(), "10")
	test.T(t, num(2.5).String(), "2.5")
	test.T(t, num(0.5).String(), ".5")
	test.T(t, num(-0.5).String(), "-.5")
	test.T(t, num(1.0/3.0).String(), ".33333333")
}

func TestPoint(t *testing.T) {
	test.T(t, Point{3.0, 4.0}.Length(), 5.0)
	test.T(t, Point{1.0, 2.0}.Add(Point{3.0, 4.0}), Point{4.0, 6.0})
	test.T(t, Point{1.0, 2.0}.Sub(Point{3.0, 4.0}), Point{-2.0, -2.0})
	test.T(t, Point{1.0, 2.0}.Mul(2.0), Point{2.0, 4.0})
	test.T(t, Point{1.0, 2.0}.Dot(Point{3.0, 4.0}), 11.0)
	test.T(t, Point{0.0, 0.0}.Interpolate(Point{10.0, 20.0}, 0.5), Point{5.0, 10.0})
	test.That(t, Point{1.0, 2.0}.Equals(Point{1.0, 2.0}))
	test.That(t, !Point{1.0, 2.0}.Equals(Point{1.0, 2.1}))
	test.That(t, Point{}.IsZero())
}

func TestMatrix(t *testing.T) {
	test.T(t, Identity.Translate(2.0, 3.0).Dot(Point{1.0, 1.0}), Point{3.0, 4.0})
	test.T(t, Identity.Scale(2.0, 3.0).Dot(Point{1.0, 1.0}), Point{2.0, 3.0})
	test.T(t, Identity.ReflectY().Dot(Point{1.0, 2.0}), Point{1.0, -2.0})
	test.T(t, Identity.ReflectYAt(10.0).Dot(Point{1.0, 2.0}), Point{1.0, 8.0})

	// right-to-left evaluation: translate first, then scale
	test.T(t, Identity.Scale(2.0, 2.0).Translate(1.0, 0.0).Dot(Point{0.0, 0.0}), Point{2.0, 0.0})
}

func TestBisectionMethod(t *testing.T) {
	f := func(x float64) float64 {
		return x * x
	}
	x := bisectionMethod(f, 4.0, 0.0, 10.0)
	test.That(t, math.Abs(f(x)-4.0) < lengthTolerance)
}
