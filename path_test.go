package perfo

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestNewPathContinuity(t *testing.T) {
	p, err := NewPath([]Segment{
		Line(Point{0.0, 0.0}, Point{10.0, 0.0}),
		Line(Point{10.0, 0.0}, Point{10.0, 10.0}),
	}, false)
	test.Error(t, err)
	test.That(t, !p.Empty())

	_, err = NewPath([]Segment{
		Line(Point{0.0, 0.0}, Point{10.0, 0.0}),
		Line(Point{10.0, 1.0}, Point{20.0, 0.0}),
	}, false)
	var derr *DiscontinuityError
	test.That(t, errors.As(err, &derr))
	test.T(t, derr.Index, 1)

	// a closed path must return to its start
	_, err = NewPath([]Segment{
		Line(Point{0.0, 0.0}, Point{10.0, 0.0}),
	}, true)
	test.That(t, errors.As(err, &derr))
	test.T(t, derr.Index, 0)
}

func TestPathLength(t *testing.T) {
	p := MustParsePathData("M0 0L10 0L10 10")[0]
	test.Float(t, p.Length(), 20.0)
	test.Float(t, p.Length(), 20.0) // cached

	square := MustParsePathData("M0 0L10 0L10 10L0 10z")[0]
	test.That(t, square.Closed())
	test.Float(t, square.Length(), 40.0)
}

func TestPathSubpathBetween(t *testing.T) {
	p := MustParsePathData("M0 0L10 0L10 10L0 10")[0]

	sp := p.SubpathBetween(5.0, 25.0)
	test.That(t, sp.Start().Equals(Point{5.0, 0.0}))
	test.That(t, sp.End().Equals(Point{5.0, 10.0}))
	test.Float(t, sp.Length(), 20.0)
	test.T(t, len(sp.Segments()), 3)

	// boundaries on segment joints must not produce slivers
	sp = p.SubpathBetween(10.0, 20.0)
	test.T(t, len(sp.Segments()), 1)
	test.That(t, sp.Start().Equals(Point{10.0, 0.0}))
	test.That(t, sp.End().Equals(Point{10.0, 10.0}))

	// both boundaries inside the same segment
	sp = p.SubpathBetween(2.0, 8.0)
	test.T(t, len(sp.Segments()), 1)
	test.That(t, sp.Start().Equals(Point{2.0, 0.0}))
	test.That(t, sp.End().Equals(Point{8.0, 0.0}))

	// whole path
	sp = p.SubpathBetween(0.0, p.Length())
	test.Float(t, sp.Length(), 30.0)
	test.That(t, !sp.Closed())
}

func TestPathSubpathBetweenCurve(t *testing.T) {
	p := MustParsePathData("M0 0C0 10 10 10 10 0")[0]
	length := p.Length()
	sp := p.SubpathBetween(0.25*length, 0.75*length)
	test.That(t, math.Abs(sp.Length()-0.5*length) < 0.01)
}

func TestPathTransform(t *testing.T) {
	p := MustParsePathData("M0 0L10 0")[0]
	q := p.Transform(Identity.ReflectYAt(20.0))
	test.That(t, q.Start().Equals(Point{0.0, 20.0}))
	test.That(t, q.End().Equals(Point{10.0, 20.0}))
	test.That(t, p.Start().Equals(Point{0.0, 0.0})) // original untouched
}

func TestPathString(t *testing.T) {
	var tts = []struct {
		data string
	}{
		{"M0 0L10 0"},
		{"M0 0L10 0Q15 10 20 0"},
		{"M0 0C0 10 10 10 10 0"},
		{"M0 0L10 0L10 10z"},
		{"M2.5 0L7.5 5"},
	}
	for _, tt := range tts {
		t.Run(tt.data, func(t *testing.T) {
			test.T(t, MustParsePathData(tt.data)[0].String(), tt.data)
		})
	}
}
