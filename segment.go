package perfo

import "math"

// lengthTolerance is the maximum arc length error for curve segments. Tracer
// output is in pixel units, so this keeps all arc length arithmetic well below
// sub-pixel scale.
const lengthTolerance = 1e-3

// SegmentKind discriminates the segment variants.
type SegmentKind int

const (
	LineSeg SegmentKind = iota
	QuadSeg
	CubeSeg
)

// Segment is a single path primitive: a straight line or a quadratic or cubic
// Bézier curve. CP1 and CP2 are the control points; CP1 is unused for lines
// and CP2 is used for cubics only.
type Segment struct {
	Kind     SegmentKind
	Start    Point
	CP1, CP2 Point
	End      Point
}

// Line returns a straight line segment from start to end.
func Line(start, end Point) Segment {
	return Segment{Kind: LineSeg, Start: start, End: end}
}

// Quad returns a quadratic Bézier segment.
func Quad(start, cp, end Point) Segment {
	return Segment{Kind: QuadSeg, Start: start, CP1: cp, End: end}
}

// Cube returns a cubic Bézier segment.
func Cube(start, cp1, cp2, end Point) Segment {
	return Segment{Kind: CubeSeg, Start: start, CP1: cp1, CP2: cp2, End: end}
}

// At returns the point at parameter t in [0,1]. Parameters outside that range
// are a programming error and panic; callers only ever derive t from arc
// length searches over [0,1].
func (seg Segment) At(t float64) Point {
	if t < 0.0 || 1.0 < t {
		panic("segment parameter out of range")
	}
	switch seg.Kind {
	case LineSeg:
		return seg.Start.Interpolate(seg.End, t)
	case QuadSeg:
		p01 := seg.Start.Interpolate(seg.CP1, t)
		p12 := seg.CP1.Interpolate(seg.End, t)
		return p01.Interpolate(p12, t)
	default:
		p01 := seg.Start.Interpolate(seg.CP1, t)
		p12 := seg.CP1.Interpolate(seg.CP2, t)
		p23 := seg.CP2.Interpolate(seg.End, t)
		return p01.Interpolate(p12, t).Interpolate(p12.Interpolate(p23, t), t)
	}
}

// speedAt returns |B'(t)|, the rate of change of arc length with t.
func (seg Segment) speedAt(t float64) float64 {
	switch seg.Kind {
	case LineSeg:
		return seg.End.Sub(seg.Start).Length()
	case QuadSeg:
		d := seg.CP1.Sub(seg.Start).Mul(2.0 * (1.0 - t)).Add(seg.End.Sub(seg.CP1).Mul(2.0 * t))
		return d.Length()
	default:
		d := seg.CP1.Sub(seg.Start).Mul(3.0 * (1.0 - t) * (1.0 - t))
		d = d.Add(seg.CP2.Sub(seg.CP1).Mul(6.0 * (1.0 - t) * t))
		d = d.Add(seg.End.Sub(seg.CP2).Mul(3.0 * t * t))
		return d.Length()
	}
}

// Length returns the arc length of the segment, exact for lines and
// approximated within lengthTolerance for curves.
func (seg Segment) Length() float64 {
	if seg.Kind == LineSeg {
		return seg.End.Sub(seg.Start).Length()
	}
	return seg.lengthBetween(0.0, 1.0)
}

// lengthBetween integrates the speed over [t0,t1].
func (seg Segment) lengthBetween(t0, t1 float64) float64 {
	if seg.Kind == LineSeg {
		return (t1 - t0) * seg.End.Sub(seg.Start).Length()
	}
	return adaptiveLength(seg.speedAt, t0, t1, gaussLegendre5(seg.speedAt, t0, t1), 10)
}

// adaptiveLength subdivides the integration interval until the quadrature
// converges, so that cusps and tight curvature do not spoil the estimate.
func adaptiveLength(speed func(float64) float64, t0, t1, whole float64, depth int) float64 {
	mid := (t0 + t1) / 2.0
	left := gaussLegendre5(speed, t0, mid)
	right := gaussLegendre5(speed, mid, t1)
	if depth == 0 || math.Abs(left+right-whole) < lengthTolerance {
		return left + right
	}
	return adaptiveLength(speed, t0, mid, left, depth-1) + adaptiveLength(speed, mid, t1, right, depth-1)
}

// parameterAt returns the parameter t at which the arc length from the
// segment start equals s. s is clamped to [0, Length()].
func (seg Segment) parameterAt(s float64) float64 {
	if s <= 0.0 {
		return 0.0
	}
	length := seg.Length()
	if length <= s+Epsilon {
		return 1.0
	}
	if seg.Kind == LineSeg {
		return s / length
	}
	return bisectionMethod(func(t float64) float64 {
		return seg.lengthBetween(0.0, t)
	}, s, 0.0, 1.0)
}

// Split subdivides the segment at parameter t into two segments whose
// concatenation reconstructs the original shape exactly: linear interpolation
// for lines and De Casteljau subdivision for Béziers.
func (seg Segment) Split(t float64) (Segment, Segment) {
	if t < 0.0 || 1.0 < t {
		panic("segment parameter out of range")
	}
	switch seg.Kind {
	case LineSeg:
		mid := seg.Start.Interpolate(seg.End, t)
		return Line(seg.Start, mid), Line(mid, seg.End)
	case QuadSeg:
		q1 := seg.Start.Interpolate(seg.CP1, t)
		r1 := seg.CP1.Interpolate(seg.End, t)
		mid := q1.Interpolate(r1, t)
		return Quad(seg.Start, q1, mid), Quad(mid, r1, seg.End)
	default:
		q0, q1, q2, q3, r0, r1, r2, r3 := splitCubicBezier(seg.Start, seg.CP1, seg.CP2, seg.End, t)
		return Cube(q0, q1, q2, q3), Cube(r0, r1, r2, r3)
	}
}

func splitCubicBezier(p0, p1, p2, p3 Point, t float64) (Point, Point, Point, Point, Point, Point, Point, Point) {
	pm := p1.Interpolate(p2, t)

	q0 := p0
	q1 := p0.Interpolate(p1, t)
	q2 := q1.Interpolate(pm, t)

	r3 := p3
	r2 := p2.Interpolate(p3, t)
	r1 := pm.Interpolate(r2, t)

	r0 := q2.Interpolate(r1, t)
	q3 := r0
	return q0, q1, q2, q3, r0, r1, r2, r3
}

// transform applies an affine transformation to all segment points.
func (seg Segment) transform(m Matrix) Segment {
	seg.Start = m.Dot(seg.Start)
	seg.CP1 = m.Dot(seg.CP1)
	seg.CP2 = m.Dot(seg.CP2)
	seg.End = m.Dot(seg.End)
	return seg
}
