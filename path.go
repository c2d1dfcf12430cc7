package perfo

import (
	"math"
	"strings"
)

// continuityTolerance is the maximum distance allowed between the end point of
// a segment and the start point of its successor. Tracer output is continuous
// by construction, so exceeding this indicates corrupt data.
const continuityTolerance = 1e-6

// Path is one continuous drawn stroke: an ordered sequence of segments in
// which every segment starts where the previous one ended. A closed path
// additionally ends where it started. Paths are not mutated after
// construction; transformations return new paths.
type Path struct {
	segments []Segment
	closed   bool

	length  float64   // total arc length, cached by Length
	lengths []float64 // per-segment arc lengths, cached alongside
}

// NewPath constructs a path from raw tracer segments and validates the
// continuity invariant.
func NewPath(segments []Segment, closed bool) (*Path, error) {
	for i := 1; i < len(segments); i++ {
		if gap := segments[i].Start.Sub(segments[i-1].End).Length(); continuityTolerance < gap {
			return nil, &DiscontinuityError{Index: i, Gap: gap}
		}
	}
	if closed && 0 < len(segments) {
		if gap := segments[0].Start.Sub(segments[len(segments)-1].End).Length(); continuityTolerance < gap {
			return nil, &DiscontinuityError{Index: 0, Gap: gap}
		}
	}
	return &Path{segments: segments, closed: closed}, nil
}

// Empty returns true if the path has no segments.
func (p *Path) Empty() bool {
	return len(p.segments) == 0
}

// Closed returns true if the path ends where it started and wraps.
func (p *Path) Closed() bool {
	return p.closed
}

// Segments returns the segments of the path. The returned slice must not be
// modified.
func (p *Path) Segments() []Segment {
	return p.segments
}

// Start returns the first point of the path.
func (p *Path) Start() Point {
	if p.Empty() {
		return Point{}
	}
	return p.segments[0].Start
}

// End returns the last point of the path.
func (p *Path) End() Point {
	if p.Empty() {
		return Point{}
	}
	return p.segments[len(p.segments)-1].End
}

// Length returns the total arc length of the path. The per-segment lengths
// are computed once and cached.
func (p *Path) Length() float64 {
	if p.lengths == nil {
		p.lengths = make([]float64, len(p.segments))
		p.length = 0.0
		for i, seg := range p.segments {
			p.lengths[i] = seg.Length()
			p.length += p.lengths[i]
		}
	}
	return p.length
}

// locate translates an arc length offset s along the whole path into a
// segment index and the local parameter t at that offset. A linear scan over
// the segment lengths suffices since paths are processed once and gap counts
// are small compared to segment counts.
func (p *Path) locate(s float64) (int, float64) {
	total := p.Length()
	if s < 0.0 || total < s {
		if s < -Epsilon || total+Epsilon < s {
			panic("arc length offset out of range")
		}
		s = math.Min(math.Max(s, 0.0), total)
	}
	for i, length := range p.lengths {
		if s <= length || i == len(p.lengths)-1 {
			return i, p.segments[i].parameterAt(s)
		}
		s -= length
	}
	return 0, 0.0
}

// SubpathBetween extracts the stretch of the path between arc length offsets
// s0 and s1 as a new open path, splitting the boundary segments and reusing
// all segments in between unchanged.
func (p *Path) SubpathBetween(s0, s1 float64) *Path {
	i0, t0 := p.locate(s0)
	i1, t1 := p.locate(s1)

	// Snap boundaries that fall on segment joints to avoid degenerate slivers.
	if equal(t0, 1.0) && i0+1 < len(p.segments) {
		i0, t0 = i0+1, 0.0
	}
	if equal(t1, 0.0) && 0 < i1 {
		i1, t1 = i1-1, 1.0
	}
	if i1 < i0 || i0 == i1 && t1 <= t0 {
		return &Path{}
	}

	var segments []Segment
	if i0 == i1 {
		seg := p.segments[i0]
		if 0.0 < t0 {
			_, seg = seg.Split(t0)
			t1 = (t1 - t0) / (1.0 - t0)
		}
		if t1 < 1.0 {
			seg, _ = seg.Split(t1)
		}
		segments = append(segments, seg)
	} else {
		if t0 < 1.0 {
			_, tail := p.segments[i0].Split(t0)
			segments = append(segments, tail)
		}
		segments = append(segments, p.segments[i0+1:i1]...)
		if 0.0 < t1 {
			head, _ := p.segments[i1].Split(t1)
			segments = append(segments, head)
		}
	}
	return &Path{segments: segments}
}

// Transform returns a new path with m applied to every point of every
// segment. Affine transformations preserve continuity, so no validation is
// needed.
func (p *Path) Transform(m Matrix) *Path {
	segments := make([]Segment, len(p.segments))
	for i, seg := range p.segments {
		segments[i] = seg.transform(m)
	}
	return &Path{segments: segments, closed: p.closed}
}

// String returns the path as SVG path data.
func (p *Path) String() string {
	sb := strings.Builder{}
	p.appendSVG(&sb)
	return sb.String()
}

func (p *Path) appendSVG(sb *strings.Builder) {
	if p.Empty() {
		return
	}
	start := p.Start()
	sb.WriteByte('M')
	sb.WriteString(num(start.X).String())
	sb.WriteByte(' ')
	sb.WriteString(num(start.Y).String())
	for i, seg := range p.segments {
		if p.closed && i == len(p.segments)-1 && seg.Kind == LineSeg && seg.End.Equals(start) {
			break // the closing line is implied by z
		}
		switch seg.Kind {
		case LineSeg:
			sb.WriteByte('L')
			writeCoords(sb, seg.End)
		case QuadSeg:
			sb.WriteByte('Q')
			writeCoords(sb, seg.CP1, seg.End)
		default:
			sb.WriteByte('C')
			writeCoords(sb, seg.CP1, seg.CP2, seg.End)
		}
	}
	if p.closed {
		sb.WriteByte('z')
	}
}

func writeCoords(sb *strings.Builder, ps ...Point) {
	for i, pt := range ps {
		if 0 < i {
			sb.WriteByte(' ')
		}
		sb.WriteString(num(pt.X).String())
		sb.WriteByte(' ')
		sb.WriteString(num(pt.Y).String())
	}
}
