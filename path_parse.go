package perfo

import (
	"fmt"
	"math"

	strconvParse "github.com/tdewolff/parse/v2/strconv"
)

// ParsePathData parses SVG path data into paths, one per subpath. All
// commands including the elliptical arc are accepted; arcs are converted to
// cubic Bézier approximations so downstream arc length arithmetic deals with
// three segment kinds only.
func ParsePathData(data []byte) ([]*Path, error) {
	var d pathDataParser
	var prevCmd byte
	cpx, cpy := 0.0, 0.0 // control point of previous C/S or Q/T for smooth commands

	i := 0
	for i < len(data) {
		i += skipCommaWhitespace(data[i:])
		if i == len(data) {
			break
		}
		cmd := prevCmd
		if cmd == 0 || cmd == 'Z' || cmd == 'z' || !(data[i] >= '0' && data[i] <= '9' || data[i] == '.' || data[i] == '-' || data[i] == '+') {
			cmd = data[i]
			i++
			i += skipCommaWhitespace(data[i:])
		}

		cur := d.cur
		switch cmd {
		case 'M', 'm':
			x, y, n, err := parseTwoNums(data[i:])
			if err != nil {
				return nil, err
			}
			i += n
			p := Point{x, y}
			if cmd == 'm' {
				p = cur.Add(p)
			}
			d.moveTo(p)
			// subsequent coordinate pairs are implicit line-tos
			if cmd == 'M' {
				prevCmd = 'L'
			} else {
				prevCmd = 'l'
			}
			continue
		case 'L', 'l':
			x, y, n, err := parseTwoNums(data[i:])
			if err != nil {
				return nil, err
			}
			i += n
			p := Point{x, y}
			if cmd == 'l' {
				p = cur.Add(p)
			}
			d.lineTo(p)
		case 'H', 'h':
			x, n, err := parseNum(data[i:])
			if err != nil {
				return nil, err
			}
			i += n
			if cmd == 'h' {
				x += cur.X
			}
			d.lineTo(Point{x, cur.Y})
		case 'V', 'v':
			y, n, err := parseNum(data[i:])
			if err != nil {
				return nil, err
			}
			i += n
			if cmd == 'v' {
				y += cur.Y
			}
			d.lineTo(Point{cur.X, y})
		case 'C', 'c', 'S', 's':
			var cp1 Point
			if cmd == 'S' || cmd == 's' {
				cp1 = cur
				if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
					cp1 = Point{2.0*cur.X - cpx, 2.0*cur.Y - cpy}
				}
			} else {
				x1, y1, n, err := parseTwoNums(data[i:])
				if err != nil {
					return nil, err
				}
				i += n
				cp1 = Point{x1, y1}
				if cmd == 'c' {
					cp1 = cur.Add(cp1)
				}
			}
			x2, y2, n, err := parseTwoNums(data[i:])
			if err != nil {
				return nil, err
			}
			i += n
			x, y, n, err := parseTwoNums(data[i:])
			if err != nil {
				return nil, err
			}
			i += n
			cp2, end := Point{x2, y2}, Point{x, y}
			if cmd == 'c' || cmd == 's' {
				cp2 = cur.Add(cp2)
				end = cur.Add(end)
			}
			d.cubeTo(cp1, cp2, end)
			cpx, cpy = cp2.X, cp2.Y
		case 'Q', 'q', 'T', 't':
			var cp Point
			if cmd == 'T' || cmd == 't' {
				cp = cur
				if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
					cp = Point{2.0*cur.X - cpx, 2.0*cur.Y - cpy}
				}
			} else {
				x1, y1, n, err := parseTwoNums(data[i:])
				if err != nil {
					return nil, err
				}
				i += n
				cp = Point{x1, y1}
				if cmd == 'q' {
					cp = cur.Add(cp)
				}
			}
			x, y, n, err := parseTwoNums(data[i:])
			if err != nil {
				return nil, err
			}
			i += n
			end := Point{x, y}
			if cmd == 'q' || cmd == 't' {
				end = cur.Add(end)
			}
			d.quadTo(cp, end)
			cpx, cpy = cp.X, cp.Y
		case 'A', 'a':
			rx, n, err := parseNum(data[i:])
			if err != nil {
				return nil, err
			}
			i += n
			ry, n, err := parseNum(data[i:])
			if err != nil {
				return nil, err
			}
			i += n
			rot, n, err := parseNum(data[i:])
			if err != nil {
				return nil, err
			}
			i += n
			large, n, err := parseFlag(data[i:])
			if err != nil {
				return nil, err
			}
			i += n
			sweep, n, err := parseFlag(data[i:])
			if err != nil {
				return nil, err
			}
			i += n
			x, y, n, err := parseTwoNums(data[i:])
			if err != nil {
				return nil, err
			}
			i += n
			end := Point{x, y}
			if cmd == 'a' {
				end = cur.Add(end)
			}
			d.arcTo(rx, ry, rot, large, sweep, end)
		case 'Z', 'z':
			if err := d.close(); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("bad path data: unknown command '%c' at position %d", cmd, i)
		}
		prevCmd = cmd
	}
	if err := d.flush(false); err != nil {
		return nil, err
	}
	return d.paths, nil
}

// MustParsePathData parses SVG path data and panics on failure.
func MustParsePathData(data string) []*Path {
	paths, err := ParsePathData([]byte(data))
	if err != nil {
		panic(err)
	}
	return paths
}

// pathDataParser accumulates segments for the current subpath and finished
// paths for all subpaths seen so far.
type pathDataParser struct {
	paths  []*Path
	segs   []Segment
	start  Point
	cur    Point
	active bool
}

func (d *pathDataParser) moveTo(p Point) {
	_ = d.flush(false) // an unfinished subpath before a move is open, never invalid
	d.start, d.cur, d.active = p, p, true
}

// ensure reopens a subpath at the current position when a drawing command
// follows a close without an intervening move.
func (d *pathDataParser) ensure() {
	if !d.active {
		d.start, d.active = d.cur, true
	}
}

func (d *pathDataParser) lineTo(p Point) {
	d.ensure()
	d.segs = append(d.segs, Line(d.cur, p))
	d.cur = p
}

func (d *pathDataParser) quadTo(cp, p Point) {
	d.ensure()
	d.segs = append(d.segs, Quad(d.cur, cp, p))
	d.cur = p
}

func (d *pathDataParser) cubeTo(cp1, cp2, p Point) {
	d.ensure()
	d.segs = append(d.segs, Cube(d.cur, cp1, cp2, p))
	d.cur = p
}

func (d *pathDataParser) arcTo(rx, ry, rot float64, large, sweep bool, p Point) {
	d.ensure()
	d.segs = append(d.segs, arcToCubes(d.cur, rx, ry, rot, large, sweep, p)...)
	d.cur = p
}

func (d *pathDataParser) close() error {
	if !d.active {
		return nil
	}
	if !d.cur.Equals(d.start) {
		d.segs = append(d.segs, Line(d.cur, d.start))
	}
	if err := d.flush(true); err != nil {
		return err
	}
	d.cur = d.start
	return nil
}

func (d *pathDataParser) flush(closed bool) error {
	d.active = false
	if len(d.segs) == 0 {
		return nil
	}
	p, err := NewPath(d.segs, closed)
	if err != nil {
		return err
	}
	d.paths = append(d.paths, p)
	d.segs = nil
	return nil
}

////////////////////////////////////////////////////////////////

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

func parseNum(b []byte) (float64, int, error) {
	i := skipCommaWhitespace(b)
	f, n := strconvParse.ParseFloat(b[i:])
	if n == 0 {
		return 0.0, 0, fmt.Errorf("bad path data: expected number")
	}
	return f, i + n, nil
}

func parseTwoNums(b []byte) (float64, float64, int, error) {
	x, n, err := parseNum(b)
	if err != nil {
		return 0.0, 0.0, 0, err
	}
	y, m, err := parseNum(b[n:])
	if err != nil {
		return 0.0, 0.0, 0, err
	}
	return x, y, n + m, nil
}

func parseFlag(b []byte) (bool, int, error) {
	i := skipCommaWhitespace(b)
	if i == len(b) || b[i] != '0' && b[i] != '1' {
		return false, 0, fmt.Errorf("bad path data: expected arc flag")
	}
	return b[i] == '1', i + 1, nil
}

////////////////////////////////////////////////////////////////

// arcToCenter converts to the center arc format and returns the center point
// and the angles of the start and end points on the ellipse, in degrees.
// See https://www.w3.org/TR/SVG/implnote.html#ArcConversionEndpointToCenter
func arcToCenter(x1, y1, rx, ry, phi float64, large, sweep bool, x2, y2 float64) (float64, float64, float64, float64) {
	if x1 == x2 && y1 == y2 {
		return x1, y1, 0.0, 0.0
	}

	sinphi, cosphi := math.Sincos(phi * math.Pi / 180.0)
	x1p := cosphi*(x1-x2)/2.0 + sinphi*(y1-y2)/2.0
	y1p := -sinphi*(x1-x2)/2.0 + cosphi*(y1-y2)/2.0

	// scale up radii when the end points cannot lie on any such ellipse
	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if 1.0 < lambda {
		rx *= math.Sqrt(lambda)
		ry *= math.Sqrt(lambda)
	}

	sq := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	if sq < 0.0 {
		sq = 0.0
	}
	coef := math.Sqrt(sq / (rx*rx*y1p*y1p + ry*ry*x1p*x1p))
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx
	cx := cosphi*cxp - sinphi*cyp + (x1+x2)/2.0
	cy := sinphi*cxp + cosphi*cyp + (y1+y2)/2.0

	theta0 := math.Atan2((y1p-cyp)/ry, (x1p-cxp)/rx)
	theta1 := math.Atan2((-y1p-cyp)/ry, (-x1p-cxp)/rx)
	theta0 *= 180.0 / math.Pi
	theta1 *= 180.0 / math.Pi
	if sweep && theta1 < theta0 {
		theta1 += 360.0
	} else if !sweep && theta0 < theta1 {
		theta1 -= 360.0
	}
	return cx, cy, theta0, theta1
}

// arcToCubes approximates an elliptical arc by cubic Bézier segments, one per
// quarter turn at most, matching the start and end points exactly.
func arcToCubes(start Point, rx, ry, rot float64, large, sweep bool, end Point) []Segment {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if equal(rx, 0.0) || equal(ry, 0.0) || start.Equals(end) {
		return []Segment{Line(start, end)}
	}

	cx, cy, theta0, theta1 := arcToCenter(start.X, start.Y, rx, ry, rot, large, sweep, end.X, end.Y)
	n := int(math.Ceil(math.Abs(theta1-theta0) / 90.0))
	if n == 0 {
		return []Segment{Line(start, end)}
	}

	phi := rot * math.Pi / 180.0
	dtheta := (theta1 - theta0) / float64(n) * math.Pi / 180.0
	alpha := math.Sin(dtheta) * (math.Sqrt(4.0+3.0*math.Pow(math.Tan(dtheta/2.0), 2.0)) - 1.0) / 3.0

	segs := make([]Segment, 0, n)
	p0 := start
	for i := 0; i < n; i++ {
		a := theta0*math.Pi/180.0 + float64(i)*dtheta
		b := a + dtheta
		p1 := ellipsePoint(cx, cy, rx, ry, phi, b)
		if i == n-1 {
			p1 = end
		}
		cp1 := p0.Add(ellipseDeriv(rx, ry, phi, a).Mul(alpha))
		cp2 := p1.Sub(ellipseDeriv(rx, ry, phi, b).Mul(alpha))
		segs = append(segs, Cube(p0, cp1, cp2, p1))
		p0 = p1
	}
	return segs
}

func ellipsePoint(cx, cy, rx, ry, phi, theta float64) Point {
	sintheta, costheta := math.Sincos(theta)
	sinphi, cosphi := math.Sincos(phi)
	return Point{
		cx + rx*costheta*cosphi - ry*sintheta*sinphi,
		cy + rx*costheta*sinphi + ry*sintheta*cosphi,
	}
}

func ellipseDeriv(rx, ry, phi, theta float64) Point {
	sintheta, costheta := math.Sincos(theta)
	sinphi, cosphi := math.Sincos(phi)
	return Point{
		-rx*sintheta*cosphi - ry*costheta*sinphi,
		-rx*sintheta*sinphi + ry*costheta*cosphi,
	}
}
