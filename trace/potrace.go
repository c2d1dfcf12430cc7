package trace

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/tdewolff/parse/v2"
	strconvParse "github.com/tdewolff/parse/v2/strconv"
	"github.com/tdewolff/parse/v2/xml"
	"github.com/tdewolff/perfo"
	"golang.org/x/image/bmp"
)

// Potrace traces bitmaps by invoking the external potrace binary. The zero
// value is not usable, use NewPotrace.
type Potrace struct {
	Binary          string  // potrace executable, looked up in PATH
	CornerThreshold float64 // -k, lower values yield sharper corners
	TurdSize        int     // -t, suppress speckles up to this many pixels
	OptTolerance    float64 // -O, curve optimization tolerance
}

// NewPotrace returns a Potrace backend with parameters tuned for line art.
func NewPotrace() *Potrace {
	return &Potrace{
		Binary:          "potrace",
		CornerThreshold: 0.5,
		TurdSize:        2,
		OptTolerance:    1.0,
	}
}

// Trace writes the bitmap to a temporary BMP file, runs potrace on it with
// SVG output and parses the resulting document.
func (pt *Potrace) Trace(bitmap *image.Gray) (*Result, error) {
	dir, err := os.MkdirTemp("", "perfo")
	if err != nil {
		return nil, fmt.Errorf("could not create temporary directory: %w", err)
	}
	defer os.RemoveAll(dir)

	bmpFilename := filepath.Join(dir, "trace.bmp")
	svgFilename := filepath.Join(dir, "trace.svg")

	f, err := os.Create(bmpFilename)
	if err != nil {
		return nil, fmt.Errorf("could not write bitmap: %w", err)
	}
	if err = bmp.Encode(f, bitmap); err != nil {
		f.Close()
		return nil, fmt.Errorf("could not write bitmap: %w", err)
	}
	if err = f.Close(); err != nil {
		return nil, fmt.Errorf("could not write bitmap: %w", err)
	}

	cmd := exec.Command(pt.Binary,
		"-s",
		"-k", fmt.Sprintf("%g", pt.CornerThreshold),
		"-t", fmt.Sprintf("%d", pt.TurdSize),
		"-O", fmt.Sprintf("%g", pt.OptTolerance),
		"-o", svgFilename,
		bmpFilename,
	)
	stderr := bytes.Buffer{}
	cmd.Stderr = &stderr
	if err = cmd.Run(); err != nil {
		return nil, &ToolError{Tool: pt.Binary, Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}

	out, err := os.Open(svgFilename)
	if err != nil {
		return nil, &ToolError{Tool: pt.Binary, Err: fmt.Errorf("no output written: %w", err)}
	}
	defer out.Close()
	return parsePotraceSVG(out)
}

// parsePotraceSVG extracts the paths from potrace's SVG output. The viewBox
// holds the true document extents; path coordinates are scaled up by a
// factor potrace undoes in a group transform of the form
// translate(0,H) scale(s,-s). Applying the magnitude of that scale and
// skipping the reflection leaves coordinates in a bottom-left origin space
// matching the viewBox extents.
func parsePotraceSVG(r io.Reader) (*Result, error) {
	z := parse.NewInput(r)
	defer z.Restore()

	l := xml.NewLexer(z)
	scale := 1.0
	vbWidth, vbHeight := 0.0, 0.0
	var pathData [][]byte
	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return nil, fmt.Errorf("could not parse traced output: %w", l.Err())
			}
			res := &Result{
				Width:  vbWidth,
				Height: vbHeight,
			}
			m := perfo.Identity.Scale(scale, scale)
			for _, d := range pathData {
				paths, err := perfo.ParsePathData(d)
				if err != nil {
					return nil, fmt.Errorf("could not parse traced output: %w", err)
				}
				for _, p := range paths {
					res.Paths = append(res.Paths, p.Transform(m))
				}
			}
			return res, nil
		case xml.StartTagToken:
			tag := string(data[1:])
			attrs := map[string]string{}
			for {
				tt, _ = l.Next()
				if tt != xml.AttributeToken {
					break
				}
				val := l.AttrVal()
				if 2 <= len(val) && (val[0] == '"' || val[0] == '\'') {
					val = val[1 : len(val)-1]
				}
				attrs[string(l.Text())] = string(val)
			}
			switch tag {
			case "svg":
				if viewBox, ok := attrs["viewBox"]; ok {
					parts := strings.Fields(viewBox)
					if len(parts) == 4 {
						vbWidth = parseNum(parts[2])
						vbHeight = parseNum(parts[3])
					}
				}
			case "g":
				if transform, ok := attrs["transform"]; ok {
					if s, ok := scaleOf(transform); ok {
						scale = s
					}
				}
			case "path":
				if d, ok := attrs["d"]; ok {
					pathData = append(pathData, []byte(d))
				}
			}
		}
	}
}

// scaleOf returns the magnitude of the x scale factor of the first scale()
// in an SVG transform attribute.
func scaleOf(transform string) (float64, bool) {
	i := strings.Index(transform, "scale(")
	if i == -1 {
		return 0.0, false
	}
	s := parseNum(transform[i+6:])
	if s == 0.0 {
		return 0.0, false
	}
	if s < 0.0 {
		s = -s
	}
	return s, true
}

func parseNum(s string) float64 {
	f, n := strconvParse.ParseFloat([]byte(s))
	if n == 0 {
		return 0.0
	}
	return f
}
