package trace

import (
	"fmt"
	"image"
	"image/color"

	"github.com/dennwc/gotrace"
	"github.com/tdewolff/perfo"
)

// Builtin traces bitmaps in-process with the gotrace library, so no external
// tools are needed. Output quality is close to potrace but curve
// optimization is less aggressive.
type Builtin struct {
	TurdSize     int
	AlphaMax     float64
	OptTolerance float64
}

// NewBuiltin returns a Builtin backend with parameters tuned for line art.
func NewBuiltin() *Builtin {
	return &Builtin{
		TurdSize:     2,
		AlphaMax:     1.0,
		OptTolerance: 1.0,
	}
}

// Trace vectorizes the bitmap. gotrace uses a top-left origin, so all
// coordinates are reflected to the bottom-left origin space of Result.
func (bt *Builtin) Trace(bitmap *image.Gray) (*Result, error) {
	bm := gotrace.NewBitmapFromImage(bitmap, func(x, y int, cl color.Color) bool {
		return cl.(color.Gray).Y < 128
	})
	params := &gotrace.Params{
		TurdSize:     bt.TurdSize,
		TurnPolicy:   gotrace.TurnMinority,
		AlphaMax:     bt.AlphaMax,
		OptiCurve:    true,
		OptTolerance: bt.OptTolerance,
	}
	traced, err := gotrace.Trace(bm, params)
	if err != nil {
		return nil, fmt.Errorf("could not trace bitmap: %w", err)
	}

	height := float64(bitmap.Bounds().Dy())
	res := &Result{
		Width:  float64(bitmap.Bounds().Dx()),
		Height: height,
	}
	if err = appendTraced(res, traced, height); err != nil {
		return nil, err
	}
	return res, nil
}

func appendTraced(res *Result, traced []gotrace.Path, height float64) error {
	for _, tp := range traced {
		if 0 < len(tp.Curve) {
			p, err := curveToPath(tp.Curve, height)
			if err != nil {
				return err
			}
			res.Paths = append(res.Paths, p)
		}
		if err := appendTraced(res, tp.Childs, height); err != nil {
			return err
		}
	}
	return nil
}

// curveToPath converts one closed gotrace curve. The curve starts at the end
// point of its last segment; corner segments are two lines through Pnt[1],
// Bézier segments are cubics with control points Pnt[0] and Pnt[1].
func curveToPath(curve []gotrace.Segment, height float64) (*perfo.Path, error) {
	flip := func(p gotrace.Point) perfo.Point {
		return perfo.Point{X: p.X, Y: height - p.Y}
	}

	cur := flip(curve[len(curve)-1].Pnt[2])
	segments := make([]perfo.Segment, 0, 2*len(curve))
	for _, seg := range curve {
		end := flip(seg.Pnt[2])
		if seg.Type == gotrace.TypeCorner {
			mid := flip(seg.Pnt[1])
			segments = append(segments, perfo.Line(cur, mid), perfo.Line(mid, end))
		} else {
			segments = append(segments, perfo.Cube(cur, flip(seg.Pnt[0]), flip(seg.Pnt[1]), end))
		}
		cur = end
	}
	return perfo.NewPath(segments, true)
}
