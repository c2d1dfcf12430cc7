package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/perfo"
	"github.com/tdewolff/perfo/raster"
	"github.com/tdewolff/perfo/svg"
	"github.com/tdewolff/perfo/trace"
)

type Vectorize struct {
	Input       string  `short:"i" desc:"Input image (PNG, JPEG, GIF, BMP or TIFF)"`
	Output      string  `short:"o" desc:"Output SVG file"`
	GapLength   float64 `name:"gap-length" default:"3.0" desc:"Length of each gap in pixels"`
	GapSpacing  float64 `name:"gap-spacing" default:"40.0" desc:"Distance between gap starts in pixels"`
	StrokeWidth float64 `name:"stroke-width" default:"1.0" desc:"Stroke width of output paths"`
	Threshold   int     `short:"t" default:"128" desc:"Ink threshold, pixels darker than this are traced"`
	Tracer      string  `default:"potrace" desc:"Tracing backend: potrace or builtin"`
	Quiet       bool    `short:"q" desc:"Suppress progress output"`
	InputArg    string  `index:"0" desc:"Input image, alternative to --input"`
}

func main() {
	root := argp.NewCmd(&Vectorize{}, "Vectorize line art into SVG with periodic gaps for laser cutting by Taco de Wolff")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Vectorize) Run() error {
	input := cmd.Input
	if input == "" {
		input = cmd.InputArg
	}
	if input == "" {
		return argp.ShowUsage
	}
	if cmd.Output == "" {
		return fmt.Errorf("output filename required")
	}
	if cmd.Threshold < 0 || 255 < cmd.Threshold {
		return fmt.Errorf("threshold must be between 0 and 255")
	}

	cfg := perfo.GapConfig{
		Length:  cmd.GapLength,
		Spacing: cmd.GapSpacing,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var tracer trace.Tracer
	switch cmd.Tracer {
	case "potrace":
		tracer = trace.NewPotrace()
	case "builtin":
		tracer = trace.NewBuiltin()
	default:
		return fmt.Errorf("unknown tracer %s", cmd.Tracer)
	}

	img, err := raster.Load(input)
	if err != nil {
		return err
	}
	bitmap := raster.Threshold(img, uint8(cmd.Threshold))

	if !cmd.Quiet {
		fmt.Printf("Tracing %s (%dx%d)\n", input, bitmap.Bounds().Dx(), bitmap.Bounds().Dy())
	}
	res, err := tracer.Trace(bitmap)
	if err != nil {
		return err
	}

	// Tracers use a bottom-left origin; SVG has its origin top-left.
	flip := perfo.Identity.ReflectYAt(res.Height)
	style := svg.Style{
		Stroke:      svg.Black,
		StrokeWidth: cmd.StrokeWidth,
	}

	buf := bytes.Buffer{}
	out := svg.New(&buf, res.Width, res.Height)
	subpaths := 0
	for _, p := range res.Paths {
		gapped, err := perfo.InsertGaps(p, cfg)
		if err != nil {
			return err
		}
		for _, sp := range gapped {
			out.WritePath(sp.Transform(flip), style)
			subpaths++
		}
	}
	if err = out.Close(); err != nil {
		return err
	}

	if err = os.WriteFile(cmd.Output, buf.Bytes(), 0644); err != nil {
		os.Remove(cmd.Output) // no partial output
		return fmt.Errorf("could not write output: %w", err)
	}
	if !cmd.Quiet {
		fmt.Printf("Wrote %d paths as %d gapped subpaths to %s\n", len(res.Paths), subpaths, cmd.Output)
	}
	return nil
}
