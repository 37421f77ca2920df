// Command pathprobe builds a path from lines and Bézier curves given on the
// command line and queries it.
//
// Usage:
//
//	pathprobe [flags]
//
// Segments are appended in the order of their flags:
//
//	pathprobe -line "0,0,0 10,0,0" -bezier "10,0,0 15,5,0 20,0,0" -at 0.5 -near 12,3,0
//
// Defaults are read from the environment: PATHPROBE_PRECISION,
// PATHPROBE_LINE_STEPS, PATHPROBE_SIZE and PATHPROBE_DEBUG.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"

	"honnef.co/go/curve3"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	if err := run(cfg, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("pathprobe", "error", err)
		os.Exit(1)
	}
}

func run(cfg *Config, args []string, stdout, stderr io.Writer) error {
	var (
		specs    []segmentSpec
		at       float64
		near     string
		out      string
		progress float64
	)
	fs := flag.NewFlagSet("pathprobe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var(segmentFlag{curve3.LineKind, &specs}, "line", `append a line, given as "x,y,z x,y,z"`)
	fs.Var(segmentFlag{curve3.BezierKind, &specs}, "bezier", `append a Bézier curve, given as "x,y,z x,y,z x,y,z ..."`)
	fs.Float64Var(&at, "at", -1, "print position and tangent at this path parameter")
	fs.StringVar(&near, "near", "", "print the point on the path nearest to `x,y,z`")
	fs.StringVar(&out, "png", "", "render the XY projection of the path to this `file`")
	fs.Float64Var(&progress, "progress", 0, "highlight this fraction of the path when rendering")
	fs.Float64Var(&cfg.Precision, "precision", cfg.Precision, "world-space precision of nearest point searches")
	fs.IntVar(&cfg.LineSteps, "steps", cfg.LineSteps, "number of chords approximating the length of Bézier curves")
	fs.IntVar(&cfg.Size, "size", cfg.Size, "width and height of the rendered image")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	curve3.SetLogger(logger)

	if len(specs) == 0 {
		return errors.New("no segments given, use -line or -bezier")
	}
	p, err := buildPath(specs, cfg.LineSteps)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "segments=%d points=%d length=%g inclusive=%g\n",
		p.Len(), p.PointCount(), p.Length(), p.InclusiveLength())

	if at >= 0 {
		pt, err := p.Eval(at)
		if err != nil {
			return fmt.Errorf("evaluate at %g: %w", at, err)
		}
		tan, err := p.Tangent(at)
		if err != nil {
			return fmt.Errorf("tangent at %g: %w", at, err)
		}
		fmt.Fprintf(stdout, "at t=%g point=%s tangent=%s\n", at, pt, tan)
	}

	var nearest *curve3.Point
	if near != "" {
		q, err := parsePoint(near)
		if err != nil {
			return err
		}
		n, err := p.Nearest(q, cfg.Precision)
		if err != nil {
			return fmt.Errorf("nearest to %s: %w", q, err)
		}
		fmt.Fprintf(stdout, "nearest point=%s tangent=%s t=%g distance=%g segment=%d\n",
			n.Point, n.Tangent, n.T, n.Distance, n.Segment)
		nearest = &n.Point
	}

	if out != "" {
		img := render(p, cfg.Size, progress, nearest)
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			return fmt.Errorf("encode %s: %w", out, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		slog.Info("wrote image", "file", out, "size", cfg.Size)
	}
	return nil
}
