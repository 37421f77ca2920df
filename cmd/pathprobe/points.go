package main

import (
	"fmt"
	"strconv"
	"strings"

	"honnef.co/go/curve3"
)

// parsePoint parses a point written as "x,y,z".
func parsePoint(s string) (curve3.Point, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return curve3.Point{}, fmt.Errorf("point %q: want 3 coordinates, got %d", s, len(fields))
	}
	var xyz [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return curve3.Point{}, fmt.Errorf("point %q: %w", s, err)
		}
		xyz[i] = v
	}
	return curve3.Pt(xyz[0], xyz[1], xyz[2]), nil
}

// parsePoints parses a whitespace-separated list of points.
func parsePoints(s string) ([]curve3.Point, error) {
	var pts []curve3.Point
	for _, f := range strings.Fields(s) {
		pt, err := parsePoint(f)
		if err != nil {
			return nil, err
		}
		pts = append(pts, pt)
	}
	return pts, nil
}

type segmentSpec struct {
	kind   curve3.SegmentKind
	points []curve3.Point
}

// segmentFlag is a repeatable flag that appends segments of one kind to a
// list shared by all segment flags, preserving their order on the command
// line.
type segmentFlag struct {
	kind  curve3.SegmentKind
	specs *[]segmentSpec
}

func (f segmentFlag) String() string {
	if f.specs == nil {
		return ""
	}
	var parts []string
	for _, spec := range *f.specs {
		if spec.kind == f.kind {
			parts = append(parts, fmt.Sprint(spec.points))
		}
	}
	return strings.Join(parts, " ")
}

func (f segmentFlag) Set(s string) error {
	pts, err := parsePoints(s)
	if err != nil {
		return err
	}
	switch f.kind {
	case curve3.LineKind:
		if len(pts) != 2 {
			return fmt.Errorf("need 2 points for a line, got %d", len(pts))
		}
	case curve3.BezierKind:
		if len(pts) < 3 {
			return fmt.Errorf("need at least 3 points for a Bézier curve, got %d", len(pts))
		}
	}
	*f.specs = append(*f.specs, segmentSpec{kind: f.kind, points: pts})
	return nil
}

// buildPath turns segment specs into a path. All segments live in world
// space.
func buildPath(specs []segmentSpec, lineSteps int) (*curve3.Path, error) {
	p := curve3.NewPath()
	for i, spec := range specs {
		switch spec.kind {
		case curve3.LineKind:
			p.Add(curve3.NewLineSegment(nil, spec.points[0], spec.points[1]))
		case curve3.BezierKind:
			seg, err := curve3.NewBezierSegment(nil, spec.points, lineSteps)
			if err != nil {
				return nil, fmt.Errorf("segment %d: %w", i, err)
			}
			p.Add(seg)
		default:
			return nil, fmt.Errorf("segment %d: invalid kind %s", i, spec.kind)
		}
	}
	return p, nil
}
