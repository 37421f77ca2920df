package curve3

import (
	"fmt"
	"iter"
	"slices"
)

type SegmentKind int

const (
	// A straight line between two points.
	LineKind SegmentKind = iota + 1
	// A Bézier curve of degree two or higher.
	BezierKind
)

func (k SegmentKind) String() string {
	switch k {
	case LineKind:
		return "line"
	case BezierKind:
		return "bezier"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// Segment is one piece of a [Path]. It acts as a tagged union of a straight
// line and a general-degree Bézier curve.
//
// Control points are stored in the local space of the segment's [Frame].
// Positions, tangents and lengths are reported in world space. The segment
// caches its world-space length and keeps it current on every mutation made
// through its own methods. Changing the frame itself (for example, moving a
// [Node]) is not observed; call RecalculateLength afterwards.
type Segment struct {
	kind  SegmentKind
	frame Frame
	// Lines have exactly two points, Béziers at least three.
	points []Point
	// Number of chords used to approximate the length of Béziers.
	steps  int
	length float64
	// Bumped on every change that may affect length.
	rev uint64
}

// NewLineSegment returns a line from a to b, which are given in the local
// space of frame. A nil frame is the identity.
func NewLineSegment(frame Frame, a, b Point) *Segment {
	seg := &Segment{
		kind:   LineKind,
		frame:  frame,
		points: []Point{a, b},
	}
	seg.RecalculateLength()
	return seg
}

// NewBezierSegment returns a Bézier curve with the given control points, which
// are given in the local space of frame. A nil frame is the identity. steps is
// the number of chords used to approximate the curve's length.
//
// The points are copied.
func NewBezierSegment(frame Frame, points []Point, steps int) (*Segment, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("need at least 3 points for a Bézier segment, got %d: %w", len(points), ErrDegenerateCurve)
	}
	if steps < 1 {
		return nil, fmt.Errorf("got %d steps: %w", steps, ErrInvalidSteps)
	}
	seg := &Segment{
		kind:   BezierKind,
		frame:  frame,
		points: slices.Clone(points),
		steps:  steps,
	}
	seg.RecalculateLength()
	return seg, nil
}

func (seg *Segment) Kind() SegmentKind { return seg.kind }

// Frame returns the frame the segment's control points live in. It may be nil.
func (seg *Segment) Frame() Frame { return seg.frame }

// SetFrame moves the segment into a different frame, keeping its local control
// points.
func (seg *Segment) SetFrame(f Frame) {
	seg.frame = f
	seg.RecalculateLength()
}

// Length returns the cached world-space length of the segment. It is exact for
// lines and a polyline approximation for Béziers.
func (seg *Segment) Length() float64 { return seg.length }

// RecalculateLength recomputes and returns the segment's cached length.
func (seg *Segment) RecalculateLength() float64 {
	switch seg.kind {
	case LineKind:
		seg.length = seg.WorldLine().Length()
	case BezierKind:
		seg.length = polylineLength(seg.Samples(seg.steps))
	default:
		panic(fmt.Sprintf("invalid segment kind %d", seg.kind))
	}
	seg.rev++
	return seg.length
}

func (seg *Segment) toWorld(pt Point) Point {
	return frameOrIdentity(seg.frame).LocalToWorld(pt)
}

func (seg *Segment) toLocal(pt Point) Point {
	return frameOrIdentity(seg.frame).WorldToLocal(pt)
}

// Eval returns the world-space position at t, which is clamped to [0, 1].
func (seg *Segment) Eval(t float64) Point {
	t = clamp01(t)
	switch seg.kind {
	case LineKind:
		return seg.toWorld(seg.points[0].Lerp(seg.points[1], t))
	case BezierKind:
		return seg.toWorld(BezierEval(seg.points, t))
	default:
		panic(fmt.Sprintf("invalid segment kind %d", seg.kind))
	}
}

// Tangent returns the world-space unit tangent at t, which is clamped to
// [0, 1]. The tangent of a line is the same everywhere. Where the segment has
// no direction, the zero vector is returned.
func (seg *Segment) Tangent(t float64) Vec3 {
	t = clamp01(t)
	var local Vec3
	switch seg.kind {
	case LineKind:
		local = seg.points[1].Sub(seg.points[0])
	case BezierKind:
		local = BezierTangent(seg.points, t)
	default:
		panic(fmt.Sprintf("invalid segment kind %d", seg.kind))
	}
	return frameOrIdentity(seg.frame).TransformDirection(local).NormalizeOrZero()
}

// Start returns the world-space position of the first control point.
func (seg *Segment) Start() Point {
	return seg.toWorld(seg.points[0])
}

// End returns the world-space position of the last control point.
func (seg *Segment) End() Point {
	return seg.toWorld(seg.points[len(seg.points)-1])
}

// SetStart moves the first control point to the world-space position pt.
func (seg *Segment) SetStart(pt Point) {
	seg.SetA(seg.toLocal(pt))
}

// SetEnd moves the last control point to the world-space position pt.
func (seg *Segment) SetEnd(pt Point) {
	seg.SetB(seg.toLocal(pt))
}

// A returns the local-space position of the first control point.
func (seg *Segment) A() Point { return seg.points[0] }

// B returns the local-space position of the last control point.
func (seg *Segment) B() Point { return seg.points[len(seg.points)-1] }

// SetA moves the first control point to the local-space position pt.
func (seg *Segment) SetA(pt Point) {
	seg.points[0] = pt
	seg.RecalculateLength()
}

// SetB moves the last control point to the local-space position pt.
func (seg *Segment) SetB(pt Point) {
	seg.points[len(seg.points)-1] = pt
	seg.RecalculateLength()
}

// Points returns a copy of the segment's local-space control points.
func (seg *Segment) Points() []Point {
	return slices.Clone(seg.points)
}

// SetPoints replaces the local-space control points. Lines need exactly two
// points and Béziers at least three. The points are copied.
func (seg *Segment) SetPoints(pts []Point) error {
	switch seg.kind {
	case LineKind:
		if len(pts) != 2 {
			return fmt.Errorf("need 2 points for a line segment, got %d: %w", len(pts), ErrDegenerateCurve)
		}
	case BezierKind:
		if len(pts) < 3 {
			return fmt.Errorf("need at least 3 points for a Bézier segment, got %d: %w", len(pts), ErrDegenerateCurve)
		}
	}
	seg.points = slices.Clone(pts)
	seg.RecalculateLength()
	return nil
}

// Steps returns the number of chords used to approximate the length of a
// Bézier segment. It is zero for lines.
func (seg *Segment) Steps() int { return seg.steps }

// SetSteps sets the number of chords used to approximate the length of a
// Bézier segment. It has no effect on lines.
func (seg *Segment) SetSteps(n int) error {
	if n < 1 {
		return fmt.Errorf("got %d steps: %w", n, ErrInvalidSteps)
	}
	if seg.kind != BezierKind {
		return nil
	}
	seg.steps = n
	seg.RecalculateLength()
	return nil
}

// PointCount returns the number of control points.
func (seg *Segment) PointCount() int { return len(seg.points) }

// Point returns the world-space position of control point i. It panics if i
// is out of range.
func (seg *Segment) Point(i int) Point {
	return seg.toWorld(seg.points[i])
}

// SetPoint moves control point i to the world-space position pt. It panics if
// i is out of range.
func (seg *Segment) SetPoint(i int, pt Point) {
	seg.points[i] = seg.toLocal(pt)
	seg.RecalculateLength()
}

// WorldLine returns the world-space chord from the first to the last control
// point. For line segments, this is the segment itself.
func (seg *Segment) WorldLine() Line {
	return Line{seg.Start(), seg.End()}
}

// Nearest returns the distance from the world-space point pt to the segment,
// and the segment parameter of the closest point.
//
// Lines are measured exactly. Béziers are measured with ShortestDistanceFrom,
// using subdivisions chords.
func (seg *Segment) Nearest(pt Point, subdivisions int) (dist, t float64) {
	switch seg.kind {
	case LineKind:
		return seg.WorldLine().Nearest(pt)
	case BezierKind:
		return seg.ShortestDistanceFrom(pt, subdivisions)
	default:
		panic(fmt.Sprintf("invalid segment kind %d", seg.kind))
	}
}

// ShortestDistanceFrom approximates the segment by subdivisions chords of
// equal parameter span and returns the distance from pt to the closest chord.
// The returned t is the chord-local parameter mapped back onto the segment,
// so its precision is limited by the number of subdivisions. subdivisions is
// at least 1.
func (seg *Segment) ShortestDistanceFrom(pt Point, subdivisions int) (dist, t float64) {
	s := max(subdivisions, 1)
	var best option[float64]
	prev := seg.Eval(0)
	for i := range s {
		t0 := float64(i) / float64(s)
		t1 := float64(i+1) / float64(s)
		next := seg.Eval(t1)
		d, lt := Line{prev, next}.Nearest(pt)
		if !best.isSet || d < best.value {
			best.set(d)
			t = mapRange(lt, 0, 1, t0, t1)
		}
		prev = next
	}
	return best.unwrap(), t
}

// Subsegment returns a new segment tracing the part of seg between t0 and t1,
// which are clamped to [0, 1]. It lives in the same frame and, for Béziers,
// uses the same number of steps.
func (seg *Segment) Subsegment(t0, t1 float64) *Segment {
	t0, t1 = clamp01(t0), clamp01(t1)
	out := &Segment{
		kind:  seg.kind,
		frame: seg.frame,
		steps: seg.steps,
	}
	switch seg.kind {
	case LineKind:
		l := Line{seg.points[0], seg.points[1]}.Subsegment(t0, t1)
		out.points = []Point{l.P0, l.P1}
	case BezierKind:
		switch p := seg.points; len(p) {
		case 3:
			q := QuadBez{p[0], p[1], p[2]}.Subsegment(t0, t1)
			out.points = []Point{q.P0, q.P1, q.P2}
		case 4:
			c := CubicBez{p[0], p[1], p[2], p[3]}.Subsegment(t0, t1)
			out.points = []Point{c.P0, c.P1, c.P2, c.P3}
		default:
			_, right := BezierSplit(p, t0)
			if t0 < 1 {
				right, _ = BezierSplit(right, (t1-t0)/(1-t0))
			}
			out.points = right
		}
	default:
		panic(fmt.Sprintf("invalid segment kind %d", seg.kind))
	}
	out.RecalculateLength()
	return out
}

// ControlBox returns the world-space bounding box of the control points. It
// contains the whole segment for affine frames.
func (seg *Segment) ControlBox() Box {
	pts := make([]Point, len(seg.points))
	for i, pt := range seg.points {
		pts[i] = seg.toWorld(pt)
	}
	return boxOf(pts)
}

// Samples yields n+1 world-space points evenly spaced in t, including both
// endpoints. It yields nothing if n < 1.
func (seg *Segment) Samples(n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if n < 1 {
			return
		}
		for i := range n + 1 {
			if !yield(seg.Eval(float64(i) / float64(n))) {
				return
			}
		}
	}
}

func (seg *Segment) String() string {
	return fmt.Sprintf("%s%v", seg.kind, seg.points)
}
