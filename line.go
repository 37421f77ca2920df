package curve3

var _ ParametricCurve = Line{}
var _ Tangenter = Line{}

// Line represents a finite line segment. It is a [ParametricCurve].
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Tangent returns the direction of the line, or the zero vector if the line
// has zero length. It is the same for all t.
func (l Line) Tangent(t float64) Vec3 {
	return l.P1.Sub(l.P0).NormalizeOrZero()
}

func (l Line) Start() Point {
	return l.P0
}

func (l Line) End() Point {
	return l.P1
}

func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

func (l Line) Subsegment(t0, t1 float64) Line {
	return Line{
		P0: l.Eval(t0),
		P1: l.Eval(t1),
	}
}

// Planes returns the two planes that clip the infinite line to the segment.
// The first passes through P0 and faces away from P1; the second passes
// through P1 and faces away from P0.
//
// For zero-length lines, the normals are NaN.
func (l Line) Planes() (Plane, Plane) {
	dir := l.P1.Sub(l.P0).Normalize()
	a := PlaneFromPointNormal(l.P0, dir.Negate())
	b := PlaneFromPointNormal(l.P1, dir)
	return a, b
}

// Nearest returns the distance from pt to the closest point on the line, and
// the parameter of that point.
//
// Points on or behind the plane through P0 map to P0, points on or beyond the
// plane through P1 map to P1, and all others are projected perpendicularly
// onto the line. A zero-length line always yields P0 with t = 0.
func (l Line) Nearest(pt Point) (dist, t float64) {
	length := l.Length()
	if length == 0 {
		return pt.Distance(l.P0), 0
	}
	a, b := l.Planes()
	if a.SignedDistance(pt) >= 0 {
		return pt.Distance(l.P0), 0
	}
	if b.SignedDistance(pt) >= 0 {
		return pt.Distance(l.P1), 1
	}
	t = a.Flip().SignedDistance(pt) / length
	return pt.Distance(l.Eval(t)), t
}

// ClosestPoint returns the point on the line closest to pt.
func (l Line) ClosestPoint(pt Point) Point {
	_, t := l.Nearest(pt)
	switch t {
	case 0:
		return l.P0
	case 1:
		return l.P1
	default:
		return l.Eval(t)
	}
}

// Distance returns the distance from pt to the closest point on the line.
func (l Line) Distance(pt Point) float64 {
	d, _ := l.Nearest(pt)
	return d
}

// ControlBox returns the bounding box of the line.
func (l Line) ControlBox() Box {
	return NewBoxFromPoints(l.P0, l.P1)
}
