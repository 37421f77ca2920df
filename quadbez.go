package curve3

var _ ParametricCurve = QuadBez{}
var _ Tangenter = QuadBez{}

// QuadBez is a quadratic Bézier curve in 3D.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec3(q.P0).Mul(mt * mt)
	b := Vec3(q.P1).Mul(mt * 2.0)
	c := Vec3(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// Deriv returns the first derivative of the curve at t.
func (q QuadBez) Deriv(t float64) Vec3 {
	mt := 1.0 - t
	a := q.P1.Sub(q.P0).Mul(2 * mt)
	b := q.P2.Sub(q.P1).Mul(2 * t)
	return a.Add(b)
}

// Tangent returns the normalized derivative at t, or the zero vector where the
// derivative vanishes.
func (q QuadBez) Tangent(t float64) Vec3 {
	return q.Deriv(t).NormalizeOrZero()
}

func (q QuadBez) Subsegment(t0 float64, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

// Differentiate returns the hodograph of the curve.
func (q QuadBez) Differentiate() Line {
	return Line{
		Point(q.P1.Sub(q.P0).Mul(2)),
		Point(q.P2.Sub(q.P1).Mul(2)),
	}
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

// ControlBox returns the bounding box of the control points, which contains
// the curve.
func (q QuadBez) ControlBox() Box {
	return boxOf([]Point{q.P0, q.P1, q.P2})
}
