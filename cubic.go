package curve3

var _ ParametricCurve = CubicBez{}
var _ Tangenter = CubicBez{}

// CubicBez is a cubic Bézier curve in 3D.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

func (q CubicBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf() || q.P3.IsInf()
}

func (q CubicBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN() || q.P3.IsNaN()
}

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec3(cb.P0).Mul(mt * mt * mt)
	b := Vec3(cb.P1).Mul(mt * mt * 3.0)
	c := Vec3(cb.P2).Mul(mt * 3.0)
	d := Vec3(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Deriv returns the first derivative of the curve at t.
func (cb CubicBez) Deriv(t float64) Vec3 {
	mt := 1.0 - t
	a := cb.P1.Sub(cb.P0).Mul(3 * mt * mt)
	b := cb.P2.Sub(cb.P1).Mul(6 * mt * t)
	c := cb.P3.Sub(cb.P2).Mul(3 * t * t)
	return a.Add(b).Add(c)
}

// Tangent returns the normalized derivative at t, or the zero vector where the
// derivative vanishes.
func (cb CubicBez) Tangent(t float64) Vec3 {
	return cb.Deriv(t).NormalizeOrZero()
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(Vec3(d.Eval(t0)).Mul(scale))
	p2 := p3.Translate(Vec3(d.Eval(t1)).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

// Differentiate returns the hodograph of the curve.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

// ControlBox returns the bounding box of the control points, which contains
// the curve.
func (c CubicBez) ControlBox() Box {
	return boxOf([]Point{c.P0, c.P1, c.P2, c.P3})
}
