package curve3

import (
	"math"
	"testing"
)

func TestCubicBezDeriv(t *testing.T) {
	// y = x^2, lifted to z = x
	c := CubicBez{
		Pt(0.0, 0.0, 0.0),
		Pt(1.0/3.0, 0.0, 1.0/3.0),
		Pt(2.0/3.0, 1.0/3.0, 2.0/3.0),
		Pt(1.0, 1.0, 1.0),
	}
	deriv := c.Differentiate()

	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := Vec3(deriv.Eval(ts))
		if l := d.Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("got difference of %g, want at most %g", l, delta*2)
		}
		if l := c.Deriv(ts).Sub(d).Hypot(); l >= 1e-12 {
			t.Errorf("Deriv and Differentiate differ by %g", l)
		}
	}
}

func TestCubicBezSubsegment(t *testing.T) {
	c := CubicBez{
		Pt(3.1, 4.1, 0.0),
		Pt(5.9, 2.6, 1.0),
		Pt(5.3, 5.8, 2.0),
		Pt(9.7, 9.3, -1.0),
	}
	t0 := 0.1
	t1 := 0.8
	cs := c.Subsegment(t0, t1)
	const epsilon = 1e-12
	const n = 10
	for i := range n + 1 {
		tt := float64(i) / float64(n)
		ts := t0 + tt*(t1-t0)
		assertNear(t, c.Eval(ts), cs.Eval(tt), epsilon)
	}
}

func TestCubicBezControlBox(t *testing.T) {
	c := CubicBez{Pt(0, 0, 0), Pt(1, 2, 3), Pt(3, 2, 1), Pt(4, 0, 0)}
	b := c.ControlBox()
	diff(t, Box{0, 0, 0, 4, 2, 3}, b)
	if !b.Contains(c.Eval(0.3)) {
		t.Errorf("control box %v doesn't contain %s", b, c.Eval(0.3))
	}
	if math.IsNaN(c.Tangent(1).X) {
		t.Error("tangent is NaN")
	}
}
