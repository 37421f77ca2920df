package curve3

import (
	"iter"
	"math"
	"slices"
)

// tangentEpsilon is how far t is moved away from 1 before evaluating the
// general derivative, whose terms divide by (t-1).
const tangentEpsilon = 1e-9

// BezierEval evaluates the Bézier curve with control points pts at t, using
// the Bernstein basis. The curve has degree len(pts)-1. Curves of degree 1 or
// lower evaluate to the zero point.
//
// t is not clamped. Values outside of [0, 1] extrapolate the curve.
func BezierEval(pts []Point, t float64) Point {
	switch n := len(pts) - 1; {
	case n <= 1:
		return Point{}
	case n == 2:
		return QuadBez{pts[0], pts[1], pts[2]}.Eval(t)
	case n == 3:
		return CubicBez{pts[0], pts[1], pts[2], pts[3]}.Eval(t)
	default:
		row := binomialRow(n)
		mt := 1.0 - t
		var v Vec3
		for k, pt := range pts {
			b := row[k] * math.Pow(mt, float64(n-k)) * math.Pow(t, float64(k))
			v = v.Add(Vec3(pt).Mul(b))
		}
		return Point(v)
	}
}

// BezierDeriv returns the first derivative of the Bézier curve with control
// points pts at t. Curves of degree 1 or lower have a zero derivative.
//
// For degrees above 3, the derivative of each basis polynomial is computed as
//
//	C(n,k) · (1-t)^(n-k) · (n·t^k - k·t^(k-1)) / (t-1)
//
// which is undefined at t = 1. There, t is moved down by a tiny epsilon.
func BezierDeriv(pts []Point, t float64) Vec3 {
	switch n := len(pts) - 1; {
	case n <= 1:
		return Vec3{}
	case n == 2:
		return QuadBez{pts[0], pts[1], pts[2]}.Deriv(t)
	case n == 3:
		return CubicBez{pts[0], pts[1], pts[2], pts[3]}.Deriv(t)
	default:
		if t == 1 {
			t -= tangentEpsilon
		}
		row := binomialRow(n)
		mt := 1.0 - t
		// The basis derivatives sum to zero, so control points are weighted
		// relative to pts[0]. Coincident points then cancel exactly.
		var v Vec3
		for k, pt := range pts {
			// k·t^(k-1) vanishes for k = 0; skip it rather than evaluating 0^-1
			// at t = 0.
			d := float64(n) * math.Pow(t, float64(k))
			if k > 0 {
				d -= float64(k) * math.Pow(t, float64(k-1))
			}
			b := row[k] * math.Pow(mt, float64(n-k)) * d / (t - 1)
			v = v.Add(pt.Sub(pts[0]).Mul(b))
		}
		return v
	}
}

// BezierTangent returns the unit tangent of the Bézier curve with control
// points pts at t. It returns the zero vector for curves of degree 1 or lower,
// and wherever the derivative vanishes.
func BezierTangent(pts []Point, t float64) Vec3 {
	return BezierDeriv(pts, t).NormalizeOrZero()
}

// BezierSamples yields n+1 points evenly spaced in t along the curve,
// including both endpoints. It yields nothing if n < 1.
func BezierSamples(pts []Point, n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if n < 1 {
			return
		}
		for i := range n + 1 {
			if !yield(BezierEval(pts, float64(i)/float64(n))) {
				return
			}
		}
	}
}

// BezierPolylineLength approximates the arc length of the curve by the length
// of the polyline through steps+1 evenly spaced samples. It always
// underestimates curved sections and converges as steps grows.
func BezierPolylineLength(pts []Point, steps int) float64 {
	return polylineLength(BezierSamples(pts, steps))
}

func polylineLength(pts iter.Seq[Point]) float64 {
	var (
		length float64
		prev   option[Point]
	)
	for pt := range pts {
		if prev.isSet {
			length += prev.value.Distance(pt)
		}
		prev.set(pt)
	}
	return length
}

// BezierSplit splits the Bézier curve with control points pts at t using de
// Casteljau's algorithm. Both halves have the same degree as the input and
// together trace the same curve.
func BezierSplit(pts []Point, t float64) (left, right []Point) {
	n := len(pts)
	if n == 0 {
		return nil, nil
	}
	left = make([]Point, n)
	right = make([]Point, n)
	work := slices.Clone(pts)
	for i := range n {
		left[i] = work[0]
		right[n-1-i] = work[n-1-i]
		for j := range n - 1 - i {
			work[j] = work[j].Lerp(work[j+1], t)
		}
	}
	return left, right
}
