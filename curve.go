package curve3

import (
	"errors"
)

const (
	// DefaultBezierPrecision is the default world-space spacing between
	// samples when refining a nearest point search on a Bézier segment.
	DefaultBezierPrecision = 0.5

	// CoarseSubdivisions is the number of chords each Bézier segment is
	// split into during the first phase of a nearest point search. It is
	// also the lower bound for the refined search.
	CoarseSubdivisions = 5

	// DefaultLineSteps is the default number of chords used to approximate
	// the arc length of a Bézier segment.
	DefaultLineSteps = 10
)

var (
	// ErrDegenerateCurve is returned when a Bézier segment is given fewer
	// than three control points. Such curves have degree below two and
	// evaluate to the zero point.
	ErrDegenerateCurve = errors.New("degenerate curve")

	// ErrInvalidSteps is returned when a Bézier segment is given fewer than
	// one line step for its length approximation.
	ErrInvalidSteps = errors.New("invalid number of line steps")

	// ErrZeroLength is returned when a global path parameter has to be mapped
	// onto a path whose length is zero.
	ErrZeroLength = errors.New("path has zero length")

	// ErrIndexOutOfRange is returned by the flat control point accessors of
	// [Path] for indices outside of [0, PointCount).
	ErrIndexOutOfRange = errors.New("point index out of range")
)

// ParametricCurve describes a curve parametrized by a scalar.
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t. Generally, t is in the range [0, 1].
	Eval(t float64) Point
	Start() Point
	End() Point
}

// Tangenter describes curves that can report their direction of travel.
type Tangenter interface {
	// Tangent returns the unit tangent at parameter t, or the zero vector
	// where the curve has no defined direction.
	Tangent(t float64) Vec3
}

func clamp01(t float64) float64 {
	return min(max(t, 0), 1)
}

// mapRange maps v from the range [inMin, inMax] onto [outMin, outMax]. Empty
// ranges map to 0.
func mapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	in := inMax - inMin
	out := outMax - outMin
	if in == 0 || out == 0 {
		return 0
	}
	return outMin + (v-inMin)/in*out
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

func (opt *option[T]) clear() {
	opt.isSet = false
	opt.value = *new(T)
}

func (opt *option[T]) unwrap() T {
	if !opt.isSet {
		panic("option isn't set")
	}
	return opt.value
}
