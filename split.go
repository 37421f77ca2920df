package curve3

import (
	"iter"
	"math"
)

// SplitArclen cuts the path into pieces of world-space length l. Any
// remainder is at the end. Each piece is a new path made of new segments, so
// mutating a piece does not affect p.
//
// Lengths follow the path's own parametrization, in which the global
// parameter is proportional to cached segment lengths. If l is not positive
// and finite, the path is returned as a single piece. A path of zero length
// yields nothing.
func (p *Path) SplitArclen(l float64) iter.Seq[*Path] {
	return func(yield func(*Path) bool) {
		total := p.Length()
		if total == 0 {
			return
		}
		if l <= 0 || math.IsInf(l, 0) || math.IsNaN(l) {
			yield(p.slice(0, 1))
			return
		}
		const splitAccuracy = 1e-9
		// Without the accuracy, rounding might leave a vanishing last piece.
		n := max(int(math.Ceil(total/l-splitAccuracy)), 1)
		step := l / total
		for i := range n {
			t1 := 1.0
			if i < n-1 {
				t1 = float64(i+1) * step
			}
			if !yield(p.slice(float64(i)*step, t1)) {
				return
			}
		}
	}
}

// SplitN cuts the path into n pieces of identical length. It behaves like
// SplitArclen otherwise. If n < 1, the path is returned as a single piece.
func (p *Path) SplitN(n int) iter.Seq[*Path] {
	return func(yield func(*Path) bool) {
		if p.Length() == 0 {
			return
		}
		n := max(n, 1)
		// Compute boundaries from n directly so that rounding cannot add a
		// piece.
		for i := range n {
			if !yield(p.slice(float64(i)/float64(n), float64(i+1)/float64(n))) {
				return
			}
		}
	}
}

// slice returns the part of p between the global parameters t0 < t1.
// Segments without any overlap are skipped.
func (p *Path) slice(t0, t1 float64) *Path {
	p.sync()
	out := NewPath()
	var offset float64
	for _, seg := range p.segs {
		span := seg.length / p.length
		lo := max(t0, offset)
		hi := min(t1, offset+span)
		if hi > lo {
			out.Add(seg.Subsegment((lo-offset)/span, (hi-offset)/span))
		}
		offset += span
	}
	return out
}
