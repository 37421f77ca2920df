package curve3

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// bracketEpsilon widens each segment's share of the global parameter range on
// both sides, so that rounding in the running offset doesn't leave gaps
// between neighbouring segments.
const bracketEpsilon = 1e-5

// Path is an ordered chain of segments, parametrized by a single t in [0, 1].
// Each segment is allotted a share of the parameter range proportional to its
// length.
//
// The path doesn't own its segments. Segments may be mutated through their
// own methods at any time; the path notices on its next query and updates its
// cached lengths. Changes to a segment's frame must be followed by a call to
// RecalculateLength.
//
// A Path is not safe for concurrent use.
type Path struct {
	segs []*Segment
	// Segment revisions as of the last time the lengths were summed.
	revs      []uint64
	length    float64
	inclusive float64
}

// NewPath returns a path consisting of segs. Nil segments are skipped.
func NewPath(segs ...*Segment) *Path {
	p := new(Path)
	for _, seg := range segs {
		p.Add(seg)
	}
	return p
}

// Add appends seg to the path. Nil segments are ignored.
func (p *Path) Add(seg *Segment) {
	if seg == nil {
		return
	}
	p.sync()
	if seg.kind == BezierKind {
		seg.RecalculateLength()
	}
	if n := len(p.segs); n > 0 {
		p.inclusive += p.segs[n-1].End().Distance(seg.Start())
	}
	p.segs = append(p.segs, seg)
	p.revs = append(p.revs, seg.rev)
	p.length += seg.length
	p.inclusive += seg.length
}

// Remove removes the first occurrence of seg from the path and reports
// whether it was found.
func (p *Path) Remove(seg *Segment) bool {
	i := slices.Index(p.segs, seg)
	if i == -1 {
		return false
	}
	p.segs = slices.Delete(p.segs, i, i+1)
	p.revs = slices.Delete(p.revs, i, i+1)
	p.sum()
	return true
}

// Clear removes all segments.
func (p *Path) Clear() {
	clear(p.segs)
	p.segs = p.segs[:0]
	p.revs = p.revs[:0]
	p.length = 0
	p.inclusive = 0
}

// RecalculateLength recomputes the length of every segment and of the path
// as a whole, and returns the path's length.
func (p *Path) RecalculateLength() float64 {
	for _, seg := range p.segs {
		seg.RecalculateLength()
	}
	p.sum()
	return p.length
}

// sync re-sums the cached lengths if any segment changed since they were last
// computed.
func (p *Path) sync() {
	for i, seg := range p.segs {
		if seg.rev != p.revs[i] {
			Logger().Debug("curve3: segment changed, recomputing path length", "segment", i)
			p.sum()
			return
		}
	}
}

func (p *Path) sum() {
	p.length = 0
	p.inclusive = 0
	for i, seg := range p.segs {
		p.revs[i] = seg.rev
		p.length += seg.length
		p.inclusive += seg.length
		if i > 0 {
			p.inclusive += p.segs[i-1].End().Distance(seg.Start())
		}
	}
}

// Length returns the sum of the segments' lengths.
func (p *Path) Length() float64 {
	p.sync()
	return p.length
}

// InclusiveLength returns the sum of the segments' lengths plus the distances
// between the end of each segment and the start of the next.
func (p *Path) InclusiveLength() float64 {
	p.sync()
	return p.inclusive
}

// Len returns the number of segments.
func (p *Path) Len() int { return len(p.segs) }

// Segments returns a copy of the path's segments.
func (p *Path) Segments() []*Segment {
	return slices.Clone(p.segs)
}

// All iterates over the path's segments and their indices.
func (p *Path) All() iter.Seq2[int, *Segment] {
	return slices.All(p.segs)
}

// locate finds the segment owning the global parameter t and the segment's
// local parameter. ok is false if no segment claims t, in which case a warning
// is logged.
func (p *Path) locate(t float64) (seg *Segment, local float64, ok bool, err error) {
	p.sync()
	if p.length == 0 {
		return nil, 0, false, fmt.Errorf("mapping t=%g onto a path of %d segments: %w", t, len(p.segs), ErrZeroLength)
	}
	t = clamp01(t)
	var offset float64
	for _, seg := range p.segs {
		span := seg.length / p.length
		if t > offset-bracketEpsilon && t <= offset+span+bracketEpsilon {
			return seg, clamp01(mapRange(t, offset, offset+span, 0, 1)), true, nil
		}
		offset += span
	}
	Logger().Warn("curve3: no segment contains path parameter",
		"t", t, "covered", offset, "length", p.length, "segments", len(p.segs))
	return nil, 0, false, nil
}

// Eval returns the world-space position at the global parameter t, which is
// clamped to [0, 1].
//
// It returns ErrZeroLength if the path has zero length. If no segment claims
// t, which indicates stale cached lengths, it logs a warning and returns the
// zero point.
func (p *Path) Eval(t float64) (Point, error) {
	seg, local, ok, err := p.locate(t)
	if !ok {
		return Point{}, err
	}
	return seg.Eval(local), nil
}

// Tangent returns the world-space unit tangent at the global parameter t. It
// handles errors like Eval.
func (p *Path) Tangent(t float64) (Vec3, error) {
	seg, local, ok, err := p.locate(t)
	if !ok {
		return Vec3{}, err
	}
	return seg.Tangent(local), nil
}

// NormalizeLength converts a world-space distance along the path into a
// global parameter.
func (p *Path) NormalizeLength(l float64) (float64, error) {
	p.sync()
	if p.length == 0 {
		return 0, fmt.Errorf("normalizing length %g: %w", l, ErrZeroLength)
	}
	return l / p.length, nil
}

// Nearest describes the point on a path closest to some query point.
type Nearest struct {
	// The closest point found, in world space.
	Point Point
	// The unit tangent at Point.
	Tangent Vec3
	// The global parameter of Point.
	T float64
	// The distance from the query point to Point.
	Distance float64
	// The index of the segment containing Point.
	Segment int
}

// Nearest finds the point on the path closest to the world-space point pt.
//
// The search runs in two phases. First, every segment is measured coarsely,
// lines exactly and Béziers using [CoarseSubdivisions] chords. Then, if the
// closest segment is a Bézier, it is measured again using one chord per
// precision world units, but no fewer than CoarseSubdivisions. Non-positive
// precisions select [DefaultBezierPrecision].
//
// An empty path yields [InfPoint] and no error. A path of zero length yields
// the closest point, T = 0 and ErrZeroLength.
func (p *Path) Nearest(pt Point, precision float64) (Nearest, error) {
	p.sync()
	if len(p.segs) == 0 {
		return Nearest{Point: InfPoint(), Distance: math.Inf(1), Segment: -1}, nil
	}
	if precision <= 0 {
		precision = DefaultBezierPrecision
	}

	var (
		best       option[float64]
		bestIdx    int
		bestLocal  float64
		bestOffset float64
		bestSpan   float64
		offset     float64
	)
	for i, seg := range p.segs {
		var span float64
		if p.length > 0 {
			span = seg.length / p.length
		}
		d, local := seg.Nearest(pt, CoarseSubdivisions)
		if !best.isSet || d < best.value {
			best.set(d)
			bestIdx = i
			bestLocal = local
			bestOffset = offset
			bestSpan = span
		}
		offset += span
	}

	seg := p.segs[bestIdx]
	if seg.kind == BezierKind {
		n := max(int(seg.length/precision), CoarseSubdivisions)
		_, bestLocal = seg.Nearest(pt, n)
	}

	near := Nearest{
		Point:   seg.Eval(bestLocal),
		Tangent: seg.Tangent(bestLocal),
		Segment: bestIdx,
	}
	near.Distance = pt.Distance(near.Point)
	if p.length == 0 {
		return near, fmt.Errorf("mapping nearest point onto path: %w", ErrZeroLength)
	}
	near.T = bestOffset + bestLocal*bestSpan
	return near, nil
}

// NearestT returns the global parameter of the point on the path closest to
// pt. See [Path.Nearest] for details. An empty path yields 0.
func (p *Path) NearestT(pt Point, precision float64) (float64, error) {
	near, err := p.Nearest(pt, precision)
	if err != nil {
		return 0, err
	}
	if near.Segment == -1 {
		return 0, nil
	}
	return near.T, nil
}

// NearestPoint returns the point on the path closest to pt, or [InfPoint] if
// the path is empty.
func (p *Path) NearestPoint(pt Point, precision float64) Point {
	near, _ := p.Nearest(pt, precision)
	return near.Point
}

// NearestPointTangent returns the point on the path closest to pt and the
// tangent at that point. For empty paths, it returns [InfPoint] and the zero
// vector.
func (p *Path) NearestPointTangent(pt Point, precision float64) (Point, Vec3) {
	near, _ := p.Nearest(pt, precision)
	return near.Point, near.Tangent
}

// NearestPointT returns the point on the path closest to pt and its global
// parameter.
func (p *Path) NearestPointT(pt Point, precision float64) (Point, float64, error) {
	near, err := p.Nearest(pt, precision)
	return near.Point, near.T, err
}

// NearestPosition finds the global parameter of the point closest to pt and
// evaluates the path there. Unlike NearestPoint, the result goes through the
// same parameter mapping as Eval.
func (p *Path) NearestPosition(pt Point, precision float64) (Point, error) {
	if len(p.segs) == 0 {
		return InfPoint(), nil
	}
	t, err := p.NearestT(pt, precision)
	if err != nil {
		return Point{}, err
	}
	return p.Eval(t)
}

// SegmentDistance is the coarse distance from a query point to one segment.
type SegmentDistance struct {
	Segment  int
	Distance float64
	// The closest point found on the segment and its segment parameter.
	Point Point
	T     float64
}

// Distances measures the distance from pt to every segment, using
// [CoarseSubdivisions] chords for Béziers.
func (p *Path) Distances(pt Point) []SegmentDistance {
	out := make([]SegmentDistance, len(p.segs))
	for i, seg := range p.segs {
		d, t := seg.Nearest(pt, CoarseSubdivisions)
		out[i] = SegmentDistance{
			Segment:  i,
			Distance: d,
			Point:    seg.Eval(t),
			T:        t,
		}
	}
	return out
}

// Start returns the world-space start of the first segment.
func (p *Path) Start() (Point, bool) {
	if len(p.segs) == 0 {
		return Point{}, false
	}
	return p.segs[0].Start(), true
}

// End returns the world-space end of the last segment.
func (p *Path) End() (Point, bool) {
	if len(p.segs) == 0 {
		return Point{}, false
	}
	return p.segs[len(p.segs)-1].End(), true
}

// SetStart moves the start of the first segment to the world-space point pt.
func (p *Path) SetStart(pt Point) error {
	if len(p.segs) == 0 {
		return fmt.Errorf("setting start of empty path: %w", ErrIndexOutOfRange)
	}
	p.segs[0].SetStart(pt)
	return nil
}

// SetEnd moves the end of the last segment to the world-space point pt.
func (p *Path) SetEnd(pt Point) error {
	if len(p.segs) == 0 {
		return fmt.Errorf("setting end of empty path: %w", ErrIndexOutOfRange)
	}
	p.segs[len(p.segs)-1].SetEnd(pt)
	return nil
}

// PointCount returns the number of control points in all segments.
func (p *Path) PointCount() int {
	var n int
	for _, seg := range p.segs {
		n += seg.PointCount()
	}
	return n
}

// SegmentAt maps the flat control point index i onto a segment and the index
// of the point within that segment. The flat index space is the concatenation
// of all segments' control points, in path order.
func (p *Path) SegmentAt(i int) (seg *Segment, j int, ok bool) {
	if i < 0 {
		return nil, 0, false
	}
	for _, seg := range p.segs {
		n := seg.PointCount()
		if i < n {
			return seg, i, true
		}
		i -= n
	}
	return nil, 0, false
}

// Point returns the world-space position of the control point with flat
// index i.
func (p *Path) Point(i int) (Point, bool) {
	seg, j, ok := p.SegmentAt(i)
	if !ok {
		return Point{}, false
	}
	return seg.Point(j), true
}

// SetPoint moves the control point with flat index i to the world-space
// position pt.
func (p *Path) SetPoint(i int, pt Point) error {
	seg, j, ok := p.SegmentAt(i)
	if !ok {
		return fmt.Errorf("point %d of %d: %w", i, p.PointCount(), ErrIndexOutOfRange)
	}
	seg.SetPoint(j, pt)
	return nil
}

// ControlBox returns the world-space bounding box of all control points. It
// returns the zero box for empty paths.
func (p *Path) ControlBox() Box {
	var b option[Box]
	for _, seg := range p.segs {
		if sb := seg.ControlBox(); b.isSet {
			b.set(b.value.Union(sb))
		} else {
			b.set(sb)
		}
	}
	return b.value
}

// Samples yields n+1 positions evenly spaced in the global parameter,
// including both ends, together with their parameters. It yields nothing if
// n < 1 or if the path has zero length.
func (p *Path) Samples(n int) iter.Seq2[float64, Point] {
	return func(yield func(float64, Point) bool) {
		if n < 1 || p.Length() == 0 {
			return
		}
		for i := range n + 1 {
			t := float64(i) / float64(n)
			pt, err := p.Eval(t)
			if err != nil {
				return
			}
			if !yield(t, pt) {
				return
			}
		}
	}
}
