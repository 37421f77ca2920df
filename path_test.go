package curve3

import (
	"errors"
	"math"
	"strings"
	"testing"
)

// twoLines returns a path of two lines of length 10 each, turning left at
// (10, 0, 0).
func twoLines() *Path {
	return NewPath(
		NewLineSegment(nil, Pt(0, 0, 0), Pt(10, 0, 0)),
		NewLineSegment(nil, Pt(10, 0, 0), Pt(10, 10, 0)),
	)
}

func wave(t *testing.T) *Segment {
	t.Helper()
	seg, err := NewBezierSegment(nil, []Point{
		Pt(10, 0, 0), Pt(15, 5, 0), Pt(20, 0, 0), Pt(25, -5, 0), Pt(30, 0, 0),
	}, DefaultLineSteps)
	if err != nil {
		t.Fatal(err)
	}
	return seg
}

func TestPathTwoLines(t *testing.T) {
	p := twoLines()
	diff(t, 2, p.Len())
	diff(t, 20.0, p.Length())
	diff(t, 20.0, p.InclusiveLength())

	tests := []struct {
		t       float64
		point   Point
		tangent Vec3
	}{
		{0, Pt(0, 0, 0), Vec(1, 0, 0)},
		{0.25, Pt(5, 0, 0), Vec(1, 0, 0)},
		{0.5, Pt(10, 0, 0), Vec(1, 0, 0)},
		{0.75, Pt(10, 5, 0), Vec(0, 1, 0)},
		{1, Pt(10, 10, 0), Vec(0, 1, 0)},
		{-3, Pt(0, 0, 0), Vec(1, 0, 0)},
		{3, Pt(10, 10, 0), Vec(0, 1, 0)},
	}
	for _, tt := range tests {
		pt, err := p.Eval(tt.t)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, tt.point, pt, approx(1e-9))
		tan, err := p.Tangent(tt.t)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, tt.tangent, tan, approx(1e-9))
	}
}

func TestPathNearestT(t *testing.T) {
	p := twoLines()
	tests := []struct {
		pt   Point
		want float64
	}{
		// The midpoint of the first segment.
		{Pt(5, 0, 0), 0.25},
		{Pt(5, 3, 0), 0.25},
		{Pt(10, 5, 0), 0.75},
		{Pt(12, 5, 4), 0.75},
		{Pt(-5, -5, 0), 0},
		{Pt(10, 20, 0), 1},
	}
	for _, tt := range tests {
		got, err := p.NearestT(tt.pt, DefaultBezierPrecision)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, tt.want, got, approx(1e-9))
	}
}

func TestPathRoundTrip(t *testing.T) {
	p := twoLines()
	for i := range 21 {
		ts := float64(i) / 20
		pt, err := p.Eval(ts)
		if err != nil {
			t.Fatal(err)
		}
		got, err := p.NearestT(pt, DefaultBezierPrecision)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-ts) > 1e-9 {
			t.Errorf("Eval(%g) = %s, but its nearest t is %g", ts, pt, got)
		}
	}

	curved := NewPath(wave(t))
	const precision = 0.05
	for i := range 21 {
		ts := float64(i) / 20
		pt, err := curved.Eval(ts)
		if err != nil {
			t.Fatal(err)
		}
		got, err := curved.NearestT(pt, precision)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-ts) > 5e-3 {
			t.Errorf("Eval(%g) = %s, but its nearest t is %g", ts, pt, got)
		}
	}
}

func TestPathNearestRefines(t *testing.T) {
	seg := wave(t)
	p := NewPath(NewLineSegment(nil, Pt(0, 0, 0), Pt(10, 0, 0)), seg)
	target := seg.Eval(0.37)

	near, err := p.Nearest(target, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 1, near.Segment)
	if near.Distance > 0.01 {
		t.Errorf("nearest point %s is %g away from %s", near.Point, near.Distance, target)
	}
	pt, err := p.Eval(near.T)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, near.Point, pt, approx(1e-6))

	// Non-positive precisions use the default.
	t0, err := p.NearestT(target, 0)
	if err != nil {
		t.Fatal(err)
	}
	t1, err := p.NearestT(target, DefaultBezierPrecision)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, t1, t0)
}

func TestPathNearest(t *testing.T) {
	p := twoLines()
	near, err := p.Nearest(Pt(5, 1, 0), DefaultBezierPrecision)
	if err != nil {
		t.Fatal(err)
	}
	want := Nearest{
		Point:    Pt(5, 0, 0),
		Tangent:  Vec(1, 0, 0),
		T:        0.25,
		Distance: 1,
		Segment:  0,
	}
	diff(t, want, near, approx(1e-9))

	pt, tan := p.NearestPointTangent(Pt(10, 5, 3), DefaultBezierPrecision)
	diff(t, Pt(10, 5, 0), pt, approx(1e-9))
	diff(t, Vec(0, 1, 0), tan, approx(1e-9))

	pt = p.NearestPoint(Pt(-1, 0, 0), DefaultBezierPrecision)
	diff(t, Pt(0, 0, 0), pt)

	pt, ts, err := p.NearestPointT(Pt(11, 8, 0), DefaultBezierPrecision)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(10, 8, 0), pt, approx(1e-9))
	diff(t, 0.9, ts, approx(1e-9))

	pt, err = p.NearestPosition(Pt(5, 1, 0), DefaultBezierPrecision)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(5, 0, 0), pt, approx(1e-9))
}

func TestPathDistances(t *testing.T) {
	p := twoLines()
	want := []SegmentDistance{
		{Segment: 0, Distance: 1, Point: Pt(5, 0, 0), T: 0.5},
		{Segment: 1, Distance: 5, Point: Pt(10, 1, 0), T: 0.1},
	}
	diff(t, want, p.Distances(Pt(5, 1, 0)), approx(1e-9))
	diff(t, []SegmentDistance{}, new(Path).Distances(Pt(0, 0, 0)))
}

func TestPathEmpty(t *testing.T) {
	p := NewPath()
	if pt := p.NearestPoint(Pt(1, 2, 3), DefaultBezierPrecision); !pt.IsInf() {
		t.Errorf("got nearest point %s on empty path, want infinity", pt)
	}
	near, err := p.Nearest(Pt(1, 2, 3), DefaultBezierPrecision)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, -1, near.Segment)
	if !near.Point.IsInf() {
		t.Errorf("got nearest point %s on empty path, want infinity", near.Point)
	}
	ts, err := p.NearestT(Pt(1, 2, 3), DefaultBezierPrecision)
	if err != nil || ts != 0 {
		t.Errorf("got (%g, %v), want (0, nil)", ts, err)
	}
	if pt, err := p.NearestPosition(Pt(1, 2, 3), DefaultBezierPrecision); err != nil || !pt.IsInf() {
		t.Errorf("got (%s, %v), want (infinity, nil)", pt, err)
	}
	if _, err := p.Eval(0.5); !errors.Is(err, ErrZeroLength) {
		t.Errorf("got error %v, want %v", err, ErrZeroLength)
	}
	if _, ok := p.Start(); ok {
		t.Error("empty path has a start")
	}
	if _, ok := p.End(); ok {
		t.Error("empty path has an end")
	}
	if err := p.SetStart(Pt(0, 0, 0)); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("got error %v, want %v", err, ErrIndexOutOfRange)
	}
	if err := p.SetEnd(Pt(0, 0, 0)); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("got error %v, want %v", err, ErrIndexOutOfRange)
	}
	diff(t, Box{}, p.ControlBox())
	for range p.Samples(10) {
		t.Fatal("got samples on empty path")
	}
}

func TestPathZeroLength(t *testing.T) {
	p := NewPath(NewLineSegment(nil, Pt(1, 1, 1), Pt(1, 1, 1)))
	if _, err := p.Eval(0.5); !errors.Is(err, ErrZeroLength) {
		t.Errorf("got error %v, want %v", err, ErrZeroLength)
	}
	if _, err := p.Tangent(0.5); !errors.Is(err, ErrZeroLength) {
		t.Errorf("got error %v, want %v", err, ErrZeroLength)
	}
	if _, err := p.NearestT(Pt(0, 0, 0), DefaultBezierPrecision); !errors.Is(err, ErrZeroLength) {
		t.Errorf("got error %v, want %v", err, ErrZeroLength)
	}
	near, err := p.Nearest(Pt(1, 1, 3), DefaultBezierPrecision)
	if !errors.Is(err, ErrZeroLength) {
		t.Errorf("got error %v, want %v", err, ErrZeroLength)
	}
	diff(t, Pt(1, 1, 1), near.Point)
	diff(t, 2.0, near.Distance)
	diff(t, 0.0, near.T)
	if _, err := p.NormalizeLength(3); !errors.Is(err, ErrZeroLength) {
		t.Errorf("got error %v, want %v", err, ErrZeroLength)
	}
	for range p.Samples(10) {
		t.Fatal("got samples on zero-length path")
	}
}

func TestPathAdd(t *testing.T) {
	p := NewPath(nil)
	diff(t, 0, p.Len())
	p.Add(nil)
	diff(t, 0, p.Len())

	p.Add(NewLineSegment(nil, Pt(0, 0, 0), Pt(10, 0, 0)))
	p.Add(wave(t))
	incremental := p.Length()
	inclusive := p.InclusiveLength()
	diff(t, incremental, p.RecalculateLength(), approx(1e-12))
	diff(t, inclusive, p.InclusiveLength(), approx(1e-12))
	diff(t, p.Length(), p.InclusiveLength(), approx(1e-12))
}

func TestPathInclusiveLength(t *testing.T) {
	p := NewPath(
		NewLineSegment(nil, Pt(0, 0, 0), Pt(10, 0, 0)),
		NewLineSegment(nil, Pt(10, 5, 0), Pt(20, 5, 0)),
	)
	diff(t, 20.0, p.Length())
	diff(t, 25.0, p.InclusiveLength())

	// The gap doesn't take a share of the parameter range.
	pt, err := p.Eval(0.5)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(10, 0, 0), pt)
	pt, err = p.Eval(0.5 + 1e-3)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(10.02, 5, 0), pt, approx(1e-9))
}

func TestPathRemoveClear(t *testing.T) {
	a := NewLineSegment(nil, Pt(0, 0, 0), Pt(10, 0, 0))
	b := NewLineSegment(nil, Pt(10, 0, 0), Pt(10, 10, 0))
	p := NewPath(a, b)

	if !p.Remove(b) {
		t.Fatal("couldn't remove segment")
	}
	diff(t, 1, p.Len())
	diff(t, 10.0, p.Length())
	diff(t, 10.0, p.InclusiveLength())
	if p.Remove(b) {
		t.Error("removed segment twice")
	}

	p.Clear()
	diff(t, 0, p.Len())
	diff(t, 0.0, p.Length())
	diff(t, 0.0, p.InclusiveLength())

	p.Add(b)
	diff(t, 10.0, p.Length())
}

func TestPathPointIndex(t *testing.T) {
	line := NewLineSegment(nil, Pt(0, 0, 0), Pt(10, 0, 0))
	bez, err := NewBezierSegment(nil, []Point{Pt(10, 0, 0), Pt(15, 0, 0), Pt(20, 0, 0)}, DefaultLineSteps)
	if err != nil {
		t.Fatal(err)
	}
	p := NewPath(line, bez)
	diff(t, 5, p.PointCount())

	for i, want := range []Point{Pt(0, 0, 0), Pt(10, 0, 0), Pt(10, 0, 0), Pt(15, 0, 0), Pt(20, 0, 0)} {
		got, ok := p.Point(i)
		if !ok {
			t.Fatalf("no point %d", i)
		}
		diff(t, want, got)
	}

	seg, j, ok := p.SegmentAt(3)
	if !ok || seg != bez || j != 1 {
		t.Errorf("got (%v, %d, %t), want (%v, 1, true)", seg, j, ok, bez)
	}
	for _, i := range []int{-1, 5} {
		if _, _, ok := p.SegmentAt(i); ok {
			t.Errorf("found segment for point %d", i)
		}
		if _, ok := p.Point(i); ok {
			t.Errorf("found point %d", i)
		}
		if err := p.SetPoint(i, Pt(0, 0, 0)); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("got error %v, want %v", err, ErrIndexOutOfRange)
		}
	}

	// Moving a point through the path updates the segment, and the path
	// picks up the new length on its next query.
	buf := captureLogs(t)
	if err := p.SetPoint(4, Pt(30, 0, 0)); err != nil {
		t.Fatal(err)
	}
	diff(t, 20.0, bez.Length(), approx(1e-9))
	diff(t, 30.0, p.Length(), approx(1e-9))
	if !strings.Contains(buf.String(), "recomputing path length") {
		t.Errorf("missing debug log, got %q", buf.String())
	}

	if err := p.SetPoint(1, Pt(10, 10, 0)); err != nil {
		t.Fatal(err)
	}
	diff(t, math.Hypot(10, 10)+20, p.Length(), approx(1e-9))
	diff(t, math.Hypot(10, 10)+20+10, p.InclusiveLength(), approx(1e-9))
}

func TestPathEndpoints(t *testing.T) {
	p := twoLines()
	start, ok := p.Start()
	if !ok {
		t.Fatal("no start")
	}
	diff(t, Pt(0, 0, 0), start)
	end, ok := p.End()
	if !ok {
		t.Fatal("no end")
	}
	diff(t, Pt(10, 10, 0), end)

	if err := p.SetEnd(Pt(10, 20, 0)); err != nil {
		t.Fatal(err)
	}
	diff(t, 30.0, p.Length())
	if err := p.SetStart(Pt(-10, 0, 0)); err != nil {
		t.Fatal(err)
	}
	diff(t, 40.0, p.Length())

	l, err := p.NormalizeLength(10)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 0.25, l)
}

func TestPathLookupMiss(t *testing.T) {
	buf := captureLogs(t)
	p := twoLines()
	// Simulate cached lengths that no longer match the segments.
	p.length *= 2

	pt, err := p.Eval(0.9)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Point{}, pt)
	tan, err := p.Tangent(0.9)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Vec3{}, tan)
	if !strings.Contains(buf.String(), "no segment contains path parameter") {
		t.Errorf("missing warning, got %q", buf.String())
	}

	buf.Reset()
	pt, err = twoLines().Eval(math.NaN())
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Point{}, pt)
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("missing warning, got %q", buf.String())
	}
}

func TestPathSegments(t *testing.T) {
	p := twoLines()
	segs := p.Segments()
	segs[0] = nil
	if p.Segments()[0] == nil {
		t.Error("Segments didn't return a copy")
	}

	var n int
	for i, seg := range p.All() {
		if seg != p.segs[i] {
			t.Errorf("segment %d doesn't match", i)
		}
		n++
	}
	diff(t, 2, n)

	diff(t, Box{0, 0, 0, 10, 10, 0}, p.ControlBox())
}

func TestPathSamples(t *testing.T) {
	p := twoLines()
	var ts []float64
	var pts []Point
	for tt, pt := range p.Samples(4) {
		ts = append(ts, tt)
		pts = append(pts, pt)
	}
	diff(t, []float64{0, 0.25, 0.5, 0.75, 1}, ts)
	diff(t, []Point{Pt(0, 0, 0), Pt(5, 0, 0), Pt(10, 0, 0), Pt(10, 5, 0), Pt(10, 10, 0)}, pts, approx(1e-9))

	for range p.Samples(0) {
		t.Fatal("got samples for n = 0")
	}
}
