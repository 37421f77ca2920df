package curve3

// Box is an axis-aligned box in 3D space.
type Box struct {
	X0, Y0, Z0 float64
	X1, Y1, Z1 float64
}

// NewBoxFromPoints returns a box with the extents of p0 and p1, ensuring that
// all dimensions are non-negative.
func NewBoxFromPoints(p0, p1 Point) Box {
	return Box{p0.X, p0.Y, p0.Z, p1.X, p1.Y, p1.Z}.Abs()
}

// Abs returns a new box with the same extents as b, but ensuring that all
// dimensions are non-negative.
func (b Box) Abs() Box {
	return Box{
		X0: min(b.X0, b.X1),
		Y0: min(b.Y0, b.Y1),
		Z0: min(b.Z0, b.Z1),
		X1: max(b.X0, b.X1),
		Y1: max(b.Y0, b.Y1),
		Z1: max(b.Z0, b.Z1),
	}
}

// Min returns the corner with the smallest coordinates.
func (b Box) Min() Point { return Pt(b.X0, b.Y0, b.Z0) }

// Max returns the corner with the largest coordinates.
func (b Box) Max() Point { return Pt(b.X1, b.Y1, b.Z1) }

// Size returns the box's extent along each axis. Components may be negative
// if the box isn't normalized.
func (b Box) Size() Vec3 {
	return b.Max().Sub(b.Min())
}

func (b Box) Center() Point {
	return b.Min().Midpoint(b.Max())
}

// Contains reports whether pt lies inside the box. The maximum faces are
// exclusive.
func (b Box) Contains(pt Point) bool {
	return pt.X >= b.X0 && pt.X < b.X1 &&
		pt.Y >= b.Y0 && pt.Y < b.Y1 &&
		pt.Z >= b.Z0 && pt.Z < b.Z1
}

// Union returns the smallest box enclosing b and o.
//
// Results are valid only if all dimensions are non-negative.
func (b Box) Union(o Box) Box {
	return Box{
		X0: min(b.X0, o.X0),
		Y0: min(b.Y0, o.Y0),
		Z0: min(b.Z0, o.Z0),
		X1: max(b.X1, o.X1),
		Y1: max(b.Y1, o.Y1),
		Z1: max(b.Z1, o.Z1),
	}
}

// UnionPoint computes the union with one point.
//
// A succession of UnionPoint operations on a series of points yields their
// enclosing box.
func (b Box) UnionPoint(pt Point) Box {
	return Box{
		X0: min(b.X0, pt.X),
		Y0: min(b.Y0, pt.Y),
		Z0: min(b.Z0, pt.Z),
		X1: max(b.X1, pt.X),
		Y1: max(b.Y1, pt.Y),
		Z1: max(b.Z1, pt.Z),
	}
}

func (b Box) Translate(v Vec3) Box {
	return Box{
		X0: b.X0 + v.X,
		Y0: b.Y0 + v.Y,
		Z0: b.Z0 + v.Z,
		X1: b.X1 + v.X,
		Y1: b.Y1 + v.Y,
		Z1: b.Z1 + v.Z,
	}
}

func (b Box) corners() [8]Point {
	return [8]Point{
		{b.X0, b.Y0, b.Z0},
		{b.X1, b.Y0, b.Z0},
		{b.X0, b.Y1, b.Z0},
		{b.X1, b.Y1, b.Z0},
		{b.X0, b.Y0, b.Z1},
		{b.X1, b.Y0, b.Z1},
		{b.X0, b.Y1, b.Z1},
		{b.X1, b.Y1, b.Z1},
	}
}

func (b Box) IsInf() bool {
	return b.Min().IsInf() || b.Max().IsInf()
}

func (b Box) IsNaN() bool {
	return b.Min().IsNaN() || b.Max().IsNaN()
}

// boxOf returns the bounding box of pts, or the zero box if pts is empty.
func boxOf(pts []Point) Box {
	if len(pts) == 0 {
		return Box{}
	}
	b := NewBoxFromPoints(pts[0], pts[0])
	for _, pt := range pts[1:] {
		b = b.UnionPoint(pt)
	}
	return b
}
