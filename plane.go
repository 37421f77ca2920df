package curve3

import (
	"fmt"
	"math"
)

// Plane is an oriented plane in Hessian normal form: the set of points p with
// p·Normal = D. Normal is expected to be of unit length.
type Plane struct {
	Normal Vec3
	D      float64
}

// PointPlane is an oriented plane given by a point on it and its normal.
type PointPlane struct {
	Point  Point
	Normal Vec3
}

// PlaneFromPointNormal returns the plane through pt with the given normal.
func PlaneFromPointNormal(pt Point, normal Vec3) Plane {
	return Plane{Normal: normal, D: Vec3(pt).Dot(normal)}
}

func (pp PointPlane) Plane() Plane {
	return PlaneFromPointNormal(pp.Point, pp.Normal)
}

// PointPlane returns the point-normal form of the plane. The point is the
// plane's closest point to the origin.
func (pl Plane) PointPlane() PointPlane {
	return PointPlane{Point: Point(pl.Normal.Mul(pl.D)), Normal: pl.Normal}
}

// SignedDistance returns the distance of pt from the plane. It is positive on
// the side the normal points to.
func (pl Plane) SignedDistance(pt Point) float64 {
	return Vec3(pt).Dot(pl.Normal) - pl.D
}

// Flip returns the same plane facing the other way.
func (pl Plane) Flip() Plane {
	return Plane{Normal: pl.Normal.Negate(), D: -pl.D}
}

func (pl Plane) String() string {
	return fmt.Sprintf("Plane{%v, %g}", pl.Normal, pl.D)
}

// ApproxEqual reports whether the normals and offsets of both planes match
// within tol.
func (pl Plane) ApproxEqual(o Plane, tol float64) bool {
	return approxEqualVec(pl.Normal, o.Normal, tol) && math.Abs(pl.D-o.D) <= tol
}

// ApproxEqual reports whether both planes have the same normal within tol,
// and whether each one's point lies on the other within tol.
func (pp PointPlane) ApproxEqual(o PointPlane, tol float64) bool {
	if !approxEqualVec(pp.Normal, o.Normal, tol) {
		return false
	}
	return math.Abs(o.Plane().SignedDistance(pp.Point)) <= tol &&
		math.Abs(pp.Plane().SignedDistance(o.Point)) <= tol
}

func approxEqualVec(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}
