package curve3

import (
	"iter"
	"math"
)

// Affine describes a 3D affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f, g, h, i, j, k, l), then the
// resulting transformation represents this augmented matrix:
//
//	| a d g j |
//	| b e h k |
//	| c f i l |
//	| 0 0 0 1 |
//
// That is, the coefficients are stored column by column, and the last column
// is the translation. The idea is that (A * B) * v == A * (B * v).
type Affine struct {
	// We represent Affine as a struct instead of an array because structs
	// benefit from SROA.

	N0, N1, N2, N3, N4, N5, N6, N7, N8, N9, N10, N11 float64
}

var _ Frame = Affine{}

// Identity is the identity transform.
var Identity = Affine{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
	0, 0, 0,
}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x, y, and z.
func Scale(x, y, z float64) Affine {
	return Affine{
		x, 0, 0,
		0, y, 0,
		0, 0, z,
		0, 0, 0,
	}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec3) Affine {
	return Affine{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
		v.X, v.Y, v.Z,
	}
}

// RotateX creates an affine transform representing a rotation of th radians
// about the x axis. A positive angle rotates positive Y into positive Z.
func RotateX(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{
		1, 0, 0,
		0, cos, sin,
		0, -sin, cos,
		0, 0, 0,
	}
}

// RotateY creates an affine transform representing a rotation of th radians
// about the y axis. A positive angle rotates positive Z into positive X.
func RotateY(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{
		cos, 0, -sin,
		0, 1, 0,
		sin, 0, cos,
		0, 0, 0,
	}
}

// RotateZ creates an affine transform representing a rotation of th radians
// about the z axis. A positive angle rotates positive X into positive Y.
func RotateZ(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{
		cos, sin, 0,
		-sin, cos, 0,
		0, 0, 1,
		0, 0, 0,
	}
}

// RotateAxis creates an affine transform representing a rotation of th
// radians about axis, which need not be normalized. The rotation follows the
// right-hand rule.
func RotateAxis(axis Vec3, th float64) Affine {
	n := axis.Normalize()
	sin, cos := math.Sincos(th)
	omc := 1 - cos
	x, y, z := n.Splat()
	// Rodrigues' rotation formula, written out column by column.
	return Affine{
		cos + x*x*omc, y*x*omc + z*sin, z*x*omc - y*sin,
		x*y*omc - z*sin, cos + y*y*omc, z*y*omc + x*sin,
		x*z*omc + y*sin, y*z*omc - x*sin, cos + z*z*omc,
		0, 0, 0,
	}
}

// Coefficients returns the the coefficients of the transform.
func (aff Affine) Coefficients() [12]float64 {
	return [12]float64{
		aff.N0, aff.N1, aff.N2,
		aff.N3, aff.N4, aff.N5,
		aff.N6, aff.N7, aff.N8,
		aff.N9, aff.N10, aff.N11,
	}
}

// NewAffine creates a new affine transformation from an array of coefficients.
// Alternatively, you can initialize the fields of [Affine] manually.
func NewAffine(n [12]float64) Affine {
	return Affine{n[0], n[1], n[2], n[3], n[4], n[5], n[6], n[7], n[8], n[9], n[10], n[11]}
}

func newAffineColumns(x, y, z Vec3, t Point) Affine {
	return Affine{
		x.X, x.Y, x.Z,
		y.X, y.Y, y.Z,
		z.X, z.Y, z.Z,
		t.X, t.Y, t.Z,
	}
}

func (aff Affine) columns() (x, y, z Vec3) {
	return Vec(aff.N0, aff.N1, aff.N2), Vec(aff.N3, aff.N4, aff.N5), Vec(aff.N6, aff.N7, aff.N8)
}

func (aff Affine) Mul(o Affine) Affine {
	x, y, z := o.columns()
	return newAffineColumns(
		x.Transform(aff),
		y.Transform(aff),
		z.Transform(aff),
		Point(o.Translation()).Transform(aff),
	)
}

// PreScale creates a scale by (x, y, z) followed by aff.
//
// Equivalent to "aff * Scale(x, y, z)"
func (aff Affine) PreScale(x, y, z float64) Affine {
	return aff.Mul(Scale(x, y, z))
}

// ThenScale creates aff followed by a scale of (x, y, z).
//
// Equivalent to "Scale(x, y, z) * aff"
func (aff Affine) ThenScale(x, y, z float64) Affine {
	return Scale(x, y, z).Mul(aff)
}

// PreTranslate creates a translation of v followed by aff.
//
// Equivalent to "aff * Translate(v)"
func (aff Affine) PreTranslate(v Vec3) Affine {
	return aff.Mul(Translate(v))
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec3) Affine {
	aff.N9 += v.X
	aff.N10 += v.Y
	aff.N11 += v.Z
	return aff
}

// ThenRotateAxis creates aff followed by a rotation of th radians about axis.
//
// Equivalent to "RotateAxis(axis, th) * aff"
func (aff Affine) ThenRotateAxis(axis Vec3, th float64) Affine {
	return RotateAxis(axis, th).Mul(aff)
}

// Determinant computes the determinant of the linear part.
func (aff Affine) Determinant() float64 {
	x, y, z := aff.columns()
	return x.Dot(y.Cross(z))
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine) Invert() Affine {
	x, y, z := aff.columns()
	invDet := 1 / aff.Determinant()
	// The rows of the inverse are the pairwise cross products of the columns.
	r0 := y.Cross(z).Mul(invDet)
	r1 := z.Cross(x).Mul(invDet)
	r2 := x.Cross(y).Mul(invDet)
	inv := Affine{
		r0.X, r1.X, r2.X,
		r0.Y, r1.Y, r2.Y,
		r0.Z, r1.Z, r2.Z,
		0, 0, 0,
	}
	t := aff.Translation().Transform(inv).Negate()
	return inv.WithTranslation(t)
}

func (aff Affine) IsInf() bool {
	for _, n := range aff.Coefficients() {
		if math.IsInf(n, 0) {
			return true
		}
	}
	return false
}

func (aff Affine) IsNaN() bool {
	for _, n := range aff.Coefficients() {
		if math.IsNaN(n) {
			return true
		}
	}
	return false
}

// Translation returns the translation component of this affine transformation.
func (aff Affine) Translation() Vec3 {
	return Vec3{
		X: aff.N9,
		Y: aff.N10,
		Z: aff.N11,
	}
}

// WithTranslation replaces the translation portion of this affine
// transformation.
func (aff Affine) WithTranslation(v Vec3) Affine {
	aff.N9 = v.X
	aff.N10 = v.Y
	aff.N11 = v.Z
	return aff
}

// TransformBoxBoundingBox computes the bounding box of a transformed box.
//
// The result is tight when the transform maps axes onto axes.
func (aff Affine) TransformBoxBoundingBox(b Box) Box {
	out := NewBoxFromPoints(Pt(b.X0, b.Y0, b.Z0).Transform(aff), Pt(b.X1, b.Y1, b.Z1).Transform(aff))
	for _, pt := range b.corners() {
		out = out.UnionPoint(pt.Transform(aff))
	}
	return out
}

// LocalToWorld implements [Frame].
func (aff Affine) LocalToWorld(pt Point) Point { return pt.Transform(aff) }

// WorldToLocal implements [Frame]. It inverts aff on every call; hosts that
// query often should use a [Node], which caches the inverse.
func (aff Affine) WorldToLocal(pt Point) Point { return pt.Transform(aff.Invert()) }

// TransformDirection implements [Frame].
func (aff Affine) TransformDirection(v Vec3) Vec3 { return v.Transform(aff) }

func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				break
			}
		}
	}
}
