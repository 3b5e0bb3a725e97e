// Copyright 2026 The vmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vmath

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Affine2 is a 2D affine transformation matrix: a 2x2 linear part plus a
// translation column, with an implicit [0, 0, 1] bottom row. The column
// vectors of the linear part are (XX, YX) and (XY, YY), and (X0, Y0) is the
// translation, so the flat column-major element order is
// XX, YX, XY, YY, X0, Y0.
type Affine2[T constraints.Float] struct {
	XX, YX, XY, YY, X0, Y0 T
}

// IdentityAffine2 returns a new identity [Affine2] matrix.
func IdentityAffine2[T constraints.Float]() Affine2[T] {
	return Affine2[T]{
		1, 0,
		0, 1,
		0, 0,
	}
}

// Translate2D returns an [Affine2] matrix that translates by the given x and y.
func Translate2D[T constraints.Float](x, y T) Affine2[T] {
	return Affine2[T]{
		1, 0,
		0, 1,
		x, y,
	}
}

// Scale2D returns an [Affine2] matrix that scales by the given x and y factors.
func Scale2D[T constraints.Float](x, y T) Affine2[T] {
	return Affine2[T]{
		x, 0,
		0, y,
		0, 0,
	}
}

// Rotate2D returns an [Affine2] matrix that rotates by the given angle
// (radians, counterclockwise).
func Rotate2D[T constraints.Float](angle T) Affine2[T] {
	s, c := Sincos(angle)
	return Affine2[T]{
		c, s,
		-s, c,
		0, 0,
	}
}

// Shear2D returns an [Affine2] matrix that shears by the given x and y factors.
func Shear2D[T constraints.Float](x, y T) Affine2[T] {
	return Affine2[T]{
		1, y,
		x, 1,
		0, 0,
	}
}

// Skew2D returns an [Affine2] matrix that skews by the given x and y angles (radians).
func Skew2D[T constraints.Float](x, y T) Affine2[T] {
	return Shear2D(Tan(x), Tan(y))
}

// Affine2FromMatrix2 returns an [Affine2] with the given 2x2 linear part and
// zero translation.
func Affine2FromMatrix2[T constraints.Float](m Matrix2[T]) Affine2[T] {
	return Affine2[T]{
		m[0], m[1],
		m[2], m[3],
		0, 0,
	}
}

// Matrix2 returns the 2x2 linear part of this matrix, dropping the translation.
func (a Affine2[T]) Matrix2() Matrix2[T] {
	return Matrix2[T]{a.XX, a.YX, a.XY, a.YY}
}

// Translation returns the translation part of this matrix.
func (a Affine2[T]) Translation() Vector2[T] {
	return Vector2[T]{a.X0, a.Y0}
}

// FromSlice sets this matrix from the given slice, starting at offset, in
// XX, YX, XY, YY, X0, Y0 order.
func (a *Affine2[T]) FromSlice(array []T, offset int) {
	a.XX = array[offset]
	a.YX = array[offset+1]
	a.XY = array[offset+2]
	a.YY = array[offset+3]
	a.X0 = array[offset+4]
	a.Y0 = array[offset+5]
}

// ToSlice copies this matrix to the given slice, starting at offset, in
// XX, YX, XY, YY, X0, Y0 order.
func (a Affine2[T]) ToSlice(array []T, offset int) {
	array[offset] = a.XX
	array[offset+1] = a.YX
	array[offset+2] = a.XY
	array[offset+3] = a.YY
	array[offset+4] = a.X0
	array[offset+5] = a.Y0
}

func (a Affine2[T]) String() string {
	return fmt.Sprintf("Affine2(%v, %v, %v, %v, %v, %v)", a.XX, a.YX, a.XY, a.YY, a.X0, a.Y0)
}

// IsIdentity returns whether this matrix is the identity matrix.
func (a Affine2[T]) IsIdentity() bool {
	return a == IdentityAffine2[T]()
}

// Mul returns this matrix multiplied by the other matrix (a * other), which
// applies other first and then a when transforming points.
func (a Affine2[T]) Mul(other Affine2[T]) Affine2[T] {
	return Affine2[T]{
		XX: a.XX*other.XX + a.XY*other.YX,
		YX: a.YX*other.XX + a.YY*other.YX,
		XY: a.XX*other.XY + a.XY*other.YY,
		YY: a.YX*other.XY + a.YY*other.YY,
		X0: a.XX*other.X0 + a.XY*other.Y0 + a.X0,
		Y0: a.YX*other.X0 + a.YY*other.Y0 + a.Y0,
	}
}

// SetMul sets this matrix to itself multiplied by the other matrix
// (i.e., *= or times-equals).
func (a *Affine2[T]) SetMul(other Affine2[T]) {
	*a = a.Mul(other)
}

// Translate returns this matrix post-multiplied by a translation of the
// given x and y, so the translation is applied first when transforming points.
func (a Affine2[T]) Translate(x, y T) Affine2[T] {
	return a.Mul(Translate2D(x, y))
}

// Scale returns this matrix post-multiplied by a scaling of the given factors.
func (a Affine2[T]) Scale(x, y T) Affine2[T] {
	return a.Mul(Scale2D(x, y))
}

// Rotate returns this matrix post-multiplied by a rotation of the given
// angle (radians).
func (a Affine2[T]) Rotate(angle T) Affine2[T] {
	return a.Mul(Rotate2D(angle))
}

// Shear returns this matrix post-multiplied by a shear of the given factors.
func (a Affine2[T]) Shear(x, y T) Affine2[T] {
	return a.Mul(Shear2D(x, y))
}

// MulVector2AsVector returns the given vector multiplied by this matrix,
// without applying translation: suitable for transforming directions and sizes.
func (a Affine2[T]) MulVector2AsVector(v Vector2[T]) Vector2[T] {
	return Vector2[T]{a.XX*v.X + a.XY*v.Y, a.YX*v.X + a.YY*v.Y}
}

// MulVector2AsPoint returns the given point multiplied by this matrix,
// including translation.
func (a Affine2[T]) MulVector2AsPoint(v Vector2[T]) Vector2[T] {
	return Vector2[T]{a.XX*v.X + a.XY*v.Y + a.X0, a.YX*v.X + a.YY*v.Y + a.Y0}
}

// Determinant returns the determinant of the 2x2 linear part of this matrix,
// which is also the determinant of the full affine map.
func (a Affine2[T]) Determinant() T {
	return a.XX*a.YY - a.YX*a.XY
}

// SetInverse sets this matrix to the inverse of the given matrix, which may
// be the receiver itself. If the determinant is exactly zero, an error is
// returned and the receiver is left unmodified.
func (a *Affine2[T]) SetInverse(src *Affine2[T]) error {
	det := src.Determinant()
	if det == 0 {
		return errors.New("vmath.Affine2: can't invert matrix, determinant is 0")
	}
	idet := 1 / det
	*a = Affine2[T]{
		XX: src.YY * idet,
		YX: -src.YX * idet,
		XY: -src.XY * idet,
		YY: src.XX * idet,
		X0: (src.XY*src.Y0 - src.YY*src.X0) * idet,
		Y0: (src.YX*src.X0 - src.XX*src.Y0) * idet,
	}
	return nil
}

// Inverse returns the inverse of this matrix, or an error and the
// unmodified matrix if the determinant is exactly zero.
func (a Affine2[T]) Inverse() (Affine2[T], error) {
	na := a
	err := na.SetInverse(&a)
	return na, err
}

// MulScalar returns this matrix with each of the six stored elements
// multiplied by the scalar. The implicit bottom row is unaffected.
func (a Affine2[T]) MulScalar(s T) Affine2[T] {
	return Affine2[T]{a.XX * s, a.YX * s, a.XY * s, a.YY * s, a.X0 * s, a.Y0 * s}
}

// Add returns the element-wise sum of the six stored elements of this
// matrix and the other matrix.
func (a Affine2[T]) Add(other Affine2[T]) Affine2[T] {
	return Affine2[T]{a.XX + other.XX, a.YX + other.YX, a.XY + other.XY,
		a.YY + other.YY, a.X0 + other.X0, a.Y0 + other.Y0}
}

// Sub returns the element-wise difference of the six stored elements of
// this matrix and the other matrix.
func (a Affine2[T]) Sub(other Affine2[T]) Affine2[T] {
	return Affine2[T]{a.XX - other.XX, a.YX - other.YX, a.XY - other.XY,
		a.YY - other.YY, a.X0 - other.X0, a.Y0 - other.Y0}
}

// Norm returns the Frobenius norm of this matrix, including the implicit
// constant 1 of the bottom row.
func (a Affine2[T]) Norm() T {
	return Sqrt(a.XX*a.XX + a.YX*a.YX + a.XY*a.XY + a.YY*a.YY + a.X0*a.X0 + a.Y0*a.Y0 + 1)
}

// ExtractRot extracts the rotation angle (radians) of this matrix.
func (a Affine2[T]) ExtractRot() T {
	return Atan2(-a.XY, a.XX)
}

// ExtractScale extracts the x and y scale factors of this matrix.
func (a Affine2[T]) ExtractScale() Vector2[T] {
	scx := Vector2[T]{a.XX, a.YX}.Length()
	scy := Vector2[T]{a.XY, a.YY}.Length()
	return Vector2[T]{Sign(a.Determinant()) * scx, scy}
}

// AlmostEqual reports whether this matrix is approximately equal to other,
// testing each element pair with [Equal].
func (a Affine2[T]) AlmostEqual(other Affine2[T]) bool {
	return Equal(a.XX, other.XX) && Equal(a.YX, other.YX) &&
		Equal(a.XY, other.XY) && Equal(a.YY, other.YY) &&
		Equal(a.X0, other.X0) && Equal(a.Y0, other.Y0)
}
