// Copyright 2026 The vmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vmath

import (
	"fmt"
	"image"

	"golang.org/x/exp/constraints"
	"golang.org/x/image/math/fixed"
)

// Vector2 is a 2D vector/point with X and Y components.
type Vector2[T constraints.Float] struct {
	X T
	Y T
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2[T constraints.Float](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the given scalar value.
func Vector2Scalar[T constraints.Float](scalar T) Vector2[T] {
	return Vector2[T]{X: scalar, Y: scalar}
}

// Vector2FromPoint returns a new [Vector2] from the given [image.Point].
func Vector2FromPoint[T constraints.Float](pt image.Point) Vector2[T] {
	v := Vector2[T]{}
	v.SetPoint(pt)
	return v
}

// Vector2FromFixed returns a new [Vector2] from the given [fixed.Point26_6].
func Vector2FromFixed[T constraints.Float](pt fixed.Point26_6) Vector2[T] {
	v := Vector2[T]{}
	v.SetFixed(pt)
	return v
}

// Set sets this vector's X and Y components.
func (v *Vector2[T]) Set(x, y T) {
	v.X = x
	v.Y = y
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector2[T]) SetScalar(scalar T) {
	v.X = scalar
	v.Y = scalar
}

// SetZero sets all of the vector's components to zero.
func (v *Vector2[T]) SetZero() {
	v.X = 0
	v.Y = 0
}

// SetDim sets this vector component value by dimension index.
func (v *Vector2[T]) SetDim(dim Dims, value T) {
	switch dim {
	case X:
		v.X = value
	case Y:
		v.Y = value
	default:
		panic("dim is out of range")
	}
}

// Dim returns this vector component.
func (v Vector2[T]) Dim(dim Dims) T {
	switch dim {
	case X:
		return v.X
	case Y:
		return v.Y
	default:
		panic("dim is out of range")
	}
}

func (v Vector2[T]) String() string {
	return fmt.Sprintf("Vector2(%v, %v)", v.X, v.Y)
}

// SetPoint sets this vector from the given [image.Point].
func (v *Vector2[T]) SetPoint(pt image.Point) {
	v.X = T(pt.X)
	v.Y = T(pt.Y)
}

// ToPoint returns this vector as an [image.Point], truncating the components.
func (v Vector2[T]) ToPoint() image.Point {
	return image.Point{X: int(v.X), Y: int(v.Y)}
}

// ToPointRound returns this vector as an [image.Point], rounding the components.
func (v Vector2[T]) ToPointRound() image.Point {
	return image.Point{X: int(Round(v.X)), Y: int(Round(v.Y))}
}

// SetFixed sets this vector from the given [fixed.Point26_6].
func (v *Vector2[T]) SetFixed(pt fixed.Point26_6) {
	v.X = T(pt.X) / 64
	v.Y = T(pt.Y) / 64
}

// ToFixed returns this vector as a [fixed.Point26_6].
func (v Vector2[T]) ToFixed() fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(v.X * 64), Y: fixed.Int26_6(v.Y * 64)}
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector2[T]) FromSlice(array []T, offset int) {
	v.X = array[offset]
	v.Y = array[offset+1]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector2[T]) ToSlice(array []T, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
}

// Basic math operations:

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector2[T]) Add(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X + other.X, v.Y + other.Y}
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector2[T]) AddScalar(s T) Vector2[T] {
	return Vector2[T]{v.X + s, v.Y + s}
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector2[T]) SetAdd(other Vector2[T]) {
	v.X += other.X
	v.Y += other.Y
}

// SetAddScalar sets this to addition with scalar.
func (v *Vector2[T]) SetAddScalar(s T) {
	v.X += s
	v.Y += s
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector2[T]) Sub(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X - other.X, v.Y - other.Y}
}

// SubScalar subtracts scalar s from each component of this vector and returns new vector.
func (v Vector2[T]) SubScalar(s T) Vector2[T] {
	return Vector2[T]{v.X - s, v.Y - s}
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector2[T]) SetSub(other Vector2[T]) {
	v.X -= other.X
	v.Y -= other.Y
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector2[T]) Mul(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X * other.X, v.Y * other.Y}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector2[T]) MulScalar(s T) Vector2[T] {
	return Vector2[T]{v.X * s, v.Y * s}
}

// SetMul sets this to multiplication with other vector (i.e., *= or times-equals).
func (v *Vector2[T]) SetMul(other Vector2[T]) {
	v.X *= other.X
	v.Y *= other.Y
}

// SetMulScalar sets this to multiplication by scalar.
func (v *Vector2[T]) SetMulScalar(s T) {
	v.X *= s
	v.Y *= s
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector.
func (v Vector2[T]) Div(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X / other.X, v.Y / other.Y}
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
// If scalar is zero, returns zero.
func (v Vector2[T]) DivScalar(scalar T) Vector2[T] {
	if scalar != 0 {
		return v.MulScalar(1 / scalar)
	}
	return Vector2[T]{}
}

// SetDivScalar sets this to division by scalar.
func (v *Vector2[T]) SetDivScalar(s T) {
	if s != 0 {
		v.SetMulScalar(1 / s)
	} else {
		v.SetZero()
	}
}

// MulAdd returns this vector plus other scaled by s (i.e., v + other*s).
func (v Vector2[T]) MulAdd(other Vector2[T], s T) Vector2[T] {
	return Vector2[T]{v.X + other.X*s, v.Y + other.Y*s}
}

// Min returns min of this vector components vs. other vector.
func (v Vector2[T]) Min(other Vector2[T]) Vector2[T] {
	return Vector2[T]{min(v.X, other.X), min(v.Y, other.Y)}
}

// SetMin sets this vector components to the minimum values of itself and other vector.
func (v *Vector2[T]) SetMin(other Vector2[T]) {
	v.X = min(v.X, other.X)
	v.Y = min(v.Y, other.Y)
}

// Max returns max of this vector components vs. other vector.
func (v Vector2[T]) Max(other Vector2[T]) Vector2[T] {
	return Vector2[T]{max(v.X, other.X), max(v.Y, other.Y)}
}

// SetMax sets this vector components to the maximum value of itself and other vector.
func (v *Vector2[T]) SetMax(other Vector2[T]) {
	v.X = max(v.X, other.X)
	v.Y = max(v.Y, other.Y)
}

// Clamp sets this vector's components to be no less than the corresponding
// components of min and not greater than the corresponding component of max.
// Assumes min < max; if this assumption isn't true, it will not operate correctly.
func (v *Vector2[T]) Clamp(min, max Vector2[T]) {
	if v.X < min.X {
		v.X = min.X
	} else if v.X > max.X {
		v.X = max.X
	}
	if v.Y < min.Y {
		v.Y = min.Y
	} else if v.Y > max.Y {
		v.Y = max.Y
	}
}

// Floor returns this vector with [Floor] applied to each of its components.
func (v Vector2[T]) Floor() Vector2[T] {
	return Vector2[T]{Floor(v.X), Floor(v.Y)}
}

// Ceil returns this vector with [Ceil] applied to each of its components.
func (v Vector2[T]) Ceil() Vector2[T] {
	return Vector2[T]{Ceil(v.X), Ceil(v.Y)}
}

// Round returns this vector with [Round] applied to each of its components.
func (v Vector2[T]) Round() Vector2[T] {
	return Vector2[T]{Round(v.X), Round(v.Y)}
}

// Abs returns this vector with [Abs] applied to each of its components.
func (v Vector2[T]) Abs() Vector2[T] {
	return Vector2[T]{Abs(v.X), Abs(v.Y)}
}

// Negate returns the vector with each component negated.
func (v Vector2[T]) Negate() Vector2[T] {
	return Vector2[T]{-v.X, -v.Y}
}

// Distance, Normal:

// Dot returns the dot product of this vector with the given other vector.
func (v Vector2[T]) Dot(other Vector2[T]) T {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the 2D cross product of this vector with other, which is the
// z component of the 3D cross product of the two vectors embedded in the
// z = 0 plane. See [Vector2.CrossVector3] for the full 3D vector.
func (v Vector2[T]) Cross(other Vector2[T]) T {
	return v.X*other.Y - v.Y*other.X
}

// CrossVector3 returns the 3D cross product of this vector with other, both
// embedded in the z = 0 plane; only the Z component of the result is nonzero.
func (v Vector2[T]) CrossVector3(other Vector2[T]) Vector3[T] {
	return Vector3[T]{0, 0, v.Cross(other)}
}

// Length returns the length (magnitude) of this vector.
func (v Vector2[T]) Length() T {
	return Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors
// without the need to perform a square root.
func (v Vector2[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y
}

// DistanceTo returns the distance of this point to the other point.
func (v Vector2[T]) DistanceTo(other Vector2[T]) T {
	return Sqrt(v.DistanceToSquared(other))
}

// DistanceToSquared returns the squared distance of this point to the other point.
func (v Vector2[T]) DistanceToSquared(other Vector2[T]) T {
	dx := v.X - other.X
	dy := v.Y - other.Y
	return dx*dx + dy*dy
}

// Normal returns this vector divided by its length (its unit vector).
// The zero vector is returned unchanged.
func (v Vector2[T]) Normal() Vector2[T] {
	return v.DivScalar(v.Length())
}

// SetNormal normalizes this vector so its length will be 1.
// The zero vector is left unchanged.
func (v *Vector2[T]) SetNormal() {
	v.SetDivScalar(v.Length())
}

// Lerp returns the vector with each component as the linear interpolated value of
// alpha between itself and the corresponding other component. Alpha is not
// clamped: values outside [0, 1] extrapolate.
func (v Vector2[T]) Lerp(other Vector2[T], alpha T) Vector2[T] {
	return Vector2[T]{v.X + (other.X-v.X)*alpha, v.Y + (other.Y-v.Y)*alpha}
}

// AlmostEqual reports whether this vector is approximately equal to other,
// testing each component pair with [Equal].
func (v Vector2[T]) AlmostEqual(other Vector2[T]) bool {
	return Equal(v.X, other.X) && Equal(v.Y, other.Y)
}

// Rotate returns this point rotated by the given angle (radians,
// counterclockwise) around the given pivot point.
func (v Vector2[T]) Rotate(pivot Vector2[T], angle T) Vector2[T] {
	px := v.X - pivot.X
	py := v.Y - pivot.Y
	s, c := Sincos(angle)
	return Vector2[T]{px*c - py*s + pivot.X, px*s + py*c + pivot.Y}
}

// Matrix operations:

// MulMatrix2 returns this vector multiplied by the given 2x2 matrix.
func (v Vector2[T]) MulMatrix2(m *Matrix2[T]) Vector2[T] {
	return Vector2[T]{m[0]*v.X + m[2]*v.Y, m[1]*v.X + m[3]*v.Y}
}

// MulAffine2 returns this vector, treated as a point with an implicit 1 in
// the third slot, multiplied by the given affine matrix.
func (v Vector2[T]) MulAffine2(m Affine2[T]) Vector2[T] {
	return m.MulVector2AsPoint(v)
}

// MulMatrix3 returns this vector, treated as a point with an implicit 1 in
// the third slot, multiplied by the given 3x3 matrix.
func (v Vector2[T]) MulMatrix3(m *Matrix3[T]) Vector2[T] {
	return Vector2[T]{m[0]*v.X + m[3]*v.Y + m[6], m[1]*v.X + m[4]*v.Y + m[7]}
}

// MulMatrix4 returns this vector, treated as a point in the z = 0 plane,
// multiplied by the given 4x4 matrix. The third and fourth rows of the
// matrix are ignored.
func (v Vector2[T]) MulMatrix4(m *Matrix4[T]) Vector2[T] {
	return Vector2[T]{m[0]*v.X + m[4]*v.Y + m[12], m[1]*v.X + m[5]*v.Y + m[13]}
}
