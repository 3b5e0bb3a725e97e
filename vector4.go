// Copyright 2026 The vmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vmath

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Vector4 is a vector/point in homogeneous coordinates with X, Y, Z and W components.
type Vector4[T constraints.Float] struct {
	X T
	Y T
	Z T
	W T
}

// Vec4 returns a new [Vector4] with the given x, y, z and w components.
func Vec4[T constraints.Float](x, y, z, w T) Vector4[T] {
	return Vector4[T]{X: x, Y: y, Z: z, W: w}
}

// Vector4Scalar returns a new [Vector4] with all components set to the given scalar value.
func Vector4Scalar[T constraints.Float](scalar T) Vector4[T] {
	return Vector4[T]{X: scalar, Y: scalar, Z: scalar, W: scalar}
}

// Vector4FromVector3 returns a new [Vector4] from the given [Vector3] and w component.
func Vector4FromVector3[T constraints.Float](v Vector3[T], w T) Vector4[T] {
	nv := Vector4[T]{}
	nv.SetFromVector3(v, w)
	return nv
}

// Set sets this vector's X, Y, Z and W components.
func (v *Vector4[T]) Set(x, y, z, w T) {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector4[T]) SetScalar(scalar T) {
	v.X = scalar
	v.Y = scalar
	v.Z = scalar
	v.W = scalar
}

// SetFromVector3 sets this vector from a [Vector3] and w.
func (v *Vector4[T]) SetFromVector3(other Vector3[T], w T) {
	v.X = other.X
	v.Y = other.Y
	v.Z = other.Z
	v.W = w
}

// SetFromVector2 sets this vector from a [Vector2] with 0, 1 for Z, W.
func (v *Vector4[T]) SetFromVector2(other Vector2[T]) {
	v.X = other.X
	v.Y = other.Y
	v.Z = 0
	v.W = 1
}

// SetDim sets this vector component value by dimension index.
func (v *Vector4[T]) SetDim(dim Dims, value T) {
	switch dim {
	case X:
		v.X = value
	case Y:
		v.Y = value
	case Z:
		v.Z = value
	case W:
		v.W = value
	default:
		panic("dim is out of range")
	}
}

// Dim returns this vector component.
func (v Vector4[T]) Dim(dim Dims) T {
	switch dim {
	case X:
		return v.X
	case Y:
		return v.Y
	case Z:
		return v.Z
	case W:
		return v.W
	default:
		panic("dim is out of range")
	}
}

func (v Vector4[T]) String() string {
	return fmt.Sprintf("Vector4(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// SetZero sets all of the vector's components to zero,
// except for the W component, which it sets to 1, as is standard.
func (v *Vector4[T]) SetZero() {
	v.X = 0
	v.Y = 0
	v.Z = 0
	v.W = 1
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector4[T]) FromSlice(array []T, offset int) {
	v.X = array[offset]
	v.Y = array[offset+1]
	v.Z = array[offset+2]
	v.W = array[offset+3]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector4[T]) ToSlice(array []T, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
	array[offset+2] = v.Z
	array[offset+3] = v.W
}

// Basic math operations:

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector4[T]) Add(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector4[T]) AddScalar(s T) Vector4[T] {
	return Vector4[T]{v.X + s, v.Y + s, v.Z + s, v.W + s}
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector4[T]) SetAdd(other Vector4[T]) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	v.W += other.W
}

// SetAddScalar sets this to addition with scalar.
func (v *Vector4[T]) SetAddScalar(s T) {
	v.X += s
	v.Y += s
	v.Z += s
	v.W += s
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector4[T]) Sub(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// SubScalar subtracts scalar s from each component of this vector and returns new vector.
func (v Vector4[T]) SubScalar(s T) Vector4[T] {
	return Vector4[T]{v.X - s, v.Y - s, v.Z - s, v.W - s}
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector4[T]) SetSub(other Vector4[T]) {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	v.W -= other.W
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector4[T]) Mul(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector4[T]) MulScalar(s T) Vector4[T] {
	return Vector4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// SetMul sets this to multiplication with other vector (i.e., *= or times-equals).
func (v *Vector4[T]) SetMul(other Vector4[T]) {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	v.W *= other.W
}

// SetMulScalar sets this to multiplication by scalar.
func (v *Vector4[T]) SetMulScalar(s T) {
	v.X *= s
	v.Y *= s
	v.Z *= s
	v.W *= s
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector.
func (v Vector4[T]) Div(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
// If scalar is zero, returns zero.
func (v Vector4[T]) DivScalar(scalar T) Vector4[T] {
	if scalar != 0 {
		return v.MulScalar(1 / scalar)
	}
	return Vector4[T]{}
}

// SetDivScalar sets this to division by scalar.
func (v *Vector4[T]) SetDivScalar(s T) {
	if s != 0 {
		v.SetMulScalar(1 / s)
	} else {
		v.SetZero()
	}
}

// MulAdd returns this vector plus other scaled by s (i.e., v + other*s).
func (v Vector4[T]) MulAdd(other Vector4[T], s T) Vector4[T] {
	return Vector4[T]{v.X + other.X*s, v.Y + other.Y*s, v.Z + other.Z*s, v.W + other.W*s}
}

// Min returns min of this vector components vs. other vector.
func (v Vector4[T]) Min(other Vector4[T]) Vector4[T] {
	return Vector4[T]{min(v.X, other.X), min(v.Y, other.Y), min(v.Z, other.Z), min(v.W, other.W)}
}

// SetMin sets this vector components to the minimum values of itself and other vector.
func (v *Vector4[T]) SetMin(other Vector4[T]) {
	v.X = min(v.X, other.X)
	v.Y = min(v.Y, other.Y)
	v.Z = min(v.Z, other.Z)
	v.W = min(v.W, other.W)
}

// Max returns max of this vector components vs. other vector.
func (v Vector4[T]) Max(other Vector4[T]) Vector4[T] {
	return Vector4[T]{max(v.X, other.X), max(v.Y, other.Y), max(v.Z, other.Z), max(v.W, other.W)}
}

// SetMax sets this vector components to the maximum value of itself and other vector.
func (v *Vector4[T]) SetMax(other Vector4[T]) {
	v.X = max(v.X, other.X)
	v.Y = max(v.Y, other.Y)
	v.Z = max(v.Z, other.Z)
	v.W = max(v.W, other.W)
}

// Floor returns this vector with [Floor] applied to each of its components.
func (v Vector4[T]) Floor() Vector4[T] {
	return Vector4[T]{Floor(v.X), Floor(v.Y), Floor(v.Z), Floor(v.W)}
}

// Ceil returns this vector with [Ceil] applied to each of its components.
func (v Vector4[T]) Ceil() Vector4[T] {
	return Vector4[T]{Ceil(v.X), Ceil(v.Y), Ceil(v.Z), Ceil(v.W)}
}

// Round returns this vector with [Round] applied to each of its components.
func (v Vector4[T]) Round() Vector4[T] {
	return Vector4[T]{Round(v.X), Round(v.Y), Round(v.Z), Round(v.W)}
}

// Negate returns the vector with each component negated.
func (v Vector4[T]) Negate() Vector4[T] {
	return Vector4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

// Distance, Normal:

// Dot returns the dot product of this vector with the given other vector.
func (v Vector4[T]) Dot(other Vector4[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Length returns the length (magnitude) of this vector.
func (v Vector4[T]) Length() T {
	return Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors
// without the need to perform a square root.
func (v Vector4[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// DistanceTo returns the distance of this point to the other point.
func (v Vector4[T]) DistanceTo(other Vector4[T]) T {
	return Sqrt(v.DistanceToSquared(other))
}

// DistanceToSquared returns the squared distance of this point to the other point.
func (v Vector4[T]) DistanceToSquared(other Vector4[T]) T {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	dw := v.W - other.W
	return dx*dx + dy*dy + dz*dz + dw*dw
}

// Normal returns this vector divided by its length (its unit vector).
// The zero vector is returned unchanged.
func (v Vector4[T]) Normal() Vector4[T] {
	return v.DivScalar(v.Length())
}

// SetNormal normalizes this vector so its length will be 1.
// The zero vector is left unchanged.
func (v *Vector4[T]) SetNormal() {
	l := v.Length()
	if l == 0 {
		return
	}
	v.SetMulScalar(1 / l)
}

// Lerp returns the vector with each component as the linear interpolated value of
// alpha between itself and the corresponding other component. Alpha is not
// clamped: values outside [0, 1] extrapolate.
func (v Vector4[T]) Lerp(other Vector4[T], alpha T) Vector4[T] {
	return Vector4[T]{v.X + (other.X-v.X)*alpha, v.Y + (other.Y-v.Y)*alpha,
		v.Z + (other.Z-v.Z)*alpha, v.W + (other.W-v.W)*alpha}
}

// AlmostEqual reports whether this vector is approximately equal to other,
// testing each component pair with [Equal].
func (v Vector4[T]) AlmostEqual(other Vector4[T]) bool {
	return Equal(v.X, other.X) && Equal(v.Y, other.Y) &&
		Equal(v.Z, other.Z) && Equal(v.W, other.W)
}

// Cross returns the generalized 4D cross product of the three vectors
// v, u and w, which is orthogonal to all three.
func (v Vector4[T]) Cross(u, w Vector4[T]) Vector4[T] {
	a := u.X*w.Y - u.Y*w.X
	b := u.X*w.Z - u.Z*w.X
	c := u.X*w.W - u.W*w.X
	d := u.Y*w.Z - u.Z*w.Y
	e := u.Y*w.W - u.W*w.Y
	f := u.Z*w.W - u.W*w.Z
	return Vector4[T]{
		v.Y*f - v.Z*e + v.W*d,
		-v.X*f + v.Z*c - v.W*b,
		v.X*e - v.Y*c + v.W*a,
		-v.X*d + v.Y*b - v.Z*a,
	}
}

// Matrix operations:

// MulMatrix4 returns this vector multiplied by the given 4x4 matrix.
func (v Vector4[T]) MulMatrix4(m *Matrix4[T]) Vector4[T] {
	return Vector4[T]{m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W}
}

// SetAxisAngleFromQuat sets this vector to be the axis (x, y, z) and angle (w)
// of the rotation specified by the quaternion q.
// Assumes q is normalized.
func (v *Vector4[T]) SetAxisAngleFromQuat(q Quat[T]) {
	qw := Clamp(q.W, -1, 1)
	v.W = 2 * Acos(qw)
	s := Sqrt(1 - qw*qw)
	if s < 0.0001 {
		v.X = 1
		v.Y = 0
		v.Z = 0
	} else {
		v.X = q.X / s
		v.Y = q.Y / s
		v.Z = q.Z / s
	}
}

// PerspDiv returns the 3-vector of normalized display coordinates (NDC) from
// this 4-vector, by dividing by the 4th W component.
func (v Vector4[T]) PerspDiv() Vector3[T] {
	return Vec3(v.X/v.W, v.Y/v.W, v.Z/v.W)
}
