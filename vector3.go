// Copyright 2026 The vmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vmath

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Vector3 is a 3D vector/point with X, Y and Z components.
type Vector3[T constraints.Float] struct {
	X T
	Y T
	Z T
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3[T constraints.Float](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

// Vector3Scalar returns a new [Vector3] with all components set to the given scalar value.
func Vector3Scalar[T constraints.Float](scalar T) Vector3[T] {
	return Vector3[T]{X: scalar, Y: scalar, Z: scalar}
}

// Vector3FromVector4 returns a new [Vector3] from the given [Vector4],
// dropping the w component.
func Vector3FromVector4[T constraints.Float](v Vector4[T]) Vector3[T] {
	return Vector3[T]{X: v.X, Y: v.Y, Z: v.Z}
}

// Set sets this vector's X, Y and Z components.
func (v *Vector3[T]) Set(x, y, z T) {
	v.X = x
	v.Y = y
	v.Z = z
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector3[T]) SetScalar(scalar T) {
	v.X = scalar
	v.Y = scalar
	v.Z = scalar
}

// SetZero sets all of the vector's components to zero.
func (v *Vector3[T]) SetZero() {
	v.X = 0
	v.Y = 0
	v.Z = 0
}

// SetFromVector2 sets this vector from a [Vector2], with 0 for Z.
func (v *Vector3[T]) SetFromVector2(other Vector2[T]) {
	v.X = other.X
	v.Y = other.Y
	v.Z = 0
}

// SetDim sets this vector component value by dimension index.
func (v *Vector3[T]) SetDim(dim Dims, value T) {
	switch dim {
	case X:
		v.X = value
	case Y:
		v.Y = value
	case Z:
		v.Z = value
	default:
		panic("dim is out of range")
	}
}

// Dim returns this vector component.
func (v Vector3[T]) Dim(dim Dims) T {
	switch dim {
	case X:
		return v.X
	case Y:
		return v.Y
	case Z:
		return v.Z
	default:
		panic("dim is out of range")
	}
}

func (v Vector3[T]) String() string {
	return fmt.Sprintf("Vector3(%v, %v, %v)", v.X, v.Y, v.Z)
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector3[T]) FromSlice(array []T, offset int) {
	v.X = array[offset]
	v.Y = array[offset+1]
	v.Z = array[offset+2]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector3[T]) ToSlice(array []T, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
	array[offset+2] = v.Z
}

// Basic math operations:

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector3[T]) Add(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector3[T]) AddScalar(s T) Vector3[T] {
	return Vector3[T]{v.X + s, v.Y + s, v.Z + s}
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector3[T]) SetAdd(other Vector3[T]) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
}

// SetAddScalar sets this to addition with scalar.
func (v *Vector3[T]) SetAddScalar(s T) {
	v.X += s
	v.Y += s
	v.Z += s
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector3[T]) Sub(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// SubScalar subtracts scalar s from each component of this vector and returns new vector.
func (v Vector3[T]) SubScalar(s T) Vector3[T] {
	return Vector3[T]{v.X - s, v.Y - s, v.Z - s}
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector3[T]) SetSub(other Vector3[T]) {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector3[T]) Mul(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector3[T]) MulScalar(s T) Vector3[T] {
	return Vector3[T]{v.X * s, v.Y * s, v.Z * s}
}

// SetMul sets this to multiplication with other vector (i.e., *= or times-equals).
func (v *Vector3[T]) SetMul(other Vector3[T]) {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
}

// SetMulScalar sets this to multiplication by scalar.
func (v *Vector3[T]) SetMulScalar(s T) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector.
func (v Vector3[T]) Div(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
// If scalar is zero, returns zero.
func (v Vector3[T]) DivScalar(scalar T) Vector3[T] {
	if scalar != 0 {
		return v.MulScalar(1 / scalar)
	}
	return Vector3[T]{}
}

// SetDivScalar sets this to division by scalar.
func (v *Vector3[T]) SetDivScalar(s T) {
	if s != 0 {
		v.SetMulScalar(1 / s)
	} else {
		v.SetZero()
	}
}

// MulAdd returns this vector plus other scaled by s (i.e., v + other*s).
func (v Vector3[T]) MulAdd(other Vector3[T], s T) Vector3[T] {
	return Vector3[T]{v.X + other.X*s, v.Y + other.Y*s, v.Z + other.Z*s}
}

// Min returns min of this vector components vs. other vector.
func (v Vector3[T]) Min(other Vector3[T]) Vector3[T] {
	return Vector3[T]{min(v.X, other.X), min(v.Y, other.Y), min(v.Z, other.Z)}
}

// SetMin sets this vector components to the minimum values of itself and other vector.
func (v *Vector3[T]) SetMin(other Vector3[T]) {
	v.X = min(v.X, other.X)
	v.Y = min(v.Y, other.Y)
	v.Z = min(v.Z, other.Z)
}

// Max returns max of this vector components vs. other vector.
func (v Vector3[T]) Max(other Vector3[T]) Vector3[T] {
	return Vector3[T]{max(v.X, other.X), max(v.Y, other.Y), max(v.Z, other.Z)}
}

// SetMax sets this vector components to the maximum value of itself and other vector.
func (v *Vector3[T]) SetMax(other Vector3[T]) {
	v.X = max(v.X, other.X)
	v.Y = max(v.Y, other.Y)
	v.Z = max(v.Z, other.Z)
}

// Clamp sets this vector's components to be no less than the corresponding
// components of min and not greater than the corresponding component of max.
// Assumes min < max; if this assumption isn't true, it will not operate correctly.
func (v *Vector3[T]) Clamp(min, max Vector3[T]) {
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
	if v.Z < min.Z {
		v.Z = min.Z
	} else if v.Z > max.Z {
		v.Z = max.Z
	}
}

// Floor returns this vector with [Floor] applied to each of its components.
func (v Vector3[T]) Floor() Vector3[T] {
	return Vector3[T]{Floor(v.X), Floor(v.Y), Floor(v.Z)}
}

// Ceil returns this vector with [Ceil] applied to each of its components.
func (v Vector3[T]) Ceil() Vector3[T] {
	return Vector3[T]{Ceil(v.X), Ceil(v.Y), Ceil(v.Z)}
}

// Round returns this vector with [Round] applied to each of its components.
func (v Vector3[T]) Round() Vector3[T] {
	return Vector3[T]{Round(v.X), Round(v.Y), Round(v.Z)}
}

// Abs returns this vector with [Abs] applied to each of its components.
func (v Vector3[T]) Abs() Vector3[T] {
	return Vector3[T]{Abs(v.X), Abs(v.Y), Abs(v.Z)}
}

// Negate returns the vector with each component negated.
func (v Vector3[T]) Negate() Vector3[T] {
	return Vector3[T]{-v.X, -v.Y, -v.Z}
}

// Distance, Normal:

// Dot returns the dot product of this vector with the given other vector.
func (v Vector3[T]) Dot(other Vector3[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of this vector with other.
func (v Vector3[T]) Cross(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the length (magnitude) of this vector.
func (v Vector3[T]) Length() T {
	return Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors
// without the need to perform a square root.
func (v Vector3[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// DistanceTo returns the distance of this point to the other point.
func (v Vector3[T]) DistanceTo(other Vector3[T]) T {
	return Sqrt(v.DistanceToSquared(other))
}

// DistanceToSquared returns the squared distance of this point to the other point.
func (v Vector3[T]) DistanceToSquared(other Vector3[T]) T {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return dx*dx + dy*dy + dz*dz
}

// Normal returns this vector divided by its length (its unit vector).
// The zero vector is returned unchanged.
func (v Vector3[T]) Normal() Vector3[T] {
	return v.DivScalar(v.Length())
}

// SetNormal normalizes this vector so its length will be 1.
// The zero vector is left unchanged.
func (v *Vector3[T]) SetNormal() {
	v.SetDivScalar(v.Length())
}

// AngleTo returns the angle between this vector and other, in radians.
func (v Vector3[T]) AngleTo(other Vector3[T]) T {
	d := v.Normal().Dot(other.Normal())
	return Acos(Clamp(d, -1, 1))
}

// AlmostEqual reports whether this vector is approximately equal to other,
// testing each component pair with [Equal].
func (v Vector3[T]) AlmostEqual(other Vector3[T]) bool {
	return Equal(v.X, other.X) && Equal(v.Y, other.Y) && Equal(v.Z, other.Z)
}

// Interpolation:

// Lerp returns the vector with each component as the linear interpolated value of
// alpha between itself and the corresponding other component. Alpha is not
// clamped: values outside [0, 1] extrapolate.
func (v Vector3[T]) Lerp(other Vector3[T], alpha T) Vector3[T] {
	return Vector3[T]{v.X + (other.X-v.X)*alpha, v.Y + (other.Y-v.Y)*alpha,
		v.Z + (other.Z-v.Z)*alpha}
}

// Slerp returns the spherical linear interpolation between this vector and
// other at parameter t, traveling along the great-circle arc between the
// two directions at constant angular velocity. Falls back to [Vector3.Lerp]
// when the vectors are nearly coincident; the result is unstable when the
// vectors are exactly antiparallel, where the arc is not unique.
func (v Vector3[T]) Slerp(other Vector3[T], t T) Vector3[T] {
	angle := Acos(Clamp(v.Dot(other), -1, 1))
	s := Sin(angle)
	if s <= Epsilon {
		return v.Lerp(other, t)
	}
	ratioA := Sin((1-t)*angle) / s
	ratioB := Sin(t*angle) / s
	return v.MulScalar(ratioA).Add(other.MulScalar(ratioB))
}

// Hermite returns the Hermite spline interpolation through control points
// v, m1, m2, other at parameter t, where m1 and m2 are the tangent controls.
func (v Vector3[T]) Hermite(m1, m2, other Vector3[T], t T) Vector3[T] {
	f1 := t*t*(2*t-3) + 1
	f2 := t*t*(t-2) + t
	f3 := t * t * (t - 1)
	f4 := t * t * (3 - 2*t)
	return Vector3[T]{
		v.X*f1 + m1.X*f2 + m2.X*f3 + other.X*f4,
		v.Y*f1 + m1.Y*f2 + m2.Y*f3 + other.Y*f4,
		v.Z*f1 + m1.Z*f2 + m2.Z*f3 + other.Z*f4,
	}
}

// Bezier returns the cubic Bezier spline interpolation through control
// points v, c1, c2, other at parameter t.
func (v Vector3[T]) Bezier(c1, c2, other Vector3[T], t T) Vector3[T] {
	inv := 1 - t
	inv2 := inv * inv
	t2 := t * t
	f1 := inv2 * inv
	f2 := 3 * t * inv2
	f3 := 3 * t2 * inv
	f4 := t2 * t
	return Vector3[T]{
		v.X*f1 + c1.X*f2 + c2.X*f3 + other.X*f4,
		v.Y*f1 + c1.Y*f2 + c2.Y*f3 + other.Y*f4,
		v.Z*f1 + c1.Z*f2 + c2.Z*f3 + other.Z*f4,
	}
}

// Rotations:

// RotateX returns this point rotated by the given angle (radians) around
// the x axis through the given pivot point.
func (v Vector3[T]) RotateX(pivot Vector3[T], angle T) Vector3[T] {
	p := v.Sub(pivot)
	s, c := Sincos(angle)
	r := Vector3[T]{p.X, p.Y*c - p.Z*s, p.Y*s + p.Z*c}
	return r.Add(pivot)
}

// RotateY returns this point rotated by the given angle (radians) around
// the y axis through the given pivot point.
func (v Vector3[T]) RotateY(pivot Vector3[T], angle T) Vector3[T] {
	p := v.Sub(pivot)
	s, c := Sincos(angle)
	r := Vector3[T]{p.Z*s + p.X*c, p.Y, p.Z*c - p.X*s}
	return r.Add(pivot)
}

// RotateZ returns this point rotated by the given angle (radians) around
// the z axis through the given pivot point.
func (v Vector3[T]) RotateZ(pivot Vector3[T], angle T) Vector3[T] {
	p := v.Sub(pivot)
	s, c := Sincos(angle)
	r := Vector3[T]{p.X*c - p.Y*s, p.X*s + p.Y*c, p.Z}
	return r.Add(pivot)
}

// Matrix and quaternion operations:

// MulMatrix3 returns this vector multiplied by the given 3x3 matrix.
func (v Vector3[T]) MulMatrix3(m *Matrix3[T]) Vector3[T] {
	return Vector3[T]{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// MulMatrix4 returns this vector, treated as a point with an implicit 1 in
// the fourth slot, multiplied by the given 4x4 matrix, with the result
// divided by the resulting homogeneous w coordinate (perspective divide).
// A w of exactly zero is treated as 1.
func (v Vector3[T]) MulMatrix4(m *Matrix4[T]) Vector3[T] {
	w := m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]
	if w == 0 {
		w = 1
	}
	return Vector3[T]{
		(m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]) / w,
		(m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]) / w,
		(m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]) / w,
	}
}

// MulMatrix4AsVector4 returns the [Vector4] of this vector promoted with the
// given w, multiplied by the given 4x4 matrix, without perspective divide.
func (v Vector3[T]) MulMatrix4AsVector4(w T, m *Matrix4[T]) Vector4[T] {
	return Vector4FromVector3(v, w).MulMatrix4(m)
}

// MulQuat returns this vector rotated by the given quaternion, computing
// q * v * q⁻¹ restricted to the vector part via the double cross product
// form. The quaternion is assumed to be normalized.
func (v Vector3[T]) MulQuat(q Quat[T]) Vector3[T] {
	qv := Vector3[T]{q.X, q.Y, q.Z}
	uv := qv.Cross(v)
	uuv := qv.Cross(uv)
	return v.Add(uv.MulScalar(2 * q.W)).Add(uuv.MulScalar(2))
}
