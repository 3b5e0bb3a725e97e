// Copyright 2026 The vmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vmath

import (
	"fmt"
	"math/rand"

	"golang.org/x/exp/constraints"
)

// Quat is a quaternion with X, Y, Z and W components, where W is the scalar
// part. Rotation quaternions are expected to be normalized; storage does
// not enforce this.
type Quat[T constraints.Float] struct {
	X T
	Y T
	Z T
	W T
}

// EulerOrder specifies the intrinsic order in which per-axis Euler angle
// rotations are applied.
type EulerOrder int32

const (
	OrderXYZ EulerOrder = iota
	OrderXZY
	OrderYXZ
	OrderYZX
	OrderZXY
	OrderZYX
	EulerOrdersN
)

func (o EulerOrder) String() string {
	switch o {
	case OrderXYZ:
		return "XYZ"
	case OrderXZY:
		return "XZY"
	case OrderYXZ:
		return "YXZ"
	case OrderYZX:
		return "YZX"
	case OrderZXY:
		return "ZXY"
	case OrderZYX:
		return "ZYX"
	}
	return "invalid"
}

// NewQuat returns a new quaternion from the specified components.
func NewQuat[T constraints.Float](x, y, z, w T) Quat[T] {
	return Quat[T]{X: x, Y: y, Z: z, W: w}
}

// QuatIdentity returns a new identity quaternion.
func QuatIdentity[T constraints.Float]() Quat[T] {
	return Quat[T]{W: 1}
}

// NewQuatAxisAngle returns a new quaternion from the given (normalized)
// axis and angle rotation (radians).
func NewQuatAxisAngle[T constraints.Float](axis Vector3[T], angle T) Quat[T] {
	nq := Quat[T]{}
	nq.SetFromAxisAngle(axis, angle)
	return nq
}

// NewQuatEuler returns a new quaternion from the given Euler angles
// (radians) applied in the given intrinsic order.
func NewQuatEuler[T constraints.Float](euler Vector3[T], order EulerOrder) Quat[T] {
	nq := Quat[T]{}
	nq.SetFromEuler(euler, order)
	return nq
}

// Set sets this quaternion's components.
func (q *Quat[T]) Set(x, y, z, w T) {
	q.X = x
	q.Y = y
	q.Z = z
	q.W = w
}

// FromSlice sets this quaternion's components from the given slice, starting at offset.
func (q *Quat[T]) FromSlice(array []T, offset int) {
	q.X = array[offset]
	q.Y = array[offset+1]
	q.Z = array[offset+2]
	q.W = array[offset+3]
}

// ToSlice copies this quaternion's components to the given slice, starting at offset.
func (q Quat[T]) ToSlice(array []T, offset int) {
	array[offset] = q.X
	array[offset+1] = q.Y
	array[offset+2] = q.Z
	array[offset+3] = q.W
}

func (q Quat[T]) String() string {
	return fmt.Sprintf("Quat(%v, %v, %v, %v)", q.X, q.Y, q.Z, q.W)
}

// SetIdentity sets this quaternion to the identity quaternion.
func (q *Quat[T]) SetIdentity() {
	q.X = 0
	q.Y = 0
	q.Z = 0
	q.W = 1
}

// IsIdentity returns if this is an identity quaternion.
func (q Quat[T]) IsIdentity() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 1
}

// IsNil returns true if all values are 0 (uninitialized).
func (q Quat[T]) IsNil() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 0
}

// SetFromAxisAngle sets this quaternion to the rotation specified by the
// given (normalized) axis and angle (radians).
func (q *Quat[T]) SetFromAxisAngle(axis Vector3[T], angle T) {
	halfAngle := angle / 2
	s := Sin(halfAngle)
	q.X = axis.X * s
	q.Y = axis.Y * s
	q.Z = axis.Z * s
	q.W = Cos(halfAngle)
}

// ToAxisAngle returns the [Vector4] holding the axis (X, Y, Z) and angle (W)
// of this quaternion. The angle is in [0, 2π); a degenerate zero rotation
// reports the fixed +X axis.
func (q Quat[T]) ToAxisAngle() Vector4[T] {
	aa := Vector4[T]{}
	aa.SetAxisAngleFromQuat(q)
	return aa
}

// SetFromEuler sets this quaternion from the given vector of Euler angles
// for each axis (radians), applied in the given intrinsic rotation order.
// Panics for an order outside the six supported permutations.
func (q *Quat[T]) SetFromEuler(euler Vector3[T], order EulerOrder) {
	sx, cx := Sincos(euler.X / 2)
	sy, cy := Sincos(euler.Y / 2)
	sz, cz := Sincos(euler.Z / 2)

	switch order {
	case OrderXYZ:
		q.X = sx*cy*cz + cx*sy*sz
		q.Y = cx*sy*cz - sx*cy*sz
		q.Z = cx*cy*sz + sx*sy*cz
		q.W = cx*cy*cz - sx*sy*sz
	case OrderXZY:
		q.X = sx*cy*cz - cx*sy*sz
		q.Y = cx*sy*cz - sx*cy*sz
		q.Z = cx*cy*sz + sx*sy*cz
		q.W = cx*cy*cz + sx*sy*sz
	case OrderYXZ:
		q.X = sx*cy*cz + cx*sy*sz
		q.Y = cx*sy*cz - sx*cy*sz
		q.Z = cx*cy*sz - sx*sy*cz
		q.W = cx*cy*cz + sx*sy*sz
	case OrderYZX:
		q.X = sx*cy*cz + cx*sy*sz
		q.Y = cx*sy*cz + sx*cy*sz
		q.Z = cx*cy*sz - sx*sy*cz
		q.W = cx*cy*cz - sx*sy*sz
	case OrderZXY:
		q.X = sx*cy*cz - cx*sy*sz
		q.Y = cx*sy*cz + sx*cy*sz
		q.Z = cx*cy*sz + sx*sy*cz
		q.W = cx*cy*cz - sx*sy*sz
	case OrderZYX:
		q.X = sx*cy*cz - cx*sy*sz
		q.Y = cx*sy*cz + sx*cy*sz
		q.Z = cx*cy*sz - sx*sy*cz
		q.W = cx*cy*cz + sx*sy*sz
	default:
		panic(fmt.Sprintf("vmath.Quat: unsupported Euler angle order %v", order))
	}
}

// SetFromRotationMatrix sets this quaternion from the given pure rotation
// matrix, branching on the largest diagonal element for numerical
// stability when the trace is small or negative.
func (q *Quat[T]) SetFromRotationMatrix(m *Matrix3[T]) {
	m11, m12, m13 := m[0], m[3], m[6]
	m21, m22, m23 := m[1], m[4], m[7]
	m31, m32, m33 := m[2], m[5], m[8]
	trace := m11 + m22 + m33

	var s T
	switch {
	case trace > 0:
		s = 0.5 / Sqrt(trace+1)
		q.W = 0.25 / s
		q.X = (m32 - m23) * s
		q.Y = (m13 - m31) * s
		q.Z = (m21 - m12) * s
	case m11 > m22 && m11 > m33:
		s = 2 * Sqrt(1+m11-m22-m33)
		q.W = (m32 - m23) / s
		q.X = 0.25 * s
		q.Y = (m12 + m21) / s
		q.Z = (m13 + m31) / s
	case m22 > m33:
		s = 2 * Sqrt(1+m22-m11-m33)
		q.W = (m13 - m31) / s
		q.X = (m12 + m21) / s
		q.Y = 0.25 * s
		q.Z = (m23 + m32) / s
	default:
		s = 2 * Sqrt(1+m33-m11-m22)
		q.W = (m21 - m12) / s
		q.X = (m13 + m31) / s
		q.Y = (m23 + m32) / s
		q.Z = 0.25 * s
	}
}

// SetFromUnitVectors sets this quaternion to the rotation from vector vFrom
// to vTo. The vectors must be normalized. The nearly-antiparallel case
// rotates π around an arbitrary perpendicular axis, and the nearly-identical
// case returns identity; both avoid the unstable direct formula.
func (q *Quat[T]) SetFromUnitVectors(vFrom, vTo Vector3[T]) {
	r := vFrom.Dot(vTo) + 1
	var v1 Vector3[T]
	if r < Epsilon {
		r = 0
		if Abs(vFrom.X) > Abs(vFrom.Z) {
			v1.Set(-vFrom.Y, vFrom.X, 0)
		} else {
			v1.Set(0, -vFrom.Z, vFrom.Y)
		}
	} else {
		v1 = vFrom.Cross(vTo)
	}
	q.X = v1.X
	q.Y = v1.Y
	q.Z = v1.Z
	q.W = r
	q.Normalize()
}

// SetFromAxes sets this quaternion to represent the coordinate frame given
// by the view (-z), right (+x), and up (+y) axis vectors, which must be
// normalized and orthogonal.
func (q *Quat[T]) SetFromAxes(view, right, up Vector3[T]) {
	m := Matrix3[T]{
		right.X, up.X, -view.X,
		right.Y, up.Y, -view.Y,
		right.Z, up.Z, -view.Z,
	}
	q.SetFromRotationMatrix(&m)
	q.Normalize()
}

// SetRandom sets this quaternion to a uniformly distributed random unit
// rotation.
func (q *Quat[T]) SetRandom() {
	u1 := T(rand.Float64())
	u2 := T(rand.Float64())
	u3 := T(rand.Float64())
	sqrt1MinusU1 := Sqrt(1 - u1)
	sqrtU1 := Sqrt(u1)
	q.X = sqrt1MinusU1 * Sin(2*Pi*u2)
	q.Y = sqrt1MinusU1 * Cos(2*Pi*u2)
	q.Z = sqrtU1 * Sin(2*Pi*u3)
	q.W = sqrtU1 * Cos(2*Pi*u3)
}

// RotateX returns this quaternion rotated by the given angle (radians)
// about the x axis.
func (q Quat[T]) RotateX(angle T) Quat[T] {
	bx, bw := Sincos(angle / 2)
	return Quat[T]{
		q.X*bw + q.W*bx,
		q.Y*bw + q.Z*bx,
		q.Z*bw - q.Y*bx,
		q.W*bw - q.X*bx,
	}
}

// RotateY returns this quaternion rotated by the given angle (radians)
// about the y axis.
func (q Quat[T]) RotateY(angle T) Quat[T] {
	by, bw := Sincos(angle / 2)
	return Quat[T]{
		q.X*bw - q.Z*by,
		q.Y*bw + q.W*by,
		q.Z*bw + q.X*by,
		q.W*bw - q.Y*by,
	}
}

// RotateZ returns this quaternion rotated by the given angle (radians)
// about the z axis.
func (q Quat[T]) RotateZ(angle T) Quat[T] {
	bz, bw := Sincos(angle / 2)
	return Quat[T]{
		q.X*bw + q.Y*bz,
		q.Y*bw - q.X*bz,
		q.Z*bw + q.W*bz,
		q.W*bw - q.Z*bz,
	}
}

// SetConjugate sets this quaternion to its conjugate. The conjugate is the
// cheap equivalent of the inverse only when the quaternion is unit length.
func (q *Quat[T]) SetConjugate() {
	q.X = -q.X
	q.Y = -q.Y
	q.Z = -q.Z
}

// Conjugate returns the conjugate of this quaternion.
func (q Quat[T]) Conjugate() Quat[T] {
	nq := q
	nq.SetConjugate()
	return nq
}

// SetInverse sets this quaternion to its inverse, valid for non-unit
// quaternions. A zero quaternion stays zero.
func (q *Quat[T]) SetInverse() {
	d := q.LengthSquared()
	var id T
	if d != 0 {
		id = 1 / d
	}
	q.X = -q.X * id
	q.Y = -q.Y * id
	q.Z = -q.Z * id
	q.W = q.W * id
}

// Inverse returns the inverse of this quaternion.
func (q Quat[T]) Inverse() Quat[T] {
	nq := q
	nq.SetInverse()
	return nq
}

// Dot returns the dot product of this quaternion with other.
func (q Quat[T]) Dot(other Quat[T]) T {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// LengthSquared returns this quaternion's length squared.
func (q Quat[T]) LengthSquared() T {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Length returns the length of this quaternion.
func (q Quat[T]) Length() T {
	return Sqrt(q.LengthSquared())
}

// Normalize normalizes this quaternion to unit length.
// A zero quaternion becomes the identity.
func (q *Quat[T]) Normalize() {
	l := q.Length()
	if l == 0 {
		q.SetIdentity()
		return
	}
	l = 1 / l
	q.X *= l
	q.Y *= l
	q.Z *= l
	q.W *= l
}

// Normal returns this quaternion normalized to unit length.
func (q Quat[T]) Normal() Quat[T] {
	nq := q
	nq.Normalize()
	return nq
}

// MulQuats sets this quaternion to the Hamilton product a * b, which
// applies rotation b first and then a. The receiver may alias either input.
func (q *Quat[T]) MulQuats(a, b Quat[T]) {
	q.X = a.X*b.W + a.W*b.X + a.Y*b.Z - a.Z*b.Y
	q.Y = a.Y*b.W + a.W*b.Y + a.Z*b.X - a.X*b.Z
	q.Z = a.Z*b.W + a.W*b.Z + a.X*b.Y - a.Y*b.X
	q.W = a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z
}

// SetMul sets this quaternion to the multiplication of itself by other.
func (q *Quat[T]) SetMul(other Quat[T]) {
	q.MulQuats(*q, other)
}

// Mul returns the multiplication of this quaternion with other.
func (q Quat[T]) Mul(other Quat[T]) Quat[T] {
	nq := Quat[T]{}
	nq.MulQuats(q, other)
	return nq
}

// Exp returns the quaternion exponential of this (general, not necessarily
// unit) quaternion.
func (q Quat[T]) Exp() Quat[T] {
	r := Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	et := Exp(q.W)
	var s T
	if r > 0 {
		s = et * Sin(r) / r
	}
	return Quat[T]{q.X * s, q.Y * s, q.Z * s, et * Cos(r)}
}

// Log returns the quaternion natural logarithm of this (general, not
// necessarily unit) quaternion.
func (q Quat[T]) Log() Quat[T] {
	r := Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	var t T
	if r > 0 {
		t = Atan2(r, q.W) / r
	}
	return Quat[T]{q.X * t, q.Y * t, q.Z * t, 0.5 * Log(q.LengthSquared())}
}

// Pow returns this quaternion raised to the given real power, computed as
// exp(b * ln(q)).
func (q Quat[T]) Pow(b T) Quat[T] {
	l := q.Log()
	l.X *= b
	l.Y *= b
	l.Z *= b
	l.W *= b
	return l.Exp()
}

// Slerp returns the spherical linear interpolation from this quaternion to
// other at parameter t, traveling the shortest great-circle path (other is
// negated when the dot product is negative). Falls back to normalized
// linear interpolation when the quaternions are nearly coincident.
func (q Quat[T]) Slerp(other Quat[T], t T) Quat[T] {
	cosom := q.Dot(other)
	b := other
	if cosom < 0 {
		cosom = -cosom
		b.X = -b.X
		b.Y = -b.Y
		b.Z = -b.Z
		b.W = -b.W
	}
	var scale0, scale1 T
	if 1-cosom > Epsilon {
		omega := Acos(cosom)
		sinom := Sin(omega)
		scale0 = Sin((1-t)*omega) / sinom
		scale1 = Sin(t*omega) / sinom
	} else {
		// quaternions are nearly coincident: plain lerp is stable here
		scale0 = 1 - t
		scale1 = t
	}
	return Quat[T]{
		scale0*q.X + scale1*b.X,
		scale0*q.Y + scale1*b.Y,
		scale0*q.Z + scale1*b.Z,
		scale0*q.W + scale1*b.W,
	}
}

// Sqlerp returns the spherical spline interpolation through the four
// quaternions q, c1, c2, other at parameter t, composing two slerps with a
// final slerp at the quadratic blend factor 2t(1-t).
func (q Quat[T]) Sqlerp(c1, c2, other Quat[T], t T) Quat[T] {
	t1 := q.Slerp(other, t)
	t2 := c1.Slerp(c2, t)
	return t1.Slerp(t2, 2*t*(1-t))
}

// AngleTo returns the angle (radians) between this quaternion and other.
func (q Quat[T]) AngleTo(other Quat[T]) T {
	d := q.Dot(other)
	return Acos(Clamp(2*d*d-1, -1, 1))
}

// AlmostEqual reports whether this quaternion is approximately equal to
// other, testing each component pair with [Equal].
func (q Quat[T]) AlmostEqual(other Quat[T]) bool {
	return Equal(q.X, other.X) && Equal(q.Y, other.Y) &&
		Equal(q.Z, other.Z) && Equal(q.W, other.W)
}
