// Copyright 2026 The vmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vmath

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// DualQuat is a dual quaternion representing a rigid transform (rotation
// plus translation) with no scale or shear. Real holds the rotation and
// Dual encodes the translation as 0.5 * t * Real, where t is the
// translation as a pure quaternion.
type DualQuat[T constraints.Float] struct {
	Real Quat[T]
	Dual Quat[T]
}

// NewDualQuat returns a new dual quaternion from the given real and dual
// parts.
func NewDualQuat[T constraints.Float](real, dual Quat[T]) DualQuat[T] {
	return DualQuat[T]{Real: real, Dual: dual}
}

// DualQuatIdentity returns a new identity dual quaternion, representing no
// rotation and no translation.
func DualQuatIdentity[T constraints.Float]() DualQuat[T] {
	return DualQuat[T]{Real: QuatIdentity[T]()}
}

// NewDualQuatRotationTranslation returns a new dual quaternion from the
// given unit rotation quaternion and translation vector.
func NewDualQuatRotationTranslation[T constraints.Float](q Quat[T], t Vector3[T]) DualQuat[T] {
	dq := DualQuat[T]{}
	dq.SetFromRotationTranslation(q, t)
	return dq
}

// NewDualQuatRotation returns a new dual quaternion from the given unit
// rotation quaternion, with zero translation.
func NewDualQuatRotation[T constraints.Float](q Quat[T]) DualQuat[T] {
	return DualQuat[T]{Real: q}
}

// NewDualQuatTranslation returns a new dual quaternion from the given
// translation vector, with no rotation.
func NewDualQuatTranslation[T constraints.Float](t Vector3[T]) DualQuat[T] {
	return DualQuat[T]{
		Real: QuatIdentity[T](),
		Dual: Quat[T]{X: t.X / 2, Y: t.Y / 2, Z: t.Z / 2},
	}
}

// SetIdentity sets this dual quaternion to the identity.
func (dq *DualQuat[T]) SetIdentity() {
	dq.Real = QuatIdentity[T]()
	dq.Dual = Quat[T]{}
}

// SetFromRotationTranslation sets this dual quaternion from the given unit
// rotation quaternion and translation vector.
func (dq *DualQuat[T]) SetFromRotationTranslation(q Quat[T], t Vector3[T]) {
	dq.Real = q
	dq.Dual.X = 0.5 * (t.X*q.W + t.Y*q.Z - t.Z*q.Y)
	dq.Dual.Y = 0.5 * (t.Y*q.W + t.Z*q.X - t.X*q.Z)
	dq.Dual.Z = 0.5 * (t.Z*q.W + t.X*q.Y - t.Y*q.X)
	dq.Dual.W = -0.5 * (t.X*q.X + t.Y*q.Y + t.Z*q.Z)
}

// SetFromMatrix4 sets this dual quaternion from the rotation and
// translation of the given rigid transform matrix.
func (dq *DualQuat[T]) SetFromMatrix4(m *Matrix4[T]) {
	dq.SetFromRotationTranslation(m.GetRotation(), m.GetTranslation())
}

// GetTranslation returns the translation of this (normalized) dual
// quaternion, computed as 2 * Dual * conj(Real).
func (dq DualQuat[T]) GetTranslation() Vector3[T] {
	ax, ay, az, aw := dq.Dual.X, dq.Dual.Y, dq.Dual.Z, dq.Dual.W
	bx, by, bz, bw := -dq.Real.X, -dq.Real.Y, -dq.Real.Z, dq.Real.W
	return Vector3[T]{
		X: 2 * (ax*bw + aw*bx + ay*bz - az*by),
		Y: 2 * (ay*bw + aw*by + az*bx - ax*bz),
		Z: 2 * (az*bw + aw*bz + ax*by - ay*bx),
	}
}

// Matrix4 returns the rigid transform matrix equivalent to this
// (normalized) dual quaternion.
func (dq DualQuat[T]) Matrix4() Matrix4[T] {
	m := Matrix4[T]{}
	m.SetFromQuatTranslation(dq.Real, dq.GetTranslation())
	return m
}

// FromSlice sets this dual quaternion's components from the given slice,
// real part first, starting at offset.
func (dq *DualQuat[T]) FromSlice(array []T, offset int) {
	dq.Real.FromSlice(array, offset)
	dq.Dual.FromSlice(array, offset+4)
}

// ToSlice copies this dual quaternion's components to the given slice,
// real part first, starting at offset.
func (dq DualQuat[T]) ToSlice(array []T, offset int) {
	dq.Real.ToSlice(array, offset)
	dq.Dual.ToSlice(array, offset+4)
}

func (dq DualQuat[T]) String() string {
	return fmt.Sprintf("DualQuat(%v, %v)", dq.Real, dq.Dual)
}

// MulDualQuats sets this dual quaternion to a * b, applying transform b
// first and then a. The receiver may alias either input.
func (dq *DualQuat[T]) MulDualQuats(a, b DualQuat[T]) {
	var real, d1, d2 Quat[T]
	real.MulQuats(a.Real, b.Real)
	d1.MulQuats(a.Real, b.Dual)
	d2.MulQuats(a.Dual, b.Real)
	dq.Real = real
	dq.Dual = Quat[T]{d1.X + d2.X, d1.Y + d2.Y, d1.Z + d2.Z, d1.W + d2.W}
}

// SetMul sets this dual quaternion to the multiplication of itself by other.
func (dq *DualQuat[T]) SetMul(other DualQuat[T]) {
	dq.MulDualQuats(*dq, other)
}

// Mul returns the multiplication of this dual quaternion with other.
func (dq DualQuat[T]) Mul(other DualQuat[T]) DualQuat[T] {
	ndq := DualQuat[T]{}
	ndq.MulDualQuats(dq, other)
	return ndq
}

// MulScalar returns this dual quaternion with each of its eight components
// multiplied by the scalar s.
func (dq DualQuat[T]) MulScalar(s T) DualQuat[T] {
	return DualQuat[T]{
		Real: Quat[T]{dq.Real.X * s, dq.Real.Y * s, dq.Real.Z * s, dq.Real.W * s},
		Dual: Quat[T]{dq.Dual.X * s, dq.Dual.Y * s, dq.Dual.Z * s, dq.Dual.W * s},
	}
}

// Add returns the componentwise sum of this dual quaternion and other.
func (dq DualQuat[T]) Add(other DualQuat[T]) DualQuat[T] {
	return DualQuat[T]{
		Real: Quat[T]{dq.Real.X + other.Real.X, dq.Real.Y + other.Real.Y, dq.Real.Z + other.Real.Z, dq.Real.W + other.Real.W},
		Dual: Quat[T]{dq.Dual.X + other.Dual.X, dq.Dual.Y + other.Dual.Y, dq.Dual.Z + other.Dual.Z, dq.Dual.W + other.Dual.W},
	}
}

// Dot returns the dot product of the real parts of this dual quaternion
// and other.
func (dq DualQuat[T]) Dot(other DualQuat[T]) T {
	return dq.Real.Dot(other.Real)
}

// Length returns the length of this dual quaternion, which is the length
// of its real part.
func (dq DualQuat[T]) Length() T {
	return dq.Real.Length()
}

// LengthSquared returns the squared length of this dual quaternion's real
// part.
func (dq DualQuat[T]) LengthSquared() T {
	return dq.Real.LengthSquared()
}

// SetConjugate sets this dual quaternion to its conjugate, which is the
// inverse when the dual quaternion is normalized.
func (dq *DualQuat[T]) SetConjugate() {
	dq.Real.SetConjugate()
	dq.Dual.SetConjugate()
}

// Conjugate returns the conjugate of this dual quaternion.
func (dq DualQuat[T]) Conjugate() DualQuat[T] {
	ndq := dq
	ndq.SetConjugate()
	return ndq
}

// SetInverse sets this dual quaternion to its inverse, valid when the real
// part is non-zero. A zero real part leaves the value unusable, matching
// quaternion inversion of zero.
func (dq *DualQuat[T]) SetInverse() {
	sqlen := dq.Real.LengthSquared()
	var inv T
	if sqlen != 0 {
		inv = 1 / sqlen
	}
	dq.Real = Quat[T]{-dq.Real.X * inv, -dq.Real.Y * inv, -dq.Real.Z * inv, dq.Real.W * inv}
	dq.Dual = Quat[T]{-dq.Dual.X * inv, -dq.Dual.Y * inv, -dq.Dual.Z * inv, dq.Dual.W * inv}
}

// Inverse returns the inverse of this dual quaternion.
func (dq DualQuat[T]) Inverse() DualQuat[T] {
	ndq := dq
	ndq.SetInverse()
	return ndq
}

// Normalize normalizes this dual quaternion: the real part is scaled to
// unit length, and the dual part is scaled the same and then corrected to
// stay orthogonal to the real part. A zero real part becomes the identity.
func (dq *DualQuat[T]) Normalize() {
	magnitude := dq.Real.LengthSquared()
	if magnitude == 0 {
		dq.SetIdentity()
		return
	}
	magnitude = Sqrt(magnitude)
	dq.Real = Quat[T]{dq.Real.X / magnitude, dq.Real.Y / magnitude, dq.Real.Z / magnitude, dq.Real.W / magnitude}
	dq.Dual = Quat[T]{dq.Dual.X / magnitude, dq.Dual.Y / magnitude, dq.Dual.Z / magnitude, dq.Dual.W / magnitude}
	aDotB := dq.Real.Dot(dq.Dual)
	dq.Dual.X -= dq.Real.X * aDotB
	dq.Dual.Y -= dq.Real.Y * aDotB
	dq.Dual.Z -= dq.Real.Z * aDotB
	dq.Dual.W -= dq.Real.W * aDotB
}

// Normal returns this dual quaternion normalized.
func (dq DualQuat[T]) Normal() DualQuat[T] {
	ndq := dq
	ndq.Normalize()
	return ndq
}

// Translate returns this dual quaternion translated by the given vector in
// world space.
func (dq DualQuat[T]) Translate(v Vector3[T]) DualQuat[T] {
	ax1, ay1, az1, aw1 := dq.Real.X, dq.Real.Y, dq.Real.Z, dq.Real.W
	bx1, by1, bz1 := v.X/2, v.Y/2, v.Z/2
	return DualQuat[T]{
		Real: dq.Real,
		Dual: Quat[T]{
			aw1*bx1 + ay1*bz1 - az1*by1 + dq.Dual.X,
			aw1*by1 + az1*bx1 - ax1*bz1 + dq.Dual.Y,
			aw1*bz1 + ax1*by1 - ay1*bx1 + dq.Dual.Z,
			-ax1*bx1 - ay1*by1 - az1*bz1 + dq.Dual.W,
		},
	}
}

// RotateX returns this dual quaternion rotated by the given angle
// (radians) about the x axis, keeping the translation fixed.
func (dq DualQuat[T]) RotateX(angle T) DualQuat[T] {
	return dq.rotated(dq.Real.RotateX(angle))
}

// RotateY returns this dual quaternion rotated by the given angle
// (radians) about the y axis, keeping the translation fixed.
func (dq DualQuat[T]) RotateY(angle T) DualQuat[T] {
	return dq.rotated(dq.Real.RotateY(angle))
}

// RotateZ returns this dual quaternion rotated by the given angle
// (radians) about the z axis, keeping the translation fixed.
func (dq DualQuat[T]) RotateZ(angle T) DualQuat[T] {
	return dq.rotated(dq.Real.RotateZ(angle))
}

// rotated rebuilds this dual quaternion with the given new real part,
// preserving the current translation.
func (dq DualQuat[T]) rotated(real Quat[T]) DualQuat[T] {
	t := dq.GetTranslation()
	ndq := DualQuat[T]{}
	ndq.SetFromRotationTranslation(real, t)
	return ndq
}

// RotateAroundAxis returns this dual quaternion rotated by the given angle
// (radians) about the given axis, which need not be normalized. Angles
// within tolerance of zero return the value unchanged rather than risking
// a divide by a near-zero axis projection.
func (dq DualQuat[T]) RotateAroundAxis(axis Vector3[T], angle T) DualQuat[T] {
	if Abs(angle) < Epsilon {
		return dq
	}
	axisLength := axis.Length()
	s := Sin(angle / 2)
	b := Quat[T]{
		s * axis.X / axisLength,
		s * axis.Y / axisLength,
		s * axis.Z / axisLength,
		Cos(angle / 2),
	}
	var ndq DualQuat[T]
	ndq.Real.MulQuats(dq.Real, b)
	ndq.Dual.MulQuats(dq.Dual, b)
	return ndq
}

// RotateByQuatAppend returns this dual quaternion with the given rotation
// applied before it (multiplied on the right).
func (dq DualQuat[T]) RotateByQuatAppend(q Quat[T]) DualQuat[T] {
	var ndq DualQuat[T]
	ndq.Real.MulQuats(dq.Real, q)
	ndq.Dual.MulQuats(dq.Dual, q)
	return ndq
}

// RotateByQuatPrepend returns this dual quaternion with the given rotation
// applied after it (multiplied on the left).
func (dq DualQuat[T]) RotateByQuatPrepend(q Quat[T]) DualQuat[T] {
	var ndq DualQuat[T]
	ndq.Real.MulQuats(q, dq.Real)
	ndq.Dual.MulQuats(q, dq.Dual)
	return ndq
}

// Lerp returns the linear interpolation from this dual quaternion to other
// at parameter t, negating other's contribution when the real parts point
// in opposite hemispheres so the blend takes the short way around.
func (dq DualQuat[T]) Lerp(other DualQuat[T], t T) DualQuat[T] {
	mt := 1 - t
	if dq.Dot(other) < 0 {
		t = -t
	}
	return DualQuat[T]{
		Real: Quat[T]{
			dq.Real.X*mt + other.Real.X*t,
			dq.Real.Y*mt + other.Real.Y*t,
			dq.Real.Z*mt + other.Real.Z*t,
			dq.Real.W*mt + other.Real.W*t,
		},
		Dual: Quat[T]{
			dq.Dual.X*mt + other.Dual.X*t,
			dq.Dual.Y*mt + other.Dual.Y*t,
			dq.Dual.Z*mt + other.Dual.Z*t,
			dq.Dual.W*mt + other.Dual.W*t,
		},
	}
}

// AlmostEqual reports whether this dual quaternion is approximately equal
// to other, testing each component pair with [Equal].
func (dq DualQuat[T]) AlmostEqual(other DualQuat[T]) bool {
	return dq.Real.AlmostEqual(other.Real) && dq.Dual.AlmostEqual(other.Dual)
}
