// Copyright 2026 The vmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vmath

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Matrix4 is a 4x4 matrix stored as a flat array in column-major order, so
// that index 4*col+row addresses the element at the given row and column,
// matching the memory layout expected by graphics shader uniforms.
type Matrix4[T constraints.Float] [16]T

// Identity4 returns a new 4x4 identity matrix.
func Identity4[T constraints.Float]() Matrix4[T] {
	m := Matrix4[T]{}
	m.SetIdentity()
	return m
}

// Matrix4Translation returns a new 4x4 matrix translating by the given vector.
func Matrix4Translation[T constraints.Float](v Vector3[T]) Matrix4[T] {
	m := Matrix4[T]{}
	m.SetTranslation(v)
	return m
}

// Matrix4Scaling returns a new 4x4 matrix scaling by the given vector.
func Matrix4Scaling[T constraints.Float](v Vector3[T]) Matrix4[T] {
	m := Matrix4[T]{}
	m.SetScaling(v)
	return m
}

// Matrix4Rotation returns a new 4x4 matrix rotating by the given angle
// (radians) around the given (normalized) axis.
func Matrix4Rotation[T constraints.Float](axis Vector3[T], angle T) Matrix4[T] {
	m := Matrix4[T]{}
	m.SetRotationAxis(axis, angle)
	return m
}

// Matrix4FromQuat returns a new 4x4 rotation matrix from the given
// (normalized) quaternion.
func Matrix4FromQuat[T constraints.Float](q Quat[T]) Matrix4[T] {
	m := Matrix4[T]{}
	m.SetFromQuat(q)
	return m
}

// NewLookAt returns a new view matrix looking from the eye position toward
// the center position, with the given up direction. See [Matrix4.SetLookAt].
func NewLookAt[T constraints.Float](eye, center, up Vector3[T]) *Matrix4[T] {
	m := &Matrix4[T]{}
	m.SetLookAt(eye, center, up)
	return m
}

// Set sets the matrix elements from individual values, in column-major order.
func (m *Matrix4[T]) Set(n0, n1, n2, n3, n4, n5, n6, n7, n8, n9, n10, n11, n12, n13, n14, n15 T) {
	m[0] = n0
	m[1] = n1
	m[2] = n2
	m[3] = n3
	m[4] = n4
	m[5] = n5
	m[6] = n6
	m[7] = n7
	m[8] = n8
	m[9] = n9
	m[10] = n10
	m[11] = n11
	m[12] = n12
	m[13] = n13
	m[14] = n14
	m[15] = n15
}

// SetIdentity sets this matrix to the identity matrix.
func (m *Matrix4[T]) SetIdentity() {
	m.Set(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// SetZero sets this matrix to all zeros.
func (m *Matrix4[T]) SetZero() {
	*m = Matrix4[T]{}
}

// SetFromMatrix3 sets the upper-left 3x3 sub-block of this matrix from the
// given 3x3 matrix, with the rest set to identity values.
func (m *Matrix4[T]) SetFromMatrix3(src *Matrix3[T]) {
	m.Set(
		src[0], src[1], src[2], 0,
		src[3], src[4], src[5], 0,
		src[6], src[7], src[8], 0,
		0, 0, 0, 1,
	)
}

// SetTranslation sets this matrix to a translation by the given vector.
func (m *Matrix4[T]) SetTranslation(v Vector3[T]) {
	m.Set(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		v.X, v.Y, v.Z, 1,
	)
}

// SetScaling sets this matrix to a scaling by the given vector.
func (m *Matrix4[T]) SetScaling(v Vector3[T]) {
	m.Set(
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	)
}

// SetRotationX sets this matrix to a rotation by the given angle (radians)
// around the x axis.
func (m *Matrix4[T]) SetRotationX(angle T) {
	s, c := Sincos(angle)
	m.Set(
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	)
}

// SetRotationY sets this matrix to a rotation by the given angle (radians)
// around the y axis.
func (m *Matrix4[T]) SetRotationY(angle T) {
	s, c := Sincos(angle)
	m.Set(
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// SetRotationZ sets this matrix to a rotation by the given angle (radians)
// around the z axis.
func (m *Matrix4[T]) SetRotationZ(angle T) {
	s, c := Sincos(angle)
	m.Set(
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// SetRotationAxis sets this matrix to a rotation by the given angle
// (radians) around the given (normalized) axis.
func (m *Matrix4[T]) SetRotationAxis(axis Vector3[T], angle T) {
	var m3 Matrix3[T]
	m3.SetRotationAxis(axis, angle)
	m.SetFromMatrix3(&m3)
}

// SetFromQuat sets this matrix to the rotation specified by the given
// (normalized) quaternion.
func (m *Matrix4[T]) SetFromQuat(q Quat[T]) {
	m3 := Matrix3FromQuat(q)
	m.SetFromMatrix3(&m3)
}

// SetFromQuatTranslation sets this matrix to the rigid transform that
// rotates by the given (normalized) quaternion and then translates by the
// given vector.
func (m *Matrix4[T]) SetFromQuatTranslation(q Quat[T], v Vector3[T]) {
	m.SetFromQuat(q)
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
}

// SetTransform sets this matrix to the transform that scales by scale,
// rotates by the given (normalized) quaternion, and then translates by pos.
func (m *Matrix4[T]) SetTransform(pos Vector3[T], rot Quat[T], scale Vector3[T]) {
	m.SetFromQuat(rot)
	m[0] *= scale.X
	m[1] *= scale.X
	m[2] *= scale.X
	m[4] *= scale.Y
	m[5] *= scale.Y
	m[6] *= scale.Y
	m[8] *= scale.Z
	m[9] *= scale.Z
	m[10] *= scale.Z
	m[12] = pos.X
	m[13] = pos.Y
	m[14] = pos.Z
}

// SetTransformOrigin sets this matrix like [Matrix4.SetTransform], but with
// the scale and rotation applied around the given origin point.
func (m *Matrix4[T]) SetTransformOrigin(pos Vector3[T], rot Quat[T], scale, origin Vector3[T]) {
	m.SetTransform(pos, rot, scale)
	m[12] = pos.X + origin.X - (m[0]*origin.X + m[4]*origin.Y + m[8]*origin.Z)
	m[13] = pos.Y + origin.Y - (m[1]*origin.X + m[5]*origin.Y + m[9]*origin.Z)
	m[14] = pos.Z + origin.Z - (m[2]*origin.X + m[6]*origin.Y + m[10]*origin.Z)
}

// GetTranslation returns the translation component of this matrix.
func (m *Matrix4[T]) GetTranslation() Vector3[T] {
	return Vector3[T]{m[12], m[13], m[14]}
}

// GetScaling returns the scale component of this matrix: the lengths of its
// three basis columns. The result is always non-negative; use
// [Matrix4.Decompose] to recover a mirrored axis.
func (m *Matrix4[T]) GetScaling() Vector3[T] {
	return Vector3[T]{
		Vector3[T]{m[0], m[1], m[2]}.Length(),
		Vector3[T]{m[4], m[5], m[6]}.Length(),
		Vector3[T]{m[8], m[9], m[10]}.Length(),
	}
}

// GetRotation returns the rotation component of this matrix as a
// quaternion, after removing any scaling.
func (m *Matrix4[T]) GetRotation() Quat[T] {
	_, q, _ := m.Decompose()
	return q
}

// Decompose decomposes this matrix into its translation, rotation
// quaternion, and scale components. A negative determinant indicates a
// mirroring transform; the x scale is negated to account for it so that
// pos, rot, and scale recompose to this matrix via [Matrix4.SetTransform].
func (m *Matrix4[T]) Decompose() (pos Vector3[T], rot Quat[T], scale Vector3[T]) {
	pos = m.GetTranslation()
	scale = m.GetScaling()
	if m.Determinant() < 0 {
		scale.X = -scale.X
	}
	sx := 1 / scale.X
	sy := 1 / scale.Y
	sz := 1 / scale.Z
	m3 := Matrix3[T]{
		m[0] * sx, m[1] * sx, m[2] * sx,
		m[4] * sy, m[5] * sy, m[6] * sy,
		m[8] * sz, m[9] * sz, m[10] * sz,
	}
	rot.SetFromRotationMatrix(&m3)
	return
}

// FromSlice sets this matrix from the given slice, starting at offset.
func (m *Matrix4[T]) FromSlice(array []T, offset int) {
	copy(m[:], array[offset:offset+16])
}

// ToSlice copies this matrix to the given slice, starting at offset.
func (m *Matrix4[T]) ToSlice(array []T, offset int) {
	copy(array[offset:offset+16], m[:])
}

func (m Matrix4[T]) String() string {
	return fmt.Sprintf("Matrix4(%v, %v, %v, %v, %v, %v, %v, %v, %v, %v, %v, %v, %v, %v, %v, %v)",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11], m[12], m[13], m[14], m[15])
}

// SetTranspose transposes this matrix in place.
// It is safe because overwritten elements are cached first.
func (m *Matrix4[T]) SetTranspose() {
	m[1], m[4] = m[4], m[1]
	m[2], m[8] = m[8], m[2]
	m[3], m[12] = m[12], m[3]
	m[6], m[9] = m[9], m[6]
	m[7], m[13] = m[13], m[7]
	m[11], m[14] = m[14], m[11]
}

// Transpose returns the transpose of this matrix.
func (m *Matrix4[T]) Transpose() Matrix4[T] {
	nm := *m
	nm.SetTranspose()
	return nm
}

// cofactor2 returns the twelve 2x2 sub-determinants used by the
// determinant, inverse, and adjugate computations.
func (m *Matrix4[T]) cofactor2() (b00, b01, b02, b03, b04, b05, b06, b07, b08, b09, b10, b11 T) {
	b00 = m[0]*m[5] - m[1]*m[4]
	b01 = m[0]*m[6] - m[2]*m[4]
	b02 = m[0]*m[7] - m[3]*m[4]
	b03 = m[1]*m[6] - m[2]*m[5]
	b04 = m[1]*m[7] - m[3]*m[5]
	b05 = m[2]*m[7] - m[3]*m[6]
	b06 = m[8]*m[13] - m[9]*m[12]
	b07 = m[8]*m[14] - m[10]*m[12]
	b08 = m[8]*m[15] - m[11]*m[12]
	b09 = m[9]*m[14] - m[10]*m[13]
	b10 = m[9]*m[15] - m[11]*m[13]
	b11 = m[10]*m[15] - m[11]*m[14]
	return
}

// Determinant returns the determinant of this matrix.
func (m *Matrix4[T]) Determinant() T {
	b00, b01, b02, b03, b04, b05, b06, b07, b08, b09, b10, b11 := m.cofactor2()
	return b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
}

// SetInverse sets this matrix to the inverse of the given matrix, which may
// be the receiver itself. If the matrix determinant is exactly zero, an
// error is returned and the receiver is left unmodified.
func (m *Matrix4[T]) SetInverse(src *Matrix4[T]) error {
	b00, b01, b02, b03, b04, b05, b06, b07, b08, b09, b10, b11 := src.cofactor2()
	det := b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
	if det == 0 {
		return errors.New("vmath.Matrix4: can't invert matrix, determinant is 0")
	}
	idet := 1 / det
	m.Set(
		(src[5]*b11-src[6]*b10+src[7]*b09)*idet,
		(src[2]*b10-src[1]*b11-src[3]*b09)*idet,
		(src[13]*b05-src[14]*b04+src[15]*b03)*idet,
		(src[10]*b04-src[9]*b05-src[11]*b03)*idet,
		(src[6]*b08-src[4]*b11-src[7]*b07)*idet,
		(src[0]*b11-src[2]*b08+src[3]*b07)*idet,
		(src[14]*b02-src[12]*b05-src[15]*b01)*idet,
		(src[8]*b05-src[10]*b02+src[11]*b01)*idet,
		(src[4]*b10-src[5]*b08+src[7]*b06)*idet,
		(src[1]*b08-src[0]*b10-src[3]*b06)*idet,
		(src[12]*b04-src[13]*b02+src[15]*b00)*idet,
		(src[9]*b02-src[8]*b04-src[11]*b00)*idet,
		(src[5]*b07-src[4]*b09-src[6]*b06)*idet,
		(src[0]*b09-src[1]*b07+src[2]*b06)*idet,
		(src[13]*b01-src[12]*b03-src[14]*b00)*idet,
		(src[8]*b03-src[9]*b01+src[10]*b00)*idet,
	)
	return nil
}

// Inverse returns the inverse of this matrix, or an error and the
// unmodified matrix if the determinant is exactly zero.
func (m *Matrix4[T]) Inverse() (Matrix4[T], error) {
	nm := *m
	err := nm.SetInverse(m)
	return nm, err
}

// SetAdjugate sets this matrix to the adjugate (classical adjoint) of the
// given matrix, which may be the receiver itself.
func (m *Matrix4[T]) SetAdjugate(src *Matrix4[T]) {
	b00, b01, b02, b03, b04, b05, b06, b07, b08, b09, b10, b11 := src.cofactor2()
	m.Set(
		src[5]*b11-src[6]*b10+src[7]*b09,
		src[2]*b10-src[1]*b11-src[3]*b09,
		src[13]*b05-src[14]*b04+src[15]*b03,
		src[10]*b04-src[9]*b05-src[11]*b03,
		src[6]*b08-src[4]*b11-src[7]*b07,
		src[0]*b11-src[2]*b08+src[3]*b07,
		src[14]*b02-src[12]*b05-src[15]*b01,
		src[8]*b05-src[10]*b02+src[11]*b01,
		src[4]*b10-src[5]*b08+src[7]*b06,
		src[1]*b08-src[0]*b10-src[3]*b06,
		src[12]*b04-src[13]*b02+src[15]*b00,
		src[9]*b02-src[8]*b04-src[11]*b00,
		src[5]*b07-src[4]*b09-src[6]*b06,
		src[0]*b09-src[1]*b07+src[2]*b06,
		src[13]*b01-src[12]*b03-src[14]*b00,
		src[8]*b03-src[9]*b01+src[10]*b00,
	)
}

// Adjugate returns the adjugate (classical adjoint) of this matrix.
func (m *Matrix4[T]) Adjugate() Matrix4[T] {
	nm := Matrix4[T]{}
	nm.SetAdjugate(m)
	return nm
}

// MulMatrices sets this matrix to the product a * b, which applies b first
// and then a when transforming column vectors. The receiver may alias
// either input.
func (m *Matrix4[T]) MulMatrices(a, b *Matrix4[T]) {
	a00, a01, a02, a03 := a[0], a[1], a[2], a[3]
	a10, a11, a12, a13 := a[4], a[5], a[6], a[7]
	a20, a21, a22, a23 := a[8], a[9], a[10], a[11]
	a30, a31, a32, a33 := a[12], a[13], a[14], a[15]

	for col := 0; col < 4; col++ {
		b0, b1, b2, b3 := b[4*col], b[4*col+1], b[4*col+2], b[4*col+3]
		m[4*col] = b0*a00 + b1*a10 + b2*a20 + b3*a30
		m[4*col+1] = b0*a01 + b1*a11 + b2*a21 + b3*a31
		m[4*col+2] = b0*a02 + b1*a12 + b2*a22 + b3*a32
		m[4*col+3] = b0*a03 + b1*a13 + b2*a23 + b3*a33
	}
}

// Mul returns this matrix multiplied by the other matrix (m * other).
func (m *Matrix4[T]) Mul(other *Matrix4[T]) Matrix4[T] {
	nm := Matrix4[T]{}
	nm.MulMatrices(m, other)
	return nm
}

// Translate post-multiplies this matrix by a translation of the given
// vector, equivalent to m = m * T.
func (m *Matrix4[T]) Translate(v Vector3[T]) {
	m[12] += m[0]*v.X + m[4]*v.Y + m[8]*v.Z
	m[13] += m[1]*v.X + m[5]*v.Y + m[9]*v.Z
	m[14] += m[2]*v.X + m[6]*v.Y + m[10]*v.Z
	m[15] += m[3]*v.X + m[7]*v.Y + m[11]*v.Z
}

// ScaleBy post-multiplies this matrix by a scaling of the given vector,
// equivalent to m = m * S.
func (m *Matrix4[T]) ScaleBy(v Vector3[T]) {
	s := Matrix4Scaling(v)
	m.MulMatrices(m, &s)
}

// RotateBy post-multiplies this matrix by a rotation of the given angle
// (radians) about the given axis, equivalent to m = m * R.
func (m *Matrix4[T]) RotateBy(axis Vector3[T], angle T) {
	r := Matrix4Rotation(axis, angle)
	m.MulMatrices(m, &r)
}

// MulScalar returns this matrix with each element multiplied by the scalar.
func (m *Matrix4[T]) MulScalar(s T) Matrix4[T] {
	nm := *m
	for i := range nm {
		nm[i] *= s
	}
	return nm
}

// Add returns the element-wise sum of this matrix and the other matrix.
func (m *Matrix4[T]) Add(other *Matrix4[T]) Matrix4[T] {
	nm := *m
	for i := range nm {
		nm[i] += other[i]
	}
	return nm
}

// Sub returns the element-wise difference of this matrix and the other matrix.
func (m *Matrix4[T]) Sub(other *Matrix4[T]) Matrix4[T] {
	nm := *m
	for i := range nm {
		nm[i] -= other[i]
	}
	return nm
}

// Norm returns the Frobenius norm of this matrix: the square root of the
// sum of squares of all elements.
func (m *Matrix4[T]) Norm() T {
	var sum T
	for _, x := range m {
		sum += x * x
	}
	return Sqrt(sum)
}

// AlmostEqual reports whether this matrix is approximately equal to other,
// testing each element pair with [Equal].
func (m *Matrix4[T]) AlmostEqual(other *Matrix4[T]) bool {
	for i := range m {
		if !Equal(m[i], other[i]) {
			return false
		}
	}
	return true
}

// Projection and view matrices:

// SetPerspective sets this matrix to a right-handed perspective projection
// with the given vertical field of view in degrees, aspect ratio
// (width / height), and near and far clipping planes. Passing positive
// infinity for far produces the infinite-far-plane limit of the projection.
func (m *Matrix4[T]) SetPerspective(fov, aspect, near, far T) {
	f := 1 / Tan(DegToRad(fov)/2)
	m.SetZero()
	m[0] = f / aspect
	m[5] = f
	m[11] = -1
	if math.IsInf(float64(far), 1) {
		m[10] = -1
		m[14] = -2 * near
	} else {
		nf := 1 / (near - far)
		m[10] = (far + near) * nf
		m[14] = 2 * far * near * nf
	}
}

// SetFrustum sets this matrix to a perspective projection with the given
// explicit frustum bounds at the near plane.
func (m *Matrix4[T]) SetFrustum(left, right, bottom, top, near, far T) {
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	nf := 1 / (near - far)
	m.SetZero()
	m[0] = 2 * near * rl
	m[5] = 2 * near * tb
	m[8] = (right + left) * rl
	m[9] = (top + bottom) * tb
	m[10] = (far + near) * nf
	m[11] = -1
	m[14] = 2 * far * near * nf
}

// SetOrtho sets this matrix to an orthographic projection with the given
// bounds and near and far clipping planes.
func (m *Matrix4[T]) SetOrtho(left, right, bottom, top, near, far T) {
	lr := 1 / (left - right)
	bt := 1 / (bottom - top)
	nf := 1 / (near - far)
	m.SetZero()
	m[0] = -2 * lr
	m[5] = -2 * bt
	m[10] = 2 * nf
	m[12] = (left + right) * lr
	m[13] = (top + bottom) * bt
	m[14] = (far + near) * nf
	m[15] = 1
}

// SetLookAt sets this matrix to a view matrix looking from the eye position
// toward the center position, with the given up direction. If eye and
// center are (nearly) the same point, the result is the identity matrix.
func (m *Matrix4[T]) SetLookAt(eye, center, up Vector3[T]) {
	if Abs(eye.X-center.X) < Epsilon &&
		Abs(eye.Y-center.Y) < Epsilon &&
		Abs(eye.Z-center.Z) < Epsilon {
		m.SetIdentity()
		return
	}
	z := eye.Sub(center).Normal()
	x := up.Cross(z)
	if l := x.Length(); l == 0 {
		x.SetZero()
	} else {
		x.SetDivScalar(l)
	}
	y := z.Cross(x)
	if l := y.Length(); l == 0 {
		y.SetZero()
	} else {
		y.SetDivScalar(l)
	}
	m.Set(
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	)
}

// SetTargetTo sets this matrix to a world matrix positioned at eye and
// oriented toward the target, with the given up direction. Unlike
// [Matrix4.SetLookAt], the derived vertical axis is not re-normalized,
// trading orthonormality in skewed cases for speed.
func (m *Matrix4[T]) SetTargetTo(eye, target, up Vector3[T]) {
	z := eye.Sub(target)
	if l := z.LengthSquared(); l > 0 {
		z.SetMulScalar(1 / Sqrt(l))
	}
	x := up.Cross(z)
	if l := x.LengthSquared(); l > 0 {
		x.SetMulScalar(1 / Sqrt(l))
	}
	y := z.Cross(x)
	m.Set(
		x.X, x.Y, x.Z, 0,
		y.X, y.Y, y.Z, 0,
		z.X, z.Y, z.Z, 0,
		eye.X, eye.Y, eye.Z, 1,
	)
}
