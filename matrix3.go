// Copyright 2026 The vmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vmath

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Matrix3 is a 3x3 matrix stored as a flat array in column-major order, so
// that index 3*col+row addresses the element at the given row and column.
// It is used both as a rotation matrix in 3D and as a homogeneous 2D
// transformation matrix.
type Matrix3[T constraints.Float] [9]T

// Identity3 returns a new 3x3 identity matrix.
func Identity3[T constraints.Float]() Matrix3[T] {
	m := Matrix3[T]{}
	m.SetIdentity()
	return m
}

// Matrix3FromMatrix4 returns a new 3x3 matrix from the upper-left 3x3
// sub-block of the given 4x4 matrix.
func Matrix3FromMatrix4[T constraints.Float](src *Matrix4[T]) Matrix3[T] {
	m := Matrix3[T]{}
	m.SetFromMatrix4(src)
	return m
}

// Matrix3FromQuat returns a new 3x3 rotation matrix from the given
// (normalized) quaternion.
func Matrix3FromQuat[T constraints.Float](q Quat[T]) Matrix3[T] {
	m := Matrix3[T]{}
	m.SetFromQuat(q)
	return m
}

// Matrix3FromAffine2 returns a new homogeneous 3x3 matrix from the given
// 2D affine matrix.
func Matrix3FromAffine2[T constraints.Float](a Affine2[T]) Matrix3[T] {
	return Matrix3[T]{
		a.XX, a.YX, 0,
		a.XY, a.YY, 0,
		a.X0, a.Y0, 1,
	}
}

// Matrix3Translate2D returns a new homogeneous 3x3 matrix translating by
// the given x and y.
func Matrix3Translate2D[T constraints.Float](x, y T) Matrix3[T] {
	return Matrix3FromAffine2(Translate2D(x, y))
}

// Matrix3Scale2D returns a new homogeneous 3x3 matrix scaling by the given
// x and y factors.
func Matrix3Scale2D[T constraints.Float](x, y T) Matrix3[T] {
	return Matrix3FromAffine2(Scale2D(x, y))
}

// Matrix3Rotate2D returns a new homogeneous 3x3 matrix rotating by the
// given angle (radians, counterclockwise).
func Matrix3Rotate2D[T constraints.Float](angle T) Matrix3[T] {
	return Matrix3FromAffine2(Rotate2D(angle))
}

// Matrix3Projection2D returns a new 3x3 matrix mapping the pixel rectangle
// (0, 0, width, height) to normalized device coordinates with y flipped,
// for use with 2D shader pipelines.
func Matrix3Projection2D[T constraints.Float](width, height T) Matrix3[T] {
	return Matrix3[T]{
		2 / width, 0, 0,
		0, -2 / height, 0,
		-1, 1, 1,
	}
}

// Set sets the matrix elements from individual values, in column-major order.
func (m *Matrix3[T]) Set(n0, n1, n2, n3, n4, n5, n6, n7, n8 T) {
	m[0] = n0
	m[1] = n1
	m[2] = n2
	m[3] = n3
	m[4] = n4
	m[5] = n5
	m[6] = n6
	m[7] = n7
	m[8] = n8
}

// SetIdentity sets this matrix to the identity matrix.
func (m *Matrix3[T]) SetIdentity() {
	m.Set(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
}

// SetZero sets this matrix to all zeros.
func (m *Matrix3[T]) SetZero() {
	*m = Matrix3[T]{}
}

// SetFromMatrix4 sets this matrix from the upper-left 3x3 sub-block of the
// given 4x4 matrix.
func (m *Matrix3[T]) SetFromMatrix4(src *Matrix4[T]) {
	m.Set(
		src[0], src[1], src[2],
		src[4], src[5], src[6],
		src[8], src[9], src[10],
	)
}

// SetFromQuat sets this matrix to the rotation specified by the given
// (normalized) quaternion.
func (m *Matrix3[T]) SetFromQuat(q Quat[T]) {
	x2 := q.X + q.X
	y2 := q.Y + q.Y
	z2 := q.Z + q.Z
	xx := q.X * x2
	yx := q.Y * x2
	yy := q.Y * y2
	zx := q.Z * x2
	zy := q.Z * y2
	zz := q.Z * z2
	wx := q.W * x2
	wy := q.W * y2
	wz := q.W * z2
	m.Set(
		1-yy-zz, yx+wz, zx-wy,
		yx-wz, 1-xx-zz, zy+wx,
		zx+wy, zy-wx, 1-xx-yy,
	)
}

// SetRotationAxis sets this matrix to a rotation by the given angle
// (radians) around the given (normalized) axis.
func (m *Matrix3[T]) SetRotationAxis(axis Vector3[T], angle T) {
	s, c := Sincos(angle)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z
	m.Set(
		t*x*x+c, t*x*y+s*z, t*x*z-s*y,
		t*x*y-s*z, t*y*y+c, t*y*z+s*x,
		t*x*z+s*y, t*y*z-s*x, t*z*z+c,
	)
}

// SetNormalMatrix sets this matrix to the normal matrix of the given 4x4
// model-view matrix: the transpose of the inverse of its upper-left 3x3
// sub-block, used to transform surface normals. An error is returned when
// the sub-block is not invertible, leaving the receiver unmodified.
func (m *Matrix3[T]) SetNormalMatrix(src *Matrix4[T]) error {
	nm := Matrix3FromMatrix4(src)
	err := nm.SetInverse(&nm)
	if err != nil {
		return err
	}
	nm.SetTranspose()
	*m = nm
	return nil
}

// FromSlice sets this matrix from the given slice, starting at offset.
func (m *Matrix3[T]) FromSlice(array []T, offset int) {
	copy(m[:], array[offset:offset+9])
}

// ToSlice copies this matrix to the given slice, starting at offset.
func (m *Matrix3[T]) ToSlice(array []T, offset int) {
	copy(array[offset:offset+9], m[:])
}

func (m Matrix3[T]) String() string {
	return fmt.Sprintf("Matrix3(%v, %v, %v, %v, %v, %v, %v, %v, %v)",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// SetTranspose transposes this matrix in place.
// It is safe because overwritten elements are cached first.
func (m *Matrix3[T]) SetTranspose() {
	m[1], m[3] = m[3], m[1]
	m[2], m[6] = m[6], m[2]
	m[5], m[7] = m[7], m[5]
}

// Transpose returns the transpose of this matrix.
func (m *Matrix3[T]) Transpose() Matrix3[T] {
	nm := *m
	nm.SetTranspose()
	return nm
}

// Determinant returns the determinant of this matrix.
func (m *Matrix3[T]) Determinant() T {
	return m[0]*(m[8]*m[4]-m[5]*m[7]) -
		m[3]*(m[8]*m[1]-m[5]*m[2]) +
		m[6]*(m[7]*m[1]-m[4]*m[2])
}

// SetInverse sets this matrix to the inverse of the given matrix, which may
// be the receiver itself. If the matrix determinant is exactly zero, an
// error is returned and the receiver is left unmodified.
func (m *Matrix3[T]) SetInverse(src *Matrix3[T]) error {
	b01 := src[8]*src[4] - src[5]*src[7]
	b11 := -src[8]*src[3] + src[5]*src[6]
	b21 := src[7]*src[3] - src[4]*src[6]

	det := src[0]*b01 + src[1]*b11 + src[2]*b21
	if det == 0 {
		return errors.New("vmath.Matrix3: can't invert matrix, determinant is 0")
	}
	idet := 1 / det
	m.Set(
		b01*idet,
		(-src[8]*src[1]+src[2]*src[7])*idet,
		(src[5]*src[1]-src[2]*src[4])*idet,
		b11*idet,
		(src[8]*src[0]-src[2]*src[6])*idet,
		(-src[5]*src[0]+src[2]*src[3])*idet,
		b21*idet,
		(-src[7]*src[0]+src[1]*src[6])*idet,
		(src[4]*src[0]-src[1]*src[3])*idet,
	)
	return nil
}

// Inverse returns the inverse of this matrix, or an error and the
// unmodified matrix if the determinant is exactly zero.
func (m *Matrix3[T]) Inverse() (Matrix3[T], error) {
	nm := *m
	err := nm.SetInverse(m)
	return nm, err
}

// SetAdjugate sets this matrix to the adjugate (classical adjoint) of the
// given matrix, which may be the receiver itself.
func (m *Matrix3[T]) SetAdjugate(src *Matrix3[T]) {
	a00, a01, a02 := src[0], src[1], src[2]
	a10, a11, a12 := src[3], src[4], src[5]
	a20, a21, a22 := src[6], src[7], src[8]
	m.Set(
		a11*a22-a12*a21,
		a02*a21-a01*a22,
		a01*a12-a02*a11,
		a12*a20-a10*a22,
		a00*a22-a02*a20,
		a02*a10-a00*a12,
		a10*a21-a11*a20,
		a01*a20-a00*a21,
		a00*a11-a01*a10,
	)
}

// Adjugate returns the adjugate (classical adjoint) of this matrix.
func (m *Matrix3[T]) Adjugate() Matrix3[T] {
	nm := Matrix3[T]{}
	nm.SetAdjugate(m)
	return nm
}

// MulMatrices sets this matrix to the product a * b, which applies b first
// and then a when transforming column vectors. The receiver may alias
// either input.
func (m *Matrix3[T]) MulMatrices(a, b *Matrix3[T]) {
	a00, a01, a02 := a[0], a[1], a[2]
	a10, a11, a12 := a[3], a[4], a[5]
	a20, a21, a22 := a[6], a[7], a[8]

	b00, b01, b02 := b[0], b[1], b[2]
	b10, b11, b12 := b[3], b[4], b[5]
	b20, b21, b22 := b[6], b[7], b[8]

	m.Set(
		b00*a00+b01*a10+b02*a20,
		b00*a01+b01*a11+b02*a21,
		b00*a02+b01*a12+b02*a22,
		b10*a00+b11*a10+b12*a20,
		b10*a01+b11*a11+b12*a21,
		b10*a02+b11*a12+b12*a22,
		b20*a00+b21*a10+b22*a20,
		b20*a01+b21*a11+b22*a21,
		b20*a02+b21*a12+b22*a22,
	)
}

// Mul returns this matrix multiplied by the other matrix (m * other).
func (m *Matrix3[T]) Mul(other *Matrix3[T]) Matrix3[T] {
	nm := Matrix3[T]{}
	nm.MulMatrices(m, other)
	return nm
}

// MulVector2AsPoint returns the given 2D point, with an implicit 1 in the
// third slot, multiplied by this matrix.
func (m *Matrix3[T]) MulVector2AsPoint(v Vector2[T]) Vector2[T] {
	return v.MulMatrix3(m)
}

// MulScalar returns this matrix with each element multiplied by the scalar.
func (m *Matrix3[T]) MulScalar(s T) Matrix3[T] {
	nm := *m
	for i := range nm {
		nm[i] *= s
	}
	return nm
}

// Add returns the element-wise sum of this matrix and the other matrix.
func (m *Matrix3[T]) Add(other *Matrix3[T]) Matrix3[T] {
	nm := *m
	for i := range nm {
		nm[i] += other[i]
	}
	return nm
}

// Sub returns the element-wise difference of this matrix and the other matrix.
func (m *Matrix3[T]) Sub(other *Matrix3[T]) Matrix3[T] {
	nm := *m
	for i := range nm {
		nm[i] -= other[i]
	}
	return nm
}

// Norm returns the Frobenius norm of this matrix: the square root of the
// sum of squares of all elements.
func (m *Matrix3[T]) Norm() T {
	var sum T
	for _, x := range m {
		sum += x * x
	}
	return Sqrt(sum)
}

// AlmostEqual reports whether this matrix is approximately equal to other,
// testing each element pair with [Equal].
func (m *Matrix3[T]) AlmostEqual(other *Matrix3[T]) bool {
	for i := range m {
		if !Equal(m[i], other[i]) {
			return false
		}
	}
	return true
}
