// Copyright 2026 The vmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vmath

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Matrix2 is a 2x2 linear transformation matrix stored as a flat array in
// column-major order, so that index 2*col+row addresses the element at the
// given row and column.
type Matrix2[T constraints.Float] [4]T

// Identity2 returns a new 2x2 identity matrix.
func Identity2[T constraints.Float]() Matrix2[T] {
	m := Matrix2[T]{}
	m.SetIdentity()
	return m
}

// Matrix2Rotation returns a new 2x2 matrix rotating by the given angle (radians).
func Matrix2Rotation[T constraints.Float](angle T) Matrix2[T] {
	m := Matrix2[T]{}
	m.SetRotation(angle)
	return m
}

// Matrix2Scaling returns a new 2x2 matrix scaling by the given vector.
func Matrix2Scaling[T constraints.Float](v Vector2[T]) Matrix2[T] {
	m := Matrix2[T]{}
	m.SetScaling(v)
	return m
}

// Set sets the matrix elements from individual values, in column-major order.
func (m *Matrix2[T]) Set(n0, n1, n2, n3 T) {
	m[0] = n0
	m[1] = n1
	m[2] = n2
	m[3] = n3
}

// SetIdentity sets this matrix to the identity matrix.
func (m *Matrix2[T]) SetIdentity() {
	m.Set(
		1, 0,
		0, 1,
	)
}

// SetZero sets this matrix to all zeros.
func (m *Matrix2[T]) SetZero() {
	m.Set(
		0, 0,
		0, 0,
	)
}

// SetRotation sets this matrix to a rotation by the given angle (radians,
// counterclockwise).
func (m *Matrix2[T]) SetRotation(angle T) {
	s, c := Sincos(angle)
	m.Set(
		c, s,
		-s, c,
	)
}

// SetScaling sets this matrix to a scaling by the given vector.
func (m *Matrix2[T]) SetScaling(v Vector2[T]) {
	m.Set(
		v.X, 0,
		0, v.Y,
	)
}

// FromSlice sets this matrix from the given slice, starting at offset.
func (m *Matrix2[T]) FromSlice(array []T, offset int) {
	copy(m[:], array[offset:offset+4])
}

// ToSlice copies this matrix to the given slice, starting at offset.
func (m *Matrix2[T]) ToSlice(array []T, offset int) {
	copy(array[offset:offset+4], m[:])
}

func (m Matrix2[T]) String() string {
	return fmt.Sprintf("Matrix2(%v, %v, %v, %v)", m[0], m[1], m[2], m[3])
}

// SetTranspose transposes this matrix in place.
// It is safe because the overwritten element is cached first.
func (m *Matrix2[T]) SetTranspose() {
	m[1], m[2] = m[2], m[1]
}

// Transpose returns the transpose of this matrix.
func (m *Matrix2[T]) Transpose() Matrix2[T] {
	nm := *m
	nm.SetTranspose()
	return nm
}

// Determinant returns the determinant of this matrix.
func (m *Matrix2[T]) Determinant() T {
	return m[0]*m[3] - m[2]*m[1]
}

// SetInverse sets this matrix to the inverse of the given matrix,
// which may be the receiver itself. If the matrix determinant is exactly
// zero, an error is returned and the receiver is left unmodified.
func (m *Matrix2[T]) SetInverse(src *Matrix2[T]) error {
	det := src.Determinant()
	if det == 0 {
		return errors.New("vmath.Matrix2: can't invert matrix, determinant is 0")
	}
	idet := 1 / det
	m.Set(
		src[3]*idet, -src[1]*idet,
		-src[2]*idet, src[0]*idet,
	)
	return nil
}

// Inverse returns the inverse of this matrix, or an error and the
// unmodified matrix if the determinant is exactly zero.
func (m *Matrix2[T]) Inverse() (Matrix2[T], error) {
	nm := *m
	err := nm.SetInverse(m)
	return nm, err
}

// SetAdjugate sets this matrix to the adjugate (classical adjoint) of the
// given matrix, which may be the receiver itself.
func (m *Matrix2[T]) SetAdjugate(src *Matrix2[T]) {
	m.Set(
		src[3], -src[1],
		-src[2], src[0],
	)
}

// Adjugate returns the adjugate (classical adjoint) of this matrix.
func (m *Matrix2[T]) Adjugate() Matrix2[T] {
	nm := Matrix2[T]{}
	nm.SetAdjugate(m)
	return nm
}

// MulMatrices sets this matrix to the product a * b, which applies b first
// and then a when transforming column vectors. The receiver may alias
// either input.
func (m *Matrix2[T]) MulMatrices(a, b *Matrix2[T]) {
	a0, a1, a2, a3 := a[0], a[1], a[2], a[3]
	b0, b1, b2, b3 := b[0], b[1], b[2], b[3]
	m.Set(
		a0*b0+a2*b1, a1*b0+a3*b1,
		a0*b2+a2*b3, a1*b2+a3*b3,
	)
}

// Mul returns this matrix multiplied by the other matrix (m * other).
func (m *Matrix2[T]) Mul(other *Matrix2[T]) Matrix2[T] {
	nm := Matrix2[T]{}
	nm.MulMatrices(m, other)
	return nm
}

// RotateBy post-multiplies this matrix by a rotation of the given angle
// (radians), equivalent to m = m * R.
func (m *Matrix2[T]) RotateBy(angle T) {
	r := Matrix2Rotation(angle)
	m.MulMatrices(m, &r)
}

// ScaleBy post-multiplies this matrix by a scaling of the given vector,
// equivalent to m = m * S.
func (m *Matrix2[T]) ScaleBy(v Vector2[T]) {
	s := Matrix2Scaling(v)
	m.MulMatrices(m, &s)
}

// MulScalar returns this matrix with each element multiplied by the scalar.
func (m *Matrix2[T]) MulScalar(s T) Matrix2[T] {
	return Matrix2[T]{m[0] * s, m[1] * s, m[2] * s, m[3] * s}
}

// Add returns the element-wise sum of this matrix and the other matrix.
func (m *Matrix2[T]) Add(other *Matrix2[T]) Matrix2[T] {
	return Matrix2[T]{m[0] + other[0], m[1] + other[1], m[2] + other[2], m[3] + other[3]}
}

// Sub returns the element-wise difference of this matrix and the other matrix.
func (m *Matrix2[T]) Sub(other *Matrix2[T]) Matrix2[T] {
	return Matrix2[T]{m[0] - other[0], m[1] - other[1], m[2] - other[2], m[3] - other[3]}
}

// Norm returns the Frobenius norm of this matrix: the square root of the
// sum of squares of all elements.
func (m *Matrix2[T]) Norm() T {
	return Sqrt(m[0]*m[0] + m[1]*m[1] + m[2]*m[2] + m[3]*m[3])
}

// LDU returns the closed-form Lower-Diagonal-Upper decomposition of this
// matrix: a unit lower-triangular l, an identity diagonal d, and an upper
// triangular u such that l * d * u equals this matrix (when m[0] is nonzero).
func (m *Matrix2[T]) LDU() (l, d, u Matrix2[T]) {
	l.SetIdentity()
	d.SetIdentity()
	u.SetIdentity()
	l[1] = m[1] / m[0]
	u[0] = m[0]
	u[2] = m[2]
	u[3] = m[3] - l[1]*m[2]
	return
}

// AlmostEqual reports whether this matrix is approximately equal to other,
// testing each element pair with [Equal].
func (m *Matrix2[T]) AlmostEqual(other *Matrix2[T]) bool {
	for i := range m {
		if !Equal(m[i], other[i]) {
			return false
		}
	}
	return true
}
