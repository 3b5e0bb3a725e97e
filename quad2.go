// Copyright 2026 The vmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vmath

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Quad2 is a possibly rotated or sheared quadrilateral: the image of a
// unit square centered at K under the linear map IJ. The columns of IJ are
// the quad's edge vectors, so an axis-aligned rect has a diagonal IJ
// holding its size.
type Quad2[T constraints.Float] struct {
	IJ Matrix2[T]
	K  Vector2[T]
}

// NewQuad2 returns a new quad from the given linear part and center.
func NewQuad2[T constraints.Float](ij Matrix2[T], k Vector2[T]) Quad2[T] {
	return Quad2[T]{IJ: ij, K: k}
}

// Quad2FromRect returns a new axis-aligned quad covering the given
// rectangle.
func Quad2FromRect[T constraints.Float](r Rect[T]) Quad2[T] {
	return Quad2[T]{
		IJ: Matrix2[T]{r.Size.X, 0, 0, r.Size.Y},
		K:  r.Center(),
	}
}

func (q Quad2[T]) String() string {
	return fmt.Sprintf("Quad2(%v, %v)", q.IJ, q.K)
}

// I returns the quad's first edge vector (the first column of IJ).
func (q Quad2[T]) I() Vector2[T] {
	return Vector2[T]{q.IJ[0], q.IJ[1]}
}

// J returns the quad's second edge vector (the second column of IJ).
func (q Quad2[T]) J() Vector2[T] {
	return Vector2[T]{q.IJ[2], q.IJ[3]}
}

// Center returns the center point of this quad.
func (q Quad2[T]) Center() Vector2[T] {
	return q.K
}

// SetCenter moves this quad so that its center is at the given point,
// keeping its shape.
func (q *Quad2[T]) SetCenter(c Vector2[T]) {
	q.K = c
}

// Corners returns the quad's four corner points in counterclockwise order
// starting from center - (i+j)/2.
func (q Quad2[T]) Corners() [4]Vector2[T] {
	hi := q.I().MulScalar(0.5)
	hj := q.J().MulScalar(0.5)
	return [4]Vector2[T]{
		q.K.Sub(hi).Sub(hj),
		q.K.Add(hi).Sub(hj),
		q.K.Add(hi).Add(hj),
		q.K.Sub(hi).Add(hj),
	}
}

// MulAffine2 returns this quad transformed by the given affine transform,
// applying it to the linear part and to the center point.
func (q Quad2[T]) MulAffine2(a Affine2[T]) Quad2[T] {
	lin := a.Matrix2()
	var ij Matrix2[T]
	ij.MulMatrices(&lin, &q.IJ)
	return Quad2[T]{
		IJ: ij,
		K:  q.K.MulAffine2(a),
	}
}

// FitSize returns this quad uniformly rescaled so that its edge lengths
// match target's while preserving its shape, centered on target's center.
// The cmp function selects which edge ratio wins, as in [Rect.FitSize].
func (q Quad2[T]) FitSize(target Quad2[T], cmp func(a, b T) T) Quad2[T] {
	s := cmp(target.I().Length()/q.I().Length(), target.J().Length()/q.J().Length())
	return Quad2[T]{
		IJ: q.IJ.MulScalar(s),
		K:  target.K,
	}
}

// Contain returns this quad rescaled to the largest shape-preserving size
// whose edges fit within target's edge lengths, centered on target.
func (q Quad2[T]) Contain(target Quad2[T]) Quad2[T] {
	return q.FitSize(target, Min[T])
}

// Cover returns this quad rescaled to the smallest shape-preserving size
// whose edges cover target's edge lengths, centered on target.
func (q Quad2[T]) Cover(target Quad2[T]) Quad2[T] {
	return q.FitSize(target, Max[T])
}

// AffineTo returns the affine transform mapping this quad onto other.
// Returns an error when this quad's linear part is singular.
func (q Quad2[T]) AffineTo(other Quad2[T]) (Affine2[T], error) {
	inv, err := q.IJ.Inverse()
	if err != nil {
		return Affine2[T]{}, err
	}
	var lin Matrix2[T]
	lin.MulMatrices(&other.IJ, &inv)
	a := Affine2FromMatrix2(lin)
	t := q.K.MulMatrix2(&lin)
	a.X0 = other.K.X - t.X
	a.Y0 = other.K.Y - t.Y
	return a, nil
}

// AlmostEqual reports whether this quad is approximately equal to other,
// testing each component pair with [Equal].
func (q Quad2[T]) AlmostEqual(other Quad2[T]) bool {
	return q.IJ.AlmostEqual(&other.IJ) && q.K.AlmostEqual(other.K)
}
