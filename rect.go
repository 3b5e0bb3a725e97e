// Copyright 2026 The vmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vmath

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Rect is an axis-aligned rectangle given by its position (minimum corner
// when the size is positive) and size. Whether y grows up or down is a
// caller convention; the size components may carry any sign. Rects cannot
// represent rotation or shear; use [Quad2] for that.
type Rect[T constraints.Float] struct {
	Pos  Vector2[T]
	Size Vector2[T]
}

// NewRect returns a new rectangle from the given position and size
// components.
func NewRect[T constraints.Float](x, y, width, height T) Rect[T] {
	return Rect[T]{Pos: Vector2[T]{x, y}, Size: Vector2[T]{width, height}}
}

// RectFromPosSize returns a new rectangle from the given position and size
// vectors.
func RectFromPosSize[T constraints.Float](pos, size Vector2[T]) Rect[T] {
	return Rect[T]{Pos: pos, Size: size}
}

// Set sets this rectangle's position and size components.
func (r *Rect[T]) Set(x, y, width, height T) {
	r.Pos.Set(x, y)
	r.Size.Set(width, height)
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("Rect(%v, %v, %v, %v)", r.Pos.X, r.Pos.Y, r.Size.X, r.Size.Y)
}

// Center returns the center point of this rectangle.
func (r Rect[T]) Center() Vector2[T] {
	return Vector2[T]{r.Pos.X + r.Size.X/2, r.Pos.Y + r.Size.Y/2}
}

// SetCenter moves this rectangle so that its center is at the given point,
// keeping its size.
func (r *Rect[T]) SetCenter(c Vector2[T]) {
	r.Pos.X = c.X - r.Size.X/2
	r.Pos.Y = c.Y - r.Size.Y/2
}

// CenterDim returns the center coordinate of this rectangle along the
// given dimension.
func (r Rect[T]) CenterDim(d Dims) T {
	return r.Pos.Dim(d) + r.Size.Dim(d)/2
}

// SetCenterDim moves this rectangle along the given dimension so that its
// center coordinate there is value.
func (r *Rect[T]) SetCenterDim(d Dims, value T) {
	r.Pos.SetDim(d, value-r.Size.Dim(d)/2)
}

// ContainsPoint returns whether the given point is inside this rectangle,
// inclusive of its edges. The size must be non-negative.
func (r Rect[T]) ContainsPoint(p Vector2[T]) bool {
	return p.X >= r.Pos.X && p.X <= r.Pos.X+r.Size.X &&
		p.Y >= r.Pos.Y && p.Y <= r.Pos.Y+r.Size.Y
}

// Lerp returns the linear interpolation from this rectangle to other at
// parameter t, blending position and size independently.
func (r Rect[T]) Lerp(other Rect[T], t T) Rect[T] {
	return Rect[T]{
		Pos:  r.Pos.Lerp(other.Pos, t),
		Size: r.Size.Lerp(other.Size, t),
	}
}

// FitSize returns this rectangle rescaled so that its size matches target
// while preserving its aspect ratio, centered on target's center. The cmp
// function selects which axis ratio wins: [Min] keeps the result inside
// target, [Max] makes it cover target, and any other policy (such as a
// custom tie-break) may be supplied.
func (r Rect[T]) FitSize(target Rect[T], cmp func(a, b T) T) Rect[T] {
	s := cmp(target.Size.X/r.Size.X, target.Size.Y/r.Size.Y)
	nr := Rect[T]{Size: r.Size.MulScalar(s)}
	nr.SetCenter(target.Center())
	return nr
}

// Contain returns this rectangle rescaled to the largest aspect-preserving
// size that fits inside target, centered on target's center.
func (r Rect[T]) Contain(target Rect[T]) Rect[T] {
	return r.FitSize(target, Min[T])
}

// Cover returns this rectangle rescaled to the smallest aspect-preserving
// size that covers target entirely, centered on target's center.
func (r Rect[T]) Cover(target Rect[T]) Rect[T] {
	return r.FitSize(target, Max[T])
}

// AffineTo returns the affine transform mapping this rectangle onto other,
// scaling per axis and translating. Axes of zero size in this rectangle
// produce non-finite scales.
func (r Rect[T]) AffineTo(other Rect[T]) Affine2[T] {
	sx := other.Size.X / r.Size.X
	sy := other.Size.Y / r.Size.Y
	return Affine2[T]{
		XX: sx, YX: 0,
		XY: 0, YY: sy,
		X0: other.Pos.X - r.Pos.X*sx,
		Y0: other.Pos.Y - r.Pos.Y*sy,
	}
}

// Quad2 returns this rectangle as an axis-aligned [Quad2].
func (r Rect[T]) Quad2() Quad2[T] {
	return Quad2FromRect(r)
}

// AlmostEqual reports whether this rectangle is approximately equal to
// other, testing each component pair with [Equal].
func (r Rect[T]) AlmostEqual(other Rect[T]) bool {
	return r.Pos.AlmostEqual(other.Pos) && r.Size.AlmostEqual(other.Size)
}
