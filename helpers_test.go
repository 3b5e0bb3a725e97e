// Copyright 2026 The vmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
)

const standardTol = 1.0e-6

func tolAssertEqual[T constraints.Float](t *testing.T, tol T, want, got T, args ...any) {
	t.Helper()
	assert.InDelta(t, float64(want), float64(got), float64(tol), args...)
}

func tolAssertEqualVector2[T constraints.Float](t *testing.T, tol T, want, got Vector2[T]) {
	t.Helper()
	tolAssertEqual(t, tol, want.X, got.X)
	tolAssertEqual(t, tol, want.Y, got.Y)
}

func tolAssertEqualVector3[T constraints.Float](t *testing.T, tol T, want, got Vector3[T]) {
	t.Helper()
	tolAssertEqual(t, tol, want.X, got.X)
	tolAssertEqual(t, tol, want.Y, got.Y)
	tolAssertEqual(t, tol, want.Z, got.Z)
}

func tolAssertEqualVector4[T constraints.Float](t *testing.T, tol T, want, got Vector4[T]) {
	t.Helper()
	tolAssertEqual(t, tol, want.X, got.X)
	tolAssertEqual(t, tol, want.Y, got.Y)
	tolAssertEqual(t, tol, want.Z, got.Z)
	tolAssertEqual(t, tol, want.W, got.W)
}

func tolAssertEqualQuat[T constraints.Float](t *testing.T, tol T, want, got Quat[T]) {
	t.Helper()
	tolAssertEqual(t, tol, want.X, got.X)
	tolAssertEqual(t, tol, want.Y, got.Y)
	tolAssertEqual(t, tol, want.Z, got.Z)
	tolAssertEqual(t, tol, want.W, got.W)
}

func tolAssertEqualSlice[T constraints.Float](t *testing.T, tol T, want, got []T) {
	t.Helper()
	assert.Equal(t, len(want), len(got))
	for i := range want {
		tolAssertEqual(t, tol, want[i], got[i], i)
	}
}
