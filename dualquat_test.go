// Copyright 2026 The vmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
)

func tolAssertEqualDualQuat[T constraints.Float](t *testing.T, tol T, want, got DualQuat[T]) {
	t.Helper()
	tolAssertEqualQuat(t, tol, want.Real, got.Real)
	tolAssertEqualQuat(t, tol, want.Dual, got.Dual)
}

func TestDualQuatIdentity(t *testing.T) {
	id := DualQuatIdentity[float64]()
	assert.Equal(t, QuatIdentity[float64](), id.Real)
	assert.Equal(t, Quat[float64]{}, id.Dual)
	assert.Equal(t, Vec3(0.0, 0, 0), id.GetTranslation())

	dq := NewDualQuatRotationTranslation(NewQuatAxisAngle(Vec3(0.0, 1, 0), 0.5), Vec3(1.0, 2, 3))
	assert.Equal(t, dq, id.Mul(dq))
	assert.Equal(t, dq, dq.Mul(id))
}

func TestDualQuatRotationTranslation(t *testing.T) {
	q := NewQuatAxisAngle(Vec3(0.0, 0, 1), DegToRad(90.0))
	tr := Vec3(1.0, 2, 3)

	dq := NewDualQuatRotationTranslation(q, tr)
	tolAssertEqualQuat(t, standardTol, q, dq.Real)
	tolAssertEqualVector3(t, standardTol, tr, dq.GetTranslation())

	// translation-only and rotation-only constructors
	to := NewDualQuatTranslation(tr)
	assert.Equal(t, QuatIdentity[float64](), to.Real)
	tolAssertEqualVector3(t, standardTol, tr, to.GetTranslation())

	ro := NewDualQuatRotation(q)
	assert.Equal(t, q, ro.Real)
	tolAssertEqualVector3(t, standardTol, Vec3(0.0, 0, 0), ro.GetTranslation())
}

func TestDualQuatFromMatrix4(t *testing.T) {
	q := NewQuatAxisAngle(Vec3(1.0, 1, 0).Normal(), 0.6)
	tr := Vec3(4.0, -5, 6)

	var m Matrix4[float64]
	m.SetFromQuatTranslation(q, tr)

	var dq DualQuat[float64]
	dq.SetFromMatrix4(&m)
	tolAssertEqualVector3(t, standardTol, tr, dq.GetTranslation())
	if dq.Real.Dot(q) < 0 {
		dq.Real = Quat[float64]{-dq.Real.X, -dq.Real.Y, -dq.Real.Z, -dq.Real.W}
	}
	tolAssertEqualQuat(t, 1e-5, q, dq.Real)

	// and back out to the same matrix
	m2 := NewDualQuatRotationTranslation(q, tr).Matrix4()
	assert.True(t, m.AlmostEqual(&m2))
}

func TestDualQuatMul(t *testing.T) {
	a := NewDualQuatRotationTranslation(NewQuatAxisAngle(Vec3(0.0, 0, 1), DegToRad(90.0)), Vec3(1.0, 0, 0))
	b := NewDualQuatRotationTranslation(NewQuatAxisAngle(Vec3(0.0, 1, 0), DegToRad(45.0)), Vec3(0.0, 2, 0))

	// dual quaternion product agrees with the matrix product
	ab := a.Mul(b)
	ma := a.Matrix4()
	mb := b.Matrix4()
	var mab Matrix4[float64]
	mab.MulMatrices(&ma, &mb)
	got := ab.Matrix4()
	assert.True(t, mab.AlmostEqual(&got))

	// aliasing
	alias := a
	alias.MulDualQuats(alias, b)
	assert.Equal(t, ab, alias)
}

func TestDualQuatNormalize(t *testing.T) {
	dq := NewDualQuatRotationTranslation(NewQuatAxisAngle(Vec3(0.0, 1, 0), 0.8), Vec3(1.0, 2, 3))

	scaled := dq.MulScalar(3)
	n := scaled.Normal()
	tolAssertEqual(t, standardTol, 1.0, n.Real.Length())

	// the dual part stays orthogonal to the real part
	tolAssertEqual(t, standardTol, 0.0, n.Real.Dot(n.Dual))
	tolAssertEqualDualQuat(t, standardTol, dq, n)

	// zero normalizes to identity
	var z DualQuat[float64]
	z.Normalize()
	assert.Equal(t, DualQuatIdentity[float64](), z)
}

func TestDualQuatConjugateInverse(t *testing.T) {
	dq := NewDualQuatRotationTranslation(NewQuatAxisAngle(Vec3(1.0, 0, 0), 0.5), Vec3(1.0, 2, 3))

	// for a normalized dual quaternion, conjugate equals inverse
	inv := dq.Inverse()
	conj := dq.Conjugate()
	tolAssertEqualDualQuat(t, standardTol, conj, inv)

	// inverse composes to the identity transform
	prod := dq.Mul(inv)
	tolAssertEqualVector3(t, standardTol, Vec3(0.0, 0, 0), prod.GetTranslation())
	tolAssertEqualQuat(t, standardTol, QuatIdentity[float64](), prod.Real)

	// non-unit case
	s := dq.MulScalar(2)
	sp := s.Mul(s.Inverse())
	tolAssertEqualQuat(t, standardTol, QuatIdentity[float64](), sp.Real)
}

func TestDualQuatTranslate(t *testing.T) {
	dq := DualQuatIdentity[float64]().Translate(Vec3(1.0, 2, 3))
	tolAssertEqualVector3(t, standardTol, Vec3(1.0, 2, 3), dq.GetTranslation())

	dq2 := dq.Translate(Vec3(1.0, 1, 1))
	tolAssertEqualVector3(t, standardTol, Vec3(2.0, 3, 4), dq2.GetTranslation())
}

func TestDualQuatRotate(t *testing.T) {
	tr := Vec3(1.0, 2, 3)
	dq := NewDualQuatTranslation(tr)

	// per-axis rotation changes orientation but keeps the translation
	rx := dq.RotateX(DegToRad(90.0))
	tolAssertEqualVector3(t, standardTol, tr, rx.GetTranslation())
	tolAssertEqualQuat(t, standardTol, QuatIdentity[float64]().RotateX(DegToRad(90.0)), rx.Real)

	ry := dq.RotateY(0.4)
	tolAssertEqualVector3(t, standardTol, tr, ry.GetTranslation())
	rz := dq.RotateZ(0.4)
	tolAssertEqualVector3(t, standardTol, tr, rz.GetTranslation())
}

func TestDualQuatRotateAroundAxis(t *testing.T) {
	dq := NewDualQuatRotationTranslation(NewQuatAxisAngle(Vec3(0.0, 0, 1), 0.3), Vec3(1.0, 0, 0))

	// a sub-tolerance angle returns the input unchanged
	assert.Equal(t, dq, dq.RotateAroundAxis(Vec3(0.0, 1, 0), 1e-9))

	// the axis need not be normalized
	r1 := dq.RotateAroundAxis(Vec3(0.0, 2, 0), 0.7)
	r2 := dq.RotateAroundAxis(Vec3(0.0, 1, 0), 0.7)
	tolAssertEqualDualQuat(t, standardTol, r2, r1)

	// matches appending the axis-angle rotation
	want := dq.RotateByQuatAppend(NewQuatAxisAngle(Vec3(0.0, 1, 0), 0.7))
	tolAssertEqualDualQuat(t, standardTol, want, r2)
}

func TestDualQuatRotateByQuat(t *testing.T) {
	dq := NewDualQuatRotationTranslation(NewQuatAxisAngle(Vec3(0.0, 0, 1), 0.5), Vec3(1.0, 2, 3))
	q := NewQuatAxisAngle(Vec3(1.0, 0, 0), 0.4)

	ap := dq.RotateByQuatAppend(q)
	tolAssertEqualQuat(t, standardTol, dq.Real.Mul(q), ap.Real)

	pre := dq.RotateByQuatPrepend(q)
	tolAssertEqualQuat(t, standardTol, q.Mul(dq.Real), pre.Real)
}

func TestDualQuatLerp(t *testing.T) {
	a := NewDualQuatRotationTranslation(QuatIdentity[float64](), Vec3(0.0, 0, 0))
	b := NewDualQuatRotationTranslation(NewQuatAxisAngle(Vec3(0.0, 0, 1), 1.0), Vec3(2.0, 4, 6))

	assert.Equal(t, a, a.Lerp(b, 0))
	tolAssertEqualDualQuat(t, standardTol, b, a.Lerp(b, 1))

	mid := a.Lerp(b, 0.5).Normal()
	tolAssertEqual(t, standardTol, 1.0, mid.Real.Length())

	// opposite-hemisphere operands are negated for the short path
	nb := b.MulScalar(-1)
	m1 := a.Lerp(b, 0.25)
	m2 := a.Lerp(nb, 0.25)
	tolAssertEqualDualQuat(t, standardTol, m1, m2)
}

func TestDualQuatScalarOps(t *testing.T) {
	dq := NewDualQuatRotationTranslation(NewQuatAxisAngle(Vec3(0.0, 1, 0), 0.6), Vec3(1.0, 2, 3))

	d2 := dq.MulScalar(2)
	assert.Equal(t, dq.Real.X*2, d2.Real.X)
	tolAssertEqual(t, standardTol, 2.0, d2.Length())
	tolAssertEqual(t, standardTol, 4.0, d2.LengthSquared())

	sum := dq.Add(dq)
	tolAssertEqualDualQuat(t, standardTol, d2, sum)

	tolAssertEqual(t, standardTol, 1.0, dq.Dot(dq))

	data := make([]float64, 8)
	dq.ToSlice(data, 0)
	var back DualQuat[float64]
	back.FromSlice(data, 0)
	assert.Equal(t, dq, back)
}
