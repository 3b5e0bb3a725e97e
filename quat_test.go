// Copyright 2026 The vmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuatBasics(t *testing.T) {
	q := NewQuat(1.0, 2, 3, 4)
	assert.Equal(t, "Quat(1, 2, 3, 4)", q.String())
	assert.False(t, q.IsIdentity())

	q.SetIdentity()
	assert.True(t, q.IsIdentity())
	assert.Equal(t, QuatIdentity[float64](), q)

	assert.True(t, Quat[float64]{}.IsNil())

	data := []float64{0, 1, 2, 3, 4}
	var q2 Quat[float64]
	q2.FromSlice(data, 1)
	assert.Equal(t, NewQuat(1.0, 2, 3, 4), q2)
}

func TestQuatAxisAngle(t *testing.T) {
	q := NewQuatAxisAngle(Vec3(0.0, 0, 1), DegToRad(90.0))
	s := Sqrt(2.0) / 2
	tolAssertEqualQuat(t, standardTol, NewQuat(0.0, 0, s, s), q)
	tolAssertEqual(t, standardTol, 1.0, q.Length())

	aa := q.ToAxisAngle()
	tolAssertEqual(t, standardTol, DegToRad(90.0), aa.W)
	tolAssertEqualVector3(t, standardTol, Vec3(0.0, 0, 1), Vec3(aa.X, aa.Y, aa.Z))
}

func TestQuatHamiltonProduct(t *testing.T) {
	id := QuatIdentity[float64]()
	a := NewQuatAxisAngle(Vec3(0.0, 0, 1), 0.7)
	b := NewQuatAxisAngle(Vec3(1.0, 0, 0), 0.4)

	assert.Equal(t, a, a.Mul(id))
	assert.Equal(t, a, id.Mul(a))

	// not commutative
	ab := a.Mul(b)
	ba := b.Mul(a)
	assert.False(t, ab.AlmostEqual(ba))

	// same-axis rotations compose additively
	c := NewQuatAxisAngle(Vec3(0.0, 0, 1), 0.3)
	sum := NewQuatAxisAngle(Vec3(0.0, 0, 1), 1.0)
	tolAssertEqualQuat(t, standardTol, sum, a.Mul(c))

	// aliasing through MulQuats
	alias := a
	alias.MulQuats(alias, b)
	assert.Equal(t, ab, alias)
}

func TestQuatRotatePerAxis(t *testing.T) {
	id := QuatIdentity[float64]()

	qx := id.RotateX(DegToRad(90.0))
	tolAssertEqualVector3(t, standardTol, Vec3(0.0, 0, 1), Vec3(0.0, 1, 0).MulQuat(qx))

	qy := id.RotateY(DegToRad(90.0))
	tolAssertEqualVector3(t, standardTol, Vec3(0.0, 0, -1), Vec3(1.0, 0, 0).MulQuat(qy))

	qz := id.RotateZ(DegToRad(90.0))
	tolAssertEqualVector3(t, standardTol, Vec3(0.0, 1, 0), Vec3(1.0, 0, 0).MulQuat(qz))

	// composition matches multiplying by the axis-angle quat
	base := NewQuatAxisAngle(Vec3(0.0, 1, 0), 0.5)
	want := base.Mul(NewQuatAxisAngle(Vec3(1.0, 0, 0), 0.3))
	tolAssertEqualQuat(t, standardTol, want, base.RotateX(0.3))
}

func TestQuatConjugateInverse(t *testing.T) {
	q := NewQuatAxisAngle(Vec3(1.0, 2, 3).Normal(), 0.9)

	// for unit quaternions conjugate equals inverse
	tolAssertEqualQuat(t, standardTol, q.Conjugate(), q.Inverse())

	prod := q.Mul(q.Inverse())
	tolAssertEqualQuat(t, standardTol, QuatIdentity[float64](), prod)

	// general inverse for non-unit quaternions
	nq := NewQuat(2.0, 0, 0, 2)
	prod2 := nq.Mul(nq.Inverse())
	tolAssertEqualQuat(t, standardTol, QuatIdentity[float64](), prod2)
}

func TestQuatNormalize(t *testing.T) {
	q := NewQuat(2.0, 0, 0, 2)
	n := q.Normal()
	tolAssertEqual(t, standardTol, 1.0, n.Length())
	tolAssertEqualQuat(t, standardTol, n, n.Normal())

	// zero quaternion normalizes to identity
	z := Quat[float64]{}
	z.Normalize()
	assert.Equal(t, QuatIdentity[float64](), z)
}

func TestQuatFromRotationMatrix(t *testing.T) {
	axes := []Vector3[float64]{
		Vec3(0.0, 0, 1),
		Vec3(1.0, 0, 0),
		Vec3(0.0, 1, 0),
		Vec3(1.0, 1, 1).Normal(),
	}
	// includes near-π angles to hit the non-trace branches
	angles := []float64{0.3, 2.0, 3.0, Pi - 1e-4}
	for _, axis := range axes {
		for _, angle := range angles {
			q := NewQuatAxisAngle(axis, angle)
			m := Matrix3FromQuat(q)
			var got Quat[float64]
			got.SetFromRotationMatrix(&m)
			if got.Dot(q) < 0 {
				got = Quat[float64]{-got.X, -got.Y, -got.Z, -got.W}
			}
			tolAssertEqualQuat(t, 1e-5, q, got)
		}
	}
}

func TestQuatFromEuler(t *testing.T) {
	e := Vec3(0.3, 0.5, 0.7)

	// each order agrees with composing the per-axis quaternions intrinsically
	qx := NewQuatAxisAngle(Vec3(1.0, 0, 0), e.X)
	qy := NewQuatAxisAngle(Vec3(0.0, 1, 0), e.Y)
	qz := NewQuatAxisAngle(Vec3(0.0, 0, 1), e.Z)

	tests := []struct {
		order EulerOrder
		want  Quat[float64]
	}{
		{OrderXYZ, qx.Mul(qy).Mul(qz)},
		{OrderXZY, qx.Mul(qz).Mul(qy)},
		{OrderYXZ, qy.Mul(qx).Mul(qz)},
		{OrderYZX, qy.Mul(qz).Mul(qx)},
		{OrderZXY, qz.Mul(qx).Mul(qy)},
		{OrderZYX, qz.Mul(qy).Mul(qx)},
	}
	for _, tt := range tests {
		got := NewQuatEuler(e, tt.order)
		tolAssertEqualQuat(t, 1e-5, tt.want, got)
	}

	assert.Panics(t, func() { NewQuatEuler(e, EulerOrdersN) })
	assert.Equal(t, "XYZ", OrderXYZ.String())
}

func TestQuatSlerp(t *testing.T) {
	a := QuatIdentity[float64]()
	b := NewQuatAxisAngle(Vec3(0.0, 0, 1), Pi)

	tolAssertEqualQuat(t, standardTol, a, a.Slerp(b, 0))
	tolAssertEqualQuat(t, standardTol, b, a.Slerp(b, 1))

	// halfway is a π/2 rotation about z
	half := NewQuatAxisAngle(Vec3(0.0, 0, 1), Pi/2)
	tolAssertEqualQuat(t, standardTol, half, a.Slerp(b, 0.5))

	// shortest path: the negated target gives the same rotation arc
	neg := Quat[float64]{-b.X, -b.Y, -b.Z, -b.W}
	got := a.Slerp(neg, 0.5)
	if got.Dot(half) < 0 {
		got = Quat[float64]{-got.X, -got.Y, -got.Z, -got.W}
	}
	tolAssertEqualQuat(t, standardTol, half, got)

	// nearly coincident falls back to lerp without NaNs
	c := NewQuatAxisAngle(Vec3(0.0, 0, 1), 1e-9)
	r := a.Slerp(c, 0.5)
	assert.False(t, IsNaN(r.W))
	tolAssertEqualQuat(t, standardTol, a, r)
}

func TestQuatSqlerp(t *testing.T) {
	a := QuatIdentity[float64]()
	b := NewQuatAxisAngle(Vec3(0.0, 0, 1), 1.0)
	c1 := NewQuatAxisAngle(Vec3(0.0, 0, 1), 0.25)
	c2 := NewQuatAxisAngle(Vec3(0.0, 0, 1), 0.75)

	tolAssertEqualQuat(t, standardTol, a, a.Sqlerp(c1, c2, b, 0))
	tolAssertEqualQuat(t, standardTol, b, a.Sqlerp(c1, c2, b, 1))

	mid := a.Sqlerp(c1, c2, b, 0.5)
	tolAssertEqual(t, standardTol, 1.0, mid.Length())
}

func TestQuatExpLogPow(t *testing.T) {
	q := NewQuatAxisAngle(Vec3(1.0, 0, 1).Normal(), 0.8)

	// log then exp round trips
	tolAssertEqualQuat(t, 1e-5, q, q.Log().Exp())

	// squaring doubles the rotation angle
	sq := q.Pow(2)
	want := q.Mul(q)
	tolAssertEqualQuat(t, 1e-5, want, sq)

	// fractional power halves it
	h := q.Pow(0.5)
	tolAssertEqualQuat(t, 1e-5, q, h.Mul(h))

	tolAssertEqualQuat(t, 1e-5, q, q.Pow(1))
}

func TestQuatFromUnitVectors(t *testing.T) {
	var q Quat[float64]

	q.SetFromUnitVectors(Vec3(1.0, 0, 0), Vec3(0.0, 1, 0))
	tolAssertEqualVector3(t, standardTol, Vec3(0.0, 1, 0), Vec3(1.0, 0, 0).MulQuat(q))

	// identical vectors give the identity
	q.SetFromUnitVectors(Vec3(0.0, 1, 0), Vec3(0.0, 1, 0))
	tolAssertEqualQuat(t, standardTol, QuatIdentity[float64](), q)

	// antiparallel vectors rotate π about some perpendicular axis
	q.SetFromUnitVectors(Vec3(1.0, 0, 0), Vec3(-1.0, 0, 0))
	tolAssertEqualVector3(t, standardTol, Vec3(-1.0, 0, 0), Vec3(1.0, 0, 0).MulQuat(q))
	tolAssertEqual(t, standardTol, 1.0, q.Length())
}

func TestQuatFromAxes(t *testing.T) {
	var q Quat[float64]
	q.SetFromAxes(Vec3(0.0, 0, -1), Vec3(1.0, 0, 0), Vec3(0.0, 1, 0))
	tolAssertEqualQuat(t, standardTol, QuatIdentity[float64](), q)

	// world-to-frame rotation for a frame rotated 90° about y
	q.SetFromAxes(Vec3(-1.0, 0, 0), Vec3(0.0, 0, -1), Vec3(0.0, 1, 0))
	want := NewQuatAxisAngle(Vec3(0.0, 1, 0), DegToRad(-90.0))
	if q.Dot(want) < 0 {
		q = Quat[float64]{-q.X, -q.Y, -q.Z, -q.W}
	}
	tolAssertEqualQuat(t, standardTol, want, q)
}

func TestQuatRandom(t *testing.T) {
	for i := 0; i < 100; i++ {
		var q Quat[float64]
		q.SetRandom()
		tolAssertEqual(t, standardTol, 1.0, q.Length())
	}
}

func TestQuatAngleTo(t *testing.T) {
	a := QuatIdentity[float64]()
	b := NewQuatAxisAngle(Vec3(0.0, 0, 1), 0.8)
	tolAssertEqual(t, 1e-5, 0.8, a.AngleTo(b))
	tolAssertEqual(t, standardTol, 0.0, a.AngleTo(a))
}
