// Copyright 2026 The vmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix4Identity(t *testing.T) {
	id := Identity4[float64]()
	var m Matrix4[float64]
	m.SetTransform(Vec3(1.0, 2, 3), NewQuatAxisAngle(Vec3(0.0, 1, 0), 0.5), Vec3(2.0, 1, 1))

	assert.Equal(t, m, id.Mul(&m))
	assert.Equal(t, m, m.Mul(&id))
	assert.Equal(t, 1.0, id.Determinant())
}

func TestMatrix4Translation(t *testing.T) {
	m := Matrix4Translation(Vec3(1.0, 2, 3))
	assert.Equal(t, Vec3(1.0, 2, 3), m.GetTranslation())
	assert.Equal(t, Vec3(1.0, 2, 3), Vec3(0.0, 0, 0).MulMatrix4(&m))

	s := Matrix4Scaling(Vec3(2.0, 3, 4))
	assert.Equal(t, Vec3(2.0, 3, 4), Vec3(1.0, 1, 1).MulMatrix4(&s))
	assert.Equal(t, Vec3(2.0, 3, 4), s.GetScaling())
}

func TestMatrix4Rotation(t *testing.T) {
	var mx, my, mz Matrix4[float64]
	mx.SetRotationX(DegToRad(90.0))
	my.SetRotationY(DegToRad(90.0))
	mz.SetRotationZ(DegToRad(90.0))

	tolAssertEqualVector3(t, standardTol, Vec3(0.0, 0, 1), Vec3(0.0, 1, 0).MulMatrix4(&mx))
	tolAssertEqualVector3(t, standardTol, Vec3(0.0, 0, -1), Vec3(1.0, 0, 0).MulMatrix4(&my))
	tolAssertEqualVector3(t, standardTol, Vec3(0.0, 1, 0), Vec3(1.0, 0, 0).MulMatrix4(&mz))

	ax := Matrix4Rotation(Vec3(0.0, 0, 1), DegToRad(90.0))
	tolAssertEqualVector3(t, standardTol, Vec3(0.0, 1, 0), Vec3(1.0, 0, 0).MulMatrix4(&ax))

	q := NewQuatAxisAngle(Vec3(0.0, 0, 1), DegToRad(90.0))
	fq := Matrix4FromQuat(q)
	assert.True(t, ax.AlmostEqual(&fq))
}

func TestMatrix4TransformDecompose(t *testing.T) {
	pos := Vec3(1.0, 2, 3)
	rot := NewQuatAxisAngle(Vec3(0.0, 1, 0), 0.7)
	scale := Vec3(2.0, 3, 4)

	var m Matrix4[float64]
	m.SetTransform(pos, rot, scale)

	dpos, drot, dscale := m.Decompose()
	tolAssertEqualVector3(t, standardTol, pos, dpos)
	tolAssertEqualVector3(t, standardTol, scale, dscale)
	tolAssertEqualQuat(t, standardTol, rot, drot)
	tolAssertEqualQuat(t, standardTol, rot, m.GetRotation())

	// mirrored transforms negate one scale axis via the determinant sign
	var mir Matrix4[float64]
	mir.SetScaling(Vec3(-2.0, 3, 4))
	_, _, mscale := mir.Decompose()
	assert.True(t, mscale.X < 0)
	tolAssertEqual(t, standardTol, -24.0, mscale.X*mscale.Y*mscale.Z)
}

func TestMatrix4TransformOrigin(t *testing.T) {
	rot := NewQuatAxisAngle(Vec3(0.0, 0, 1), DegToRad(180.0))
	origin := Vec3(1.0, 0, 0)

	var m Matrix4[float64]
	m.SetTransformOrigin(Vec3(0.0, 0, 0), rot, Vec3(1.0, 1, 1), origin)

	// rotating π about z around pivot (1,0,0) sends the origin to (2,0,0)
	tolAssertEqualVector3(t, standardTol, Vec3(2.0, 0, 0), Vec3(0.0, 0, 0).MulMatrix4(&m))
	tolAssertEqualVector3(t, standardTol, origin, origin.MulMatrix4(&m))
}

func TestMatrix4Inverse(t *testing.T) {
	var m Matrix4[float64]
	m.SetTransform(Vec3(1.0, 2, 3), NewQuatAxisAngle(Vec3(1.0, 1, 0).Normal(), 0.8), Vec3(2.0, 1, 3))

	inv, err := m.Inverse()
	assert.NoError(t, err)
	prod := m.Mul(&inv)
	id := Identity4[float64]()
	assert.True(t, prod.AlmostEqual(&id))

	var zero Matrix4[float64]
	out := Identity4[float64]()
	err = out.SetInverse(&zero)
	assert.Error(t, err)
	assert.Equal(t, Identity4[float64](), out)
}

func TestMatrix4Adjugate(t *testing.T) {
	var m Matrix4[float64]
	m.SetTransform(Vec3(1.0, 0, 0), NewQuatAxisAngle(Vec3(0.0, 0, 1), 0.4), Vec3(2.0, 2, 2))

	inv, err := m.Inverse()
	assert.NoError(t, err)
	adj := m.Adjugate()
	scaled := adj.MulScalar(1 / m.Determinant())
	assert.True(t, inv.AlmostEqual(&scaled))
}

func TestMatrix4Transpose(t *testing.T) {
	var m Matrix4[float64]
	for i := range m {
		m[i] = float64(i)
	}
	mt := m.Transpose()
	assert.Equal(t, m[1], mt[4])
	assert.Equal(t, m[2], mt[8])
	assert.Equal(t, m[7], mt[13])

	mm := m
	mm.SetTranspose()
	mm.SetTranspose()
	assert.Equal(t, m, mm)
}

func TestMatrix4Compose(t *testing.T) {
	var base Matrix4[float64]
	base.SetTransform(Vec3(1.0, 2, 3), NewQuatAxisAngle(Vec3(0.0, 1, 0), 0.5), Vec3(2.0, 1, 1))

	tr := Matrix4Translation(Vec3(4.0, -1, 2))
	want := base.Mul(&tr)
	got := base
	got.Translate(Vec3(4.0, -1, 2))
	assert.Equal(t, want, got)

	sc := Matrix4Scaling(Vec3(2.0, 3, 4))
	want = base.Mul(&sc)
	got = base
	got.ScaleBy(Vec3(2.0, 3, 4))
	assert.Equal(t, want, got)

	rot := Matrix4Rotation(Vec3(1.0, 1, 0).Normal(), 0.7)
	want = base.Mul(&rot)
	got = base
	got.RotateBy(Vec3(1.0, 1, 0).Normal(), 0.7)
	assert.Equal(t, want, got)

	// Translation composes in the local frame: a rotated matrix moves
	// along its rotated axes.
	m := Identity4[float64]()
	m.RotateBy(Vec3(0.0, 0, 1), DegToRad(90.0))
	m.Translate(Vec3(1.0, 0, 0))
	tolAssertEqualVector3(t, standardTol, Vec3(0.0, 1, 0), Vec3(0.0, 0, 0).MulMatrix4(&m))
}

func TestMatrix4Aliasing(t *testing.T) {
	var a, b Matrix4[float64]
	a.SetTransform(Vec3(1.0, 2, 3), NewQuatAxisAngle(Vec3(0.0, 1, 0), 0.5), Vec3(1.0, 1, 1))
	b.SetTransform(Vec3(-1.0, 0, 2), NewQuatAxisAngle(Vec3(1.0, 0, 0), 0.3), Vec3(2.0, 2, 2))

	var want Matrix4[float64]
	want.MulMatrices(&a, &b)

	got := a
	got.MulMatrices(&got, &b)
	assert.Equal(t, want, got)

	got2 := b
	got2.MulMatrices(&a, &got2)
	assert.Equal(t, want, got2)

	var inv Matrix4[float64]
	assert.NoError(t, inv.SetInverse(&a))
	assert.NoError(t, a.SetInverse(&a))
	assert.True(t, a.AlmostEqual(&inv))
}

func TestMatrix4Perspective(t *testing.T) {
	var m Matrix4[float64]
	m.SetPerspective(90, 1, 1, 100)

	// near plane center maps to NDC z = -1, far plane to z = +1
	near := Vec3(0.0, 0, -1).MulMatrix4(&m)
	far := Vec3(0.0, 0, -100).MulMatrix4(&m)
	tolAssertEqual(t, 1e-4, -1.0, near.Z)
	tolAssertEqual(t, 1e-4, 1.0, far.Z)

	// infinite far plane stays finite
	inf := Pow(10.0, 400)
	var mi Matrix4[float64]
	mi.SetPerspective(90, 1, 1, inf)
	assert.Equal(t, -1.0, mi[10])
	assert.Equal(t, -2.0, mi[14])
}

func TestMatrix4Frustum(t *testing.T) {
	var f, p Matrix4[float64]
	f.SetFrustum(-1, 1, -1, 1, 1, 100)
	p.SetPerspective(90, 1, 1, 100)
	assert.True(t, f.AlmostEqual(&p))
}

func TestMatrix4Ortho(t *testing.T) {
	var m Matrix4[float64]
	m.SetOrtho(0, 800, 0, 600, -1, 1)

	tolAssertEqualVector3(t, standardTol, Vec3(-1.0, -1, 0), Vec3(0.0, 0, 0).MulMatrix4(&m))
	tolAssertEqualVector3(t, standardTol, Vec3(1.0, 1, 0), Vec3(800.0, 600, 0).MulMatrix4(&m))
}

func TestMatrix4LookAt(t *testing.T) {
	eye := Vec3(0.0, 0, 5)
	center := Vec3(0.0, 0, 0)
	up := Vec3(0.0, 1, 0)

	m := NewLookAt(eye, center, up)

	// the eye maps to the origin, looking down -z
	tolAssertEqualVector3(t, standardTol, Vec3(0.0, 0, 0), eye.MulMatrix4(m))
	tolAssertEqualVector3(t, standardTol, Vec3(0.0, 0, -5), center.MulMatrix4(m))

	// eye and center coincident yields identity
	var degen Matrix4[float64]
	degen.SetLookAt(eye, eye, up)
	id := Identity4[float64]()
	assert.Equal(t, id, degen)
}

func TestMatrix4TargetTo(t *testing.T) {
	eye := Vec3(0.0, 0, 5)
	var m Matrix4[float64]
	m.SetTargetTo(eye, Vec3(0.0, 0, 0), Vec3(0.0, 1, 0))

	// the camera-to-world transform places the origin at the eye
	tolAssertEqualVector3(t, standardTol, eye, Vec3(0.0, 0, 0).MulMatrix4(&m))

	// inverse of the equivalent lookAt view matrix
	look := NewLookAt(eye, Vec3(0.0, 0, 0), Vec3(0.0, 1, 0))
	inv, err := look.Inverse()
	assert.NoError(t, err)
	assert.True(t, m.AlmostEqual(&inv))
}

func TestMatrix4Slice(t *testing.T) {
	data := make([]float64, 16)
	for i := range data {
		data[i] = float64(i)
	}
	var m Matrix4[float64]
	m.FromSlice(data, 0)

	out := make([]float64, 16)
	m.ToSlice(out, 0)
	assert.Equal(t, data, out)
}
