// Copyright 2026 The vmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vmath is a vector, matrix, quaternion, and dual quaternion math
// package for 2D & 3D graphics, generic over float32 and float64.
//
// All matrix types are flat column-major arrays matching the memory layout
// expected by graphics shader uniforms, and all rotations are right-handed.
// The element type parameter selects the storage width of every object built
// from it: untyped constant arguments infer float64, and callers wanting
// 32-bit storage instantiate with float32, which routes the scalar math
// through the optimized chewxy/math32 implementations.
package vmath

import (
	"cmp"
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Mathematical constants.
const (
	E  = math.E
	Pi = math.Pi

	Sqrt2 = math.Sqrt2
	Ln2   = math.Ln2
)

// Epsilon is the tolerance used by the approximate-equality tests
// throughout this package. See [Equal].
const Epsilon = 1e-6

const (
	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / Pi
)

// DegToRad converts a number from degrees to radians.
func DegToRad[T constraints.Float](degrees T) T {
	return degrees * DegToRadFactor
}

// RadToDeg converts a number from radians to degrees.
func RadToDeg[T constraints.Float](radians T) T {
	return radians * RadToDegFactor
}

// scalar1 and scalar2 dispatch a scalar math function to chewxy/math32 for
// float32 elements and to the standard math package otherwise.

func scalar1[T constraints.Float](x T, f32 func(float32) float32, f64 func(float64) float64) T {
	if f, ok := any(x).(float32); ok {
		return T(f32(f))
	}
	return T(f64(float64(x)))
}

func scalar2[T constraints.Float](x, y T, f32 func(_, _ float32) float32, f64 func(_, _ float64) float64) T {
	if f, ok := any(x).(float32); ok {
		return T(f32(f, float32(y)))
	}
	return T(f64(float64(x), float64(y)))
}

// Abs returns the absolute value of x.
func Abs[T constraints.Float](x T) T {
	return scalar1(x, math32.Abs, math.Abs)
}

// Sign returns -1 if x < 0 and 1 otherwise.
func Sign[T constraints.Float](x T) T {
	if x < 0 {
		return -1
	}
	return 1
}

// Acos returns the arccosine, in radians, of x.
//
// Special case is:
//
//	Acos(x) = NaN if x < -1 or x > 1
func Acos[T constraints.Float](x T) T {
	return scalar1(x, math32.Acos, math.Acos)
}

// Asin returns the arcsine, in radians, of x.
func Asin[T constraints.Float](x T) T {
	return scalar1(x, math32.Asin, math.Asin)
}

// Atan returns the arctangent, in radians, of x.
func Atan[T constraints.Float](x T) T {
	return scalar1(x, math32.Atan, math.Atan)
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant of the return value.
func Atan2[T constraints.Float](y, x T) T {
	return scalar2(y, x, math32.Atan2, math.Atan2)
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil[T constraints.Float](x T) T {
	return scalar1(x, math32.Ceil, math.Ceil)
}

// Cos returns the cosine of the radian argument x.
func Cos[T constraints.Float](x T) T {
	return scalar1(x, math32.Cos, math.Cos)
}

// Exp returns e**x, the base-e exponential of x.
func Exp[T constraints.Float](x T) T {
	return scalar1(x, math32.Exp, math.Exp)
}

// Floor returns the greatest integer value less than or equal to x.
func Floor[T constraints.Float](x T) T {
	return scalar1(x, math32.Floor, math.Floor)
}

// Hypot returns Sqrt(p*p + q*q), taking care to avoid
// unnecessary overflow and underflow.
func Hypot[T constraints.Float](p, q T) T {
	return scalar2(p, q, math32.Hypot, math.Hypot)
}

// Log returns the natural logarithm of x.
func Log[T constraints.Float](x T) T {
	return scalar1(x, math32.Log, math.Log)
}

// Mod returns the floating-point remainder of x/y.
// The magnitude of the result is less than y and its
// sign agrees with that of x.
func Mod[T constraints.Float](x, y T) T {
	return scalar2(x, y, math32.Mod, math.Mod)
}

// Pow returns x**y, the base-x exponential of y.
func Pow[T constraints.Float](x, y T) T {
	return scalar2(x, y, math32.Pow, math.Pow)
}

// Round returns the nearest integer to x, rounding half away from zero for
// non-negative x. A negative x whose fraction is exactly one half rounds
// down (toward negative infinity), which for binary floating point is the
// same value that rounding away from zero produces; the test suite pins
// this corner so the behavior cannot drift.
func Round[T constraints.Float](x T) T {
	return scalar1(x, math32.Round, math.Round)
}

// Sin returns the sine of the radian argument x.
func Sin[T constraints.Float](x T) T {
	return scalar1(x, math32.Sin, math.Sin)
}

// Sincos returns Sin(x), Cos(x).
func Sincos[T constraints.Float](x T) (sin, cos T) {
	if f, ok := any(x).(float32); ok {
		s, c := math32.Sincos(f)
		return T(s), T(c)
	}
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}

// Sqrt returns the square root of x.
func Sqrt[T constraints.Float](x T) T {
	return scalar1(x, math32.Sqrt, math.Sqrt)
}

// Tan returns the tangent of the radian argument x.
func Tan[T constraints.Float](x T) T {
	return scalar1(x, math32.Tan, math.Tan)
}

// IsNaN reports whether x is an IEEE 754 "not-a-number" value.
func IsNaN[T constraints.Float](x T) bool {
	// x != x is only true for NaN
	return x != x
}

// Lerp returns the linear interpolation between start and stop in
// proportion to amount. Amount is not clamped: values outside [0, 1]
// extrapolate beyond the endpoints.
func Lerp[T constraints.Float](start, stop, amount T) T {
	return start + (stop-start)*amount
}

// Min returns the smaller of a and b. It is the usual policy argument for
// aspect-preserving "contain" fits.
func Min[T cmp.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b. It is the usual policy argument for
// aspect-preserving "cover" fits.
func Max[T cmp.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp clamps x to the provided closed interval [a, b].
func Clamp[T cmp.Ordered](x, a, b T) T {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Equal reports whether a and b are equal within [Epsilon], using an
// absolute tolerance near zero and a relative one for large magnitudes:
//
//	|a-b| <= Epsilon * max(1, |a|, |b|)
func Equal[T constraints.Float](a, b T) bool {
	return Abs(a-b) <= Epsilon*max(1, Abs(a), Abs(b))
}

// EqualTol reports whether a and b are equal within the given tolerance,
// using the same mixed absolute/relative test as [Equal].
func EqualTol[T constraints.Float](a, b, tol T) bool {
	return Abs(a-b) <= tol*max(1, Abs(a), Abs(b))
}
