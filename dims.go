// Copyright 2026 The vmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vmath

// Dims is a list of vector dimension (component) names.
type Dims int32

const (
	X Dims = iota
	Y
	Z
	W
	DimsN
)

func (d Dims) String() string {
	switch d {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	case W:
		return "W"
	}
	return "invalid"
}

// OtherDim returns the other dimension for a 2D context (X <-> Y).
func OtherDim(d Dims) Dims {
	if d == X {
		return Y
	}
	return X
}
