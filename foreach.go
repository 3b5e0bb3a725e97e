// Copyright 2026 The vmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vmath

import "golang.org/x/exp/constraints"

// ForEachVector2 applies fn in place to each 2-component vector packed in
// data, reading and writing through stack-local values so concurrent calls
// over disjoint buffers never interfere. stride is the element distance
// between consecutive vectors (0 means tightly packed), offset is the
// index of the first component, and count limits how many vectors are
// visited (0 means as many as fit).
func ForEachVector2[T constraints.Float](data []T, stride, offset, count int, fn func(v Vector2[T]) Vector2[T]) {
	if stride == 0 {
		stride = 2
	}
	for i, j := 0, offset; (count == 0 || i < count) && j+2 <= len(data); i, j = i+1, j+stride {
		v := Vector2[T]{data[j], data[j+1]}
		v = fn(v)
		data[j] = v.X
		data[j+1] = v.Y
	}
}

// ForEachVector3 applies fn in place to each 3-component vector packed in
// data. See [ForEachVector2] for the stride, offset, and count semantics.
func ForEachVector3[T constraints.Float](data []T, stride, offset, count int, fn func(v Vector3[T]) Vector3[T]) {
	if stride == 0 {
		stride = 3
	}
	for i, j := 0, offset; (count == 0 || i < count) && j+3 <= len(data); i, j = i+1, j+stride {
		v := Vector3[T]{data[j], data[j+1], data[j+2]}
		v = fn(v)
		data[j] = v.X
		data[j+1] = v.Y
		data[j+2] = v.Z
	}
}

// ForEachVector4 applies fn in place to each 4-component vector packed in
// data. See [ForEachVector2] for the stride, offset, and count semantics.
func ForEachVector4[T constraints.Float](data []T, stride, offset, count int, fn func(v Vector4[T]) Vector4[T]) {
	if stride == 0 {
		stride = 4
	}
	for i, j := 0, offset; (count == 0 || i < count) && j+4 <= len(data); i, j = i+1, j+stride {
		v := Vector4[T]{data[j], data[j+1], data[j+2], data[j+3]}
		v = fn(v)
		data[j] = v.X
		data[j+1] = v.Y
		data[j+2] = v.Z
		data[j+3] = v.W
	}
}
