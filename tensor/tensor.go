// Copyright 2026 ChowDSP VCV Authors. All rights reserved.
// Use of this source code is governed by a GPL-3.0
// license that can be found in the LICENSE file.

// Package tensor exposes the fixed-shape float32 containers used by the
// inference runtime.
//
// Shapes are fixed at construction and never change; all hot-path operations
// are allocation-free. See the nn package for the layers built on top.
package tensor

import (
	"github.com/CardinalModules/ChowDSP-VCV/internal/tensor"
)

// Shape represents the dimensions of a parameter tensor.
type Shape = tensor.Shape

// Vector is a dense float32 vector with a fixed length.
type Vector = tensor.Vector

// Matrix is a dense rows×cols float32 matrix in row-major layout.
type Matrix = tensor.Matrix

// NewVector creates a zero-filled vector of length n.
func NewVector(n int) Vector {
	return tensor.NewVector(n)
}

// NewMatrix creates a zero-filled rows×cols matrix.
func NewMatrix(rows, cols int) (*Matrix, error) {
	return tensor.NewMatrix(rows, cols)
}
