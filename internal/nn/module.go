// Package nn implements the per-sample neural network runtime.
//
// This package provides the building blocks of the fixed inference topology:
//   - Layer interface: base interface for all layers
//   - Affine: linear transform plus bias
//   - Tanh: elementwise hyperbolic tangent activation
//   - GRU: gated recurrent layer with persistent hidden state
//   - Model: sequential pipeline with construction-time width checking
//   - Randomizer: in-place uniform re-randomization of layer weights
//
// The runtime is inference-only and built to be called once per audio
// sample: every layer owns its output and scratch buffers, so Forward never
// allocates, and no method blocks or suspends.
package nn

import "math"

// Layer is the base interface for all network layers.
//
// Forward computes the layer's output for one input vector. The returned
// slice is owned by the layer and is overwritten on the next call; callers
// must not retain it.
//
// Reset clears any persistent state. Stateless layers treat it as a no-op.
type Layer interface {
	Forward(x []float32) []float32
	Reset()
	InSize() int
	OutSize() int
}

func sigmoid(x float32) float32 {
	return 1.0 / (1.0 + float32(math.Exp(float64(-x))))
}

func tanh(x float32) float32 {
	return float32(math.Tanh(float64(x)))
}
