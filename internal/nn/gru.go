package nn

import "github.com/CardinalModules/ChowDSP-VCV/internal/tensor"

// GRU is a gated recurrent layer with a persistent hidden state.
//
// Given input x_t and previous state h_{t-1}:
//
//	r_t = σ(Wr·x_t + Ur·h_{t-1} + br)
//	z_t = σ(Wz·x_t + Uz·h_{t-1} + bz)
//	n_t = tanh(Wn·x_t + Un·(r_t ⊙ h_{t-1}) + bn)
//	h_t = (1 − z_t) ⊙ n_t + z_t ⊙ h_{t-1}
//
// Forward returns h_t and commits it as the new state, so the layer's output
// depends on call history. The block is square: input, hidden and output
// widths are all equal.
type GRU struct {
	size int

	wr, wz, wn *tensor.Matrix // input kernels, size×size
	ur, uz, un *tensor.Matrix // recurrent kernels, size×size
	br, bz, bn tensor.Vector

	h tensor.Vector // persistent hidden state

	// gate scratch, allocated once
	r, z, n, rh tensor.Vector
}

// NewGRU creates a gated recurrent layer of the given width with all weights
// zero and a zero hidden state.
func NewGRU(size int) *GRU {
	mat := func() *tensor.Matrix {
		m, err := tensor.NewMatrix(size, size)
		if err != nil {
			panic(err)
		}
		return m
	}
	return &GRU{
		size: size,
		wr:   mat(), wz: mat(), wn: mat(),
		ur: mat(), uz: mat(), un: mat(),
		br: tensor.NewVector(size), bz: tensor.NewVector(size), bn: tensor.NewVector(size),
		h: tensor.NewVector(size),
		r: tensor.NewVector(size), z: tensor.NewVector(size),
		n: tensor.NewVector(size), rh: tensor.NewVector(size),
	}
}

// Forward advances the recurrence by one step and returns the new hidden
// state. The returned slice is the state itself; callers must not write to it.
func (g *GRU) Forward(x []float32) []float32 {
	// reset and update gates
	g.wr.MulVec(g.r, x)
	g.ur.MulVecAdd(g.r, g.h)
	g.wz.MulVec(g.z, x)
	g.uz.MulVecAdd(g.z, g.h)
	for i := 0; i < g.size; i++ {
		g.r[i] = sigmoid(g.r[i] + g.br[i])
		g.z[i] = sigmoid(g.z[i] + g.bz[i])
	}

	// candidate state sees the reset-gated history
	for i := 0; i < g.size; i++ {
		g.rh[i] = g.r[i] * g.h[i]
	}
	g.wn.MulVec(g.n, x)
	g.un.MulVecAdd(g.n, g.rh)
	for i := 0; i < g.size; i++ {
		g.n[i] = tanh(g.n[i] + g.bn[i])
	}

	// blend new and old, commit
	for i := 0; i < g.size; i++ {
		g.h[i] = (1-g.z[i])*g.n[i] + g.z[i]*g.h[i]
	}
	return g.h
}

// Reset zeroes the hidden state. Weights are untouched.
func (g *GRU) Reset() {
	g.h.Zero()
}

// InSize returns the block width.
func (g *GRU) InSize() int { return g.size }

// OutSize returns the block width.
func (g *GRU) OutSize() int { return g.size }

// State returns the persistent hidden state. It is live: Forward overwrites
// it on every call.
func (g *GRU) State() tensor.Vector { return g.h }
