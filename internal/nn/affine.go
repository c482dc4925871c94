package nn

import "github.com/CardinalModules/ChowDSP-VCV/internal/tensor"

// Affine is a fully connected layer computing W·x + b.
//
// It is a pure function of the input and its weights; Reset is a no-op.
type Affine struct {
	w   *tensor.Matrix // out×in
	b   tensor.Vector  // out
	out tensor.Vector
}

// NewAffine creates an affine layer mapping in inputs to out outputs, with
// all weights and biases zero.
func NewAffine(in, out int) *Affine {
	w, err := tensor.NewMatrix(out, in)
	if err != nil {
		panic(err)
	}
	return &Affine{
		w:   w,
		b:   tensor.NewVector(out),
		out: tensor.NewVector(out),
	}
}

// Forward computes W·x + b into the layer-owned output buffer.
func (a *Affine) Forward(x []float32) []float32 {
	a.w.MulVec(a.out, x)
	for i := range a.out {
		a.out[i] += a.b[i]
	}
	return a.out
}

// Reset is a no-op; affine layers carry no state.
func (a *Affine) Reset() {}

// InSize returns the input width.
func (a *Affine) InSize() int { return a.w.Cols() }

// OutSize returns the output width.
func (a *Affine) OutSize() int { return a.w.Rows() }

// Weights returns the weight matrix for in-place mutation.
func (a *Affine) Weights() *tensor.Matrix { return a.w }

// Bias returns the bias vector for in-place mutation.
func (a *Affine) Bias() tensor.Vector { return a.b }
