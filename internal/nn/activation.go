package nn

import "github.com/CardinalModules/ChowDSP-VCV/internal/tensor"

// Tanh applies the hyperbolic tangent elementwise: f(x)_i = tanh(x_i).
//
// Stateless and shape-preserving.
type Tanh struct {
	out tensor.Vector
}

// NewTanh creates a tanh activation over vectors of the given size.
func NewTanh(size int) *Tanh {
	return &Tanh{out: tensor.NewVector(size)}
}

// Forward applies tanh to every element of x.
func (t *Tanh) Forward(x []float32) []float32 {
	for i := range t.out {
		t.out[i] = tanh(x[i])
	}
	return t.out
}

// Reset is a no-op.
func (t *Tanh) Reset() {}

// InSize returns the vector width.
func (t *Tanh) InSize() int { return len(t.out) }

// OutSize returns the vector width.
func (t *Tanh) OutSize() int { return len(t.out) }
