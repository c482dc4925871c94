// Package dsp provides the post-processing filter stage for the effect
// engine: a biquad highpass used as a DC blocker on the network output.
package dsp

import "math"

// Biquad is a second-order IIR filter in transposed direct form II.
//
// Coefficients are cooked by SetHighpass outside the per-sample path;
// Process is one multiply-accumulate step with no allocation.
type Biquad struct {
	b0, b1, b2 float32
	a1, a2     float32

	z1, z2 float32
}

// NewHighpass creates a biquad configured as a highpass with the given
// cutoff (Hz), sample rate (Hz) and quality factor.
func NewHighpass(cutoff, sampleRate, q float32) *Biquad {
	f := &Biquad{}
	f.SetHighpass(cutoff, sampleRate, q)
	return f
}

// SetHighpass recomputes the coefficients (RBJ audio EQ cookbook highpass).
// Filter state is preserved so a sample-rate change does not click.
func (f *Biquad) SetHighpass(cutoff, sampleRate, q float32) {
	w0 := 2 * math.Pi * float64(cutoff) / float64(sampleRate)
	cosw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * float64(q))

	a0 := 1 + alpha
	f.b0 = float32((1 + cosw) / 2 / a0)
	f.b1 = float32(-(1 + cosw) / a0)
	f.b2 = f.b0
	f.a1 = float32(-2 * cosw / a0)
	f.a2 = float32((1 - alpha) / a0)
}

// Process filters one sample.
func (f *Biquad) Process(x float32) float32 {
	y := f.b0*x + f.z1
	f.z1 = f.b1*x - f.a1*y + f.z2
	f.z2 = f.b2*x - f.a2*y
	return y
}

// Reset clears the filter state.
func (f *Biquad) Reset() {
	f.z1 = 0
	f.z2 = 0
}
