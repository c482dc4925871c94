package dsp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSampleRate = 48000

// A 30 Hz highpass must remove a DC offset: after the transient settles the
// output of a constant input approaches zero.
func TestHighpassBlocksDC(t *testing.T) {
	f := NewHighpass(30, testSampleRate, float32(math.Sqrt2/2))

	var y float32
	for i := 0; i < testSampleRate; i++ {
		y = f.Process(0.5)
	}
	assert.InDelta(t, 0, float64(y), 1e-3)
}

// Audio-band content passes mostly unattenuated.
func TestHighpassPassesAudio(t *testing.T) {
	f := NewHighpass(30, testSampleRate, float32(math.Sqrt2/2))

	const freq = 1000.0
	var peak float64
	for i := 0; i < testSampleRate; i++ {
		x := math.Sin(2 * math.Pi * freq * float64(i) / testSampleRate)
		y := f.Process(float32(x))
		if i > testSampleRate/2 {
			peak = math.Max(peak, math.Abs(float64(y)))
		}
	}
	assert.InDelta(t, 1.0, peak, 0.05)
}

func TestBiquadReset(t *testing.T) {
	f := NewHighpass(30, testSampleRate, float32(math.Sqrt2/2))
	for i := 0; i < 100; i++ {
		f.Process(1)
	}
	f.Reset()

	// first sample after reset equals the first sample of a fresh filter
	fresh := NewHighpass(30, testSampleRate, float32(math.Sqrt2/2))
	assert.Equal(t, fresh.Process(0.25), f.Process(0.25))
}

// Changing the sample rate re-cooks coefficients without clearing state.
func TestSetHighpassKeepsState(t *testing.T) {
	f := NewHighpass(30, testSampleRate, float32(math.Sqrt2/2))
	for i := 0; i < 10; i++ {
		f.Process(1)
	}
	f.SetHighpass(30, 44100, float32(math.Sqrt2/2))
	y := f.Process(1)
	assert.False(t, math.IsNaN(float64(y)))
	assert.NotZero(t, f.z1)
}
