// Copyright 2026 ChowDSP VCV Authors. All rights reserved.
// Use of this source code is governed by a GPL-3.0
// license that can be found in the LICENSE file.

// Package dsp exposes the post-processing filter stage: a biquad highpass
// used to block the DC offset the network introduces.
package dsp

import (
	"github.com/CardinalModules/ChowDSP-VCV/internal/dsp"
)

// Biquad is a second-order IIR filter in transposed direct form II.
type Biquad = dsp.Biquad

// NewHighpass creates a biquad configured as a highpass with the given
// cutoff (Hz), sample rate (Hz) and quality factor.
func NewHighpass(cutoff, sampleRate, q float32) *Biquad {
	return dsp.NewHighpass(cutoff, sampleRate, q)
}
