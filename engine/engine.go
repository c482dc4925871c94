// Copyright 2026 ChowDSP VCV Authors. All rights reserved.
// Use of this source code is governed by a GPL-3.0
// license that can be found in the LICENSE file.

// Package engine exposes the ChowRNN effect engine: a small gated recurrent
// network run once per audio sample, with in-place weight randomization,
// weight persistence and a guard against numerical divergence.
//
// # Basic Usage
//
//	eng, err := engine.New(48000)
//	if err != nil {
//	    // construction-time shape violation
//	}
//
//	// once per audio sample, on the audio thread:
//	out := eng.Process(inputs, trigger, connected)
//
// Process is allocation-free and bounded; a non-finite inference output is
// recovered internally at the cost of a single zeroed sample. Weight
// persistence goes through StateDict/LoadStateDict off the audio thread.
package engine

import (
	"github.com/CardinalModules/ChowDSP-VCV/internal/engine"
	"github.com/CardinalModules/ChowDSP-VCV/internal/serialization"
)

// Network dimensions of the fixed topology.
const (
	NumDims   = engine.NumDims
	NumInputs = engine.NumInputs
)

// Engine is the composition root of the ChowRNN effect.
type Engine = engine.Engine

// Document is the persisted weight document produced by Engine.StateDict.
type Document = serialization.Document

// New assembles the fixed topology at the given sample rate.
func New(sampleRate float32) (*Engine, error) {
	return engine.New(sampleRate)
}
