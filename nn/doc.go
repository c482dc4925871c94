// Copyright 2026 ChowDSP VCV Authors. All rights reserved.
// Use of this source code is governed by a GPL-3.0
// license that can be found in the LICENSE file.

// Package nn provides the per-sample neural network runtime behind the
// ChowRNN effect.
//
// # Overview
//
// This package contains:
//   - Layers: Affine, Tanh, GRU
//   - Model: sequential pipeline with construction-time width checking
//   - Randomizer: in-place uniform weight randomization
//   - State dicts: per-layer weight export/import with partial tolerance
//
// # Basic Usage
//
//	model := nn.NewModel(4)
//	for _, l := range []nn.Layer{
//	    nn.NewAffine(4, 4),
//	    nn.NewTanh(4),
//	    nn.NewGRU(4),
//	    nn.NewAffine(4, 1),
//	} {
//	    if err := model.AddLayer(l); err != nil {
//	        // widths do not chain
//	    }
//	}
//
//	y := model.Forward(input) // one sample in, one scalar out
//
// Forward allocates nothing: every layer owns its output and scratch
// buffers, sized once at construction. The GRU is the only stateful layer;
// Model.Reset zeroes its hidden state.
//
// # Persistence
//
//	doc := serialization.Document{"gru": gru.StateDict()}
//	gru.LoadStateDict(doc["gru"]) // identity round trip
//
// Loading tolerates missing or shape-mismatched fields by keeping the prior
// values, so documents written by older builds stay readable.
package nn
