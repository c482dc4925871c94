// Copyright 2026 ChowDSP VCV Authors. All rights reserved.
// Use of this source code is governed by a GPL-3.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/CardinalModules/ChowDSP-VCV/internal/nn"
	"github.com/CardinalModules/ChowDSP-VCV/internal/serialization"
)

// Layer is the base interface for all network layers.
type Layer = nn.Layer

// Affine is a fully connected layer computing W·x + b.
type Affine = nn.Affine

// Tanh is an elementwise hyperbolic tangent activation.
type Tanh = nn.Tanh

// GRU is a gated recurrent layer with persistent hidden state.
type GRU = nn.GRU

// Model is an ordered pipeline of layers sharing a fixed vector width.
type Model = nn.Model

// Randomizer overwrites layer parameters in place with uniform draws.
type Randomizer = nn.Randomizer

// StateLayer is implemented by layers that export/import weight records.
type StateLayer = nn.StateLayer

// Record is one flattened parameter tensor in a persistence document.
type Record = serialization.Record

// Document is the persisted weight document: layer key → named records.
type Document = serialization.Document

// NewAffine creates an affine layer mapping in inputs to out outputs.
func NewAffine(in, out int) *Affine {
	return nn.NewAffine(in, out)
}

// NewTanh creates a tanh activation over vectors of the given size.
func NewTanh(size int) *Tanh {
	return nn.NewTanh(size)
}

// NewGRU creates a gated recurrent layer of the given width.
func NewGRU(size int) *GRU {
	return nn.NewGRU(size)
}

// NewModel creates an empty model with the given input vector width.
func NewModel(width int) *Model {
	return nn.NewModel(width)
}

// NewRandomizer creates a time-seeded randomizer.
func NewRandomizer() *Randomizer {
	return nn.NewRandomizer()
}

// NewRandomizerSeeded creates a randomizer with a fixed seed.
func NewRandomizerSeeded(seed int64) *Randomizer {
	return nn.NewRandomizerSeeded(seed)
}

// EncodeDocument serializes a weight document to JSON.
func EncodeDocument(doc Document) ([]byte, error) {
	return serialization.Encode(doc)
}

// DecodeDocument parses a JSON weight document.
func DecodeDocument(data []byte) (Document, error) {
	return serialization.Decode(data)
}
