// Package serialization defines the persisted weight-document format.
//
// A Document is a nested key-value structure: one top-level key per
// weight-bearing layer, each mapping to named parameter Records. Records
// carry the flattened float32 values plus the shape needed to reconstruct
// them, so a loader can verify a record against the tensor it is about to
// overwrite.
//
// Loading is deliberately tolerant: a missing key or a record whose element
// count does not match the target tensor is skipped, never fatal. This lets
// newer builds read documents written before a field existed, and lets the
// host hand over a partially populated document without losing the weights
// already in memory.
//
// The host owns reading and writing documents to storage; this package only
// provides the in-memory structure and its JSON encoding.
package serialization
