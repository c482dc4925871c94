package serialization

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/CardinalModules/ChowDSP-VCV/internal/tensor"
)

// Common errors.
var (
	ErrInvalidDocument = errors.New("invalid weight document")
)

// Record is one flattened parameter tensor: its shape plus the row-major
// element values.
type Record struct {
	Shape tensor.Shape `json:"shape"`
	Data  []float32    `json:"data"`
}

// NewRecord copies src into a fresh Record with the given shape.
func NewRecord(shape tensor.Shape, src []float32) Record {
	data := make([]float32, len(src))
	copy(data, src)
	return Record{Shape: shape.Clone(), Data: data}
}

// Matches reports whether the record can be loaded into a tensor of the
// given shape. A record with the wrong shape or a short/long data slice is
// treated as absent by loaders.
func (r Record) Matches(shape tensor.Shape) bool {
	return r.Shape.Equal(shape) && len(r.Data) == shape.NumElements()
}

// Document maps layer keys to that layer's named parameter records.
type Document map[string]map[string]Record

// Encode serializes the document to JSON.
func Encode(doc Document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode weight document: %w", err)
	}
	return data, nil
}

// Decode parses a JSON weight document.
func Decode(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return doc, nil
}
