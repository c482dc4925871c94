package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CardinalModules/ChowDSP-VCV/internal/serialization"
	"github.com/CardinalModules/ChowDSP-VCV/internal/tensor"
)

// load(save(layer)) must reproduce the exact same tensors.
func TestAffineStateDictRoundTrip(t *testing.T) {
	src := NewAffine(4, 3)
	rando := NewRandomizerSeeded(17)
	rando.RandomizeAffineWeights(src)
	rando.RandomizeAffineBias(src)

	dst := NewAffine(4, 3)
	dst.LoadStateDict(src.StateDict())

	assert.Equal(t, src.Weights().Data(), dst.Weights().Data())
	assert.Equal(t, src.Bias(), dst.Bias())
}

func TestGRUStateDictRoundTrip(t *testing.T) {
	src := NewGRU(4)
	NewRandomizerSeeded(23).RandomizeGRU(src)

	dst := NewGRU(4)
	dst.LoadStateDict(src.StateDict())

	assert.Equal(t, src.StateDict(), dst.StateDict())
	assert.Equal(t, []float32{0, 0, 0, 0}, []float32(dst.State()),
		"hidden state is never serialized")
}

// A dict missing a field leaves that parameter untouched.
func TestLoadStateDictMissingField(t *testing.T) {
	l := NewAffine(2, 2)
	rando := NewRandomizerSeeded(31)
	rando.RandomizeAffineWeights(l)
	rando.RandomizeAffineBias(l)
	priorBias := l.Bias().Clone()

	sd := map[string]serialization.Record{
		"W": serialization.NewRecord(tensor.Shape{2, 2}, []float32{1, 2, 3, 4}),
		// no "b"
	}
	l.LoadStateDict(sd)

	assert.Equal(t, []float32{1, 2, 3, 4}, l.Weights().Data())
	assert.Equal(t, priorBias, l.Bias())
}

// A field with the wrong element count is treated as absent for that field.
func TestLoadStateDictWrongShape(t *testing.T) {
	l := NewAffine(2, 2)
	NewRandomizerSeeded(37).RandomizeAffineWeights(l)
	prior := append([]float32(nil), l.Weights().Data()...)

	sd := map[string]serialization.Record{
		"W": serialization.NewRecord(tensor.Shape{3, 3}, make([]float32, 9)),
		"b": serialization.NewRecord(tensor.Shape{2}, []float32{5, 6}),
	}
	l.LoadStateDict(sd)

	assert.Equal(t, prior, l.Weights().Data(), "mismatched field is skipped")
	assert.Equal(t, tensor.Vector{5, 6}, l.Bias(), "matching field still loads")
}

// Round trip through the JSON document codec, element for element.
func TestStateDictThroughDocument(t *testing.T) {
	src := NewGRU(4)
	NewRandomizerSeeded(41).RandomizeGRU(src)

	doc := serialization.Document{"gru": src.StateDict()}
	data, err := serialization.Encode(doc)
	require.NoError(t, err)
	decoded, err := serialization.Decode(data)
	require.NoError(t, err)

	dst := NewGRU(4)
	dst.LoadStateDict(decoded["gru"])
	assert.Equal(t, src.StateDict(), dst.StateDict())
}

func TestStateLayerInterface(_ *testing.T) {
	var _ StateLayer = (*Affine)(nil)
	var _ StateLayer = (*GRU)(nil)
}
