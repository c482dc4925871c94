// Package engine implements the ChowRNN effect: a small gated recurrent
// network run once per audio sample, with in-place weight randomization,
// weight persistence and a guard against numerical divergence.
package engine

import (
	"fmt"
	"math"

	"github.com/CardinalModules/ChowDSP-VCV/internal/dsp"
	"github.com/CardinalModules/ChowDSP-VCV/internal/nn"
	"github.com/CardinalModules/ChowDSP-VCV/internal/serialization"
)

const (
	// NumDims is the network width: the number of input channels and the
	// vector width threading through every stage before the output layer.
	NumDims = 4

	// NumInputs is the number of input connections the makeup gain
	// compensates against.
	NumInputs = NumDims

	// dcBlockerCutoff is the highpass cutoff in Hz used to strip the DC
	// offset the network introduces.
	dcBlockerCutoff = 30.0
)

// Layer indices of the fixed topology.
const (
	layerDense1 = iota
	layerTanh
	layerGRU
	layerDenseOut
)

// Keys identifying each weight-bearing layer in the persistence document.
const (
	keyDense1   = "dense1"
	keyGRU      = "gru"
	keyDenseOut = "denseOut"
)

// Engine is the composition root: one model, one randomizer and the DC
// blocker, orchestrated once per sample by Process.
//
// Everything runs single-threaded on the audio callback. StateDict and
// LoadStateDict must not race an in-flight Process call; the host serializes
// them against the audio thread.
type Engine struct {
	model      *nn.Model
	rando      *nn.Randomizer
	dcBlocker  *dsp.Biquad
	sampleRate float32
}

// New assembles the fixed topology
// Affine(4→4) → Tanh(4) → GRU(4) → Affine(4→1)
// with all weights zero and configures the DC blocker for the given sample
// rate.
func New(sampleRate float32) (*Engine, error) {
	model := nn.NewModel(NumDims)
	layers := []nn.Layer{
		nn.NewAffine(NumDims, NumDims),
		nn.NewTanh(NumDims),
		nn.NewGRU(NumDims),
		nn.NewAffine(NumDims, 1),
	}
	for _, l := range layers {
		if err := model.AddLayer(l); err != nil {
			return nil, fmt.Errorf("assemble model: %w", err)
		}
	}
	model.Reset()

	rando := nn.NewRandomizer()

	// no bias on the output layer, since the DC blocker removes any
	// constant offset anyway
	if out, ok := model.Layer(layerDenseOut).(*nn.Affine); ok {
		rando.ZeroAffineBias(out)
	}

	e := &Engine{
		model:     model,
		rando:     rando,
		dcBlocker: dsp.NewHighpass(dcBlockerCutoff, sampleRate, float32(math.Sqrt2/2)),
	}
	e.sampleRate = sampleRate
	return e, nil
}

// Randomize overwrites the network's weights in place: weights and bias of
// the first affine layer, all GRU tensors, and weights only of the output
// layer (its bias stays zero). The GRU's hidden state is untouched.
func (e *Engine) Randomize() {
	if d, ok := e.model.Layer(layerDense1).(*nn.Affine); ok {
		e.rando.RandomizeAffineWeights(d)
		e.rando.RandomizeAffineBias(d)
	}
	if g, ok := e.model.Layer(layerGRU).(*nn.GRU); ok {
		e.rando.RandomizeGRU(g)
	}
	if d, ok := e.model.Layer(layerDenseOut).(*nn.Affine); ok {
		e.rando.RandomizeAffineWeights(d)
	}
}

// Process runs one sample through the effect.
//
// inputs must have NumInputs elements. trigger requests a weight
// randomization before inference. connected is the number of driven inputs,
// used for makeup gain; values below 1 are floored to 1.
func (e *Engine) Process(inputs []float32, trigger bool, connected int) float32 {
	if trigger {
		e.Randomize()
	}

	y := e.model.Forward(inputs)

	// A diverged recurrent state shows up as a non-finite output. Emit one
	// zero sample and start the recurrence over.
	if y64 := float64(y); math.IsNaN(y64) || math.IsInf(y64, 0) {
		y = 0
		e.model.Reset()
	}

	y = e.dcBlocker.Process(y)

	if connected < 1 {
		connected = 1
	}
	return y * (NumInputs / float32(connected))
}

// Reset zeroes the recurrent state.
func (e *Engine) Reset() {
	e.model.Reset()
}

// SetSampleRate re-cooks the DC blocker for a new sample rate.
func (e *Engine) SetSampleRate(sampleRate float32) {
	e.sampleRate = sampleRate
	e.dcBlocker.SetHighpass(dcBlockerCutoff, sampleRate, float32(math.Sqrt2/2))
}

// SampleRate returns the current sample rate.
func (e *Engine) SampleRate() float32 { return e.sampleRate }

// Model exposes the inference model, for hosts that load hand-designed or
// externally trained weights into individual layers.
func (e *Engine) Model() *nn.Model { return e.model }

// StateDict exports the network weights as a persistence document with one
// key per weight-bearing layer.
func (e *Engine) StateDict() serialization.Document {
	doc := serialization.Document{}
	if d, ok := e.model.Layer(layerDense1).(*nn.Affine); ok {
		doc[keyDense1] = d.StateDict()
	}
	if g, ok := e.model.Layer(layerGRU).(*nn.GRU); ok {
		doc[keyGRU] = g.StateDict()
	}
	if d, ok := e.model.Layer(layerDenseOut).(*nn.Affine); ok {
		doc[keyDenseOut] = d.StateDict()
	}
	return doc
}

// LoadStateDict overwrites the network weights from a persistence document.
// A layer key absent from the document is skipped, as are fields a layer's
// loader cannot match; prior weights remain in either case.
func (e *Engine) LoadStateDict(doc serialization.Document) {
	if sd, ok := doc[keyDense1]; ok {
		if d, ok := e.model.Layer(layerDense1).(*nn.Affine); ok {
			d.LoadStateDict(sd)
		}
	}
	if sd, ok := doc[keyGRU]; ok {
		if g, ok := e.model.Layer(layerGRU).(*nn.GRU); ok {
			g.LoadStateDict(sd)
		}
	}
	if sd, ok := doc[keyDenseOut]; ok {
		if d, ok := e.model.Layer(layerDenseOut).(*nn.Affine); ok {
			d.LoadStateDict(sd)
		}
	}
}
