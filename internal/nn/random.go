package nn

import (
	"math/rand"
	"time"
)

// weightScale bounds the uniform randomization range [-weightScale,
// weightScale). The exact bound is a tuning choice, not a contract: it only
// needs to produce audibly different network behavior on each draw.
const weightScale = 1.0

// Randomizer overwrites layer parameters in place with independent uniform
// draws. It never touches a GRU's hidden state; resetting state is a
// separate, explicit operation.
//
// The engine runs single-threaded, so no synchronization is needed between
// randomization and Forward: the next sample simply sees the new weights.
type Randomizer struct {
	rng *rand.Rand
}

// NewRandomizer creates a time-seeded randomizer.
func NewRandomizer() *Randomizer {
	return NewRandomizerSeeded(time.Now().UnixNano())
}

// NewRandomizerSeeded creates a randomizer with a fixed seed, for
// reproducible draws.
func NewRandomizerSeeded(seed int64) *Randomizer {
	//nolint:gosec // math/rand is fine for weight randomization (not security-critical)
	return &Randomizer{rng: rand.New(rand.NewSource(seed))}
}

func (r *Randomizer) draw() float32 {
	return (r.rng.Float32()*2.0 - 1.0) * weightScale
}

func (r *Randomizer) fill(data []float32) {
	for i := range data {
		data[i] = r.draw()
	}
}

// RandomizeAffineWeights overwrites every element of the layer's weight
// matrix with a fresh draw.
func (r *Randomizer) RandomizeAffineWeights(l *Affine) {
	r.fill(l.w.Data())
}

// RandomizeAffineBias overwrites every element of the layer's bias vector.
func (r *Randomizer) RandomizeAffineBias(l *Affine) {
	r.fill(l.b)
}

// ZeroAffineBias sets the layer's bias to zero. Used on the output layer so
// the network carries no baked-in DC offset ahead of the DC blocker.
func (r *Randomizer) ZeroAffineBias(l *Affine) {
	l.b.Zero()
}

// RandomizeGRU overwrites every weight and bias of the gated recurrent
// layer. The persistent hidden state is left as is.
func (r *Randomizer) RandomizeGRU(l *GRU) {
	r.fill(l.wr.Data())
	r.fill(l.wz.Data())
	r.fill(l.wn.Data())
	r.fill(l.ur.Data())
	r.fill(l.uz.Data())
	r.fill(l.un.Data())
	r.fill(l.br)
	r.fill(l.bz)
	r.fill(l.bn)
}
