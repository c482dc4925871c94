// Package main provides a demo player for the ChowRNN effect: it drives the
// network with a pair of detuned oscillators plus noise, re-randomizes the
// weights every few seconds, and streams the result to the sound card.
package main

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/CardinalModules/ChowDSP-VCV/engine"
)

const version = "v0.1.0-dev"

const (
	sampleRate = 48000

	// seconds between automatic weight randomizations
	randomizeEvery = 4

	// input drive in volts; the effect expects modular-level signals
	inputLevel = 5.0
)

// rnnStream feeds the engine one sample at a time and yields float32 LE
// frames to the audio backend.
type rnnStream struct {
	eng    *engine.Engine
	phase  [engine.NumInputs]float64
	freqs  [engine.NumInputs]float64
	inputs [engine.NumInputs]float32

	untilRandomize int
}

func newRNNStream(eng *engine.Engine) *rnnStream {
	return &rnnStream{
		eng: eng,
		// two detuned saw-range fundamentals, one fifth, one sub
		freqs:          [engine.NumInputs]float64{110, 110.7, 165, 55},
		untilRandomize: randomizeEvery * sampleRate,
	}
}

func (s *rnnStream) Read(p []byte) (int, error) {
	n := len(p) / 4
	for i := 0; i < n; i++ {
		trigger := false
		s.untilRandomize--
		if s.untilRandomize <= 0 {
			trigger = true
			s.untilRandomize = randomizeEvery * sampleRate
		}

		for c := range s.inputs {
			osc := math.Sin(s.phase[c])
			s.inputs[c] = float32(osc*inputLevel + (rand.Float64()*2-1)*0.1)
			s.phase[c] += 2 * math.Pi * s.freqs[c] / sampleRate
			if s.phase[c] > 2*math.Pi {
				s.phase[c] -= 2 * math.Pi
			}
		}

		y := s.eng.Process(s.inputs[:], trigger, engine.NumInputs) / inputLevel
		if y > 1 {
			y = 1
		} else if y < -1 {
			y = -1
		}
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(y))
	}
	return n * 4, nil
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("chowrnn %s\n", version)
		return
	}

	eng, err := engine.New(sampleRate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chowrnn: %v\n", err)
		os.Exit(1)
	}
	eng.Randomize()

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   50 * time.Millisecond,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chowrnn: audio device: %v\n", err)
		os.Exit(1)
	}
	<-ready

	player := ctx.NewPlayer(newRNNStream(eng))
	player.Play()

	fmt.Printf("chowrnn %s — playing at %d Hz, re-randomizing every %ds (Ctrl-C to quit)\n",
		version, sampleRate, randomizeEvery)
	select {}
}
