// Package synth renders the game's sound effects and music as raw PCM, so
// the client ships no audio files. Output is 16-bit signed little-endian
// stereo, the format ebiten's audio players read.
package synth

import (
	"encoding/binary"
	"math"
	"math/rand/v2"

	"github.com/automoto/override/config"
)

// BytesPerFrame is one stereo sample pair.
const BytesPerFrame = 4

// fadeSamples softens note edges to avoid clicks.
const fadeSamples = 64

// Tone renders a pitch sweep with a linear decay. Noise uses a fixed seed so
// the same tone always renders the same bytes.
func Tone(t config.Tone, sampleRate int) []byte {
	n := int(t.Seconds * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n*BytesPerFrame)
	rng := rand.New(rand.NewPCG(uint64(t.StartHz), uint64(t.EndHz)))

	phase := 0.0
	for i := range n {
		p := float64(i) / float64(n)
		hz := t.StartHz + (t.EndHz-t.StartHz)*p
		phase += hz / float64(sampleRate)
		phase -= math.Floor(phase)

		v := oscillate(t.Wave, phase, rng) * t.Volume * (1 - p) * edge(i, n)
		putFrame(buf, i, v)
	}
	return buf
}

// Theme renders one pass of a looping note sequence.
func Theme(th config.Theme, sampleRate int) []byte {
	per := int(th.NoteSeconds * float64(sampleRate))
	if per <= 0 || len(th.Notes) == 0 {
		return nil
	}
	buf := make([]byte, per*len(th.Notes)*BytesPerFrame)
	rng := rand.New(rand.NewPCG(1, 2))

	for ni, hz := range th.Notes {
		if hz <= 0 {
			continue
		}
		phase := 0.0
		for i := range per {
			phase += hz / float64(sampleRate)
			phase -= math.Floor(phase)
			// Notes decay to 40% so consecutive equal notes stay distinct.
			env := 1 - 0.6*float64(i)/float64(per)
			v := oscillate(th.Wave, phase, rng) * th.Volume * env * edge(i, per)
			putFrame(buf, ni*per+i, v)
		}
	}
	return buf
}

func oscillate(w config.Waveform, phase float64, rng *rand.Rand) float64 {
	switch w {
	case config.WaveTriangle:
		return 4*math.Abs(phase-0.5) - 1
	case config.WaveNoise:
		return rng.Float64()*2 - 1
	}
	if phase < 0.5 {
		return 1
	}
	return -1
}

func edge(i, n int) float64 {
	switch {
	case i < fadeSamples:
		return float64(i) / fadeSamples
	case n-i < fadeSamples:
		return float64(n-i) / fadeSamples
	}
	return 1
}

func putFrame(buf []byte, i int, v float64) {
	v = math.Max(-1, math.Min(1, v))
	s := uint16(int16(v * math.MaxInt16))
	off := i * BytesPerFrame
	binary.LittleEndian.PutUint16(buf[off:], s)
	binary.LittleEndian.PutUint16(buf[off+2:], s)
}
