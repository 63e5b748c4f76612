package synth

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/override/config"
)

func samples(buf []byte) []int16 {
	out := make([]int16, 0, len(buf)/2)
	for i := 0; i+1 < len(buf); i += 2 {
		out = append(out, int16(binary.LittleEndian.Uint16(buf[i:])))
	}
	return out
}

func TestToneLengthAndStereo(t *testing.T) {
	tone := config.Tone{StartHz: 440, EndHz: 880, Seconds: 0.1, Wave: config.WaveSquare, Volume: 0.5}
	buf := Tone(tone, 44100)
	require.Len(t, buf, 4410*BytesPerFrame)

	s := samples(buf)
	for i := 0; i < len(s); i += 2 {
		require.Equal(t, s[i], s[i+1], "left and right match at %d", i/2)
	}
}

func TestToneStaysWithinVolume(t *testing.T) {
	for _, w := range []config.Waveform{config.WaveSquare, config.WaveTriangle, config.WaveNoise} {
		tone := config.Tone{StartHz: 300, EndHz: 100, Seconds: 0.05, Wave: w, Volume: 0.25}
		limit := int16(8192) // ceil(0.25 * 32767)
		for _, v := range samples(Tone(tone, 22050)) {
			assert.LessOrEqual(t, v, limit)
			assert.GreaterOrEqual(t, v, -limit)
		}
	}
}

func TestToneStartsAndEndsSilent(t *testing.T) {
	s := samples(Tone(config.Tone{StartHz: 440, EndHz: 440, Seconds: 0.05, Volume: 1}, 44100))
	assert.Zero(t, s[0])
	assert.Zero(t, s[len(s)-1])
}

func TestNoiseIsRepeatable(t *testing.T) {
	tone := config.Tone{StartHz: 400, EndHz: 60, Seconds: 0.02, Wave: config.WaveNoise, Volume: 0.4}
	assert.Equal(t, Tone(tone, 44100), Tone(tone, 44100))
}

func TestThemeRestsAreSilent(t *testing.T) {
	th := config.Theme{Notes: []float64{440, 0}, NoteSeconds: 0.01, Wave: config.WaveTriangle, Volume: 0.3}
	buf := Theme(th, 10000)
	require.Len(t, buf, 2*100*BytesPerFrame)

	rest := samples(buf[100*BytesPerFrame:])
	for _, v := range rest {
		require.Zero(t, v)
	}
}

func TestEmptyInputsRenderNothing(t *testing.T) {
	assert.Nil(t, Tone(config.Tone{Seconds: 0}, 44100))
	assert.Nil(t, Theme(config.Theme{NoteSeconds: 0.1}, 44100))
}
