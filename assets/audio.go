// Package assets builds the client's generated media: synthesized sound
// effects and music loops.
package assets

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/automoto/override/assets/synth"
	"github.com/automoto/override/config"
)

// SoundBank renders and caches PCM for every configured sound.
type SoundBank struct {
	sfxCache   map[config.SoundID][]byte
	musicCache map[config.MusicID][]byte
	context    *audio.Context
}

// NewSoundBank creates a bank bound to the given context.
func NewSoundBank(ctx *audio.Context) *SoundBank {
	return &SoundBank{
		sfxCache:   make(map[config.SoundID][]byte),
		musicCache: make(map[config.MusicID][]byte),
		context:    ctx,
	}
}

// PreloadAll renders every sound effect up front so the first play has no
// synthesis lag.
func (b *SoundBank) PreloadAll() {
	for id := range config.Sound.Tones {
		b.pcm(id)
	}
}

func (b *SoundBank) pcm(id config.SoundID) ([]byte, bool) {
	if data, ok := b.sfxCache[id]; ok {
		return data, true
	}
	tone, ok := config.Sound.Tones[id]
	if !ok {
		return nil, false
	}
	data := synth.Tone(tone, b.context.SampleRate())
	b.sfxCache[id] = data
	return data, true
}

// SFX returns a fresh player for a sound effect.
func (b *SoundBank) SFX(id config.SoundID) (*audio.Player, error) {
	data, ok := b.pcm(id)
	if !ok {
		return nil, fmt.Errorf("no tone configured for sound %d", id)
	}
	return b.context.NewPlayer(bytes.NewReader(data))
}

// Music returns a looping player for a theme.
func (b *SoundBank) Music(id config.MusicID) (*audio.Player, error) {
	data, ok := b.musicCache[id]
	if !ok {
		th, found := config.Sound.Themes[id]
		if !found {
			return nil, fmt.Errorf("no theme configured for music %d", id)
		}
		data = synth.Theme(th, b.context.SampleRate())
		if len(data) == 0 {
			return nil, fmt.Errorf("theme %d renders no audio", id)
		}
		b.musicCache[id] = data
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(data), int64(len(data)))
	return b.context.NewPlayer(loop)
}
