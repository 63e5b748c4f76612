package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundCoin
	SoundJump
	SoundDeath
	SoundWin
	SoundLose
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
	SoundStatus
)

// Waveform selects the oscillator used to synthesize a sound.
type Waveform int

const (
	WaveSquare Waveform = iota
	WaveTriangle
	WaveNoise
)

// Tone describes a synthesized effect: a pitch sweep with a linear decay.
type Tone struct {
	StartHz float64
	EndHz   float64
	Seconds float64
	Wave    Waveform
	Volume  float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// MusicID names a looping background theme
type MusicID int

const (
	MusicNone MusicID = iota
	MusicMenu
	MusicLevel
)

// Theme is a looping note sequence. A zero note is a rest.
type Theme struct {
	Notes       []float64
	NoteSeconds float64
	Wave        Waveform
	Volume      float64
}

// SoundConfig maps sound IDs to their synthesized tones
type SoundConfig struct {
	Tones             map[SoundID]Tone
	VolumeMultipliers map[SoundID]float64
	Themes            map[MusicID]Theme
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.75,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundCoin:         {StartHz: 880, EndHz: 1760, Seconds: 0.12, Wave: WaveSquare, Volume: 0.35},
			SoundJump:         {StartHz: 300, EndHz: 640, Seconds: 0.15, Wave: WaveTriangle, Volume: 0.5},
			SoundDeath:        {StartHz: 420, EndHz: 60, Seconds: 0.45, Wave: WaveNoise, Volume: 0.45},
			SoundWin:          {StartHz: 523, EndHz: 1046, Seconds: 0.6, Wave: WaveTriangle, Volume: 0.5},
			SoundLose:         {StartHz: 330, EndHz: 110, Seconds: 0.7, Wave: WaveSquare, Volume: 0.35},
			SoundMenuNavigate: {StartHz: 660, EndHz: 660, Seconds: 0.04, Wave: WaveSquare, Volume: 0.2},
			SoundMenuSelect:   {StartHz: 660, EndHz: 990, Seconds: 0.08, Wave: WaveSquare, Volume: 0.25},
			SoundStatus:       {StartHz: 520, EndHz: 520, Seconds: 0.1, Wave: WaveTriangle, Volume: 0.3},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundDeath: 1.2,
		},
		Themes: map[MusicID]Theme{
			MusicMenu: {
				Notes:       []float64{262, 330, 392, 330, 294, 349, 440, 349},
				NoteSeconds: 0.3,
				Wave:        WaveTriangle,
				Volume:      0.18,
			},
			MusicLevel: {
				Notes:       []float64{196, 0, 196, 247, 294, 0, 247, 220, 196, 0, 196, 262, 330, 0, 294, 247},
				NoteSeconds: 0.18,
				Wave:        WaveSquare,
				Volume:      0.08,
			},
		},
	}
}
