package systems

import (
	"sync"

	"github.com/automoto/override/assets"
	"github.com/automoto/override/components"
	cfg "github.com/automoto/override/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalSoundBank    *assets.SoundBank
	globalMusicPlayer  *audio.Player
	globalMusicID      cfg.MusicID
	globalMusicVolume  = cfg.Audio.DefaultMusicVol
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	globalFadeTimer    int
	globalFadeDuration int
	globalFadeStart    float64
	audioInitOnce      sync.Once
)

const musicFadeFrames = 45

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalSoundBank = assets.NewSoundBank(globalAudioContext)
	})
}

// PreloadAllSFX renders every sound effect at startup.
func PreloadAllSFX() {
	initGlobalAudio()
	globalSoundBank.PreloadAll()
}

// UpdateAudio plays queued SFX and advances music fades.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	if globalFadeTimer > 0 {
		globalFadeTimer--
		if globalFadeDuration > 0 && globalMusicPlayer != nil {
			progress := float64(globalFadeTimer) / float64(globalFadeDuration)
			globalMusicPlayer.SetVolume(globalFadeStart * progress)
		}
		if globalFadeTimer == 0 {
			StopMusic(e)
		}
	}

	entry, ok := components.Audio.First(e.World)
	if ok {
		audioData := components.Audio.Get(entry)
		for _, soundID := range audioData.PendingSFX {
			playSFX(soundID)
		}
		audioData.PendingSFX = audioData.PendingSFX[:0]
	}
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}
	player, err := globalSoundBank.SFX(soundID)
	if err != nil {
		log.Debug("sfx unavailable", "sound", soundID, "err", err)
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}
	player.SetVolume(min(volume, 1))
	player.Play()
}

// PlayMusic starts a looping theme unless it is already playing.
func PlayMusic(e *ecs.ECS, id cfg.MusicID) {
	initGlobalAudio()
	if globalMusicID == id && globalMusicPlayer != nil && globalFadeTimer == 0 {
		return
	}
	StopMusic(e)

	player, err := globalSoundBank.Music(id)
	if err != nil {
		log.Warn("music unavailable", "music", id, "err", err)
		return
	}
	player.SetVolume(globalMusicVolume)
	player.Play()

	globalMusicPlayer = player
	globalMusicID = id
}

// FadeOutMusic starts a music fade out transition
func FadeOutMusic(e *ecs.ECS) {
	if globalMusicPlayer == nil || globalFadeTimer > 0 {
		return
	}
	globalFadeTimer = musicFadeFrames
	globalFadeDuration = musicFadeFrames
	globalFadeStart = globalMusicVolume
}

// StopMusic immediately stops the current music
func StopMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}
	globalMusicID = cfg.MusicNone
	globalFadeTimer = 0
}

// PauseMusic pauses the current music playback
func PauseMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Pause()
	}
}

// ResumeMusic resumes paused music playback
func ResumeMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Play()
	}
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(volume float64) {
	globalMusicVolume = volume
	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		globalMusicPlayer.SetVolume(volume)
	}
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

func GetMusicVolume() float64 { return globalMusicVolume }
func GetSFXVolume() float64   { return globalSFXVolume }

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
