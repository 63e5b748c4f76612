package components

import (
	cfg "github.com/automoto/override/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sounds requested during a frame (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
