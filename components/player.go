package components

import (
	cfg "github.com/automoto/override/config"
	"github.com/yohamta/donburi"
)

// PlayerViewData is presentation state derived from the simulated player.
type PlayerViewData struct {
	Pose        cfg.StateID
	Facing      float64 // 1 right, -1 left
	WasGrounded bool
}

var PlayerView = donburi.NewComponentType[PlayerViewData]()
