package config

// StateID is the visual pose of the player, derived from its velocity.
type StateID int

const (
	StateNone StateID = iota
	StateIdle
	StateWalk
	StateJump
	StateFall
)

// PoseThreshold is the vertical speed beyond which the player counts as
// jumping or falling rather than standing.
const PoseThreshold = 1.0

// SquashStretchConfig contains squash/stretch effect configuration
type SquashStretchConfig struct {
	JumpScaleX float64 // horizontal scale on jump (< 1 = narrower)
	JumpScaleY float64 // vertical scale on jump (> 1 = taller)
	LandScaleX float64 // horizontal scale on land (> 1 = wider)
	LandScaleY float64 // vertical scale on land (< 1 = shorter)
	LerpSpeed  float64 // how fast to return to normal scale
}

var SquashStretch SquashStretchConfig

func init() {
	SquashStretch = SquashStretchConfig{
		JumpScaleX: 0.8,
		JumpScaleY: 1.25,
		LandScaleX: 1.25,
		LandScaleY: 0.8,
		LerpSpeed:  0.15,
	}
}

// PoseFor classifies a player's motion into a pose.
func PoseFor(vx, vy float64) StateID {
	switch {
	case vy > PoseThreshold:
		return StateJump
	case vy < -PoseThreshold:
		return StateFall
	case vx != 0:
		return StateWalk
	}
	return StateIdle
}
