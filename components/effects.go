package components

import (
	"image/color"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// SquashStretchData tracks sprite scale deformation for jump/land feel
type SquashStretchData struct {
	ScaleX, ScaleY   float64 // current scale
	TargetX, TargetY float64 // lerp target (usually 1.0, 1.0)
	LerpSpeed        float64 // how fast to return to normal
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()

// ParticleData is one short-lived square. Position and velocity are in
// world units, y up, per second.
type ParticleData struct {
	Position math.Vec2
	Velocity math.Vec2
	Gravity  float64
	Life     float64 // seconds left
	MaxLife  float64
	Size     float64
	Color    color.RGBA
}

var Particle = donburi.NewComponentType[ParticleData]()
