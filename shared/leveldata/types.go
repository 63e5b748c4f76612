// Package leveldata describes level content and loads it from YAML or TMX.
// It is plain data with no engine imports.
package leveldata

import "strconv"

// Enemy kind tags accepted in level files.
const (
	KindPatrol   = "patrol"
	KindJumping  = "jumping"
	KindFlying   = "flying"
	KindScripted = "scripted"
)

// KnownEnemyKinds lists every kind a descriptor may use.
var KnownEnemyKinds = []string{KindPatrol, KindJumping, KindFlying, KindScripted}

// Descriptor is one level's complete content. Coordinates are world units,
// center-based, with y growing upward.
type Descriptor struct {
	ID               int                  `yaml:"id"`
	Name             string               `yaml:"name,omitempty"`
	Spawn            *Point               `yaml:"spawn"`
	Platforms        []PlatformSpec       `yaml:"platforms,omitempty"`
	MovingPlatforms  []MovingPlatformSpec `yaml:"moving_platforms,omitempty"`
	Coins            []CoinSpec           `yaml:"coins,omitempty"`
	Hazards          []HazardSpec         `yaml:"hazards,omitempty"`
	Enemies          []EnemySpec          `yaml:"enemies,omitempty"`
	EndX             float64              `yaml:"end_x"`
	Goal             *RectSpec            `yaml:"goal,omitempty"`
	RequiresAllCoins bool                 `yaml:"requires_all_coins,omitempty"`
	TimeLimit        *float64             `yaml:"time_limit,omitempty"`
	Gravity          *float64             `yaml:"gravity,omitempty"`

	// Source is the file the descriptor was read from, if any.
	Source string `yaml:"-"`
}

// Point is a position in world units.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// RectSpec is a center-based rectangle.
type RectSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlatformSpec is a static solid. Goal platforms finish the level on touch.
type PlatformSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	OneWay bool    `yaml:"one_way,omitempty"`
	Goal   bool    `yaml:"goal,omitempty"`
}

// MovingPlatformSpec is a solid that moves linearly and reflects at its
// optional boundaries.
type MovingPlatformSpec struct {
	X              float64  `yaml:"x"`
	Y              float64  `yaml:"y"`
	Width          float64  `yaml:"width"`
	Height         float64  `yaml:"height"`
	ChangeX        float64  `yaml:"change_x"`
	ChangeY        float64  `yaml:"change_y"`
	BoundaryLeft   *float64 `yaml:"boundary_left,omitempty"`
	BoundaryRight  *float64 `yaml:"boundary_right,omitempty"`
	BoundaryBottom *float64 `yaml:"boundary_bottom,omitempty"`
	BoundaryTop    *float64 `yaml:"boundary_top,omitempty"`
}

// CoinSpec is a collectible. A zero Value means the default coin value.
type CoinSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Value int     `yaml:"value"`
}

// HazardSpec is a deadly rectangle. Zero sizes mean the default hazard size.
type HazardSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Damage int     `yaml:"damage"`
}

// EnemySpec is a kind tag plus numeric parameters consumed by the AI.
// Script holds tengo source for the scripted kind.
type EnemySpec struct {
	Kind   string             `yaml:"kind"`
	X      float64            `yaml:"x"`
	Y      float64            `yaml:"y"`
	Params map[string]float64 `yaml:"params,omitempty"`
	Script string             `yaml:"script,omitempty"`
}

// Param returns a named parameter or def when absent.
func (e EnemySpec) Param(name string, def float64) float64 {
	if v, ok := e.Params[name]; ok {
		return v
	}
	return def
}

// CoinCount is the number of coins placed in the level.
func (d *Descriptor) CoinCount() int {
	return len(d.Coins)
}

// Title returns the display name, falling back to the numeric ID.
func (d *Descriptor) Title() string {
	if d.Name != "" {
		return d.Name
	}
	return "Level " + strconv.Itoa(d.ID)
}
