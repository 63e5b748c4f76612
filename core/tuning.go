package core

import "github.com/automoto/override/config"

// Tuning is the snapshot of config values a level runs with. Levels copy it
// at build time so a config reload never changes a level mid-run.
type Tuning struct {
	TargetFPS  int
	ViewWidth  float64
	ViewHeight float64
	Player     config.PlayerConfig
	Jump       config.JumpConfig
	Physics    config.PhysicsConfig
	Carry      config.CarryConfig
	Rules      config.RulesConfig
	Camera     config.CameraConfig
	Enemy      config.EnemyConfig
	Pickup     config.PickupConfig
}

// DefaultTuning copies the current config globals.
func DefaultTuning() Tuning {
	return Tuning{
		TargetFPS:  config.C.TargetFPS,
		ViewWidth:  float64(config.C.Width),
		ViewHeight: float64(config.C.Height),
		Player:     config.Player,
		Jump:       config.Jump,
		Physics:    config.Physics,
		Carry:      config.Carry,
		Rules:      config.Rules,
		Camera:     config.Camera,
		Enemy:      config.Enemy,
		Pickup:     config.Pickup,
	}
}

// FrameSeconds is the fixed simulation step.
func (t Tuning) FrameSeconds() float64 {
	return 1 / float64(t.TargetFPS)
}

func (t Tuning) validate() error {
	switch {
	case t.TargetFPS <= 0:
		return &ConfigurationError{Field: "target_fps", Value: t.TargetFPS, Reason: "must be positive"}
	case t.Physics.SpaceCellSize <= 0:
		return &ConfigurationError{Field: "space_cell_size", Value: t.Physics.SpaceCellSize, Reason: "must be positive"}
	case t.Player.StartingLives <= 0:
		return &ConfigurationError{Field: "starting_lives", Value: t.Player.StartingLives, Reason: "must be positive"}
	case t.Physics.MaxFallSpeed <= 0:
		return &ConfigurationError{Field: "max_fall_speed", Value: t.Physics.MaxFallSpeed, Reason: "must be positive"}
	}
	return nil
}
