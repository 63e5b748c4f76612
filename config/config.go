package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	MoveSpeed     float64 `yaml:"move_speed"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	StartingLives int     `yaml:"starting_lives"`
}

// JumpConfig tunes jump initiation and the variable-height hold window.
type JumpConfig struct {
	LaunchSpeed    float64 `yaml:"launch_speed"`
	HoldForce      float64 `yaml:"hold_force"`
	MaxHoldFrames  int     `yaml:"max_hold_frames"`
	ReleaseDamping float64 `yaml:"release_damping"`
	ProbeDistance  float64 `yaml:"probe_distance"` // Ceiling check above the player before launch
}

// PhysicsConfig contains global physics values
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"` // Used when a level does not set its own
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`
	OneWayThreshold float64 `yaml:"one_way_threshold"` // Pixels above a one-way top that still land
	GroundEpsilon   float64 `yaml:"ground_epsilon"`
	SpaceCellSize   int     `yaml:"space_cell_size"`
	SpaceMargin     float64 `yaml:"space_margin"` // Extra room around level bounds in the broadphase
}

// CarryConfig tunes moving-platform carry.
type CarryConfig struct {
	RiderProbeDistance float64 `yaml:"rider_probe_distance"`
	InputPriority      bool    `yaml:"input_priority"`
}

// RulesConfig holds level win/lose rules.
type RulesConfig struct {
	GoalLeeway          float64 `yaml:"goal_leeway"`
	WorldFloorY         float64 `yaml:"world_floor_y"`
	RespawnGraceFrames  int     `yaml:"respawn_grace_frames"`
	GateMessage         string  `yaml:"gate_message"`
	GateMessageDuration float64 `yaml:"gate_message_duration"`
	GateIntroDuration   float64 `yaml:"gate_intro_duration"`
	MaxCatchUpFrames    int     `yaml:"max_catch_up_frames"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	Mode                string  `yaml:"mode"`       // "smooth" or "snap"
	PanFactor           float64 `yaml:"pan_factor"` // How fast camera follows player (0.0-1.0]
	ClampToLevel        bool    `yaml:"clamp_to_level"`
	DeathShakeIntensity float64 `yaml:"death_shake_intensity"`
	DeathShakeDuration  int     `yaml:"death_shake_duration"`
}

// EnemyConfig holds per-kind defaults used when a level omits a parameter.
type EnemyConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	PatrolRange     float64 `yaml:"patrol_range"`
	PatrolSpeed     float64 `yaml:"patrol_speed"`
	JumpIntervalMin float64 `yaml:"jump_interval_min"`
	JumpIntervalMax float64 `yaml:"jump_interval_max"`
	JumpStrength    float64 `yaml:"jump_strength"`
	FlyAmplitude    float64 `yaml:"fly_amplitude"`
	FlySpeed        float64 `yaml:"fly_speed"`
	FlyPhaseRate    float64 `yaml:"fly_phase_rate"`
}

// PickupConfig sizes coins and hazards that do not specify their own.
type PickupConfig struct {
	CoinValue    int     `yaml:"coin_value"`
	CoinSize     float64 `yaml:"coin_size"`
	HazardWidth  float64 `yaml:"hazard_width"`
	HazardHeight float64 `yaml:"hazard_height"`
	HazardDamage int     `yaml:"hazard_damage"`
}

// HUDConfig contains heads-up display layout and colors
type HUDConfig struct {
	Margin        float64
	LineHeight    float64
	TextColor     color.RGBA
	ShadowColor   color.RGBA
	LowTimeColor  color.RGBA
	LowTimeSecond float64
}

// StatusConfig controls the transient status line
type StatusConfig struct {
	Y         float64
	FadeIn    float32
	FadeOut   float32
	TextColor color.RGBA
}

// ParticleBurst describes one particle burst preset
type ParticleBurst struct {
	Count            int
	SpeedMin         float64
	SpeedMax         float64
	LifetimeMin      float64
	LifetimeMax      float64
	SizeMin, SizeMax float64
	Gravity          float64
}

// ParticleConfig holds burst presets by event
type ParticleConfig struct {
	Coin      ParticleBurst
	Death     ParticleBurst
	CoinColor color.RGBA
	Hazard    color.RGBA
	Enemy     color.RGBA
	Fall      color.RGBA
	MaxAlive  int
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	WinBackground     color.RGBA
	LoseBackground    color.RGBA
	WinTitleColor     color.RGBA
	LoseTitleColor    color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	SlideSeconds      float32
	EndDelayFrames    int // frames the finished level stays on screen
}

// WorldColors are the flat colors used to draw level entities
type WorldColors struct {
	Background     color.RGBA
	Platform       color.RGBA
	OneWay         color.RGBA
	Goal           color.RGBA
	MovingPlatform color.RGBA
	Player         color.RGBA
	Coin           color.RGBA
	Hazard         color.RGBA
	EnemyPatrol    color.RGBA
	EnemyJumping   color.RGBA
	EnemyFlying    color.RGBA
	EnemyScripted  color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool   // Skip menu and go directly to game
	StartLevel string // Level ID used with SkipMenu
	DrawBoxes  bool
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Jump JumpConfig
var Physics PhysicsConfig
var Carry CarryConfig
var Rules RulesConfig
var Camera CameraConfig
var Enemy EnemyConfig
var Pickup PickupConfig
var HUD HUDConfig
var Status StatusConfig
var Particles ParticleConfig
var Pause PauseConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Colors WorldColors
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gold         = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	OrangeRed    = color.RGBA{R: 255, G: 69, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	LimeGreen    = color.RGBA{R: 50, G: 205, B: 50, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	SeaGreen     = color.RGBA{R: 46, G: 139, B: 87, A: 255}
	SlateGray    = color.RGBA{R: 112, G: 128, B: 144, A: 255}
	SteelBlue    = color.RGBA{R: 176, G: 196, B: 222, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 128, A: 255}
	SkyBlue      = color.RGBA{R: 93, G: 138, B: 168, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Shadow       = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

func init() {
	C = &Config{
		Width:     1280,
		Height:    720,
		TargetFPS: 60,
		Title:     "System Override",
	}
	setSimulationDefaults()

	HUD = HUDConfig{
		Margin:        16,
		LineHeight:    26,
		TextColor:     White,
		ShadowColor:   Shadow,
		LowTimeColor:  LightRed,
		LowTimeSecond: 10,
	}

	Status = StatusConfig{
		Y:         80,
		FadeIn:    0.15,
		FadeOut:   0.4,
		TextColor: Gold,
	}

	Particles = ParticleConfig{
		Coin: ParticleBurst{
			Count: 6, SpeedMin: 40, SpeedMax: 120,
			LifetimeMin: 0.25, LifetimeMax: 0.55,
			SizeMin: 3, SizeMax: 6,
		},
		Death: ParticleBurst{
			Count: 14, SpeedMin: 80, SpeedMax: 200,
			LifetimeMin: 0.4, LifetimeMax: 0.9,
			SizeMin: 4, SizeMax: 7,
			Gravity: 300,
		},
		CoinColor: Gold,
		Hazard:    Yellow,
		Enemy:     Red,
		Fall:      OrangeRed,
		MaxAlive:  256,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       12,
		MenuOptions:       []string{"Resume", "Restart", "Settings", "Main Menu"},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            160,
		MenuStartY:        280,
		MenuItemHeight:    30,
		MenuItemGap:       14,
		MenuOptions:       []string{"Play", "Level Select", "Settings", "Exit"},
	}

	GameOver = GameOverConfig{
		WinBackground:     color.RGBA{R: 10, G: 40, B: 20, A: 255},
		LoseBackground:    color.RGBA{R: 40, G: 10, B: 10, A: 255},
		WinTitleColor:     BrightGreen,
		LoseTitleColor:    LightRed,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            180,
		MenuStartY:        360,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		SlideSeconds:      0.35,
		EndDelayFrames:    75,
	}

	Colors = WorldColors{
		Background:     SkyBlue,
		Platform:       SlateGray,
		OneWay:         SteelBlue,
		Goal:           LimeGreen,
		MovingPlatform: SeaGreen,
		Player:         Blue,
		Coin:           Gold,
		Hazard:         Red,
		EnemyPatrol:    OrangeRed,
		EnemyJumping:   Purple,
		EnemyFlying:    color.RGBA{R: 93, G: 138, B: 168, A: 255},
		EnemyScripted:  Orange,
	}

	Debug = DebugConfig{
		SkipMenu: false,
	}
}

// setSimulationDefaults resets every value the simulation reads. Load calls
// it before applying a file so repeated loads do not accumulate.
func setSimulationDefaults() {
	Player = PlayerConfig{
		MoveSpeed:     6,
		Width:         32,
		Height:        32,
		StartingLives: 3,
	}

	Jump = JumpConfig{
		LaunchSpeed:    18,
		HoldForce:      1.2,
		MaxHoldFrames:  10,
		ReleaseDamping: 0.6,
		ProbeDistance:  50,
	}

	Physics = PhysicsConfig{
		Gravity:         1.0,
		MaxFallSpeed:    20,
		OneWayThreshold: 4,
		GroundEpsilon:   0.01,
		SpaceCellSize:   32,
		SpaceMargin:     512,
	}

	Carry = CarryConfig{
		RiderProbeDistance: 10,
		InputPriority:      false,
	}

	Rules = RulesConfig{
		GoalLeeway:          50,
		WorldFloorY:         -200,
		RespawnGraceFrames:  0,
		GateMessage:         "Collect all coins to finish!",
		GateMessageDuration: 2,
		GateIntroDuration:   3,
		MaxCatchUpFrames:    5,
	}

	Camera = CameraConfig{
		Mode:                "smooth",
		PanFactor:           0.1,
		ClampToLevel:        true,
		DeathShakeIntensity: 8,
		DeathShakeDuration:  12,
	}

	Enemy = EnemyConfig{
		Width:           28,
		Height:          28,
		PatrolRange:     60,
		PatrolSpeed:     2,
		JumpIntervalMin: 1,
		JumpIntervalMax: 2,
		JumpStrength:    12,
		FlyAmplitude:    40,
		FlySpeed:        2.5,
		FlyPhaseRate:    2,
	}

	Pickup = PickupConfig{
		CoinValue:    10,
		CoinSize:     18,
		HazardWidth:  32,
		HazardHeight: 32,
		HazardDamage: 10,
	}
}
