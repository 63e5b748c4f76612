package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable consulted by Load.
const EnvConfigPath = "OVERRIDE_CONFIG"

// fileConfig mirrors the overridable sections of a config file. Sections point
// at the live globals so a partial file only replaces the fields it names.
type fileConfig struct {
	Window  *Config        `yaml:"window"`
	Player  *PlayerConfig  `yaml:"player"`
	Jump    *JumpConfig    `yaml:"jump"`
	Physics *PhysicsConfig `yaml:"physics"`
	Carry   *CarryConfig   `yaml:"carry"`
	Rules   *RulesConfig   `yaml:"rules"`
	Camera  *CameraConfig  `yaml:"camera"`
	Enemy   *EnemyConfig   `yaml:"enemy"`
	Pickup  *PickupConfig  `yaml:"pickup"`
}

func liveSections() fileConfig {
	return fileConfig{
		Window:  C,
		Player:  &Player,
		Jump:    &Jump,
		Physics: &Physics,
		Carry:   &Carry,
		Rules:   &Rules,
		Camera:  &Camera,
		Enemy:   &Enemy,
		Pickup:  &Pickup,
	}
}

// Load overlays a YAML config file onto the simulation defaults.
// Search order: customPath -> $OVERRIDE_CONFIG -> ~/.override/config.yaml -> ./configs/override.yaml.
// It returns the path that was applied, or "" when only defaults are in use.
// An explicitly named file that cannot be read is an error; the implicit
// locations are skipped when missing.
func Load(customPath string) (string, error) {
	setSimulationDefaults()

	if customPath == "" {
		customPath = os.Getenv(EnvConfigPath)
	}
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, Validate()
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "override.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return path, Validate()
	}
	return "", nil
}

// LoadReader applies YAML from r on top of the current defaults.
func LoadReader(r io.Reader) error {
	setSimulationDefaults()
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if err := apply(data); err != nil {
		return err
	}
	return Validate()
}

// Reset restores every simulation value to its default.
func Reset() {
	setSimulationDefaults()
}

func apply(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	sections := liveSections()
	if err := dec.Decode(&sections); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate rejects values the simulation cannot run with.
func Validate() error {
	switch {
	case Player.Width <= 0 || Player.Height <= 0:
		return fmt.Errorf("player dimensions must be positive, got %vx%v", Player.Width, Player.Height)
	case Player.StartingLives <= 0:
		return fmt.Errorf("starting_lives must be positive, got %d", Player.StartingLives)
	case Camera.PanFactor <= 0 || Camera.PanFactor > 1:
		return fmt.Errorf("camera pan_factor must be in (0,1], got %v", Camera.PanFactor)
	case Camera.Mode != "smooth" && Camera.Mode != "snap":
		return fmt.Errorf("camera mode must be smooth or snap, got %q", Camera.Mode)
	case Jump.MaxHoldFrames < 0:
		return fmt.Errorf("max_hold_frames must not be negative, got %d", Jump.MaxHoldFrames)
	case Physics.SpaceCellSize <= 0:
		return fmt.Errorf("space_cell_size must be positive, got %d", Physics.SpaceCellSize)
	case Enemy.JumpIntervalMin > Enemy.JumpIntervalMax:
		return fmt.Errorf("jump_interval_min %v exceeds jump_interval_max %v", Enemy.JumpIntervalMin, Enemy.JumpIntervalMax)
	case C.TargetFPS <= 0:
		return fmt.Errorf("target_fps must be positive, got %d", C.TargetFPS)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".override", filename)
}
