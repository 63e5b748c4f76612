package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReaderOverlaysOnlyNamedFields(t *testing.T) {
	t.Cleanup(Reset)

	err := LoadReader(strings.NewReader(`
jump:
  launch_speed: 20
carry:
  input_priority: true
`))
	require.NoError(t, err)

	assert.Equal(t, 20.0, Jump.LaunchSpeed)
	assert.Equal(t, 1.2, Jump.HoldForce, "untouched field keeps its default")
	assert.True(t, Carry.InputPriority)
	assert.Equal(t, 10.0, Carry.RiderProbeDistance)
}

func TestLoadReaderResetsBetweenLoads(t *testing.T) {
	t.Cleanup(Reset)

	require.NoError(t, LoadReader(strings.NewReader("player:\n  move_speed: 9\n")))
	require.Equal(t, 9.0, Player.MoveSpeed)

	require.NoError(t, LoadReader(strings.NewReader("")))
	assert.Equal(t, 6.0, Player.MoveSpeed)
}

func TestLoadReaderRejectsUnknownFields(t *testing.T) {
	t.Cleanup(Reset)

	err := LoadReader(strings.NewReader("jump:\n  launch_sped: 20\n"))
	assert.Error(t, err)
}

func TestLoadReaderValidates(t *testing.T) {
	t.Cleanup(Reset)

	tests := map[string]string{
		"pan factor":    "camera:\n  pan_factor: 1.5\n",
		"camera mode":   "camera:\n  mode: wobble\n",
		"player width":  "player:\n  width: -3\n",
		"jump interval": "enemy:\n  jump_interval_min: 3\n  jump_interval_max: 1\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, LoadReader(strings.NewReader(doc)))
		})
	}
}

func TestLoadExplicitPath(t *testing.T) {
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  world_floor_y: -400\n"), 0o644))

	used, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, -400.0, Rules.WorldFloorY)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
