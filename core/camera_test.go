package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/override/shared/gamemath"
)

func TestNewCameraValidatesPanFactor(t *testing.T) {
	for _, pan := range []float64{0, -0.1, 1.01} {
		_, err := NewCamera(CameraSmooth, pan)
		var ce *ConfigurationError
		assert.True(t, errors.As(err, &ce), "pan %v", pan)
	}
	_, err := NewCamera(CameraSmooth, 1)
	assert.NoError(t, err)
}

func TestCameraSmoothApproachesTarget(t *testing.T) {
	c, err := NewCamera(CameraSmooth, 0.1)
	require.NoError(t, err)

	c.Update(100, -50)
	assert.InDelta(t, 10, c.X, 1e-12)
	assert.InDelta(t, -5, c.Y, 1e-12)

	for i := 0; i < 200; i++ {
		c.Update(100, -50)
	}
	assert.InDelta(t, 100, c.X, 1e-6)
	assert.InDelta(t, -50, c.Y, 1e-6)
}

func TestCameraSnap(t *testing.T) {
	mode, err := ParseCameraMode("snap")
	require.NoError(t, err)
	c, err := NewCamera(mode, 0.1)
	require.NoError(t, err)

	c.Update(42, 7)
	assert.Equal(t, 42.0, c.X)
	assert.Equal(t, 7.0, c.Y)

	_, err = ParseCameraMode("wobbly")
	assert.Error(t, err)
}

func TestCameraClampsToLevel(t *testing.T) {
	c, err := NewCamera(CameraSnap, 1)
	require.NoError(t, err)
	c.ClampTo(gamemath.RectFromEdges(0, 0, 2000, 300), 640, 480)

	c.Update(10, 10)
	assert.Equal(t, 320.0, c.X)
	assert.Equal(t, 150.0, c.Y, "level shorter than the view is centered")

	c.Update(1990, 10)
	assert.Equal(t, 1680.0, c.X)
}

func TestLevelCameraFollowsPlayer(t *testing.T) {
	l, _ := buildLevel(t, floorLevel(), func(tu *Tuning) { tu.Camera.ClampToLevel = false })
	require.Equal(t, l.Player.X, l.Camera.X)

	steps(l, 120, holdRight)
	assert.Less(t, l.Camera.X, l.Player.X, "smooth camera lags behind")
	assert.Greater(t, l.Camera.X, 0.0)
}
