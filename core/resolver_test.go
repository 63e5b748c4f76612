package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverNonPenetration(t *testing.T) {
	// R spans x [-50, 50], y [-10, 10].
	approaches := []struct {
		name   string
		x, y   float64
		vx, vy float64
	}{
		{"from left", -100, 0, 1, 0},
		{"from right", 100, 0, -1, 0},
		{"from above", 0, 60, 0, -1},
		{"from below", 0, -60, 0, 1},
		{"diagonal down right", -80, 40, 1, -1},
		{"diagonal up left", 80, -40, -1, 1},
		{"corner graze", -66, 40, 1, -1},
	}
	speeds := []float64{0.5, 6, 17.9, 34, 90, 500, 3000}

	for _, a := range approaches {
		for _, speed := range speeds {
			t.Run(fmt.Sprintf("%s at %v", a.name, speed), func(t *testing.T) {
				wall := box(0, 0, 100, 20)
				r := newFastResolver(wall)
				b := mustBody(t, a.x, a.y, 32, 32)
				for frame := 0; frame < 5; frame++ {
					b.VX, b.VY = a.vx*speed, a.vy*speed
					r.Move(b, 0)
					require.False(t, b.Overlaps(wall.Rect()),
						"frame %d: body %v overlaps wall", frame, b.Rect())
				}
			})
		}
	}
}

func TestResolverStopsFlushAgainstWall(t *testing.T) {
	wall := box(0, 0, 100, 20)
	r := newTestResolver(wall)

	b := mustBody(t, -100, 0, 32, 32)
	b.VX = 500
	c := r.Move(b, 0)

	assert.True(t, c.Wall)
	assert.Equal(t, -50.0, b.Right())
	assert.Zero(t, b.VX)
}

func TestResolverLandsOnHighestTopCrossed(t *testing.T) {
	low := box(0, 0, 100, 20)   // top 10
	high := box(0, 40, 100, 20) // top 50
	r := newFastResolver(low, high)

	b := mustBody(t, 0, 200, 32, 32)
	b.VY = -300
	c := r.Move(b, 0)

	require.NotNil(t, c.Ground)
	assert.Same(t, high, c.Ground)
	assert.Equal(t, 50.0, b.Bottom())
	assert.Zero(t, b.VY)
}

func TestResolverCeilingZeroesUpwardVelocity(t *testing.T) {
	ceiling := box(0, 100, 100, 20) // bottom 90
	r := newTestResolver(ceiling)

	b := mustBody(t, 0, 0, 32, 32)
	b.VY = 200
	c := r.Move(b, 0)

	assert.True(t, c.Ceiling)
	assert.Equal(t, 90.0, b.Top())
	assert.Zero(t, b.VY)
}

func TestResolverSlidesAcrossSeams(t *testing.T) {
	// Two floor pieces meeting at x=0 with a top that is not exactly
	// representable.
	left := box(-200, -9.7, 400, 20)
	right := box(200, -9.7, 400, 20)
	r := newTestResolver(left, right)

	b := mustBody(t, -150, 0, 32, 32)
	b.Y = left.Top() + b.HalfH
	for frame := 0; frame < 50; frame++ {
		prev := b.X
		b.VX = 6
		r.Move(b, 1)
		require.InDelta(t, prev+6, b.X, 1e-9, "frame %d caught on seam", frame)
		require.True(t, r.CanJump(b), "frame %d lost ground", frame)
	}
}

func TestResolverDepenetratesPushedBody(t *testing.T) {
	wall := box(0, 0, 100, 20)
	r := newTestResolver(wall)

	// Overlapping the right edge by 4 units.
	b := mustBody(t, 62, 0, 32, 32)
	r.Move(b, 0)

	assert.False(t, b.Overlaps(wall.Rect()))
	assert.Equal(t, 50.0, b.Left())
}

func TestLandingSetsCanJump(t *testing.T) {
	floor := box(0, 0, 400, 20)
	r := newTestResolver(floor)

	t.Run("falling body", func(t *testing.T) {
		b := mustBody(t, 0, 120, 32, 32)
		for i := 0; i < 60 && !r.CanJump(b); i++ {
			r.Move(b, 1)
		}
		assert.True(t, r.CanJump(b))
		assert.Equal(t, 10.0, b.Bottom())
		r.Move(b, 1)
		assert.True(t, r.CanJump(b), "still grounded the following frame")
	})

	t.Run("placed exactly on top", func(t *testing.T) {
		b := mustBody(t, 0, 26, 32, 32)
		assert.True(t, r.CanJump(b))
	})

	t.Run("rising body", func(t *testing.T) {
		b := mustBody(t, 0, 26, 32, 32)
		b.VY = 1
		assert.False(t, r.CanJump(b))
	})

	t.Run("corner only", func(t *testing.T) {
		b := mustBody(t, 216, 26, 32, 32)
		assert.False(t, r.CanJump(b))
	})
}

func TestOneWayPlatforms(t *testing.T) {
	t.Run("passes through from below", func(t *testing.T) {
		r := newTestResolver(oneWay(0, 100, 100, 10))
		b := mustBody(t, 0, 60, 32, 32)
		b.VY = 30
		c := r.Move(b, 0)
		assert.False(t, c.Ceiling)
		assert.Equal(t, 90.0, b.Y)
	})

	t.Run("lands from above", func(t *testing.T) {
		r := newFastResolver(oneWay(0, 100, 100, 10)) // top 105
		b := mustBody(t, 0, 150, 32, 32)
		b.VY = -40
		c := r.Move(b, 0)
		require.NotNil(t, c.Ground)
		assert.Equal(t, 105.0, b.Bottom())
	})

	t.Run("lands within threshold below top", func(t *testing.T) {
		r := newTestResolver(oneWay(0, 100, 100, 10))
		b := mustBody(t, 0, 105-3+16, 32, 32)
		b.VY = -2
		r.Move(b, 0)
		assert.Equal(t, 105.0, b.Bottom())
	})

	t.Run("falls through beyond threshold", func(t *testing.T) {
		r := newTestResolver(oneWay(0, 100, 100, 10))
		b := mustBody(t, 0, 105-5+16, 32, 32)
		b.VY = -2
		r.Move(b, 0)
		assert.Equal(t, 98.0, b.Bottom())
	})

	t.Run("never blocks sideways", func(t *testing.T) {
		r := newTestResolver(oneWay(0, 0, 100, 10))
		b := mustBody(t, -100, 0, 32, 32)
		b.VX = 60
		c := r.Move(b, 0)
		assert.False(t, c.Wall)
		assert.Equal(t, -40.0, b.X)
	})
}

func TestFallSpeedClampLimitsSweep(t *testing.T) {
	floor := box(0, 0, 100, 20) // top 10
	r := newTestResolver(floor)

	b := mustBody(t, 0, 200, 32, 32)
	b.VY = -300
	c := r.Move(b, 0)
	assert.Nil(t, c.Ground, "a clamped fall covers only MaxFallSpeed")
	assert.Equal(t, 200-r.cfg.MaxFallSpeed, b.Y)
}

func TestGravityIsClampedAtMaxFallSpeed(t *testing.T) {
	r := newTestResolver()
	b := mustBody(t, 0, 0, 32, 32)
	b.VY = -19.5
	r.Move(b, 1)
	assert.Equal(t, -r.cfg.MaxFallSpeed, b.VY)
}
