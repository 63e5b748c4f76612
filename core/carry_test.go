package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/override/shared/gamemath"
	"github.com/automoto/override/shared/leveldata"
)

// riderLevel puts the player on a platform moving +5 per frame.
func riderLevel() *leveldata.Descriptor {
	return &leveldata.Descriptor{
		ID:    1,
		Spawn: &leveldata.Point{X: 0, Y: 126},
		MovingPlatforms: []leveldata.MovingPlatformSpec{
			{X: 0, Y: 100, Width: 100, Height: 20, ChangeX: 5},
		},
		EndX: 5000,
	}
}

func TestCarryMatchesPlatformDelta(t *testing.T) {
	l, _ := buildLevel(t, riderLevel())
	plat := l.Platforms.At(0).Solid

	for frame := 0; frame < 15; frame++ {
		before := l.Player.X
		l.Step(idle)
		require.Equal(t, Running, l.Outcome)
		require.Same(t, plat, l.Riding, "frame %d", frame)
		assert.InDelta(t, 5.0, l.Player.X-before, 1e-9, "frame %d", frame)
		assert.InDelta(t, plat.X, l.Player.X, 1e-9, "frame %d", frame)
	}
}

// An unbounded platform soon leaves the level box the grid was sized from.
func TestCarryBeyondLevelBounds(t *testing.T) {
	l, _ := buildLevel(t, riderLevel())
	plat := l.Platforms.At(0).Solid

	for frame := 1; frame <= 600; frame++ {
		l.Step(idle)
		require.Equal(t, Running, l.Outcome, "frame %d", frame)
		require.Same(t, plat, l.Riding, "frame %d", frame)
	}
	assert.InDelta(t, 3000.0, plat.X, 1e-9)
	assert.InDelta(t, plat.X, l.Player.X, 1e-9)
	assert.Zero(t, l.Deaths)
}

func TestSpaceFindsMovingSolidsAnywhere(t *testing.T) {
	space := NewSpace(gamemath.RectFromEdges(-100, -100, 100, 100), 32)
	floor := box(0, 0, 200, 20)
	plat := box(0, 50, 40, 10)
	plat.ID, plat.Moving = 1, true
	space.Add(floor)
	space.Add(plat)

	plat.X = 10000
	area := gamemath.RectFromSize(10000, 60, 20, 20)
	assert.Equal(t, []*Solid{plat}, space.Query(area, TagSolid))
	assert.Equal(t, []*Solid{plat}, space.Query(area, TagMoving))
	assert.Empty(t, space.Query(area, TagOneWay))
	assert.Equal(t, []*Solid{floor}, space.Query(gamemath.RectFromSize(0, 0, 20, 20), TagSolid))
}

func TestCarryWithMatchingInput(t *testing.T) {
	t.Run("default sums input and carry", func(t *testing.T) {
		l, _ := buildLevel(t, riderLevel())
		for frame := 0; frame < 5; frame++ {
			before := l.Player.X
			l.Step(holdRight)
			assert.InDelta(t, 11.0, l.Player.X-before, 1e-9, "frame %d", frame)
		}
	})

	t.Run("input priority", func(t *testing.T) {
		l, _ := buildLevel(t, riderLevel(), func(tu *Tuning) { tu.Carry.InputPriority = true })
		for frame := 0; frame < 5; frame++ {
			before := l.Player.X
			l.Step(holdRight)
			assert.InDelta(t, 6.0, l.Player.X-before, 1e-9, "frame %d", frame)
		}
	})

	t.Run("opposing input", func(t *testing.T) {
		l, _ := buildLevel(t, riderLevel())
		before := l.Player.X
		l.Step(holdLeft)
		assert.InDelta(t, -1.0, l.Player.X-before, 1e-9)
	})
}

func TestCarryXDoesNotDoubleCount(t *testing.T) {
	tests := []struct {
		name                 string
		platform, actual, in float64
		priority             bool
		want                 float64
	}{
		{"stationary rider", 5, 0, 0, false, 5},
		{"walking with platform", 5, 6, 6, false, 5},
		{"shoved along by 3", 5, 9, 6, false, 2},
		{"shoved beyond platform motion", 5, 8, 0, false, 0},
		{"shoved against platform motion", 5, 3, 6, false, 5},
		{"leftward shove", -5, -2, 0, false, -3},
		{"priority absorbs input", 5, 6, 6, true, 0},
		{"priority slower input", 5, 3, 3, true, 2},
		{"priority opposing input", 5, -6, -6, true, 5},
		{"priority leftward", -5, -6, -6, true, 0},
		{"platform still", 0, 4, 0, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CarryX(tt.platform, tt.actual, tt.in, tt.priority)
			assert.InDelta(t, tt.want, got, 1e-12)
			// Carry never exceeds the platform's own motion.
			assert.LessOrEqual(t, math.Abs(got), math.Abs(tt.platform))
			assert.False(t, got != 0 && math.Signbit(got) != math.Signbit(tt.platform))
		})
	}
}

func TestCarryVertical(t *testing.T) {
	d := &leveldata.Descriptor{
		ID:    1,
		Spawn: &leveldata.Point{X: 0, Y: 126},
		MovingPlatforms: []leveldata.MovingPlatformSpec{
			{X: 0, Y: 100, Width: 100, Height: 20, ChangeY: 1.5, BoundaryBottom: f64(60), BoundaryTop: f64(200)},
		},
		EndX: 5000,
	}
	l, _ := buildLevel(t, d)
	plat := l.Platforms.At(0).Solid

	for frame := 0; frame < 150; frame++ {
		l.Step(idle)
		require.InDelta(t, plat.Top(), l.Player.Bottom(), 1e-9, "frame %d", frame)
		require.True(t, l.Resolver().CanJump(l.Player), "frame %d", frame)
	}
}

func TestOscillatingPlatformScenario(t *testing.T) {
	d := &leveldata.Descriptor{
		ID:    1,
		Spawn: &leveldata.Point{X: 1120, Y: 346},
		MovingPlatforms: []leveldata.MovingPlatformSpec{
			{X: 1120, Y: 320, Width: 100, Height: 20, ChangeX: 1.5, BoundaryLeft: f64(1040), BoundaryRight: f64(1320)},
		},
		EndX: 5000,
	}
	l, _ := buildLevel(t, d)
	plat := l.Platforms.At(0).Solid

	reversedAt := -1
	for frame := 1; frame <= 200; frame++ {
		l.Step(idle)
		require.Equal(t, Running, l.Outcome)
		require.InDelta(t, plat.X, l.Player.X, 1e-9, "frame %d", frame)
		if plat.VX < 0 && reversedAt < 0 {
			reversedAt = frame
		}
		assert.LessOrEqual(t, plat.Right(), 1320.0+1.5)
	}
	assert.Equal(t, 101, reversedAt, "turns once the right edge reaches 1320")
	assert.InDelta(t, 1120.0, plat.X, 1e-9)
	assert.InDelta(t, 1120.0, l.Player.X, 1e-9)
}

func TestNoCarryWhileRising(t *testing.T) {
	l, _ := buildLevel(t, riderLevel())
	before := l.Player.X
	l.Step(Input{JumpPressed: true, JumpHeld: true})
	assert.Equal(t, RisingHold, l.Jump.Phase)
	assert.Nil(t, l.Riding)
	assert.Equal(t, before, l.Player.X)
}
