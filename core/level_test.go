package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/override/config"
	"github.com/automoto/override/shared/leveldata"
)

func TestCoinIsCollectedOnce(t *testing.T) {
	d := floorLevel()
	d.Coins = []leveldata.CoinSpec{{X: 0, Y: 30}}
	l, rec := buildLevel(t, d)

	steps(l, 5, idle)

	coins := EventsOf[CoinCollected](rec)
	require.Len(t, coins, 1)
	assert.Equal(t, 10, coins[0].Value)
	assert.Equal(t, 10, l.Score)
	assert.Empty(t, l.Coins)
	assert.Equal(t, 1, l.CoinsTotal)
}

func TestCoinScenario(t *testing.T) {
	d := &leveldata.Descriptor{
		ID:        1,
		Spawn:     &leveldata.Point{X: 100, Y: 150},
		Platforms: []leveldata.PlatformSpec{{X: 500, Y: 124, Width: 1000, Height: 20}},
		Coins:     []leveldata.CoinSpec{{X: 300, Y: 180, Value: 10}},
		EndX:      2000,
	}
	l, rec := buildLevel(t, d)

	jumped := false
	for i := 0; i < 80 && len(l.Coins) > 0; i++ {
		in := holdRight
		if !jumped && l.Player.X >= 270 {
			in.JumpPressed, in.JumpHeld = true, true
			jumped = true
		}
		l.Step(in)
	}

	coins := EventsOf[CoinCollected](rec)
	require.Len(t, coins, 1)
	assert.Equal(t, 10, coins[0].Value)
	assert.Equal(t, 10, l.Score)
	assert.InDelta(t, 300, l.Player.X, 25, "collected while overlapping the coin")
	assert.InDelta(t, 180, l.Player.Y, 25)

	// The first event after the jump is the pickup.
	var order []string
	for _, e := range rec.Events {
		switch e.(type) {
		case JumpStarted:
			order = append(order, "jump")
		case CoinCollected:
			order = append(order, "coin")
		}
	}
	assert.Equal(t, []string{"jump", "coin"}, order)
}

func TestDeathLoopEmitsOneLevelLost(t *testing.T) {
	d := floorLevel()
	d.Hazards = []leveldata.HazardSpec{{X: 0, Y: 26, Width: 64, Height: 64}}
	l, rec := buildLevel(t, d)
	require.Equal(t, 3, l.Lives)

	steps(l, 3, idle)

	assert.Equal(t, 0, l.Lives)
	assert.Equal(t, Lost, l.Outcome)
	deaths := EventsOf[PlayerDied](rec)
	require.Len(t, deaths, 3)
	for _, death := range deaths {
		assert.Equal(t, CauseHazard, death.Cause)
	}
	assert.Equal(t, []int{2, 1, 0}, []int{deaths[0].LivesLeft, deaths[1].LivesLeft, deaths[2].LivesLeft})
	assert.Len(t, EventsOf[LevelLost](rec), 1)

	// Terminal: further steps are no-ops.
	frame := l.Frame
	steps(l, 10, idle)
	assert.Equal(t, frame, l.Frame)
	assert.Len(t, EventsOf[LevelLost](rec), 1)
}

func TestRespawnResetsPlayer(t *testing.T) {
	d := floorLevel()
	d.Enemies = []leveldata.EnemySpec{{Kind: leveldata.KindPatrol, X: 100, Y: 24, Params: map[string]float64{"speed": 0.001}}}
	l, rec := buildLevel(t, d)

	for i := 0; i < 60 && len(EventsOf[PlayerDied](rec)) == 0; i++ {
		l.Step(holdRight)
	}
	deaths := EventsOf[PlayerDied](rec)
	require.Len(t, deaths, 1)
	assert.Equal(t, CauseEnemy, deaths[0].Cause)
	assert.Equal(t, 2, l.Lives)
	assert.Equal(t, 0.0, l.Player.X)
	assert.Equal(t, 26.0, l.Player.Y)
	assert.Zero(t, l.Player.VX)
	assert.Equal(t, Grounded, l.Jump.Phase)
}

func TestRespawnGraceFrames(t *testing.T) {
	d := floorLevel()
	d.Hazards = []leveldata.HazardSpec{{X: 0, Y: 26, Width: 64, Height: 64}}
	l, rec := buildLevel(t, d, func(tu *Tuning) { tu.Rules.RespawnGraceFrames = 5 })

	steps(l, 6, idle)
	assert.Len(t, EventsOf[PlayerDied](rec), 1)
	l.Step(idle)
	assert.Len(t, EventsOf[PlayerDied](rec), 2)
}

func TestFallDeath(t *testing.T) {
	d := &leveldata.Descriptor{
		ID:        1,
		Spawn:     &leveldata.Point{X: 0, Y: 100},
		Platforms: []leveldata.PlatformSpec{{X: 500, Y: 0, Width: 100, Height: 20}},
		EndX:      1000,
	}
	l, rec := buildLevel(t, d)

	for i := 0; i < 120 && len(EventsOf[PlayerDied](rec)) == 0; i++ {
		l.Step(idle)
	}
	deaths := EventsOf[PlayerDied](rec)
	require.Len(t, deaths, 1)
	assert.Equal(t, CauseFall, deaths[0].Cause)
	assert.Less(t, deaths[0].Y, config.Rules.WorldFloorY)
}

func TestGoalGating(t *testing.T) {
	d := floorLevel()
	d.RequiresAllCoins = true
	d.Coins = []leveldata.CoinSpec{{X: -200, Y: 26}}
	d.EndX = 100 // reached at x >= 50
	l, rec := buildLevel(t, d, func(tu *Tuning) { tu.Rules.GateIntroDuration = 0.1 })

	intro := EventsOf[StatusMessage](rec)
	require.Len(t, intro, 1)
	assert.Equal(t, 0.1, intro[0].Duration)

	for i := 0; i < 30; i++ {
		l.Step(holdRight)
	}
	require.GreaterOrEqual(t, l.Player.X, 50.0)
	assert.Equal(t, Running, l.Outcome)
	assert.Empty(t, EventsOf[LevelWon](rec))

	msgs := EventsOf[StatusMessage](rec)
	require.Len(t, msgs, 2, "gate message emitted once while it stays shown")
	assert.Equal(t, config.Rules.GateMessage, msgs[1].Text)
	assert.Equal(t, config.Rules.GateMessageDuration, msgs[1].Duration)

	for i := 0; i < 200 && len(l.Coins) > 0; i++ {
		l.Step(holdLeft)
	}
	require.Empty(t, l.Coins)
	assert.Empty(t, EventsOf[LevelWon](rec))

	for i := 0; i < 200 && l.Outcome == Running; i++ {
		l.Step(holdRight)
	}
	won := EventsOf[LevelWon](rec)
	require.Len(t, won, 1)
	assert.Equal(t, 10, won[0].Score)
	assert.Equal(t, Won, l.Outcome)
}

func TestGoalPlatformTouchWins(t *testing.T) {
	d := floorLevel()
	d.EndX = 0
	d.Platforms = append(d.Platforms, leveldata.PlatformSpec{X: 200, Y: 20, Width: 80, Height: 20, Goal: true})
	l, rec := buildLevel(t, d)

	for i := 0; i < 60 && l.Outcome == Running; i++ {
		l.Step(holdRight)
	}
	assert.Equal(t, Won, l.Outcome)
	assert.Len(t, EventsOf[LevelWon](rec), 1)
}

func TestTimeLimitLoses(t *testing.T) {
	d := floorLevel()
	d.TimeLimit = f64(0.5)
	l, rec := buildLevel(t, d)

	remaining, timed := l.TimeRemaining()
	require.True(t, timed)
	assert.Equal(t, 0.5, remaining)

	steps(l, 40, idle)
	assert.Equal(t, Lost, l.Outcome)
	assert.Len(t, EventsOf[LevelLost](rec), 1)
	assert.Empty(t, EventsOf[PlayerDied](rec))
}

func TestNewLevelErrors(t *testing.T) {
	t.Run("missing spawn", func(t *testing.T) {
		d := floorLevel()
		d.Spawn = nil
		_, err := NewLevel(d, Options{})
		var lde *leveldata.LevelDataError
		assert.True(t, errors.As(err, &lde))
	})

	t.Run("bad pan factor", func(t *testing.T) {
		tu := DefaultTuning()
		tu.Camera.PanFactor = 0
		_, err := NewLevel(floorLevel(), Options{Tuning: &tu})
		var ce *ConfigurationError
		assert.True(t, errors.As(err, &ce))
	})

	t.Run("script compile error", func(t *testing.T) {
		d := floorLevel()
		d.Source = "broken.yaml"
		d.Enemies = []leveldata.EnemySpec{{Kind: leveldata.KindScripted, X: 0, Y: 24, Script: "vx = = 1"}}
		_, err := NewLevel(d, Options{})
		var lde *leveldata.LevelDataError
		require.True(t, errors.As(err, &lde))
		assert.Equal(t, "broken.yaml", lde.Source)
	})
}

func TestBuiltinGeometryDefaults(t *testing.T) {
	d := floorLevel()
	d.Coins = []leveldata.CoinSpec{{X: 500, Y: 40}}
	d.Hazards = []leveldata.HazardSpec{{X: 800, Y: 26}}
	l, _ := buildLevel(t, d)

	require.Len(t, l.Coins, 1)
	assert.Equal(t, config.Pickup.CoinValue, l.Coins[0].Value)
	assert.Equal(t, config.Pickup.CoinSize, l.Coins[0].Width())
	require.Len(t, l.Hazards, 1)
	assert.Equal(t, config.Pickup.HazardWidth, l.Hazards[0].Width())
	assert.Equal(t, config.Pickup.HazardDamage, l.Hazards[0].Damage)
}
