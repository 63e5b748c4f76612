package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	l, _ := buildLevel(t, floorLevel())
	return NewSession(l)
}

const frame = 1.0 / 60

func TestSessionLifecycle(t *testing.T) {
	s := newTestSession(t)

	assert.Zero(t, s.Advance(frame, Controls{}), "idle sessions do not run")

	s.Start()
	assert.Equal(t, SessionRunning, s.State())
	assert.Equal(t, 1, s.Advance(frame, Controls{}))

	s.Pause()
	s.Pause()
	assert.Equal(t, SessionPaused, s.State())
	assert.Zero(t, s.Advance(frame, Controls{}))

	s.Resume()
	assert.Equal(t, SessionRunning, s.State())
	assert.Equal(t, 1, s.Advance(frame, Controls{}))

	s.Teardown()
	s.Teardown()
	assert.Equal(t, SessionTornDown, s.State())
	assert.Zero(t, s.Advance(frame, Controls{}))
	s.Start()
	s.Resume()
	assert.Equal(t, SessionTornDown, s.State())
}

func TestSessionAccumulatesAndCapsCatchUp(t *testing.T) {
	s := newTestSession(t)
	s.Start()

	assert.Zero(t, s.Advance(frame/2, Controls{}))
	assert.Equal(t, 1, s.Advance(frame/2, Controls{}))
	assert.Equal(t, 2, s.Advance(2*frame, Controls{}))

	assert.Equal(t, DefaultTuning().Rules.MaxCatchUpFrames, s.Advance(1, Controls{}))
	assert.Zero(t, s.Advance(0, Controls{}), "backlog beyond the cap is dropped")
	assert.Equal(t, 3+DefaultTuning().Rules.MaxCatchUpFrames, s.Level().Frame)
}

func TestSessionLatchesJumpPress(t *testing.T) {
	s := newTestSession(t)
	var frames []Input
	s.OnFrame = func(_ int, in Input) { frames = append(frames, in) }
	s.Start()

	// Pressed between simulation frames: kept until one runs.
	require.Zero(t, s.Advance(frame/4, Controls{Jump: true}))
	require.Equal(t, 2, s.Advance(2*frame, Controls{Jump: true}))

	require.Len(t, frames, 2)
	assert.True(t, frames[0].JumpPressed)
	assert.True(t, frames[0].JumpHeld)
	assert.False(t, frames[1].JumpPressed, "one press, one jump")
	assert.True(t, frames[1].JumpHeld)
	assert.Equal(t, RisingHold, s.Level().Jump.Phase)
}

func TestInputLatch(t *testing.T) {
	var l InputLatch
	l.Sample(Controls{Jump: true})
	assert.True(t, l.Next(Controls{Jump: true}).JumpPressed)
	l.Sample(Controls{Jump: true})
	assert.False(t, l.Next(Controls{Jump: true}).JumpPressed)
	l.Sample(Controls{})
	l.Sample(Controls{Jump: true})
	in := l.Next(Controls{Jump: true, Right: true})
	assert.True(t, in.JumpPressed)
	assert.Equal(t, 1.0, in.Direction())
}
