package replay

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/automoto/override/core"
	"github.com/automoto/override/levels"
	"github.com/automoto/override/shared/leveldata"
)

func builtin(t *testing.T, id int) *leveldata.Descriptor {
	t.Helper()
	all, err := levels.Builtin()
	require.NoError(t, err)
	d, ok := levels.Find(all, id)
	require.True(t, ok, "level %d", id)
	return d
}

// runnerTape holds right and hops every 40 frames.
func runnerTape(levelID int, seed uint64, frames int) *Tape {
	tape := NewTape(levelID, seed)
	for i := range frames {
		jump := i%40 < 12
		tape.Append(core.Input{Right: true, JumpPressed: i%40 == 0, JumpHeld: jump})
	}
	return tape
}

func TestTapeRunLengthEncodes(t *testing.T) {
	tape := NewTape(1, 7)
	for range 30 {
		tape.Append(core.Input{Right: true})
	}
	tape.Append(core.Input{Right: true, JumpPressed: true, JumpHeld: true})
	for range 5 {
		tape.Append(core.Input{})
	}

	assert.Len(t, tape.Spans, 3)
	assert.Equal(t, 36, tape.Len())

	n := 0
	for range tape.Frames() {
		n++
	}
	assert.Equal(t, 36, n)
}

func TestRunIsDeterministic(t *testing.T) {
	for _, id := range []int{1, 2, 3} {
		d := builtin(t, id)
		tape := runnerTape(id, 42, 1800)

		first, err := Run(context.Background(), d, tape, core.Options{})
		require.NoError(t, err)
		second, err := Run(context.Background(), d, tape, core.Options{})
		require.NoError(t, err)

		assert.Equal(t, first, second, "level %d", id)
		assert.Positive(t, first.Frames)
	}
}

func TestTapeSurvivesMsgpackRoundTrip(t *testing.T) {
	d := builtin(t, 1)
	tape := runnerTape(1, 99, 900)

	var buf bytes.Buffer
	require.NoError(t, tape.Encode(&buf))
	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, tape, decoded)

	want, err := Run(context.Background(), d, tape, core.Options{})
	require.NoError(t, err)
	got, err := Run(context.Background(), d, decoded, core.Options{})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCaptureMatchesLiveSession(t *testing.T) {
	d := builtin(t, 1)
	level, err := core.NewLevel(d, core.Options{Seed: 5})
	require.NoError(t, err)
	s := core.NewSession(level)
	tape := NewTape(d.ID, 5)
	tape.Capture(s)
	s.Start()

	step := level.Tuning().FrameSeconds()
	for i := range 600 {
		s.Advance(step, core.Controls{Right: true, Jump: i%50 < 10})
	}
	require.Equal(t, level.Frame, tape.Len())

	res, err := Run(context.Background(), d, tape, core.Options{})
	require.NoError(t, err)
	assert.Equal(t, level.Player.X, res.PlayerX)
	assert.Equal(t, level.Player.Y, res.PlayerY)
	assert.Equal(t, level.Score, res.Score)
	assert.Equal(t, level.Deaths, res.Deaths)
}

func TestRunStopsAtOutcome(t *testing.T) {
	d := &leveldata.Descriptor{
		ID:        9,
		Spawn:     &leveldata.Point{X: 0, Y: 26},
		Platforms: []leveldata.PlatformSpec{{X: 0, Y: 0, Width: 400, Height: 20}},
		EndX:      100,
	}
	tape := NewTape(9, 0)
	for range 500 {
		tape.Append(core.Input{Right: true})
	}

	res, err := Run(context.Background(), d, tape, core.Options{})
	require.NoError(t, err)
	assert.True(t, res.Finished)
	assert.Equal(t, core.Won, res.Outcome)
	assert.Less(t, res.Frames, 500)
}

func TestRunRejectsMismatchedLevel(t *testing.T) {
	_, err := Run(context.Background(), builtin(t, 2), NewTape(1, 0), core.Options{})
	assert.ErrorContains(t, err, "tape is for level 1")
}

func TestRunHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, builtin(t, 1), runnerTape(1, 0, 10), core.Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeRejectsUnknownVersion(t *testing.T) {
	data, err := msgpack.Marshal(&Tape{Version: 99, LevelID: 1})
	require.NoError(t, err)

	_, err = Decode(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrVersion)
}
