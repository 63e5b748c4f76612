package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/override/levels"
)

func TestBuiltinLevelsBuildAndRun(t *testing.T) {
	all, err := levels.Builtin()
	require.NoError(t, err)

	for _, d := range all {
		t.Run(d.Title(), func(t *testing.T) {
			t.Run("idle at spawn is safe", func(t *testing.T) {
				l, _ := buildLevel(t, d)
				steps(l, 600, idle)
				assert.Equal(t, Running, l.Outcome)
				assert.Zero(t, l.Deaths)
				assert.True(t, l.Resolver().CanJump(l.Player), "settled on the ground")
				assert.InDelta(t, d.Spawn.X, l.Player.X, 1e-9)
				for _, e := range l.Enemies {
					assert.NoError(t, e.ScriptErr())
				}
			})

			t.Run("running right meets danger", func(t *testing.T) {
				l, rec := buildLevel(t, d)
				steps(l, 600, holdRight)
				died := false
				for _, ev := range rec.Events {
					if _, ok := ev.(PlayerDied); ok {
						died = true
					}
				}
				assert.True(t, died, "every level has hazards on the floor path")
			})
		})
	}
}
