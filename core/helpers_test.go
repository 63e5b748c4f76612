package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/automoto/override/config"
	"github.com/automoto/override/shared/gamemath"
	"github.com/automoto/override/shared/leveldata"
)

var testBounds = gamemath.RectFromEdges(-4000, -4000, 4000, 4000)

func f64(v float64) *float64 { return &v }

// newTestResolver builds a space holding the given solids, with IDs
// assigned in order.
func newTestResolver(solids ...*Solid) *Resolver {
	return newTestResolverWith(DefaultTuning().Physics, solids...)
}

// newFastResolver lifts the fall speed cap so single-frame sweeps can be
// arbitrarily long.
func newFastResolver(solids ...*Solid) *Resolver {
	cfg := DefaultTuning().Physics
	cfg.MaxFallSpeed = math.MaxFloat64
	return newTestResolverWith(cfg, solids...)
}

func newTestResolverWith(cfg config.PhysicsConfig, solids ...*Solid) *Resolver {
	space := NewSpace(testBounds, 32)
	for i, s := range solids {
		s.ID = i
		space.Add(s)
	}
	return NewResolver(space, cfg)
}

func box(x, y, w, h float64) *Solid {
	return &Solid{Body: Body{X: x, Y: y, HalfW: w / 2, HalfH: h / 2}, slot: -1}
}

func oneWay(x, y, w, h float64) *Solid {
	s := box(x, y, w, h)
	s.OneWay = true
	return s
}

func mustBody(t *testing.T, x, y, w, h float64) *Body {
	t.Helper()
	b, err := NewBody(x, y, w, h)
	require.NoError(t, err)
	return b
}

// floorLevel is a wide floor with its top at y=10 and a far end line.
func floorLevel() *leveldata.Descriptor {
	return &leveldata.Descriptor{
		ID:        1,
		Spawn:     &leveldata.Point{X: 0, Y: 26},
		Platforms: []leveldata.PlatformSpec{{X: 0, Y: 0, Width: 4000, Height: 20}},
		EndX:      5000,
	}
}

func buildLevel(t *testing.T, d *leveldata.Descriptor, tune ...func(*Tuning)) (*Level, *Recorder) {
	t.Helper()
	tuning := DefaultTuning()
	for _, fn := range tune {
		fn(&tuning)
	}
	rec := &Recorder{}
	l, err := NewLevel(d, Options{Sink: rec, Seed: 42, Tuning: &tuning})
	require.NoError(t, err)
	return l, rec
}

func steps(l *Level, n int, in Input) {
	for i := 0; i < n; i++ {
		l.Step(in)
	}
}

var (
	idle      = Input{}
	holdRight = Input{Right: true}
	holdLeft  = Input{Left: true}
)
