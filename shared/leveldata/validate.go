package leveldata

import (
	"fmt"
	"math"
	"slices"

	"github.com/automoto/override/shared/gamemath"
)

// Validate checks that a descriptor can be built into a level. It returns a
// *LevelDataError naming the first offending field.
func Validate(d *Descriptor) error {
	if err := validate(d); err != nil {
		err.Source = d.Source
		return err
	}
	return nil
}

func validate(d *Descriptor) *LevelDataError {
	if d.Spawn == nil {
		return fieldError("spawn", "missing spawn point")
	}
	if !gamemath.Finite(d.Spawn.X, d.Spawn.Y) {
		return fieldError("spawn", "non-finite coordinates")
	}
	if len(d.Platforms) == 0 && len(d.MovingPlatforms) == 0 {
		return fieldError("platforms", "level has no platform geometry")
	}

	hasGoalPlatform := false
	for i, p := range d.Platforms {
		field := fmt.Sprintf("platforms[%d]", i)
		if err := checkBox(field, p.X, p.Y, p.Width, p.Height); err != nil {
			return err
		}
		if p.Goal {
			hasGoalPlatform = true
		}
	}

	for i, m := range d.MovingPlatforms {
		field := fmt.Sprintf("moving_platforms[%d]", i)
		if err := checkBox(field, m.X, m.Y, m.Width, m.Height); err != nil {
			return err
		}
		if !gamemath.Finite(m.ChangeX, m.ChangeY) {
			return fieldError(field, "non-finite velocity")
		}
		if m.BoundaryLeft != nil && m.BoundaryRight != nil && *m.BoundaryLeft >= *m.BoundaryRight {
			return fieldError(field, "boundary_left %v must be below boundary_right %v", *m.BoundaryLeft, *m.BoundaryRight)
		}
		if m.BoundaryBottom != nil && m.BoundaryTop != nil && *m.BoundaryBottom >= *m.BoundaryTop {
			return fieldError(field, "boundary_bottom %v must be below boundary_top %v", *m.BoundaryBottom, *m.BoundaryTop)
		}
	}

	for i, c := range d.Coins {
		field := fmt.Sprintf("coins[%d]", i)
		if !gamemath.Finite(c.X, c.Y) {
			return fieldError(field, "non-finite coordinates")
		}
		if c.Value < 0 {
			return fieldError(field, "negative value %d", c.Value)
		}
	}

	for i, h := range d.Hazards {
		field := fmt.Sprintf("hazards[%d]", i)
		if !gamemath.Finite(h.X, h.Y, h.Width, h.Height) {
			return fieldError(field, "non-finite geometry")
		}
		if h.Width < 0 || h.Height < 0 {
			return fieldError(field, "negative size %vx%v", h.Width, h.Height)
		}
	}

	for i, e := range d.Enemies {
		field := fmt.Sprintf("enemies[%d]", i)
		if !slices.Contains(KnownEnemyKinds, e.Kind) {
			return fieldError(field, "unknown enemy kind %q", e.Kind)
		}
		if !gamemath.Finite(e.X, e.Y) {
			return fieldError(field, "non-finite coordinates")
		}
		if e.Kind == KindScripted && e.Script == "" {
			return fieldError(field, "scripted enemy has no script")
		}
		if e.Param("interval_min", 0) > e.Param("interval_max", math.MaxFloat64) {
			return fieldError(field, "interval_min exceeds interval_max")
		}
	}

	if d.Goal != nil {
		if err := checkBox("goal", d.Goal.X, d.Goal.Y, d.Goal.Width, d.Goal.Height); err != nil {
			return err
		}
	}
	if d.EndX <= 0 && d.Goal == nil && !hasGoalPlatform {
		return fieldError("end_x", "level has no end condition: set end_x, goal or a goal platform")
	}

	if d.TimeLimit != nil && (*d.TimeLimit <= 0 || !gamemath.Finite(*d.TimeLimit)) {
		return fieldError("time_limit", "must be positive, got %v", *d.TimeLimit)
	}
	if d.Gravity != nil && (*d.Gravity < 0 || !gamemath.Finite(*d.Gravity)) {
		return fieldError("gravity", "must not be negative, got %v", *d.Gravity)
	}
	return nil
}

func checkBox(field string, x, y, w, h float64) *LevelDataError {
	if !gamemath.Finite(x, y, w, h) {
		return fieldError(field, "non-finite geometry")
	}
	if w <= 0 || h <= 0 {
		return fieldError(field, "width and height must be positive, got %vx%v", w, h)
	}
	return nil
}
