package systems

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/automoto/override/archetypes"
	"github.com/automoto/override/components"
	"github.com/automoto/override/config"
	"github.com/automoto/override/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	dmath "github.com/yohamta/donburi/features/math"
)

var particleQuery = donburi.NewQuery(filter.Contains(tags.Particle))

// UpdateEffects advances particles and squash/stretch.
func UpdateEffects(ecs *ecs.ECS) {
	updateParticles(ecs, 1/float64(ebiten.TPS()))
	updateSquashStretchEffects(ecs)
}

func updateParticles(ecs *ecs.ECS, dt float64) {
	var toRemove []*donburi.Entry
	tags.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		p.Life -= dt
		if p.Life <= 0 {
			toRemove = append(toRemove, e)
			return
		}
		p.Velocity.Y -= p.Gravity * dt
		p.Position.X += p.Velocity.X * dt
		p.Position.Y += p.Velocity.Y * dt
	})
	for _, e := range toRemove {
		e.Remove()
	}
}

// SpawnBurst emits a radial burst of particles at a world point. The count
// is trimmed so no more than MaxAlive particles exist at once.
func SpawnBurst(ecs *ecs.ECS, x, y float64, b config.ParticleBurst, c color.RGBA) {
	alive := particleQuery.Count(ecs.World)
	n := min(b.Count, config.Particles.MaxAlive-alive)
	for i := 0; i < n; i++ {
		angle := rand.Float64() * 2 * math.Pi
		speed := between(b.SpeedMin, b.SpeedMax)
		life := between(b.LifetimeMin, b.LifetimeMax)
		e := archetypes.Particle.Spawn(ecs)
		components.Particle.SetValue(e, components.ParticleData{
			Position: dmath.NewVec2(x, y),
			Velocity: dmath.NewVec2(math.Cos(angle)*speed, math.Sin(angle)*speed),
			Gravity:  b.Gravity,
			Life:     life,
			MaxLife:  life,
			Size:     between(b.SizeMin, b.SizeMax),
			Color:    c,
		})
	}
}

func between(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rand.Float64()*(hi-lo)
}

// DrawParticles renders live particles fading with their remaining life.
func DrawParticles(ecs *ecs.ECS, screen *ebiten.Image) {
	view, ok := NewView(ecs, screen)
	if !ok {
		return
	}
	tags.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		sx, sy := view.ToScreen(p.Position.X, p.Position.Y)
		c := fade(p.Color, p.Life/p.MaxLife)
		half := p.Size / 2
		vector.FillRect(screen, float32(sx-half), float32(sy-half), float32(p.Size), float32(p.Size), c, false)
	})
}

// updateSquashStretchEffects lerps scale values toward target
func updateSquashStretchEffects(ecs *ecs.ECS) {
	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)
		ss.ScaleX += (ss.TargetX - ss.ScaleX) * ss.LerpSpeed
		ss.ScaleY += (ss.TargetY - ss.ScaleY) * ss.LerpSpeed

		const threshold = 0.01
		if math.Abs(ss.ScaleX-ss.TargetX) < threshold && math.Abs(ss.ScaleY-ss.TargetY) < threshold {
			ss.ScaleX, ss.ScaleY = ss.TargetX, ss.TargetY
		}
	})
}

// TriggerSquashStretch deforms an entity that then eases back to normal.
func TriggerSquashStretch(entry *donburi.Entry, scaleX, scaleY float64) {
	components.SquashStretch.SetValue(entry, components.SquashStretchData{
		ScaleX:    scaleX,
		ScaleY:    scaleY,
		TargetX:   1.0,
		TargetY:   1.0,
		LerpSpeed: config.SquashStretch.LerpSpeed,
	})
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || duration <= 0 {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}
	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.SetValue(cameraEntry, components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
