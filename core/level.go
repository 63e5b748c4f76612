package core

import (
	"errors"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/automoto/override/shared/gamemath"
	"github.com/automoto/override/shared/leveldata"
)

// Outcome is the terminal state of a level run.
type Outcome int

const (
	Running Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// Coin is a collectible still present in the level.
type Coin struct {
	gamemath.Rect
	Value int
}

// Hazard kills on overlap. Damage is only shown, never subtracted.
type Hazard struct {
	gamemath.Rect
	Damage int
}

// Options configure a level build.
type Options struct {
	Sink   EventSink
	Seed   uint64
	Tuning *Tuning // nil means DefaultTuning()
}

// Level is one running level: its geometry, the player and the run state.
type Level struct {
	Desc *leveldata.Descriptor

	Player    *Body
	Jump      JumpController
	Statics   []*Solid
	Platforms Platforms
	Coins     []Coin
	Hazards   []Hazard
	Enemies   []*Enemy
	Camera    *Camera
	Goal      *gamemath.Rect

	Score      int
	Lives      int
	Deaths     int
	Elapsed    float64
	Frame      int
	CoinsTotal int
	Outcome    Outcome
	Grounded   bool
	Riding     *Solid

	// Status is the message currently shown, empty when none.
	Status string

	spawnX, spawnY float64
	gravity        float64
	timeLimit      float64
	dt             float64
	statusUntil    float64
	grace          int
	bounds         gamemath.Rect

	tuning   Tuning
	space    *Space
	resolver *Resolver
	sink     EventSink
	rng      *rand.Rand
}

// NewLevel validates d and builds a level ready for its first Step.
func NewLevel(d *leveldata.Descriptor, opts Options) (*Level, error) {
	if err := leveldata.Validate(d); err != nil {
		return nil, err
	}
	t := DefaultTuning()
	if opts.Tuning != nil {
		t = *opts.Tuning
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	mode, err := ParseCameraMode(t.Camera.Mode)
	if err != nil {
		return nil, err
	}
	cam, err := NewCamera(mode, t.Camera.PanFactor)
	if err != nil {
		return nil, err
	}
	player, err := NewBody(d.Spawn.X, d.Spawn.Y, t.Player.Width, t.Player.Height)
	if err != nil {
		return nil, err
	}

	l := &Level{
		Desc:    d,
		Player:  player,
		Jump:    NewJumpController(t.Jump),
		Camera:  cam,
		Lives:   t.Player.StartingLives,
		spawnX:  d.Spawn.X,
		spawnY:  d.Spawn.Y,
		gravity: t.Physics.Gravity,
		dt:      t.FrameSeconds(),
		tuning:  t,
		sink:    opts.Sink,
		rng:     rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
	}
	if l.sink == nil {
		l.sink = discardSink{}
	}
	if d.Gravity != nil {
		l.gravity = *d.Gravity
	}
	if d.TimeLimit != nil {
		l.timeLimit = *d.TimeLimit
	}

	l.bounds = levelBounds(d, t)
	margin := t.Physics.SpaceMargin
	spaceBounds := l.bounds.Union(gamemath.RectFromEdges(l.bounds.Left(), t.Rules.WorldFloorY, l.bounds.Right(), l.bounds.Top())).Inflate(margin)
	l.space = NewSpace(spaceBounds, t.Physics.SpaceCellSize)
	l.resolver = NewResolver(l.space, t.Physics)

	if err := l.build(d); err != nil {
		var lde *leveldata.LevelDataError
		if errors.As(err, &lde) && lde.Source == "" {
			lde.Source = d.Source
		}
		return nil, err
	}

	if t.Camera.ClampToLevel {
		cam.ClampTo(l.bounds, t.ViewWidth, t.ViewHeight)
	}
	cam.Snap(player.X, player.Y)

	if d.RequiresAllCoins && len(l.Coins) > 0 {
		l.setStatus(t.Rules.GateMessage, t.Rules.GateIntroDuration)
	}

	log.Debug("level built", "id", d.ID, "name", d.Title(),
		"solids", len(l.Statics), "moving", l.Platforms.Len(),
		"coins", len(l.Coins), "enemies", len(l.Enemies))
	return l, nil
}

func (l *Level) build(d *leveldata.Descriptor) error {
	t := l.tuning
	id := 0
	for _, p := range d.Platforms {
		s := &Solid{
			Body:   Body{X: p.X, Y: p.Y, HalfW: p.Width / 2, HalfH: p.Height / 2},
			ID:     id,
			OneWay: p.OneWay,
			Goal:   p.Goal,
			slot:   -1,
		}
		id++
		l.Statics = append(l.Statics, s)
		l.space.Add(s)
	}
	for _, m := range d.MovingPlatforms {
		s := &Solid{
			Body: Body{
				X: m.X, Y: m.Y, HalfW: m.Width / 2, HalfH: m.Height / 2,
				VX: m.ChangeX, VY: m.ChangeY,
			},
			ID:     id,
			Moving: true,
			Bounds: Bounds{
				Left: m.BoundaryLeft, Right: m.BoundaryRight,
				Bottom: m.BoundaryBottom, Top: m.BoundaryTop,
			},
		}
		id++
		l.Platforms.Add(s)
		l.space.Add(s)
	}

	for _, c := range d.Coins {
		v := c.Value
		if v == 0 {
			v = t.Pickup.CoinValue
		}
		l.Coins = append(l.Coins, Coin{
			Rect:  gamemath.RectFromSize(c.X, c.Y, t.Pickup.CoinSize, t.Pickup.CoinSize),
			Value: v,
		})
	}
	l.CoinsTotal = len(l.Coins)

	for _, h := range d.Hazards {
		w, ht := h.Width, h.Height
		if w == 0 {
			w = t.Pickup.HazardWidth
		}
		if ht == 0 {
			ht = t.Pickup.HazardHeight
		}
		dmg := h.Damage
		if dmg == 0 {
			dmg = t.Pickup.HazardDamage
		}
		l.Hazards = append(l.Hazards, Hazard{Rect: gamemath.RectFromSize(h.X, h.Y, w, ht), Damage: dmg})
	}

	for _, spec := range d.Enemies {
		e, err := newEnemy(spec, t.Enemy, l.gravity, l.rng)
		if err != nil {
			return err
		}
		l.Enemies = append(l.Enemies, e)
	}

	if d.Goal != nil {
		g := gamemath.RectFromSize(d.Goal.X, d.Goal.Y, d.Goal.Width, d.Goal.Height)
		l.Goal = &g
	}
	return nil
}

// levelBounds is the box around everything placed in the level, including
// moving platform bounds and the end line.
func levelBounds(d *leveldata.Descriptor, t Tuning) gamemath.Rect {
	b := gamemath.RectFromSize(d.Spawn.X, d.Spawn.Y, t.Player.Width, t.Player.Height)
	for _, p := range d.Platforms {
		b = b.Union(gamemath.RectFromSize(p.X, p.Y, p.Width, p.Height))
	}
	for _, m := range d.MovingPlatforms {
		r := gamemath.RectFromSize(m.X, m.Y, m.Width, m.Height)
		for _, v := range []*float64{m.BoundaryLeft, m.BoundaryRight} {
			if v != nil {
				r = r.Union(gamemath.Rect{X: *v, Y: m.Y})
			}
		}
		for _, v := range []*float64{m.BoundaryBottom, m.BoundaryTop} {
			if v != nil {
				r = r.Union(gamemath.Rect{X: m.X, Y: *v})
			}
		}
		b = b.Union(r)
	}
	for _, c := range d.Coins {
		b = b.Union(gamemath.Rect{X: c.X, Y: c.Y})
	}
	for _, h := range d.Hazards {
		b = b.Union(gamemath.RectFromSize(h.X, h.Y, h.Width, h.Height))
	}
	for _, e := range d.Enemies {
		b = b.Union(gamemath.Rect{X: e.X, Y: e.Y})
	}
	if d.Goal != nil {
		b = b.Union(gamemath.RectFromSize(d.Goal.X, d.Goal.Y, d.Goal.Width, d.Goal.Height))
	}
	if d.EndX > 0 {
		b = b.Union(gamemath.Rect{X: d.EndX, Y: b.Y})
	}
	return b
}

// Step runs one fixed frame. It does nothing once the outcome is terminal.
func (l *Level) Step(in Input) {
	if l.Outcome != Running {
		return
	}
	l.Frame++
	l.Elapsed += l.dt
	if l.Status != "" && l.Elapsed >= l.statusUntil {
		l.Status = ""
	}
	if l.timeLimit > 0 && l.Elapsed >= l.timeLimit {
		l.lose()
		return
	}

	p := l.Player
	startX := p.X
	inputDX := in.Direction() * l.tuning.Player.MoveSpeed
	p.VX = inputDX

	canJump := l.resolver.CanJump(p)
	if l.Jump.Update(p, in, canJump, l.ceilingBlocked) {
		l.sink.Emit(JumpStarted{})
	}

	contact := l.resolver.Move(p, l.gravity)
	l.Grounded = contact.Ground != nil

	l.Platforms.Advance()
	l.Riding = l.carry(startX, inputDX)
	l.Platforms.Snapshot()

	l.stepEnemies()
	l.collectCoins()

	if l.grace > 0 {
		l.grace--
	} else {
		if l.touchingHazard() {
			l.die(CauseHazard)
			return
		}
		if l.touchingEnemy() {
			l.die(CauseEnemy)
			return
		}
	}

	if l.atGoal() {
		if l.Desc.RequiresAllCoins && len(l.Coins) > 0 {
			l.setStatus(l.tuning.Rules.GateMessage, l.tuning.Rules.GateMessageDuration)
		} else {
			l.Outcome = Won
			l.sink.Emit(LevelWon{Score: l.Score, Elapsed: l.Elapsed})
			return
		}
	}

	if p.Y < l.tuning.Rules.WorldFloorY {
		l.die(CauseFall)
		return
	}

	l.Camera.Update(p.X, p.Y)
}

func (l *Level) ceilingBlocked() bool {
	return l.resolver.Blocked(l.Player.Rect().Translate(0, l.tuning.Jump.ProbeDistance))
}

func (l *Level) stepEnemies() {
	env := aiEnv{DT: l.dt, T: l.Elapsed, PlayerX: l.Player.X, PlayerY: l.Player.Y}
	for _, e := range l.Enemies {
		if !e.Active {
			continue
		}
		e.Grounded = l.resolver.CanJump(&e.Body)
		aiTable[e.Kind](e, env)
		c := l.resolver.Move(&e.Body, e.Gravity)
		e.HitWall = c.Wall
		if e.Y < l.tuning.Rules.WorldFloorY {
			e.Active = false
		}
	}
}

func (l *Level) collectCoins() {
	kept := l.Coins[:0]
	for _, c := range l.Coins {
		if !l.Player.Overlaps(c.Rect) {
			kept = append(kept, c)
			continue
		}
		l.Score += c.Value
		l.sink.Emit(CoinCollected{Value: c.Value, X: c.X, Y: c.Y})
	}
	l.Coins = kept
}

func (l *Level) touchingHazard() bool {
	for _, h := range l.Hazards {
		if l.Player.Overlaps(h.Rect) {
			return true
		}
	}
	return false
}

func (l *Level) touchingEnemy() bool {
	for _, e := range l.Enemies {
		if e.Active && l.Player.Overlaps(e.Rect()) {
			return true
		}
	}
	return false
}

// atGoal is inclusive: standing on a goal platform counts.
func (l *Level) atGoal() bool {
	pr := l.Player.Rect()
	for _, s := range l.Statics {
		if s.Goal && pr.Touches(s.Rect()) {
			return true
		}
	}
	if l.Goal != nil && pr.Touches(*l.Goal) {
		return true
	}
	end := l.Desc.EndX
	return end > 0 && l.Player.X >= end-l.tuning.Rules.GoalLeeway
}

func (l *Level) die(cause DeathCause) {
	l.Lives--
	l.Deaths++
	l.sink.Emit(PlayerDied{Cause: cause, X: l.Player.X, Y: l.Player.Y, LivesLeft: max(l.Lives, 0)})
	if l.Lives <= 0 {
		l.Lives = 0
		l.lose()
		return
	}
	l.Player.Place(l.spawnX, l.spawnY)
	l.Jump.Reset()
	l.grace = l.tuning.Rules.RespawnGraceFrames
}

func (l *Level) lose() {
	l.Outcome = Lost
	l.sink.Emit(LevelLost{Score: l.Score, Elapsed: l.Elapsed})
}

func (l *Level) setStatus(text string, seconds float64) {
	if l.Status == text {
		return
	}
	l.Status = text
	l.statusUntil = l.Elapsed + seconds
	l.sink.Emit(StatusMessage{Text: text, Duration: seconds})
}

// SetSink replaces the event sink.
func (l *Level) SetSink(s EventSink) {
	if s == nil {
		s = discardSink{}
	}
	l.sink = s
}

// Bounds is the box around the level's content.
func (l *Level) Bounds() gamemath.Rect { return l.bounds }

// Gravity is the per-frame gravity in effect.
func (l *Level) Gravity() float64 { return l.gravity }

// TimeRemaining returns the seconds left and whether the level is timed.
func (l *Level) TimeRemaining() (float64, bool) {
	if l.timeLimit <= 0 {
		return 0, false
	}
	return max(l.timeLimit-l.Elapsed, 0), true
}

// Resolver exposes the collision resolver, e.g. for debug overlays.
func (l *Level) Resolver() *Resolver { return l.resolver }

// Tuning returns the values the level was built with.
func (l *Level) Tuning() Tuning { return l.tuning }
