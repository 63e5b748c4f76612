package scenes

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/automoto/override/components"
	cfg "github.com/automoto/override/config"
	"github.com/automoto/override/core"
	"github.com/automoto/override/progress"
	"github.com/automoto/override/replay"
	"github.com/automoto/override/shared/leveldata"
	"github.com/automoto/override/systems"
	"github.com/automoto/override/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldOptions configure a level run.
type WorldOptions struct {
	Store progress.Store
	Seed  uint64

	// TapeDir, when set, records the run and writes the tape there once the
	// level ends.
	TapeDir string
}

// WorldScene plays one level.
type WorldScene struct {
	ecs     *ecs.ECS
	host    Host
	desc    *leveldata.Descriptor
	opts    WorldOptions
	game    *donburi.Entry
	session *core.Session
}

// NewWorldScene builds the level and its session. The session starts when
// the navigation controller switches to it.
func NewWorldScene(host Host, d *leveldata.Descriptor, opts WorldOptions) (*WorldScene, error) {
	ws := &WorldScene{host: host, desc: d, opts: opts}
	if err := ws.configure(); err != nil {
		return nil, err
	}
	return ws, nil
}

// Session is the running level session.
func (ws *WorldScene) Session() *core.Session { return ws.session }

// LevelID is the ID of the level being played.
func (ws *WorldScene) LevelID() int { return ws.desc.ID }

func (ws *WorldScene) Update() {
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() error {
	ws.ecs = ecs.NewECS(donburi.NewWorld())
	nav := ws.host.Nav()
	id := ws.desc.ID

	sink := core.MultiSink{
		systems.QueueSink(ws.ecs),
		&progress.Recorder{
			Store:   ws.opts.Store,
			LevelID: id,
			OnSaved: func(r progress.Result) {
				log.Info("run saved", "level", r.LevelID, "score", r.Score, "won", r.Won, "elapsed", r.Elapsed)
			},
		},
	}
	game, err := factory.CreateLevel(ws.ecs, ws.desc, factory.LevelOptions{
		Sink:   sink,
		Seed:   ws.opts.Seed,
		Record: ws.opts.TapeDir != "",
	})
	if err != nil {
		return err
	}
	ws.game = game
	ws.session = components.Game.Get(game).Session
	level := ws.session.Level()

	factory.CreateCamera(ws.ecs, level)
	factory.CreatePlayerView(ws.ecs)

	// Audio system (runs first, even when paused for menu sounds)
	ws.ecs.AddSystem(systems.UpdateAudio)
	ws.ecs.AddSystem(systems.UpdateInput)
	ws.ecs.AddSystem(systems.UpdateDebug)
	ws.ecs.AddSystem(systems.NewUpdatePause(systems.PauseActions{
		Pause:    func() { logNav(nav.Pause()) },
		Resume:   func() { logNav(nav.Resume()) },
		Restart:  func() { ws.host.PlayLevel(id) },
		Settings: func() { logNav(nav.OpenSettings()) },
		Quit:     func() { logNav(nav.ShowMenu()) },
	}))
	ws.ecs.AddSystem(systems.NewUpdateSimulation(ws.finish))

	ws.ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayerView))
	ws.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	ws.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateStatus))
	ws.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	ws.ecs.AddRenderer(components.Default, systems.DrawWorld)
	ws.ecs.AddRenderer(components.Default, systems.DrawParticles)
	ws.ecs.AddRenderer(components.Default, systems.DrawDebug)
	ws.ecs.AddRenderer(components.Default, systems.DrawHUD)
	ws.ecs.AddRenderer(components.Default, systems.DrawStatus)
	ws.ecs.AddRenderer(components.Default, systems.DrawPause)

	systems.PreloadAllSFX()
	systems.PlayMusic(ws.ecs, cfg.MusicLevel)

	// The gate message may already be queued from the level build.
	if level.Status != "" {
		remaining := level.Tuning().Rules.GateIntroDuration
		systems.ShowStatus(ws.ecs, level.Status, remaining)
	}
	return nil
}

func (ws *WorldScene) finish(won bool, score int) {
	if tape := components.Game.Get(ws.game).Tape; tape != nil {
		if path, err := writeTape(ws.opts.TapeDir, tape); err != nil {
			log.Error("could not write replay", "err", err)
		} else {
			log.Info("replay written", "path", path, "frames", tape.Len())
		}
	}
	logNav(ws.host.Nav().ShowGameOver(won, score))
}

func writeTape(dir string, tape *replay.Tape) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create replay dir: %w", err)
	}
	name := fmt.Sprintf("level%d-%s.tape", tape.LevelID, time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create replay: %w", err)
	}
	if err := tape.Encode(f); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}
