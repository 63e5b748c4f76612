package main

import (
	"context"
	"errors"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/automoto/override/config"
	"github.com/automoto/override/levels"
	"github.com/automoto/override/progress"
	"github.com/automoto/override/scenes"
	"github.com/automoto/override/shared/leveldata"
	"github.com/automoto/override/shared/navigation"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// gameOptions are the command line choices the game shell needs.
type gameOptions struct {
	LevelsDir string
	Seed      uint64
	TapeDir   string
}

// Game owns the screens and routes navigation between them.
type Game struct {
	nav      *navigation.Controller
	scene    scenes.Scene
	world    *scenes.WorldScene
	levels   []*leveldata.Descriptor
	store    progress.Store
	watcher  *levels.Watcher
	opts     gameOptions
	prevBest int
	quit     bool
}

func NewGame(all []*leveldata.Descriptor, store progress.Store, watcher *levels.Watcher, opts gameOptions) *Game {
	g := &Game{
		levels:  all,
		store:   store,
		watcher: watcher,
		opts:    opts,
	}
	g.nav = navigation.NewController(g.show)

	if config.Debug.SkipMenu {
		id := all[0].ID
		if config.Debug.StartLevel != "" {
			if d, ok := findByName(all, config.Debug.StartLevel); ok {
				id = d.ID
			} else {
				log.Warn("unknown start level, using the first", "level", config.Debug.StartLevel)
			}
		}
		g.PlayLevel(id)
	}
	return g
}

func (g *Game) show(state navigation.State) {
	switch state.Screen {
	case navigation.Menu:
		g.world = nil
		g.scene = scenes.NewMenuScene(g)
	case navigation.LevelSelect:
		g.scene = scenes.NewLevelSelectScene(g)
	case navigation.Playing, navigation.Paused:
		if g.world != nil {
			g.scene = g.world
		}
	case navigation.GameOver:
		g.world = nil
		g.scene = scenes.NewGameOverScene(g, state, g.prevBest)
	case navigation.Settings:
		g.scene = scenes.NewSettingsScene(g)
	}
	log.Debug("screen", "to", state.Screen, "level", state.LevelID)
}

func (g *Game) Nav() *navigation.Controller { return g.nav }

func (g *Game) Levels() []*leveldata.Descriptor { return g.levels }

// Quit ends the game loop after the current frame.
func (g *Game) Quit() { g.quit = true }

func (g *Game) Progress() *progress.Progress {
	if g.store == nil {
		return progress.New()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	p, err := g.store.Load(ctx)
	if err != nil {
		log.Warn("could not load progress", "err", err)
		return progress.New()
	}
	return p
}

func (g *Game) PlayLevel(id int) {
	d, ok := levels.Find(g.levels, id)
	if !ok {
		log.Error("no such level", "id", id)
		return
	}
	seed := g.opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	ws, err := scenes.NewWorldScene(g, d, scenes.WorldOptions{
		Store:   g.store,
		Seed:    seed,
		TapeDir: g.opts.TapeDir,
	})
	if err != nil {
		log.Error("could not start level", "id", id, "err", err)
		return
	}

	prev := g.world
	g.prevBest = g.Progress().HighScore(id)
	g.world = ws
	if err := g.nav.StartLevel(id, ws.Session()); err != nil {
		g.world = prev
		log.Error("screen change refused", "err", err)
		return
	}
	log.Info("level started", "id", id, "name", d.Title(), "seed", seed)
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.pollWatcher()
	g.scene.Update()
	return nil
}

// pollWatcher applies level file edits without blocking the frame.
func (g *Game) pollWatcher() {
	for g.watcher != nil {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadLevels(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Warn("level watcher", "err", err)
		default:
			return
		}
	}
}

// reloadLevels rereads every level and restarts the one being played so
// edits show up at once. A broken file keeps the previous set.
func (g *Game) reloadLevels(changed string) {
	all, err := levels.Load(g.opts.LevelsDir)
	if err != nil {
		var lde *leveldata.LevelDataError
		if errors.As(err, &lde) {
			log.Error("level reload failed", "file", changed, "field", lde.Field, "reason", lde.Reason)
		} else {
			log.Error("level reload failed", "file", changed, "err", err)
		}
		return
	}
	g.levels = all
	log.Info("levels reloaded", "file", changed, "count", len(all))

	switch g.nav.Current() {
	case navigation.Playing, navigation.Paused:
		g.PlayLevel(g.nav.State().LevelID)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

// findByName matches a level by numeric ID or by name.
func findByName(all []*leveldata.Descriptor, s string) (*leveldata.Descriptor, bool) {
	for _, d := range all {
		if d.Name == s || d.Title() == s || strconv.Itoa(d.ID) == s {
			return d, true
		}
	}
	return nil, false
}
