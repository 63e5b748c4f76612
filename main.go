// override is a 2D side-scrolling platformer.
//
// Usage:
//
//	override                     - Play
//	override levels list         - List levels
//	override levels validate f…  - Check level files
//	override replay <tape>       - Re-simulate a recorded run
//	override scores              - Show stored progress
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/automoto/override/config"
	"github.com/automoto/override/fonts"
	"github.com/automoto/override/levels"
	"github.com/automoto/override/progress"
	"github.com/automoto/override/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagLevels  string
	flagStore   string
	flagDBPath  string
	flagVerbose bool

	// Game flags
	flagWatch    bool
	flagRecord   string
	flagSeed     uint64
	flagSkipMenu bool
	flagLevel    string
	flagDebug    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "override",
	Short: "System Override - a side-scrolling platformer",
	Long: `Run, jump and ride moving platforms to the end of each level.
Collect coins for score and avoid hazards and enemies.

Examples:
  override
  override --levels ./mylevels --watch
  override --skip-menu --level 2 --record ./tapes
  override levels validate ./mylevels/*.yaml
  override replay ./tapes/level2-20260101-120000.tape`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		path, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		if path != "" {
			log.Info("config loaded", "path", path)
		}
		return nil
	},
	RunE: runGame,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Tuning file (default: $"+config.EnvConfigPath+" or ~/.override/config.yaml)")
	pf.StringVar(&flagLevels, "levels", "", "Directory of level files (default: built-in levels)")
	pf.StringVar(&flagStore, "store", "gdata", "Progress store: gdata or sqlite")
	pf.StringVar(&flagDBPath, "db", progress.DefaultSQLitePath(), "Database path for --store sqlite")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")

	f := rootCmd.Flags()
	f.BoolVar(&flagWatch, "watch", false, "Reload levels when files in --levels change")
	f.StringVar(&flagRecord, "record", "", "Write a replay tape of every finished run to this directory")
	f.Uint64Var(&flagSeed, "seed", 0, "RNG seed for enemy timing (0 = random)")
	f.BoolVar(&flagSkipMenu, "skip-menu", false, "Start playing immediately")
	f.StringVar(&flagLevel, "level", "", "Level ID or name to start with --skip-menu")
	f.BoolVar(&flagDebug, "debug", false, "Draw collision boxes (toggle with F3)")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
}

func setupLogging() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "override",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)
}

// openStore opens the progress store chosen by --store.
func openStore(ctx context.Context) (progress.Store, error) {
	switch flagStore {
	case "gdata":
		return progress.OpenGData()
	case "sqlite":
		return progress.OpenSQLite(ctx, flagDBPath)
	}
	return nil, fmt.Errorf("unknown store %q (want gdata or sqlite)", flagStore)
}

func runGame(cmd *cobra.Command, args []string) error {
	all, err := levels.Load(flagLevels)
	if err != nil {
		return err
	}

	store, err := openStore(cmd.Context())
	if err != nil {
		// Play on without saving rather than refusing to start.
		log.Warn("progress will not be saved", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var watcher *levels.Watcher
	if flagWatch {
		if flagLevels == "" {
			log.Warn("--watch needs --levels, built-in levels are not watched")
		} else if watcher, err = levels.NewWatcher(flagLevels); err != nil {
			log.Warn("level watching disabled", "err", err)
			watcher = nil
		} else {
			defer watcher.Close()
			log.Info("watching levels", "dir", flagLevels)
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}
	_ = systems.InitPersistence()
	systems.ApplySettings(systems.LoadSettings())

	config.Debug.SkipMenu = flagSkipMenu
	config.Debug.StartLevel = flagLevel
	config.Debug.DrawBoxes = flagDebug

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TargetFPS)

	game := NewGame(all, store, watcher, gameOptions{
		LevelsDir: flagLevels,
		Seed:      flagSeed,
		TapeDir:   flagRecord,
	})
	return ebiten.RunGame(game)
}
