package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/automoto/override/core"
	"github.com/automoto/override/levels"
	"github.com/automoto/override/progress"
	"github.com/automoto/override/replay"
	"github.com/automoto/override/shared/leveldata"
	"github.com/automoto/override/systems"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Inspect level files",
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List levels in load order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := levels.Load(flagLevels)
		if err != nil {
			return err
		}
		t := newTable("ID", "Name", "Platforms", "Moving", "Coins", "Enemies", "Time limit", "Source")
		for _, d := range all {
			limit := "-"
			if d.TimeLimit != nil {
				limit = systems.FormatDuration(*d.TimeLimit)
			}
			t.Row(
				strconv.Itoa(d.ID), d.Title(),
				strconv.Itoa(len(d.Platforms)), strconv.Itoa(len(d.MovingPlatforms)),
				strconv.Itoa(d.CoinCount()), strconv.Itoa(len(d.Enemies)),
				limit, d.Source,
			)
		}
		fmt.Println(titleStyle.Render("Levels"))
		fmt.Println(t)
		return nil
	},
}

var levelsValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Load and build level files, reporting every problem",
	Long: `Checks each file the way the game loads it: decoding, field
validation, and building the level simulation.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, p := range args {
			if err := validateFile(p); err != nil {
				failed++
				fmt.Printf("%s %s: %v\n", failStyle.Render("FAIL"), p, err)
				continue
			}
			fmt.Printf("%s %s\n", okStyle.Render("ok  "), p)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d level files failed", failed, len(args))
		}
		return nil
	},
}

func validateFile(p string) error {
	d, err := leveldata.LoadFile(os.DirFS(filepath.Dir(p)), filepath.Base(p))
	if err != nil {
		return err
	}
	_, err = core.NewLevel(d, core.Options{})
	return err
}

var replayCmd = &cobra.Command{
	Use:   "replay <tape>",
	Short: "Re-simulate a recorded run and print its result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		tape, err := replay.Decode(f)
		if err != nil {
			return err
		}

		all, err := levels.Load(flagLevels)
		if err != nil {
			return err
		}
		d, ok := levels.Find(all, tape.LevelID)
		if !ok {
			return fmt.Errorf("tape is for level %d, which is not loaded", tape.LevelID)
		}

		res, err := replay.Run(cmd.Context(), d, tape, core.Options{})
		if err != nil {
			return err
		}
		t := newTable("Field", "Value").
			Row("Level", fmt.Sprintf("%d %s", res.LevelID, d.Title())).
			Row("Frames", strconv.Itoa(res.Frames)).
			Row("Outcome", res.Outcome.String()).
			Row("Score", strconv.Itoa(res.Score)).
			Row("Coins", strconv.Itoa(res.Coins)).
			Row("Lives", strconv.Itoa(res.Lives)).
			Row("Deaths", strconv.Itoa(res.Deaths)).
			Row("Time", systems.FormatDuration(res.Elapsed)).
			Row("Player", fmt.Sprintf("%.1f, %.1f", res.PlayerX, res.PlayerY)).
			Row("Events", strconv.Itoa(res.Events))
		fmt.Println(titleStyle.Render("Replay " + filepath.Base(args[0])))
		fmt.Println(t)
		if !res.Finished {
			fmt.Println(dimStyle.Render("The tape ended before the level was decided."))
		}
		return nil
	},
}

var (
	flagScoresLevel  int
	flagScoresRecent int
	flagScoresReset  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores, completion and playtime",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		if flagScoresReset {
			if err := store.Reset(ctx); err != nil {
				return err
			}
			fmt.Println("Progress cleared.")
			return nil
		}

		p, err := store.Load(ctx)
		if err != nil {
			return err
		}
		all, _ := levels.Load(flagLevels)
		printProgress(p, all)

		if sq, ok := store.(*progress.SQLiteStore); ok && flagScoresRecent > 0 {
			runs, err := sq.RecentRuns(ctx, flagScoresLevel, flagScoresRecent)
			if err != nil {
				return err
			}
			t := newTable("When", "Level", "Score", "Result", "Time")
			for _, r := range runs {
				result := "lost"
				if r.Won {
					result = "won"
				}
				t.Row(r.PlayedAt.Format("2006-01-02 15:04"), strconv.Itoa(r.LevelID),
					strconv.Itoa(r.Score), result, systems.FormatDuration(r.Elapsed))
			}
			fmt.Println(titleStyle.Render("Recent runs"))
			fmt.Println(t)
		}
		return nil
	},
}

func printProgress(p *progress.Progress, all []*leveldata.Descriptor) {
	ids := p.LevelIDs()
	if len(ids) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}
	t := newTable("Level", "Name", "High score", "Cleared", "Best time", "Plays")
	for _, id := range ids {
		rec := p.Record(id)
		name := "-"
		if d, ok := levels.Find(all, id); ok {
			name = d.Title()
		}
		cleared, best := "no", "-"
		if rec.Completed {
			cleared, best = "yes", systems.FormatDuration(rec.BestTime)
		}
		t.Row(strconv.Itoa(id), name, strconv.Itoa(rec.HighScore), cleared, best, strconv.Itoa(rec.Plays))
	}
	fmt.Println(titleStyle.Render("Progress"))
	fmt.Println(t)
	fmt.Printf("Total playtime %s\n", systems.FormatDuration(p.TotalPlaytime))
}

func init() {
	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsValidateCmd)

	scoresCmd.Flags().IntVar(&flagScoresLevel, "level", 0, "Only show runs of this level ID (sqlite)")
	scoresCmd.Flags().IntVar(&flagScoresRecent, "recent", 10, "Number of recent runs to list (sqlite)")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Erase all stored progress")
}
