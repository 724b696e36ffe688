package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tmcfar/nfl-schedule/internal/csvfile"
	"github.com/tmcfar/nfl-schedule/internal/game"
	"github.com/tmcfar/nfl-schedule/internal/logger"
	"github.com/tmcfar/nfl-schedule/internal/schedule"
	"github.com/tmcfar/nfl-schedule/internal/scraper"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagSeason  int
	flagWeeks   int
	flagOutput  string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nfl-schedule",
		Short: "Scrape an NFL season's schedule and results to CSV",
		Long: `Scrapes the weekly schedule pages on pro-football-reference.com for one
NFL season and writes every game (teams, boxscore URL, scores, completion
status) to a comma-delimited file. Games that have not been played yet are
written with empty score cells.`,
		RunE:          runScrape,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().IntVar(&flagSeason, "season", schedule.DefaultSeason, "Season to scrape (four-digit year)")
	cmd.Flags().IntVar(&flagWeeks, "weeks", schedule.DefaultWeeks, "Number of regular-season weeks to scrape (1-18)")
	cmd.Flags().StringVar(&flagOutput, "output", "", "Output CSV path (default <season>_nfl_schedule.csv)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging and a metrics dump")

	return cmd
}

// validateFlags checks the season and week-count flags
func validateFlags(season, weeks int) error {
	if season < 1000 || season > 9999 {
		return fmt.Errorf("invalid season %d: must be a four-digit year", season)
	}
	if weeks < 1 || weeks > schedule.DefaultWeeks {
		return fmt.Errorf("invalid weeks %d: must be between 1 and %d", weeks, schedule.DefaultWeeks)
	}
	return nil
}

// outputPath returns the explicit output path or the season-derived default
func outputPath(output string, season int) string {
	if output != "" {
		return output
	}
	return fmt.Sprintf("%d_nfl_schedule.csv", season)
}

// runScrape is the main command logic
func runScrape(cmd *cobra.Command, args []string) error {
	if err := validateFlags(flagSeason, flagWeeks); err != nil {
		return err
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	output := outputPath(flagOutput, flagSeason)
	logger.Info("starting scrape", logger.Fields{
		"season": flagSeason,
		"weeks":  flagWeeks,
		"output": output,
	})

	extractor := schedule.New(scraper.NewPFR())

	start := time.Now()
	games, err := extractor.Extract(cmd.Context(), flagSeason, flagWeeks)
	if err != nil {
		return fmt.Errorf("extracting schedule: %w", err)
	}

	rows := make([][]string, 0, len(games))
	for _, g := range games {
		rows = append(rows, g.CSVRow())
	}
	if err := csvfile.Write(output, game.CSVHeader(), rows); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	logger.Info("scrape complete", logger.Fields{
		"games":    len(games),
		"output":   output,
		"duration": time.Since(start).String(),
	})

	if flagVerbose {
		logger.Debug("metrics", logger.Fields{"snapshot": logger.GetMetricsSnapshot()})
	}

	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
