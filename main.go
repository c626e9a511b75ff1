// Command sleeper-scripts is a small analysis toolbox for Sleeper fantasy
// football leagues.
//
// Usage:
//
//	sleeper-scripts standings 1050127292493721600 14
//	sleeper-scripts best-lineups 1050127292493721600 3
//	sleeper-scripts position-ranks 1050127292493721600 1 14 QB WR --rank 12
//	sleeper-scripts kicking 2024
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"

	"github.com/itbasis/go-clock"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ColdZealDky/sleeper-scripts/chart"
	"github.com/ColdZealDky/sleeper-scripts/controller"
	"github.com/ColdZealDky/sleeper-scripts/model"
	"github.com/ColdZealDky/sleeper-scripts/nflverse"
	"github.com/ColdZealDky/sleeper-scripts/sleeper"
	"github.com/ColdZealDky/sleeper-scripts/store"
)

var (
	logger = logrus.New()

	verbose   bool
	cachePath string
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	root := &cobra.Command{
		Use:   "sleeper-scripts",
		Short: "Analysis tools for Sleeper fantasy football leagues",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cacheDefault := store.DefaultPlayerCachePath
	if v := os.Getenv("PLAYER_CACHE"); v != "" {
		cacheDefault = v
	}
	root.PersistentFlags().StringVar(&cachePath, "player-cache", cacheDefault, "path of the cached player directory")

	root.AddCommand(standingsCmd())
	root.AddCommand(bestLineupsCmd())
	root.AddCommand(positionRanksCmd())
	root.AddCommand(kickingCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newController() (controller.C, error) {
	sleeperClient, err := sleeper.New(logger)
	if err != nil {
		return nil, fmt.Errorf("error creating sleeper client: %w", err)
	}
	nflverseClient, err := nflverse.New(logger)
	if err != nil {
		return nil, fmt.Errorf("error creating nflverse client: %w", err)
	}
	cache := store.NewPlayerCache(cachePath, clock.New())
	return controller.New(sleeperClient, nflverseClient, cache, logger)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// leagueID resolves the league from the first positional argument, falling
// back to the LEAGUE_ID environment variable (usually set via .env).
func leagueID(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if id := os.Getenv("LEAGUE_ID"); id != "" {
		return id, nil
	}
	return "", fmt.Errorf("no league ID given and LEAGUE_ID is not set")
}

func standingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "standings <league-id> <max-week>",
		Short: "Accumulate overall and divisional records through a week",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			league, err := leagueID(args)
			if err != nil {
				return err
			}
			maxWeek, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("max-week must be a number: %w", err)
			}

			c, err := newController()
			if err != nil {
				return err
			}
			ctx, stop := signalContext()
			defer stop()

			report, err := c.Standings(ctx, league, maxWeek)
			if err != nil {
				return err
			}

			printStandings(report)
			return writeStandingsFile(report)
		},
	}
}

func printStandings(report *controller.StandingsReport) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("%s through week %d", report.LeagueName, report.ThroughWeek)
	t.AppendHeader(table.Row{"Team", "Division", "Record", "Division Record"})
	for _, s := range report.Standings {
		t.AppendRow(table.Row{
			report.Names[s.RosterID],
			s.Division,
			formatRecord(s.Overall),
			formatRecord(s.Divisional),
		})
	}
	t.Render()
}

func formatRecord(r model.Record) string {
	return fmt.Sprintf("%d-%d-%d", r.Wins, r.Losses, r.Ties)
}

func writeStandingsFile(report *controller.StandingsReport) error {
	name := fmt.Sprintf("standings_division_records_week_%d.json", report.ThroughWeek)
	b, err := jsoniter.MarshalIndent(report.Standings, "", "  ")
	if err != nil {
		return fmt.Errorf("error serializing standings: %w", err)
	}
	if err := os.WriteFile(name, b, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", name, err)
	}
	logger.WithField("file", name).Info("wrote standings")
	return nil
}

func bestLineupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "best-lineups <league-id> <week>",
		Short: "Compute the optimal lineup for every roster in a week",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			league, err := leagueID(args)
			if err != nil {
				return err
			}
			week, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("week must be a number: %w", err)
			}

			c, err := newController()
			if err != nil {
				return err
			}
			ctx, stop := signalContext()
			defer stop()

			lineups, err := c.BestLineups(ctx, league, week)
			if err != nil {
				return err
			}

			printLineups(lineups)
			return nil
		},
	}
}

func printLineups(lineups *controller.WeekLineups) {
	summary := table.NewWriter()
	summary.SetOutputMirror(os.Stdout)
	summary.SetTitle("%s week %d best lineups", lineups.LeagueName, lineups.Week)
	summary.AppendHeader(table.Row{"#", "Team", "Best Lineup Total"})
	for i, r := range lineups.Rosters {
		summary.AppendRow(table.Row{i + 1, r.Owner, fmt.Sprintf("%.2f", r.Lineup.Total)})
	}
	summary.Render()

	for _, r := range lineups.Rosters {
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetTitle("%s (%.2f)", r.Owner, r.Lineup.Total)
		t.AppendHeader(table.Row{"Slot", "Player", "Points"})
		for _, slot := range r.Lineup.Slots {
			t.AppendRow(table.Row{slot.Slot, slot.Player.Name, fmt.Sprintf("%.2f", slot.Player.Score)})
		}
		t.Render()
	}
}

func positionRanksCmd() *cobra.Command {
	var rank int
	cmd := &cobra.Command{
		Use:   "position-ranks <league-id> <start-week> <end-week> [position...]",
		Short: "Extract weekly highest and rank-N scores per position",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			league, err := leagueID(args)
			if err != nil {
				return err
			}
			startWeek, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("start-week must be a number: %w", err)
			}
			endWeek, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("end-week must be a number: %w", err)
			}
			if endWeek < startWeek {
				return fmt.Errorf("end-week %d is before start-week %d", endWeek, startWeek)
			}

			positions := model.SlotOrder
			if len(args) > 3 {
				positions = nil
				for _, raw := range args[3:] {
					pos := model.ParsePosition(raw)
					if pos == model.POS_UNKNOWN {
						return fmt.Errorf("unknown position: %s", raw)
					}
					positions = append(positions, pos)
				}
			}

			c, err := newController()
			if err != nil {
				return err
			}
			ctx, stop := signalContext()
			defer stop()

			series, err := c.PositionRanks(ctx, league, startWeek, endWeek, rank, positions)
			if err != nil {
				return err
			}

			printPositionRanks(series)
			return writeChart(
				fmt.Sprintf("position_ranks_weeks_%d_%d.html", startWeek, endWeek),
				func(f *os.File) error { return chart.RenderPositionRanks(f, series) },
			)
		},
	}
	cmd.Flags().IntVar(&rank, "rank", 12, "rank to extract alongside the weekly highest")
	return cmd
}

func printPositionRanks(series []controller.PositionRankSeries) {
	for _, s := range series {
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetTitle("%s scores", s.Position)
		t.AppendHeader(table.Row{"Week", "Highest", fmt.Sprintf("Rank %d", s.Rank)})
		for _, w := range s.Weeks {
			t.AppendRow(table.Row{w.Week, formatScore(w.Highest), formatScore(w.AtRank)})
		}
		t.AppendFooter(table.Row{"Avg", formatScore(s.AverageHighest), formatScore(s.AverageAtRank)})
		t.Render()
	}
}

// formatScore prints "-" for a statistic that never existed, which is not
// the same thing as a score of zero.
func formatScore(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}

func kickingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kicking <season>",
		Short: "Aggregate a season's field goal attempts by distance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			season, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("season must be a year: %w", err)
			}

			c, err := newController()
			if err != nil {
				return err
			}
			ctx, stop := signalContext()
			defer stop()

			summaries, err := c.FieldGoalSummary(ctx, season)
			if err != nil {
				return err
			}

			printFieldGoals(season, summaries)
			return writeChart(
				fmt.Sprintf("field_goals_%d.html", season),
				func(f *os.File) error { return chart.RenderFieldGoalSummary(f, season, summaries) },
			)
		},
	}
}

func printFieldGoals(season int, summaries []model.BucketSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("%d field goals by distance", season)
	t.AppendHeader(table.Row{"Distance", "Attempts", "Makes", "Success"})
	for _, s := range summaries {
		success := "-"
		if rate := s.SuccessRate(); rate != nil {
			success = fmt.Sprintf("%.1f%%", *rate)
		}
		t.AppendRow(table.Row{s.Bucket.Label, s.Attempts, s.Makes, success})
	}
	t.Render()
}

func writeChart(name string, render func(*os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", name, err)
	}
	defer f.Close()

	if err := render(f); err != nil {
		return fmt.Errorf("error rendering %s: %w", name, err)
	}
	logger.WithField("file", name).Info("wrote chart")
	return nil
}
