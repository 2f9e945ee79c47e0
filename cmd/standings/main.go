package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/riskibarqy/cricket-league/internal/domain/schedule"
	"github.com/riskibarqy/cricket-league/internal/domain/standings"
	"github.com/riskibarqy/cricket-league/internal/domain/tournament"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "standings",
		Usage: "compute cricket standings and schedules offline",
		Commands: []*cli.Command{
			computeCommand(),
			fixturesCommand(),
			estimateCommand(),
		},
	}
}

func computeCommand() *cli.Command {
	return &cli.Command{
		Name:  "compute",
		Usage: "print the points table for a tournament file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Required: true, Usage: "tournament file (yaml or json)"},
			&cli.BoolFlag{Name: "dashboard", Usage: "also print leaders and round progress"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "table", Usage: "table or json"},
		},
		Action: func(c *cli.Context) error {
			file, err := loadTournamentFile(c.String("file"))
			if err != nil {
				return err
			}
			in, err := file.toInput()
			if err != nil {
				return err
			}
			table := standings.Compute(in)

			switch strings.ToLower(c.String("output")) {
			case "json":
				return renderJSON(c.App.Writer, table, c.Bool("dashboard"))
			case "table":
				if err := renderTable(c.App.Writer, table); err != nil {
					return err
				}
				if c.Bool("dashboard") {
					return renderDashboard(c.App.Writer, table.Dashboard)
				}
				return nil
			default:
				return fmt.Errorf("unknown output %q", c.String("output"))
			}
		},
	}
}

func fixturesCommand() *cli.Command {
	return &cli.Command{
		Name:  "fixtures",
		Usage: "print a round-robin fixture list",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "teams", Required: true, Usage: "comma separated team names"},
			&cli.IntFlag{Name: "legs", Value: 1, Usage: "1 or 2"},
			&cli.StringFlag{Name: "venues", Usage: "comma separated venues, assigned in rotation"},
		},
		Action: func(c *cli.Context) error {
			matches, err := schedule.GenerateRoundRobin("cli", splitList(c.String("teams")), splitList(c.String("venues")), c.Int("legs"))
			if err != nil {
				return err
			}
			return renderFixtures(c.App.Writer, matches)
		},
	}
}

func estimateCommand() *cli.Command {
	return &cli.Command{
		Name:  "estimate",
		Usage: "estimate how many matches a format produces",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "teams", Required: true},
			&cli.StringFlag{Name: "schedule", Value: string(tournament.ScheduleSingleRoundRobin)},
			&cli.IntFlag{Name: "groups", Value: 1},
			&cli.StringFlag{Name: "playoff", Value: string(tournament.PlayoffNone)},
		},
		Action: func(c *cli.Context) error {
			scheduleType := tournament.NormalizeScheduleType(c.String("schedule"))
			if !tournament.IsValidScheduleType(scheduleType) {
				return fmt.Errorf("%w: %q", tournament.ErrInvalidScheduleType, c.String("schedule"))
			}
			playoff := tournament.NormalizePlayoffType(c.String("playoff"))
			if !tournament.IsValidPlayoffType(playoff) {
				return fmt.Errorf("%w: %q", tournament.ErrInvalidPlayoffType, c.String("playoff"))
			}
			if c.Int("teams") < 0 {
				return fmt.Errorf("teams must be >= 0")
			}

			count := schedule.EstimateMatchCount(c.Int("teams"), scheduleType, c.Int("groups"), playoff)
			fmt.Fprintf(c.App.Writer, "%d teams, %s, playoff %s: %d matches\n", c.Int("teams"), scheduleType, playoff, count)
			return nil
		},
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
