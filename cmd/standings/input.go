package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/riskibarqy/cricket-league/internal/domain/match"
	"github.com/riskibarqy/cricket-league/internal/domain/standings"
	"github.com/riskibarqy/cricket-league/internal/domain/team"
	"github.com/riskibarqy/cricket-league/internal/domain/tournament"
)

// tournamentFile is the offline input of the compute command. JSON is accepted as YAML.
type tournamentFile struct {
	Name        string      `yaml:"name"`
	OversFormat string      `yaml:"oversFormat"`
	OversLimit  int         `yaml:"oversLimit"`
	Points      *pointsFile `yaml:"points"`
	Teams       []teamFile  `yaml:"teams"`
	Matches     []matchFile `yaml:"matches"`
}

type pointsFile struct {
	Win  int `yaml:"win"`
	Draw int `yaml:"draw"`
	Loss int `yaml:"loss"`
}

type teamFile struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type inningsFile struct {
	Runs    int `yaml:"runs"`
	Wickets int `yaml:"wickets"`
	Overs   int `yaml:"overs"`
	Balls   int `yaml:"balls"`
}

type matchFile struct {
	ID     string       `yaml:"id"`
	Round  int          `yaml:"round"`
	Team1  string       `yaml:"team1"`
	Team2  string       `yaml:"team2"`
	Status string       `yaml:"status"`
	Type   string       `yaml:"type"`
	Score1 *inningsFile `yaml:"team1Score"`
	Score2 *inningsFile `yaml:"team2Score"`
}

func loadTournamentFile(path string) (tournamentFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return tournamentFile{}, fmt.Errorf("read %s: %w", path, err)
	}
	return parseTournamentFile(raw)
}

func parseTournamentFile(raw []byte) (tournamentFile, error) {
	var out tournamentFile
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return tournamentFile{}, fmt.Errorf("decode tournament file: %w", err)
	}
	if len(out.Teams) == 0 {
		return tournamentFile{}, fmt.Errorf("tournament file has no teams")
	}
	return out, nil
}

// toInput maps the file onto the engine input. Matches with both scores and no explicit
// status are treated as completed; an explicit DRAW, NO_RESULT or ABANDONED type wins over the scores.
func (f tournamentFile) toInput() (standings.Input, error) {
	t := tournament.Tournament{
		Name:        f.Name,
		OversFormat: tournament.NormalizeOversFormat(f.OversFormat),
		OversLimit:  f.OversLimit,
		Points:      tournament.DefaultPoints(),
	}
	if f.Points != nil {
		t.Points = tournament.PointsConfig{Win: f.Points.Win, Draw: f.Points.Draw, Loss: f.Points.Loss}
	}
	if t.OversLimit <= 0 {
		return standings.Input{}, fmt.Errorf("oversLimit must be > 0, got %d", f.OversLimit)
	}

	teams := make([]team.Team, 0, len(f.Teams))
	for _, item := range f.Teams {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			id = strings.TrimSpace(item.Name)
		}
		name := strings.TrimSpace(item.Name)
		if name == "" {
			name = id
		}
		teams = append(teams, team.Team{ID: id, Name: name})
	}

	ballCount := t.OversFormat == tournament.OversFormatBalls
	matches := make([]match.Match, 0, len(f.Matches))
	for i, item := range f.Matches {
		m := match.Match{
			ID:      item.ID,
			Round:   item.Round,
			Team1ID: item.Team1,
			Team2ID: item.Team2,
			Status:  match.NormalizeStatus(item.Status),
		}
		if m.ID == "" {
			m.ID = fmt.Sprintf("m%02d", i+1)
		}
		if item.Status == "" && item.Score1 != nil && item.Score2 != nil {
			m.Status = match.StatusCompleted
		}
		if m.Status == match.StatusCompleted {
			m.Result = fileResult(m, item, t.OversLimit, ballCount)
		}
		matches = append(matches, m)
	}

	return standings.InputFor(t, teams, matches), nil
}

func fileResult(m match.Match, item matchFile, oversLimit int, ballCount bool) *match.Result {
	var team1, team2 match.Innings
	if item.Score1 != nil {
		team1 = match.ClampInnings(match.Innings(*item.Score1), oversLimit, ballCount)
	}
	if item.Score2 != nil {
		team2 = match.ClampInnings(match.Innings(*item.Score2), oversLimit, ballCount)
	}

	outcome := standings.Classify(m.Team1ID, m.Team2ID, team1.Runs, team2.Runs)
	switch override := match.ResultType(strings.ToUpper(strings.TrimSpace(item.Type))); override {
	case match.ResultDraw, match.ResultNoResult, match.ResultAbandoned:
		outcome = match.Outcome{Type: override}
	}

	return &match.Result{
		Type:         outcome.Type,
		WinnerTeamID: outcome.WinnerTeamID,
		Team1:        team1,
		Team2:        team2,
	}
}
