package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/cricket-league/internal/domain/match"
	"github.com/riskibarqy/cricket-league/internal/domain/schedule"
	"github.com/riskibarqy/cricket-league/internal/domain/standings"
	"github.com/riskibarqy/cricket-league/internal/domain/team"
	"github.com/riskibarqy/cricket-league/internal/domain/tournament"
)

const DemoTournamentID = "demo-summer-cup"

func SeedTournament() tournament.Tournament {
	created := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	return tournament.Tournament{
		ID:           DemoTournamentID,
		Name:         "Summer Cup",
		OversFormat:  tournament.OversFormatStandard,
		OversLimit:   20,
		Points:       tournament.DefaultPoints(),
		ScheduleType: tournament.ScheduleSingleRoundRobin,
		PlayoffType:  tournament.PlayoffSemiFinal,
		Venues:       []string{"Riverside Oval", "Northfield Park"},
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "demo-falcons", TournamentID: DemoTournamentID, Name: "Falcons", Owner: "A. Khan"},
		{ID: "demo-hawks", TournamentID: DemoTournamentID, Name: "Hawks", Owner: "R. Patel"},
		{ID: "demo-kestrels", TournamentID: DemoTournamentID, Name: "Kestrels", Owner: "S. Fernando"},
		{ID: "demo-ospreys", TournamentID: DemoTournamentID, Name: "Ospreys", Owner: "J. Clarke"},
		{ID: "demo-harriers", TournamentID: DemoTournamentID, Name: "Harriers", Owner: "M. Naidoo"},
		{ID: "demo-kites", TournamentID: DemoTournamentID, Name: "Kites", Owner: "T. Silva"},
	}
}

// seedScores fills the first fixtures in order. A nil entry marks a washed-out match.
var seedScores = []*[2]match.Innings{
	{{Runs: 178, Wickets: 6, Overs: 20}, {Runs: 151, Wickets: 10, Overs: 18, Balls: 2}},
	{{Runs: 142, Wickets: 9, Overs: 20}, {Runs: 143, Wickets: 4, Overs: 17, Balls: 5}},
	{{Runs: 160, Wickets: 7, Overs: 20}, {Runs: 160, Wickets: 8, Overs: 20}},
	{{Runs: 201, Wickets: 3, Overs: 20}, {Runs: 167, Wickets: 9, Overs: 20}},
	nil,
	{{Runs: 119, Wickets: 10, Overs: 19, Balls: 1}, {Runs: 120, Wickets: 2, Overs: 14, Balls: 3}},
	{{Runs: 188, Wickets: 5, Overs: 20}, {Runs: 172, Wickets: 7, Overs: 20}},
}

// SeedMatches generates the demo round robin and completes its opening fixtures.
func SeedMatches(t tournament.Tournament, teams []team.Team) ([]match.Match, error) {
	teamIDs := make([]string, 0, len(teams))
	for _, item := range teams {
		teamIDs = append(teamIDs, item.ID)
	}

	fixtures, err := schedule.GenerateRoundRobin(t.ID, teamIDs, t.Venues, 1)
	if err != nil {
		return nil, fmt.Errorf("generate demo fixtures: %w", err)
	}

	completedAt := t.CreatedAt
	for i, scores := range seedScores {
		if i >= len(fixtures) {
			break
		}
		completedAt = completedAt.Add(24 * time.Hour)
		at := completedAt

		m := &fixtures[i]
		m.Status = match.StatusCompleted
		m.CompletedAt = &at
		if scores == nil {
			m.Result = &match.Result{Type: match.ResultNoResult}
			continue
		}
		outcome := standings.Classify(m.Team1ID, m.Team2ID, scores[0].Runs, scores[1].Runs)
		m.Result = &match.Result{
			Type:         outcome.Type,
			WinnerTeamID: outcome.WinnerTeamID,
			Team1:        scores[0],
			Team2:        scores[1],
		}
	}
	return fixtures, nil
}

// SeedDemo loads the demo tournament into db.
func SeedDemo(ctx context.Context, db *Database) error {
	t := SeedTournament()
	teams := SeedTeams()
	matches, err := SeedMatches(t, teams)
	if err != nil {
		return err
	}

	if err := NewTournamentRepository(db).Create(ctx, t); err != nil {
		return fmt.Errorf("seed tournament: %w", err)
	}
	teamRepo := NewTeamRepository(db)
	for _, item := range teams {
		if err := teamRepo.Create(ctx, item); err != nil {
			return fmt.Errorf("seed team %s: %w", item.ID, err)
		}
	}
	if err := NewMatchRepository(db).ReplaceByTournament(ctx, t.ID, matches); err != nil {
		return fmt.Errorf("seed matches: %w", err)
	}
	return nil
}
