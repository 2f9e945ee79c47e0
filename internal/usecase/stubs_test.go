package usecase

import (
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/cricket-league/internal/domain/match"
	"github.com/riskibarqy/cricket-league/internal/domain/team"
	"github.com/riskibarqy/cricket-league/internal/domain/tournament"
)

type stubTournamentRepository struct {
	mu   sync.Mutex
	byID map[string]tournament.Tournament
	err  error
}

func newStubTournamentRepository(items ...tournament.Tournament) *stubTournamentRepository {
	repo := &stubTournamentRepository{byID: make(map[string]tournament.Tournament)}
	for _, item := range items {
		repo.byID[item.ID] = item
	}
	return repo
}

func (r *stubTournamentRepository) List(context.Context) ([]tournament.Tournament, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]tournament.Tournament, 0, len(r.byID))
	for _, item := range r.byID {
		out = append(out, item)
	}
	return out, nil
}

func (r *stubTournamentRepository) GetByID(_ context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return tournament.Tournament{}, false, r.err
	}
	item, ok := r.byID[tournamentID]
	return item, ok, nil
}

func (r *stubTournamentRepository) Create(_ context.Context, item tournament.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[item.ID] = item
	return nil
}

func (r *stubTournamentRepository) Update(_ context.Context, item tournament.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[item.ID] = item
	return nil
}

func (r *stubTournamentRepository) Delete(_ context.Context, tournamentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, tournamentID)
	return nil
}

type stubTeamRepository struct {
	mu    sync.Mutex
	items map[string][]team.Team
}

func newStubTeamRepository(items ...team.Team) *stubTeamRepository {
	repo := &stubTeamRepository{items: make(map[string][]team.Team)}
	for _, item := range items {
		repo.items[item.TournamentID] = append(repo.items[item.TournamentID], item)
	}
	return repo
}

func (r *stubTeamRepository) ListByTournament(_ context.Context, tournamentID string) ([]team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.items[tournamentID]), nil
}

func (r *stubTeamRepository) GetByID(_ context.Context, tournamentID, teamID string) (team.Team, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items[tournamentID] {
		if item.ID == teamID {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *stubTeamRepository) Create(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.TournamentID] = append(r.items[item.TournamentID], item)
	return nil
}

func (r *stubTeamRepository) Delete(_ context.Context, tournamentID, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[tournamentID] = slices.DeleteFunc(r.items[tournamentID], func(item team.Team) bool {
		return item.ID == teamID
	})
	return nil
}

type stubMatchRepository struct {
	mu    sync.Mutex
	items map[string][]match.Match
	saves int
}

func newStubMatchRepository(items ...match.Match) *stubMatchRepository {
	repo := &stubMatchRepository{items: make(map[string][]match.Match)}
	for _, item := range items {
		repo.items[item.TournamentID] = append(repo.items[item.TournamentID], item)
	}
	return repo
}

func (r *stubMatchRepository) ListByTournament(_ context.Context, tournamentID string) ([]match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.items[tournamentID]), nil
}

func (r *stubMatchRepository) GetByID(_ context.Context, tournamentID, matchID string) (match.Match, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items[tournamentID] {
		if item.ID == matchID {
			return item, true, nil
		}
	}
	return match.Match{}, false, nil
}

func (r *stubMatchRepository) ReplaceByTournament(_ context.Context, tournamentID string, items []match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[tournamentID] = slices.Clone(items)
	return nil
}

func (r *stubMatchRepository) Save(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	list := r.items[item.TournamentID]
	for i := range list {
		if list[i].ID == item.ID {
			list[i] = item
			return nil
		}
	}
	r.items[item.TournamentID] = append(list, item)
	return nil
}

func (r *stubMatchRepository) get(tournamentID, matchID string) match.Match {
	item, _, _ := r.GetByID(context.Background(), tournamentID, matchID)
	return item
}

func cupTournament() tournament.Tournament {
	return tournament.Tournament{
		ID:           "cup",
		Name:         "Summer Cup",
		OversFormat:  tournament.OversFormatStandard,
		OversLimit:   20,
		Points:       tournament.DefaultPoints(),
		ScheduleType: tournament.ScheduleSingleRoundRobin,
		PlayoffType:  tournament.PlayoffNone,
		Venues:       []string{"oval"},
	}
}

func cupTeams(names ...string) []team.Team {
	out := make([]team.Team, 0, len(names))
	for _, name := range names {
		out = append(out, team.Team{ID: name, TournamentID: "cup", Name: name})
	}
	return out
}

func completedMatch(id, team1, team2 string, r1, w1, r2, w2 int) match.Match {
	outcome := match.ResultTie
	winner := ""
	switch {
	case r1 > r2:
		outcome, winner = match.ResultFirstBattingWin, team1
	case r2 > r1:
		outcome, winner = match.ResultSecondBattingWin, team2
	}
	return match.Match{
		ID:           id,
		TournamentID: "cup",
		Round:        1,
		Team1ID:      team1,
		Team2ID:      team2,
		Status:       match.StatusCompleted,
		Result: &match.Result{
			Type:         outcome,
			WinnerTeamID: winner,
			Team1:        match.Innings{Runs: r1, Wickets: w1, Overs: 20},
			Team2:        match.Innings{Runs: r2, Wickets: w2, Overs: 20},
		},
	}
}
