package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/cricket-league/internal/domain/match"
)

type MatchRepository struct {
	db *Database
}

func NewMatchRepository(db *Database) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListByTournament(_ context.Context, tournamentID string) ([]match.Match, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	items := r.db.matches[tournamentID]
	out := make([]match.Match, 0, len(items))
	for _, item := range items {
		out = append(out, cloneMatch(item))
	}
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, tournamentID, matchID string) (match.Match, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, item := range r.db.matches[tournamentID] {
		if item.ID == matchID {
			return cloneMatch(item), true, nil
		}
	}
	return match.Match{}, false, nil
}

func (r *MatchRepository) ReplaceByTournament(_ context.Context, tournamentID string, items []match.Match) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.tournaments[tournamentID]; !ok {
		return fmt.Errorf("tournament %s not found", tournamentID)
	}
	next := make([]match.Match, 0, len(items))
	for _, item := range items {
		next = append(next, cloneMatch(item))
	}
	r.db.matches[tournamentID] = next
	return nil
}

func (r *MatchRepository) Save(_ context.Context, item match.Match) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	rows := r.db.matches[item.TournamentID]
	for idx := range rows {
		if rows[idx].ID == item.ID {
			rows[idx] = cloneMatch(item)
			return nil
		}
	}
	return fmt.Errorf("match %s not found in tournament %s", item.ID, item.TournamentID)
}
