package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/cricket-league/internal/domain/tournament"
)

type TournamentRepository struct {
	db *Database
}

func NewTournamentRepository(db *Database) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) List(_ context.Context) ([]tournament.Tournament, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]tournament.Tournament, 0, len(r.db.tournaments))
	for _, item := range r.db.tournaments {
		out = append(out, cloneTournament(item))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *TournamentRepository) GetByID(_ context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	item, ok := r.db.tournaments[tournamentID]
	if !ok {
		return tournament.Tournament{}, false, nil
	}
	return cloneTournament(item), true, nil
}

func (r *TournamentRepository) Create(_ context.Context, item tournament.Tournament) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.tournaments[item.ID]; exists {
		return fmt.Errorf("tournament %s already exists", item.ID)
	}
	r.db.tournaments[item.ID] = cloneTournament(item)
	return nil
}

func (r *TournamentRepository) Update(_ context.Context, item tournament.Tournament) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.tournaments[item.ID]; !exists {
		return fmt.Errorf("tournament %s not found", item.ID)
	}
	r.db.tournaments[item.ID] = cloneTournament(item)
	return nil
}

// Delete drops the tournament together with its teams and matches.
func (r *TournamentRepository) Delete(_ context.Context, tournamentID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.tournaments, tournamentID)
	delete(r.db.teams, tournamentID)
	delete(r.db.matches, tournamentID)
	return nil
}
