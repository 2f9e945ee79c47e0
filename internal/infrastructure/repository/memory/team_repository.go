package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/riskibarqy/cricket-league/internal/domain/team"
)

// TeamRepository keeps teams in entry order, which is the final tie-break of the standings.
type TeamRepository struct {
	db *Database
}

func NewTeamRepository(db *Database) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListByTournament(_ context.Context, tournamentID string) ([]team.Team, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	teams := r.db.teams[tournamentID]
	out := make([]team.Team, 0, len(teams))
	out = append(out, teams...)
	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, tournamentID, teamID string) (team.Team, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, item := range r.db.teams[tournamentID] {
		if item.ID == teamID {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.tournaments[item.TournamentID]; !ok {
		return fmt.Errorf("tournament %s not found", item.TournamentID)
	}
	for _, existing := range r.db.teams[item.TournamentID] {
		if existing.ID == item.ID {
			return fmt.Errorf("team %s already exists", item.ID)
		}
	}
	r.db.teams[item.TournamentID] = append(r.db.teams[item.TournamentID], item)
	return nil
}

func (r *TeamRepository) Delete(_ context.Context, tournamentID, teamID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.teams[tournamentID] = slices.DeleteFunc(r.db.teams[tournamentID], func(item team.Team) bool {
		return item.ID == teamID
	})
	return nil
}
