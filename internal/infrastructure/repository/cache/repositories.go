package cache

import (
	"context"

	"github.com/riskibarqy/cricket-league/internal/domain/team"
	"github.com/riskibarqy/cricket-league/internal/domain/tournament"
	basecache "github.com/riskibarqy/cricket-league/internal/platform/cache"
)

const (
	tournamentListKey    = "tournament:list"
	tournamentByIDPrefix = "tournament:id:"
	teamPrefix           = "team:"
)

// TournamentRepository is a read-through decorator. Writes go to next and then drop the
// affected keys, including team keys owned by a deleted tournament.
type TournamentRepository struct {
	next  tournament.Repository
	cache *basecache.Store[any]
}

func NewTournamentRepository(next tournament.Repository, cache *basecache.Store[any]) *TournamentRepository {
	return &TournamentRepository{next: next, cache: cache}
}

func (r *TournamentRepository) List(ctx context.Context) ([]tournament.Tournament, error) {
	v, err := r.cache.GetOrLoad(ctx, tournamentListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return cloneTournaments(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]tournament.Tournament)
	return cloneTournaments(items), nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, tournamentByIDPrefix+tournamentID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, tournamentID)
		if err != nil {
			return nil, err
		}
		return cachedTournamentByID{value: cloneTournament(item), exists: exists}, nil
	})
	if err != nil {
		return tournament.Tournament{}, false, err
	}

	cached, _ := v.(cachedTournamentByID)
	return cloneTournament(cached.value), cached.exists, nil
}

func (r *TournamentRepository) Create(ctx context.Context, item tournament.Tournament) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	return r.invalidate(ctx, item.ID, false)
}

func (r *TournamentRepository) Update(ctx context.Context, item tournament.Tournament) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	return r.invalidate(ctx, item.ID, false)
}

func (r *TournamentRepository) Delete(ctx context.Context, tournamentID string) error {
	if err := r.next.Delete(ctx, tournamentID); err != nil {
		return err
	}
	return r.invalidate(ctx, tournamentID, true)
}

func (r *TournamentRepository) invalidate(ctx context.Context, tournamentID string, withTeams bool) error {
	if err := r.cache.Invalidate(ctx, tournamentListKey); err != nil {
		return err
	}
	if err := r.cache.Invalidate(ctx, tournamentByIDPrefix+tournamentID); err != nil {
		return err
	}
	if withTeams {
		return r.cache.Invalidate(ctx, teamKeyPrefix(tournamentID))
	}
	return nil
}

type cachedTournamentByID struct {
	value  tournament.Tournament
	exists bool
}

func cloneTournament(item tournament.Tournament) tournament.Tournament {
	item.Venues = append([]string(nil), item.Venues...)
	return item
}

func cloneTournaments(items []tournament.Tournament) []tournament.Tournament {
	out := make([]tournament.Tournament, 0, len(items))
	for _, item := range items {
		out = append(out, cloneTournament(item))
	}
	return out
}

// TeamRepository caches team lists and lookups per tournament.
type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store[any]
}

func NewTeamRepository(next team.Repository, cache *basecache.Store[any]) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListByTournament(ctx context.Context, tournamentID string) ([]team.Team, error) {
	key := teamKeyPrefix(tournamentID) + "list"
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByTournament(ctx, tournamentID)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, tournamentID, teamID string) (team.Team, bool, error) {
	key := teamKeyPrefix(tournamentID) + "id:" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, tournamentID, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	return r.cache.Invalidate(ctx, teamKeyPrefix(item.TournamentID))
}

func (r *TeamRepository) Delete(ctx context.Context, tournamentID, teamID string) error {
	if err := r.next.Delete(ctx, tournamentID, teamID); err != nil {
		return err
	}
	return r.cache.Invalidate(ctx, teamKeyPrefix(tournamentID))
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

func teamKeyPrefix(tournamentID string) string {
	return teamPrefix + tournamentID + ":"
}
