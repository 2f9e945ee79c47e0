package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/cricket-league/internal/domain/match"
	"github.com/riskibarqy/cricket-league/internal/domain/standings"
	"github.com/riskibarqy/cricket-league/internal/domain/team"
	"github.com/riskibarqy/cricket-league/internal/domain/tournament"
	"github.com/riskibarqy/cricket-league/internal/platform/cache"
	"github.com/riskibarqy/cricket-league/internal/platform/logging"
)

const standingsCachePrefix = "standings:"

type standingsObserver interface {
	ObserveComputation(format string, elapsed time.Duration)
	CacheHit()
	CacheMiss()
}

// TournamentTable is a computed table together with the tournament it belongs to.
type TournamentTable struct {
	Tournament tournament.Tournament
	Table      standings.Table
}

// StandingsService recomputes standings from the current match list. Tables are memoized
// under the fingerprint of their inputs, so any edit to teams, results or points misses.
type StandingsService struct {
	tournamentRepo tournament.Repository
	teamRepo       team.Repository
	matchRepo      match.Repository
	tables         cache.Loader[standings.Table]
	observer       standingsObserver
	logger         *logging.Logger
}

func NewStandingsService(
	tournamentRepo tournament.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	tables cache.Loader[standings.Table],
	observer standingsObserver,
	logger *logging.Logger,
) *StandingsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StandingsService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
		tables:         tables,
		observer:       observer,
		logger:         logger,
	}
}

func (s *StandingsService) Standings(ctx context.Context, tournamentID string) ([]standings.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Standings", tournamentAttr(tournamentID))
	defer span.End()

	result, err := s.Table(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	return result.Table.Standings, nil
}

func (s *StandingsService) Dashboard(ctx context.Context, tournamentID string) (standings.Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Dashboard", tournamentAttr(tournamentID))
	defer span.End()

	result, err := s.Table(ctx, tournamentID)
	if err != nil {
		return standings.Dashboard{}, err
	}
	return result.Table.Dashboard, nil
}

func (s *StandingsService) Table(ctx context.Context, tournamentID string) (TournamentTable, error) {
	t, err := loadTournament(ctx, s.tournamentRepo, tournamentID)
	if err != nil {
		return TournamentTable{}, err
	}

	var (
		teams   []team.Team
		matches []match.Match
	)
	loaders := pool.New().WithContext(ctx).WithCancelOnError()
	loaders.Go(func(ctx context.Context) error {
		items, err := s.teamRepo.ListByTournament(ctx, t.ID)
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		teams = items
		return nil
	})
	loaders.Go(func(ctx context.Context) error {
		items, err := s.matchRepo.ListByTournament(ctx, t.ID)
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
		matches = items
		return nil
	})
	if err := loaders.Wait(); err != nil {
		return TournamentTable{}, err
	}

	input := standings.InputFor(t, teams, matches)
	table, err := s.compute(ctx, t.ID, input)
	if err != nil {
		return TournamentTable{}, err
	}
	return TournamentTable{Tournament: t, Table: table}, nil
}

// Invalidate drops every memoized table of a tournament.
func (s *StandingsService) Invalidate(ctx context.Context, tournamentID string) error {
	if s.tables == nil {
		return nil
	}
	return s.tables.Invalidate(ctx, standingsCachePrefix+tournamentID+":")
}

func (s *StandingsService) compute(ctx context.Context, tournamentID string, input standings.Input) (standings.Table, error) {
	run := func(context.Context) (standings.Table, error) {
		start := time.Now()
		table := standings.Compute(input)
		if s.observer != nil {
			s.observer.ObserveComputation(string(table.Format), time.Since(start))
		}
		return table, nil
	}

	if s.tables == nil {
		return run(ctx)
	}

	key := standingsCachePrefix + tournamentID + ":" + standings.Fingerprint(input)
	if table, ok := s.tables.Get(ctx, key); ok {
		if s.observer != nil {
			s.observer.CacheHit()
		}
		s.logger.DebugContext(ctx, "standings resolved", "tournament_id", tournamentID, "cached", true)
		return table, nil
	}

	// Waiting on another caller's load still counts as a miss.
	table, err := s.tables.GetOrLoad(ctx, key, run)
	if err != nil {
		return standings.Table{}, fmt.Errorf("load standings table: %w", err)
	}
	if s.observer != nil {
		s.observer.CacheMiss()
	}
	s.logger.DebugContext(ctx, "standings resolved", "tournament_id", tournamentID, "cached", false)
	return table, nil
}
