package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/cricket-league/internal/domain/standings"
	"github.com/riskibarqy/cricket-league/internal/domain/tournament"
	"github.com/riskibarqy/cricket-league/internal/platform/logging"
)

const defaultOverviewWorkers = 4

type OverviewItem struct {
	TournamentID     string
	Name             string
	OversFormat      tournament.OversFormat
	TeamCount        int
	CompletedMatches int
	TotalMatches     int
	// Leader is nil until some team has played.
	Leader *standings.Standing
	Err    error
}

type tableProvider interface {
	Table(ctx context.Context, tournamentID string) (TournamentTable, error)
}

// OverviewService summarises every tournament by fanning standings computations out over a worker pool.
type OverviewService struct {
	tournamentRepo tournament.Repository
	tables         tableProvider
	workers        int
	logger         *logging.Logger
}

func NewOverviewService(tournamentRepo tournament.Repository, tables tableProvider, workers int, logger *logging.Logger) *OverviewService {
	if workers < 1 {
		workers = defaultOverviewWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &OverviewService{
		tournamentRepo: tournamentRepo,
		tables:         tables,
		workers:        workers,
		logger:         logger,
	}
}

// List returns one item per tournament ordered by name. A tournament whose table fails
// to load is reported with Err set instead of failing the whole overview.
func (s *OverviewService) List(ctx context.Context) ([]OverviewItem, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OverviewService.List")
	defer span.End()

	items, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	if len(items) == 0 {
		return []OverviewItem{}, nil
	}

	workerCount := min(s.workers, len(items))
	workers, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer workers.Release()

	out := make([]OverviewItem, len(items))
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		if err := workers.Submit(func() {
			defer wg.Done()
			out[i] = s.summarise(ctx, item)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("submit overview task: %w", err)
		}
	}
	wg.Wait()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *OverviewService) summarise(ctx context.Context, t tournament.Tournament) OverviewItem {
	item := OverviewItem{
		TournamentID: t.ID,
		Name:         t.Name,
		OversFormat:  t.OversFormat,
	}

	result, err := s.tables.Table(ctx, t.ID)
	if err != nil {
		s.logger.WarnContext(ctx, "overview table failed", "tournament_id", t.ID, "error", err)
		item.Err = err
		return item
	}

	table := result.Table
	item.TeamCount = len(table.Standings)
	item.CompletedMatches = table.Dashboard.CompletedMatches
	item.TotalMatches = table.Dashboard.TotalMatches
	if len(table.Standings) > 0 && table.Standings[0].Played > 0 {
		leader := table.Standings[0]
		item.Leader = &leader
	}
	return item
}
