package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/riskibarqy/cricket-league/internal/domain/standings"
	"github.com/riskibarqy/cricket-league/internal/domain/tournament"
	"github.com/riskibarqy/cricket-league/internal/platform/logging"
)

type stubTableProvider struct {
	mu     sync.Mutex
	tables map[string]TournamentTable
	errs   map[string]error
	calls  int
}

func (p *stubTableProvider) Table(_ context.Context, tournamentID string) (TournamentTable, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if err := p.errs[tournamentID]; err != nil {
		return TournamentTable{}, err
	}
	return p.tables[tournamentID], nil
}

func TestOverviewService_List(t *testing.T) {
	t.Parallel()

	repo := newStubTournamentRepository(
		tournament.Tournament{ID: "t1", Name: "Winter Shield"},
		tournament.Tournament{ID: "t2", Name: "Autumn Trophy"},
		tournament.Tournament{ID: "t3", Name: "Broken League"},
	)
	provider := &stubTableProvider{
		tables: map[string]TournamentTable{
			"t1": {Table: standings.Table{
				Standings: []standings.Standing{
					{Totals: standings.Totals{TeamID: "a", Played: 0}, Position: 1},
					{Totals: standings.Totals{TeamID: "b", Played: 0}, Position: 2},
				},
				Dashboard: standings.Dashboard{TotalMatches: 1},
			}},
			"t2": {Table: standings.Table{
				Standings: []standings.Standing{
					{Totals: standings.Totals{TeamID: "x", Played: 2, Points: 4}, Position: 1},
				},
				Dashboard: standings.Dashboard{CompletedMatches: 2, TotalMatches: 3},
			}},
		},
		errs: map[string]error{"t3": errors.New("db down")},
	}

	service := NewOverviewService(repo, provider, 2, logging.NewNop())
	got, err := service.List(context.Background())
	if err != nil {
		t.Fatalf("list overview: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 items, got %d", len(got))
	}
	if got[0].TournamentID != "t2" || got[1].TournamentID != "t3" || got[2].TournamentID != "t1" {
		t.Fatalf("expected items ordered by name, got %s %s %s", got[0].Name, got[1].Name, got[2].Name)
	}
	if got[0].Leader == nil || got[0].Leader.TeamID != "x" || got[0].CompletedMatches != 2 {
		t.Fatalf("unexpected t2 summary: %+v", got[0])
	}
	if got[1].Err == nil {
		t.Fatalf("expected t3 error to be reported inline")
	}
	if got[2].Leader != nil || got[2].TeamCount != 2 {
		t.Fatalf("expected no leader before any match, got %+v", got[2])
	}
	if provider.calls != 3 {
		t.Fatalf("expected one table per tournament, got %d", provider.calls)
	}
}

func TestOverviewService_List_Empty(t *testing.T) {
	t.Parallel()

	service := NewOverviewService(newStubTournamentRepository(), &stubTableProvider{}, 0, nil)
	got, err := service.List(context.Background())
	if err != nil {
		t.Fatalf("list overview: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
