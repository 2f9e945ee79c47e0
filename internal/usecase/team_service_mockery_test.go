package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/cricket-league/internal/domain/match"
	"github.com/riskibarqy/cricket-league/internal/domain/team"
	matchmock "github.com/riskibarqy/cricket-league/internal/mocks/domain/match"
	teammock "github.com/riskibarqy/cricket-league/internal/mocks/domain/team"
	"github.com/riskibarqy/cricket-league/internal/platform/id"
	"github.com/riskibarqy/cricket-league/internal/platform/logging"
)

func TestTeamService_Add_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)
	service := NewTeamService(newStubTournamentRepository(cupTournament()), teamRepo, matchRepo, &id.Sequence{Prefix: "team"}, nil, logging.NewNop())

	teamRepo.
		On("ListByTournament", mock.Anything, "cup").
		Return([]team.Team{{ID: "team-0", TournamentID: "cup", Name: "Falcons"}}, nil).
		Once()
	teamRepo.
		On("Create", mock.Anything, team.Team{ID: "team-1", TournamentID: "cup", Name: "Hawks", Owner: "R. Patel"}).
		Return(nil).
		Once()

	got, err := service.Add(ctx, "cup", TeamInput{Name: " Hawks ", Owner: "R. Patel"})
	if err != nil {
		t.Fatalf("add team: %v", err)
	}
	if got.ID != "team-1" || got.Name != "Hawks" {
		t.Fatalf("unexpected team: %+v", got)
	}
}

func TestTeamService_Add_DuplicateNameUsingMockery(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(newStubTournamentRepository(cupTournament()), teamRepo, matchmock.NewRepository(t), &id.Sequence{}, nil, logging.NewNop())

	teamRepo.
		On("ListByTournament", mock.Anything, "cup").
		Return([]team.Team{{ID: "t1", TournamentID: "cup", Name: "Hawks"}}, nil).
		Once()

	_, err := service.Add(context.Background(), "cup", TeamInput{Name: "HAWKS"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestTeamService_Remove_ScheduledTeamUsingMockery(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)
	service := NewTeamService(newStubTournamentRepository(cupTournament()), teamRepo, matchRepo, &id.Sequence{}, nil, logging.NewNop())

	teamRepo.On("GetByID", mock.Anything, "cup", "a").Return(team.Team{ID: "a"}, true, nil).Once()
	matchRepo.
		On("ListByTournament", mock.Anything, "cup").
		Return([]match.Match{{ID: "m1", TournamentID: "cup", Team1ID: "b", Team2ID: "a"}}, nil).
		Once()

	if err := service.Remove(context.Background(), "cup", "a"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestTeamService_Remove_UnscheduledTeamUsingMockery(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)
	service := NewTeamService(newStubTournamentRepository(cupTournament()), teamRepo, matchRepo, &id.Sequence{}, nil, logging.NewNop())

	teamRepo.On("GetByID", mock.Anything, "cup", "a").Return(team.Team{ID: "a"}, true, nil).Once()
	matchRepo.On("ListByTournament", mock.Anything, "cup").Return([]match.Match(nil), nil).Once()
	teamRepo.On("Delete", mock.Anything, "cup", "a").Return(nil).Once()

	if err := service.Remove(context.Background(), "cup", "a"); err != nil {
		t.Fatalf("remove team: %v", err)
	}
}

func TestTeamService_Remove_MissingTeamUsingMockery(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(newStubTournamentRepository(cupTournament()), teamRepo, matchmock.NewRepository(t), &id.Sequence{}, nil, logging.NewNop())

	teamRepo.On("GetByID", mock.Anything, "cup", "zz").Return(team.Team{}, false, nil).Once()

	if err := service.Remove(context.Background(), "cup", "zz"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
