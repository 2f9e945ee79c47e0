package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/cricket-league/internal/domain/tournament"
	"github.com/riskibarqy/cricket-league/internal/platform/id"
	"github.com/riskibarqy/cricket-league/internal/platform/logging"
)

type TournamentInput struct {
	Name         string
	OversFormat  string
	OversLimit   int
	Points       *tournament.PointsConfig
	ScheduleType string
	PlayoffType  string
	GroupCount   int
	Venues       []string
}

// standingsInvalidator drops memoized tables after any write that changes their inputs.
type standingsInvalidator interface {
	Invalidate(ctx context.Context, tournamentID string) error
}

// invalidateStandings drops stale tables of a tournament. A cache failure never fails the write.
func invalidateStandings(ctx context.Context, invalidator standingsInvalidator, logger *logging.Logger, tournamentID string) {
	if invalidator == nil {
		return
	}
	if err := invalidator.Invalidate(ctx, tournamentID); err != nil {
		logger.WarnContext(ctx, "invalidate standings cache failed", "tournament_id", tournamentID, "error", err)
	}
}

type TournamentService struct {
	repo        tournament.Repository
	ids         id.Generator
	invalidator standingsInvalidator
	logger      *logging.Logger
	now         func() time.Time
}

func NewTournamentService(
	repo tournament.Repository,
	ids id.Generator,
	invalidator standingsInvalidator,
	logger *logging.Logger,
) *TournamentService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TournamentService{
		repo:        repo,
		ids:         ids,
		invalidator: invalidator,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *TournamentService) List(ctx context.Context) ([]tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	return items, nil
}

func (s *TournamentService) Get(ctx context.Context, tournamentID string) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Get", tournamentAttr(tournamentID))
	defer span.End()

	return loadTournament(ctx, s.repo, tournamentID)
}

func (s *TournamentService) Create(ctx context.Context, input TournamentInput) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Create")
	defer span.End()

	tournamentID, err := s.ids.NewID()
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("generate tournament id: %w", err)
	}

	now := s.now().UTC()
	item := applyTournamentInput(tournament.Tournament{ID: tournamentID, CreatedAt: now}, input)
	item.UpdatedAt = now
	if err := item.Validate(); err != nil {
		return tournament.Tournament{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return tournament.Tournament{}, fmt.Errorf("create tournament: %w", err)
	}

	s.logger.InfoContext(ctx, "tournament created",
		"tournament_id", item.ID,
		"overs_format", item.OversFormat,
		"overs_limit", item.OversLimit,
	)
	return item, nil
}

// Update replaces the editable fields. Changing format or points reshapes the standings on next read.
func (s *TournamentService) Update(ctx context.Context, tournamentID string, input TournamentInput) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Update", tournamentAttr(tournamentID))
	defer span.End()

	current, err := loadTournament(ctx, s.repo, tournamentID)
	if err != nil {
		return tournament.Tournament{}, err
	}

	item := applyTournamentInput(current, input)
	item.UpdatedAt = s.now().UTC()
	if err := item.Validate(); err != nil {
		return tournament.Tournament{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return tournament.Tournament{}, fmt.Errorf("update tournament: %w", err)
	}
	invalidateStandings(ctx, s.invalidator, s.logger, item.ID)
	return item, nil
}

// Delete removes a tournament with its teams and matches. confirmName must repeat the
// tournament name exactly.
func (s *TournamentService) Delete(ctx context.Context, tournamentID, confirmName string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Delete", tournamentAttr(tournamentID))
	defer span.End()

	current, err := loadTournament(ctx, s.repo, tournamentID)
	if err != nil {
		return err
	}
	if strings.TrimSpace(confirmName) != current.Name {
		return fmt.Errorf("%w: confirmation name does not match tournament name", ErrInvalidInput)
	}

	if err := s.repo.Delete(ctx, current.ID); err != nil {
		return fmt.Errorf("delete tournament: %w", err)
	}

	invalidateStandings(ctx, s.invalidator, s.logger, current.ID)

	s.logger.InfoContext(ctx, "tournament deleted", "tournament_id", current.ID)
	return nil
}

func applyTournamentInput(item tournament.Tournament, input TournamentInput) tournament.Tournament {
	item.Name = strings.TrimSpace(input.Name)
	item.OversFormat = tournament.NormalizeOversFormat(input.OversFormat)
	item.OversLimit = input.OversLimit
	item.Points = tournament.DefaultPoints()
	if input.Points != nil {
		item.Points = *input.Points
	}

	item.ScheduleType = tournament.NormalizeScheduleType(input.ScheduleType)
	item.PlayoffType = tournament.NormalizePlayoffType(input.PlayoffType)
	item.GroupCount = input.GroupCount

	venues := make([]string, 0, len(input.Venues))
	for _, v := range input.Venues {
		if v = strings.TrimSpace(v); v != "" {
			venues = append(venues, v)
		}
	}
	item.Venues = venues
	return item
}

func loadTournament(ctx context.Context, repo tournament.Repository, tournamentID string) (tournament.Tournament, error) {
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	item, exists, err := repo.GetByID(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}
	return item, nil
}
