package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/cricket-league/internal/domain/match"
	"github.com/riskibarqy/cricket-league/internal/domain/team"
	"github.com/riskibarqy/cricket-league/internal/domain/tournament"
	"github.com/riskibarqy/cricket-league/internal/platform/id"
	"github.com/riskibarqy/cricket-league/internal/platform/logging"
)

type TeamInput struct {
	Name    string
	LogoURL string
	Owner   string
}

type TeamService struct {
	tournamentRepo tournament.Repository
	teamRepo       team.Repository
	matchRepo      match.Repository
	ids            id.Generator
	invalidator    standingsInvalidator
	logger         *logging.Logger
}

func NewTeamService(
	tournamentRepo tournament.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	ids id.Generator,
	invalidator standingsInvalidator,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
		ids:            ids,
		invalidator:    invalidator,
		logger:         logger,
	}
}

func (s *TeamService) ListByTournament(ctx context.Context, tournamentID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListByTournament", tournamentAttr(tournamentID))
	defer span.End()

	if _, err := loadTournament(ctx, s.tournamentRepo, tournamentID); err != nil {
		return nil, err
	}

	items, err := s.teamRepo.ListByTournament(ctx, strings.TrimSpace(tournamentID))
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return items, nil
}

// Add enters a team. Names are unique per tournament, compared case-insensitively.
func (s *TeamService) Add(ctx context.Context, tournamentID string, input TeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Add", tournamentAttr(tournamentID))
	defer span.End()

	t, err := loadTournament(ctx, s.tournamentRepo, tournamentID)
	if err != nil {
		return team.Team{}, err
	}

	existing, err := s.teamRepo.ListByTournament(ctx, t.ID)
	if err != nil {
		return team.Team{}, fmt.Errorf("list teams: %w", err)
	}
	name := strings.TrimSpace(input.Name)
	for _, item := range existing {
		if strings.EqualFold(item.Name, name) {
			return team.Team{}, fmt.Errorf("%w: team %q already exists", ErrConflict, name)
		}
	}

	teamID, err := s.ids.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	item := team.Team{
		ID:           teamID,
		TournamentID: t.ID,
		Name:         name,
		LogoURL:      strings.TrimSpace(input.LogoURL),
		Owner:        strings.TrimSpace(input.Owner),
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Create(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}
	invalidateStandings(ctx, s.invalidator, s.logger, t.ID)

	s.logger.InfoContext(ctx, "team added", "tournament_id", t.ID, "team_id", item.ID)
	return item, nil
}

// Remove deletes a team that no fixture references yet.
func (s *TeamService) Remove(ctx context.Context, tournamentID, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Remove", tournamentAttr(tournamentID))
	defer span.End()

	t, err := loadTournament(ctx, s.tournamentRepo, tournamentID)
	if err != nil {
		return err
	}

	teamID = strings.TrimSpace(teamID)
	_, exists, err := s.teamRepo.GetByID(ctx, t.ID, teamID)
	if err != nil {
		return fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	matches, err := s.matchRepo.ListByTournament(ctx, t.ID)
	if err != nil {
		return fmt.Errorf("list matches: %w", err)
	}
	for _, m := range matches {
		if m.Team1ID == teamID || m.Team2ID == teamID {
			return fmt.Errorf("%w: team %s is scheduled in match %s", ErrConflict, teamID, m.ID)
		}
	}

	if err := s.teamRepo.Delete(ctx, t.ID, teamID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	invalidateStandings(ctx, s.invalidator, s.logger, t.ID)
	return nil
}
