package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/cricket-league/internal/domain/match"
	"github.com/riskibarqy/cricket-league/internal/domain/schedule"
	"github.com/riskibarqy/cricket-league/internal/domain/standings"
	"github.com/riskibarqy/cricket-league/internal/domain/team"
	"github.com/riskibarqy/cricket-league/internal/domain/tournament"
	"github.com/riskibarqy/cricket-league/internal/platform/logging"
)

type GenerateFixturesInput struct {
	// Legs defaults to 2 for double round robin tournaments and 1 otherwise.
	Legs int
	// Force replaces fixtures even when some matches have started or finished.
	Force bool
}

type ResultInput struct {
	Team1 match.Innings
	Team2 match.Innings
	// Type is only honoured for outcomes the scores cannot express: DRAW, NO_RESULT, ABANDONED.
	// Otherwise the winner is decided from the runs.
	Type match.ResultType
}

type resultRecorder interface {
	ResultRecorded(resultType string)
}

type MatchService struct {
	tournamentRepo tournament.Repository
	teamRepo       team.Repository
	matchRepo      match.Repository
	invalidator    standingsInvalidator
	metrics        resultRecorder
	logger         *logging.Logger
	now            func() time.Time
}

func NewMatchService(
	tournamentRepo tournament.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	invalidator standingsInvalidator,
	metrics resultRecorder,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
		invalidator:    invalidator,
		metrics:        metrics,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *MatchService) ListByTournament(ctx context.Context, tournamentID string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListByTournament", tournamentAttr(tournamentID))
	defer span.End()

	t, err := loadTournament(ctx, s.tournamentRepo, tournamentID)
	if err != nil {
		return nil, err
	}

	items, err := s.matchRepo.ListByTournament(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

// GenerateFixtures replaces the tournament's fixture list with a fresh round robin.
func (s *MatchService) GenerateFixtures(ctx context.Context, tournamentID string, input GenerateFixturesInput) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GenerateFixtures", tournamentAttr(tournamentID))
	defer span.End()

	t, err := loadTournament(ctx, s.tournamentRepo, tournamentID)
	if err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListByTournament(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	if !input.Force {
		existing, err := s.matchRepo.ListByTournament(ctx, t.ID)
		if err != nil {
			return nil, fmt.Errorf("list matches: %w", err)
		}
		for _, m := range existing {
			if m.Status != match.StatusNotStarted {
				return nil, fmt.Errorf("%w: match %s already %s", ErrConflict, m.ID, m.Status)
			}
		}
	}

	legs := input.Legs
	if legs == 0 {
		legs = 1
		if t.ScheduleType == tournament.ScheduleDoubleRoundRobin {
			legs = 2
		}
	}

	teamIDs := make([]string, 0, len(teams))
	for _, item := range teams {
		teamIDs = append(teamIDs, item.ID)
	}

	fixtures, err := schedule.GenerateRoundRobin(t.ID, teamIDs, t.Venues, legs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matchRepo.ReplaceByTournament(ctx, t.ID, fixtures); err != nil {
		return nil, fmt.Errorf("replace fixtures: %w", err)
	}
	invalidateStandings(ctx, s.invalidator, s.logger, t.ID)

	s.logger.InfoContext(ctx, "fixtures generated",
		"tournament_id", t.ID,
		"teams", len(teamIDs),
		"legs", legs,
		"matches", len(fixtures),
		"forced", input.Force,
	)
	return fixtures, nil
}

func (s *MatchService) StartMatch(ctx context.Context, tournamentID, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.StartMatch", tournamentAttr(tournamentID))
	defer span.End()

	_, item, err := s.loadMatch(ctx, tournamentID, matchID)
	if err != nil {
		return match.Match{}, err
	}
	if item.Status != match.StatusNotStarted {
		return match.Match{}, fmt.Errorf("%w: match %s is %s", ErrConflict, item.ID, item.Status)
	}

	item.Status = match.StatusInProgress
	if err := s.matchRepo.Save(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("save match: %w", err)
	}
	invalidateStandings(ctx, s.invalidator, s.logger, item.TournamentID)
	return item, nil
}

// RecordResult clamps both innings to the tournament caps, classifies the outcome and
// completes the match. Recording over an existing result replaces it.
func (s *MatchService) RecordResult(ctx context.Context, tournamentID, matchID string, input ResultInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RecordResult", tournamentAttr(tournamentID))
	defer span.End()

	t, item, err := s.loadMatch(ctx, tournamentID, matchID)
	if err != nil {
		return match.Match{}, err
	}
	if item.Team1ID == item.Team2ID {
		return match.Match{}, fmt.Errorf("%w: match %s has the same team on both sides", ErrInvalidInput, item.ID)
	}

	ballCount := t.OversFormat == tournament.OversFormatBalls
	team1 := match.ClampInnings(input.Team1, t.OversLimit, ballCount)
	team2 := match.ClampInnings(input.Team2, t.OversLimit, ballCount)

	var outcome match.Outcome
	switch input.Type {
	case match.ResultDraw, match.ResultNoResult, match.ResultAbandoned:
		outcome = match.Outcome{Type: input.Type}
	case "", match.ResultFirstBattingWin, match.ResultSecondBattingWin, match.ResultTie:
		outcome = standings.Classify(item.Team1ID, item.Team2ID, team1.Runs, team2.Runs)
	default:
		return match.Match{}, fmt.Errorf("%w: unknown result type %q", ErrInvalidInput, input.Type)
	}

	completedAt := s.now().UTC()
	item.Status = match.StatusCompleted
	item.CompletedAt = &completedAt
	item.Result = &match.Result{
		Type:         outcome.Type,
		WinnerTeamID: outcome.WinnerTeamID,
		Team1:        team1,
		Team2:        team2,
	}

	if err := s.matchRepo.Save(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("save match result: %w", err)
	}
	invalidateStandings(ctx, s.invalidator, s.logger, t.ID)
	if s.metrics != nil {
		s.metrics.ResultRecorded(string(outcome.Type))
	}

	s.logger.InfoContext(ctx, "match result recorded",
		"tournament_id", t.ID,
		"match_id", item.ID,
		"result_type", outcome.Type,
		"winner_team_id", outcome.WinnerTeamID,
	)
	return item, nil
}

// ResetResult returns a match to NOT_STARTED and drops its scores.
func (s *MatchService) ResetResult(ctx context.Context, tournamentID, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ResetResult", tournamentAttr(tournamentID))
	defer span.End()

	_, item, err := s.loadMatch(ctx, tournamentID, matchID)
	if err != nil {
		return match.Match{}, err
	}

	item.Status = match.StatusNotStarted
	item.Result = nil
	item.CompletedAt = nil
	if err := s.matchRepo.Save(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("save match: %w", err)
	}
	invalidateStandings(ctx, s.invalidator, s.logger, item.TournamentID)
	return item, nil
}

func (s *MatchService) loadMatch(ctx context.Context, tournamentID, matchID string) (tournament.Tournament, match.Match, error) {
	t, err := loadTournament(ctx, s.tournamentRepo, tournamentID)
	if err != nil {
		return tournament.Tournament{}, match.Match{}, err
	}

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return tournament.Tournament{}, match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, t.ID, matchID)
	if err != nil {
		return tournament.Tournament{}, match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return tournament.Tournament{}, match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return t, item, nil
}
