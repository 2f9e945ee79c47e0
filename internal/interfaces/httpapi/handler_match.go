package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/cricket-league/internal/domain/match"
	"github.com/riskibarqy/cricket-league/internal/usecase"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListMatches")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	items, err := h.matchService.ListByTournament(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(items))
}

func (h *Handler) GenerateFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GenerateFixtures")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	var req generateFixturesRequest
	if err := h.decodeRequest(ctx, r, &req, true); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.matchService.GenerateFixtures(ctx, tournamentID, usecase.GenerateFixturesInput{
		Legs:  req.Legs,
		Force: req.Force,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "generate fixtures failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchesToDTO(items))
}

func (h *Handler) StartMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.StartMatch")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	matchID := r.PathValue("matchID")
	item, err := h.matchService.StartMatch(ctx, tournamentID, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "start match failed", "tournament_id", tournamentID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) RecordResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.RecordResult")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	matchID := r.PathValue("matchID")
	var req resultRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.RecordResult(ctx, tournamentID, matchID, usecase.ResultInput{
		Team1: req.Team1.toInnings(),
		Team2: req.Team2.toInnings(),
		Type:  match.ResultType(strings.ToUpper(strings.TrimSpace(req.Type))),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record result failed", "tournament_id", tournamentID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) ResetResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ResetResult")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	matchID := r.PathValue("matchID")
	item, err := h.matchService.ResetResult(ctx, tournamentID, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "reset result failed", "tournament_id", tournamentID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func matchesToDTO(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchToDTO(item))
	}
	return out
}
