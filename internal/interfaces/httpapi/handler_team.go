package httpapi

import (
	"net/http"

	"github.com/riskibarqy/cricket-league/internal/usecase"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListTeams")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	items, err := h.teamService.ListByTournament(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) AddTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.AddTeam")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	var req teamRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.Add(ctx, tournamentID, usecase.TeamInput{
		Name:    req.Name,
		LogoURL: req.LogoURL,
		Owner:   req.Owner,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add team failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(item))
}

func (h *Handler) RemoveTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.RemoveTeam")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	teamID := r.PathValue("teamID")
	if err := h.teamService.Remove(ctx, tournamentID, teamID); err != nil {
		h.logger.WarnContext(ctx, "remove team failed", "tournament_id", tournamentID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": teamID, "status": "deleted"})
}
