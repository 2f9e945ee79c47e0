package httpapi

import (
	"net/http"

	"github.com/riskibarqy/cricket-league/internal/usecase"
)

type standingsResponseDTO struct {
	TournamentID string        `json:"tournamentId"`
	OversFormat  string        `json:"oversFormat"`
	Points       pointsDTO     `json:"points"`
	Standings    []standingDTO `json:"standings"`
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetStandings")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	result, err := h.standingsService.Table(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	applied := result.Table.Points
	writeSuccess(ctx, w, http.StatusOK, standingsResponseDTO{
		TournamentID: result.Tournament.ID,
		OversFormat:  string(result.Table.Format),
		Points:       pointsDTO{Win: applied.Win, Draw: applied.Draw, Loss: applied.Loss},
		Standings:    standingsToDTO(result.Table.Standings, result.Table.Format),
	})
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetDashboard")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	dashboard, err := h.standingsService.Dashboard(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get dashboard failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardToDTO(dashboard))
}

func (h *Handler) ExportStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ExportStandings")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	format, err := usecase.ParseExportFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	export, err := h.exportService.Export(ctx, tournamentID, format)
	if err != nil {
		h.logger.WarnContext(ctx, "export standings failed", "tournament_id", tournamentID, "format", format, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeAttachment(ctx, w, export.Filename, export.ContentType, export.Body)
}
