package httpapi

import (
	"net/http"

	"github.com/riskibarqy/cricket-league/internal/platform/metrics"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, registry *metrics.Metrics, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if registry != nil {
		mux.Handle("GET /metrics", registry.Handler())
	}
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerTournamentRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/tournaments", handler.ListTournaments)
	mux.HandleFunc("POST /v1/tournaments", handler.CreateTournament)
	mux.HandleFunc("GET /v1/tournaments/overview", handler.ListTournamentOverview)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}", handler.GetTournament)
	mux.HandleFunc("PUT /v1/tournaments/{tournamentID}", handler.UpdateTournament)
	mux.HandleFunc("DELETE /v1/tournaments/{tournamentID}", handler.DeleteTournament)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/teams", handler.ListTeams)
	mux.HandleFunc("POST /v1/tournaments/{tournamentID}/teams", handler.AddTeam)
	mux.HandleFunc("DELETE /v1/tournaments/{tournamentID}/teams/{teamID}", handler.RemoveTeam)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/matches", handler.ListMatches)
	mux.HandleFunc("POST /v1/tournaments/{tournamentID}/fixtures", handler.GenerateFixtures)
	mux.HandleFunc("POST /v1/tournaments/{tournamentID}/matches/{matchID}/start", handler.StartMatch)
	mux.HandleFunc("PUT /v1/tournaments/{tournamentID}/matches/{matchID}/result", handler.RecordResult)
	mux.HandleFunc("DELETE /v1/tournaments/{tournamentID}/matches/{matchID}/result", handler.ResetResult)
}

func registerStandingsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/standings/export", handler.ExportStandings)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/dashboard", handler.GetDashboard)
	mux.HandleFunc("GET /v1/schedule/estimate", handler.EstimateMatches)
}
