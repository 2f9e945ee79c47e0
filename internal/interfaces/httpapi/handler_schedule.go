package httpapi

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/cricket-league/internal/domain/schedule"
	"github.com/riskibarqy/cricket-league/internal/domain/tournament"
	"github.com/riskibarqy/cricket-league/internal/usecase"
)

// EstimateMatches answers how many matches a format produces before any team is entered.
func (h *Handler) EstimateMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.EstimateMatches")
	defer span.End()

	query := r.URL.Query()
	teams, err := parseQueryInt(query, "teams", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	groups, err := parseQueryInt(query, "groups", 1)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if teams < 0 || teams > 1000 {
		writeError(ctx, w, fmt.Errorf("%w: teams must be between 0 and 1000", usecase.ErrInvalidInput))
		return
	}

	scheduleType := tournament.NormalizeScheduleType(query.Get("schedule"))
	if !tournament.IsValidScheduleType(scheduleType) {
		writeError(ctx, w, fmt.Errorf("%w: %q", tournament.ErrInvalidScheduleType, query.Get("schedule")))
		return
	}
	playoffType := tournament.NormalizePlayoffType(query.Get("playoff"))
	if !tournament.IsValidPlayoffType(playoffType) {
		writeError(ctx, w, fmt.Errorf("%w: %q", tournament.ErrInvalidPlayoffType, query.Get("playoff")))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, estimateDTO{
		Teams:        teams,
		ScheduleType: string(scheduleType),
		GroupCount:   groups,
		PlayoffType:  string(playoffType),
		Matches:      schedule.EstimateMatchCount(teams, scheduleType, groups, playoffType),
	})
}

func parseQueryInt(query url.Values, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return v, nil
}
