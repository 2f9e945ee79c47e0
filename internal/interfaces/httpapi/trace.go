package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("cricket-league/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// routeParams are the path wildcards copied onto handler spans.
var routeParams = []struct {
	name string
	key  attribute.Key
}{
	{name: "tournamentID", key: "cricket.tournament.id"},
	{name: "teamID", key: "cricket.team.id"},
	{name: "matchID", key: "cricket.match.id"},
}

// startSpan opens a span only for Handler methods under an incoming request span.
// Helpers and middleware reuse the request span.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() || !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// startHandlerSpan is startSpan tagged with the tournament, team and match ids of the route.
func startHandlerSpan(r *http.Request, name string) (context.Context, trace.Span) {
	return startSpan(r.Context(), name, routeAttributes(r)...)
}

func routeAttributes(r *http.Request) []attribute.KeyValue {
	var attrs []attribute.KeyValue
	for _, p := range routeParams {
		if v := strings.TrimSpace(r.PathValue(p.name)); v != "" {
			attrs = append(attrs, p.key.String(v))
		}
	}
	return attrs
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}
