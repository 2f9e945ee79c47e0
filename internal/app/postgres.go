package app

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const maxTracedQueryLength = 512

// postgresTarget is DB_URL resolved once at startup: the DSN handed to the driver, the
// database name reported on spans and a password-free form for logs.
type postgresTarget struct {
	dsn      string
	dbName   string
	redacted string
}

func resolvePostgresTarget(raw string, disablePreparedBinaryResult bool) postgresTarget {
	raw = strings.TrimSpace(raw)
	return postgresTarget{
		dsn:      normalizeDBURL(raw, disablePreparedBinaryResult),
		dbName:   dbNameFromURL(raw),
		redacted: redactDBURL(raw),
	}
}

func openPostgres(ctx context.Context, target postgresTarget) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", target.dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(target.dbName),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres %s: %w", target.redacted, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, dependencyPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres %s: %w", target.redacted, err)
	}
	return db, nil
}

// normalizeDBURL turns off binary results for prepared statements unless the URL already
// decides. Key/value DSNs are returned untouched.
func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if query.Has("disable_prepared_binary_result") {
		return raw
	}
	query.Set("disable_prepared_binary_result", "yes")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

func dbNameFromURL(raw string) string {
	if parsed, err := url.Parse(raw); err == nil && parsed.Scheme != "" {
		return strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
	}
	return dsnValue(raw, "dbname")
}

func redactDBURL(raw string) string {
	if parsed, err := url.Parse(raw); err == nil && parsed.Scheme != "" {
		return parsed.Redacted()
	}

	fields := strings.Fields(raw)
	for i, field := range fields {
		if key, _, ok := strings.Cut(field, "="); ok && key == "password" {
			fields[i] = "password=xxxxx"
		}
	}
	return strings.Join(fields, " ")
}

func dsnValue(dsn, key string) string {
	for _, field := range strings.Fields(dsn) {
		k, v, ok := strings.Cut(field, "=")
		if ok && k == key {
			return strings.Trim(v, `"'`)
		}
	}
	return ""
}

// formatDBQueryForTrace collapses whitespace and folds the row tuples of a fixture batch
// insert into a count, so span attributes stay short and comparable.
func formatDBQueryForTrace(query string) string {
	query = strings.Join(strings.Fields(query), " ")
	if head, tuples, ok := strings.Cut(query, " VALUES ("); ok {
		if extra := strings.Count(tuples, "), ("); extra > 0 {
			first, _, _ := strings.Cut(tuples, "), (")
			query = head + " VALUES (" + first + ") /* +" + strconv.Itoa(extra) + " rows */"
		}
	}
	if len(query) <= maxTracedQueryLength {
		return query
	}
	return query[:maxTracedQueryLength] + "..."
}
