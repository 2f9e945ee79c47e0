package postgres

import (
	"database/sql"
	"time"
)

type teamTableModel struct {
	ID           int64          `db:"id"`
	PublicID     string         `db:"public_id"`
	TournamentID string         `db:"tournament_public_id"`
	Name         string         `db:"name"`
	LogoURL      sql.NullString `db:"logo_url"`
	Owner        sql.NullString `db:"owner"`
	CreatedAt    time.Time      `db:"created_at"`
}

type teamInsertModel struct {
	PublicID     string         `db:"public_id"`
	TournamentID string         `db:"tournament_public_id"`
	Name         string         `db:"name"`
	LogoURL      sql.NullString `db:"logo_url"`
	Owner        sql.NullString `db:"owner"`
}
