package postgres

import (
	"database/sql"
	"time"
)

// matchTableModel flattens both innings into columns. result_type is NULL until completion.
type matchTableModel struct {
	ID           int64          `db:"id"`
	PublicID     string         `db:"public_id"`
	TournamentID string         `db:"tournament_public_id"`
	Round        int            `db:"round"`
	Team1ID      string         `db:"team1_public_id"`
	Team2ID      string         `db:"team2_public_id"`
	Venue        sql.NullString `db:"venue"`
	Status       string         `db:"status"`
	ResultType   sql.NullString `db:"result_type"`
	WinnerTeamID sql.NullString `db:"winner_team_public_id"`
	Team1Runs    int            `db:"team1_runs"`
	Team1Wickets int            `db:"team1_wickets"`
	Team1Overs   int            `db:"team1_overs"`
	Team1Balls   int            `db:"team1_balls"`
	Team2Runs    int            `db:"team2_runs"`
	Team2Wickets int            `db:"team2_wickets"`
	Team2Overs   int            `db:"team2_overs"`
	Team2Balls   int            `db:"team2_balls"`
	CompletedAt  sql.NullTime   `db:"completed_at"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type matchWriteModel struct {
	PublicID     string         `db:"public_id"`
	TournamentID string         `db:"tournament_public_id"`
	Round        int            `db:"round"`
	Team1ID      string         `db:"team1_public_id"`
	Team2ID      string         `db:"team2_public_id"`
	Venue        sql.NullString `db:"venue"`
	Status       string         `db:"status"`
	ResultType   sql.NullString `db:"result_type"`
	WinnerTeamID sql.NullString `db:"winner_team_public_id"`
	Team1Runs    int            `db:"team1_runs"`
	Team1Wickets int            `db:"team1_wickets"`
	Team1Overs   int            `db:"team1_overs"`
	Team1Balls   int            `db:"team1_balls"`
	Team2Runs    int            `db:"team2_runs"`
	Team2Wickets int            `db:"team2_wickets"`
	Team2Overs   int            `db:"team2_overs"`
	Team2Balls   int            `db:"team2_balls"`
	CompletedAt  sql.NullTime   `db:"completed_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}
