package postgres

import (
	"time"

	"github.com/lib/pq"
)

type tournamentTableModel struct {
	ID           int64          `db:"id"`
	PublicID     string         `db:"public_id"`
	Name         string         `db:"name"`
	OversFormat  string         `db:"overs_format"`
	OversLimit   int            `db:"overs_limit"`
	PointsWin    int            `db:"points_win"`
	PointsDraw   int            `db:"points_draw"`
	PointsLoss   int            `db:"points_loss"`
	ScheduleType string         `db:"schedule_type"`
	PlayoffType  string         `db:"playoff_type"`
	GroupCount   int            `db:"group_count"`
	Venues       pq.StringArray `db:"venues"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type tournamentInsertModel struct {
	PublicID     string         `db:"public_id"`
	Name         string         `db:"name"`
	OversFormat  string         `db:"overs_format"`
	OversLimit   int            `db:"overs_limit"`
	PointsWin    int            `db:"points_win"`
	PointsDraw   int            `db:"points_draw"`
	PointsLoss   int            `db:"points_loss"`
	ScheduleType string         `db:"schedule_type"`
	PlayoffType  string         `db:"playoff_type"`
	GroupCount   int            `db:"group_count"`
	Venues       pq.StringArray `db:"venues"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type tournamentUpdateModel struct {
	Name         string         `db:"name"`
	OversFormat  string         `db:"overs_format"`
	OversLimit   int            `db:"overs_limit"`
	PointsWin    int            `db:"points_win"`
	PointsDraw   int            `db:"points_draw"`
	PointsLoss   int            `db:"points_loss"`
	ScheduleType string         `db:"schedule_type"`
	PlayoffType  string         `db:"playoff_type"`
	GroupCount   int            `db:"group_count"`
	Venues       pq.StringArray `db:"venues"`
	UpdatedAt    time.Time      `db:"updated_at"`
}
