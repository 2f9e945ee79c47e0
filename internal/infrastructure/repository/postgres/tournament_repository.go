package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/riskibarqy/cricket-league/internal/domain/tournament"
	qb "github.com/riskibarqy/cricket-league/internal/platform/querybuilder"
)

type TournamentRepository struct {
	db *sqlx.DB
}

func NewTournamentRepository(db *sqlx.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) List(ctx context.Context) ([]tournament.Tournament, error) {
	query, args, err := qb.Select(qb.All).From(tournamentsTable).
		OrderBy(qb.Asc(colCreatedAt), qb.Asc(colID)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list tournaments query: %w", err)
	}

	var rows []tournamentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}

	out := make([]tournament.Tournament, 0, len(rows))
	for _, row := range rows {
		out = append(out, tournamentFromRow(row))
	}
	return out, nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	query, args, err := qb.Select(qb.All).From(tournamentsTable).
		Where(qb.Eq(colPublicID, tournamentID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return tournament.Tournament{}, false, fmt.Errorf("build get tournament query: %w", err)
	}

	var row tournamentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, fmt.Errorf("get tournament: %w", err)
	}
	return tournamentFromRow(row), true, nil
}

func (r *TournamentRepository) Create(ctx context.Context, item tournament.Tournament) error {
	query, args, err := qb.InsertModel(tournamentsTable, tournamentInsertModel{
		PublicID:     item.ID,
		Name:         item.Name,
		OversFormat:  string(item.OversFormat),
		OversLimit:   item.OversLimit,
		PointsWin:    item.Points.Win,
		PointsDraw:   item.Points.Draw,
		PointsLoss:   item.Points.Loss,
		ScheduleType: string(item.ScheduleType),
		PlayoffType:  string(item.PlayoffType),
		GroupCount:   item.GroupCount,
		Venues:       pq.StringArray(item.Venues),
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert tournament query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("tournament %s already exists: %w", item.ID, err)
		}
		return fmt.Errorf("insert tournament: %w", err)
	}
	return nil
}

func (r *TournamentRepository) Update(ctx context.Context, item tournament.Tournament) error {
	query, args, err := qb.UpdateModel(tournamentsTable, tournamentUpdateModel{
		Name:         item.Name,
		OversFormat:  string(item.OversFormat),
		OversLimit:   item.OversLimit,
		PointsWin:    item.Points.Win,
		PointsDraw:   item.Points.Draw,
		PointsLoss:   item.Points.Loss,
		ScheduleType: string(item.ScheduleType),
		PlayoffType:  string(item.PlayoffType),
		GroupCount:   item.GroupCount,
		Venues:       pq.StringArray(item.Venues),
		UpdatedAt:    item.UpdatedAt,
	}, qb.Eq(colPublicID, item.ID))
	if err != nil {
		return fmt.Errorf("build update tournament query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update tournament: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("tournament %s not found", item.ID)
	}
	return nil
}

// Delete relies on ON DELETE CASCADE to drop teams and matches.
func (r *TournamentRepository) Delete(ctx context.Context, tournamentID string) error {
	query, args, err := qb.DeleteFrom(tournamentsTable).
		Where(qb.Eq(colPublicID, tournamentID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete tournament query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete tournament: %w", err)
	}
	return nil
}

func tournamentFromRow(row tournamentTableModel) tournament.Tournament {
	return tournament.Tournament{
		ID:          row.PublicID,
		Name:        row.Name,
		OversFormat: tournament.OversFormat(row.OversFormat),
		OversLimit:  row.OversLimit,
		Points: tournament.PointsConfig{
			Win:  row.PointsWin,
			Draw: row.PointsDraw,
			Loss: row.PointsLoss,
		},
		ScheduleType: tournament.ScheduleType(row.ScheduleType),
		PlayoffType:  tournament.PlayoffType(row.PlayoffType),
		GroupCount:   row.GroupCount,
		Venues:       []string(row.Venues),
		CreatedAt:    row.CreatedAt.UTC(),
		UpdatedAt:    row.UpdatedAt.UTC(),
	}
}
