package postgres

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricket-league/internal/domain/match"
	qb "github.com/riskibarqy/cricket-league/internal/platform/querybuilder"
)

type MatchRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db, now: time.Now}
}

func (r *MatchRepository) ListByTournament(ctx context.Context, tournamentID string) ([]match.Match, error) {
	query, args, err := qb.Select(qb.All).From(matchesTable).
		Where(qb.Eq(colTournamentID, tournamentID)).
		OrderBy(qb.Asc(colRound), qb.Asc(colID)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by tournament query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches by tournament: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, tournamentID, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select(qb.All).From(matchesTable).
		Where(byTournament(tournamentID, matchID)...).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}
	return matchFromRow(row), true, nil
}

func (r *MatchRepository) ReplaceByTournament(ctx context.Context, tournamentID string, items []match.Match) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace matches: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.DeleteFrom(matchesTable).
		Where(qb.Eq(colTournamentID, tournamentID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear matches query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear matches: %w", err)
	}

	now := r.now().UTC()
	for batch := range slices.Chunk(items, fixtureInsertBatch) {
		rows := make([]matchWriteModel, 0, len(batch))
		for _, item := range batch {
			item.TournamentID = tournamentID
			rows = append(rows, matchToRow(item, now))
		}
		query, args, err := qb.InsertModels(matchesTable, rows, "")
		if err != nil {
			return fmt.Errorf("build insert matches query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert %d matches from %s: %w", len(batch), batch[0].ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx replace matches: %w", err)
	}
	return nil
}

func (r *MatchRepository) Save(ctx context.Context, item match.Match) error {
	query, args, err := qb.UpdateModel(matchesTable, matchToRow(item, r.now().UTC()),
		byTournament(item.TournamentID, item.ID)...,
	)
	if err != nil {
		return fmt.Errorf("build save match query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("save match: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("match %s not found", item.ID)
	}
	return nil
}

func matchToRow(item match.Match, now time.Time) matchWriteModel {
	row := matchWriteModel{
		PublicID:     item.ID,
		TournamentID: item.TournamentID,
		Round:        item.Round,
		Team1ID:      item.Team1ID,
		Team2ID:      item.Team2ID,
		Venue:        stringToNullString(item.VenueID),
		Status:       string(item.Status),
		CompletedAt:  timePtrToNullTime(item.CompletedAt),
		UpdatedAt:    now,
	}
	if item.Result != nil {
		row.ResultType = stringToNullString(string(item.Result.Type))
		row.WinnerTeamID = stringToNullString(item.Result.WinnerTeamID)
		row.Team1Runs = item.Result.Team1.Runs
		row.Team1Wickets = item.Result.Team1.Wickets
		row.Team1Overs = item.Result.Team1.Overs
		row.Team1Balls = item.Result.Team1.Balls
		row.Team2Runs = item.Result.Team2.Runs
		row.Team2Wickets = item.Result.Team2.Wickets
		row.Team2Overs = item.Result.Team2.Overs
		row.Team2Balls = item.Result.Team2.Balls
	}
	return row
}

func matchFromRow(row matchTableModel) match.Match {
	out := match.Match{
		ID:           row.PublicID,
		TournamentID: row.TournamentID,
		Round:        row.Round,
		Team1ID:      row.Team1ID,
		Team2ID:      row.Team2ID,
		VenueID:      row.Venue.String,
		Status:       match.NormalizeStatus(row.Status),
		CompletedAt:  nullTimeToTimePtr(row.CompletedAt),
	}
	if row.ResultType.Valid {
		out.Result = &match.Result{
			Type:         match.ResultType(row.ResultType.String),
			WinnerTeamID: row.WinnerTeamID.String,
			Team1: match.Innings{
				Runs:    row.Team1Runs,
				Wickets: row.Team1Wickets,
				Overs:   row.Team1Overs,
				Balls:   row.Team1Balls,
			},
			Team2: match.Innings{
				Runs:    row.Team2Runs,
				Wickets: row.Team2Wickets,
				Overs:   row.Team2Overs,
				Balls:   row.Team2Balls,
			},
		}
	}
	return out
}
