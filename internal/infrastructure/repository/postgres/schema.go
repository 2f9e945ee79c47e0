package postgres

import qb "github.com/riskibarqy/cricket-league/internal/platform/querybuilder"

const (
	tournamentsTable qb.Table = "tournaments"
	teamsTable       qb.Table = "teams"
	matchesTable     qb.Table = "matches"
)

// Columns shared by every table.
const (
	colID        qb.Column = "id"
	colPublicID  qb.Column = "public_id"
	colCreatedAt qb.Column = "created_at"
)

// colTournamentID scopes teams and matches to their tournament.
const colTournamentID qb.Column = "tournament_public_id"

const colRound qb.Column = "round"

// fixtureInsertBatch keeps a fixture insert well under the 65535 bind parameter limit.
const fixtureInsertBatch = 500

// byTournament selects a team or match by its public id inside one tournament.
func byTournament(tournamentID, publicID string) []qb.Condition {
	return []qb.Condition{
		qb.Eq(colTournamentID, tournamentID),
		qb.Eq(colPublicID, publicID),
	}
}
