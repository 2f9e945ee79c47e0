package standings

import (
	"github.com/riskibarqy/cricket-league/internal/domain/match"
	"github.com/riskibarqy/cricket-league/internal/domain/team"
	"github.com/riskibarqy/cricket-league/internal/domain/tournament"
)

// Input is everything the engine depends on. The engine never mutates it.
type Input struct {
	Teams      []team.Team
	Matches    []match.Match
	Points     tournament.PointsConfig
	Format     tournament.OversFormat
	OversLimit int
}

// Table is the full computed view over one match list snapshot.
type Table struct {
	Standings []Standing
	Dashboard Dashboard
	// Points is the points table actually applied, after format overrides.
	Points tournament.PointsConfig
	Format tournament.OversFormat
}

func InputFor(t tournament.Tournament, teams []team.Team, matches []match.Match) Input {
	return Input{
		Teams:      teams,
		Matches:    matches,
		Points:     t.Points,
		Format:     t.OversFormat,
		OversLimit: t.OversLimit,
	}
}

// Compute runs the whole pipeline from scratch. Identical inputs give identical tables.
func Compute(in Input) Table {
	regime := RegimeFor(in.Format)
	totals := Aggregate(in.Teams, in.Matches, in.Points, regime, in.OversLimit)

	rows := make([]Standing, 0, len(in.Teams))
	seen := make(map[string]struct{}, len(in.Teams))
	for _, t := range in.Teams {
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}

		tot := totals[t.ID]
		rows = append(rows, Standing{
			Totals:   tot,
			Rates:    ComputeRates(tot),
			TeamName: t.Name,
		})
	}

	ranked := Rank(rows)
	return Table{
		Standings: ranked,
		Dashboard: BuildDashboard(ranked, in.Matches),
		Points:    regime.Points(in.Points),
		Format:    regime.Format(),
	}
}
