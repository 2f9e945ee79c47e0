package standings

import (
	"github.com/riskibarqy/cricket-league/internal/domain/match"
	"github.com/riskibarqy/cricket-league/internal/domain/team"
	"github.com/riskibarqy/cricket-league/internal/domain/tournament"
)

type accumulator struct {
	totals      Totals
	facedUnits  int
	bowledUnits int
}

type verdict int

const (
	verdictTeam1 verdict = iota
	verdictTeam2
	verdictTie
	verdictDraw
	verdictNoResult
)

// Aggregate folds every completed match into per-team totals. Every team in teams
// gets an entry. Matches naming an unknown team, or the same team twice, are skipped.
// The fold only adds integers, so match order never changes the result.
func Aggregate(
	teams []team.Team,
	matches []match.Match,
	configured tournament.PointsConfig,
	regime OversRegime,
	oversLimit int,
) map[string]Totals {
	if regime == nil {
		regime = Standard
	}
	points := regime.Points(configured)

	acc := make(map[string]*accumulator, len(teams))
	for _, t := range teams {
		acc[t.ID] = &accumulator{totals: Totals{TeamID: t.ID}}
	}

	for _, m := range matches {
		if !m.IsCompleted() || m.Team1ID == m.Team2ID {
			continue
		}
		first, ok1 := acc[m.Team1ID]
		second, ok2 := acc[m.Team2ID]
		if !ok1 || !ok2 {
			continue
		}

		var result match.Result
		if m.Result != nil {
			result = *m.Result
		}

		first.totals.Played++
		second.totals.Played++

		firstUnits := regime.Units(result.Team1, oversLimit)
		secondUnits := regime.Units(result.Team2, oversLimit)
		first.addInnings(result.Team1.Runs, firstUnits, result.Team2.Runs, secondUnits, result.Team2.Wickets)
		second.addInnings(result.Team2.Runs, secondUnits, result.Team1.Runs, firstUnits, result.Team1.Wickets)

		switch decide(result.Type) {
		case verdictTeam1:
			first.win(points)
			second.lose(points)
		case verdictTeam2:
			second.win(points)
			first.lose(points)
		case verdictTie:
			first.totals.Tied++
			second.totals.Tied++
			first.totals.Points += points.Draw
			second.totals.Points += points.Draw
		case verdictDraw:
			first.totals.Drawn++
			second.totals.Drawn++
			first.totals.Points += points.Draw
			second.totals.Points += points.Draw
		default:
			first.totals.NoResult++
			second.totals.NoResult++
			first.totals.Points += points.Draw
			second.totals.Points += points.Draw
		}
	}

	perOver := float64(regime.UnitsPerOver())
	out := make(map[string]Totals, len(acc))
	for id, a := range acc {
		t := a.totals
		t.OversFaced = float64(a.facedUnits) / perOver
		t.OversBowled = float64(a.bowledUnits) / perOver
		out[id] = t
	}
	return out
}

// decide reads the result type only; the winner reference is informational.
// Anything that is not a win for either side is scored as a draw.
func decide(t match.ResultType) verdict {
	switch t {
	case match.ResultFirstBattingWin:
		return verdictTeam1
	case match.ResultSecondBattingWin:
		return verdictTeam2
	case match.ResultTie:
		return verdictTie
	case match.ResultDraw:
		return verdictDraw
	default:
		return verdictNoResult
	}
}

func (a *accumulator) addInnings(runsFor, unitsFaced, runsAgainst, unitsBowled, wicketsTaken int) {
	a.totals.RunsScored += runsFor
	a.totals.RunsConceded += runsAgainst
	a.totals.WicketsTaken += wicketsTaken
	a.facedUnits += unitsFaced
	a.bowledUnits += unitsBowled
}

func (a *accumulator) win(points tournament.PointsConfig) {
	a.totals.Won++
	a.totals.Points += points.Win
}

func (a *accumulator) lose(points tournament.PointsConfig) {
	a.totals.Lost++
	a.totals.Points += points.Loss
}
