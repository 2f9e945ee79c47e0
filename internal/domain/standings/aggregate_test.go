package standings

import (
	"testing"

	"github.com/riskibarqy/cricket-league/internal/domain/match"
	"github.com/riskibarqy/cricket-league/internal/domain/team"
	"github.com/riskibarqy/cricket-league/internal/domain/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var twoPoints = tournament.PointsConfig{Win: 2, Draw: 1, Loss: 0}

func completed(id, t1, t2 string, typ match.ResultType, i1, i2 match.Innings) match.Match {
	return match.Match{
		ID:      id,
		Round:   1,
		Team1ID: t1,
		Team2ID: t2,
		Status:  match.StatusCompleted,
		Result:  &match.Result{Type: typ, Team1: i1, Team2: i2},
	}
}

func teamsOf(ids ...string) []team.Team {
	out := make([]team.Team, 0, len(ids))
	for _, id := range ids {
		out = append(out, team.Team{ID: id, Name: "Team " + id})
	}
	return out
}

func TestAggregate_CreditsBothSides(t *testing.T) {
	matches := []match.Match{
		completed("m1", "a", "b", match.ResultFirstBattingWin,
			match.Innings{Runs: 180, Wickets: 6, Overs: 20},
			match.Innings{Runs: 150, Wickets: 10, Overs: 18, Balls: 3}),
	}

	got := Aggregate(teamsOf("a", "b"), matches, twoPoints, Standard, 20)
	require.Len(t, got, 2)

	a, b := got["a"], got["b"]
	assert.Equal(t, Totals{
		TeamID: "a", Played: 1, Won: 1, RunsScored: 180, RunsConceded: 150,
		OversFaced: 20, OversBowled: 20, WicketsTaken: 10, Points: 2,
	}, a)
	assert.Equal(t, Totals{
		TeamID: "b", Played: 1, Lost: 1, RunsScored: 150, RunsConceded: 180,
		OversFaced: 20, OversBowled: 20, WicketsTaken: 6, Points: 0,
	}, b)
}

func TestAggregate_SkipsIncompleteAndUnknown(t *testing.T) {
	inProgress := completed("m2", "a", "b", match.ResultFirstBattingWin, match.Innings{Runs: 99}, match.Innings{Runs: 10})
	inProgress.Status = match.StatusInProgress

	matches := []match.Match{
		{ID: "m1", Round: 1, Team1ID: "a", Team2ID: "b", Status: match.StatusNotStarted},
		inProgress,
		completed("m3", "a", "ghost", match.ResultFirstBattingWin, match.Innings{Runs: 200}, match.Innings{Runs: 100}),
		completed("m4", "a", "a", match.ResultFirstBattingWin, match.Innings{Runs: 200}, match.Innings{Runs: 100}),
	}

	got := Aggregate(teamsOf("a", "b", "c"), matches, twoPoints, Standard, 20)
	require.Len(t, got, 3)
	for id, tot := range got {
		assert.Equal(t, Totals{TeamID: id}, tot, "team %s should be untouched", id)
	}
	_, ok := got["ghost"]
	assert.False(t, ok)
}

func TestAggregate_NonWinResultsScoreAsDraw(t *testing.T) {
	points := tournament.PointsConfig{Win: 3, Draw: 1, Loss: -1}
	matches := []match.Match{
		completed("m1", "a", "b", match.ResultTie, match.Innings{Runs: 150, Overs: 20}, match.Innings{Runs: 150, Overs: 20}),
		completed("m2", "a", "b", match.ResultDraw, match.Innings{}, match.Innings{}),
		completed("m3", "a", "b", match.ResultNoResult, match.Innings{}, match.Innings{}),
		completed("m4", "a", "b", match.ResultAbandoned, match.Innings{}, match.Innings{}),
		{ID: "m5", Round: 2, Team1ID: "a", Team2ID: "b", Status: match.StatusCompleted},
	}

	got := Aggregate(teamsOf("a", "b"), matches, points, Standard, 20)
	for _, id := range []string{"a", "b"} {
		tot := got[id]
		assert.Equal(t, 5, tot.Played)
		assert.Equal(t, 5, tot.Points)
		assert.Equal(t, 1, tot.Tied)
		assert.Equal(t, 1, tot.Drawn)
		assert.Equal(t, 3, tot.NoResult)
		assert.Zero(t, tot.Won)
		assert.Zero(t, tot.Lost)
	}
}

func TestAggregate_WinnerFollowsResultType(t *testing.T) {
	m := completed("m1", "a", "b", match.ResultSecondBattingWin, match.Innings{Runs: 120}, match.Innings{Runs: 121})
	m.Result.WinnerTeamID = "somebody-else"

	got := Aggregate(teamsOf("a", "b"), []match.Match{m}, twoPoints, Standard, 20)
	assert.Equal(t, 1, got["b"].Won)
	assert.Equal(t, 2, got["b"].Points)
	assert.Equal(t, 1, got["a"].Lost)
}

func TestAggregate_BallCountForcesPoints(t *testing.T) {
	configured := tournament.PointsConfig{Win: 10, Draw: 5, Loss: -3}
	matches := []match.Match{
		completed("m1", "a", "b", match.ResultFirstBattingWin,
			match.Innings{Runs: 150, Wickets: 4, Overs: 100},
			match.Innings{Runs: 120, Wickets: 8, Overs: 85}),
		completed("m2", "b", "c", match.ResultTie,
			match.Innings{Runs: 130, Wickets: 10, Overs: 90},
			match.Innings{Runs: 130, Wickets: 3, Overs: 100}),
	}

	got := Aggregate(teamsOf("a", "b", "c"), matches, configured, BallCount, 100)
	assert.Equal(t, 4, got["a"].Points)
	assert.Equal(t, 2, got["b"].Points)
	assert.Equal(t, 2, got["c"].Points)
	assert.Equal(t, float64(85+100), got["b"].OversFaced)
	assert.Equal(t, float64(100+100), got["b"].OversBowled)
}

func TestAggregate_DoesNotTouchInputs(t *testing.T) {
	teams := teamsOf("a", "b")
	matches := []match.Match{
		completed("m1", "a", "b", match.ResultFirstBattingWin, match.Innings{Runs: 10, Overs: 2}, match.Innings{Runs: 5, Overs: 2}),
	}
	before := *matches[0].Result

	_ = Aggregate(teams, matches, twoPoints, Standard, 20)
	second := Aggregate(teams, matches, twoPoints, Standard, 20)

	assert.Equal(t, before, *matches[0].Result)
	assert.Equal(t, 1, second["a"].Played)
}
