package standings

import "github.com/riskibarqy/cricket-league/internal/domain/match"

// Classify decides a completed match from the two final totals. Team1 bats first.
// It only ever yields a win for either side or a tie.
func Classify(team1ID, team2ID string, team1Runs, team2Runs int) match.Outcome {
	switch {
	case team1Runs > team2Runs:
		return match.Outcome{Type: match.ResultFirstBattingWin, WinnerTeamID: team1ID}
	case team2Runs > team1Runs:
		return match.Outcome{Type: match.ResultSecondBattingWin, WinnerTeamID: team2ID}
	default:
		return match.Outcome{Type: match.ResultTie}
	}
}
