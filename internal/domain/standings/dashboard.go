package standings

import "github.com/riskibarqy/cricket-league/internal/domain/match"

// Leader names the team holding one superlative.
type Leader struct {
	TeamID   string
	TeamName string
	Value    float64
}

type RoundProgress struct {
	Round     int
	Completed int
	Total     int
}

type Dashboard struct {
	TopRuns          *Leader
	TopWickets       *Leader
	BestScoringRate  *Leader
	BestEconomy      *Leader
	Rounds           []RoundProgress
	CompletedMatches int
	TotalMatches     int
}

// BuildDashboard reduces the ranked table into superlatives and per-round progress.
// Ties on a superlative go to the higher-ranked team.
func BuildDashboard(ranked []Standing, matches []match.Match) Dashboard {
	d := Dashboard{
		TopRuns: pickLeader(ranked, func(s Standing) bool { return s.Played > 0 },
			func(s Standing) float64 { return float64(s.RunsScored) },
			func(a, b Standing) bool { return a.RunsScored > b.RunsScored }),
		TopWickets: pickLeader(ranked, func(s Standing) bool { return s.Played > 0 },
			func(s Standing) float64 { return float64(s.WicketsTaken) },
			func(a, b Standing) bool {
				if a.WicketsTaken != b.WicketsTaken {
					return a.WicketsTaken > b.WicketsTaken
				}
				// Economy only breaks the tie when both sides have bowled; otherwise table order stands.
				if a.OversBowled == 0 || b.OversBowled == 0 {
					return false
				}
				return a.EconomyRate < b.EconomyRate
			}),
		BestScoringRate: pickLeader(ranked, func(s Standing) bool { return s.OversFaced > 0 },
			func(s Standing) float64 { return s.ScoringRate },
			func(a, b Standing) bool { return a.ScoringRate > b.ScoringRate }),
		// 0/0 economy is defined as 0, so teams that never bowled must not compete.
		BestEconomy: pickLeader(ranked, func(s Standing) bool { return s.OversBowled > 0 },
			func(s Standing) float64 { return s.EconomyRate },
			func(a, b Standing) bool { return a.EconomyRate < b.EconomyRate }),
	}

	d.Rounds = roundProgress(matches)
	for _, r := range d.Rounds {
		d.CompletedMatches += r.Completed
		d.TotalMatches += r.Total
	}
	return d
}

func pickLeader(
	ranked []Standing,
	eligible func(Standing) bool,
	value func(Standing) float64,
	better func(a, b Standing) bool,
) *Leader {
	var best *Standing
	for i := range ranked {
		s := ranked[i]
		if !eligible(s) {
			continue
		}
		if best == nil || better(s, *best) {
			best = &ranked[i]
		}
	}
	if best == nil {
		return nil
	}
	return &Leader{TeamID: best.TeamID, TeamName: best.TeamName, Value: value(*best)}
}

// roundProgress covers every round from 1 to the highest round present, including empty ones.
func roundProgress(matches []match.Match) []RoundProgress {
	maxRound := 0
	for _, m := range matches {
		maxRound = max(maxRound, m.Round)
	}
	if maxRound == 0 {
		return []RoundProgress{}
	}

	out := make([]RoundProgress, maxRound)
	for i := range out {
		out[i].Round = i + 1
	}
	for _, m := range matches {
		if m.Round < 1 {
			continue
		}
		out[m.Round-1].Total++
		if m.IsCompleted() {
			out[m.Round-1].Completed++
		}
	}
	return out
}
