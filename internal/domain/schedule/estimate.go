package schedule

import "github.com/riskibarqy/cricket-league/internal/domain/tournament"

var playoffMatches = map[tournament.PlayoffType]int{
	tournament.PlayoffNone:       0,
	tournament.PlayoffSemiFinal:  3,
	tournament.PlayoffPage:       4,
	tournament.PlayoffFinalOnly:  1,
	tournament.PlayoffTopEight:   7,
	tournament.PlayoffStepladder: 3,
}

// EstimateMatchCount is the display-only total of matches a format needs, playoffs included.
func EstimateMatchCount(teams int, scheduleType tournament.ScheduleType, groupCount int, playoff tournament.PlayoffType) int {
	if teams < 2 {
		return 0
	}

	var base int
	switch scheduleType {
	case tournament.ScheduleDoubleRoundRobin:
		base = teams * (teams - 1)
	case tournament.ScheduleOneAndHalfRobin:
		base = teams*(teams-1)/2 + teams/2
	case tournament.ScheduleGroupStage:
		if groupCount < 1 {
			groupCount = 1
		}
		perGroup := (teams + groupCount - 1) / groupCount
		base = groupCount * choose2(perGroup)
	case tournament.ScheduleKnockout:
		base = teams - 1
	case tournament.ScheduleDoubleElim:
		base = 2*teams - 2
	default:
		base = teams * (teams - 1) / 2
	}

	return base + playoffMatches[playoff]
}

func choose2(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}
