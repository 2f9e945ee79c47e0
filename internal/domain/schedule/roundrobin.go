package schedule

import (
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/cricket-league/internal/domain/match"
)

var (
	ErrNotEnoughTeams = errors.New("round robin requires at least 2 teams")
	ErrDuplicateTeam  = errors.New("duplicate team in fixture list")
	ErrInvalidLegs    = errors.New("legs must be 1 or 2")
)

const bye = ""

// GenerateRoundRobin pairs teams with the circle method. Each round holds floor(N/2)
// matches and no team appears twice in a round. N-1 rounds per leg for even N, N for odd N.
// A second leg repeats the pairings with batting order swapped.
func GenerateRoundRobin(tournamentID string, teamIDs, venueIDs []string, legs int) ([]match.Match, error) {
	if legs != 1 && legs != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLegs, legs)
	}

	slots := make([]string, 0, len(teamIDs)+1)
	seen := make(map[string]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTeam, id)
		}
		seen[id] = struct{}{}
		slots = append(slots, id)
	}
	if len(slots) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrNotEnoughTeams, len(slots))
	}
	if len(slots)%2 == 1 {
		slots = append(slots, bye)
	}

	n := len(slots)
	roundsPerLeg := n - 1
	pairings := make([][][2]string, 0, roundsPerLeg)
	for r := 0; r < roundsPerLeg; r++ {
		round := make([][2]string, 0, n/2)
		for i := 0; i < n/2; i++ {
			first, second := slots[i], slots[n-1-i]
			if first == bye || second == bye {
				continue
			}
			// The anchored team alternates batting order between rounds.
			if i == 0 && r%2 == 1 {
				first, second = second, first
			}
			round = append(round, [2]string{first, second})
		}
		pairings = append(pairings, round)
		rotate(slots)
	}

	out := make([]match.Match, 0, legs*roundsPerLeg*(n/2))
	for leg := 0; leg < legs; leg++ {
		for r, round := range pairings {
			roundNo := leg*roundsPerLeg + r + 1
			for i, pair := range round {
				team1, team2 := pair[0], pair[1]
				if leg == 1 {
					team1, team2 = team2, team1
				}
				out = append(out, match.Match{
					ID:           fixtureID(tournamentID, roundNo, i+1),
					TournamentID: tournamentID,
					Round:        roundNo,
					Team1ID:      team1,
					Team2ID:      team2,
					VenueID:      pickVenue(venueIDs, len(out)),
					Status:       match.StatusNotStarted,
				})
			}
		}
	}

	return out, nil
}

// rotate keeps slot 0 fixed and moves every other slot one place clockwise.
func rotate(slots []string) {
	if len(slots) < 3 {
		return
	}
	last := slots[len(slots)-1]
	copy(slots[2:], slots[1:len(slots)-1])
	slots[1] = last
}

func pickVenue(venueIDs []string, idx int) string {
	if len(venueIDs) == 0 {
		return ""
	}
	return venueIDs[idx%len(venueIDs)]
}

func fixtureID(tournamentID string, round, order int) string {
	return fmt.Sprintf("%s-r%02d-m%02d", tournamentID, round, order)
}
