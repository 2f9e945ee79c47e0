package schedule

import (
	"errors"
	"fmt"
	"testing"

	"github.com/riskibarqy/cricket-league/internal/domain/match"
)

func teamIDs(n int) []string {
	out := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, fmt.Sprintf("t%d", i))
	}
	return out
}

func TestGenerateRoundRobin_EveryPairMeetsOncePerLeg(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 3, 4, 5, 8, 9} {
		n := n
		t.Run(fmt.Sprintf("%d teams", n), func(t *testing.T) {
			t.Parallel()

			matches, err := GenerateRoundRobin("cup", teamIDs(n), nil, 1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if want := n * (n - 1) / 2; len(matches) != want {
				t.Fatalf("expected %d matches, got %d", want, len(matches))
			}

			wantRounds := n - 1
			if n%2 == 1 {
				wantRounds = n
			}

			pairs := make(map[string]int)
			perRound := make(map[int]map[string]bool)
			for _, m := range matches {
				if m.Team1ID == m.Team2ID {
					t.Fatalf("team %s plays itself", m.Team1ID)
				}
				if m.Status != match.StatusNotStarted || m.Result != nil {
					t.Fatalf("expected fresh fixture, got %+v", m)
				}
				if m.Round < 1 || m.Round > wantRounds {
					t.Fatalf("round %d outside 1..%d", m.Round, wantRounds)
				}

				a, b := m.Team1ID, m.Team2ID
				if a > b {
					a, b = b, a
				}
				pairs[a+"|"+b]++

				seen := perRound[m.Round]
				if seen == nil {
					seen = make(map[string]bool)
					perRound[m.Round] = seen
				}
				if seen[m.Team1ID] || seen[m.Team2ID] {
					t.Fatalf("team repeated within round %d", m.Round)
				}
				seen[m.Team1ID], seen[m.Team2ID] = true, true
			}

			for pair, count := range pairs {
				if count != 1 {
					t.Fatalf("pair %s met %d times", pair, count)
				}
			}
			if len(perRound) != wantRounds {
				t.Fatalf("expected %d rounds, got %d", wantRounds, len(perRound))
			}
			for round, seen := range perRound {
				if len(seen) != 2*(n/2) {
					t.Fatalf("round %d has %d teams, want %d", round, len(seen), 2*(n/2))
				}
			}
		})
	}
}

func TestGenerateRoundRobin_SecondLegSwapsSides(t *testing.T) {
	t.Parallel()

	matches, err := GenerateRoundRobin("cup", teamIDs(4), nil, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 12 {
		t.Fatalf("expected 12 matches, got %d", len(matches))
	}

	ordered := make(map[string]int)
	for _, m := range matches {
		ordered[m.Team1ID+">"+m.Team2ID]++
	}
	for key, count := range ordered {
		if count != 1 {
			t.Fatalf("ordered pairing %s appears %d times", key, count)
		}
	}
	if matches[len(matches)-1].Round != 6 {
		t.Fatalf("expected last round 6, got %d", matches[len(matches)-1].Round)
	}
}

func TestGenerateRoundRobin_RotatesVenuesAndIDs(t *testing.T) {
	t.Parallel()

	venues := []string{"eden", "lords"}
	matches, err := GenerateRoundRobin("cup", teamIDs(4), venues, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ids := make(map[string]bool)
	for i, m := range matches {
		if m.VenueID != venues[i%2] {
			t.Fatalf("match %d venue=%q, want %q", i, m.VenueID, venues[i%2])
		}
		if m.TournamentID != "cup" {
			t.Fatalf("unexpected tournament id %q", m.TournamentID)
		}
		if ids[m.ID] {
			t.Fatalf("duplicate fixture id %s", m.ID)
		}
		ids[m.ID] = true
	}
}

func TestGenerateRoundRobin_Rejects(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		teams []string
		legs  int
		want  error
	}{
		{name: "one team", teams: []string{"a"}, legs: 1, want: ErrNotEnoughTeams},
		{name: "blank ids only", teams: []string{" ", "a"}, legs: 1, want: ErrNotEnoughTeams},
		{name: "duplicate", teams: []string{"a", "b", "a"}, legs: 1, want: ErrDuplicateTeam},
		{name: "three legs", teams: []string{"a", "b"}, legs: 3, want: ErrInvalidLegs},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := GenerateRoundRobin("cup", tc.teams, nil, tc.legs); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
