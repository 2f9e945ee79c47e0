package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(id string, points int, nrr, scoring float64) Standing {
	return Standing{
		Totals: Totals{TeamID: id, Points: points},
		Rates:  Rates{NetRunRate: nrr, ScoringRate: scoring},
	}
}

func ids(items []Standing) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		out = append(out, s.TeamID)
	}
	return out
}

func TestRank_ComparatorChain(t *testing.T) {
	in := []Standing{
		row("low-points", 2, 3.0, 12),
		row("nrr-behind", 4, -0.5, 9),
		row("scoring-behind", 4, 1.25, 7.5),
		row("scoring-ahead", 4, 1.25, 8.1),
	}

	got := Rank(in)
	assert.Equal(t, []string{"scoring-ahead", "scoring-behind", "nrr-behind", "low-points"}, ids(got))
	for i, s := range got {
		assert.Equal(t, i+1, s.Position)
	}
	assert.Equal(t, "low-points", in[0].TeamID, "input must not be reordered")
}

func TestRank_FullTieKeepsInputOrder(t *testing.T) {
	in := []Standing{
		row("first", 0, 0, 0),
		row("second", 0, 0, 0),
		row("third", 0, 0, 0),
	}

	got := Rank(in)
	assert.Equal(t, []string{"first", "second", "third"}, ids(got))
}

func TestRank_TieFlagUsesPointsOnly(t *testing.T) {
	got := Rank([]Standing{
		row("a", 6, 0.4, 8),
		row("b", 6, 1.2, 8),
		row("c", 4, 2.0, 9),
	})

	require.Equal(t, []string{"b", "a", "c"}, ids(got))
	assert.True(t, got[0].IsTied)
	assert.True(t, got[1].IsTied)
	assert.False(t, got[2].IsTied)
}

func TestCompareByChain_EarlyExit(t *testing.T) {
	calls := 0
	chain := []rankKey{
		{name: "points", extract: func(s Standing) float64 { calls++; return float64(s.Points) }, dir: descending},
		{name: "never", extract: func(Standing) float64 { t.Fatalf("second level must not run"); return 0 }, dir: descending},
	}

	assert.Negative(t, compareByChain(chain, row("a", 2, 0, 0), row("b", 1, 0, 0)))
	assert.Equal(t, 2, calls)
}

func TestCompareByChain_Ascending(t *testing.T) {
	chain := []rankKey{{name: "economy", extract: func(s Standing) float64 { return s.EconomyRate }, dir: ascending}}
	a := Standing{Rates: Rates{EconomyRate: 6.5}}
	b := Standing{Rates: Rates{EconomyRate: 7.25}}

	assert.Negative(t, compareByChain(chain, a, b))
	assert.Positive(t, compareByChain(chain, b, a))
	assert.Zero(t, compareByChain(chain, a, a))
}
