package standings

import (
	"cmp"
	"slices"
)

type direction int

const (
	descending direction = iota
	ascending
)

// rankKey is one level of the ranking comparator.
type rankKey struct {
	name    string
	extract func(Standing) float64
	dir     direction
}

// rankingChain is evaluated in order; the first non-equal level decides.
var rankingChain = []rankKey{
	{name: "points", extract: func(s Standing) float64 { return float64(s.Points) }, dir: descending},
	{name: "net_run_rate", extract: func(s Standing) float64 { return s.NetRunRate }, dir: descending},
	{name: "scoring_rate", extract: func(s Standing) float64 { return s.ScoringRate }, dir: descending},
}

// compareByChain returns a negative value when a ranks above b.
func compareByChain(chain []rankKey, a, b Standing) int {
	for _, key := range chain {
		c := cmp.Compare(key.extract(a), key.extract(b))
		if c == 0 {
			continue
		}
		if key.dir == descending {
			return -c
		}
		return c
	}
	return 0
}

// Rank orders standings with a stable sort, so rows equal on every level keep
// their input order. It assigns positions from 1 and flags points ties.
func Rank(items []Standing) []Standing {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b Standing) int {
		return compareByChain(rankingChain, a, b)
	})

	pointsCount := make(map[int]int, len(out))
	for _, s := range out {
		pointsCount[s.Points]++
	}
	for i := range out {
		out[i].Position = i + 1
		out[i].IsTied = pointsCount[out[i].Points] > 1
	}
	return out
}
