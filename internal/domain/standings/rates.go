package standings

// ComputeRates derives scoring, economy and net run rates. A zero denominator yields 0.
func ComputeRates(t Totals) Rates {
	scoring := safeDiv(float64(t.RunsScored), t.OversFaced)
	economy := safeDiv(float64(t.RunsConceded), t.OversBowled)
	return Rates{
		ScoringRate: scoring,
		EconomyRate: economy,
		NetRunRate:  scoring - economy,
	}
}

func safeDiv(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}
