package standings

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/riskibarqy/cricket-league/internal/domain/match"
	"github.com/riskibarqy/cricket-league/internal/domain/tournament"
)

// FormatRate renders a rate to three decimals. Values that round to zero print as 0.000, never -0.000.
func FormatRate(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0.000"
	}
	return decimal.NewFromFloat(v).Round(3).StringFixed(3)
}

// FormatOvers renders an accumulated volume the way a scorecard does: 19.2 means nineteen
// overs and two balls in the standard format, a plain count in the ball-count format.
func FormatOvers(v float64, format tournament.OversFormat) string {
	if format == tournament.OversFormatBalls {
		return decimal.NewFromFloat(v).Round(0).String()
	}
	balls := int(math.Round(v * match.BallsPerOver))
	return fmt.Sprintf("%d.%d", balls/match.BallsPerOver, balls%match.BallsPerOver)
}
