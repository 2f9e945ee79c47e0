package standings

import (
	"github.com/riskibarqy/cricket-league/internal/domain/match"
	"github.com/riskibarqy/cricket-league/internal/domain/tournament"
)

// BallCountPoints is the fixed points table of the ball-count format.
var BallCountPoints = tournament.PointsConfig{Win: 4, Draw: 2, Loss: 0}

// OversRegime is the overs-accounting policy of a tournament. Innings volume is
// measured in whole units so that sums stay exact; UnitsPerOver converts back.
type OversRegime interface {
	Format() tournament.OversFormat
	// Units returns the innings volume in regime units, applying the all-out rule.
	Units(in match.Innings, oversLimit int) int
	UnitsPerOver() int
	// Points returns the points table actually in force.
	Points(configured tournament.PointsConfig) tournament.PointsConfig
}

var (
	Standard  OversRegime = standardRegime{}
	BallCount OversRegime = ballCountRegime{}
)

// RegimeFor resolves the policy for a tournament format. Unknown formats are standard.
func RegimeFor(format tournament.OversFormat) OversRegime {
	if format == tournament.OversFormatBalls {
		return BallCount
	}
	return Standard
}

// Volume is the overs faced or bowled for one innings.
func Volume(regime OversRegime, in match.Innings, oversLimit int) float64 {
	return float64(regime.Units(in, oversLimit)) / float64(regime.UnitsPerOver())
}

func isAllOut(in match.Innings) bool {
	return in.Wickets >= match.MaxWickets
}

type standardRegime struct{}

func (standardRegime) Format() tournament.OversFormat { return tournament.OversFormatStandard }

func (standardRegime) UnitsPerOver() int { return match.BallsPerOver }

func (standardRegime) Units(in match.Innings, oversLimit int) int {
	if isAllOut(in) {
		return oversLimit * match.BallsPerOver
	}
	return in.Overs*match.BallsPerOver + in.Balls
}

func (standardRegime) Points(configured tournament.PointsConfig) tournament.PointsConfig {
	return configured
}

type ballCountRegime struct{}

func (ballCountRegime) Format() tournament.OversFormat { return tournament.OversFormatBalls }

func (ballCountRegime) UnitsPerOver() int { return 1 }

// Units ignores Balls: the overs field already holds the delivery count.
func (ballCountRegime) Units(in match.Innings, oversLimit int) int {
	if isAllOut(in) {
		return oversLimit
	}
	return in.Overs
}

func (ballCountRegime) Points(tournament.PointsConfig) tournament.PointsConfig {
	return BallCountPoints
}
