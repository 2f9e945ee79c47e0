package standings

import (
	"testing"

	"github.com/riskibarqy/cricket-league/internal/domain/match"
	"github.com/riskibarqy/cricket-league/internal/domain/tournament"
	"github.com/stretchr/testify/assert"
)

func TestVolume(t *testing.T) {
	tests := []struct {
		name   string
		regime OversRegime
		in     match.Innings
		limit  int
		want   float64
	}{
		{name: "standard full overs", regime: Standard, in: match.Innings{Runs: 180, Wickets: 6, Overs: 20}, limit: 20, want: 20},
		{name: "standard partial over", regime: Standard, in: match.Innings{Runs: 120, Wickets: 9, Overs: 18, Balls: 3}, limit: 20, want: 18.5},
		{name: "standard all out credited full limit", regime: Standard, in: match.Innings{Runs: 150, Wickets: 10, Overs: 18, Balls: 3}, limit: 20, want: 20},
		{name: "standard all out with nothing recorded", regime: Standard, in: match.Innings{Wickets: 10}, limit: 50, want: 50},
		{name: "ball count raw", regime: BallCount, in: match.Innings{Runs: 140, Wickets: 7, Overs: 85}, limit: 100, want: 85},
		{name: "ball count ignores balls field", regime: BallCount, in: match.Innings{Overs: 85, Balls: 4}, limit: 100, want: 85},
		{name: "ball count all out", regime: BallCount, in: match.Innings{Wickets: 10, Overs: 72}, limit: 100, want: 100},
		{name: "missing values are zero", regime: Standard, in: match.Innings{}, limit: 20, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Volume(tt.regime, tt.in, tt.limit))
		})
	}
}

func TestRegimePoints(t *testing.T) {
	configured := tournament.PointsConfig{Win: 3, Draw: 1, Loss: -1}

	assert.Equal(t, configured, Standard.Points(configured))
	assert.Equal(t, tournament.PointsConfig{Win: 4, Draw: 2, Loss: 0}, BallCount.Points(configured))
}

func TestRegimeFor(t *testing.T) {
	assert.Equal(t, BallCount, RegimeFor(tournament.OversFormatBalls))
	assert.Equal(t, Standard, RegimeFor(tournament.OversFormatStandard))
	assert.Equal(t, Standard, RegimeFor("whatever"))
}
