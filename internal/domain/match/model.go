package match

import (
	"strings"
	"time"
)

type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

type ResultType string

const (
	ResultFirstBattingWin  ResultType = "FIRST_BATTING_WIN"
	ResultSecondBattingWin ResultType = "SECOND_BATTING_WIN"
	ResultTie              ResultType = "TIE"
	ResultDraw             ResultType = "DRAW"
	ResultNoResult         ResultType = "NO_RESULT"
	ResultAbandoned        ResultType = "ABANDONED"
)

const (
	MaxWickets   = 10
	MaxRuns      = 9999
	BallsPerOver = 6
)

// Innings is one side's final score. Team1 always bats first.
type Innings struct {
	Runs    int
	Wickets int
	Overs   int
	Balls   int
}

// Result is populated only once a match is completed.
type Result struct {
	Type         ResultType
	WinnerTeamID string
	Team1        Innings
	Team2        Innings
}

// Match is one fixture between two teams of a tournament.
type Match struct {
	ID           string
	TournamentID string
	Round        int
	Team1ID      string
	Team2ID      string
	VenueID      string
	Status       Status
	Result       *Result
	CompletedAt  *time.Time
}

func (m Match) IsCompleted() bool {
	return m.Status == StatusCompleted
}

// Outcome is the classification of two final totals.
type Outcome struct {
	Type         ResultType
	WinnerTeamID string
}

func NormalizeStatus(value string) Status {
	status := strings.ToUpper(strings.TrimSpace(value))
	switch Status(status) {
	case StatusInProgress, StatusCompleted:
		return Status(status)
	default:
		return StatusNotStarted
	}
}

func IsValidResultType(v ResultType) bool {
	switch v {
	case ResultFirstBattingWin, ResultSecondBattingWin, ResultTie, ResultDraw, ResultNoResult, ResultAbandoned:
		return true
	default:
		return false
	}
}

// ClampInnings bounds an entered innings to the caps enforced at result entry.
// ballCount drops the within-over remainder since that format records balls directly.
func ClampInnings(in Innings, oversLimit int, ballCount bool) Innings {
	out := Innings{
		Runs:    clamp(in.Runs, 0, MaxRuns),
		Wickets: clamp(in.Wickets, 0, MaxWickets),
		Overs:   clamp(in.Overs, 0, max(oversLimit, 0)),
		Balls:   clamp(in.Balls, 0, BallsPerOver-1),
	}
	if ballCount || out.Overs == oversLimit {
		out.Balls = 0
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
