package tournament

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// OversFormat selects how innings volume is accounted.
type OversFormat string

const (
	// OversFormatStandard counts whole overs plus balls within the current over.
	OversFormatStandard OversFormat = "STANDARD"
	// OversFormatBalls records the innings length as a raw ball count.
	OversFormatBalls OversFormat = "BALLS"
)

type ScheduleType string

const (
	ScheduleSingleRoundRobin ScheduleType = "single_round_robin"
	ScheduleDoubleRoundRobin ScheduleType = "double_round_robin"
	ScheduleOneAndHalfRobin  ScheduleType = "one_and_half_round_robin"
	ScheduleGroupStage       ScheduleType = "group_stage"
	ScheduleKnockout         ScheduleType = "knockout"
	ScheduleDoubleElim       ScheduleType = "double_elimination"
)

type PlayoffType string

const (
	PlayoffNone       PlayoffType = "none"
	PlayoffSemiFinal  PlayoffType = "semi_final"
	PlayoffPage       PlayoffType = "page_playoff"
	PlayoffFinalOnly  PlayoffType = "final_only"
	PlayoffTopEight   PlayoffType = "top_eight"
	PlayoffStepladder PlayoffType = "stepladder"
)

var (
	ErrInvalidOversFormat  = errors.New("invalid overs format")
	ErrInvalidScheduleType = errors.New("invalid schedule type")
	ErrInvalidPlayoffType  = errors.New("invalid playoff type")
)

// PointsConfig holds the points awarded per result. Values may be zero or negative.
type PointsConfig struct {
	Win  int
	Draw int
	Loss int
}

func DefaultPoints() PointsConfig {
	return PointsConfig{Win: 2, Draw: 1, Loss: 0}
}

// Tournament is the enclosing record that owns teams and matches.
type Tournament struct {
	ID           string
	Name         string
	OversFormat  OversFormat
	OversLimit   int
	Points       PointsConfig
	ScheduleType ScheduleType
	PlayoffType  PlayoffType
	GroupCount   int
	Venues       []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (t Tournament) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("tournament id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("tournament name is required")
	}
	if t.OversLimit <= 0 {
		return fmt.Errorf("overs limit must be greater than zero")
	}
	if !IsValidOversFormat(t.OversFormat) {
		return fmt.Errorf("%w: %q", ErrInvalidOversFormat, t.OversFormat)
	}
	if !IsValidScheduleType(t.ScheduleType) {
		return fmt.Errorf("%w: %q", ErrInvalidScheduleType, t.ScheduleType)
	}
	if !IsValidPlayoffType(t.PlayoffType) {
		return fmt.Errorf("%w: %q", ErrInvalidPlayoffType, t.PlayoffType)
	}
	if t.ScheduleType == ScheduleGroupStage && t.GroupCount < 1 {
		return fmt.Errorf("group count must be >= 1 for group stage")
	}

	return nil
}

func IsValidOversFormat(v OversFormat) bool {
	switch v {
	case OversFormatStandard, OversFormatBalls:
		return true
	default:
		return false
	}
}

func IsValidScheduleType(v ScheduleType) bool {
	switch v {
	case ScheduleSingleRoundRobin, ScheduleDoubleRoundRobin, ScheduleOneAndHalfRobin,
		ScheduleGroupStage, ScheduleKnockout, ScheduleDoubleElim:
		return true
	default:
		return false
	}
}

func IsValidPlayoffType(v PlayoffType) bool {
	switch v {
	case PlayoffNone, PlayoffSemiFinal, PlayoffPage, PlayoffFinalOnly, PlayoffTopEight, PlayoffStepladder:
		return true
	default:
		return false
	}
}

// NormalizeOversFormat maps free-form input onto a known format, defaulting to standard.
func NormalizeOversFormat(v string) OversFormat {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case string(OversFormatBalls), "BALL", "HUNDRED":
		return OversFormatBalls
	default:
		return OversFormatStandard
	}
}

var scheduleAliases = map[string]ScheduleType{
	"":             ScheduleSingleRoundRobin,
	"single":       ScheduleSingleRoundRobin,
	"double":       ScheduleDoubleRoundRobin,
	"one_and_half": ScheduleOneAndHalfRobin,
	"1.5":          ScheduleOneAndHalfRobin,
	"group":        ScheduleGroupStage,
	"groups":       ScheduleGroupStage,
	"ko":           ScheduleKnockout,
	"double_elim":  ScheduleDoubleElim,
}

var playoffAliases = map[string]PlayoffType{
	"":       PlayoffNone,
	"semi":   PlayoffSemiFinal,
	"semis":  PlayoffSemiFinal,
	"page":   PlayoffPage,
	"final":  PlayoffFinalOnly,
	"top8":   PlayoffTopEight,
	"ladder": PlayoffStepladder,
}

// NormalizeScheduleType lowercases v and resolves short aliases. Unknown values pass through for Validate to reject.
func NormalizeScheduleType(v string) ScheduleType {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(v)), "-", "_")
	if alias, ok := scheduleAliases[key]; ok {
		return alias
	}
	return ScheduleType(key)
}

// NormalizePlayoffType lowercases v and resolves short aliases. Unknown values pass through for Validate to reject.
func NormalizePlayoffType(v string) PlayoffType {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(v)), "-", "_")
	if alias, ok := playoffAliases[key]; ok {
		return alias
	}
	return PlayoffType(key)
}
