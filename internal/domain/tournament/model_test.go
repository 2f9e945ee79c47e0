package tournament

import (
	"errors"
	"testing"
)

func validTournament() Tournament {
	return Tournament{
		ID:           "cup",
		Name:         "Summer Cup",
		OversFormat:  OversFormatStandard,
		OversLimit:   20,
		Points:       DefaultPoints(),
		ScheduleType: ScheduleSingleRoundRobin,
		PlayoffType:  PlayoffNone,
	}
}

func TestValidate(t *testing.T) {
	if err := validTournament().Validate(); err != nil {
		t.Fatalf("expected valid tournament, got %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*Tournament)
		wantErr error
	}{
		{name: "missing name", mutate: func(v *Tournament) { v.Name = "  " }},
		{name: "zero overs limit", mutate: func(v *Tournament) { v.OversLimit = 0 }},
		{name: "unknown format", mutate: func(v *Tournament) { v.OversFormat = "TEST" }, wantErr: ErrInvalidOversFormat},
		{name: "unknown schedule", mutate: func(v *Tournament) { v.ScheduleType = "swiss" }, wantErr: ErrInvalidScheduleType},
		{name: "unknown playoff", mutate: func(v *Tournament) { v.PlayoffType = "super_eight" }, wantErr: ErrInvalidPlayoffType},
		{name: "group stage without groups", mutate: func(v *Tournament) { v.ScheduleType = ScheduleGroupStage }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validTournament()
			tt.mutate(&item)
			err := item.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNormalizeOversFormat(t *testing.T) {
	if got := NormalizeOversFormat(" balls "); got != OversFormatBalls {
		t.Fatalf("unexpected format: %s", got)
	}
	if got := NormalizeOversFormat("Hundred"); got != OversFormatBalls {
		t.Fatalf("unexpected format: %s", got)
	}
	if got := NormalizeOversFormat(""); got != OversFormatStandard {
		t.Fatalf("unexpected default format: %s", got)
	}
}

func TestNormalizeScheduleAndPlayoff(t *testing.T) {
	schedules := map[string]ScheduleType{
		"":                   ScheduleSingleRoundRobin,
		"single":             ScheduleSingleRoundRobin,
		"Double":             ScheduleDoubleRoundRobin,
		"double-round-robin": ScheduleDoubleRoundRobin,
		"1.5":                ScheduleOneAndHalfRobin,
		"groups":             ScheduleGroupStage,
		"swiss":              ScheduleType("swiss"),
	}
	for in, want := range schedules {
		if got := NormalizeScheduleType(in); got != want {
			t.Fatalf("NormalizeScheduleType(%q)=%s want=%s", in, got, want)
		}
	}

	playoffs := map[string]PlayoffType{
		"":           PlayoffNone,
		"semi":       PlayoffSemiFinal,
		"page":       PlayoffPage,
		"top8":       PlayoffTopEight,
		"STEPLADDER": PlayoffStepladder,
	}
	for in, want := range playoffs {
		if got := NormalizePlayoffType(in); got != want {
			t.Fatalf("NormalizePlayoffType(%q)=%s want=%s", in, got, want)
		}
	}
}
