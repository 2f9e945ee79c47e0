package httpapi

import (
	"strconv"
	"time"

	"github.com/riskibarqy/cricket-league/internal/domain/match"
	"github.com/riskibarqy/cricket-league/internal/domain/standings"
	"github.com/riskibarqy/cricket-league/internal/domain/team"
	"github.com/riskibarqy/cricket-league/internal/domain/tournament"
	"github.com/riskibarqy/cricket-league/internal/usecase"
)

type pointsRequest struct {
	Win  int `json:"win"`
	Draw int `json:"draw"`
	Loss int `json:"loss"`
}

type tournamentRequest struct {
	Name         string         `json:"name" validate:"required,max=120"`
	OversFormat  string         `json:"oversFormat" validate:"omitempty,max=20"`
	OversLimit   int            `json:"oversLimit" validate:"required,gt=0,lte=200"`
	Points       *pointsRequest `json:"points"`
	ScheduleType string         `json:"scheduleType" validate:"omitempty,max=40"`
	PlayoffType  string         `json:"playoffType" validate:"omitempty,max=40"`
	GroupCount   int            `json:"groupCount" validate:"gte=0,lte=32"`
	Venues       []string       `json:"venues" validate:"omitempty,max=64,dive,required,max=120"`
}

func (r tournamentRequest) toInput() usecase.TournamentInput {
	input := usecase.TournamentInput{
		Name:         r.Name,
		OversFormat:  r.OversFormat,
		OversLimit:   r.OversLimit,
		ScheduleType: r.ScheduleType,
		PlayoffType:  r.PlayoffType,
		GroupCount:   r.GroupCount,
		Venues:       r.Venues,
	}
	if r.Points != nil {
		input.Points = &tournament.PointsConfig{Win: r.Points.Win, Draw: r.Points.Draw, Loss: r.Points.Loss}
	}
	return input
}

type deleteTournamentRequest struct {
	ConfirmName string `json:"confirmName" validate:"required"`
}

type teamRequest struct {
	Name    string `json:"name" validate:"required,max=80"`
	LogoURL string `json:"logoUrl" validate:"omitempty,url,max=500"`
	Owner   string `json:"owner" validate:"omitempty,max=80"`
}

type generateFixturesRequest struct {
	Legs  int  `json:"legs" validate:"omitempty,oneof=1 2"`
	Force bool `json:"force"`
}

type inningsRequest struct {
	Runs    int `json:"runs" validate:"gte=0"`
	Wickets int `json:"wickets" validate:"gte=0"`
	Overs   int `json:"overs" validate:"gte=0"`
	Balls   int `json:"balls" validate:"gte=0"`
}

func (r inningsRequest) toInnings() match.Innings {
	return match.Innings{Runs: r.Runs, Wickets: r.Wickets, Overs: r.Overs, Balls: r.Balls}
}

type resultRequest struct {
	Team1 inningsRequest `json:"team1"`
	Team2 inningsRequest `json:"team2"`
	Type  string         `json:"type" validate:"omitempty,max=40"`
}

type pointsDTO struct {
	Win  int `json:"win"`
	Draw int `json:"draw"`
	Loss int `json:"loss"`
}

type tournamentDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	OversFormat  string    `json:"oversFormat"`
	OversLimit   int       `json:"oversLimit"`
	Points       pointsDTO `json:"points"`
	ScheduleType string    `json:"scheduleType"`
	PlayoffType  string    `json:"playoffType"`
	GroupCount   int       `json:"groupCount"`
	Venues       []string  `json:"venues"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type teamDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl,omitempty"`
	Owner   string `json:"owner,omitempty"`
}

type inningsDTO struct {
	Runs    int `json:"runs"`
	Wickets int `json:"wickets"`
	Overs   int `json:"overs"`
	Balls   int `json:"balls"`
}

type resultDTO struct {
	Type         string     `json:"type"`
	WinnerTeamID string     `json:"winnerTeamId,omitempty"`
	Team1        inningsDTO `json:"team1"`
	Team2        inningsDTO `json:"team2"`
}

type matchDTO struct {
	ID          string     `json:"id"`
	Round       int        `json:"round"`
	Team1ID     string     `json:"team1Id"`
	Team2ID     string     `json:"team2Id"`
	Venue       string     `json:"venue,omitempty"`
	Status      string     `json:"status"`
	Result      *resultDTO `json:"result,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type standingDTO struct {
	Position     int    `json:"position"`
	TeamID       string `json:"teamId"`
	TeamName     string `json:"teamName"`
	Played       int    `json:"played"`
	Won          int    `json:"won"`
	Lost         int    `json:"lost"`
	Tied         int    `json:"tied"`
	Drawn        int    `json:"drawn"`
	NoResult     int    `json:"noResult"`
	Points       int    `json:"points"`
	NetRunRate   string `json:"netRunRate"`
	ScoringRate  string `json:"scoringRate"`
	EconomyRate  string `json:"economyRate"`
	RunsScored   int    `json:"runsScored"`
	RunsConceded int    `json:"runsConceded"`
	OversFaced   string `json:"oversFaced"`
	OversBowled  string `json:"oversBowled"`
	WicketsTaken int    `json:"wicketsTaken"`
	IsTied       bool   `json:"isTied"`
}

type leaderDTO struct {
	TeamID   string `json:"teamId"`
	TeamName string `json:"teamName"`
	Value    string `json:"value"`
}

type roundProgressDTO struct {
	Round     int `json:"round"`
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

type dashboardDTO struct {
	TopRuns          *leaderDTO         `json:"topRuns"`
	TopWickets       *leaderDTO         `json:"topWickets"`
	BestScoringRate  *leaderDTO         `json:"bestScoringRate"`
	BestEconomy      *leaderDTO         `json:"bestEconomy"`
	Rounds           []roundProgressDTO `json:"rounds"`
	CompletedMatches int                `json:"completedMatches"`
	TotalMatches     int                `json:"totalMatches"`
}

type overviewDTO struct {
	TournamentID     string       `json:"tournamentId"`
	Name             string       `json:"name"`
	OversFormat      string       `json:"oversFormat"`
	TeamCount        int          `json:"teamCount"`
	CompletedMatches int          `json:"completedMatches"`
	TotalMatches     int          `json:"totalMatches"`
	Leader           *standingDTO `json:"leader,omitempty"`
	Error            string       `json:"error,omitempty"`
}

type estimateDTO struct {
	Teams        int    `json:"teams"`
	ScheduleType string `json:"scheduleType"`
	GroupCount   int    `json:"groupCount"`
	PlayoffType  string `json:"playoffType"`
	Matches      int    `json:"matches"`
}

func tournamentToDTO(v tournament.Tournament) tournamentDTO {
	venues := v.Venues
	if venues == nil {
		venues = []string{}
	}
	return tournamentDTO{
		ID:           v.ID,
		Name:         v.Name,
		OversFormat:  string(v.OversFormat),
		OversLimit:   v.OversLimit,
		Points:       pointsDTO{Win: v.Points.Win, Draw: v.Points.Draw, Loss: v.Points.Loss},
		ScheduleType: string(v.ScheduleType),
		PlayoffType:  string(v.PlayoffType),
		GroupCount:   v.GroupCount,
		Venues:       venues,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{ID: v.ID, Name: v.Name, LogoURL: v.LogoURL, Owner: v.Owner}
}

func inningsToDTO(v match.Innings) inningsDTO {
	return inningsDTO{Runs: v.Runs, Wickets: v.Wickets, Overs: v.Overs, Balls: v.Balls}
}

func matchToDTO(v match.Match) matchDTO {
	out := matchDTO{
		ID:          v.ID,
		Round:       v.Round,
		Team1ID:     v.Team1ID,
		Team2ID:     v.Team2ID,
		Venue:       v.VenueID,
		Status:      string(v.Status),
		CompletedAt: v.CompletedAt,
	}
	if v.Result != nil {
		out.Result = &resultDTO{
			Type:         string(v.Result.Type),
			WinnerTeamID: v.Result.WinnerTeamID,
			Team1:        inningsToDTO(v.Result.Team1),
			Team2:        inningsToDTO(v.Result.Team2),
		}
	}
	return out
}

func standingToDTO(v standings.Standing, format tournament.OversFormat) standingDTO {
	return standingDTO{
		Position:     v.Position,
		TeamID:       v.TeamID,
		TeamName:     v.TeamName,
		Played:       v.Played,
		Won:          v.Won,
		Lost:         v.Lost,
		Tied:         v.Tied,
		Drawn:        v.Drawn,
		NoResult:     v.NoResult,
		Points:       v.Points,
		NetRunRate:   standings.FormatRate(v.NetRunRate),
		ScoringRate:  standings.FormatRate(v.ScoringRate),
		EconomyRate:  standings.FormatRate(v.EconomyRate),
		RunsScored:   v.RunsScored,
		RunsConceded: v.RunsConceded,
		OversFaced:   standings.FormatOvers(v.OversFaced, format),
		OversBowled:  standings.FormatOvers(v.OversBowled, format),
		WicketsTaken: v.WicketsTaken,
		IsTied:       v.IsTied,
	}
}

func standingsToDTO(items []standings.Standing, format tournament.OversFormat) []standingDTO {
	out := make([]standingDTO, 0, len(items))
	for _, item := range items {
		out = append(out, standingToDTO(item, format))
	}
	return out
}

func leaderToDTO(v *standings.Leader, render func(float64) string) *leaderDTO {
	if v == nil {
		return nil
	}
	return &leaderDTO{TeamID: v.TeamID, TeamName: v.TeamName, Value: render(v.Value)}
}

func dashboardToDTO(v standings.Dashboard) dashboardDTO {
	count := func(f float64) string { return strconv.FormatFloat(f, 'f', 0, 64) }
	rounds := make([]roundProgressDTO, 0, len(v.Rounds))
	for _, r := range v.Rounds {
		rounds = append(rounds, roundProgressDTO{Round: r.Round, Completed: r.Completed, Total: r.Total})
	}
	return dashboardDTO{
		TopRuns:          leaderToDTO(v.TopRuns, count),
		TopWickets:       leaderToDTO(v.TopWickets, count),
		BestScoringRate:  leaderToDTO(v.BestScoringRate, standings.FormatRate),
		BestEconomy:      leaderToDTO(v.BestEconomy, standings.FormatRate),
		Rounds:           rounds,
		CompletedMatches: v.CompletedMatches,
		TotalMatches:     v.TotalMatches,
	}
}

func overviewToDTO(v usecase.OverviewItem) overviewDTO {
	out := overviewDTO{
		TournamentID:     v.TournamentID,
		Name:             v.Name,
		OversFormat:      string(v.OversFormat),
		TeamCount:        v.TeamCount,
		CompletedMatches: v.CompletedMatches,
		TotalMatches:     v.TotalMatches,
	}
	if v.Leader != nil {
		leader := standingToDTO(*v.Leader, v.OversFormat)
		out.Leader = &leader
	}
	if v.Err != nil {
		out.Error = v.Err.Error()
	}
	return out
}
