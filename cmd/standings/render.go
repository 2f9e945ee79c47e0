package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/bytedance/sonic"

	"github.com/riskibarqy/cricket-league/internal/domain/match"
	"github.com/riskibarqy/cricket-league/internal/domain/standings"
)

type standingRow struct {
	Position    int    `json:"position"`
	Team        string `json:"team"`
	Played      int    `json:"played"`
	Won         int    `json:"won"`
	Lost        int    `json:"lost"`
	Tied        int    `json:"tied"`
	Drawn       int    `json:"drawn"`
	NoResult    int    `json:"noResult"`
	Points      int    `json:"points"`
	NetRunRate  string `json:"netRunRate"`
	ScoringRate string `json:"scoringRate"`
	EconomyRate string `json:"economyRate"`
	OversFaced  string `json:"oversFaced"`
	OversBowled string `json:"oversBowled"`
	IsTied      bool   `json:"isTied"`
}

func rowsFor(table standings.Table) []standingRow {
	rows := make([]standingRow, 0, len(table.Standings))
	for _, s := range table.Standings {
		rows = append(rows, standingRow{
			Position:    s.Position,
			Team:        s.TeamName,
			Played:      s.Played,
			Won:         s.Won,
			Lost:        s.Lost,
			Tied:        s.Tied,
			Drawn:       s.Drawn,
			NoResult:    s.NoResult,
			Points:      s.Points,
			NetRunRate:  standings.FormatRate(s.NetRunRate),
			ScoringRate: standings.FormatRate(s.ScoringRate),
			EconomyRate: standings.FormatRate(s.EconomyRate),
			OversFaced:  standings.FormatOvers(s.OversFaced, table.Format),
			OversBowled: standings.FormatOvers(s.OversBowled, table.Format),
			IsTied:      s.IsTied,
		})
	}
	return rows
}

func renderTable(w io.Writer, table standings.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "POS\tTEAM\tP\tW\tL\tT\tD\tNR\tPTS\tNRR\tRR\tECON")
	for _, row := range rowsFor(table) {
		pos := strconv.Itoa(row.Position)
		if row.IsTied {
			pos += "="
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%s\t%s\t%s\n",
			pos, row.Team, row.Played, row.Won, row.Lost, row.Tied, row.Drawn, row.NoResult,
			row.Points, row.NetRunRate, row.ScoringRate, row.EconomyRate)
	}
	return tw.Flush()
}

func renderDashboard(w io.Writer, d standings.Dashboard) error {
	fmt.Fprintf(w, "\nmatches completed: %d/%d\n", d.CompletedMatches, d.TotalMatches)
	count := func(v float64) string { return strconv.FormatFloat(v, 'f', 0, 64) }
	printLeader(w, "most runs", d.TopRuns, count)
	printLeader(w, "most wickets", d.TopWickets, count)
	printLeader(w, "best run rate", d.BestScoringRate, standings.FormatRate)
	printLeader(w, "best economy", d.BestEconomy, standings.FormatRate)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROUND\tCOMPLETED\tTOTAL")
	for _, r := range d.Rounds {
		fmt.Fprintf(tw, "%d\t%d\t%d\n", r.Round, r.Completed, r.Total)
	}
	return tw.Flush()
}

func printLeader(w io.Writer, label string, l *standings.Leader, render func(float64) string) {
	if l == nil {
		fmt.Fprintf(w, "%s: -\n", label)
		return
	}
	fmt.Fprintf(w, "%s: %s (%s)\n", label, l.TeamName, render(l.Value))
}

func renderJSON(w io.Writer, table standings.Table, withDashboard bool) error {
	payload := map[string]any{
		"oversFormat": table.Format,
		"standings":   rowsFor(table),
	}
	if withDashboard {
		payload["completedMatches"] = table.Dashboard.CompletedMatches
		payload["totalMatches"] = table.Dashboard.TotalMatches
	}
	out, err := sonic.ConfigStd.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode standings: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func renderFixtures(w io.Writer, matches []match.Match) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROUND\tMATCH\tBATS FIRST\tBATS SECOND\tVENUE")
	for _, m := range matches {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", m.Round, m.ID, m.Team1ID, m.Team2ID, m.VenueID)
	}
	return tw.Flush()
}
