package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"
	"github.com/xuri/excelize/v2"

	"github.com/riskibarqy/cricket-league/internal/domain/standings"
	"github.com/riskibarqy/cricket-league/internal/domain/tournament"
	"github.com/riskibarqy/cricket-league/internal/platform/logging"
)

type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportXLSX ExportFormat = "xlsx"

	standingsSheet = "Standings"
	dashboardSheet = "Dashboard"
)

type Export struct {
	Filename    string
	ContentType string
	Body        []byte
}

var standingsHeader = []string{
	"Pos", "Team", "P", "W", "L", "T", "D", "NR", "Pts",
	"Runs For", "Overs Faced", "Runs Against", "Overs Bowled", "Wkts",
	"Scoring Rate", "Economy", "NRR", "Tied",
}

type ExportService struct {
	tables tableProvider
	logger *logging.Logger
}

func NewExportService(tables tableProvider, logger *logging.Logger) *ExportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ExportService{tables: tables, logger: logger}
}

func ParseExportFormat(value string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(value))) {
	case "", ExportCSV:
		return ExportCSV, nil
	case ExportXLSX:
		return ExportXLSX, nil
	default:
		return "", fmt.Errorf("%w: unsupported export format %q", ErrInvalidInput, value)
	}
}

func (s *ExportService) Export(ctx context.Context, tournamentID string, format ExportFormat) (Export, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExportService.Export", tournamentAttr(tournamentID))
	defer span.End()

	result, err := s.tables.Table(ctx, tournamentID)
	if err != nil {
		return Export{}, err
	}

	base := exportBaseName(result.Tournament)
	switch format {
	case ExportXLSX:
		body, err := standingsXLSX(result)
		if err != nil {
			return Export{}, err
		}
		return Export{
			Filename:    base + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Body:        body,
		}, nil
	case ExportCSV:
		body, err := standingsCSV(result)
		if err != nil {
			return Export{}, err
		}
		return Export{
			Filename:    base + ".csv",
			ContentType: "text/csv; charset=utf-8",
			Body:        body,
		}, nil
	default:
		return Export{}, fmt.Errorf("%w: unsupported export format %q", ErrInvalidInput, format)
	}
}

func standingsRows(result TournamentTable) [][]string {
	format := result.Table.Format
	rows := make([][]string, 0, len(result.Table.Standings))
	for _, row := range result.Table.Standings {
		rows = append(rows, []string{
			strconv.Itoa(row.Position),
			row.TeamName,
			strconv.Itoa(row.Played),
			strconv.Itoa(row.Won),
			strconv.Itoa(row.Lost),
			strconv.Itoa(row.Tied),
			strconv.Itoa(row.Drawn),
			strconv.Itoa(row.NoResult),
			strconv.Itoa(row.Points),
			strconv.Itoa(row.RunsScored),
			standings.FormatOvers(row.OversFaced, format),
			strconv.Itoa(row.RunsConceded),
			standings.FormatOvers(row.OversBowled, format),
			strconv.Itoa(row.WicketsTaken),
			standings.FormatRate(row.ScoringRate),
			standings.FormatRate(row.EconomyRate),
			standings.FormatRate(row.NetRunRate),
			strconv.FormatBool(row.IsTied),
		})
	}
	return rows
}

func standingsCSV(result TournamentTable) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	w := csv.NewWriter(buf)
	if err := w.Write(standingsHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	if err := w.WriteAll(standingsRows(result)); err != nil {
		return nil, fmt.Errorf("write csv rows: %w", err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}

func standingsXLSX(result TournamentTable) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), standingsSheet); err != nil {
		return nil, fmt.Errorf("rename standings sheet: %w", err)
	}

	rows := append([][]string{standingsHeader}, standingsRows(result)...)
	if err := writeSheetRows(f, standingsSheet, rows); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(dashboardSheet); err != nil {
		return nil, fmt.Errorf("create dashboard sheet: %w", err)
	}
	if err := writeSheetRows(f, dashboardSheet, dashboardRows(result.Table.Dashboard)); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func dashboardRows(d standings.Dashboard) [][]string {
	leader := func(label string, l *standings.Leader, value func(float64) string) []string {
		if l == nil {
			return []string{label, "-", ""}
		}
		return []string{label, l.TeamName, value(l.Value)}
	}
	count := func(v float64) string { return strconv.Itoa(int(v)) }

	rows := [][]string{
		{"Metric", "Team", "Value"},
		leader("Most runs", d.TopRuns, count),
		leader("Most wickets", d.TopWickets, count),
		leader("Best scoring rate", d.BestScoringRate, standings.FormatRate),
		leader("Best economy", d.BestEconomy, standings.FormatRate),
		{},
		{"Round", "Completed", "Total"},
	}
	for _, r := range d.Rounds {
		rows = append(rows, []string{strconv.Itoa(r.Round), strconv.Itoa(r.Completed), strconv.Itoa(r.Total)})
	}
	return rows
}

func writeSheetRows(f *excelize.File, sheet string, rows [][]string) error {
	for idx, row := range rows {
		axis, err := excelize.CoordinatesToCellName(1, idx+1)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		cells := make([]any, len(row))
		for i, v := range row {
			cells[i] = v
		}
		if err := f.SetSheetRow(sheet, axis, &cells); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, idx+1, err)
		}
	}
	return nil
}

func exportBaseName(t tournament.Tournament) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, strings.TrimSpace(t.Name))
	name = strings.Trim(name, "-")
	if name == "" {
		name = t.ID
	}
	return name + "-standings"
}
