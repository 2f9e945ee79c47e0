package standings

// Totals are the raw cumulative counters of one team.
type Totals struct {
	TeamID       string
	Played       int
	Won          int
	Lost         int
	Tied         int
	Drawn        int
	NoResult     int
	RunsScored   int
	RunsConceded int
	OversFaced   float64
	OversBowled  float64
	WicketsTaken int
	Points       int
}

// Rates are derived from Totals and are always finite.
type Rates struct {
	ScoringRate float64
	EconomyRate float64
	NetRunRate  float64
}

// Standing is one row of the computed table.
type Standing struct {
	Totals
	Rates
	TeamName string
	Position int
	// IsTied marks a points tie with at least one other team, whatever the final order.
	IsTied bool
}
