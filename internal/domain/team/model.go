package team

import "fmt"

// Team is a side entered in a tournament. LogoURL and Owner are display-only.
type Team struct {
	ID           string
	TournamentID string
	Name         string
	LogoURL      string
	Owner        string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.TournamentID == "" {
		return fmt.Errorf("team tournament id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
