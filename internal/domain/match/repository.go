package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	ListByTournament(ctx context.Context, tournamentID string) ([]Match, error)
	GetByID(ctx context.Context, tournamentID, matchID string) (Match, bool, error)
	// ReplaceByTournament swaps the whole fixture list atomically.
	ReplaceByTournament(ctx context.Context, tournamentID string, items []Match) error
	Save(ctx context.Context, item Match) error
}
