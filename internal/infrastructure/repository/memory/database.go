package memory

import (
	"sync"

	"github.com/riskibarqy/cricket-league/internal/domain/match"
	"github.com/riskibarqy/cricket-league/internal/domain/team"
	"github.com/riskibarqy/cricket-league/internal/domain/tournament"
)

// Database is the shared in-process store behind the memory repositories, so a
// tournament delete can drop its teams and matches in one critical section.
type Database struct {
	mu          sync.RWMutex
	tournaments map[string]tournament.Tournament
	teams       map[string][]team.Team
	matches     map[string][]match.Match
}

func NewDatabase() *Database {
	return &Database{
		tournaments: make(map[string]tournament.Tournament),
		teams:       make(map[string][]team.Team),
		matches:     make(map[string][]match.Match),
	}
}

func cloneTournament(item tournament.Tournament) tournament.Tournament {
	item.Venues = append([]string(nil), item.Venues...)
	return item
}

func cloneMatch(item match.Match) match.Match {
	if item.Result != nil {
		result := *item.Result
		item.Result = &result
	}
	if item.CompletedAt != nil {
		at := *item.CompletedAt
		item.CompletedAt = &at
	}
	return item
}
