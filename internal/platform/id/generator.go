package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates opaque IDs for tournaments and teams.
type Generator interface {
	NewID() (string, error)
}

// UUIDGenerator issues random version 7 UUIDs, which sort by creation time.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return v.String(), nil
}

// Sequence yields prefix-1, prefix-2, ... for seeds and tests.
type Sequence struct {
	Prefix string
	next   int
}

func (s *Sequence) NewID() (string, error) {
	s.next++
	return fmt.Sprintf("%s-%d", s.Prefix, s.next), nil
}
