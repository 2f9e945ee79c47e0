package id

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	t.Parallel()

	g := NewUUIDGenerator()
	a, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	b, _ := g.NewID()
	if a == b {
		t.Fatalf("expected distinct ids, got %s twice", a)
	}
	parsed, err := uuid.Parse(a)
	if err != nil {
		t.Fatalf("expected valid uuid: %v", err)
	}
	if parsed.Version() != 7 {
		t.Fatalf("expected version 7, got %d", parsed.Version())
	}
}

func TestSequence_NewID(t *testing.T) {
	t.Parallel()

	s := &Sequence{Prefix: "team"}
	first, _ := s.NewID()
	second, _ := s.NewID()
	if first != "team-1" || second != "team-2" {
		t.Fatalf("unexpected sequence: %s, %s", first, second)
	}
}
