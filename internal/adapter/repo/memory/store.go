package memory

import (
	"sync"

	"financequest/internal/domain/sim"
)

// Store backs the in-memory repositories. It serves tests and the
// no-database dev mode of cmd/server.
type Store struct {
	mu        sync.Mutex
	state     map[string]sim.PlayerState
	events    map[string][]sim.DomainEvent
	summaries []sim.SessionSummary
	training  []sim.TrainingRecord
	highScore int
	hasScore  bool
}

func NewStore() *Store {
	return &Store{
		state:  make(map[string]sim.PlayerState),
		events: make(map[string][]sim.DomainEvent),
	}
}

func (s *Store) SeedState(state sim.PlayerState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state[state.PlayerID] = state
}

func (s *Store) Summaries() []sim.SessionSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]sim.SessionSummary, len(s.summaries))
	copy(out, s.summaries)
	return out
}

func (s *Store) TrainingRecords() []sim.TrainingRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]sim.TrainingRecord, len(s.training))
	copy(out, s.training)
	return out
}
