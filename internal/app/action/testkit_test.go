package action

import (
	"context"
	"testing"
	"time"

	"financequest/internal/app/ports"
	"financequest/internal/domain/sim"
)

type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubStateRepo struct {
	byPlayer map[string]sim.PlayerState
}

func (r *stubStateRepo) GetByPlayerID(_ context.Context, playerID string) (sim.PlayerState, error) {
	state, ok := r.byPlayer[playerID]
	if !ok {
		return sim.PlayerState{}, ports.ErrNotFound
	}
	return state, nil
}

func (r *stubStateRepo) SaveWithVersion(_ context.Context, state sim.PlayerState, expectedVersion int64) error {
	current, ok := r.byPlayer[state.PlayerID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.byPlayer[state.PlayerID] = state
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.byPlayer[state.PlayerID] = state
	return nil
}

type conflictOnSaveStateRepo struct {
	stubStateRepo
}

func (r *conflictOnSaveStateRepo) SaveWithVersion(_ context.Context, _ sim.PlayerState, _ int64) error {
	return ports.ErrConflict
}

type stubEventRepo struct {
	events []sim.DomainEvent
}

func (r *stubEventRepo) Append(_ context.Context, _ string, events []sim.DomainEvent) error {
	r.events = append(r.events, events...)
	return nil
}

func (r *stubEventRepo) ListByPlayerID(_ context.Context, _ string, limit int) ([]sim.DomainEvent, error) {
	if limit <= 0 || limit > len(r.events) {
		limit = len(r.events)
	}
	out := make([]sim.DomainEvent, limit)
	copy(out, r.events[:limit])
	return out, nil
}

type stubMetrics struct {
	successes  map[string]int
	rejections map[string]int
	failures   map[string]int
}

func newStubMetrics() *stubMetrics {
	return &stubMetrics{
		successes:  map[string]int{},
		rejections: map[string]int{},
		failures:   map[string]int{},
	}
}

func (m *stubMetrics) RecordSuccess(command string)   { m.successes[command]++ }
func (m *stubMetrics) RecordRejection(command string) { m.rejections[command]++ }
func (m *stubMetrics) RecordFailure(command string)   { m.failures[command]++ }

// quietRand suppresses every probabilistic trigger.
type quietRand struct{}

func (quietRand) Float64() float64 { return 0.99 }
func (quietRand) Intn(int) int     { return 0 }

func seedState(t *testing.T, playerID string) sim.PlayerState {
	t.Helper()
	state, err := sim.NewPlayerState(playerID, "middle", "polytechnic", "normal", sim.DefaultCatalog(), time.Unix(1000, 0))
	if err != nil {
		t.Fatalf("seed state: %v", err)
	}
	return state
}
