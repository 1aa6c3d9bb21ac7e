package session

import (
	"context"

	"financequest/internal/app/ports"
	"financequest/internal/domain/sim"
)

type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubStateRepo struct {
	byPlayer map[string]sim.PlayerState
	saves    []int64
}

func (r *stubStateRepo) GetByPlayerID(_ context.Context, playerID string) (sim.PlayerState, error) {
	state, ok := r.byPlayer[playerID]
	if !ok {
		return sim.PlayerState{}, ports.ErrNotFound
	}
	return state, nil
}

func (r *stubStateRepo) SaveWithVersion(_ context.Context, state sim.PlayerState, expectedVersion int64) error {
	r.saves = append(r.saves, expectedVersion)
	current, ok := r.byPlayer[state.PlayerID]
	if ok && current.Version != expectedVersion {
		return ports.ErrConflict
	}
	if !ok && expectedVersion != 0 {
		return ports.ErrConflict
	}
	r.byPlayer[state.PlayerID] = state
	return nil
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

type stubHighScoreRepo struct {
	score    int
	hasScore bool
}

func (r *stubHighScoreRepo) Get(_ context.Context) (int, error) {
	if !r.hasScore {
		return 0, ports.ErrNotFound
	}
	return r.score, nil
}

func (r *stubHighScoreRepo) Put(_ context.Context, score int) error {
	r.score = score
	r.hasScore = true
	return nil
}
