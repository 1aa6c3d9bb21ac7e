package memory

import (
	"context"

	"financequest/internal/app/ports"
	"financequest/internal/domain/sim"
)

type PlayerStateRepo struct {
	store *Store
}

func NewPlayerStateRepo(store *Store) PlayerStateRepo {
	return PlayerStateRepo{store: store}
}

func (r PlayerStateRepo) GetByPlayerID(_ context.Context, playerID string) (sim.PlayerState, error) {
	state, ok := r.store.state[playerID]
	if !ok {
		return sim.PlayerState{}, ports.ErrNotFound
	}
	return state, nil
}

func (r PlayerStateRepo) SaveWithVersion(_ context.Context, state sim.PlayerState, expectedVersion int64) error {
	current, ok := r.store.state[state.PlayerID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.state[state.PlayerID] = state
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.state[state.PlayerID] = state
	return nil
}
