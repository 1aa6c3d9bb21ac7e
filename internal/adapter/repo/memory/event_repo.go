package memory

import (
	"context"

	"financequest/internal/app/ports"
	"financequest/internal/domain/sim"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, playerID string, events []sim.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	r.store.events[playerID] = append(r.store.events[playerID], events...)
	return nil
}

func (r EventRepo) ListByPlayerID(_ context.Context, playerID string, limit int) ([]sim.DomainEvent, error) {
	all, ok := r.store.events[playerID]
	if !ok || len(all) == 0 {
		return nil, ports.ErrNotFound
	}
	// Newest first.
	out := make([]sim.DomainEvent, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		out = append(out, all[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
