package ports

import (
	"context"

	"financequest/internal/domain/sim"
)

type PlayerStateRepository interface {
	GetByPlayerID(ctx context.Context, playerID string) (sim.PlayerState, error)
	// SaveWithVersion persists optimistically: expectedVersion 0 creates,
	// anything else updates only if the stored version still matches.
	SaveWithVersion(ctx context.Context, state sim.PlayerState, expectedVersion int64) error
}

// HighScoreRepository holds the single persisted best score. Callers treat it
// as best-effort: read failures fall back to zero, write failures are dropped.
type HighScoreRepository interface {
	Get(ctx context.Context) (int, error)
	Put(ctx context.Context, score int) error
}

type SummaryRepository interface {
	AppendSummary(ctx context.Context, summary sim.SessionSummary) error
	AppendTrainingRecord(ctx context.Context, record sim.TrainingRecord) error
}

type EventRepository interface {
	Append(ctx context.Context, playerID string, events []sim.DomainEvent) error
	ListByPlayerID(ctx context.Context, playerID string, limit int) ([]sim.DomainEvent, error)
}
