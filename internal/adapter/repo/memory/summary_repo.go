package memory

import (
	"context"

	"financequest/internal/domain/sim"
)

type SummaryRepo struct {
	store *Store
}

func NewSummaryRepo(store *Store) SummaryRepo {
	return SummaryRepo{store: store}
}

func (r SummaryRepo) AppendSummary(_ context.Context, summary sim.SessionSummary) error {
	r.store.summaries = append(r.store.summaries, summary)
	return nil
}

func (r SummaryRepo) AppendTrainingRecord(_ context.Context, record sim.TrainingRecord) error {
	r.store.training = append(r.store.training, record)
	return nil
}
