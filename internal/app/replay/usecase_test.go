package replay

import (
	"context"
	"errors"
	"testing"
	"time"

	"financequest/internal/domain/sim"
)

type stubEventRepo struct {
	lastLimit int
	events    []sim.DomainEvent
}

func (r *stubEventRepo) Append(_ context.Context, _ string, events []sim.DomainEvent) error {
	r.events = append(r.events, events...)
	return nil
}

func (r *stubEventRepo) ListByPlayerID(_ context.Context, _ string, limit int) ([]sim.DomainEvent, error) {
	r.lastLimit = limit
	if limit > len(r.events) {
		limit = len(r.events)
	}
	return r.events[:limit], nil
}

func TestExecuteReturnsEvents(t *testing.T) {
	repo := &stubEventRepo{events: []sim.DomainEvent{
		{Type: "session_started", OccurredAt: time.Unix(1, 0)},
		{Type: "month_advanced", OccurredAt: time.Unix(2, 0)},
	}}
	uc := UseCase{Events: repo}

	resp, err := uc.Execute(context.Background(), Request{PlayerID: "p-1", Limit: 10})
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if len(resp.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(resp.Events))
	}
	if repo.lastLimit != 10 {
		t.Fatalf("expected requested limit passed through, got %d", repo.lastLimit)
	}
}

func TestExecuteDefaultsLimit(t *testing.T) {
	repo := &stubEventRepo{}
	uc := UseCase{Events: repo}

	if _, err := uc.Execute(context.Background(), Request{PlayerID: "p-1"}); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if repo.lastLimit != defaultLimit {
		t.Fatalf("expected default limit %d, got %d", defaultLimit, repo.lastLimit)
	}
}

func TestExecuteInvalidRequest(t *testing.T) {
	uc := UseCase{Events: &stubEventRepo{}}
	if _, err := uc.Execute(context.Background(), Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}
