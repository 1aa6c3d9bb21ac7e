package status

import (
	"context"
	"errors"
	"testing"
	"time"

	"financequest/internal/app/ports"
	"financequest/internal/domain/sim"
)

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

func (r *stubStateRepo) SaveWithVersion(_ context.Context, state sim.PlayerState, _ int64) error {
	r.byPlayer[state.PlayerID] = state
	return nil
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

func TestExecuteReturnsStateScoreAndGoals(t *testing.T) {
	state, err := sim.NewPlayerState("p-1", "middle", "polytechnic", "normal", sim.DefaultCatalog(), time.Unix(1000, 0))
	if err != nil {
		t.Fatalf("seed state: %v", err)
	}
	state.Goals.DebtFree = true
	uc := UseCase{
		StateRepo:  &stubStateRepo{byPlayer: map[string]sim.PlayerState{"p-1": state}},
		HighScores: &stubHighScoreRepo{score: 5000, hasScore: true},
	}

	resp, err := uc.Execute(context.Background(), Request{PlayerID: "p-1"})
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if resp.State.PlayerID != "p-1" {
		t.Fatalf("unexpected state: %+v", resp.State)
	}
	if !resp.Goals["debt_free"] || resp.Goals["net_worth"] {
		t.Fatalf("unexpected goals map: %+v", resp.Goals)
	}
	if resp.Score != sim.Score(state) {
		t.Fatalf("expected live score, got %d", resp.Score)
	}
	if resp.HighScore != 5000 {
		t.Fatalf("expected high score 5000, got %d", resp.HighScore)
	}
}

func TestExecuteHighScoreIsOptional(t *testing.T) {
	state, err := sim.NewPlayerState("p-1", "middle", "polytechnic", "normal", sim.DefaultCatalog(), time.Unix(1000, 0))
	if err != nil {
		t.Fatalf("seed state: %v", err)
	}
	uc := UseCase{
		StateRepo:  &stubStateRepo{byPlayer: map[string]sim.PlayerState{"p-1": state}},
		HighScores: &stubHighScoreRepo{},
	}

	resp, err := uc.Execute(context.Background(), Request{PlayerID: "p-1"})
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if resp.HighScore != 0 {
		t.Fatalf("expected zero high score before any game ends, got %d", resp.HighScore)
	}
}

func TestExecuteUnknownPlayer(t *testing.T) {
	uc := UseCase{StateRepo: &stubStateRepo{byPlayer: map[string]sim.PlayerState{}}}
	if _, err := uc.Execute(context.Background(), Request{PlayerID: "ghost"}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestExecuteInvalidRequest(t *testing.T) {
	uc := UseCase{StateRepo: &stubStateRepo{byPlayer: map[string]sim.PlayerState{}}}
	if _, err := uc.Execute(context.Background(), Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}
