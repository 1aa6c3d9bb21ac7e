package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"financequest/internal/app/ports"
	"financequest/internal/domain/sim"
)

var (
	ErrInvalidRequest = errors.New("invalid start request")
	ErrUnknownPreset  = errors.New("unknown preset key")
)

// UseCase starts a new session. An existing session for the player is fully
// discarded: no mid-session state carries over.
type UseCase struct {
	TxManager  ports.TxManager
	StateRepo  ports.PlayerStateRepository
	HighScores ports.HighScoreRepository
	EventRepo  ports.EventRepository
	Catalog    sim.Catalog
	Now        func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.PlayerID = strings.TrimSpace(req.PlayerID)
	if req.PlayerID == "" || req.Class == "" || req.Education == "" || req.Difficulty == "" {
		return Response{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()

	state, err := sim.NewPlayerState(req.PlayerID, req.Class, req.Education, req.Difficulty, u.Catalog, now)
	if err != nil {
		return Response{}, ErrUnknownPreset
	}

	var out Response
	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		previous, err := u.StateRepo.GetByPlayerID(txCtx, req.PlayerID)
		expectedVersion := int64(0)
		if err == nil {
			expectedVersion = previous.Version
			state.Version = previous.Version + 1
		} else if !errors.Is(err, ports.ErrNotFound) {
			return err
		}

		if err := u.StateRepo.SaveWithVersion(txCtx, state, expectedVersion); err != nil {
			return err
		}
		if u.EventRepo != nil {
			events := []sim.DomainEvent{{
				Type:       "session_started",
				OccurredAt: now,
				Payload: map[string]any{
					"class":      req.Class,
					"education":  req.Education,
					"difficulty": req.Difficulty,
				},
			}}
			if err := u.EventRepo.Append(txCtx, req.PlayerID, events); err != nil {
				return err
			}
		}

		out = Response{State: state, Message: "Welcome to your financial journey! Good luck."}
		return nil
	})
	if err != nil {
		return Response{}, err
	}

	if u.HighScores != nil {
		if best, err := u.HighScores.Get(ctx); err == nil {
			out.HighScore = best
		}
	}
	return out, nil
}
