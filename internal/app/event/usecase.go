package event

import (
	"context"
	"errors"
	"strings"
	"time"

	"financequest/internal/app/ports"
	"financequest/internal/domain/sim"
)

var ErrInvalidRequest = errors.New("invalid acknowledge request")

type Request struct {
	PlayerID string
}

type Response struct {
	State   sim.PlayerState    `json:"state"`
	Applied sim.EmergencyEvent `json:"applied"`
}

// UseCase resolves the pending emergency: the player has seen the event, its
// effects land now.
type UseCase struct {
	TxManager ports.TxManager
	StateRepo ports.PlayerStateRepository
	EventRepo ports.EventRepository
	Metrics   ports.CommandMetrics
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.PlayerID = strings.TrimSpace(req.PlayerID)
	if req.PlayerID == "" {
		return Response{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		state, err := u.StateRepo.GetByPlayerID(txCtx, req.PlayerID)
		if err != nil {
			return err
		}
		applied := state.PendingEvent

		next, events, err := sim.AcknowledgeEvent(state, nowFn())
		if err != nil {
			return err
		}

		if err := u.StateRepo.SaveWithVersion(txCtx, next, state.Version); err != nil {
			return err
		}
		if u.EventRepo != nil {
			if err := u.EventRepo.Append(txCtx, req.PlayerID, events); err != nil {
				return err
			}
		}

		out = Response{State: next, Applied: *applied}
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			u.Metrics.RecordFailure("acknowledge")
		}
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess("acknowledge")
	}
	return out, nil
}
