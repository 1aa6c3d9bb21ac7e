package action

import (
	"context"
	"errors"
	"strings"
	"time"

	"financequest/internal/app/ports"
	"financequest/internal/domain/sim"
)

var (
	ErrInvalidRequest = errors.New("invalid action request")
	ErrSessionEnded   = errors.New("session already ended")
)

type UseCase struct {
	TxManager ports.TxManager
	StateRepo ports.PlayerStateRepository
	EventRepo ports.EventRepository
	Metrics   ports.CommandMetrics
	Resolver  sim.ActionService
	Rand      sim.Rand
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.PlayerID = strings.TrimSpace(req.PlayerID)
	if req.PlayerID == "" || req.Action.Kind == "" {
		return Response{}, ErrInvalidRequest
	}
	if req.Lock && req.Unlock {
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
		if state.Status != sim.SessionInProgress {
			return ErrSessionEnded
		}

		outcome := u.Resolver.Apply(state, req.Action, u.Rand, nowFn())
		if outcome.Rejected {
			// an unknown kind is caller misuse, not a gameplay rejection
			if outcome.Reason == sim.RejectUnknownAction {
				return ErrInvalidRequest
			}
			out = Response{State: state, Message: outcome.Message, Rejected: true, Reason: outcome.Reason}
			return nil
		}

		next := outcome.UpdatedState
		if req.Lock {
			locked := req.Action
			next.LockedAction = &locked
		}
		if req.Unlock {
			next.LockedAction = nil
		}

		if err := u.StateRepo.SaveWithVersion(txCtx, next, state.Version); err != nil {
			return err
		}
		if u.EventRepo != nil {
			if err := u.EventRepo.Append(txCtx, req.PlayerID, outcome.Events); err != nil {
				return err
			}
		}

		out = Response{State: next, Message: outcome.Message}
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			u.Metrics.RecordFailure("action")
		}
		return Response{}, err
	}
	if u.Metrics != nil {
		if out.Rejected {
			u.Metrics.RecordRejection("action")
		} else {
			u.Metrics.RecordSuccess("action")
		}
	}
	return out, nil
}
