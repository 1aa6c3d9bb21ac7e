package tick

import (
	"context"
	"errors"
	"strings"
	"time"

	"financequest/internal/app/ports"
	"financequest/internal/domain/sim"
)

var ErrInvalidRequest = errors.New("invalid advance request")

// UseCase executes one AdvanceMonth command. When the tick ends the session it
// also settles the end-of-game side effects: final score, best-effort high
// score update, and the analytics records.
type UseCase struct {
	TxManager  ports.TxManager
	StateRepo  ports.PlayerStateRepository
	EventRepo  ports.EventRepository
	HighScores ports.HighScoreRepository
	Summaries  ports.SummaryRepository
	Metrics    ports.CommandMetrics
	Engine     sim.TickService
	Rand       sim.Rand
	Now        func() time.Time
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
	now := nowFn()

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		state, err := u.StateRepo.GetByPlayerID(txCtx, req.PlayerID)
		if err != nil {
			return err
		}

		result, err := u.Engine.Advance(state, u.Rand, now)
		if err != nil {
			return err
		}

		if err := u.StateRepo.SaveWithVersion(txCtx, result.UpdatedState, state.Version); err != nil {
			return err
		}
		if u.EventRepo != nil {
			if err := u.EventRepo.Append(txCtx, req.PlayerID, result.Events); err != nil {
				return err
			}
		}

		out = Response{
			State:        result.UpdatedState,
			Message:      result.Message,
			SessionEnded: result.SessionEnded,
			EndReason:    result.EndReason,
			PendingEvent: result.PendingEvent,
		}
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			u.Metrics.RecordFailure("advance")
		}
		return Response{}, err
	}

	if out.SessionEnded {
		u.settleEnd(ctx, &out, now)
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess("advance")
	}
	return out, nil
}

// settleEnd swallows persistence errors: a lost high score or analytics row
// never surfaces to the player.
func (u UseCase) settleEnd(ctx context.Context, out *Response, now time.Time) {
	out.FinalScore = sim.Score(out.State)
	if u.HighScores != nil {
		best, err := u.HighScores.Get(ctx)
		if err != nil {
			best = 0
		}
		if out.FinalScore > best {
			best = out.FinalScore
			_ = u.HighScores.Put(ctx, out.FinalScore)
		}
		out.HighScore = best
	}
	if u.Summaries != nil {
		_ = u.Summaries.AppendSummary(ctx, sim.BuildSummary(out.State, out.FinalScore, now))
		_ = u.Summaries.AppendTrainingRecord(ctx, sim.BuildTrainingRecord(out.State))
	}
}
