package status

import (
	"context"
	"errors"
	"strings"

	"financequest/internal/app/ports"
	"financequest/internal/domain/sim"
)

var ErrInvalidRequest = errors.New("invalid status request")

type UseCase struct {
	StateRepo  ports.PlayerStateRepository
	HighScores ports.HighScoreRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.PlayerID) == "" {
		return Response{}, ErrInvalidRequest
	}
	state, err := u.StateRepo.GetByPlayerID(ctx, req.PlayerID)
	if err != nil {
		return Response{}, err
	}

	out := Response{
		State: state,
		Goals: state.Goals.AsMap(),
		Score: sim.Score(state),
	}
	if u.HighScores != nil {
		if best, err := u.HighScores.Get(ctx); err == nil {
			out.HighScore = best
		}
	}
	return out, nil
}
