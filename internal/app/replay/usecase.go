package replay

import (
	"context"
	"errors"
	"strings"

	"financequest/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid replay request")

const defaultLimit = 50

type UseCase struct {
	Events ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.PlayerID) == "" {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	events, err := u.Events.ListByPlayerID(ctx, req.PlayerID, limit)
	if err != nil {
		return Response{}, err
	}
	return Response{Events: events}, nil
}
