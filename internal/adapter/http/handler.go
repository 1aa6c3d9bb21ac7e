package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"financequest/internal/app/action"
	"financequest/internal/app/event"
	"financequest/internal/app/ports"
	"financequest/internal/app/replay"
	"financequest/internal/app/session"
	"financequest/internal/app/status"
	"financequest/internal/app/tick"
	"financequest/internal/domain/sim"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const playerIDHeader = "X-Player-ID"

// Handler is the presentation adapter. It only forwards commands into the
// engine usecases and renders their results; it never mutates state itself.
type Handler struct {
	SessionUC session.UseCase
	ActionUC  action.UseCase
	TickUC    tick.UseCase
	AckUC     event.UseCase
	StatusUC  status.UseCase
	ReplayUC  replay.UseCase
	KPI       kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	game := s.Group("/api/game")
	game.POST("/start", h.start)
	game.POST("/action", h.action)
	game.POST("/advance", h.advance)
	game.POST("/acknowledge", h.acknowledge)
	game.GET("/status", h.status)
	game.GET("/replay", h.replay)

	s.GET("/ops/kpi", h.kpi)
}

type startRequest struct {
	Class      string `json:"class"`
	Education  string `json:"education"`
	Difficulty string `json:"difficulty"`
}

type actionRequest struct {
	Kind   string  `json:"kind"`
	Amount float64 `json:"amount,omitempty"`
	Choice string  `json:"choice,omitempty"`
	Lock   bool    `json:"lock,omitempty"`
	Unlock bool    `json:"unlock,omitempty"`
}

func (h Handler) start(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var body startRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.SessionUC.Execute(c, session.Request{
		PlayerID:   playerID,
		Class:      body.Class,
		Education:  body.Education,
		Difficulty: body.Difficulty,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) action(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var body actionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.ActionUC.Execute(c, action.Request{
		PlayerID: playerID,
		Action: sim.ActionRequest{
			Kind:   sim.ActionKind(body.Kind),
			Amount: body.Amount,
			Choice: body.Choice,
		},
		Lock:   body.Lock,
		Unlock: body.Unlock,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) advance(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	resp, err := h.TickUC.Execute(c, tick.Request{PlayerID: playerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) acknowledge(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	resp, err := h.AckUC.Execute(c, event.Request{PlayerID: playerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	resp, err := h.StatusUC.Execute(c, status.Request{PlayerID: playerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	resp, err := h.ReplayUC.Execute(c, replay.Request{PlayerID: playerID, Limit: limit})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

var ErrMissingPlayerIDHeader = errors.New("missing x-player-id header")

func requirePlayerID(ctx *app.RequestContext) (string, error) {
	playerID := strings.TrimSpace(string(ctx.GetHeader(playerIDHeader)))
	if playerID == "" {
		return "", ErrMissingPlayerIDHeader
	}
	return playerID, nil
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrMissingPlayerIDHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_player_id", err.Error())
	case errors.Is(err, session.ErrUnknownPreset):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_preset", err.Error())
	case errors.Is(err, sim.ErrEventPending):
		writeErrorBody(ctx, consts.StatusConflict, "event_pending", err.Error())
	case errors.Is(err, sim.ErrSessionEnded), errors.Is(err, action.ErrSessionEnded):
		writeErrorBody(ctx, consts.StatusConflict, "session_ended", err.Error())
	case errors.Is(err, sim.ErrNoPendingEvent):
		writeErrorBody(ctx, consts.StatusConflict, "no_pending_event", err.Error())
	case errors.Is(err, session.ErrInvalidRequest),
		errors.Is(err, action.ErrInvalidRequest),
		errors.Is(err, tick.ErrInvalidRequest),
		errors.Is(err, event.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
