package tick

import "financequest/internal/domain/sim"

type Request struct {
	PlayerID string
}

type Response struct {
	State        sim.PlayerState     `json:"state"`
	Message      string              `json:"message"`
	SessionEnded bool                `json:"session_ended"`
	EndReason    sim.EndReason       `json:"end_reason,omitempty"`
	PendingEvent *sim.EmergencyEvent `json:"pending_event,omitempty"`
	FinalScore   int                 `json:"final_score,omitempty"`
	HighScore    int                 `json:"high_score,omitempty"`
}
