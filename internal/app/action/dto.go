package action

import "financequest/internal/domain/sim"

type Request struct {
	PlayerID string
	Action   sim.ActionRequest
	// Lock marks the action as the per-month auto-repeat; Unlock clears it.
	Lock   bool
	Unlock bool
}

type Response struct {
	State    sim.PlayerState  `json:"state"`
	Message  string           `json:"message"`
	Rejected bool             `json:"rejected"`
	Reason   sim.RejectReason `json:"reason,omitempty"`
}
