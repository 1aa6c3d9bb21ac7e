package replay

import "financequest/internal/domain/sim"

type Request struct {
	PlayerID string
	Limit    int
}

type Response struct {
	Events []sim.DomainEvent `json:"events"`
}
