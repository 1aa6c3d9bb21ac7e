package status

import "financequest/internal/domain/sim"

type Request struct {
	PlayerID string
}

type Response struct {
	State     sim.PlayerState `json:"state"`
	Goals     map[string]bool `json:"goals"`
	Score     int             `json:"score"`
	HighScore int             `json:"high_score"`
}
