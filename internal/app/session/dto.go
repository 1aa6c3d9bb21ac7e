package session

import "financequest/internal/domain/sim"

type Request struct {
	PlayerID   string
	Class      string
	Education  string
	Difficulty string
}

type Response struct {
	State     sim.PlayerState `json:"state"`
	Message   string          `json:"message"`
	HighScore int             `json:"high_score"`
}
