package sim

import (
	"errors"
	"time"
)

var ErrNoPendingEvent = errors.New("no emergency event pending")

// AcknowledgeEvent applies the pending emergency and clears it. Months of
// suspended income overwrite any countdown already running; they do not
// accumulate.
func AcknowledgeEvent(state PlayerState, now time.Time) (PlayerState, []DomainEvent, error) {
	if state.Status != SessionInProgress {
		return state, nil, ErrSessionEnded
	}
	if state.PendingEvent == nil {
		return state, nil, ErrNoPendingEvent
	}
	event := *state.PendingEvent

	if event.Cost > 0 {
		state.Money -= event.Cost
	}
	if event.StressIncrease > 0 {
		state.Stress += event.StressIncrease
		state.ClampWellBeing()
	}
	if event.MonthsNoIncome > 0 {
		state.MonthsNoIncome = event.MonthsNoIncome
	}
	if event.InvestmentLoss > 0 {
		state.Investments *= 1 - event.InvestmentLoss
	}

	state.PendingEvent = nil
	state.Version++
	state.UpdatedAt = now

	events := []DomainEvent{{
		Type:       "emergency_acknowledged",
		OccurredAt: now,
		Payload: map[string]any{
			"name":             event.Name,
			"cost":             event.Cost,
			"months_no_income": event.MonthsNoIncome,
			"investment_loss":  event.InvestmentLoss,
			"stress_increase":  event.StressIncrease,
		},
	}}
	return state, events, nil
}
