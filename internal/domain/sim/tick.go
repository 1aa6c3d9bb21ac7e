package sim

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrSessionEnded = errors.New("session already ended")
	ErrEventPending = errors.New("emergency event awaiting acknowledgement")
)

// TickService executes the single AdvanceMonth transition. The transition is
// an ordered pipeline of named steps; the order is load-bearing because later
// steps read values mutated by earlier ones.
type TickService struct {
	Catalog Catalog
	Actions ActionService
}

type tickContext struct {
	state    PlayerState
	rng      Rand
	now      time.Time
	messages []string
	events   []DomainEvent
	ended    bool
	reason   EndReason
}

func (c *tickContext) say(format string, args ...any) {
	c.messages = append(c.messages, fmt.Sprintf(format, args...))
}

func (c *tickContext) emit(eventType string, payload map[string]any) {
	c.events = append(c.events, DomainEvent{Type: eventType, OccurredAt: c.now, Payload: payload})
}

type tickStep struct {
	name string
	run  func(*tickContext)
}

func (s TickService) steps() []tickStep {
	return []tickStep{
		{"locked_action", s.stepLockedAction},
		{"income", s.stepIncome},
		{"expenses", s.stepExpenses},
		{"debt_interest", s.stepDebtInterest},
		{"investment_returns", s.stepInvestmentReturns},
		{"fund_interest", s.stepFundInterest},
		{"well_being", s.stepWellBeing},
		{"burnout", s.stepBurnout},
		{"clamp", s.stepClamp},
		{"random_emergency", s.stepRandomEmergency},
		{"random_debuff", s.stepRandomDebuff},
		{"advance_month", s.stepAdvanceMonth},
		{"goals", s.stepGoals},
		{"bankruptcy", s.stepBankruptcy},
	}
}

// Advance runs one month. Preconditions: the session is in progress and no
// emergency event is awaiting acknowledgement. Reaching the horizon ends the
// session as completed without applying further mutation.
func (s TickService) Advance(state PlayerState, rng Rand, now time.Time) (TickResult, error) {
	if state.Status != SessionInProgress {
		return TickResult{}, ErrSessionEnded
	}
	if state.PendingEvent != nil {
		return TickResult{}, ErrEventPending
	}

	if state.CurrentMonth >= Horizon {
		state.Status = SessionEnded
		state.EndReason = EndReasonCompleted
		state.Version++
		state.UpdatedAt = now
		return TickResult{
			UpdatedState: state,
			Message:      "Game completed!",
			SessionEnded: true,
			EndReason:    EndReasonCompleted,
			Events: []DomainEvent{{
				Type:       "session_ended",
				OccurredAt: now,
				Payload:    map[string]any{"reason": string(EndReasonCompleted), "month": state.CurrentMonth},
			}},
		}, nil
	}

	ctx := &tickContext{state: state, rng: rng, now: now}
	for _, step := range s.steps() {
		step.run(ctx)
		if ctx.ended {
			break
		}
	}

	ctx.state.Version++
	ctx.state.UpdatedAt = now

	message := strings.Join(ctx.messages, " | ")
	if message == "" {
		message = fmt.Sprintf("Month %d complete.", ctx.state.CurrentMonth)
	}

	ctx.emit("month_advanced", map[string]any{
		"month":      ctx.state.CurrentMonth,
		"money":      ctx.state.Money,
		"net_worth":  ctx.state.NetWorth(),
		"happiness":  ctx.state.Happiness,
		"stress":     ctx.state.Stress,
		"message":    message,
	})

	return TickResult{
		UpdatedState: ctx.state,
		Message:      message,
		SessionEnded: ctx.ended,
		EndReason:    ctx.reason,
		PendingEvent: ctx.state.PendingEvent,
		Events:       ctx.events,
	}, nil
}

// stepLockedAction replays the player's designated auto-repeat action before
// income processing. It follows normal preconditions but never consumes a
// budget slot; a rejection skips the action and keeps the lock.
func (s TickService) stepLockedAction(c *tickContext) {
	if c.state.LockedAction == nil {
		return
	}
	out := s.Actions.apply(c.state, *c.state.LockedAction, c.rng, c.now, false)
	if out.Rejected {
		return
	}
	c.state = out.UpdatedState
	c.messages = append(c.messages, out.Message)
	c.events = append(c.events, out.Events...)
}

func (s TickService) stepIncome(c *tickContext) {
	if c.state.MonthsNoIncome > 0 {
		c.state.MonthsNoIncome--
		c.say("No income (%d months left)", c.state.MonthsNoIncome)
		return
	}
	income := c.state.MonthlyIncome
	if c.state.HasDebuff(DebuffDistracted) {
		income *= DistractedIncomeFactor
		c.say("Distracted: -20%% income")
		if c.rng.Float64() < DistractedFiringChance {
			c.state.MonthsNoIncome = FiringMonthsNoIncome
			c.state.Stress += FiringStress
			c.say("Fired due to performance!")
		}
	}
	c.state.Money += income
}

func (s TickService) stepExpenses(c *tickContext) {
	c.state.Money -= c.state.TotalExpenses()
}

func (s TickService) stepDebtInterest(c *tickContext) {
	if c.state.Debt > 0 {
		c.state.Debt *= DebtMonthlyInterest
	}
}

func (s TickService) stepInvestmentReturns(c *tickContext) {
	if c.state.Investments <= 0 {
		return
	}
	volatility := s.Catalog.Difficulties[c.state.DifficultyKey].MarketVolatility
	monthlyReturn := (c.rng.Float64()*0.25 - 0.10) / 12 * volatility
	c.state.Investments *= 1 + monthlyReturn
}

func (s TickService) stepFundInterest(c *tickContext) {
	if c.state.EmergencyFund > 0 {
		c.state.EmergencyFund *= EmergencyFundMonthlyInterest
	}
}

func (s TickService) stepWellBeing(c *tickContext) {
	c.state.Stress = max(0, c.state.Stress-MonthlyStressRelief)

	if c.state.MonthlyIncome > 0 {
		debtToIncome := c.state.Debt / (c.state.MonthlyIncome * 12)
		if debtToIncome > DebtPressureRatio {
			c.state.Stress += DebtPressureStress
		}
	}
	if c.state.EmergencyFund < c.state.MonthlyIncome*ThinFundMonths {
		c.state.Stress += ThinFundStress
	}

	c.state.Happiness = max(0, c.state.Happiness-MonthlyHappinessDecay)

	if c.state.HasDebuff(DebuffUnhappy) {
		c.say("You are unhappy!")
	}
}

// stepBurnout reads the stress/happiness values already decayed this tick, so
// the same tick's decay can trip it. The burnout event's own stress field is
// zero; stress is forced to the recovery level here instead, after dispatch.
func (s TickService) stepBurnout(c *tickContext) {
	if c.state.Stress < BurnoutStressThreshold && c.state.Happiness > BurnoutHappinessThreshold {
		return
	}
	event := BurnoutEvent()
	c.state.PendingEvent = &event
	c.state.Stress = BurnoutRecoveryStress
	c.state.AddDebuff(DebuffUnhappy)
	c.say("BURNOUT! Forced medical leave.")
	c.emit("emergency_triggered", map[string]any{"name": event.Name, "source": "burnout"})
}

func (s TickService) stepClamp(c *tickContext) {
	c.state.ClampWellBeing()
}

// stepRandomEmergency queues the event for acknowledgement; its effects are
// not applied until the player acknowledges. A burnout dispatched earlier in
// the same tick keeps the single event slot, so the roll is skipped then.
func (s TickService) stepRandomEmergency(c *tickContext) {
	if c.state.PendingEvent != nil {
		return
	}
	chance := s.Catalog.Difficulties[c.state.DifficultyKey].EmergencyChance
	if c.rng.Float64() >= chance || len(s.Catalog.Emergencies) == 0 {
		return
	}
	event := s.Catalog.Emergencies[c.rng.Intn(len(s.Catalog.Emergencies))]
	c.state.PendingEvent = &event
	c.say("%s", event.Name)
	c.emit("emergency_triggered", map[string]any{"name": event.Name, "source": "random"})
}

func (s TickService) stepRandomDebuff(c *tickContext) {
	chance := 0.5 - (c.state.Happiness/100)*0.4
	if c.rng.Float64() >= chance || c.state.HasDebuff(DebuffDistracted) {
		return
	}
	c.state.AddDebuff(DebuffDistracted)
	c.state.Stress += DistractedDebuffStress
	c.state.ClampWellBeing()
	c.say("You feel distracted")
}

func (s TickService) stepAdvanceMonth(c *tickContext) {
	c.state.CurrentMonth++
	c.state.ActionsRemaining = ActionsPerMonth
	if c.state.CurrentMonth <= EarlyWindowMonths {
		c.state.EarlyHappinessSum += c.state.Happiness
		c.state.EarlyStressSum += c.state.Stress
		c.state.EarlyMonths++
	}
}

func (s TickService) stepGoals(c *tickContext) {
	c.state.Goals = UpdateGoals(c.state)
}

// stepBankruptcy runs after the month has advanced; it is independent of the
// horizon check.
func (s TickService) stepBankruptcy(c *tickContext) {
	if c.state.Money >= BankruptcyFloor {
		return
	}
	c.state.Status = SessionEnded
	c.state.EndReason = EndReasonBankrupt
	c.ended = true
	c.reason = EndReasonBankrupt
	c.say("Bankrupt! Debt exceeded $10,000 limit.")
	c.emit("session_ended", map[string]any{"reason": string(EndReasonBankrupt), "month": c.state.CurrentMonth})
}
