package sim

import "time"

// Debuff is a persistent negative status flag. The set is closed: anything
// outside these three values is unrepresentable in the engine.
type Debuff string

const (
	DebuffAddict     Debuff = "addict"
	DebuffUnhappy    Debuff = "unhappy"
	DebuffDistracted Debuff = "distracted"
)

type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionEnded      SessionStatus = "ended"
)

type EndReason string

const (
	EndReasonCompleted EndReason = "completed"
	EndReasonBankrupt  EndReason = "bankrupt"
)

type ActionKind string

const (
	ActionInvest            ActionKind = "invest"
	ActionWithdraw          ActionKind = "withdraw"
	ActionSaveEmergency     ActionKind = "save_emergency"
	ActionWithdrawEmergency ActionKind = "withdraw_emergency"
	ActionPayDebt           ActionKind = "pay_debt"
	ActionLifeChoice        ActionKind = "life_choice"
	ActionTreatAddiction    ActionKind = "treat_addiction"
	ActionSeekTherapy       ActionKind = "seek_therapy"
)

// ActionRequest is the single player command shape. Amount is used by the
// money-moving kinds, Choice by ActionLifeChoice.
type ActionRequest struct {
	Kind   ActionKind `json:"kind"`
	Amount float64    `json:"amount,omitempty"`
	Choice string     `json:"choice,omitempty"`
}

type RejectReason string

const (
	RejectNoActionsLeft     RejectReason = "no_actions_left"
	RejectInvalidAmount     RejectReason = "invalid_amount"
	RejectInsufficientFunds RejectReason = "insufficient_funds"
	RejectNoInvestments     RejectReason = "no_investments"
	RejectEmptyFund         RejectReason = "empty_fund"
	RejectNothingToPay      RejectReason = "nothing_to_pay"
	RejectAlreadyOwned      RejectReason = "already_owned"
	RejectMissingPrereq     RejectReason = "missing_prerequisite"
	RejectUnknownChoice     RejectReason = "unknown_choice"
	RejectUnknownAction     RejectReason = "unknown_action"
)

// Goals are monotonic within a session: once a flag is set it stays set.
type Goals struct {
	NetWorth      bool `json:"net_worth"`
	EmergencyFund bool `json:"emergency_fund"`
	DebtFree      bool `json:"debt_free"`
	Happiness     bool `json:"happiness"`
}

func (g Goals) CompletedCount() int {
	n := 0
	for _, done := range []bool{g.NetWorth, g.EmergencyFund, g.DebtFree, g.Happiness} {
		if done {
			n++
		}
	}
	return n
}

func (g Goals) AsMap() map[string]bool {
	return map[string]bool{
		"net_worth":      g.NetWorth,
		"emergency_fund": g.EmergencyFund,
		"debt_free":      g.DebtFree,
		"happiness":      g.Happiness,
	}
}

// RunningTotals are the aggregate counters the action resolver maintains as a
// side effect. They feed the session summary and training record at game end.
type RunningTotals struct {
	Invested     float64 `json:"invested"`
	Saved        float64 `json:"saved"`
	DebtPaid     float64 `json:"debt_paid"`
	Leisure      int     `json:"leisure"`
	Risky        int     `json:"risky"`
	HadAddiction bool    `json:"had_addiction"`
}

// PlayerState is the mutable record of one playthrough. Services take it by
// value and return an updated copy; nothing mutates a stored state in place.
type PlayerState struct {
	PlayerID  string        `json:"player_id"`
	Status    SessionStatus `json:"status"`
	EndReason EndReason     `json:"end_reason,omitempty"`

	ClassKey      string `json:"class_key"`
	EducationKey  string `json:"education_key"`
	DifficultyKey string `json:"difficulty_key"`

	Money         float64 `json:"money"`
	MonthlyIncome float64 `json:"monthly_income"`
	Debt          float64 `json:"debt"`
	Investments   float64 `json:"investments"`
	EmergencyFund float64 `json:"emergency_fund"`
	Rent          float64 `json:"rent"`
	Groceries     float64 `json:"groceries"`
	Transport     float64 `json:"transport"`

	Happiness float64 `json:"happiness"`
	Stress    float64 `json:"stress"`

	CurrentMonth   int `json:"current_month"`
	MonthsNoIncome int `json:"months_no_income"`

	Debuffs        []Debuff `json:"debuffs"`
	HasVehicle     bool     `json:"has_vehicle"`
	HasUniversity  bool     `json:"has_university"`
	HasMasters     bool     `json:"has_masters"`
	EducationLevel string   `json:"education_level"`

	ActionsRemaining int             `json:"actions_remaining"`
	LockedAction     *ActionRequest  `json:"locked_action,omitempty"`
	PendingEvent     *EmergencyEvent `json:"pending_event,omitempty"`

	Goals  Goals         `json:"goals"`
	Totals RunningTotals `json:"totals"`

	// First-six-months happiness/stress samples for the training record.
	EarlyHappinessSum float64 `json:"early_happiness_sum"`
	EarlyStressSum    float64 `json:"early_stress_sum"`
	EarlyMonths       int     `json:"early_months"`

	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ActionOutcome is the full result of one action resolution. A rejected
// outcome carries the state unchanged and never consumes a budget slot.
type ActionOutcome struct {
	UpdatedState PlayerState   `json:"updated_state"`
	Message      string        `json:"message"`
	Rejected     bool          `json:"rejected"`
	Reason       RejectReason  `json:"reason,omitempty"`
	Events       []DomainEvent `json:"events,omitempty"`
}

// TickResult is the outcome of one AdvanceMonth transition.
type TickResult struct {
	UpdatedState PlayerState     `json:"updated_state"`
	Message      string          `json:"message"`
	SessionEnded bool            `json:"session_ended"`
	EndReason    EndReason       `json:"end_reason,omitempty"`
	PendingEvent *EmergencyEvent `json:"pending_event,omitempty"`
	Events       []DomainEvent   `json:"events,omitempty"`
}

type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}
