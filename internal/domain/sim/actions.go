package sim

import (
	"fmt"
	"time"
)

// ActionService validates and applies exactly one player action per call.
// A successful application consumes one budget slot; a rejection leaves the
// state untouched and the budget intact.
type ActionService struct {
	Catalog Catalog
}

func (s ActionService) Apply(state PlayerState, req ActionRequest, rng Rand, now time.Time) ActionOutcome {
	return s.apply(state, req, rng, now, true)
}

func (s ActionService) apply(state PlayerState, req ActionRequest, rng Rand, now time.Time, consumeBudget bool) ActionOutcome {
	if consumeBudget && state.ActionsRemaining <= 0 {
		return reject(state, RejectNoActionsLeft, "No actions left this month!")
	}

	var out ActionOutcome
	switch req.Kind {
	case ActionInvest:
		out = s.invest(state, req.Amount)
	case ActionWithdraw:
		out = s.withdraw(state, req.Amount)
	case ActionSaveEmergency:
		out = s.saveEmergency(state, req.Amount)
	case ActionWithdrawEmergency:
		out = s.withdrawEmergency(state, req.Amount)
	case ActionPayDebt:
		out = s.payDebt(state, req.Amount)
	case ActionLifeChoice:
		out = s.lifeChoice(state, req.Choice, rng)
	case ActionTreatAddiction:
		out = s.treatAddiction(state, rng)
	case ActionSeekTherapy:
		out = s.seekTherapy(state)
	default:
		out = reject(state, RejectUnknownAction, fmt.Sprintf("Unknown action %q", req.Kind))
	}
	if out.Rejected {
		return out
	}

	if consumeBudget {
		out.UpdatedState.ActionsRemaining--
	}
	out.UpdatedState.ClampWellBeing()
	out.UpdatedState.Version++
	out.UpdatedState.UpdatedAt = now
	out.Events = append(out.Events, DomainEvent{
		Type:       "action_applied",
		OccurredAt: now,
		Payload: map[string]any{
			"kind":    string(req.Kind),
			"choice":  req.Choice,
			"amount":  req.Amount,
			"message": out.Message,
			"month":   out.UpdatedState.CurrentMonth,
		},
	})
	return out
}

func (s ActionService) invest(state PlayerState, amount float64) ActionOutcome {
	if !validAmount(amount) {
		return reject(state, RejectInvalidAmount, "Invalid amount!")
	}
	if state.Money < amount {
		return reject(state, RejectInsufficientFunds, "Not enough money!")
	}
	state.Money -= amount
	state.Investments += amount
	state.Totals.Invested += amount
	return ok(state, fmt.Sprintf("Invested $%.0f", amount))
}

func (s ActionService) withdraw(state PlayerState, amount float64) ActionOutcome {
	if !validAmount(amount) {
		return reject(state, RejectInvalidAmount, "Invalid amount!")
	}
	withdrawal := min(amount, state.Investments)
	if withdrawal <= 0 {
		return reject(state, RejectNoInvestments, "No investments!")
	}
	state.Investments -= withdrawal
	state.Money += withdrawal
	return ok(state, fmt.Sprintf("Withdrew $%.0f", withdrawal))
}

// saveEmergency caps contributions at EmergencyFundDepositCap per call.
func (s ActionService) saveEmergency(state PlayerState, amount float64) ActionOutcome {
	if !validAmount(amount) {
		return reject(state, RejectInvalidAmount, "Invalid amount!")
	}
	contribution := min(amount, EmergencyFundDepositCap)
	if state.Money < contribution {
		return reject(state, RejectInsufficientFunds, "Not enough money!")
	}
	state.Money -= contribution
	state.EmergencyFund += contribution
	state.Totals.Saved += contribution
	return ok(state, fmt.Sprintf("Saved $%.0f", contribution))
}

func (s ActionService) withdrawEmergency(state PlayerState, amount float64) ActionOutcome {
	if !validAmount(amount) {
		return reject(state, RejectInvalidAmount, "Invalid amount!")
	}
	withdrawal := min(amount, state.EmergencyFund)
	if withdrawal <= 0 {
		return reject(state, RejectEmptyFund, "Emergency fund is empty!")
	}
	state.EmergencyFund -= withdrawal
	state.Money += withdrawal
	return ok(state, fmt.Sprintf("Withdrew $%.0f from emergency fund", withdrawal))
}

// payDebt caps the payment at min(requested, debt, money) so the call never
// overdraws beyond what the player actually holds or owes.
func (s ActionService) payDebt(state PlayerState, amount float64) ActionOutcome {
	if !validAmount(amount) {
		return reject(state, RejectInvalidAmount, "Invalid amount!")
	}
	payment := min(amount, min(state.Debt, state.Money))
	if payment <= 0 {
		return reject(state, RejectNothingToPay, "Nothing to pay!")
	}
	state.Money -= payment
	state.Debt -= payment
	state.Stress -= PayDebtStressRelief
	state.Totals.DebtPaid += payment
	return ok(state, fmt.Sprintf("Paid $%.0f debt", payment))
}

// lifeChoice applies a catalog entry. One-time validation order: vehicle
// owned, university owned, masters owned or prerequisite missing, then funds.
// The first failing check wins.
func (s ActionService) lifeChoice(state PlayerState, key string, rng Rand) ActionOutcome {
	choice, okKey := s.Catalog.LifeChoices[key]
	if !okKey {
		return reject(state, RejectUnknownChoice, fmt.Sprintf("Unknown choice %q", key))
	}

	if key == "vehicle" && state.HasVehicle {
		return reject(state, RejectAlreadyOwned, "You already own a vehicle!")
	}
	if key == "university" && state.HasUniversity {
		return reject(state, RejectAlreadyOwned, "You already have a degree!")
	}
	if key == "masters" {
		if state.HasMasters {
			return reject(state, RejectAlreadyOwned, "Already have a master's!")
		}
		if !state.HasUniversity {
			return reject(state, RejectMissingPrereq, "Need University degree first!")
		}
	}
	if state.Money < choice.Cost {
		return reject(state, RejectInsufficientFunds, "Not enough money!")
	}

	// Gambling rolls the win before anything else is applied: a win pays out
	// and skips the happiness/stress/debuff path entirely.
	if key == "gambling" && choice.WinChance > 0 && rng.Float64() < choice.WinChance {
		state.Money -= choice.Cost
		state.Money += choice.WinAmount
		state.Totals.Risky++
		return ok(state, fmt.Sprintf("You won $%.0f!", choice.WinAmount))
	}

	state.Money -= choice.Cost

	if choice.Category == CategoryEducation {
		return s.education(state, key, choice)
	}

	state.Happiness += choice.Happiness
	state.Stress += choice.Stress
	state.ClampWellBeing()

	switch choice.Category {
	case CategoryLeisure:
		state.Totals.Leisure++
	case CategoryRisky:
		state.Totals.Risky++
		if choice.DebuffChance > 0 && rng.Float64() < choice.DebuffChance {
			if state.AddDebuff(choice.Debuff) {
				return ok(state, fmt.Sprintf("Addicted to %s!", choice.Name))
			}
		}
	case CategoryUtility:
		if key == "vehicle" {
			state.HasVehicle = true
		}
	}

	return ok(state, fmt.Sprintf("%s: Happiness +%.0f", choice.Name, choice.Happiness))
}

// education purchases are debt-financed: the cost lands on the debt balance
// and the cash debit is refunded, leaving money unchanged.
func (s ActionService) education(state PlayerState, key string, choice LifeChoice) ActionOutcome {
	state.Debt += choice.Cost
	state.Money += choice.Cost
	state.EducationLevel = key

	switch key {
	case "university":
		state.MonthlyIncome += UniversityIncomeBoost
		state.HasUniversity = true
		state.Happiness += UniversityHappinessUp
		state.Stress += UniversityStressUp
		state.ClampWellBeing()
		return ok(state, fmt.Sprintf("Degree Earned! Income +$%d/mo (Added to debt)", UniversityIncomeBoost))
	case "masters":
		state.MonthlyIncome += MastersIncomeBoost
		state.HasMasters = true
		state.Happiness += MastersHappinessUp
		state.Stress += MastersStressUp
		state.ClampWellBeing()
		return ok(state, fmt.Sprintf("Masters Earned! Income +$%d/mo (Added to debt)", MastersIncomeBoost))
	default:
		return reject(state, RejectUnknownChoice, fmt.Sprintf("Unknown education %q", key))
	}
}

// treatAddiction always spends the fee; the cure succeeds with probability
// happiness/100.
func (s ActionService) treatAddiction(state PlayerState, rng Rand) ActionOutcome {
	if !state.HasDebuff(DebuffAddict) {
		return reject(state, RejectMissingPrereq, "No addiction to treat!")
	}
	if state.Money < RehabCost {
		return reject(state, RejectInsufficientFunds, "Need $1500 for treatment")
	}
	successChance := state.Happiness / 100
	state.Money -= RehabCost
	if rng.Float64() < successChance {
		state.RemoveDebuff(DebuffAddict)
		state.Happiness += RehabHappinessBonus
		return ok(state, "Addiction cured!")
	}
	return ok(state, "Treatment failed. Need higher happiness.")
}

func (s ActionService) seekTherapy(state PlayerState) ActionOutcome {
	if state.Money < TherapyCost {
		return reject(state, RejectInsufficientFunds, "Need $800 for therapy")
	}
	state.Money -= TherapyCost
	state.RemoveDebuff(DebuffUnhappy, DebuffDistracted)
	state.Stress -= TherapyStressRelief
	state.Happiness += TherapyHappinessGain
	return ok(state, "Therapy successful!")
}

func validAmount(amount float64) bool {
	return amount > 0 && amount <= MaxCustomAmount
}

func ok(state PlayerState, message string) ActionOutcome {
	return ActionOutcome{UpdatedState: state, Message: message}
}

func reject(state PlayerState, reason RejectReason, message string) ActionOutcome {
	return ActionOutcome{UpdatedState: state, Message: message, Rejected: true, Reason: reason}
}
