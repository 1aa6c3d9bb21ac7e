package sim

import (
	"errors"
	"testing"
	"time"
)

func TestNewPlayerStateFromPresets(t *testing.T) {
	state := newTestState(t, "middle", "polytechnic", "normal")

	if state.Money != 15000 {
		t.Fatalf("expected starting money 15000, got %.2f", state.Money)
	}
	if state.MonthlyIncome != 3500 {
		t.Fatalf("expected income 3500, got %.2f", state.MonthlyIncome)
	}
	if state.Debt != 5000 {
		t.Fatalf("expected debt 5000, got %.2f", state.Debt)
	}
	if got := state.TotalExpenses(); got != 2300 {
		t.Fatalf("expected expenses 2300, got %.2f", got)
	}
	if state.Happiness != StartingHappiness || state.Stress != 0 {
		t.Fatalf("unexpected well-being: h=%.0f s=%.0f", state.Happiness, state.Stress)
	}
	if state.ActionsRemaining != ActionsPerMonth {
		t.Fatalf("expected full action budget, got %d", state.ActionsRemaining)
	}
	if state.Status != SessionInProgress || state.Version != 1 {
		t.Fatalf("unexpected session bootstrap: status=%s version=%d", state.Status, state.Version)
	}
}

func TestNewPlayerStateEducationDebtFinanced(t *testing.T) {
	state := newTestState(t, "lower", "masters", "hard")

	if state.Debt != 15000+50000 {
		t.Fatalf("expected class debt plus tuition, got %.2f", state.Debt)
	}
	if state.MonthlyIncome != 6500 {
		t.Fatalf("expected masters income 6500, got %.2f", state.MonthlyIncome)
	}
	if !state.HasUniversity || !state.HasMasters {
		t.Fatalf("masters start should grant both degrees")
	}
}

func TestNewPlayerStateUnknownPresets(t *testing.T) {
	cat := DefaultCatalog()
	now := time.Unix(1000, 0)

	if _, err := NewPlayerState("p", "nobility", "polytechnic", "normal", cat, now); !errors.Is(err, ErrUnknownClass) {
		t.Fatalf("expected ErrUnknownClass, got %v", err)
	}
	if _, err := NewPlayerState("p", "middle", "phd", "normal", cat, now); !errors.Is(err, ErrUnknownEducation) {
		t.Fatalf("expected ErrUnknownEducation, got %v", err)
	}
	if _, err := NewPlayerState("p", "middle", "polytechnic", "nightmare", cat, now); !errors.Is(err, ErrUnknownDifficulty) {
		t.Fatalf("expected ErrUnknownDifficulty, got %v", err)
	}
}

func TestNetWorth(t *testing.T) {
	state := PlayerState{Money: 1000, Investments: 500, EmergencyFund: 200, Debt: 300}
	if got := state.NetWorth(); got != 1400 {
		t.Fatalf("expected net worth 1400, got %.2f", got)
	}
}

func TestDebuffOps(t *testing.T) {
	state := PlayerState{}
	if !state.AddDebuff(DebuffAddict) {
		t.Fatalf("expected first add to succeed")
	}
	if state.AddDebuff(DebuffAddict) {
		t.Fatalf("expected duplicate add to report no-op")
	}
	if !state.Totals.HadAddiction {
		t.Fatalf("addict debuff should mark HadAddiction")
	}
	state.AddDebuff(DebuffUnhappy)
	state.AddDebuff(DebuffDistracted)

	state.RemoveDebuff(DebuffUnhappy, DebuffDistracted)
	if !state.HasDebuff(DebuffAddict) || state.HasDebuff(DebuffUnhappy) || state.HasDebuff(DebuffDistracted) {
		t.Fatalf("unexpected debuffs after removal: %v", state.Debuffs)
	}
}

func TestClampWellBeing(t *testing.T) {
	state := PlayerState{Happiness: 130, Stress: -20}
	state.ClampWellBeing()
	if state.Happiness != 100 || state.Stress != 0 {
		t.Fatalf("expected clamp to [0,100], got h=%.0f s=%.0f", state.Happiness, state.Stress)
	}
}
