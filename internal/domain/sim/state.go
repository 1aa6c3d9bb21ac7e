package sim

import (
	"errors"
	"time"
)

var (
	ErrUnknownClass      = errors.New("unknown class preset")
	ErrUnknownEducation  = errors.New("unknown education preset")
	ErrUnknownDifficulty = errors.New("unknown difficulty preset")
)

// NewPlayerState builds the initial state for a session from the three
// selected presets. Construction is deterministic: no randomness at start.
func NewPlayerState(playerID, classKey, educationKey, difficultyKey string, cat Catalog, now time.Time) (PlayerState, error) {
	class, ok := cat.Classes[classKey]
	if !ok {
		return PlayerState{}, ErrUnknownClass
	}
	education, ok := cat.Educations[educationKey]
	if !ok {
		return PlayerState{}, ErrUnknownEducation
	}
	if _, ok := cat.Difficulties[difficultyKey]; !ok {
		return PlayerState{}, ErrUnknownDifficulty
	}

	return PlayerState{
		PlayerID:         playerID,
		Status:           SessionInProgress,
		ClassKey:         classKey,
		EducationKey:     educationKey,
		DifficultyKey:    difficultyKey,
		Money:            class.StartingMoney,
		MonthlyIncome:    education.Income,
		Debt:             class.Debt + education.Cost,
		Rent:             class.Rent,
		Groceries:        class.Groceries,
		Transport:        class.Transport,
		Happiness:        StartingHappiness,
		EducationLevel:   educationKey,
		HasUniversity:    educationKey == "university" || educationKey == "masters",
		HasMasters:       educationKey == "masters",
		ActionsRemaining: ActionsPerMonth,
		Version:          1,
		UpdatedAt:        now,
	}, nil
}

// NetWorth is money + investments + emergency fund - debt.
func (s PlayerState) NetWorth() float64 {
	return s.Money + s.Investments + s.EmergencyFund - s.Debt
}

func (s PlayerState) TotalExpenses() float64 {
	return s.Rent + s.Groceries + s.Transport
}

func (s PlayerState) HasDebuff(d Debuff) bool {
	for _, active := range s.Debuffs {
		if active == d {
			return true
		}
	}
	return false
}

func (s *PlayerState) AddDebuff(d Debuff) bool {
	if s.HasDebuff(d) {
		return false
	}
	s.Debuffs = append(s.Debuffs, d)
	if d == DebuffAddict {
		s.Totals.HadAddiction = true
	}
	return true
}

func (s *PlayerState) RemoveDebuff(targets ...Debuff) {
	if len(s.Debuffs) == 0 {
		return
	}
	kept := s.Debuffs[:0]
	for _, active := range s.Debuffs {
		drop := false
		for _, t := range targets {
			if active == t {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, active)
		}
	}
	s.Debuffs = kept
}

// ClampWellBeing enforces 0 <= happiness,stress <= 100. Called after every
// mutation that touches either value.
func (s *PlayerState) ClampWellBeing() {
	s.Happiness = clamp01Hundred(s.Happiness)
	s.Stress = clamp01Hundred(s.Stress)
}

func clamp01Hundred(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
