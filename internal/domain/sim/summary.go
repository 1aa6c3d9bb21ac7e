package sim

import "time"

// SessionSummary is the aggregate record appended at session end for external
// analytics. The engine writes it and never reads it back.
type SessionSummary struct {
	PlayerID      string    `json:"player_id"`
	ClassKey      string    `json:"class_key"`
	EducationKey  string    `json:"education_key"`
	DifficultyKey string    `json:"difficulty_key"`
	TotalInvested float64   `json:"total_invested"`
	TotalSaved    float64   `json:"total_saved"`
	TotalDebtPaid float64   `json:"total_debt_paid"`
	NumLeisure    int       `json:"num_leisure"`
	NumRisky      int       `json:"num_risky"`
	HadAddiction  bool      `json:"had_addiction"`
	FinalNetWorth float64   `json:"final_net_worth"`
	FinalGoals    Goals     `json:"final_goals"`
	FinalScore    int       `json:"final_score"`
	EndReason     EndReason `json:"end_reason"`
	Months        int       `json:"months"`
	EndedAt       time.Time `json:"ended_at"`
}

func BuildSummary(state PlayerState, score int, endedAt time.Time) SessionSummary {
	return SessionSummary{
		PlayerID:      state.PlayerID,
		ClassKey:      state.ClassKey,
		EducationKey:  state.EducationKey,
		DifficultyKey: state.DifficultyKey,
		TotalInvested: state.Totals.Invested,
		TotalSaved:    state.Totals.Saved,
		TotalDebtPaid: state.Totals.DebtPaid,
		NumLeisure:    state.Totals.Leisure,
		NumRisky:      state.Totals.Risky,
		HadAddiction:  state.Totals.HadAddiction,
		FinalNetWorth: state.NetWorth(),
		FinalGoals:    state.Goals,
		FinalScore:    score,
		EndReason:     state.EndReason,
		Months:        state.CurrentMonth,
		EndedAt:       endedAt,
	}
}

// RestoreTotals maps a summary back onto running totals. Kept alongside
// BuildSummary so the two stay field-for-field in sync.
func (s SessionSummary) RestoreTotals() RunningTotals {
	return RunningTotals{
		Invested:     s.TotalInvested,
		Saved:        s.TotalSaved,
		DebtPaid:     s.TotalDebtPaid,
		Leisure:      s.NumLeisure,
		Risky:        s.NumRisky,
		HadAddiction: s.HadAddiction,
	}
}

// TrainingRecord is the early-game feature/outcome row consumed by the
// external goal-prediction model. Field names follow its expected schema.
type TrainingRecord struct {
	EarlyAvgHappiness     float64 `json:"early_avg_happiness"`
	EarlyAvgStress        float64 `json:"early_avg_stress"`
	EarlyTotalInvestments float64 `json:"early_total_investments"`
	EarlyTotalSaved       float64 `json:"early_total_saved"`
	EarlyTotalDebtPaid    float64 `json:"early_total_debt_paid"`
	EarlyNumLeisure       int     `json:"early_num_leisure"`
	EarlyNumRisky         int     `json:"early_num_risky"`
	GoalNetWorth          bool    `json:"goal_networth"`
	GoalEmergency         bool    `json:"goal_emergency"`
	GoalDebtFree          bool    `json:"goal_debtfree"`
	GoalHappiness         bool    `json:"goal_happiness"`
}

func BuildTrainingRecord(state PlayerState) TrainingRecord {
	record := TrainingRecord{
		EarlyTotalInvestments: state.Totals.Invested,
		EarlyTotalSaved:       state.Totals.Saved,
		EarlyTotalDebtPaid:    state.Totals.DebtPaid,
		EarlyNumLeisure:       state.Totals.Leisure,
		EarlyNumRisky:         state.Totals.Risky,
		GoalNetWorth:          state.Goals.NetWorth,
		GoalEmergency:         state.Goals.EmergencyFund,
		GoalDebtFree:          state.Goals.DebtFree,
		GoalHappiness:         state.Goals.Happiness,
	}
	if state.EarlyMonths > 0 {
		record.EarlyAvgHappiness = state.EarlyHappinessSum / float64(state.EarlyMonths)
		record.EarlyAvgStress = state.EarlyStressSum / float64(state.EarlyMonths)
	}
	return record
}
