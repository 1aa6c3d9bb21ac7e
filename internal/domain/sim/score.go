package sim

// Score is a pure function of state: net worth plus goal, happiness and
// longevity bonuses, floored at zero.
func Score(state PlayerState) int {
	raw := state.NetWorth() +
		float64(state.Goals.CompletedCount()*GoalScoreBonus) +
		state.Happiness*HappinessScoreWeight +
		float64(state.CurrentMonth*MonthScoreWeight)
	if raw < 0 {
		return 0
	}
	return int(raw)
}
