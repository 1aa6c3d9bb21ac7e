package sim

// UpdateGoals ORs the current targets into the already-achieved flags.
// A goal achieved earlier in the session never resets.
func UpdateGoals(state PlayerState) Goals {
	g := state.Goals
	if state.NetWorth() >= GoalNetWorthTarget {
		g.NetWorth = true
	}
	if state.EmergencyFund >= GoalEmergencyFundTarget {
		g.EmergencyFund = true
	}
	if state.Debt <= 0 {
		g.DebtFree = true
	}
	if state.Happiness >= GoalHappinessTarget {
		g.Happiness = true
	}
	return g
}
