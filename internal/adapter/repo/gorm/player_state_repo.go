package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"financequest/internal/adapter/repo/gorm/model"
	"financequest/internal/app/ports"
	"financequest/internal/domain/sim"

	"gorm.io/gorm"
)

type PlayerStateRepo struct {
	db *gorm.DB
}

func NewPlayerStateRepo(db *gorm.DB) PlayerStateRepo {
	return PlayerStateRepo{db: db}
}

type earlyWindow struct {
	HappinessSum float64 `json:"happiness_sum"`
	StressSum    float64 `json:"stress_sum"`
	Months       int     `json:"months"`
}

func (r PlayerStateRepo) GetByPlayerID(ctx context.Context, playerID string) (sim.PlayerState, error) {
	var m model.PlayerState
	if err := getDBFromCtx(ctx, r.db).Where("player_id = ?", playerID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return sim.PlayerState{}, ports.ErrNotFound
		}
		return sim.PlayerState{}, err
	}
	return fromModel(m)
}

func (r PlayerStateRepo) SaveWithVersion(ctx context.Context, state sim.PlayerState, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)
	m, err := toModel(state)
	if err != nil {
		return err
	}

	if expectedVersion == 0 {
		return db.Create(&m).Error
	}

	res := db.Model(&model.PlayerState{}).
		Where("player_id = ? AND version = ?", state.PlayerID, expectedVersion).
		Select("*").
		Omit("player_id").
		Updates(&m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func toModel(state sim.PlayerState) (model.PlayerState, error) {
	debuffs, err := json.Marshal(state.Debuffs)
	if err != nil {
		return model.PlayerState{}, err
	}
	goals, err := json.Marshal(state.Goals)
	if err != nil {
		return model.PlayerState{}, err
	}
	totals, err := json.Marshal(state.Totals)
	if err != nil {
		return model.PlayerState{}, err
	}
	early, err := json.Marshal(earlyWindow{
		HappinessSum: state.EarlyHappinessSum,
		StressSum:    state.EarlyStressSum,
		Months:       state.EarlyMonths,
	})
	if err != nil {
		return model.PlayerState{}, err
	}

	m := model.PlayerState{
		PlayerID:         state.PlayerID,
		Status:           string(state.Status),
		EndReason:        string(state.EndReason),
		ClassKey:         state.ClassKey,
		EducationKey:     state.EducationKey,
		DifficultyKey:    state.DifficultyKey,
		Money:            state.Money,
		MonthlyIncome:    state.MonthlyIncome,
		Debt:             state.Debt,
		Investments:      state.Investments,
		EmergencyFund:    state.EmergencyFund,
		Rent:             state.Rent,
		Groceries:        state.Groceries,
		Transport:        state.Transport,
		Happiness:        state.Happiness,
		Stress:           state.Stress,
		CurrentMonth:     state.CurrentMonth,
		MonthsNoIncome:   state.MonthsNoIncome,
		HasVehicle:       state.HasVehicle,
		HasUniversity:    state.HasUniversity,
		HasMasters:       state.HasMasters,
		EducationLevel:   state.EducationLevel,
		ActionsRemaining: state.ActionsRemaining,
		Debuffs:          debuffs,
		Goals:            goals,
		Totals:           totals,
		EarlyWindow:      early,
		Version:          state.Version,
		UpdatedAt:        state.UpdatedAt,
	}
	if state.LockedAction != nil {
		if m.LockedAction, err = json.Marshal(state.LockedAction); err != nil {
			return model.PlayerState{}, err
		}
	}
	if state.PendingEvent != nil {
		if m.PendingEvent, err = json.Marshal(state.PendingEvent); err != nil {
			return model.PlayerState{}, err
		}
	}
	return m, nil
}

func fromModel(m model.PlayerState) (sim.PlayerState, error) {
	state := sim.PlayerState{
		PlayerID:         m.PlayerID,
		Status:           sim.SessionStatus(m.Status),
		EndReason:        sim.EndReason(m.EndReason),
		ClassKey:         m.ClassKey,
		EducationKey:     m.EducationKey,
		DifficultyKey:    m.DifficultyKey,
		Money:            m.Money,
		MonthlyIncome:    m.MonthlyIncome,
		Debt:             m.Debt,
		Investments:      m.Investments,
		EmergencyFund:    m.EmergencyFund,
		Rent:             m.Rent,
		Groceries:        m.Groceries,
		Transport:        m.Transport,
		Happiness:        m.Happiness,
		Stress:           m.Stress,
		CurrentMonth:     m.CurrentMonth,
		MonthsNoIncome:   m.MonthsNoIncome,
		HasVehicle:       m.HasVehicle,
		HasUniversity:    m.HasUniversity,
		HasMasters:       m.HasMasters,
		EducationLevel:   m.EducationLevel,
		ActionsRemaining: m.ActionsRemaining,
		Version:          m.Version,
		UpdatedAt:        m.UpdatedAt,
	}
	if len(m.Debuffs) > 0 {
		if err := json.Unmarshal(m.Debuffs, &state.Debuffs); err != nil {
			return sim.PlayerState{}, err
		}
	}
	if len(m.Goals) > 0 {
		if err := json.Unmarshal(m.Goals, &state.Goals); err != nil {
			return sim.PlayerState{}, err
		}
	}
	if len(m.Totals) > 0 {
		if err := json.Unmarshal(m.Totals, &state.Totals); err != nil {
			return sim.PlayerState{}, err
		}
	}
	if len(m.EarlyWindow) > 0 {
		var early earlyWindow
		if err := json.Unmarshal(m.EarlyWindow, &early); err != nil {
			return sim.PlayerState{}, err
		}
		state.EarlyHappinessSum = early.HappinessSum
		state.EarlyStressSum = early.StressSum
		state.EarlyMonths = early.Months
	}
	if len(m.LockedAction) > 0 {
		var locked sim.ActionRequest
		if err := json.Unmarshal(m.LockedAction, &locked); err != nil {
			return sim.PlayerState{}, err
		}
		state.LockedAction = &locked
	}
	if len(m.PendingEvent) > 0 {
		var pending sim.EmergencyEvent
		if err := json.Unmarshal(m.PendingEvent, &pending); err != nil {
			return sim.PlayerState{}, err
		}
		state.PendingEvent = &pending
	}
	return state, nil
}
