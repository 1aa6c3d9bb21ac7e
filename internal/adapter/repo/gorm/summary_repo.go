package gormrepo

import (
	"context"
	"encoding/json"
	"time"

	"financequest/internal/adapter/repo/gorm/model"
	"financequest/internal/domain/sim"

	"gorm.io/gorm"
)

type SummaryRepo struct {
	db *gorm.DB
}

func NewSummaryRepo(db *gorm.DB) SummaryRepo {
	return SummaryRepo{db: db}
}

func (r SummaryRepo) AppendSummary(ctx context.Context, summary sim.SessionSummary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	row := model.SessionSummary{
		PlayerID:  summary.PlayerID,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
	return getDBFromCtx(ctx, r.db).Create(&row).Error
}

func (r SummaryRepo) AppendTrainingRecord(ctx context.Context, record sim.TrainingRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	row := model.TrainingRecord{
		Payload:   payload,
		CreatedAt: time.Now(),
	}
	return getDBFromCtx(ctx, r.db).Create(&row).Error
}
