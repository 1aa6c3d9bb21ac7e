package gormrepo

import (
	"context"
	"errors"

	"financequest/internal/adapter/repo/gorm/model"
	"financequest/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// highScoreRowID: the table holds exactly one row.
const highScoreRowID = 1

type HighScoreRepo struct {
	db *gorm.DB
}

func NewHighScoreRepo(db *gorm.DB) HighScoreRepo {
	return HighScoreRepo{db: db}
}

func (r HighScoreRepo) Get(ctx context.Context) (int, error) {
	var m model.HighScore
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", highScoreRowID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ports.ErrNotFound
		}
		return 0, err
	}
	return m.Score, nil
}

func (r HighScoreRepo) Put(ctx context.Context, score int) error {
	m := model.HighScore{ID: highScoreRowID, Score: score}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score"}),
	}).Create(&m).Error
}
