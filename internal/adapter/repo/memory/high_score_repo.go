package memory

import (
	"context"

	"financequest/internal/app/ports"
)

type HighScoreRepo struct {
	store *Store
}

func NewHighScoreRepo(store *Store) HighScoreRepo {
	return HighScoreRepo{store: store}
}

func (r HighScoreRepo) Get(_ context.Context) (int, error) {
	if !r.store.hasScore {
		return 0, ports.ErrNotFound
	}
	return r.store.highScore, nil
}

func (r HighScoreRepo) Put(_ context.Context, score int) error {
	r.store.highScore = score
	r.store.hasScore = true
	return nil
}
