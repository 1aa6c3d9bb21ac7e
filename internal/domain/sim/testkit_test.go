package sim

import (
	"testing"
	"time"
)

// scriptedRand pops scripted values in order and falls back to quiet defaults
// once the script runs out: 0.99 suppresses every probabilistic trigger and
// keeps the simulation deterministic.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

func quietRand() *scriptedRand { return &scriptedRand{} }

func newTestState(t *testing.T, classKey, educationKey, difficultyKey string) PlayerState {
	t.Helper()
	state, err := NewPlayerState("player-1", classKey, educationKey, difficultyKey, DefaultCatalog(), time.Unix(1000, 0))
	if err != nil {
		t.Fatalf("new player state: %v", err)
	}
	return state
}

func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-6
}
