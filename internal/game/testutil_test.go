package game

import (
	"context"
	"testing"

	"github.com/jmcavoy/breach/internal/config"
	"github.com/jmcavoy/breach/internal/log"
)

// stubRand is a scripted Rand for deterministic tests. Queued values are
// consumed in order; an exhausted queue yields zero, so shuffles stay
// deterministic and every Bernoulli draw succeeds unless a test queues a
// value above the chance under test.
type stubRand struct {
	ints   []int
	floats []float64
}

func (r *stubRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func (r *stubRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// newTestEngine builds an engine with a memory logger, no pacing delays, and
// the given Rand (a fresh all-zeros stubRand when nil, which makes the
// opening coin flip land on the player).
func newTestEngine(t *testing.T, rng Rand) (*Engine, *log.MemoryLogger) {
	t.Helper()
	if rng == nil {
		rng = &stubRand{}
	}
	logger := log.NewMemoryLogger()
	return NewEngine(Config{
		Balance: config.Default(),
		Rand:    rng,
		Logger:  logger,
		Pacer:   NewNoopPacer(),
	}), logger
}

// startGame sets the difficulty and verifies the coin flip gave the player
// the first attack, which is what the default stubRand produces.
func startGame(t *testing.T, e *Engine, d Difficulty) {
	t.Helper()
	e.SetDifficulty(context.Background(), d)
	if e.State.Phase != PhaseAttack {
		t.Fatalf("Expected attack phase after difficulty select, got %s", e.State.Phase)
	}
	if e.State.Attacker != RolePlayer {
		t.Fatalf("Expected player to win the coin flip, got %s", e.State.Attacker)
	}
}

// playerAttack selects a card and target and resolves the attack.
func playerAttack(e *Engine, card *HandCard, target *CyberAsset) {
	e.SelectCard(card.ID)
	e.SelectAsset(target.ID)
	e.Attack()
}

// --- Test card helpers ---

func threat(gs *GameState, v int) *HandCard {
	return &HandCard{
		ID:   gs.NextID(),
		Card: Card{Kind: KindThreat, Suit: SuitHearts, Value: v, Risk: RiskByValue(v)},
	}
}

func control(gs *GameState, v int) *HandCard {
	return &HandCard{
		ID:   gs.NextID(),
		Card: Card{Kind: KindControl, Suit: SuitSpades, Value: v, Control: ControlByValue(v)},
	}
}

func jokerCard(gs *GameState, color JokerColor) *HandCard {
	return &HandCard{
		ID:   gs.NextID(),
		Card: Card{Kind: KindJoker, Color: color},
	}
}
