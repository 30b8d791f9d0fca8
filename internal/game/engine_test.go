package game

import (
	"context"
	"strings"
	"testing"

	"github.com/jmcavoy/breach/internal/config"
	"github.com/jmcavoy/breach/internal/log"
)

// TestUnblockedAttackRevealsAsset: a first hit on a facedown asset flips it
// face up with one damage; the defender's hand is untouched.
func TestUnblockedAttackRevealsAsset(t *testing.T) {
	e, logger := newTestEngine(t, nil)
	startGame(t, e, DifficultyHard)
	gs := e.State

	card := threat(gs, 5)
	gs.Player.AttackHand = []*HandCard{card}
	gs.AI.DefenseHand = []*HandCard{control(gs, 1), control(gs, 2)}
	target := gs.AI.Assets[0]

	playerAttack(e, card, target)

	if target.State != AssetRevealed || target.Damage != 1 {
		t.Errorf("Expected revealed asset with 1 damage, got %s", target)
	}
	if len(gs.Player.AttackHand) != 0 || len(gs.Player.AttackDiscard) != 1 {
		t.Error("Expected the attack card moved to the discard")
	}
	if len(gs.AI.DefenseHand) != 2 || gs.AI.Defenses != 0 {
		t.Error("Expected the defender's hand and counter untouched")
	}
	if gs.Phase != PhaseAttack || gs.Attacker != RolePlayer {
		t.Errorf("Expected control back in the player's attack phase, got %s/%s", gs.Phase, gs.Attacker)
	}

	hits := logger.EventsOfType(log.EventAttackHit)
	if len(hits) != 1 {
		t.Fatalf("Expected 1 attack-hit event, got %d", len(hits))
	}
	if !strings.Contains(hits[0].Details, "Observation") {
		t.Errorf("Expected the Observation stage in the hit event, got %q", hits[0].Details)
	}
}

// TestBlockedAttack: a matching control spends both cards, bumps the defense
// counter, and leaves the asset untouched; the defender redraws.
func TestBlockedAttack(t *testing.T) {
	e, logger := newTestEngine(t, nil)
	startGame(t, e, DifficultyBrutal)
	gs := e.State

	card := threat(gs, 5)
	gs.Player.AttackHand = []*HandCard{card}
	gs.AI.DefenseHand = []*HandCard{control(gs, 5)}
	target := gs.AI.Assets[0]

	playerAttack(e, card, target)

	if target.State != AssetFacedown || target.Damage != 0 {
		t.Errorf("Expected the asset untouched behind the block, got %s", target)
	}
	if gs.AI.Defenses != 1 {
		t.Errorf("Expected 1 successful defense, got %d", gs.AI.Defenses)
	}
	if len(gs.Player.AttackDiscard) != 1 || len(gs.AI.DefenseDiscard) != 1 {
		t.Error("Expected both spent cards in their discards")
	}
	if len(gs.AI.DefenseHand) != 2 {
		t.Errorf("Expected the defender to redraw to 2 cards, got %d", len(gs.AI.DefenseHand))
	}
	if gs.SelectedCard != 0 || gs.SelectedAsset != 0 || gs.Attack != nil {
		t.Error("Expected selections and attack context cleared")
	}
	if len(logger.EventsOfType(log.EventDefend)) != 1 {
		t.Error("Expected a defend event")
	}
}

// TestAssetDestructionSequence: three unblocked hits walk one asset through
// revealed and rotated to destroyed; a fourth attack against it is refused.
func TestAssetDestructionSequence(t *testing.T) {
	e, logger := newTestEngine(t, nil)
	startGame(t, e, DifficultyHard)
	gs := e.State

	cards := []*HandCard{threat(gs, 3), threat(gs, 6), threat(gs, 9), threat(gs, 2)}
	gs.Player.AttackHand = append([]*HandCard{}, cards...)
	gs.AI.DefenseHand = nil
	target := gs.AI.Assets[1]

	want := []AssetState{AssetRevealed, AssetRotated, AssetDestroyed}
	for i, state := range want {
		playerAttack(e, cards[i], target)
		if target.State != state {
			t.Fatalf("After hit %d: %s, want %s", i+1, target.State, state)
		}
	}
	if target.Damage != 3 {
		t.Errorf("Expected 3 damage, got %d", target.Damage)
	}
	if len(logger.EventsOfType(log.EventDestroy)) != 1 {
		t.Error("Expected a destroy event")
	}

	// The fourth attack names a destroyed target: silent no-op.
	before := len(logger.Events())
	playerAttack(e, cards[3], target)
	if len(gs.Player.AttackHand) != 1 {
		t.Error("Expected the fourth card still in hand")
	}
	if len(logger.Events()) != before {
		t.Error("Expected no events from the refused attack")
	}
}

// TestBreachWin: destroying two AI assets ends the game in the player's
// favor and freezes further actions.
func TestBreachWin(t *testing.T) {
	e, logger := newTestEngine(t, nil)
	startGame(t, e, DifficultyHard)
	gs := e.State
	gs.AI.DefenseHand = nil

	for _, target := range []*CyberAsset{gs.AI.Assets[0], gs.AI.Assets[1]} {
		for i := 0; i < 3; i++ {
			card := threat(gs, i+1)
			gs.Player.AttackHand = append(gs.Player.AttackHand, card)
			playerAttack(e, card, target)
		}
	}

	if gs.Phase != PhasePlayerWon {
		t.Fatalf("Expected the player to win by breach, got %s", gs.Phase)
	}
	if !strings.Contains(gs.Message, "Player wins") {
		t.Errorf("Unexpected win message %q", gs.Message)
	}
	wins := logger.EventsOfType(log.EventWin)
	if len(wins) != 1 || wins[0].Actor != "Player" {
		t.Fatalf("Expected a single player win event, got %v", wins)
	}

	// Terminal phase: everything is a no-op.
	before := len(logger.Events())
	card := threat(gs, 5)
	gs.Player.AttackHand = append(gs.Player.AttackHand, card)
	playerAttack(e, card, gs.AI.Assets[2])
	e.EndTurn(context.Background())
	if len(logger.Events()) != before || gs.AI.Assets[2].Damage != 0 {
		t.Error("Expected the finished game frozen")
	}
}

// TestDefenseWin: the sixth successful block wins immediately, even
// mid-AI-turn.
func TestDefenseWin(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	e.State.Difficulty = DifficultyHard
	gs := e.State
	gs.Phase = PhaseAttack
	gs.Attacker = RoleAI
	gs.Player.Defenses = 5

	card := threat(gs, 5)
	gs.AI.AttackHand = []*HandCard{card}
	gs.Player.DefenseHand = []*HandCard{control(gs, 5)}

	e.runAITurn(context.Background())

	if gs.Player.Defenses != 6 {
		t.Fatalf("Expected 6 defenses, got %d", gs.Player.Defenses)
	}
	if gs.Phase != PhasePlayerWon {
		t.Errorf("Expected the player to win on defenses, got %s", gs.Phase)
	}
}

// TestWinPriority: when several conditions land in the same resolution,
// breach checks outrank defense checks and the player's board is read first.
func TestWinPriority(t *testing.T) {
	t.Run("PlayerBoardFirst", func(t *testing.T) {
		e, _ := newTestEngine(t, nil)
		startGame(t, e, DifficultyHard)
		gs := e.State

		gs.Player.Assets[0].State = AssetDestroyed
		gs.Player.Assets[1].State = AssetDestroyed
		gs.AI.Assets[0].State = AssetDestroyed
		gs.AI.Assets[1].State = AssetDestroyed
		e.evaluateWin()

		if gs.Phase != PhaseAIWon {
			t.Errorf("Expected the AI win to take priority, got %s", gs.Phase)
		}
	})

	t.Run("BreachOverDefense", func(t *testing.T) {
		e, _ := newTestEngine(t, nil)
		startGame(t, e, DifficultyHard)
		gs := e.State

		gs.AI.Assets[0].State = AssetDestroyed
		gs.AI.Assets[1].State = AssetDestroyed
		gs.AI.Defenses = 6
		e.evaluateWin()

		if gs.Phase != PhasePlayerWon {
			t.Errorf("Expected the breach win to outrank the defense win, got %s", gs.Phase)
		}
		if !strings.Contains(gs.Message, "breached") {
			t.Errorf("Expected a breach reason, got %q", gs.Message)
		}
	})
}

// TestEndTurnReplenishes: ending the turn tops up the attack hand and hands
// the board to the AI, whose turn plays out before control returns.
func TestEndTurnReplenishes(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	startGame(t, e, DifficultyHard)
	gs := e.State
	gs.AI.AttackHand = nil // the AI has nothing to attack with

	e.EndTurn(context.Background())

	if len(gs.Player.AttackHand) != 7 {
		t.Errorf("Expected the player hand replenished to 7, got %d", len(gs.Player.AttackHand))
	}
	if len(gs.AI.AttackHand) != 2 {
		t.Errorf("Expected the AI to redraw 2, got %d", len(gs.AI.AttackHand))
	}
	if gs.Attacker != RolePlayer || gs.Turn != 3 {
		t.Errorf("Expected control back with the player on turn 3, got %s turn %d", gs.Attacker, gs.Turn)
	}
}

// TestAITurnAttacks: the AI picks a target and card, resolves the hit, and
// ends its turn when its hand runs thin.
func TestAITurnAttacks(t *testing.T) {
	e, logger := newTestEngine(t, nil)
	e.State.Difficulty = DifficultyHard
	gs := e.State
	gs.Phase = PhaseAttack
	gs.Attacker = RoleAI

	gs.AI.AttackHand = []*HandCard{threat(gs, 7)}
	gs.Player.DefenseHand = []*HandCard{control(gs, 1)}

	e.runAITurn(context.Background())

	revealed := 0
	for _, a := range gs.Player.Assets {
		if a.State == AssetRevealed {
			revealed++
		}
	}
	if revealed != 1 {
		t.Errorf("Expected exactly one player asset revealed, got %d", revealed)
	}
	if gs.Attacker != RolePlayer {
		t.Errorf("Expected the turn handed back to the player, got %s", gs.Attacker)
	}
	if len(gs.AI.AttackHand) != 2 {
		t.Errorf("Expected the AI hand replenished to 2, got %d", len(gs.AI.AttackHand))
	}
	if len(logger.EventsOfType(log.EventAttackHit)) != 1 {
		t.Error("Expected one attack-hit event")
	}
}

// TestAttackContextCount: repeated attacks within one AI turn accumulate the
// per-turn counter and restate the current stage.
func TestAttackContextCount(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	e.State.Difficulty = DifficultyBrutal
	gs := e.State
	gs.Phase = PhaseAttack
	gs.Attacker = RoleAI
	gs.Player.DefenseHand = nil

	c1, c2 := threat(gs, 4), threat(gs, 8)
	gs.AI.AttackHand = []*HandCard{c1, c2}
	target := gs.Player.Assets[0]

	e.resolveAttack(RoleAI, c1, target)
	e.resolveAttack(RoleAI, c2, target)

	if gs.Attack == nil || gs.Attack.Count != 2 {
		t.Fatalf("Expected an attack count of 2, got %+v", gs.Attack)
	}
	if gs.Attack.Stage != StageAssessment {
		t.Errorf("Expected the second hit at the Assessment stage, got %s", gs.Attack.Stage)
	}
}

// TestSilentNoOps: requests that are illegal in the current state change
// nothing and log nothing.
func TestSilentNoOps(t *testing.T) {
	e, logger := newTestEngine(t, nil)
	gs := e.State
	ctx := context.Background()

	// Nothing is legal before a difficulty is chosen.
	e.SelectCard(gs.Player.AttackHand[0].ID)
	e.SelectAsset(gs.AI.Assets[0].ID)
	e.Attack()
	e.EndTurn(ctx)
	e.SetDifficulty(ctx, DifficultyNone)
	if gs.Phase != PhaseDifficultySelect || len(logger.Events()) != 0 {
		t.Fatal("Expected pre-game requests ignored")
	}

	startGame(t, e, DifficultyHard)

	// Difficulty is locked in.
	e.SetDifficulty(ctx, DifficultyEasy)
	if gs.Difficulty != DifficultyHard {
		t.Error("Expected the difficulty locked after selection")
	}

	// An attack without a full selection goes nowhere.
	before := len(logger.Events())
	e.SelectCard(0)
	e.SelectAsset(gs.AI.Assets[0].ID)
	e.Attack()
	if len(logger.Events()) != before {
		t.Error("Expected an incomplete attack ignored")
	}

	// Targeting one's own asset goes nowhere: the ID resolves on the wrong side.
	e.SelectCard(gs.Player.AttackHand[0].ID)
	e.SelectAsset(gs.Player.Assets[0].ID)
	e.Attack()
	if len(logger.Events()) != before || gs.Player.Assets[0].Damage != 0 {
		t.Error("Expected a self-targeted attack ignored")
	}
}

// TestDeterministicReplay: the same seed and the same requests produce the
// same transcript.
func TestDeterministicReplay(t *testing.T) {
	run := func(seed int64) (string, string) {
		logger := log.NewMemoryLogger()
		e := NewEngine(Config{
			Balance: config.Default(),
			Rand:    NewRand(seed),
			Logger:  logger,
			Pacer:   NewNoopPacer(),
		})
		ctx := context.Background()
		e.SetDifficulty(ctx, DifficultyHard)
		for i := 0; i < 30 && !e.State.Phase.Terminal(); i++ {
			if e.State.Attacker != RolePlayer {
				break
			}
			if len(e.State.Player.AttackHand) > 0 {
				if targets := e.State.AI.LiveAssets(); len(targets) > 0 {
					playerAttack(e, e.State.Player.AttackHand[0], targets[0])
				}
			}
			if !e.State.Phase.Terminal() {
				e.EndTurn(ctx)
			}
		}
		return log.FormatAll(logger.Events()), e.State.Message
	}

	logA, msgA := run(7)
	logB, msgB := run(7)
	if logA != logB {
		t.Errorf("Transcripts diverge under the same seed:\n%s\n---\n%s", logA, logB)
	}
	if msgA != msgB {
		t.Errorf("Final messages diverge: %q vs %q", msgA, msgB)
	}
}

// TestPileExhaustionKeepsGameAlive: empty piles short the redraws but never
// halt the game.
func TestPileExhaustionKeepsGameAlive(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	startGame(t, e, DifficultyHard)
	gs := e.State

	gs.AttackPile = nil
	gs.DefensePile = nil
	gs.AI.AttackHand = nil

	e.EndTurn(context.Background())

	if len(gs.Player.AttackHand) != 5 {
		t.Errorf("Expected the player hand unchanged on empty piles, got %d", len(gs.Player.AttackHand))
	}
	if gs.Phase.Terminal() {
		t.Error("Expected the game still running")
	}
	if gs.Turn != 3 || gs.Attacker != RolePlayer {
		t.Errorf("Expected play to continue normally, got turn %d attacker %s", gs.Turn, gs.Attacker)
	}
}

// TestReset: a reset deals a fresh game back at difficulty select while the
// action log keeps running.
func TestReset(t *testing.T) {
	e, logger := newTestEngine(t, nil)
	startGame(t, e, DifficultyBrutal)
	e.EndTurn(context.Background())
	played := len(logger.Events())

	e.Reset()
	gs := e.State

	if gs.Phase != PhaseDifficultySelect || gs.Turn != 1 {
		t.Errorf("Expected a fresh game at difficulty select, got %s turn %d", gs.Phase, gs.Turn)
	}
	if len(gs.Player.AttackHand) != 5 || len(gs.Player.AttackDiscard) != 0 {
		t.Error("Expected freshly dealt hands and empty discards")
	}
	if got := logger.EventsOfType(log.EventReset); len(got) != 1 {
		t.Fatalf("Expected a reset event, got %d", len(got))
	}
	if len(logger.Events()) != played+1 {
		t.Error("Expected the pre-reset log retained")
	}
}

// countingPacer records how often a pacing wait actually happened.
type countingPacer struct{ waits int }

func (p *countingPacer) Wait(ctx context.Context) { p.waits++ }

// TestSkipCollapsesPacing: a skip request suppresses waits without touching
// game state.
func TestSkipCollapsesPacing(t *testing.T) {
	cp := &countingPacer{}
	e := NewEngine(Config{
		Balance: config.Default(),
		Rand:    &stubRand{},
		Logger:  log.NewMemoryLogger(),
		Pacer:   cp,
	})
	ctx := context.Background()

	e.pace(ctx)
	if cp.waits != 1 {
		t.Fatalf("Expected 1 wait, got %d", cp.waits)
	}

	e.RequestSkip()
	e.pace(ctx)
	if cp.waits != 1 {
		t.Errorf("Expected the skipped wait suppressed, got %d", cp.waits)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	e.skip.Store(false)
	e.pace(cancelled)
	if cp.waits != 1 {
		t.Errorf("Expected no wait on a cancelled context, got %d", cp.waits)
	}
}
