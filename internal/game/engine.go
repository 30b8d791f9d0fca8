package game

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jmcavoy/breach/internal/config"
	"github.com/jmcavoy/breach/internal/log"
)

// ActionLogCap is how many recent action-log entries a session retains.
const ActionLogCap = 200

// Config holds configuration for creating a new engine.
type Config struct {
	Balance config.Balance  // zero value uses config.Default()
	Seed    int64           // RNG seed (0 for time-based)
	Rand    Rand            // overrides Seed when set (for deterministic tests)
	Logger  log.EventLogger // defaults to a RingLogger capped at ActionLogCap
	Pacer   Pacer           // defaults to a delay pacer using Balance.AIStepDelayMS
}

// Engine owns one game session and is its only mutator. All operations are
// synchronous and single-writer; illegal-state requests are silent no-ops.
// RequestSkip is the one method safe to call concurrently with a running
// AI turn.
type Engine struct {
	State *GameState

	balance config.Balance
	rng     Rand
	logger  log.EventLogger
	pacer   Pacer
	skip    atomic.Bool
}

// NewEngine creates a freshly dealt session waiting on difficulty select.
func NewEngine(cfg Config) *Engine {
	balance := cfg.Balance
	if balance.InitialHandSize == 0 {
		balance = config.Default()
	}
	rng := cfg.Rand
	if rng == nil {
		rng = NewRand(cfg.Seed)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewRingLogger(ActionLogCap)
	}
	pacer := cfg.Pacer
	if pacer == nil {
		pacer = NewDelayPacer(time.Duration(balance.AIStepDelayMS) * time.Millisecond)
	}

	return &Engine{
		State:   newGameState(rng, balance.InitialHandSize),
		balance: balance,
		rng:     rng,
		logger:  logger,
		pacer:   pacer,
	}
}

// ActionLog returns the retained action-log entries, oldest first.
func (e *Engine) ActionLog() []log.GameEvent {
	return e.logger.Events()
}

// Reset discards the session wholesale and deals a new one. The action log
// keeps running; the game returns to difficulty select.
func (e *Engine) Reset() {
	e.State = newGameState(e.rng, e.balance.InitialHandSize)
	e.skip.Store(false)
	e.logger.Log(log.NewResetEvent())
}

// RequestSkip asks a running AI turn to skip its remaining pacing delays.
// It never alters the sequence or outcome of AI decisions.
func (e *Engine) RequestSkip() {
	e.skip.Store(true)
}

// SetDifficulty picks the tier and flips the coin for first attacker. If the
// AI wins the flip it immediately plays out its opening turn.
func (e *Engine) SetDifficulty(ctx context.Context, d Difficulty) {
	gs := e.State
	if gs.Phase != PhaseDifficultySelect || d == DifficultyNone {
		return
	}
	gs.Difficulty = d
	e.logger.Log(log.NewDifficultyEvent(gs.Turn, d.String()))

	gs.Phase = PhaseCoinFlip
	if e.rng.Intn(2) == 0 {
		gs.Attacker = RolePlayer
	} else {
		gs.Attacker = RoleAI
	}
	e.logger.Log(log.NewCoinFlipEvent(gs.Turn, gs.Attacker.String()))
	gs.Phase = PhaseAttack
	gs.Message = fmt.Sprintf("Coin flip: %s attacks first.", gs.Attacker)

	if gs.Attacker == RoleAI {
		e.runAITurn(ctx)
	}
}

// SelectCard replaces the transient card selection. Zero clears it.
func (e *Engine) SelectCard(id int) {
	e.State.SelectedCard = id
}

// SelectAsset replaces the transient asset selection. Zero clears it.
func (e *Engine) SelectAsset(id int) {
	e.State.SelectedAsset = id
}

// Attack resolves the player's selected attack card against the selected AI
// asset. Valid only during the player's attack phase with both selections in
// place and the target not destroyed; otherwise a silent no-op.
func (e *Engine) Attack() {
	gs := e.State
	if gs.Phase != PhaseAttack || gs.Attacker != RolePlayer {
		return
	}
	card := gs.Player.AttackCardByID(gs.SelectedCard)
	target := gs.AI.AssetByID(gs.SelectedAsset)
	if card == nil || target == nil || target.Destroyed() {
		return
	}

	e.resolveAttack(RolePlayer, card, target)

	gs.Attack = nil
	gs.SelectedCard = 0
	gs.SelectedAsset = 0
}

// EndTurn ends the player's attack turn: replenishes the player's attack
// hand, flips the attacker role, and plays the full AI turn to completion.
// Valid only during the player's attack phase; otherwise a silent no-op.
func (e *Engine) EndTurn(ctx context.Context) {
	gs := e.State
	if gs.Phase != PhaseAttack || gs.Attacker != RolePlayer {
		return
	}
	e.endTurn(RolePlayer)
	e.runAITurn(ctx)
}

// endTurn replenishes the acting attacker's hand to current+bonus (capped by
// pile availability), flips roles, and advances the turn counter.
func (e *Engine) endTurn(r Role) {
	gs := e.State
	drew := gs.drawAttack(r, e.balance.RedrawBonus)
	if drew > 0 {
		e.logger.Log(log.NewDrawEvent(gs.Turn, r.String(), drew, "attack"))
	}
	next := r.Opponent()
	e.logger.Log(log.NewTurnEndEvent(gs.Turn, r.String(), next.String()))

	gs.Attacker = next
	gs.Turn++
	gs.Attack = nil
	gs.SelectedCard = 0
	gs.SelectedAsset = 0
	gs.Message = fmt.Sprintf("%s's turn to attack.", next)
}

// resolveAttack runs one full attack resolution: record intent, get the
// defender's response, apply block or damage, then evaluate win conditions.
// The defense phase is transient and always resolves back before returning.
func (e *Engine) resolveAttack(attacker Role, card *HandCard, target *CyberAsset) {
	gs := e.State
	gs.Phase = PhaseDefense

	stage := target.Stage()
	if gs.Attack == nil {
		gs.Attack = &AttackContext{}
	}
	gs.Attack.CardID = card.ID
	gs.Attack.TargetID = target.ID
	gs.Attack.Stage = stage
	gs.Attack.Count++

	defender := attacker.Opponent()
	var defense *HandCard
	if defender == RoleAI {
		defense = e.aiDefense(card.Card)
	} else {
		defense = firstMatching(gs.Player.DefenseHand, card.Card)
		if defense == nil {
			e.logger.Log(log.NewNoDefenseEvent(gs.Turn, defender.String(), card.String()))
		}
	}

	attackSide := gs.Side(attacker)
	defendSide := gs.Side(defender)
	targetName := AssetName(target.Card.Rank)

	if defense != nil {
		attackSide.discardAttackCard(card.ID)
		defendSide.discardDefenseCard(defense.ID)
		defendSide.Defenses++
		e.logger.Log(log.NewDefendEvent(gs.Turn, defender.String(), card.String(), defense.String(), controlDetail(defense.Card)))
		if drew := gs.drawDefense(defender, e.balance.RedrawBonus); drew > 0 {
			e.logger.Log(log.NewDrawEvent(gs.Turn, defender.String(), drew, "defense"))
		}
		gs.Message = fmt.Sprintf("%s blocked %s with %s.", defender, card, defense)
	} else {
		target.advance()
		attackSide.discardAttackCard(card.ID)
		e.logger.Log(log.NewAttackHitEvent(gs.Turn, attacker.String(), card.String(), targetName, stage.String(), riskDetail(card.Card)))
		if target.Destroyed() {
			e.logger.Log(log.NewDestroyEvent(gs.Turn, attacker.String(), targetName))
			gs.Message = fmt.Sprintf("%s destroyed %s!", attacker, targetName)
		} else {
			gs.Message = fmt.Sprintf("%s hit %s (%s): now %s.", attacker, targetName, stage, target.State)
		}
	}

	gs.Phase = PhaseAttack
	e.evaluateWin()
}

// evaluateWin checks all win conditions in their fixed priority order. The
// first satisfied condition freezes the game; simultaneous satisfaction is
// resolved by this ordering.
func (e *Engine) evaluateWin() {
	gs := e.State
	b := e.balance
	switch {
	case gs.Player.DestroyedCount() >= b.BreachWinThreshold:
		e.win(RoleAI, fmt.Sprintf("breached %d of the player's assets", gs.Player.DestroyedCount()))
	case gs.AI.DestroyedCount() >= b.BreachWinThreshold:
		e.win(RolePlayer, fmt.Sprintf("breached %d of the AI's assets", gs.AI.DestroyedCount()))
	case gs.Player.Defenses >= b.DefenseWinThreshold:
		e.win(RolePlayer, fmt.Sprintf("%d successful defenses", gs.Player.Defenses))
	case gs.AI.Defenses >= b.DefenseWinThreshold:
		e.win(RoleAI, fmt.Sprintf("%d successful defenses", gs.AI.Defenses))
	}
}

func (e *Engine) win(r Role, reason string) {
	gs := e.State
	if r == RolePlayer {
		gs.Phase = PhasePlayerWon
	} else {
		gs.Phase = PhaseAIWon
	}
	gs.Message = fmt.Sprintf("%s wins: %s.", r, reason)
	e.logger.Log(log.NewWinEvent(gs.Turn, r.String(), reason))
}

// runAITurn plays the AI's attack turn to completion: pick target, pick
// card, resolve, then consult the continue policy, with a pacing wait
// between steps. The skip flag collapses only the waits, never decisions.
func (e *Engine) runAITurn(ctx context.Context) {
	gs := e.State
	e.skip.Store(false)

	for !gs.Phase.Terminal() && gs.Attacker == RoleAI {
		e.pace(ctx)

		target := e.aiPickTarget()
		card := e.aiPickCard()
		if target == nil || card == nil {
			break
		}

		e.resolveAttack(RoleAI, card, target)
		if gs.Phase.Terminal() {
			return
		}

		if !e.aiContinue() {
			break
		}
	}

	if !gs.Phase.Terminal() {
		e.pace(ctx)
		e.endTurn(RoleAI)
	}
}

// pace waits one presentation beat unless a skip was requested or the
// context is done.
func (e *Engine) pace(ctx context.Context) {
	if e.skip.Load() || ctx.Err() != nil {
		return
	}
	e.pacer.Wait(ctx)
}

// firstMatching returns the first card in hand order that satisfies the
// match rule against the attack, or nil.
func firstMatching(hand []*HandCard, attack Card) *HandCard {
	for _, c := range hand {
		if CanDefend(attack, c.Card) {
			return c
		}
	}
	return nil
}

// riskDetail renders the catalog narrative for an attack card.
func riskDetail(c Card) string {
	if c.Kind == KindJoker {
		return "Wildcard: the joker stands in for any threat."
	}
	return fmt.Sprintf("Risk: %s. %s", c.Risk.Name, c.Risk.Description)
}

// controlDetail renders the catalog narrative for a defense card.
func controlDetail(c Card) string {
	if c.Kind == KindJoker {
		return "Wildcard: the joker answers any threat."
	}
	return fmt.Sprintf("Control: %s. %s", c.Control.Name, c.Control.Description)
}
