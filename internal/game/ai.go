package game

import "github.com/jmcavoy/breach/internal/config"

// tier returns the probability tier for the session's difficulty.
func (e *Engine) tier() config.Tier {
	switch e.State.Difficulty {
	case DifficultyEasy:
		return e.balance.Easy
	case DifficultyHard:
		return e.balance.Hard
	default:
		return e.balance.Brutal
	}
}

// aiDefense picks the AI's response to an incoming attack card. With no card
// in hand satisfying the match rule the AI cannot defend. Otherwise a
// Bernoulli draw at the tier's defend chance decides whether to block at
// all. When blocking, the first valid non-joker in hand order is preferred;
// the joker is spent only when it is the sole valid answer.
func (e *Engine) aiDefense(attack Card) *HandCard {
	var valid []*HandCard
	for _, c := range e.State.AI.DefenseHand {
		if CanDefend(attack, c.Card) {
			valid = append(valid, c)
		}
	}
	if len(valid) == 0 {
		return nil
	}
	if e.rng.Float64() >= e.tier().DefendChance {
		return nil
	}
	for _, c := range valid {
		if c.Card.Kind != KindJoker {
			return c
		}
	}
	return valid[0]
}

// aiPickTarget chooses which player asset to attack: the most-progressed
// live asset, ranked rotated > revealed > facedown, ties broken by higher
// damage. Destroyed assets are never offered.
func (e *Engine) aiPickTarget() *CyberAsset {
	var best *CyberAsset
	for _, a := range e.State.Player.Assets {
		if a == nil || a.Destroyed() {
			continue
		}
		if best == nil ||
			stateRank(a.State) > stateRank(best.State) ||
			(stateRank(a.State) == stateRank(best.State) && a.Damage > best.Damage) {
			best = a
		}
	}
	return best
}

// aiPickCard chooses the AI's attack card. Easy plays uniformly at random
// among real attack cards, falling back to a random joker. Hard and brutal
// read the player's defense hand: prefer the highest value no defense
// control covers (unbeatable when the player also holds no joker, otherwise
// it forces the joker), and fall back to the highest value available.
func (e *Engine) aiPickCard() *HandCard {
	hand := e.State.AI.AttackHand
	var real, jokers []*HandCard
	for _, c := range hand {
		if c.Card.Kind == KindJoker {
			jokers = append(jokers, c)
		} else {
			real = append(real, c)
		}
	}

	if e.State.Difficulty == DifficultyEasy {
		if len(real) > 0 {
			return real[e.rng.Intn(len(real))]
		}
		if len(jokers) > 0 {
			return jokers[e.rng.Intn(len(jokers))]
		}
		return nil
	}

	if len(real) == 0 {
		if len(jokers) > 0 {
			return jokers[0]
		}
		return nil
	}

	covered := make(map[int]bool)
	for _, c := range e.State.Player.DefenseHand {
		if c.Card.Kind == KindControl {
			covered[c.Card.Value] = true
		}
	}

	var best *HandCard
	for _, c := range real {
		if !covered[c.Card.Value] && (best == nil || c.Card.Value > best.Card.Value) {
			best = c
		}
	}
	if best != nil {
		return best
	}

	for _, c := range real {
		if best == nil || c.Card.Value > best.Card.Value {
			best = c
		}
	}
	return best
}

// aiContinue decides whether the AI presses on after a resolved attack: any
// rotated target is always finished, a thin attack hand ends the turn, and
// otherwise the tier's continue chance decides.
func (e *Engine) aiContinue() bool {
	for _, a := range e.State.Player.Assets {
		if a != nil && a.State == AssetRotated {
			return true
		}
	}
	if len(e.State.AI.AttackHand) < e.balance.MinAttackHand {
		return false
	}
	return e.rng.Float64() < e.tier().ContinueChance
}
