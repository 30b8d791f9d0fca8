package game

// PlayerState owns one side's assets, hands, discards, and defense counter.
// It is mutated only by the engine's transition functions.
type PlayerState struct {
	Assets         [3]*CyberAsset
	AttackHand     []*HandCard
	DefenseHand    []*HandCard
	AttackDiscard  []*HandCard // append-only within a game
	DefenseDiscard []*HandCard // append-only within a game
	Defenses       int         // successful defenses, monotonic
}

// LiveAssets returns the assets that have not been destroyed, in board order.
func (ps *PlayerState) LiveAssets() []*CyberAsset {
	var live []*CyberAsset
	for _, a := range ps.Assets {
		if a != nil && !a.Destroyed() {
			live = append(live, a)
		}
	}
	return live
}

// DestroyedCount returns the number of destroyed assets.
func (ps *PlayerState) DestroyedCount() int {
	n := 0
	for _, a := range ps.Assets {
		if a != nil && a.Destroyed() {
			n++
		}
	}
	return n
}

// AssetByID finds an asset by instance ID, or nil.
func (ps *PlayerState) AssetByID(id int) *CyberAsset {
	for _, a := range ps.Assets {
		if a != nil && a.ID == id {
			return a
		}
	}
	return nil
}

// AttackCardByID finds a card in the attack hand by instance ID, or nil.
func (ps *PlayerState) AttackCardByID(id int) *HandCard {
	for _, c := range ps.AttackHand {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// discardAttackCard transfers a card from the attack hand to the attack
// discard. No-op if the ID is not in the hand.
func (ps *PlayerState) discardAttackCard(id int) {
	for i, c := range ps.AttackHand {
		if c.ID == id {
			ps.AttackHand = append(ps.AttackHand[:i], ps.AttackHand[i+1:]...)
			ps.AttackDiscard = append(ps.AttackDiscard, c)
			return
		}
	}
}

// discardDefenseCard transfers a card from the defense hand to the defense
// discard. No-op if the ID is not in the hand.
func (ps *PlayerState) discardDefenseCard(id int) {
	for i, c := range ps.DefenseHand {
		if c.ID == id {
			ps.DefenseHand = append(ps.DefenseHand[:i], ps.DefenseHand[i+1:]...)
			ps.DefenseDiscard = append(ps.DefenseDiscard, c)
			return
		}
	}
}

// AttackContext tracks the in-progress attack: which card against which
// asset, at what narrative stage, and how many attacks the current attacker
// has resolved this turn.
type AttackContext struct {
	CardID   int
	TargetID int
	Stage    Stage
	Count    int
}

// GameState is the single root aggregate for one game session. Every
// transition goes through the engine; nothing else holds mutable state.
type GameState struct {
	Phase      Phase
	Attacker   Role
	Difficulty Difficulty

	Player *PlayerState
	AI     *PlayerState

	AttackPile  []*HandCard // shared, depleting, never reshuffled
	DefensePile []*HandCard

	Attack *AttackContext
	Turn   int

	// Transient UI selections, cleared after each resolved action.
	SelectedCard  int
	SelectedAsset int

	// Last human-readable transition message.
	Message string

	nextID int
}

// NextID hands out a session-unique instance ID.
func (gs *GameState) NextID() int {
	gs.nextID++
	return gs.nextID
}

// Side returns the PlayerState for a role.
func (gs *GameState) Side(r Role) *PlayerState {
	if r == RolePlayer {
		return gs.Player
	}
	return gs.AI
}

// popAttack removes and returns the front card of the attack pile, or nil
// when the pile is exhausted.
func (gs *GameState) popAttack() *HandCard {
	if len(gs.AttackPile) == 0 {
		return nil
	}
	c := gs.AttackPile[0]
	gs.AttackPile = gs.AttackPile[1:]
	return c
}

// popDefense removes and returns the front card of the defense pile, or nil
// when the pile is exhausted.
func (gs *GameState) popDefense() *HandCard {
	if len(gs.DefensePile) == 0 {
		return nil
	}
	c := gs.DefensePile[0]
	gs.DefensePile = gs.DefensePile[1:]
	return c
}

// drawAttack moves up to n cards from the front of the attack pile into a
// side's attack hand. Returns how many were actually drawn; an exhausted pile
// simply yields fewer cards.
func (gs *GameState) drawAttack(r Role, n int) int {
	ps := gs.Side(r)
	drawn := 0
	for i := 0; i < n; i++ {
		c := gs.popAttack()
		if c == nil {
			break
		}
		ps.AttackHand = append(ps.AttackHand, c)
		drawn++
	}
	return drawn
}

// drawDefense moves up to n cards from the front of the defense pile into a
// side's defense hand. Returns how many were actually drawn.
func (gs *GameState) drawDefense(r Role, n int) int {
	ps := gs.Side(r)
	drawn := 0
	for i := 0; i < n; i++ {
		c := gs.popDefense()
		if c == nil {
			break
		}
		ps.DefenseHand = append(ps.DefenseHand, c)
		drawn++
	}
	return drawn
}

// newGameState constructs a freshly dealt session in the difficulty-select
// phase. Catalog → full deck → shuffle → deal; construction is total.
func newGameState(rng Rand, handSize int) *GameState {
	gs := &GameState{
		Phase:  PhaseDifficultySelect,
		Player: &PlayerState{},
		AI:     &PlayerState{},
		Turn:   1,
	}
	gs.deal(rng, handSize)
	gs.Message = "Select a difficulty to begin."
	return gs
}
