package game

// attackSuits are the red suits carrying Threat Agent cards; defenseSuits are
// the black suits carrying Defense Controls.
var (
	attackSuits  = [2]Suit{SuitHearts, SuitDiamonds}
	defenseSuits = [2]Suit{SuitSpades, SuitClubs}
	assetRanks   = [3]Rank{RankJack, RankQueen, RankKing}
)

// deckCopies is how many copies of each suit-value combination each draw
// pile carries: two per suit gives the 40 value cards (plus one joker) that
// make up a 41-card pile.
const deckCopies = 2

// newAttackPile builds the 41-card attack draw pile: two copies of values
// 1-10 in each red suit plus the black joker. Unshuffled.
func (gs *GameState) newAttackPile() []*HandCard {
	pile := make([]*HandCard, 0, 41)
	for n := 0; n < deckCopies; n++ {
		for _, suit := range attackSuits {
			for v := 1; v <= 10; v++ {
				pile = append(pile, &HandCard{
					ID:   gs.NextID(),
					Card: Card{Kind: KindThreat, Suit: suit, Value: v, Risk: RiskByValue(v)},
				})
			}
		}
	}
	pile = append(pile, &HandCard{
		ID:   gs.NextID(),
		Card: Card{Kind: KindJoker, Color: JokerBlack},
	})
	return pile
}

// newDefensePile builds the 41-card defense draw pile: two copies of values
// 1-10 in each black suit plus the red joker. Unshuffled.
func (gs *GameState) newDefensePile() []*HandCard {
	pile := make([]*HandCard, 0, 41)
	for n := 0; n < deckCopies; n++ {
		for _, suit := range defenseSuits {
			for v := 1; v <= 10; v++ {
				pile = append(pile, &HandCard{
					ID:   gs.NextID(),
					Card: Card{Kind: KindControl, Suit: suit, Value: v, Control: ControlByValue(v)},
				})
			}
		}
	}
	pile = append(pile, &HandCard{
		ID:   gs.NextID(),
		Card: Card{Kind: KindJoker, Color: JokerRed},
	})
	return pile
}

// newAssetPool builds the six face cards (jack/queen/king in each of two
// suits) from which one side's three assets are dealt. The three left over
// are unused for the rest of the game.
func (gs *GameState) newAssetPool(suits [2]Suit) []*CyberAsset {
	pool := make([]*CyberAsset, 0, 6)
	for _, suit := range suits {
		for _, rank := range assetRanks {
			pool = append(pool, &CyberAsset{
				ID:    gs.NextID(),
				Card:  Card{Kind: KindAsset, Suit: suit, Rank: rank},
				State: AssetFacedown,
			})
		}
	}
	return pool
}

// shuffleHandCards applies a Fisher-Yates shuffle in place.
func shuffleHandCards(rng Rand, cards []*HandCard) {
	for i := len(cards) - 1; i >= 1; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// shuffleAssets applies a Fisher-Yates shuffle in place.
func shuffleAssets(rng Rand, assets []*CyberAsset) {
	for i := len(assets) - 1; i >= 1; i-- {
		j := rng.Intn(i + 1)
		assets[i], assets[j] = assets[j], assets[i]
	}
}

// deal constructs, shuffles, and deals both draw piles and both asset pools.
// Hands draw from the front of each pile, player first, then AI. The player's
// assets come from the black-suit pool, the AI's from the red-suit pool.
func (gs *GameState) deal(rng Rand, handSize int) {
	gs.AttackPile = gs.newAttackPile()
	gs.DefensePile = gs.newDefensePile()
	shuffleHandCards(rng, gs.AttackPile)
	shuffleHandCards(rng, gs.DefensePile)

	gs.drawAttack(RolePlayer, handSize)
	gs.drawAttack(RoleAI, handSize)
	gs.drawDefense(RolePlayer, handSize)
	gs.drawDefense(RoleAI, handSize)

	playerPool := gs.newAssetPool(defenseSuits)
	aiPool := gs.newAssetPool(attackSuits)
	shuffleAssets(rng, playerPool)
	shuffleAssets(rng, aiPool)
	copy(gs.Player.Assets[:], playerPool[:3])
	copy(gs.AI.Assets[:], aiPool[:3])
}
