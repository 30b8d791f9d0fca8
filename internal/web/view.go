package web

import (
	"github.com/jmcavoy/breach/internal/game"
	"github.com/jmcavoy/breach/internal/log"
)

// CardView is the JSON representation of one hand or discard card.
type CardView struct {
	ID          int    `json:"id"`
	Kind        string `json:"kind"`
	Suit        string `json:"suit,omitempty"`
	Value       int    `json:"value,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// AssetView is the JSON representation of one cyber asset. An opponent's
// facedown asset has its identity withheld.
type AssetView struct {
	ID     int    `json:"id"`
	Name   string `json:"name,omitempty"`
	State  string `json:"state"`
	Damage int    `json:"damage"`
	Stage  string `json:"stage,omitempty"` // label for the next hit; empty once destroyed
}

// SideView shows one side of the board. Hands are listed only for the human
// player; the AI's hands are reduced to counts.
type SideView struct {
	Assets           []AssetView `json:"assets"`
	AttackHand       []CardView  `json:"attack_hand,omitempty"`
	DefenseHand      []CardView  `json:"defense_hand,omitempty"`
	AttackHandCount  int         `json:"attack_hand_count"`
	DefenseHandCount int         `json:"defense_hand_count"`
	AttackDiscard    []CardView  `json:"attack_discard"`
	DefenseDiscard   []CardView  `json:"defense_discard"`
	Defenses         int         `json:"defenses"`
}

// EventView is one action-log entry.
type EventView struct {
	Seq     int    `json:"seq"`
	Turn    int    `json:"turn"`
	Actor   string `json:"actor"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Action  string `json:"action"`
	Details string `json:"details"`
}

// SnapshotView is the read-only state snapshot produced after every
// transition.
type SnapshotView struct {
	Phase         string      `json:"phase"`
	Turn          int         `json:"turn"`
	Attacker      string      `json:"attacker"`
	Difficulty    string      `json:"difficulty"`
	Message       string      `json:"message"`
	You           SideView    `json:"you"`
	Opponent      SideView    `json:"opponent"`
	AttackPile    int         `json:"attack_pile"`
	DefensePile   int         `json:"defense_pile"`
	SelectedCard  int         `json:"selected_card,omitempty"`
	SelectedAsset int         `json:"selected_asset,omitempty"`
	Log           []EventView `json:"log"`
}

// BuildSnapshot renders the engine state from the human player's
// perspective.
func BuildSnapshot(e *game.Engine) SnapshotView {
	gs := e.State
	sv := SnapshotView{
		Phase:         gs.Phase.String(),
		Turn:          gs.Turn,
		Attacker:      gs.Attacker.String(),
		Difficulty:    gs.Difficulty.String(),
		Message:       gs.Message,
		You:           buildSide(gs.Player, true),
		Opponent:      buildSide(gs.AI, false),
		AttackPile:    len(gs.AttackPile),
		DefensePile:   len(gs.DefensePile),
		SelectedCard:  gs.SelectedCard,
		SelectedAsset: gs.SelectedAsset,
		Log:           buildLog(e.ActionLog()),
	}
	return sv
}

func buildSide(ps *game.PlayerState, isOwner bool) SideView {
	sv := SideView{
		AttackHandCount:  len(ps.AttackHand),
		DefenseHandCount: len(ps.DefenseHand),
		AttackDiscard:    buildCards(ps.AttackDiscard),
		DefenseDiscard:   buildCards(ps.DefenseDiscard),
		Defenses:         ps.Defenses,
	}
	for _, a := range ps.Assets {
		if a == nil {
			continue
		}
		sv.Assets = append(sv.Assets, buildAsset(a, isOwner))
	}
	if isOwner {
		sv.AttackHand = buildCards(ps.AttackHand)
		sv.DefenseHand = buildCards(ps.DefenseHand)
	}
	return sv
}

func buildAsset(a *game.CyberAsset, isOwner bool) AssetView {
	av := AssetView{
		ID:     a.ID,
		State:  a.State.String(),
		Damage: a.Damage,
	}
	// Opponent facedown assets stay anonymous until the first hit reveals them.
	if isOwner || a.State != game.AssetFacedown {
		av.Name = game.AssetName(a.Card.Rank)
	}
	if !a.Destroyed() {
		av.Stage = a.Stage().String()
	}
	return av
}

func buildCards(cards []*game.HandCard) []CardView {
	views := make([]CardView, 0, len(cards))
	for _, c := range cards {
		views = append(views, buildCard(c))
	}
	return views
}

func buildCard(c *game.HandCard) CardView {
	cv := CardView{
		ID:   c.ID,
		Kind: c.Card.Kind.String(),
		Name: c.Card.String(),
	}
	switch c.Card.Kind {
	case game.KindThreat:
		cv.Suit = c.Card.Suit.String()
		cv.Value = c.Card.Value
		cv.Description = c.Card.Risk.Description
	case game.KindControl:
		cv.Suit = c.Card.Suit.String()
		cv.Value = c.Card.Value
		cv.Description = c.Card.Control.Description
	}
	return cv
}

func buildLog(events []log.GameEvent) []EventView {
	views := make([]EventView, 0, len(events))
	for _, e := range events {
		views = append(views, EventView{
			Seq:     e.Seq,
			Turn:    e.Turn,
			Actor:   e.Actor,
			Type:    e.Type.String(),
			Card:    e.Card,
			Action:  e.Action,
			Details: e.Details,
		})
	}
	return views
}
