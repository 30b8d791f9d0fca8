package game

import "testing"

func TestCanDefendValueMatch(t *testing.T) {
	for av := 1; av <= 10; av++ {
		for dv := 1; dv <= 10; dv++ {
			attack := Card{Kind: KindThreat, Suit: SuitHearts, Value: av, Risk: RiskByValue(av)}
			defense := Card{Kind: KindControl, Suit: SuitClubs, Value: dv, Control: ControlByValue(dv)}
			got := CanDefend(attack, defense)
			want := av == dv
			if got != want {
				t.Errorf("CanDefend(threat %d, control %d) = %v, want %v", av, dv, got, want)
			}
		}
	}
}

func TestCanDefendSuitIrrelevant(t *testing.T) {
	attack := Card{Kind: KindThreat, Suit: SuitDiamonds, Value: 7, Risk: RiskByValue(7)}
	for _, suit := range []Suit{SuitSpades, SuitClubs} {
		defense := Card{Kind: KindControl, Suit: suit, Value: 7, Control: ControlByValue(7)}
		if !CanDefend(attack, defense) {
			t.Errorf("Expected value-7 control of %s to block a value-7 threat", suit)
		}
	}
}

func TestCanDefendJokerAttack(t *testing.T) {
	joker := Card{Kind: KindJoker, Color: JokerBlack}
	for v := 1; v <= 10; v++ {
		defense := Card{Kind: KindControl, Suit: SuitSpades, Value: v, Control: ControlByValue(v)}
		if !CanDefend(joker, defense) {
			t.Errorf("Expected any control (value %d) to match a joker attack", v)
		}
	}
}

func TestCanDefendJokerDefense(t *testing.T) {
	joker := Card{Kind: KindJoker, Color: JokerRed}
	for v := 1; v <= 10; v++ {
		attack := Card{Kind: KindThreat, Suit: SuitHearts, Value: v, Risk: RiskByValue(v)}
		if !CanDefend(attack, joker) {
			t.Errorf("Expected the joker to block a value-%d threat", v)
		}
	}
	if !CanDefend(Card{Kind: KindJoker, Color: JokerBlack}, joker) {
		t.Error("Expected joker to block joker")
	}
}

func TestCanDefendRejectsNonControlDefense(t *testing.T) {
	attack := Card{Kind: KindThreat, Suit: SuitHearts, Value: 5, Risk: RiskByValue(5)}
	badDefenses := []Card{
		{Kind: KindThreat, Suit: SuitHearts, Value: 5, Risk: RiskByValue(5)},
		{Kind: KindAsset, Suit: SuitSpades, Rank: RankQueen},
	}
	for _, d := range badDefenses {
		if CanDefend(attack, d) {
			t.Errorf("Expected %s defense to never satisfy the match rule", d.Kind)
		}
	}
}
