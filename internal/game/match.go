package game

// CanDefend reports whether a defense card neutralizes an attack card. A
// joker on either side always matches. Otherwise the defense must be a
// Defense Control, the attack must be a Threat Agent, and their values must
// be equal. Every other combination of kinds fails.
func CanDefend(attack, defense Card) bool {
	if attack.Kind == KindJoker || defense.Kind == KindJoker {
		return true
	}
	return defense.Kind == KindControl && attack.Kind == KindThreat && attack.Value == defense.Value
}
