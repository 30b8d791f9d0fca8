package game

import "fmt"

// --- Enums ---

type Phase int

const (
	PhaseDifficultySelect Phase = iota
	PhaseCoinFlip
	PhaseAttack
	PhaseDefense
	PhasePlayerWon
	PhaseAIWon
)

func (p Phase) String() string {
	switch p {
	case PhaseDifficultySelect:
		return "Difficulty Select"
	case PhaseCoinFlip:
		return "Coin Flip"
	case PhaseAttack:
		return "Attack Phase"
	case PhaseDefense:
		return "Defense Phase"
	case PhasePlayerWon:
		return "Player Won"
	case PhaseAIWon:
		return "AI Won"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the game is over in this phase.
func (p Phase) Terminal() bool {
	return p == PhasePlayerWon || p == PhaseAIWon
}

type Role int

const (
	RolePlayer Role = iota
	RoleAI
)

func (r Role) String() string {
	if r == RolePlayer {
		return "Player"
	}
	return "AI"
}

// Opponent returns the other role.
func (r Role) Opponent() Role {
	if r == RolePlayer {
		return RoleAI
	}
	return RolePlayer
}

type Difficulty int

const (
	DifficultyNone Difficulty = iota
	DifficultyEasy
	DifficultyHard
	DifficultyBrutal
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	case DifficultyBrutal:
		return "brutal"
	default:
		return "none"
	}
}

// ParseDifficulty maps a tier name to a Difficulty. Unknown names yield DifficultyNone.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "easy":
		return DifficultyEasy
	case "hard":
		return DifficultyHard
	case "brutal":
		return DifficultyBrutal
	default:
		return DifficultyNone
	}
}

type Suit int

const (
	SuitHearts Suit = iota
	SuitDiamonds
	SuitSpades
	SuitClubs
)

func (s Suit) String() string {
	switch s {
	case SuitHearts:
		return "Hearts"
	case SuitDiamonds:
		return "Diamonds"
	case SuitSpades:
		return "Spades"
	case SuitClubs:
		return "Clubs"
	default:
		return "Unknown"
	}
}

type Kind int

const (
	KindThreat Kind = iota
	KindControl
	KindAsset
	KindJoker
)

func (k Kind) String() string {
	switch k {
	case KindThreat:
		return "Threat Agent"
	case KindControl:
		return "Defense Control"
	case KindAsset:
		return "Asset"
	case KindJoker:
		return "Joker"
	default:
		return "Unknown"
	}
}

type Rank int

const (
	RankNone Rank = iota
	RankJack
	RankQueen
	RankKing
)

func (r Rank) String() string {
	switch r {
	case RankJack:
		return "Jack"
	case RankQueen:
		return "Queen"
	case RankKing:
		return "King"
	default:
		return ""
	}
}

type JokerColor int

const (
	JokerBlack JokerColor = iota
	JokerRed
)

func (c JokerColor) String() string {
	if c == JokerBlack {
		return "Black"
	}
	return "Red"
}

type AssetState int

const (
	AssetFacedown AssetState = iota
	AssetRevealed
	AssetRotated
	AssetDestroyed
)

func (s AssetState) String() string {
	switch s {
	case AssetFacedown:
		return "facedown"
	case AssetRevealed:
		return "revealed"
	case AssetRotated:
		return "rotated"
	case AssetDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Stage is the narrative label for the attack that would hit an asset in a
// given state: first hit is Observation, second Assessment, third PWN.
type Stage int

const (
	StageObservation Stage = iota
	StageAssessment
	StagePWN
)

func (s Stage) String() string {
	switch s {
	case StageObservation:
		return "Observation"
	case StageAssessment:
		return "Assessment"
	case StagePWN:
		return "PWN"
	default:
		return "Unknown"
	}
}

// --- Card (immutable value, tagged by Kind) ---

// Card is one card from the fixed catalog. Only the fields relevant to its
// Kind are populated: Value and Risk for threats, Value and Control for
// controls, Rank for assets, Color for jokers.
type Card struct {
	Kind    Kind
	Suit    Suit
	Value   int // 1-10, threats and controls only
	Rank    Rank
	Color   JokerColor
	Risk    *Risk
	Control *Control
}

func (c Card) String() string {
	switch c.Kind {
	case KindThreat:
		return fmt.Sprintf("%s (%d of %s)", c.Risk.Name, c.Value, c.Suit)
	case KindControl:
		return fmt.Sprintf("%s (%d of %s)", c.Control.Name, c.Value, c.Suit)
	case KindAsset:
		return fmt.Sprintf("%s (%s of %s)", AssetName(c.Rank), c.Rank, c.Suit)
	case KindJoker:
		return fmt.Sprintf("%s Joker", c.Color)
	default:
		return "Unknown"
	}
}

// --- HandCard (runtime card in a hand or discard) ---

// HandCard is a Card bound to a session-unique instance ID, so two copies of
// the same value can be selected and removed independently. A HandCard lives
// in exactly one hand or discard at a time; moving it between zones is a
// transfer, never a copy.
type HandCard struct {
	Card Card
	ID   int
}

func (hc *HandCard) String() string {
	if hc == nil {
		return "(none)"
	}
	return hc.Card.String()
}

// --- CyberAsset (runtime defendable unit) ---

// CyberAsset binds an asset card to its destruction progress. Damage always
// mirrors the state ordinal and only ever grows.
type CyberAsset struct {
	Card   Card
	ID     int
	State  AssetState
	Damage int
}

func (a *CyberAsset) String() string {
	if a == nil {
		return "(none)"
	}
	return fmt.Sprintf("%s [%s, damage %d]", AssetName(a.Card.Rank), a.State, a.Damage)
}
