package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventDifficulty EventType = iota
	EventCoinFlip
	EventAttackHit
	EventDefend
	EventNoDefense
	EventDestroy
	EventDraw
	EventTurnEnd
	EventWin
	EventReset
)

func (e EventType) String() string {
	switch e {
	case EventDifficulty:
		return "Difficulty"
	case EventCoinFlip:
		return "CoinFlip"
	case EventAttackHit:
		return "AttackHit"
	case EventDefend:
		return "Defend"
	case EventNoDefense:
		return "NoDefense"
	case EventDestroy:
		return "Destroy"
	case EventDraw:
		return "Draw"
	case EventTurnEnd:
		return "TurnEnd"
	case EventWin:
		return "Win"
	case EventReset:
		return "Reset"
	default:
		return "Unknown"
	}
}

// GameEvent is a single entry in the action log: who acted, a short label
// suitable for a list view, and a multi-line detail string suitable for
// direct display.
type GameEvent struct {
	Seq     int    // monotonic sequence number
	Turn    int    // which turn (1-based)
	Actor   string // "Player", "AI", or "System"
	Type    EventType
	Card    string // card name, if applicable
	Action  string // short action label
	Details string // multi-line descriptive detail
}
