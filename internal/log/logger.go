package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging game events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores every event, for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- RingLogger: keeps only the most recent entries ---

// RingLogger is the bounded action log shown to the UI: it retains the cap
// most recent events and drops the oldest beyond that. Sequence numbers keep
// counting across dropped entries.
type RingLogger struct {
	cap    int
	events []GameEvent
	seq    int
}

func NewRingLogger(cap int) *RingLogger {
	return &RingLogger{cap: cap}
}

func (l *RingLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
	if len(l.events) > l.cap {
		l.events = l.events[len(l.events)-l.cap:]
	}
}

func (l *RingLogger) Events() []GameEvent {
	return l.events
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line. Multi-line
// details are collapsed for single-line output.
func FormatEvent(e GameEvent) string {
	detail := strings.ReplaceAll(e.Details, "\n", " | ")
	return fmt.Sprintf("T%-2d %-6s %-12s %s", e.Turn, e.Actor, e.Action, detail)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewDifficultyEvent(turn int, tier string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Actor:   "System",
		Type:    EventDifficulty,
		Action:  "difficulty",
		Details: fmt.Sprintf("Difficulty set to %s", tier),
	}
}

func NewCoinFlipEvent(turn int, winner string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Actor:   "System",
		Type:    EventCoinFlip,
		Action:  "coin flip",
		Details: fmt.Sprintf("Coin flip: %s attacks first", winner),
	}
}

func NewAttackHitEvent(turn int, attacker, card, target, stage, risk string) GameEvent {
	return GameEvent{
		Turn:   turn,
		Actor:  attacker,
		Type:   EventAttackHit,
		Card:   card,
		Action: "attack",
		Details: fmt.Sprintf("%s attacks %s with %s\nStage: %s\n%s",
			attacker, target, card, stage, risk),
	}
}

func NewDefendEvent(turn int, defender, attackCard, defenseCard, control string) GameEvent {
	return GameEvent{
		Turn:   turn,
		Actor:  defender,
		Type:   EventDefend,
		Card:   defenseCard,
		Action: "defend",
		Details: fmt.Sprintf("%s blocks %s with %s\n%s",
			defender, attackCard, defenseCard, control),
	}
}

func NewNoDefenseEvent(turn int, defender, attackCard string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Actor:   defender,
		Type:    EventNoDefense,
		Card:    attackCard,
		Action:  "no defense",
		Details: fmt.Sprintf("%s has no answer to %s", defender, attackCard),
	}
}

func NewDestroyEvent(turn int, attacker, target string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Actor:   attacker,
		Type:    EventDestroy,
		Card:    target,
		Action:  "breach",
		Details: fmt.Sprintf("%s is destroyed", target),
	}
}

func NewDrawEvent(turn int, actor string, count int, pile string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Actor:   actor,
		Type:    EventDraw,
		Action:  "draw",
		Details: fmt.Sprintf("%s draws %d %s card(s)", actor, count, pile),
	}
}

func NewTurnEndEvent(turn int, actor, next string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Actor:   actor,
		Type:    EventTurnEnd,
		Action:  "end turn",
		Details: fmt.Sprintf("%s ends the turn; %s attacks next", actor, next),
	}
}

func NewWinEvent(turn int, winner, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Actor:   winner,
		Type:    EventWin,
		Action:  "win",
		Details: fmt.Sprintf("%s wins! (%s)", winner, reason),
	}
}

func NewResetEvent() GameEvent {
	return GameEvent{
		Turn:    1,
		Actor:   "System",
		Type:    EventReset,
		Action:  "reset",
		Details: "Game reset",
	}
}
