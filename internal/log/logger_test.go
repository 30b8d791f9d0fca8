package log

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLoggerSequencing(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewDifficultyEvent(1, "hard"))
	l.Log(NewCoinFlipEvent(1, "Player"))

	events := l.Events()
	require.Len(t, events, 2)
	assert.Equal(t, 1, events[0].Seq)
	assert.Equal(t, 2, events[1].Seq)
	assert.Equal(t, EventCoinFlip, l.LastEvent().Type)

	flips := l.EventsOfType(EventCoinFlip)
	require.Len(t, flips, 1)
	assert.Contains(t, flips[0].Details, "Player attacks first")
}

func TestRingLoggerCapsRetention(t *testing.T) {
	l := NewRingLogger(3)
	for i := 1; i <= 5; i++ {
		l.Log(NewDrawEvent(i, "Player", 2, "attack"))
	}

	events := l.Events()
	require.Len(t, events, 3)
	// Oldest entries drop; sequence numbers keep counting across the drops.
	assert.Equal(t, 3, events[0].Seq)
	assert.Equal(t, 5, events[2].Seq)
	assert.Equal(t, 3, events[0].Turn)
}

func TestRingLoggerUnderCap(t *testing.T) {
	l := NewRingLogger(200)
	for i := 0; i < 10; i++ {
		l.Log(NewTurnEndEvent(i+1, "AI", "Player"))
	}
	assert.Len(t, l.Events(), 10)
}

func TestTextLoggerWritesLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf)
	l.Log(NewWinEvent(9, "AI", "breached 2 of the player's assets"))

	out := buf.String()
	assert.Contains(t, out, "T9")
	assert.Contains(t, out, "AI wins!")
	require.Len(t, l.Events(), 1, "text logger should retain events too")
}

func TestFormatEventCollapsesDetails(t *testing.T) {
	e := NewAttackHitEvent(3, "AI", "Ransomware Crew (6 of Hearts)", "Production Server", "Assessment", "Risk: Ransomware Crew")
	line := FormatEvent(e)
	assert.NotContains(t, line, "\n")
	assert.Contains(t, line, " | ")
	assert.Contains(t, line, "Assessment")
}

func TestFormatAll(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewDestroyEvent(4, "Player", "Domain Controller"))
	l.Log(NewResetEvent())

	out := FormatAll(l.Events())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Domain Controller is destroyed")
	assert.Contains(t, lines[1], "Game reset")
}

func TestEventTypeStrings(t *testing.T) {
	for et := EventDifficulty; et <= EventReset; et++ {
		assert.NotEqual(t, "Unknown", et.String(), fmt.Sprintf("event type %d", et))
	}
}
