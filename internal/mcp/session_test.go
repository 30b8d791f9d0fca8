package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcavoy/breach/internal/config"
	"github.com/jmcavoy/breach/internal/game"
)

func TestRespondDrainsNewEventsOnly(t *testing.T) {
	s := NewGameSession(config.Default(), 1)
	ctx := context.Background()

	s.mu.Lock()
	first := s.respond()
	s.mu.Unlock()
	assert.Empty(t, first.Events, "a fresh session has no events to report")
	assert.Equal(t, "Difficulty Select", first.State.Phase)
	assert.False(t, first.GameOver)

	s.mu.Lock()
	s.eng.SetDifficulty(ctx, game.DifficultyHard)
	second := s.respond()
	s.mu.Unlock()
	require.NotEmpty(t, second.Events)
	assert.Equal(t, "Difficulty", second.Events[0].Type)

	s.mu.Lock()
	third := s.respond()
	s.mu.Unlock()
	assert.Empty(t, third.Events, "already-delivered events are not repeated")
}

func TestRespondReportsWinner(t *testing.T) {
	s := NewGameSession(config.Default(), 1)

	s.mu.Lock()
	s.eng.SetDifficulty(context.Background(), game.DifficultyHard)
	gs := s.eng.State
	gs.Phase = game.PhaseAIWon
	resp := s.respond()
	s.mu.Unlock()

	assert.True(t, resp.GameOver)
	assert.Equal(t, "AI", resp.Winner)
}

func TestRespondJSONRoundTrips(t *testing.T) {
	s := NewGameSession(config.Default(), 1)
	s.mu.Lock()
	resp := s.respond()
	s.mu.Unlock()

	var decoded ToolResponse
	require.NoError(t, json.Unmarshal([]byte(respondJSON(resp)), &decoded))
	assert.Equal(t, resp.State.Phase, decoded.State.Phase)
	assert.Equal(t, resp.Message, decoded.Message)
}
