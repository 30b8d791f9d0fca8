package mcp

import (
	"encoding/json"
	"sync"

	"github.com/jmcavoy/breach/internal/config"
	"github.com/jmcavoy/breach/internal/game"
	"github.com/jmcavoy/breach/internal/web"
)

// GameSession wraps one engine for stdio MCP use. The engine is synchronous,
// so the session only needs a lock to serialize tool calls.
type GameSession struct {
	mu      sync.Mutex
	eng     *game.Engine
	lastSeq int
}

// NewGameSession creates a session with the given balance and seed.
func NewGameSession(balance config.Balance, seed int64) *GameSession {
	return &GameSession{
		eng: game.NewEngine(game.Config{
			Balance: balance,
			Seed:    seed,
			// Pacing is meaningless over stdio; the agent reads at its own pace.
			Pacer: game.NewNoopPacer(),
		}),
	}
}

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	State    web.SnapshotView `json:"state"`
	Events   []web.EventView  `json:"events"` // new since the last tool call
	Message  string           `json:"message"`
	GameOver bool             `json:"game_over"`
	Winner   string           `json:"winner,omitempty"`
}

// respond builds a ToolResponse from the current engine state, draining any
// events the caller has not seen yet. Call with s.mu held.
func (s *GameSession) respond() *ToolResponse {
	snap := web.BuildSnapshot(s.eng)

	events := []web.EventView{}
	for _, e := range snap.Log {
		if e.Seq > s.lastSeq {
			events = append(events, e)
			s.lastSeq = e.Seq
		}
	}

	resp := &ToolResponse{
		State:   snap,
		Events:  events,
		Message: s.eng.State.Message,
	}
	switch s.eng.State.Phase {
	case game.PhasePlayerWon:
		resp.GameOver = true
		resp.Winner = game.RolePlayer.String()
	case game.PhaseAIWon:
		resp.GameOver = true
		resp.Winner = game.RoleAI.String()
	}
	return resp
}

// respondJSON marshals a ToolResponse for the text result.
func respondJSON(resp *ToolResponse) string {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return `{"error": "failed to marshal response"}`
	}
	return string(data)
}
