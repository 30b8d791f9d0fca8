package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jmcavoy/breach/internal/config"
	"github.com/jmcavoy/breach/internal/game"
)

// activeSession is the singleton game session (one per stdio process).
var activeSession *GameSession

// balance is the balance configuration used for new sessions, set by main.
var balance = config.Default()

// SetBalance sets the balance configuration for new sessions.
func SetBalance(b config.Balance) {
	balance = b
}

// RegisterTools adds all game tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startGameTool(), handleStartGame)
	s.AddTool(getStateTool(), handleGetState)
	s.AddTool(attackTool(), handleAttack)
	s.AddTool(endTurnTool(), handleEndTurn)
	s.AddTool(skipTool(), handleSkip)
	s.AddTool(resetTool(), handleReset)
}

// --- Tool definitions ---

func startGameTool() mcp.Tool {
	return mcp.NewTool("start_game",
		mcp.WithDescription("Start a new breach duel against the rule-based AI. You play the human seat: "+
			"attack the AI's three cyber assets with threat-agent cards and outlast its attacks on yours. "+
			"First side to destroy 2 enemy assets, or to land 6 successful defenses, wins."),
		mcp.WithString("difficulty", mcp.Required(), mcp.Description("AI difficulty: easy, hard, or brutal")),
		mcp.WithNumber("seed", mcp.Description("Optional RNG seed for a reproducible game (0 = random)")),
	)
}

func getStateTool() mcp.Tool {
	return mcp.NewTool("get_state",
		mcp.WithDescription("Get the current game state, your hands, both boards, and recent action-log entries. Read-only."),
	)
}

func attackTool() mcp.Tool {
	return mcp.NewTool("attack",
		mcp.WithDescription("Attack an AI asset with one of your attack cards. Use the instance IDs from get_state. "+
			"Only legal during your attack phase against a non-destroyed asset; an illegal request changes nothing."),
		mcp.WithNumber("card_id", mcp.Required(), mcp.Description("Instance ID of the attack card from your attack hand")),
		mcp.WithNumber("asset_id", mcp.Required(), mcp.Description("Instance ID of the targeted AI asset")),
	)
}

func endTurnTool() mcp.Tool {
	return mcp.NewTool("end_turn",
		mcp.WithDescription("End your attack turn. Your attack hand replenishes and the AI plays its full turn before this returns."),
	)
}

func skipTool() mcp.Tool {
	return mcp.NewTool("skip",
		mcp.WithDescription("Ask a running AI turn to drop its remaining pacing delays. Never changes any AI decision. "+
			"MCP sessions already run unpaced, so this is usually a no-op."),
	)
}

func resetTool() mcp.Tool {
	return mcp.NewTool("reset",
		mcp.WithDescription("Discard the current game and deal a new one back at difficulty select."),
	)
}

// --- Tool handlers ---

func handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tier := game.ParseDifficulty(request.GetString("difficulty", ""))
	if tier == game.DifficultyNone {
		return mcp.NewToolResultError("difficulty must be easy, hard, or brutal"), nil
	}
	seed := int64(request.GetInt("seed", 0))

	sess := NewGameSession(balance, seed)
	activeSession = sess

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.eng.SetDifficulty(ctx, tier)

	return mcp.NewToolResultText(respondJSON(sess.respond())), nil
}

func handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return mcp.NewToolResultText(respondJSON(sess.respond())), nil
}

func handleAttack(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}

	cardID := request.GetInt("card_id", 0)
	assetID := request.GetInt("asset_id", 0)
	if cardID <= 0 || assetID <= 0 {
		return mcp.NewToolResultError("card_id and asset_id must be positive instance IDs from get_state"), nil
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.eng.SelectCard(cardID)
	sess.eng.SelectAsset(assetID)
	sess.eng.Attack()

	return mcp.NewToolResultText(respondJSON(sess.respond())), nil
}

func handleEndTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.eng.EndTurn(ctx)

	return mcp.NewToolResultText(respondJSON(sess.respond())), nil
}

func handleSkip(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}

	// Deliberately lock-free: the point is to reach an engine mid-AI-turn.
	sess.eng.RequestSkip()
	return mcp.NewToolResultText(`{"status": "skip requested"}`), nil
}

func handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.eng.Reset()

	return mcp.NewToolResultText(respondJSON(sess.respond())), nil
}
