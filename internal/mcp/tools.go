package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/autochess/internal/game"
)

// activeSession is the singleton game session (one per stdio process).
var activeSession *GameSession

// RegisterTools adds all game tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(newGameTool(), handleNewGame)
	s.AddTool(getStateTool(), handleGetState)
	s.AddTool(placePieceTool(), handlePlacePiece)
	s.AddTool(setBehaviorTool(), handleSetBehavior)
	s.AddTool(setForceTargetTool(), handleSetForceTarget)
	s.AddTool(setMoveRoundsTool(), handleSetMoveRounds)
	s.AddTool(playTurnTool(), handlePlayTurn)
}

// --- Tool definitions ---

func newGameTool() mcp.Tool {
	return mcp.NewTool("new_game",
		mcp.WithDescription("Start a new game, replacing any game in progress. Returns the starting state. "+
			"Setups: 'kings' (one king per side), 'traditional' (classic two-rank armies), 'medium' (kings plus randomized armies)."),
		mcp.WithNumber("board_size", mcp.Description("Board edge length, 8-50 (default 24)")),
		mcp.WithNumber("frontline", mcp.Description("Placement rows beyond a king, 1-10 (default 2)")),
		mcp.WithString("setup", mcp.Description("Starting setup: kings, traditional or medium (default kings)")),
		mcp.WithNumber("seed", mcp.Description("RNG seed for reproducible games (default time-based)")),
	)
}

func getStateTool() mcp.Tool {
	return mcp.NewTool("get_state",
		mcp.WithDescription("Get the current game state and any events since the last call. Read-only."),
	)
}

func placePieceTool() mcp.Tool {
	return mcp.NewTool("place_piece",
		mcp.WithDescription("Place a new piece for a color. Costs points (King 20, Queen 10, Rook 5.25, Bishop 3.5, Knight 3.5, Pawn 1) "+
			"and must land on an empty square within the color's frontline zone."),
		mcp.WithString("piece_type", mcp.Required(), mcp.Description("King, Queen, Rook, Bishop, Knight or Pawn")),
		mcp.WithString("color", mcp.Required(), mcp.Description("white or black")),
		mcp.WithNumber("row", mcp.Required(), mcp.Description("0-based row")),
		mcp.WithNumber("col", mcp.Required(), mcp.Description("0-based column")),
	)
}

func setBehaviorTool() mcp.Tool {
	return mcp.NewTool("set_behavior",
		mcp.WithDescription("Set the behavior of a piece: default (random legal move), aggressive (hunt captures and the enemy king), "+
			"defensive (guard the friendly king), passive (hold still). Behaviors persist until changed."),
		mcp.WithString("color", mcp.Required(), mcp.Description("white or black (must own the piece)")),
		mcp.WithNumber("row", mcp.Required(), mcp.Description("0-based row of the piece")),
		mcp.WithNumber("col", mcp.Required(), mcp.Description("0-based column of the piece")),
		mcp.WithString("behavior", mcp.Required(), mcp.Description("default, aggressive, defensive or passive")),
	)
}

func setForceTargetTool() mcp.Tool {
	return mcp.NewTool("set_force_target",
		mcp.WithDescription("Force a piece toward a target square for the next turn. Costs 1 point; the target is consumed when the turn ends."),
		mcp.WithString("color", mcp.Required(), mcp.Description("white or black (must own the piece)")),
		mcp.WithNumber("row", mcp.Required(), mcp.Description("0-based row of the piece")),
		mcp.WithNumber("col", mcp.Required(), mcp.Description("0-based column of the piece")),
		mcp.WithNumber("target_row", mcp.Required(), mcp.Description("0-based row of the target square")),
		mcp.WithNumber("target_col", mcp.Required(), mcp.Description("0-based column of the target square")),
	)
}

func setMoveRoundsTool() mcp.Tool {
	return mcp.NewTool("set_move_rounds",
		mcp.WithDescription("Set how many move rounds run per simulation turn (1-10)."),
		mcp.WithNumber("rounds", mcp.Required(), mcp.Description("Move rounds per turn, 1-10")),
	)
}

func playTurnTool() mcp.Tool {
	return mcp.NewTool("play_turn",
		mcp.WithDescription("Run one simulation turn: every piece moves once per move round according to its behavior, "+
			"then both sides gain points. Returns the events and the new state."),
	)
}

// --- Tool handlers ---

func handleNewGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := game.Config{
		BoardSize: request.GetInt("board_size", 0),
		Frontline: request.GetInt("frontline", 0),
		Setup:     request.GetString("setup", ""),
		Seed:      int64(request.GetInt("seed", 0)),
	}

	sess, err := NewGameSession(cfg)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}
	activeSession = sess

	resp, err := sess.do(nil)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to read state: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use new_game first."), nil
	}
	resp, err := sess.do(nil)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to read state: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handlePlacePiece(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use new_game first."), nil
	}

	variant, err := game.ParseVariant(request.GetString("piece_type", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("%v", err), nil
	}
	color, err := game.ParseColor(request.GetString("color", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("%v", err), nil
	}
	pos := game.Position{
		Row: request.GetInt("row", -1),
		Col: request.GetInt("col", -1),
	}

	resp, err := sess.do(func(g *game.Game) error {
		_, err := g.PlacePiece(variant, color, pos)
		return err
	})
	if err != nil {
		return mcp.NewToolResultErrorf("%v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleSetBehavior(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use new_game first."), nil
	}

	color, err := game.ParseColor(request.GetString("color", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("%v", err), nil
	}
	behavior, err := game.ParseBehavior(request.GetString("behavior", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("%v", err), nil
	}
	pos := game.Position{
		Row: request.GetInt("row", -1),
		Col: request.GetInt("col", -1),
	}

	resp, err := sess.do(func(g *game.Game) error {
		return g.SetBehavior(pos, color, behavior)
	})
	if err != nil {
		return mcp.NewToolResultErrorf("%v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleSetForceTarget(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use new_game first."), nil
	}

	color, err := game.ParseColor(request.GetString("color", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("%v", err), nil
	}
	pos := game.Position{
		Row: request.GetInt("row", -1),
		Col: request.GetInt("col", -1),
	}
	target := game.Position{
		Row: request.GetInt("target_row", -1),
		Col: request.GetInt("target_col", -1),
	}

	resp, err := sess.do(func(g *game.Game) error {
		return g.SetForceTarget(pos, color, target)
	})
	if err != nil {
		return mcp.NewToolResultErrorf("%v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleSetMoveRounds(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use new_game first."), nil
	}

	rounds := request.GetInt("rounds", 0)
	resp, err := sess.do(func(g *game.Game) error {
		return g.SetMoveRounds(rounds)
	})
	if err != nil {
		return mcp.NewToolResultErrorf("%v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handlePlayTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use new_game first."), nil
	}

	resp, err := sess.do(func(g *game.Game) error {
		return g.PlayTurn()
	})
	if err != nil {
		return mcp.NewToolResultErrorf("%v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}
