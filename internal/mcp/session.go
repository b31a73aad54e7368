package mcp

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/peterkuimelis/autochess/internal/game"
	"github.com/peterkuimelis/autochess/internal/log"
	autonet "github.com/peterkuimelis/autochess/internal/net"
)

// GameSession wraps a single game behind a mutex. The engine is synchronous,
// so every tool call runs a complete operation and returns the new state plus
// the events it produced.
type GameSession struct {
	mu      sync.Mutex
	id      string
	g       *game.Game
	logger  *log.MemoryLogger
	lastSeq int
}

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	GameID string              `json:"game_id"`
	Events []autonet.EventView `json:"events"`
	State  *game.Snapshot      `json:"state"`
	Result string              `json:"result,omitempty"`
}

// NewGameSession creates a session with a fresh game.
func NewGameSession(cfg game.Config) (*GameSession, error) {
	logger := log.NewMemoryLogger()
	cfg.Logger = logger
	g, err := game.NewGame(cfg)
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	return &GameSession{
		id:     uuid.NewString(),
		g:      g,
		logger: logger,
	}, nil
}

// do runs fn under the session lock and packages the resulting state and any
// new events into a ToolResponse.
func (s *GameSession) do(fn func(g *game.Game) error) (*ToolResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fn != nil {
		if err := fn(s.g); err != nil {
			return nil, err
		}
	}

	events := s.logger.EventsSince(s.lastSeq)
	if n := len(events); n > 0 {
		s.lastSeq = events[n-1].Seq
	}
	views := make([]autonet.EventView, 0, len(events))
	for _, e := range events {
		views = append(views, autonet.EventView{
			Turn:    e.Turn,
			Round:   e.Round,
			Player:  e.Player,
			Type:    e.Type.String(),
			Details: e.Details,
		})
	}

	return &ToolResponse{
		GameID: s.id,
		Events: views,
		State:  s.g.Snapshot(),
		Result: s.g.Result(),
	}, nil
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
