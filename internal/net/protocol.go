package net

import "github.com/peterkuimelis/autochess/internal/game"

// Message types for the JSON protocol over WebSocket.

// --- Server → Client messages ---

// ServerMessage is the envelope for all server-to-client messages.
type ServerMessage struct {
	Type string `json:"type"`

	// For "welcome"
	GameID   string `json:"game_id,omitempty"`
	ClientID string `json:"client_id,omitempty"`
	Color    string `json:"color,omitempty"` // "white", "black" or "spectator"

	// For "welcome" and "game_state_update"
	State *game.Snapshot `json:"state,omitempty"`

	// For "notify"
	Event *EventView `json:"event,omitempty"`

	// For "game_over"
	Result string `json:"result,omitempty"`

	// For "error"
	Error string `json:"error,omitempty"`
}

// EventView is a simplified game event for the client.
type EventView struct {
	Turn    int    `json:"turn"`
	Round   int    `json:"round,omitempty"`
	Player  string `json:"player,omitempty"`
	Type    string `json:"type"`
	Details string `json:"details"`
}

// --- Client → Server messages ---

// ClientMessage is the envelope for all client-to-server messages.
type ClientMessage struct {
	Type string `json:"type"`

	// For "place_piece"
	PieceType string `json:"piece_type,omitempty"`
	Position  []int  `json:"position,omitempty"` // [row, col]

	// For "set_behavior" (reuses Position)
	Behavior string `json:"behavior,omitempty"`

	// For "set_force_target" (reuses Position)
	Target []int `json:"target,omitempty"` // [row, col]

	// For "set_move_rounds"
	MoveRounds int `json:"move_rounds,omitempty"`
}
