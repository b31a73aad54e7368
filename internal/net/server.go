package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/peterkuimelis/autochess/internal/game"
	"github.com/peterkuimelis/autochess/internal/log"
)

// Server hosts one game over WebSocket. The first two connections get white
// and black; later connections watch as spectators. All game mutation happens
// under a single mutex, so the engine itself stays single-threaded.
type Server struct {
	Addr   string
	Config game.Config

	ctx     context.Context // server lifetime, set by Run
	mu      sync.Mutex
	gameID  string
	g       *game.Game
	logger  *log.MemoryLogger
	lastSeq int
	clients map[*client]struct{}
	taken   [2]bool // white, black seats
}

type client struct {
	id        string
	conn      *websocket.Conn
	color     game.Color
	spectator bool
}

// Run starts the WebSocket server and blocks until the listener fails or ctx
// is canceled.
func (s *Server) Run(ctx context.Context) error {
	s.ctx = ctx
	s.logger = log.NewMemoryLogger()
	cfg := s.Config
	cfg.Logger = s.logger

	g, err := game.NewGame(cfg)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	s.g = g
	s.gameID = uuid.NewString()
	s.clients = make(map[*client]struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", s.handleWebSocket)

	srv := &http.Server{Addr: s.Addr, Handler: mux}
	go func() {
		<-ctx.Done()
		srv.Close()
	}()

	fmt.Printf("Game %s waiting for players on %s\n", s.gameID, s.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()
	c := s.register(conn)
	defer s.unregister(c)

	// Welcome with seat assignment and the current state.
	s.mu.Lock()
	welcome := ServerMessage{
		Type:     "welcome",
		GameID:   s.gameID,
		ClientID: c.id,
		Color:    c.seatName(),
		State:    s.g.Snapshot(),
	}
	s.mu.Unlock()
	if err := send(ctx, conn, welcome); err != nil {
		return
	}

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			_ = send(ctx, conn, ServerMessage{Type: "error", Error: "malformed message"})
			continue
		}
		s.handleMessage(ctx, c, msg)
	}
}

func (s *Server) register(conn *websocket.Conn) *client {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := &client{id: uuid.NewString(), conn: conn, spectator: true}
	for _, color := range []game.Color{game.White, game.Black} {
		if !s.taken[color] {
			s.taken[color] = true
			c.color = color
			c.spectator = false
			break
		}
	}
	s.clients[c] = struct{}{}
	return c
}

func (s *Server) unregister(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clients, c)
	if !c.spectator {
		s.taken[c.color] = false
	}
}

func (c *client) seatName() string {
	if c.spectator {
		return "spectator"
	}
	return c.color.String()
}

// handleMessage applies one client command and broadcasts the resulting
// events and state to everyone.
func (s *Server) handleMessage(ctx context.Context, c *client, msg ClientMessage) {
	if c.spectator {
		_ = send(ctx, c.conn, ServerMessage{Type: "error", Error: "spectators cannot act"})
		return
	}

	s.mu.Lock()
	err := s.apply(c.color, msg)
	s.mu.Unlock()

	if err != nil {
		_ = send(ctx, c.conn, ServerMessage{Type: "error", Error: err.Error()})
		return
	}
	// Broadcast under the server's lifetime context so one client dropping
	// mid-write doesn't cancel delivery to the rest.
	s.broadcast(s.ctx)
}

// apply dispatches a command to the engine. Caller holds s.mu.
func (s *Server) apply(color game.Color, msg ClientMessage) error {
	switch msg.Type {
	case "place_piece":
		v, err := game.ParseVariant(msg.PieceType)
		if err != nil {
			return err
		}
		pos, err := parsePos(msg.Position)
		if err != nil {
			return err
		}
		_, err = s.g.PlacePiece(v, color, pos)
		return err

	case "set_behavior":
		b, err := game.ParseBehavior(msg.Behavior)
		if err != nil {
			return err
		}
		pos, err := parsePos(msg.Position)
		if err != nil {
			return err
		}
		return s.g.SetBehavior(pos, color, b)

	case "set_force_target":
		pos, err := parsePos(msg.Position)
		if err != nil {
			return err
		}
		target, err := parsePos(msg.Target)
		if err != nil {
			return err
		}
		return s.g.SetForceTarget(pos, color, target)

	case "set_move_rounds":
		return s.g.SetMoveRounds(msg.MoveRounds)

	case "play_turn":
		return s.g.PlayTurn()

	default:
		return fmt.Errorf("unknown message type %q", msg.Type)
	}
}

func parsePos(coords []int) (game.Position, error) {
	if len(coords) != 2 {
		return game.Position{}, fmt.Errorf("position must be [row, col], got %v", coords)
	}
	return game.Position{Row: coords[0], Col: coords[1]}, nil
}

// broadcast forwards events logged since the last broadcast, then a full
// game_state_update, to every connected client.
func (s *Server) broadcast(ctx context.Context) {
	s.mu.Lock()
	events := s.logger.EventsSince(s.lastSeq)
	if n := len(events); n > 0 {
		s.lastSeq = events[n-1].Seq
	}
	state := s.g.Snapshot()
	over := s.g.Over()
	result := s.g.Result()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for c := range s.clients {
		conns = append(conns, c.conn)
	}
	s.mu.Unlock()

	msgs := make([]ServerMessage, 0, len(events)+2)
	for _, e := range events {
		msgs = append(msgs, ServerMessage{Type: "notify", Event: eventView(e)})
	}
	msgs = append(msgs, ServerMessage{Type: "game_state_update", State: state})
	if over {
		msgs = append(msgs, ServerMessage{Type: "game_over", Result: result})
	}

	for _, conn := range conns {
		for _, m := range msgs {
			if err := send(ctx, conn, m); err != nil {
				break
			}
		}
	}
}

func eventView(e log.GameEvent) *EventView {
	return &EventView{
		Turn:    e.Turn,
		Round:   e.Round,
		Player:  e.Player,
		Type:    e.Type.String(),
		Details: e.Details,
	}
}

func send(ctx context.Context, conn *websocket.Conn, msg ServerMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, data)
}
