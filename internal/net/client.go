package net

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/coder/websocket"

	"github.com/peterkuimelis/autochess/internal/game"
)

// Client connects to a game server and provides a terminal REPL.
type Client struct {
	conn  *websocket.Conn
	color string
	state *game.Snapshot
}

// Connect dials a server's /ws endpoint and runs the REPL until the game
// ends or the connection drops.
func Connect(ctx context.Context, addr string) error {
	url := addr
	if !strings.Contains(url, "://") {
		url = "ws://" + url + "/ws"
	}
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.CloseNow()

	c := &Client{conn: conn}
	return c.RunREPL(ctx)
}

// RunREPL reads server messages in the background and handles terminal
// commands in the foreground.
func (c *Client) RunREPL(ctx context.Context) error {
	done := make(chan error, 1)
	go func() { done <- c.readLoop(ctx) }()

	go c.inputLoop(ctx)

	return <-done
}

func (c *Client) readLoop(ctx context.Context) error {
	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			return fmt.Errorf("read message: %w", err)
		}
		var msg ServerMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}

		switch msg.Type {
		case "welcome":
			c.color = msg.Color
			c.state = msg.State
			fmt.Printf("Joined game %s as %s\n", msg.GameID, msg.Color)
			c.renderState()
			c.printHelp()

		case "notify":
			c.renderEvent(msg.Event)

		case "game_state_update":
			c.state = msg.State
			c.renderState()

		case "error":
			fmt.Printf("Error: %s\n", msg.Error)

		case "game_over":
			fmt.Println()
			fmt.Println("═══════════════════════════════════")
			fmt.Println("          GAME OVER")
			fmt.Println("═══════════════════════════════════")
			fmt.Println(msg.Result)
			fmt.Println("═══════════════════════════════════")
			return nil
		}
	}
}

func (c *Client) inputLoop(ctx context.Context) {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		msg, ok := c.parseCommand(strings.Fields(strings.TrimSpace(line)))
		if !ok {
			continue
		}
		data, err := json.Marshal(msg)
		if err != nil {
			continue
		}
		if err := c.conn.Write(ctx, websocket.MessageText, data); err != nil {
			return
		}
	}
}

// parseCommand turns a REPL line into a ClientMessage. Prints usage and
// returns ok=false on bad input.
func (c *Client) parseCommand(parts []string) (ClientMessage, bool) {
	if len(parts) == 0 {
		return ClientMessage{}, false
	}
	switch parts[0] {
	case "place":
		// place <type> <row> <col>
		if len(parts) != 4 {
			fmt.Println("usage: place <King|Queen|Rook|Bishop|Knight|Pawn> <row> <col>")
			return ClientMessage{}, false
		}
		pos, ok := parseCoords(parts[2], parts[3])
		if !ok {
			return ClientMessage{}, false
		}
		return ClientMessage{Type: "place_piece", PieceType: parts[1], Position: pos}, true

	case "behavior":
		// behavior <row> <col> <name>
		if len(parts) != 4 {
			fmt.Println("usage: behavior <row> <col> <default|aggressive|defensive|passive>")
			return ClientMessage{}, false
		}
		pos, ok := parseCoords(parts[1], parts[2])
		if !ok {
			return ClientMessage{}, false
		}
		return ClientMessage{Type: "set_behavior", Position: pos, Behavior: parts[3]}, true

	case "target":
		// target <row> <col> <trow> <tcol>
		if len(parts) != 5 {
			fmt.Println("usage: target <row> <col> <target-row> <target-col>")
			return ClientMessage{}, false
		}
		pos, ok := parseCoords(parts[1], parts[2])
		if !ok {
			return ClientMessage{}, false
		}
		target, ok := parseCoords(parts[3], parts[4])
		if !ok {
			return ClientMessage{}, false
		}
		return ClientMessage{Type: "set_force_target", Position: pos, Target: target}, true

	case "rounds":
		if len(parts) != 2 {
			fmt.Println("usage: rounds <1-10>")
			return ClientMessage{}, false
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			fmt.Println("usage: rounds <1-10>")
			return ClientMessage{}, false
		}
		return ClientMessage{Type: "set_move_rounds", MoveRounds: n}, true

	case "turn":
		return ClientMessage{Type: "play_turn"}, true

	case "state":
		c.renderState()
		return ClientMessage{}, false

	case "help":
		c.printHelp()
		return ClientMessage{}, false

	default:
		fmt.Printf("unknown command %q (try 'help')\n", parts[0])
		return ClientMessage{}, false
	}
}

func parseCoords(rowStr, colStr string) ([]int, bool) {
	row, err1 := strconv.Atoi(rowStr)
	col, err2 := strconv.Atoi(colStr)
	if err1 != nil || err2 != nil {
		fmt.Println("coordinates must be integers")
		return nil, false
	}
	return []int{row, col}, true
}

func (c *Client) printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  place <type> <row> <col>                place a new piece")
	fmt.Println("  behavior <row> <col> <name>             set a piece's behavior")
	fmt.Println("  target <row> <col> <trow> <tcol>        force a piece toward a square (1 point)")
	fmt.Println("  rounds <n>                              set move rounds per turn")
	fmt.Println("  turn                                    run a simulation turn")
	fmt.Println("  state                                   redraw the board")
}

func (c *Client) renderEvent(ev *EventView) {
	if ev == nil {
		return
	}
	fmt.Printf("T%-3d %s\n", ev.Turn, ev.Details)
}

func (c *Client) renderState() {
	s := c.state
	if s == nil {
		return
	}

	fmt.Println()
	fmt.Print("    ")
	for col := 0; col < s.BoardSize; col++ {
		fmt.Printf("%2d ", col)
	}
	fmt.Println()
	for row := 0; row < s.BoardSize; row++ {
		fmt.Printf("%2d  ", row)
		for col := 0; col < s.BoardSize; col++ {
			fmt.Printf(" %s ", cellSymbol(s.Board[row][col]))
		}
		fmt.Println()
	}

	fmt.Printf("\nTurn %d | white %.2f pts | black %.2f pts | %d move round(s)\n",
		s.Turn, s.WhitePoints, s.BlackPoints, s.MoveRounds)
	if c.color != "" {
		fmt.Printf("You are %s\n", c.color)
	}
}

func cellSymbol(ps *game.PieceSnapshot) string {
	if ps == nil {
		return "."
	}
	v, err := game.ParseVariant(ps.Variant)
	if err != nil {
		return "?"
	}
	col, err := game.ParseColor(ps.Color)
	if err != nil {
		return "?"
	}
	return v.Symbol(col)
}
