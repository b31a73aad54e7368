package game

import "fmt"

// --- Enums ---

type Color int

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// Forward is the row delta of this color's forward direction.
// White advances toward row 0, black toward the last row.
func (c Color) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// PromotionRow is the row a pawn of this color promotes on.
func (c Color) PromotionRow(boardSize int) int {
	if c == White {
		return 0
	}
	return boardSize - 1
}

// ParseColor parses "white" or "black".
func ParseColor(s string) (Color, error) {
	switch s {
	case "white":
		return White, nil
	case "black":
		return Black, nil
	default:
		return White, fmt.Errorf("unknown color %q", s)
	}
}

type Variant int

const (
	King Variant = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

func (v Variant) String() string {
	switch v {
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Pawn:
		return "Pawn"
	default:
		return "Unknown"
	}
}

// Symbol is the one-letter board-diagram symbol (uppercase white, lowercase black).
func (v Variant) Symbol(c Color) string {
	white := [...]string{"K", "Q", "R", "B", "N", "P"}
	black := [...]string{"k", "q", "r", "b", "n", "p"}
	if c == Black {
		return black[v]
	}
	return white[v]
}

// ParseVariant parses a piece type name ("King", "Queen", ...).
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "King":
		return King, nil
	case "Queen":
		return Queen, nil
	case "Rook":
		return Rook, nil
	case "Bishop":
		return Bishop, nil
	case "Knight":
		return Knight, nil
	case "Pawn":
		return Pawn, nil
	default:
		return King, fmt.Errorf("unknown piece type %q", s)
	}
}

// Cost returns the point cost of placing this piece type.
func (v Variant) Cost() float64 {
	switch v {
	case King:
		return 20
	case Queen:
		return 10
	case Rook:
		return 5.25
	case Bishop:
		return 3.5
	case Knight:
		return 3.5
	case Pawn:
		return 1
	default:
		return 0
	}
}

type Behavior int

const (
	BehaviorDefault Behavior = iota
	BehaviorAggressive
	BehaviorDefensive
	BehaviorPassive
)

func (b Behavior) String() string {
	switch b {
	case BehaviorAggressive:
		return "aggressive"
	case BehaviorDefensive:
		return "defensive"
	case BehaviorPassive:
		return "passive"
	default:
		return "default"
	}
}

// ParseBehavior parses a behavior name ("default", "aggressive", "defensive", "passive").
func ParseBehavior(s string) (Behavior, error) {
	switch s {
	case "default":
		return BehaviorDefault, nil
	case "aggressive":
		return BehaviorAggressive, nil
	case "defensive":
		return BehaviorDefensive, nil
	case "passive":
		return BehaviorPassive, nil
	default:
		return BehaviorDefault, fmt.Errorf("unknown behavior %q", s)
	}
}

// Mode is the engine's explicit phase: pieces are placed and behaviors set in
// ModePlacement; ModeMovement is active only while a simulation turn runs.
type Mode int

const (
	ModePlacement Mode = iota
	ModeMovement
)

func (m Mode) String() string {
	if m == ModeMovement {
		return "movement"
	}
	return "placement"
}

// --- Position ---

// Position is a board coordinate. Row 0 is black's back rank; white's back
// rank is row size-1.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// ManhattanDistance is |Δrow| + |Δcol|.
func (p Position) ManhattanDistance(o Position) int {
	return abs(p.Row-o.Row) + abs(p.Col-o.Col)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
