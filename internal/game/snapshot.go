package game

import "fmt"

// PieceSnapshot is the wire form of a single piece.
type PieceSnapshot struct {
	Variant  string `json:"type"`
	Color    string `json:"color"`
	HasMoved bool   `json:"has_moved"`
	Behavior string `json:"behavior"`
}

// Snapshot is a full serializable view of the game state. Board is row-major
// with nil entries for empty squares.
type Snapshot struct {
	BoardSize   int                `json:"board_size"`
	Board       [][]*PieceSnapshot `json:"board"`
	WhitePoints float64            `json:"white_points"`
	BlackPoints float64            `json:"black_points"`
	Turn        int                `json:"turn"`
	Frontline   int                `json:"frontline"`
	MoveRounds  int                `json:"move_rounds"`
	GameOver    bool               `json:"game_over"`
	Winner      string             `json:"winner,omitempty"`
	Draw        bool               `json:"draw,omitempty"`
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() *Snapshot {
	size := g.board.Size()
	grid := make([][]*PieceSnapshot, size)
	for r := 0; r < size; r++ {
		grid[r] = make([]*PieceSnapshot, size)
		for c := 0; c < size; c++ {
			p := g.board.Get(Position{Row: r, Col: c})
			if p == nil {
				continue
			}
			grid[r][c] = &PieceSnapshot{
				Variant:  p.Variant.String(),
				Color:    p.Color.String(),
				HasMoved: p.HasMoved,
				Behavior: p.Behavior.String(),
			}
		}
	}

	s := &Snapshot{
		BoardSize:   size,
		Board:       grid,
		WhitePoints: g.points[White],
		BlackPoints: g.points[Black],
		Turn:        g.turn,
		Frontline:   g.cfg.Frontline,
		MoveRounds:  g.moveRounds,
		GameOver:    g.over,
		Draw:        g.draw,
	}
	if w, ok := g.Winner(); ok {
		s.Winner = w.String()
	}
	return s
}

// RestoreBoard rebuilds a board from a snapshot. Force-move targets are not
// part of the wire form and come back unset.
func RestoreBoard(s *Snapshot) (*Board, error) {
	if s.BoardSize < MinBoardSize || s.BoardSize > MaxBoardSize {
		return nil, fmt.Errorf("snapshot board size %d out of range [%d, %d]", s.BoardSize, MinBoardSize, MaxBoardSize)
	}
	if len(s.Board) != s.BoardSize {
		return nil, fmt.Errorf("snapshot has %d rows, want %d", len(s.Board), s.BoardSize)
	}
	b := NewBoard(s.BoardSize)
	for r, row := range s.Board {
		if len(row) != s.BoardSize {
			return nil, fmt.Errorf("snapshot row %d has %d cells, want %d", r, len(row), s.BoardSize)
		}
		for c, ps := range row {
			if ps == nil {
				continue
			}
			v, err := ParseVariant(ps.Variant)
			if err != nil {
				return nil, fmt.Errorf("snapshot cell (%d,%d): %w", r, c, err)
			}
			col, err := ParseColor(ps.Color)
			if err != nil {
				return nil, fmt.Errorf("snapshot cell (%d,%d): %w", r, c, err)
			}
			behavior, err := ParseBehavior(ps.Behavior)
			if err != nil {
				return nil, fmt.Errorf("snapshot cell (%d,%d): %w", r, c, err)
			}
			p := NewPiece(v, col)
			p.HasMoved = ps.HasMoved
			p.Behavior = behavior
			b.Place(p, Position{Row: r, Col: c})
		}
	}
	return b, nil
}
