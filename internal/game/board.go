package game

import (
	"sort"
	"strings"
)

// PiecePosition pairs a piece with the square it was found on.
type PiecePosition struct {
	Piece *Piece
	Pos   Position
}

// Board is the size×size grid of piece slots. At most one piece occupies any
// cell, and a piece appears at exactly one cell or not at all. All mutation
// goes through Place/Remove/Move; external collaborators never write the
// grid directly.
//
// The board keeps an incremental per-color king index so frontline and
// behavior lookups don't rescan the whole grid once per piece per round.
type Board struct {
	size  int
	grid  [][]*Piece
	kings [2]map[*Piece]Position
}

// NewBoard creates an empty size×size board.
func NewBoard(size int) *Board {
	b := &Board{size: size}
	b.reset()
	return b
}

func (b *Board) reset() {
	b.grid = make([][]*Piece, b.size)
	for r := range b.grid {
		b.grid[r] = make([]*Piece, b.size)
	}
	b.kings[White] = make(map[*Piece]Position)
	b.kings[Black] = make(map[*Piece]Position)
}

// Size returns the board edge length.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether pos is on the board.
func (b *Board) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.size && pos.Col >= 0 && pos.Col < b.size
}

// Get returns the piece at pos, or nil for empty or out-of-range positions.
func (b *Board) Get(pos Position) *Piece {
	if !b.InBounds(pos) {
		return nil
	}
	return b.grid[pos.Row][pos.Col]
}

// Place puts a piece at pos, overwriting whatever is there. Callers that care
// about occupancy must check first. Returns false only for out-of-range
// positions, with no mutation.
func (b *Board) Place(p *Piece, pos Position) bool {
	if !b.InBounds(pos) {
		return false
	}
	if prev := b.grid[pos.Row][pos.Col]; prev != nil && prev.Variant == King {
		delete(b.kings[prev.Color], prev)
	}
	b.grid[pos.Row][pos.Col] = p
	if p != nil && p.Variant == King {
		b.kings[p.Color][p] = pos
	}
	return true
}

// Remove clears pos and returns the piece that was there, if any.
func (b *Board) Remove(pos Position) *Piece {
	if !b.InBounds(pos) {
		return nil
	}
	p := b.grid[pos.Row][pos.Col]
	b.grid[pos.Row][pos.Col] = nil
	if p != nil && p.Variant == King {
		delete(b.kings[p.Color], p)
	}
	return p
}

// Move relocates the piece at from to to, marking it as having moved. A pawn
// arriving on its promotion row is replaced in place by a fresh queen of the
// same color with HasMoved set, so a second landing can never double-promote.
// Returns false if from was empty.
func (b *Board) Move(from, to Position) bool {
	p := b.Remove(from)
	if p == nil {
		return false
	}
	p.HasMoved = true
	if !b.Place(p, to) {
		return false
	}
	if p.Variant == Pawn && to.Row == p.Color.PromotionRow(b.size) {
		queen := NewPiece(Queen, p.Color)
		queen.HasMoved = true
		b.Place(queen, to)
	}
	return true
}

// Find locates a piece by pointer identity.
func (b *Board) Find(p *Piece) (Position, bool) {
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.grid[r][c] == p {
				return Position{r, c}, true
			}
		}
	}
	return Position{}, false
}

// AllPieces returns a row-major snapshot of every piece with its position.
// The snapshot goes stale on any board mutation; callers iterating across
// mutations must re-fetch.
func (b *Board) AllPieces() []PiecePosition {
	var pieces []PiecePosition
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if p := b.grid[r][c]; p != nil {
				pieces = append(pieces, PiecePosition{Piece: p, Pos: Position{r, c}})
			}
		}
	}
	return pieces
}

// Kings returns the positions of the surviving kings of one color, in
// row-major order. The ordering keeps nearest-king ties deterministic for
// replay under a fixed seed.
func (b *Board) Kings(c Color) []Position {
	positions := make([]Position, 0, len(b.kings[c]))
	for _, pos := range b.kings[c] {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Row != positions[j].Row {
			return positions[i].Row < positions[j].Row
		}
		return positions[i].Col < positions[j].Col
	})
	return positions
}

// KingCount returns the number of surviving kings of one color.
func (b *Board) KingCount(c Color) int {
	return len(b.kings[c])
}

// Clear empties every cell.
func (b *Board) Clear() {
	b.reset()
}

// String renders the board for debugging: letters for pieces (uppercase
// white), dots for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if p := b.grid[r][c]; p != nil {
				sb.WriteString(p.Variant.Symbol(p.Color))
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
