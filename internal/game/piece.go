package game

import "fmt"

// Piece is a single piece on the board. Color, Variant and Value are fixed at
// creation; HasMoved, Behavior and the force-move target are runtime state.
// Two pieces of the same color and variant are distinct; the board tracks
// them by pointer identity.
type Piece struct {
	Color   Color
	Variant Variant
	Value   float64

	HasMoved bool
	Behavior Behavior

	forceTarget *Position
}

// NewPiece creates a fresh piece of the given variant and color.
func NewPiece(v Variant, c Color) *Piece {
	return &Piece{Color: c, Variant: v, Value: v.Cost()}
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s %s", p.Color, p.Variant)
}

// SetForceTarget sets a one-shot movement target that overrides the piece's
// behavior for the next turn.
func (p *Piece) SetForceTarget(pos Position) {
	t := pos
	p.forceTarget = &t
}

// ForceTarget returns the active force-move target, if any.
func (p *Piece) ForceTarget() (Position, bool) {
	if p.forceTarget == nil {
		return Position{}, false
	}
	return *p.forceTarget, true
}

// ClearForceTarget removes the force-move target.
func (p *Piece) ClearForceTarget() {
	p.forceTarget = nil
}

// --- Move generation ---

var (
	kingOffsets = [8]Position{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	knightOffsets = [8]Position{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	rookDirs   = [4]Position{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	bishopDirs = [4]Position{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirs  = [8]Position{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
)

// PseudoLegalMoves returns every square the piece's geometry allows from pos:
// in bounds, never onto a friendly piece, with pawn move/capture rules. It
// ignores behavior entirely, and there is no check or checkmate concept in
// this ruleset: kings are captured like any other piece.
func (p *Piece) PseudoLegalMoves(pos Position, b *Board) []Position {
	switch p.Variant {
	case King:
		return p.stepMoves(pos, b, kingOffsets[:])
	case Knight:
		return p.stepMoves(pos, b, knightOffsets[:])
	case Queen:
		return p.rayMoves(pos, b, queenDirs[:])
	case Rook:
		return p.rayMoves(pos, b, rookDirs[:])
	case Bishop:
		return p.rayMoves(pos, b, bishopDirs[:])
	case Pawn:
		return p.pawnMoves(pos, b)
	default:
		return nil
	}
}

// stepMoves handles the single-step pieces (king, knight): each offset is
// independently valid if the destination is empty or enemy-occupied.
func (p *Piece) stepMoves(pos Position, b *Board, offsets []Position) []Position {
	var moves []Position
	for _, d := range offsets {
		to := Position{pos.Row + d.Row, pos.Col + d.Col}
		if !b.InBounds(to) {
			continue
		}
		if target := b.Get(to); target == nil || target.Color != p.Color {
			moves = append(moves, to)
		}
	}
	return moves
}

// rayMoves casts rays for the sliding pieces: a ray stops before a friendly
// piece and on the first enemy piece (the capture square is included).
func (p *Piece) rayMoves(pos Position, b *Board, dirs []Position) []Position {
	var moves []Position
	for _, d := range dirs {
		for step := 1; step < b.Size(); step++ {
			to := Position{pos.Row + d.Row*step, pos.Col + d.Col*step}
			if !b.InBounds(to) {
				break
			}
			target := b.Get(to)
			if target == nil {
				moves = append(moves, to)
				continue
			}
			if target.Color != p.Color {
				moves = append(moves, to)
			}
			break
		}
	}
	return moves
}

// pawnMoves: one step forward onto an empty square, a two-step option while
// HasMoved is false and both squares are empty, and diagonal captures only
// when an enemy occupies the diagonal. No en passant.
func (p *Piece) pawnMoves(pos Position, b *Board) []Position {
	var moves []Position
	fwd := p.Color.Forward()

	one := Position{pos.Row + fwd, pos.Col}
	if b.InBounds(one) && b.Get(one) == nil {
		moves = append(moves, one)
		if !p.HasMoved {
			two := Position{pos.Row + 2*fwd, pos.Col}
			if b.InBounds(two) && b.Get(two) == nil {
				moves = append(moves, two)
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		cap := Position{pos.Row + fwd, pos.Col + dc}
		if !b.InBounds(cap) {
			continue
		}
		if target := b.Get(cap); target != nil && target.Color != p.Color {
			moves = append(moves, cap)
		}
	}
	return moves
}
