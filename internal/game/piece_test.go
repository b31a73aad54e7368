package game

import "testing"

func TestPawnMoves(t *testing.T) {
	b := NewBoard(8)
	pawn := put(t, b, Pawn, White, BehaviorDefault, Position{Row: 6, Col: 4})

	// Fresh pawn: one and two squares forward.
	wantMoves(t, pawn.PseudoLegalMoves(Position{Row: 6, Col: 4}, b),
		Position{Row: 5, Col: 4}, Position{Row: 4, Col: 4})

	// After moving, the two-square option is gone.
	pawn.HasMoved = true
	wantMoves(t, pawn.PseudoLegalMoves(Position{Row: 6, Col: 4}, b),
		Position{Row: 5, Col: 4})

	// Forward blocked by any piece; diagonals only capture enemies.
	put(t, b, Pawn, Black, BehaviorDefault, Position{Row: 5, Col: 4})
	put(t, b, Knight, Black, BehaviorDefault, Position{Row: 5, Col: 3})
	put(t, b, Bishop, White, BehaviorDefault, Position{Row: 5, Col: 5})
	wantMoves(t, pawn.PseudoLegalMoves(Position{Row: 6, Col: 4}, b),
		Position{Row: 5, Col: 3})
}

func TestPawnTwoStepBlockedBehindFirstSquare(t *testing.T) {
	b := NewBoard(8)
	pawn := put(t, b, Pawn, Black, BehaviorDefault, Position{Row: 1, Col: 0})
	put(t, b, Pawn, White, BehaviorDefault, Position{Row: 3, Col: 0})

	wantMoves(t, pawn.PseudoLegalMoves(Position{Row: 1, Col: 0}, b),
		Position{Row: 2, Col: 0})
}

func TestRookRaysStopAtPieces(t *testing.T) {
	b := NewBoard(8)
	rook := put(t, b, Rook, White, BehaviorDefault, Position{Row: 4, Col: 4})
	put(t, b, Pawn, White, BehaviorDefault, Position{Row: 4, Col: 6}) // friendly blocks
	put(t, b, Pawn, Black, BehaviorDefault, Position{Row: 2, Col: 4}) // enemy capturable

	moves := moveSet(rook.PseudoLegalMoves(Position{Row: 4, Col: 4}, b))

	if moves[Position{Row: 4, Col: 6}] || moves[Position{Row: 4, Col: 7}] {
		t.Error("ray continued through or onto a friendly piece")
	}
	if !moves[Position{Row: 4, Col: 5}] {
		t.Error("square before the friendly blocker missing")
	}
	if !moves[Position{Row: 2, Col: 4}] {
		t.Error("enemy capture square missing")
	}
	if moves[Position{Row: 1, Col: 4}] {
		t.Error("ray continued past an enemy piece")
	}
}

func TestKnightAtCorner(t *testing.T) {
	b := NewBoard(8)
	knight := put(t, b, Knight, White, BehaviorDefault, Position{Row: 0, Col: 0})

	wantMoves(t, knight.PseudoLegalMoves(Position{Row: 0, Col: 0}, b),
		Position{Row: 1, Col: 2}, Position{Row: 2, Col: 1})
}

func TestKingStepsAvoidFriendlies(t *testing.T) {
	b := NewBoard(8)
	king := put(t, b, King, Black, BehaviorDefault, Position{Row: 0, Col: 4})
	put(t, b, Pawn, Black, BehaviorDefault, Position{Row: 1, Col: 4})
	put(t, b, Pawn, White, BehaviorDefault, Position{Row: 1, Col: 5})

	wantMoves(t, king.PseudoLegalMoves(Position{Row: 0, Col: 4}, b),
		Position{Row: 0, Col: 3}, Position{Row: 0, Col: 5},
		Position{Row: 1, Col: 3}, Position{Row: 1, Col: 5})
}

func TestForceTargetLifecycle(t *testing.T) {
	p := NewPiece(Rook, White)
	if _, ok := p.ForceTarget(); ok {
		t.Error("fresh piece has a force target")
	}
	p.SetForceTarget(Position{Row: 3, Col: 3})
	target, ok := p.ForceTarget()
	if !ok || target != (Position{Row: 3, Col: 3}) {
		t.Errorf("ForceTarget = %v %v, want (3,3) true", target, ok)
	}
	p.ClearForceTarget()
	if _, ok := p.ForceTarget(); ok {
		t.Error("force target survived ClearForceTarget")
	}
}
