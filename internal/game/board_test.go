package game

import "testing"

func TestBoardPlaceGetRemove(t *testing.T) {
	b := NewBoard(10)

	if got := b.Get(Position{Row: -1, Col: 0}); got != nil {
		t.Errorf("Get out of range = %v, want nil", got)
	}
	if b.Place(NewPiece(Pawn, White), Position{Row: 10, Col: 0}) {
		t.Error("Place out of range succeeded")
	}

	p := NewPiece(Rook, White)
	pos := Position{Row: 3, Col: 4}
	if !b.Place(p, pos) {
		t.Fatal("Place failed")
	}
	if b.Get(pos) != p {
		t.Error("Get did not return the placed piece")
	}

	removed := b.Remove(pos)
	if removed != p {
		t.Errorf("Remove = %v, want the placed rook", removed)
	}
	if b.Get(pos) != nil {
		t.Error("square still occupied after Remove")
	}
}

func TestBoardMoveSetsHasMoved(t *testing.T) {
	b := NewBoard(10)
	p := put(t, b, Knight, Black, BehaviorDefault, Position{Row: 2, Col: 2})

	if !b.Move(Position{Row: 2, Col: 2}, Position{Row: 4, Col: 3}) {
		t.Fatal("Move failed")
	}
	if !p.HasMoved {
		t.Error("HasMoved not set after Move")
	}
	if b.Get(Position{Row: 2, Col: 2}) != nil {
		t.Error("origin square still occupied")
	}
	if b.Get(Position{Row: 4, Col: 3}) != p {
		t.Error("destination square does not hold the piece")
	}

	if b.Move(Position{Row: 2, Col: 2}, Position{Row: 3, Col: 3}) {
		t.Error("Move from empty square succeeded")
	}
}

func TestBoardKingIndex(t *testing.T) {
	b := NewBoard(12)
	put(t, b, King, White, BehaviorDefault, Position{Row: 11, Col: 3})
	put(t, b, King, White, BehaviorDefault, Position{Row: 5, Col: 7})
	put(t, b, King, Black, BehaviorDefault, Position{Row: 0, Col: 0})

	if got := b.KingCount(White); got != 2 {
		t.Fatalf("white KingCount = %d, want 2", got)
	}
	kings := b.Kings(White)
	if len(kings) != 2 || kings[0] != (Position{Row: 5, Col: 7}) || kings[1] != (Position{Row: 11, Col: 3}) {
		t.Errorf("Kings(White) = %v, want row-major [(5,7) (11,3)]", kings)
	}

	// Capturing a king must drop it from the index.
	put(t, b, Rook, Black, BehaviorDefault, Position{Row: 5, Col: 0})
	if !b.Move(Position{Row: 5, Col: 0}, Position{Row: 5, Col: 7}) {
		t.Fatal("capture move failed")
	}
	if got := b.KingCount(White); got != 1 {
		t.Errorf("white KingCount after capture = %d, want 1", got)
	}

	b.Remove(Position{Row: 0, Col: 0})
	if got := b.KingCount(Black); got != 0 {
		t.Errorf("black KingCount after Remove = %d, want 0", got)
	}
}

func TestPawnPromotionOnMove(t *testing.T) {
	b := NewBoard(8)
	put(t, b, Pawn, White, BehaviorDefault, Position{Row: 1, Col: 3})

	if !b.Move(Position{Row: 1, Col: 3}, Position{Row: 0, Col: 3}) {
		t.Fatal("Move failed")
	}
	q := b.Get(Position{Row: 0, Col: 3})
	if q == nil || q.Variant != Queen || q.Color != White {
		t.Fatalf("promotion square holds %v, want a white queen", q)
	}
	if !q.HasMoved {
		t.Error("promoted queen must have HasMoved set")
	}
	if q.Value != Queen.Cost() {
		t.Errorf("promoted queen value = %g, want %g", q.Value, Queen.Cost())
	}

	// A queen landing on the promotion row again must stay a single queen.
	if !b.Move(Position{Row: 0, Col: 3}, Position{Row: 0, Col: 4}) {
		t.Fatal("queen move failed")
	}
	again := b.Get(Position{Row: 0, Col: 4})
	if again == nil || again.Variant != Queen {
		t.Fatalf("queen square holds %v after second landing", again)
	}
}

func TestBlackPawnPromotesOnLastRow(t *testing.T) {
	b := NewBoard(8)
	put(t, b, Pawn, Black, BehaviorDefault, Position{Row: 6, Col: 0})

	if !b.Move(Position{Row: 6, Col: 0}, Position{Row: 7, Col: 0}) {
		t.Fatal("Move failed")
	}
	q := b.Get(Position{Row: 7, Col: 0})
	if q == nil || q.Variant != Queen || q.Color != Black {
		t.Fatalf("promotion square holds %v, want a black queen", q)
	}
}

func TestAllPiecesRowMajor(t *testing.T) {
	b := NewBoard(8)
	put(t, b, Rook, White, BehaviorDefault, Position{Row: 5, Col: 1})
	put(t, b, Pawn, Black, BehaviorDefault, Position{Row: 0, Col: 7})
	put(t, b, King, White, BehaviorDefault, Position{Row: 5, Col: 0})

	pieces := b.AllPieces()
	if len(pieces) != 3 {
		t.Fatalf("AllPieces returned %d entries, want 3", len(pieces))
	}
	wantOrder := []Position{{0, 7}, {5, 0}, {5, 1}}
	for i, pp := range pieces {
		if pp.Pos != wantOrder[i] {
			t.Errorf("AllPieces[%d].Pos = %s, want %s", i, pp.Pos, wantOrder[i])
		}
	}
}
