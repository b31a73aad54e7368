package game

import "testing"

func TestSnapshotReflectsState(t *testing.T) {
	g := emptyGame(t, Config{BoardSize: 10, Frontline: 3})
	put(t, g.Board(), King, White, BehaviorDefault, Position{Row: 9, Col: 4})
	rook := put(t, g.Board(), Rook, Black, BehaviorAggressive, Position{Row: 2, Col: 7})
	rook.HasMoved = true

	s := g.Snapshot()
	if s.BoardSize != 10 || s.Turn != 1 || s.Frontline != 3 {
		t.Errorf("snapshot header = size %d turn %d frontline %d", s.BoardSize, s.Turn, s.Frontline)
	}
	if s.WhitePoints != 20 || s.BlackPoints != 20 {
		t.Errorf("snapshot points = %g/%g, want 20/20", s.WhitePoints, s.BlackPoints)
	}
	if s.GameOver {
		t.Error("snapshot reports game over on a running game")
	}

	ps := s.Board[2][7]
	if ps == nil || ps.Variant != "Rook" || ps.Color != "black" || !ps.HasMoved || ps.Behavior != "aggressive" {
		t.Errorf("rook snapshot = %+v", ps)
	}
	if s.Board[0][0] != nil {
		t.Error("empty square serialized as a piece")
	}
}

func TestSnapshotCarriesOutcome(t *testing.T) {
	g := emptyGame(t, Config{BoardSize: 10})
	put(t, g.Board(), King, White, BehaviorPassive, Position{Row: 9, Col: 0})
	put(t, g.Board(), Rook, White, BehaviorAggressive, Position{Row: 0, Col: 0})
	put(t, g.Board(), King, Black, BehaviorPassive, Position{Row: 0, Col: 5})

	if err := g.PlayTurn(); err != nil {
		t.Fatalf("PlayTurn: %v", err)
	}
	s := g.Snapshot()
	if !s.GameOver || s.Winner != "white" {
		t.Errorf("snapshot outcome = over %v winner %q", s.GameOver, s.Winner)
	}
}

func TestRestoreBoardRoundTrip(t *testing.T) {
	g := emptyGame(t, Config{BoardSize: 10})
	put(t, g.Board(), King, White, BehaviorDefensive, Position{Row: 9, Col: 4})
	pawn := put(t, g.Board(), Pawn, Black, BehaviorDefault, Position{Row: 3, Col: 2})
	pawn.HasMoved = true

	b, err := RestoreBoard(g.Snapshot())
	if err != nil {
		t.Fatalf("RestoreBoard: %v", err)
	}
	if b.KingCount(White) != 1 {
		t.Error("restored board lost the king index")
	}
	king := b.Get(Position{Row: 9, Col: 4})
	if king == nil || king.Variant != King || king.Behavior != BehaviorDefensive {
		t.Errorf("restored king = %+v", king)
	}
	restored := b.Get(Position{Row: 3, Col: 2})
	if restored == nil || restored.Variant != Pawn || !restored.HasMoved {
		t.Errorf("restored pawn = %+v", restored)
	}
	if restored.Value != Pawn.Cost() {
		t.Errorf("restored pawn value = %g, want %g", restored.Value, Pawn.Cost())
	}
}

func TestRestoreBoardRejectsMalformedSnapshots(t *testing.T) {
	if _, err := RestoreBoard(&Snapshot{BoardSize: 4}); err == nil {
		t.Error("undersized board accepted")
	}
	s := &Snapshot{BoardSize: 8, Board: make([][]*PieceSnapshot, 7)}
	if _, err := RestoreBoard(s); err == nil {
		t.Error("row count mismatch accepted")
	}
}
