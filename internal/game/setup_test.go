package game

import (
	"errors"
	"testing"
)

func TestSetupKings(t *testing.T) {
	g := newTestGame(t, Config{BoardSize: 16, Setup: SetupKings})
	b := g.Board()

	if b.KingCount(White) != 1 || b.KingCount(Black) != 1 {
		t.Fatalf("king counts = %d/%d, want 1/1", b.KingCount(White), b.KingCount(Black))
	}
	if pos := b.Kings(White)[0]; pos.Row != 15 {
		t.Errorf("white king on row %d, want the back row 15", pos.Row)
	}
	if pos := b.Kings(Black)[0]; pos.Row != 0 {
		t.Errorf("black king on row %d, want row 0", pos.Row)
	}
	if got := len(b.AllPieces()); got != 2 {
		t.Errorf("board has %d pieces, want 2", got)
	}
}

func TestSetupTraditional(t *testing.T) {
	g := newTestGame(t, Config{BoardSize: 24, Setup: SetupTraditional})
	b := g.Board()

	if got := len(b.AllPieces()); got != 32 {
		t.Fatalf("board has %d pieces, want 32", got)
	}

	// Centered on a 24-wide board: columns 8-15.
	offset := 8
	for i, v := range traditionalBackRank {
		col := offset + i
		check := func(pos Position, want Variant, c Color) {
			p := b.Get(pos)
			if p == nil || p.Variant != want || p.Color != c {
				t.Errorf("%s: got %v, want %s %s", pos, p, c, want)
			}
		}
		check(Position{Row: 0, Col: col}, v, Black)
		check(Position{Row: 1, Col: col}, Pawn, Black)
		check(Position{Row: 23, Col: col}, v, White)
		check(Position{Row: 22, Col: col}, Pawn, White)
	}
}

func TestSetupMediumStaysInOwnHalf(t *testing.T) {
	g := newTestGame(t, Config{BoardSize: 20, Setup: SetupMedium})
	b := g.Board()

	if b.KingCount(White) != 1 || b.KingCount(Black) != 1 {
		t.Fatalf("king counts = %d/%d, want 1/1", b.KingCount(White), b.KingCount(Black))
	}

	counts := map[Color]map[Variant]int{
		White: {},
		Black: {},
	}
	for _, pp := range b.AllPieces() {
		p := pp.Piece
		counts[p.Color][p.Variant]++
		if p.Variant == King {
			continue
		}
		if p.Color == White && pp.Pos.Row < 10 {
			t.Errorf("white %s at %s outside white's half", p.Variant, pp.Pos)
		}
		if p.Color == Black && pp.Pos.Row >= 10 {
			t.Errorf("black %s at %s outside black's half", p.Variant, pp.Pos)
		}
	}

	for _, c := range []Color{White, Black} {
		if n := counts[c][Pawn]; n < 5 || n > 12 {
			t.Errorf("%s pawns = %d, want 5-12", c, n)
		}
		if counts[c][Rook] != 3 || counts[c][Bishop] != 3 || counts[c][Knight] != 4 {
			t.Errorf("%s minor counts = %d rooks, %d bishops, %d knights",
				c, counts[c][Rook], counts[c][Bishop], counts[c][Knight])
		}
	}
}

const setupYAML = `
setups:
  - name: skirmish
    pieces:
      - {variant: King, color: white, row: 9, col: 4}
      - {variant: King, color: black, row: 0, col: 4}
      - {variant: Rook, color: white, row: 8, col: 0}
      - {variant: Pawn, color: black, row: 1, col: 4}
`

func TestParseSetupFile(t *testing.T) {
	f, err := ParseSetupFile([]byte(setupYAML))
	if err != nil {
		t.Fatalf("ParseSetupFile: %v", err)
	}
	entry, ok := f.Find("skirmish")
	if !ok {
		t.Fatal("setup 'skirmish' not found")
	}
	if len(entry.Pieces) != 4 {
		t.Errorf("parsed %d pieces, want 4", len(entry.Pieces))
	}

	if _, err := ParseSetupFile([]byte("setups: []")); err == nil {
		t.Error("empty setup list accepted")
	}
	bad := `
setups:
  - name: bad
    pieces:
      - {variant: Wizard, color: white, row: 0, col: 0}
`
	if _, err := ParseSetupFile([]byte(bad)); err == nil {
		t.Error("unknown variant accepted")
	}
}

func TestApplyCustomSetup(t *testing.T) {
	f, err := ParseSetupFile([]byte(setupYAML))
	if err != nil {
		t.Fatalf("ParseSetupFile: %v", err)
	}
	entry, _ := f.Find("skirmish")

	g := emptyGame(t, Config{BoardSize: 10})
	if err := g.ApplyCustomSetup(entry); err != nil {
		t.Fatalf("ApplyCustomSetup: %v", err)
	}
	if got := len(g.Board().AllPieces()); got != 4 {
		t.Errorf("board has %d pieces, want 4", got)
	}
	if g.Board().KingCount(White) != 1 || g.Board().KingCount(Black) != 1 {
		t.Error("custom setup kings not indexed")
	}

	// Applying again must collide.
	err = g.ApplyCustomSetup(entry)
	if !errors.Is(err, ErrOccupied) {
		t.Errorf("second apply err = %v, want ErrOccupied", err)
	}
}
