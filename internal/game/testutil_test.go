package game

import (
	"testing"

	"github.com/peterkuimelis/autochess/internal/log"
)

// newTestGame creates a game with a fixed seed and an in-memory logger so
// tests replay identically.
func newTestGame(t *testing.T, cfg Config) *Game {
	t.Helper()
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewMemoryLogger()
	}
	g, err := NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

// emptyGame creates a test game and wipes the starting setup so scenarios can
// stage exact board positions.
func emptyGame(t *testing.T, cfg Config) *Game {
	t.Helper()
	g := newTestGame(t, cfg)
	g.Board().Clear()
	return g
}

// put places a piece directly on the board, bypassing the economy and
// frontline rules.
func put(t *testing.T, b *Board, v Variant, c Color, behavior Behavior, pos Position) *Piece {
	t.Helper()
	p := NewPiece(v, c)
	p.Behavior = behavior
	if !b.Place(p, pos) {
		t.Fatalf("put %s %s at %s: out of bounds", c, v, pos)
	}
	return p
}

// memLogger extracts the game's logger for event assertions.
func memLogger(t *testing.T, g *Game) *log.MemoryLogger {
	t.Helper()
	ml, ok := g.Logger().(*log.MemoryLogger)
	if !ok {
		t.Fatalf("game logger is %T, want *log.MemoryLogger", g.Logger())
	}
	return ml
}

// moveSet turns a move list into a set for order-independent comparison.
func moveSet(moves []Position) map[Position]bool {
	set := make(map[Position]bool, len(moves))
	for _, m := range moves {
		set[m] = true
	}
	return set
}

// wantMoves fails unless got contains exactly the wanted positions.
func wantMoves(t *testing.T, got []Position, want ...Position) {
	t.Helper()
	gotSet := moveSet(got)
	if len(gotSet) != len(want) {
		t.Fatalf("got %d moves %v, want %d %v", len(gotSet), got, len(want), want)
	}
	for _, w := range want {
		if !gotSet[w] {
			t.Fatalf("missing move %s in %v", w, got)
		}
	}
}
