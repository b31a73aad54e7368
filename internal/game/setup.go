package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/peterkuimelis/autochess/internal/log"
)

// Named starting setups.
const (
	SetupKings       = "kings"
	SetupTraditional = "traditional"
	SetupMedium      = "medium"
)

// applySetup seeds the board with the named setup. Setup placement bypasses
// the point economy and the frontline check; both only govern player
// placements made afterwards.
func (g *Game) applySetup(name string) error {
	var placed int
	switch name {
	case SetupKings:
		placed = g.setupKings()
	case SetupTraditional:
		placed = g.setupTraditional()
	case SetupMedium:
		placed = g.setupMedium()
	default:
		return fmt.Errorf("unknown setup %q", name)
	}
	g.logger.Log(log.NewSetupEvent(name, placed))
	return nil
}

// setupKings places a single king per side on the back row, each in a random
// column.
func (g *Game) setupKings() int {
	size := g.board.Size()
	g.board.Place(NewPiece(King, White), Position{Row: size - 1, Col: g.rng.Intn(size)})
	g.board.Place(NewPiece(King, Black), Position{Row: 0, Col: g.rng.Intn(size)})
	return 2
}

// traditionalBackRank is the classic eight-piece home row.
var traditionalBackRank = [8]Variant{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// setupTraditional places the classic two-rank army per side, centered on
// boards wider than eight columns.
func (g *Game) setupTraditional() int {
	size := g.board.Size()
	offset := (size - 8) / 2
	placed := 0
	for i, v := range traditionalBackRank {
		col := offset + i
		g.board.Place(NewPiece(v, Black), Position{Row: 0, Col: col})
		g.board.Place(NewPiece(Pawn, Black), Position{Row: 1, Col: col})
		g.board.Place(NewPiece(v, White), Position{Row: size - 1, Col: col})
		g.board.Place(NewPiece(Pawn, White), Position{Row: size - 2, Col: col})
		placed += 4
	}
	return placed
}

// setupMedium places a king plus a randomized mid-sized army per side: 5 to
// 12 pawns, 3 rooks, 3 bishops and 4 knights, scattered in each color's own
// half of the board.
func (g *Game) setupMedium() int {
	placed := 0
	for _, c := range []Color{White, Black} {
		size := g.board.Size()
		kingRow := 0
		if c == White {
			kingRow = size - 1
		}
		g.board.Place(NewPiece(King, c), Position{Row: kingRow, Col: g.rng.Intn(size)})
		placed++

		counts := []struct {
			v Variant
			n int
		}{
			{Pawn, 5 + g.rng.Intn(8)},
			{Rook, 3},
			{Bishop, 3},
			{Knight, 4},
		}
		for _, cn := range counts {
			for i := 0; i < cn.n; i++ {
				if g.placeRandomInHalf(NewPiece(cn.v, c), c) {
					placed++
				}
			}
		}
	}
	return placed
}

// placeRandomInHalf drops a piece on a random empty square in the color's
// own half. Gives up after a bounded number of tries on a crowded board.
func (g *Game) placeRandomInHalf(p *Piece, c Color) bool {
	size := g.board.Size()
	half := size / 2
	for tries := 0; tries < 100; tries++ {
		row := g.rng.Intn(half)
		if c == White {
			row += size - half
		}
		pos := Position{Row: row, Col: g.rng.Intn(size)}
		if g.board.Get(pos) == nil {
			g.board.Place(p, pos)
			return true
		}
	}
	return false
}

// --- Custom setups from YAML ---

// PlacementEntry is one piece in a custom setup file.
type PlacementEntry struct {
	Variant string `yaml:"variant"`
	Color   string `yaml:"color"`
	Row     int    `yaml:"row"`
	Col     int    `yaml:"col"`
}

// SetupEntry is one named setup in a custom setup file.
type SetupEntry struct {
	Name   string           `yaml:"name"`
	Pieces []PlacementEntry `yaml:"pieces"`
}

// SetupFile is the root document of a custom setup file.
type SetupFile struct {
	Setups []SetupEntry `yaml:"setups"`
}

// LoadSetupFile reads and parses a custom setup file.
func LoadSetupFile(path string) (*SetupFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading setup file: %w", err)
	}
	return ParseSetupFile(data)
}

// ParseSetupFile parses custom setup YAML and validates every entry.
func ParseSetupFile(data []byte) (*SetupFile, error) {
	var f SetupFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing setup file: %w", err)
	}
	if len(f.Setups) == 0 {
		return nil, fmt.Errorf("setup file defines no setups")
	}
	for _, s := range f.Setups {
		if s.Name == "" {
			return nil, fmt.Errorf("setup with empty name")
		}
		for _, p := range s.Pieces {
			if _, err := ParseVariant(p.Variant); err != nil {
				return nil, fmt.Errorf("setup %q: %w", s.Name, err)
			}
			if _, err := ParseColor(p.Color); err != nil {
				return nil, fmt.Errorf("setup %q: %w", s.Name, err)
			}
		}
	}
	return &f, nil
}

// Find returns the named setup from the file.
func (f *SetupFile) Find(name string) (*SetupEntry, bool) {
	for i := range f.Setups {
		if f.Setups[i].Name == name {
			return &f.Setups[i], true
		}
	}
	return nil, false
}

// ApplyCustomSetup places a parsed custom setup onto an empty-enough board.
// Entries out of bounds or on occupied squares are rejected.
func (g *Game) ApplyCustomSetup(s *SetupEntry) error {
	placed := 0
	for _, e := range s.Pieces {
		v, err := ParseVariant(e.Variant)
		if err != nil {
			return fmt.Errorf("setup %q: %w", s.Name, err)
		}
		c, err := ParseColor(e.Color)
		if err != nil {
			return fmt.Errorf("setup %q: %w", s.Name, err)
		}
		pos := Position{Row: e.Row, Col: e.Col}
		if !g.board.InBounds(pos) {
			return fmt.Errorf("setup %q: position %s: %w", s.Name, pos, ErrOutOfBounds)
		}
		if g.board.Get(pos) != nil {
			return fmt.Errorf("setup %q: position %s: %w", s.Name, pos, ErrOccupied)
		}
		g.board.Place(NewPiece(v, c), pos)
		placed++
	}
	g.logger.Log(log.NewSetupEvent(s.Name, placed))
	return nil
}
