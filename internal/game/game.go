package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/peterkuimelis/autochess/internal/log"
)

const (
	MinBoardSize  = 8
	MaxBoardSize  = 50
	MinFrontline  = 1
	MaxFrontline  = 10
	MaxMoveRounds = 10

	forceTargetCost = 1
)

// Config holds construction-time configuration for a game. Zero values for
// BoardSize, Frontline, MoveRounds and StartPoints/PointsRate fall back to
// the classic defaults; out-of-range values are rejected by Validate rather
// than clamped.
type Config struct {
	BoardSize   int     // board edge length (default 24)
	Frontline   int     // placement rows beyond a king (default 2)
	PointsRate  float64 // points credited to each side per turn (default 5)
	StartPoints float64 // starting balance per side (default 20)
	MoveRounds  int     // move rounds per turn (default 1)
	Setup       string  // starting setup name (default SetupKings)

	Seed   int64 // RNG seed (0 for time-based)
	Logger log.EventLogger
}

func (c *Config) applyDefaults() {
	if c.BoardSize == 0 {
		c.BoardSize = 24
	}
	if c.Frontline == 0 {
		c.Frontline = 2
	}
	if c.PointsRate == 0 {
		c.PointsRate = 5
	}
	if c.StartPoints == 0 {
		c.StartPoints = 20
	}
	if c.MoveRounds == 0 {
		c.MoveRounds = 1
	}
	if c.Setup == "" {
		c.Setup = SetupKings
	}
}

// Validate rejects malformed configuration rather than clamping it into
// range.
func (c *Config) Validate() error {
	if c.BoardSize < MinBoardSize || c.BoardSize > MaxBoardSize {
		return fmt.Errorf("board size %d out of range [%d, %d]", c.BoardSize, MinBoardSize, MaxBoardSize)
	}
	if c.Frontline < MinFrontline || c.Frontline > MaxFrontline {
		return fmt.Errorf("frontline %d out of range [%d, %d]", c.Frontline, MinFrontline, MaxFrontline)
	}
	if c.PointsRate < 0 {
		return fmt.Errorf("points rate %g must not be negative", c.PointsRate)
	}
	if c.StartPoints < 0 {
		return fmt.Errorf("start points %g must not be negative", c.StartPoints)
	}
	if c.MoveRounds < 1 || c.MoveRounds > MaxMoveRounds {
		return fmt.Errorf("move rounds %d out of range [1, %d]", c.MoveRounds, MaxMoveRounds)
	}
	return nil
}

// Game is the authoritative rules and simulation engine: a board, two point
// balances, and the turn machinery. It is single-threaded. Placement
// operations mutate state between turns, PlayTurn is the sole mutator while
// a turn runs, and the two phases never overlap.
type Game struct {
	cfg        Config
	board      *Board
	points     [2]float64
	turn       int
	moveRounds int
	mode       Mode

	over   bool
	winner Color
	draw   bool
	result string

	rng    *rand.Rand
	logger log.EventLogger
}

// NewGame creates a game from the given config, applies the starting setup,
// and leaves the engine in placement mode on turn 1.
func NewGame(cfg Config) (*Game, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}

	g := &Game{
		cfg:        cfg,
		board:      NewBoard(cfg.BoardSize),
		points:     [2]float64{cfg.StartPoints, cfg.StartPoints},
		turn:       1,
		moveRounds: cfg.MoveRounds,
		mode:       ModePlacement,
		rng:        rand.New(rand.NewSource(seed)),
		logger:     logger,
	}

	if err := g.applySetup(cfg.Setup); err != nil {
		return nil, err
	}
	return g, nil
}

// --- Accessors ---

// Board exposes the board for read-only collaborators (rendering, snapshots).
func (g *Game) Board() *Board { return g.board }

// Points returns a side's current balance.
func (g *Game) Points(c Color) float64 { return g.points[c] }

// Turn returns the 1-based turn counter.
func (g *Game) Turn() int { return g.turn }

// Mode reports whether a simulation turn is in progress.
func (g *Game) Mode() Mode { return g.mode }

// MoveRounds returns the number of move rounds per turn.
func (g *Game) MoveRounds() int { return g.moveRounds }

// Frontline returns the configured frontline distance.
func (g *Game) Frontline() int { return g.cfg.Frontline }

// Over reports whether the game has ended.
func (g *Game) Over() bool { return g.over }

// Winner returns the winning color; ok is false while the game is running or
// after a draw.
func (g *Game) Winner() (Color, bool) {
	if !g.over || g.draw {
		return White, false
	}
	return g.winner, true
}

// Draw reports whether the game ended with both sides kingless.
func (g *Game) Draw() bool { return g.over && g.draw }

// Result is the human-readable outcome, empty while the game is running.
func (g *Game) Result() string { return g.result }

// Logger returns the game's event logger.
func (g *Game) Logger() log.EventLogger { return g.logger }

// --- Placement rules ---

// FrontlineZone is a row range (full column span) a color may place in.
type FrontlineZone struct {
	MinRow int
	MaxRow int
}

// FrontlineZones derives one placement zone per surviving king: for white,
// from frontline rows above the king down to the last row; for black, from
// row 0 down to frontline rows below the king. Zones may overlap; a color
// with no kings has no zones (and unrestricted placement).
func (g *Game) FrontlineZones(c Color) []FrontlineZone {
	var zones []FrontlineZone
	for _, king := range g.board.Kings(c) {
		if c == White {
			zones = append(zones, FrontlineZone{
				MinRow: max(0, king.Row-g.cfg.Frontline),
				MaxRow: g.board.Size() - 1,
			})
		} else {
			zones = append(zones, FrontlineZone{
				MinRow: 0,
				MaxRow: min(g.board.Size()-1, king.Row+g.cfg.Frontline),
			})
		}
	}
	return zones
}

// IsWithinFrontline reports whether a color may place at pos. A color with no
// surviving king may place anywhere. With kings, the union of per-king zones
// applies.
func (g *Game) IsWithinFrontline(pos Position, c Color) bool {
	kings := g.board.Kings(c)
	if len(kings) == 0 {
		return true
	}
	for _, king := range kings {
		if c == White {
			if pos.Row >= king.Row-g.cfg.Frontline {
				return true
			}
		} else {
			if pos.Row <= king.Row+g.cfg.Frontline {
				return true
			}
		}
	}
	return false
}

// PlacePiece creates a brand-new piece of the given variant and places it for
// the color, deducting its cost atomically with the placement. Failures are
// the typed sentinels in errors.go and leave all state untouched.
func (g *Game) PlacePiece(v Variant, c Color, pos Position) (*Piece, error) {
	if g.over {
		return nil, ErrGameOver
	}
	cost := v.Cost()
	if g.points[c] < cost {
		return nil, fmt.Errorf("placing %s costs %g, have %g: %w", v, cost, g.points[c], ErrInsufficientPoints)
	}
	if !g.board.InBounds(pos) {
		return nil, fmt.Errorf("position %s: %w", pos, ErrOutOfBounds)
	}
	if g.board.Get(pos) != nil {
		return nil, fmt.Errorf("position %s: %w", pos, ErrOccupied)
	}
	if !g.IsWithinFrontline(pos, c) {
		return nil, fmt.Errorf("position %s: %w", pos, ErrOutsideFrontline)
	}

	piece := NewPiece(v, c)
	g.board.Place(piece, pos)
	g.points[c] -= cost
	g.logger.Log(log.NewPlaceEvent(g.turn, c.String(), piece.String(), pos.String(), cost, g.points[c]))
	return piece, nil
}

// SetBehavior sets the behavior of the color's piece at pos.
func (g *Game) SetBehavior(pos Position, c Color, b Behavior) error {
	if g.over {
		return ErrGameOver
	}
	piece := g.board.Get(pos)
	if piece == nil {
		return fmt.Errorf("position %s: %w", pos, ErrNoPiece)
	}
	if piece.Color != c {
		return fmt.Errorf("position %s: %w", pos, ErrNotYourPiece)
	}
	piece.Behavior = b
	g.logger.Log(log.NewBehaviorSetEvent(g.turn, c.String(), piece.String(), pos.String(), b.String()))
	return nil
}

// SetForceTarget gives the color's piece at pos a one-shot movement target
// for the next turn. It costs one point, deducted atomically.
func (g *Game) SetForceTarget(pos Position, c Color, target Position) error {
	if g.over {
		return ErrGameOver
	}
	if !g.board.InBounds(target) {
		return fmt.Errorf("target %s: %w", target, ErrOutOfBounds)
	}
	piece := g.board.Get(pos)
	if piece == nil {
		return fmt.Errorf("position %s: %w", pos, ErrNoPiece)
	}
	if piece.Color != c {
		return fmt.Errorf("position %s: %w", pos, ErrNotYourPiece)
	}
	if g.points[c] < forceTargetCost {
		return fmt.Errorf("force move costs %d point: %w", forceTargetCost, ErrInsufficientPoints)
	}
	piece.SetForceTarget(target)
	g.points[c] -= forceTargetCost
	g.logger.Log(log.NewForceTargetEvent(g.turn, c.String(), piece.String(), pos.String(), target.String()))
	return nil
}

// SetMoveRounds adjusts the number of move rounds executed per turn.
func (g *Game) SetMoveRounds(n int) error {
	if n < 1 || n > MaxMoveRounds {
		return ErrInvalidMoveRounds
	}
	g.moveRounds = n
	return nil
}

// ResetAllBehaviors returns every piece to default behavior. Behaviors are
// persistent across turns; this is an explicit operation, not part of the
// turn cycle.
func (g *Game) ResetAllBehaviors() {
	for _, pp := range g.board.AllPieces() {
		pp.Piece.Behavior = BehaviorDefault
	}
}

// --- Turn engine ---

// PlayTurn runs one full simulation turn: every move round shuffles all
// pieces and resolves one behavior-filtered move per surviving piece, then
// the economy is credited, the turn counter advances, and force-move targets
// are consumed. A king capture that decides the game aborts the remaining
// rounds immediately.
func (g *Game) PlayTurn() error {
	if g.over {
		return ErrGameOver
	}
	g.mode = ModeMovement
	defer func() { g.mode = ModePlacement }()

	g.logger.Log(log.NewTurnEvent(g.turn, g.moveRounds))

	for round := 1; round <= g.moveRounds; round++ {
		if g.moveRounds > 1 {
			g.logger.Log(log.NewRoundStartEvent(g.turn, round))
		}
		if g.playRound(round) {
			break
		}
	}

	if g.over {
		return nil
	}

	g.points[White] += g.cfg.PointsRate
	g.points[Black] += g.cfg.PointsRate
	g.logger.Log(log.NewPointsCreditEvent(g.turn, g.cfg.PointsRate, g.points[White], g.points[Black]))
	g.turn++
	g.clearAllForceTargets()
	g.checkWin()
	return nil
}

// playRound runs one move round. Reports true when a king capture ended the
// game and the rest of the turn must be abandoned.
func (g *Game) playRound(round int) bool {
	pieces := g.board.AllPieces()
	g.rng.Shuffle(len(pieces), func(i, j int) {
		pieces[i], pieces[j] = pieces[j], pieces[i]
	})

	for _, pp := range pieces {
		// The piece may have been captured or relocated earlier this round.
		piece := g.board.Get(pp.Pos)
		if piece != pp.Piece {
			continue
		}
		if piece.Behavior == BehaviorPassive {
			if _, forced := piece.ForceTarget(); !forced {
				continue
			}
		}

		moves := EffectiveMoves(piece, pp.Pos, g.board)
		dests := moves[:0]
		for _, m := range moves {
			target := g.board.Get(m)
			if target != nil && target.Color == piece.Color {
				panic(fmt.Sprintf("effective move %s for %s lands on friendly piece", m, piece))
			}
			dests = append(dests, m)
		}
		if len(dests) == 0 {
			continue
		}

		to := dests[g.rng.Intn(len(dests))]
		victim := g.board.Get(to)
		wasPawn := piece.Variant == Pawn

		if !g.board.Move(pp.Pos, to) {
			panic(fmt.Sprintf("move from occupied square %s failed", pp.Pos))
		}

		if victim != nil {
			g.logger.Log(log.NewCaptureEvent(g.turn, round, piece.Color.String(), piece.String(), victim.String(), pp.Pos.String(), to.String()))
		} else {
			g.logger.Log(log.NewMoveEvent(g.turn, round, piece.Color.String(), piece.String(), pp.Pos.String(), to.String()))
		}
		if wasPawn && to.Row == piece.Color.PromotionRow(g.board.Size()) {
			g.logger.Log(log.NewPromotionEvent(g.turn, round, piece.Color.String(), to.String()))
		}

		if victim != nil && victim.Variant == King {
			g.logger.Log(log.NewKingCapturedEvent(g.turn, round, victim.Color.String()))
			if g.checkWin() {
				return true
			}
		}
	}
	return false
}

// clearAllForceTargets consumes every force-move target, whether or not the
// target was reached.
func (g *Game) clearAllForceTargets() {
	for _, pp := range g.board.AllPieces() {
		pp.Piece.ClearForceTarget()
	}
}

// checkWin counts surviving kings per color and ends the game when exactly
// one color has none (opponent wins) or both do (draw).
func (g *Game) checkWin() bool {
	if g.over {
		return true
	}
	whiteKings := g.board.KingCount(White)
	blackKings := g.board.KingCount(Black)

	switch {
	case whiteKings == 0 && blackKings == 0:
		g.over = true
		g.draw = true
		g.result = "Draw - No kings remaining"
		g.logger.Log(log.NewDrawEvent(g.turn))
	case whiteKings == 0:
		g.over = true
		g.winner = Black
		g.result = "Black wins!"
		g.logger.Log(log.NewWinEvent(g.turn, Black.String()))
	case blackKings == 0:
		g.over = true
		g.winner = White
		g.result = "White wins!"
		g.logger.Log(log.NewWinEvent(g.turn, White.String()))
	default:
		return false
	}
	return true
}
