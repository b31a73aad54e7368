package game

import "errors"

// Placement and command failures. All are recoverable and reported to the
// caller; the turn engine itself never returns these.
var (
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrOutOfBounds        = errors.New("position out of bounds")
	ErrOccupied           = errors.New("position already occupied")
	ErrOutsideFrontline   = errors.New("position outside frontline")
	ErrNoPiece            = errors.New("no piece at position")
	ErrNotYourPiece       = errors.New("piece belongs to the other player")
	ErrGameOver           = errors.New("game is over")
	ErrInvalidMoveRounds  = errors.New("move rounds must be between 1 and 10")
)
