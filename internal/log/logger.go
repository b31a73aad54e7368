package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging game events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// EventsSince returns all events with a sequence number greater than seq.
func (l *MemoryLogger) EventsSince(seq int) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Seq > seq {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	round := ""
	if e.Round > 0 {
		round = fmt.Sprintf("r%d ", e.Round)
	}
	return fmt.Sprintf("T%-3d %s%s", e.Turn, round, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewTurnEvent(turn, rounds int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventNewTurn,
		Details: fmt.Sprintf("=== Turn %d (%d move rounds) ===", turn, rounds),
	}
}

func NewRoundStartEvent(turn, round int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Round:   round,
		Type:    EventRoundStart,
		Details: fmt.Sprintf("--- Move round %d ---", round),
	}
}

func NewPlaceEvent(turn int, player, piece string, pos string, cost, remaining float64) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventPlace,
		Piece:   piece,
		Details: fmt.Sprintf("%s placed at %s for %g points (%g remaining)", piece, pos, cost, remaining),
	}
}

func NewMoveEvent(turn, round int, player, piece, from, to string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Round:   round,
		Player:  player,
		Type:    EventMove,
		Piece:   piece,
		Details: fmt.Sprintf("%s moved %s → %s", piece, from, to),
	}
}

func NewCaptureEvent(turn, round int, player, piece, victim, from, to string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Round:   round,
		Player:  player,
		Type:    EventCapture,
		Piece:   piece,
		Details: fmt.Sprintf("%s captured %s %s → %s", piece, victim, from, to),
	}
}

func NewPromotionEvent(turn, round int, player, pos string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Round:   round,
		Player:  player,
		Type:    EventPromotion,
		Details: fmt.Sprintf("%s pawn promoted to Queen at %s", player, pos),
	}
}

func NewKingCapturedEvent(turn, round int, victim string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Round:   round,
		Player:  victim,
		Type:    EventKingCaptured,
		Details: fmt.Sprintf("%s king eliminated", victim),
	}
}

func NewBehaviorSetEvent(turn int, player, piece, pos, behavior string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventBehaviorSet,
		Piece:   piece,
		Details: fmt.Sprintf("%s at %s set to %s", piece, pos, behavior),
	}
}

func NewForceTargetEvent(turn int, player, piece, pos, target string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventForceTarget,
		Piece:   piece,
		Details: fmt.Sprintf("%s at %s will move toward %s", piece, pos, target),
	}
}

func NewPointsCreditEvent(turn int, rate, white, black float64) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventPointsCredit,
		Details: fmt.Sprintf("both players gained %g points (white %g, black %g)", rate, white, black),
	}
}

func NewSetupEvent(name string, pieces int) GameEvent {
	return GameEvent{
		Type:    EventSetup,
		Details: fmt.Sprintf("starting setup %q placed %d pieces", name, pieces),
	}
}

func NewWinEvent(turn int, winner string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  winner,
		Type:    EventWin,
		Details: fmt.Sprintf("%s wins: opponent has no kings remaining", winner),
	}
}

func NewDrawEvent(turn int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Type:    EventDraw,
		Details: "draw: no kings remaining on either side",
	}
}
