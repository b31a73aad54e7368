package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventNewTurn EventType = iota
	EventRoundStart
	EventPlace
	EventMove
	EventCapture
	EventPromotion
	EventKingCaptured
	EventBehaviorSet
	EventForceTarget
	EventPointsCredit
	EventSetup
	EventWin
	EventDraw
)

func (e EventType) String() string {
	switch e {
	case EventNewTurn:
		return "NewTurn"
	case EventRoundStart:
		return "RoundStart"
	case EventPlace:
		return "Place"
	case EventMove:
		return "Move"
	case EventCapture:
		return "Capture"
	case EventPromotion:
		return "Promotion"
	case EventKingCaptured:
		return "KingCaptured"
	case EventBehaviorSet:
		return "BehaviorSet"
	case EventForceTarget:
		return "ForceTarget"
	case EventPointsCredit:
		return "PointsCredit"
	case EventSetup:
		return "Setup"
	case EventWin:
		return "Win"
	case EventDraw:
		return "Draw"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a game.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // which turn (1-based)
	Round   int       // move round within the turn (1-based, 0 if not in a round)
	Player  string    // acting color ("white", "black", or "" for neutral events)
	Type    EventType // event type
	Piece   string    // piece description (if applicable), e.g. "white Rook"
	Details string    // human-readable detail string
}
