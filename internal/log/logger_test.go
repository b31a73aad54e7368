package log

import (
	"strings"
	"testing"
)

func TestMemoryLoggerSequencesEvents(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewTurnEvent(1, 1))
	l.Log(NewMoveEvent(1, 1, "white", "white Rook", "(5,5)", "(4,5)"))
	l.Log(NewPointsCreditEvent(1, 5, 25, 25))

	events := l.Events()
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	for i, e := range events {
		if e.Seq != i+1 {
			t.Errorf("event %d has seq %d", i, e.Seq)
		}
	}

	since := l.EventsSince(1)
	if len(since) != 2 || since[0].Type != EventMove {
		t.Errorf("EventsSince(1) = %v", since)
	}
	if got := l.EventsOfType(EventMove); len(got) != 1 {
		t.Errorf("EventsOfType(EventMove) returned %d events", len(got))
	}
	if l.LastEvent().Type != EventPointsCredit {
		t.Errorf("LastEvent = %v", l.LastEvent())
	}
}

func TestTextLoggerWritesLines(t *testing.T) {
	var sb strings.Builder
	l := NewTextLogger(&sb)
	l.Log(NewCaptureEvent(3, 2, "black", "black Queen", "white Pawn", "(4,4)", "(3,4)"))

	out := sb.String()
	if !strings.Contains(out, "black Queen captured white Pawn") {
		t.Errorf("output = %q", out)
	}
	if !strings.HasPrefix(out, "T3") {
		t.Errorf("output missing turn prefix: %q", out)
	}
	if len(l.Events()) != 1 {
		t.Error("TextLogger did not retain the event in memory")
	}
}
