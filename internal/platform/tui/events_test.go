package tui

import (
	"testing"
)

func TestEventBridgeDropsOldest(t *testing.T) {
	b := NewEventBridge(2)
	b.Send(ScoreMsg{Score: 100})
	b.Send(ScoreMsg{Score: 250})
	b.Send(ScoreMsg{Score: 450})

	first := (<-b.Events()).(ScoreMsg)
	second := (<-b.Events()).(ScoreMsg)
	if first.Score != 250 || second.Score != 450 {
		t.Errorf("Expected 250 then 450, got %d then %d", first.Score, second.Score)
	}
}

func TestEventBridgeWait(t *testing.T) {
	b := NewEventBridge(0)
	b.Send(MissMsg{Misses: 1})

	msg := b.Wait()()
	if m, ok := msg.(MissMsg); !ok || m.Misses != 1 {
		t.Fatalf("Wait() = %#v", msg)
	}

	b.Close()
	b.Close()
	if msg := b.Wait()(); msg != nil {
		t.Errorf("Wait() after Close = %#v, want nil", msg)
	}

	// Sends after Close are dropped
	b.Send(MissMsg{Misses: 2})
	select {
	case msg := <-b.Events():
		t.Errorf("Unexpected message after Close: %#v", msg)
	default:
	}
}
