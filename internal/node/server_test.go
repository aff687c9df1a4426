package node

import (
	"context"
	"testing"

	clocksimpb "clocksim/internal/gen/api"
	"clocksim/internal/inbox"
)

func TestServer_SendMessageEnqueues(t *testing.T) {
	queue := inbox.New()
	s := NewServer("A", queue)

	ack, err := s.SendMessage(context.Background(), &clocksimpb.ClockMessage{
		SenderId:    "B",
		LogicalTime: 12,
	})
	if err != nil {
		t.Fatalf("SendMessage returned error: %v", err)
	}
	if ack == nil {
		t.Fatal("Expected non-nil ack")
	}

	m, ok := queue.TryPop()
	if !ok {
		t.Fatal("Expected a queued message")
	}
	if m.SenderID != "B" || m.LogicalTime != 12 {
		t.Errorf("Queued message = %+v, want B/12", m)
	}
}

func TestServer_PreservesArrivalOrder(t *testing.T) {
	queue := inbox.New()
	s := NewServer("A", queue)
	ctx := context.Background()

	// Arrival order wins even when logical times are descending.
	for i := 5; i > 0; i-- {
		if _, err := s.SendMessage(ctx, &clocksimpb.ClockMessage{
			SenderId:    "B",
			LogicalTime: int64(i),
		}); err != nil {
			t.Fatalf("SendMessage returned error: %v", err)
		}
	}

	want := int64(5)
	for {
		m, ok := queue.TryPop()
		if !ok {
			break
		}
		if m.LogicalTime != want {
			t.Errorf("Expected logical time %d next, got %d", want, m.LogicalTime)
		}
		want--
	}
	if want != 0 {
		t.Errorf("Expected to drain 5 messages, %d left unseen", want)
	}
}
