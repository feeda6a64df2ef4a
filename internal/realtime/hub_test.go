package realtime

import (
	"encoding/json"
	"testing"
	"time"
)

func recv(t *testing.T, c *client) Event {
	t.Helper()
	select {
	case msg, ok := <-c.send:
		if !ok {
			t.Fatal("send channel closed")
		}
		var ev Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		return ev
	case <-time.After(time.Second):
		t.Fatal("no event received")
		return Event{}
	}
}

func TestPublish_ReachesOnlyTheRoom(t *testing.T) {
	hub := NewHub()
	a := hub.subscribe("tok-a")
	b := hub.subscribe("tok-b")

	hub.Publish("tok-a", "mode_changed", map[string]string{"mode": "individual"})

	ev := recv(t, a)
	if ev.Event != "mode_changed" {
		t.Errorf("event = %q, want mode_changed", ev.Event)
	}
	if ev.SentAt.IsZero() {
		t.Error("SentAt not stamped")
	}
	select {
	case msg := <-b.send:
		t.Errorf("other room received %s", msg)
	default:
	}
}

func TestPublish_UnknownRoomIsNoop(t *testing.T) {
	NewHub().Publish("nobody-home", "session_created", nil)
}

func TestPublish_EvictsSlowSubscriber(t *testing.T) {
	hub := NewHub()
	slow := hub.subscribe("tok")
	fast := hub.subscribe("tok")

	for i := 0; i < sendBuffer+1; i++ {
		hub.Publish("tok", "participant_joined", i)
	}

	if got := hub.RoomSize("tok"); got != 1 {
		t.Fatalf("room size = %d, want 1 after slow eviction", got)
	}
	select {
	case _, ok := <-fast.send:
		if !ok {
			t.Fatal("fast subscriber was closed")
		}
	case <-time.After(time.Second):
		t.Fatal("fast subscriber starved")
	}
	// Eviction closes the channel once drained.
	drained := false
	for !drained {
		select {
		case _, ok := <-slow.send:
			if !ok {
				drained = true
			}
		case <-time.After(time.Second):
			t.Fatal("slow subscriber channel never closed")
		}
	}
}

func TestUnsubscribe_RemovesEmptyRoom(t *testing.T) {
	hub := NewHub()
	c := hub.subscribe("tok")
	if got := hub.RoomSize("tok"); got != 1 {
		t.Fatalf("room size = %d, want 1", got)
	}
	hub.unsubscribe("tok", c)
	hub.unsubscribe("tok", c) // idempotent
	if got := hub.RoomSize("tok"); got != 0 {
		t.Errorf("room size = %d, want 0", got)
	}
	if _, ok := <-c.send; ok {
		t.Error("send channel left open after unsubscribe")
	}
}
