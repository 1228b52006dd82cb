package ws

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
)

func testHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHubRegisterUnregister(t *testing.T) {
	hub := testHub()
	c := NewClient(hub, nil, 1)

	hub.Register(c)
	if n := hub.ClientCount(1); n != 1 {
		t.Fatalf("client count = %d, want 1", n)
	}

	hub.Unregister(c)
	if n := hub.ClientCount(1); n != 0 {
		t.Fatalf("client count = %d, want 0", n)
	}

	// Unregistering twice must not close the channel again.
	hub.Unregister(c)
}

func TestHubBroadcastScopedToFamily(t *testing.T) {
	hub := testHub()
	mine := NewClient(hub, nil, 1)
	sibling := NewClient(hub, nil, 1)
	foreign := NewClient(hub, nil, 2)
	hub.Register(mine)
	hub.Register(sibling)
	hub.Register(foreign)

	hub.Broadcast(1, NewEvent("chore", "completed", 42))

	for _, c := range []*Client{mine, sibling} {
		select {
		case data := <-c.send:
			var ev Event
			if err := json.Unmarshal(data, &ev); err != nil {
				t.Fatalf("unmarshal event: %v", err)
			}
			if ev.Type != "chore_completed" || ev.ID != 42 {
				t.Errorf("event = %+v, want chore_completed id 42", ev)
			}
		default:
			t.Error("family client received nothing")
		}
	}

	select {
	case <-foreign.send:
		t.Error("foreign family received the event")
	default:
	}
}

func TestHubBroadcastDropsWhenBufferFull(t *testing.T) {
	hub := testHub()
	c := NewClient(hub, nil, 1)
	hub.Register(c)

	// Nothing drains c.send; the hub must not block once the buffer fills.
	for i := 0; i < sendBufferSize+5; i++ {
		hub.Broadcast(1, NewEvent("chore", "created", int64(i)))
	}
	if len(c.send) != sendBufferSize {
		t.Errorf("buffered = %d, want %d", len(c.send), sendBufferSize)
	}
}

func TestHubNotify(t *testing.T) {
	hub := testHub()
	c := NewClient(hub, nil, 7)
	hub.Register(c)

	hub.Notify(7, "redemption", "approved", 3)

	select {
	case data := <-c.send:
		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		if ev.Entity != "redemption" || ev.Action != "approved" || ev.ID != 3 {
			t.Errorf("event = %+v", ev)
		}
	default:
		t.Fatal("no event delivered")
	}
}
