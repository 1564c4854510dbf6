package websocket

import (
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
)

func testHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func mockClient(hub *Hub) *Client {
	return &Client{
		hub:  hub,
		send: make(chan []byte, sendBufferSize),
	}
}

func TestRegisterUnregister(t *testing.T) {
	hub := testHub()
	c := mockClient(hub)

	hub.Register(c)
	if got := hub.ClientCount(); got != 1 {
		t.Fatalf("ClientCount after register = %d, want 1", got)
	}

	hub.Unregister(c)
	if got := hub.ClientCount(); got != 0 {
		t.Fatalf("ClientCount after unregister = %d, want 0", got)
	}
}

func TestDoubleUnregister(t *testing.T) {
	hub := testHub()
	c := mockClient(hub)

	hub.Register(c)
	hub.Unregister(c)
	// A second unregister must not panic on the closed channel.
	hub.Unregister(c)
}

func TestBroadcast(t *testing.T) {
	hub := testHub()
	c := mockClient(hub)
	hub.Register(c)

	hub.Broadcast(NewMessage(EntityShoppingItem, "checked", "plan-1-pollo", nil))

	select {
	case data := <-c.send:
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("unmarshal broadcast: %v", err)
		}
		if msg.Type != "shopping_item_checked" {
			t.Errorf("Type = %q, want %q", msg.Type, "shopping_item_checked")
		}
		if msg.ID != "plan-1-pollo" {
			t.Errorf("ID = %q, want %q", msg.ID, "plan-1-pollo")
		}
	default:
		t.Fatal("no message delivered to client")
	}
}

func TestBroadcastEmptyHub(t *testing.T) {
	hub := testHub()
	// Must not panic or block with no clients.
	hub.Broadcast(NewMessage(EntityPlan, "created", "p1", nil))
}

func TestBroadcastFullBuffer(t *testing.T) {
	hub := testHub()
	c := mockClient(hub)
	hub.Register(c)

	for i := 0; i < sendBufferSize; i++ {
		hub.Broadcast(NewMessage(EntityPlan, "updated", "p1", nil))
	}
	// Buffer is full; this one is dropped instead of blocking.
	hub.Broadcast(NewMessage(EntityPlan, "updated", "p1", nil))

	if got := len(c.send); got != sendBufferSize {
		t.Errorf("buffered messages = %d, want %d", got, sendBufferSize)
	}
}

func TestNewMessage(t *testing.T) {
	msg := NewMessage(EntityPlan, "deleted", "wk-36", map[string]any{"cascade": true})

	if msg.Type != "plan_deleted" {
		t.Errorf("Type = %q, want %q", msg.Type, "plan_deleted")
	}
	if msg.Entity != EntityPlan || msg.Action != "deleted" || msg.ID != "wk-36" {
		t.Errorf("unexpected fields: %+v", msg)
	}
	if msg.Extra["cascade"] != true {
		t.Errorf("Extra = %v", msg.Extra)
	}
}

func TestConcurrentAccess(t *testing.T) {
	hub := testHub()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := mockClient(hub)
			hub.Register(c)
			hub.Broadcast(NewMessage(EntityShoppingList, "refreshed", "", nil))
			hub.Unregister(c)
		}()
	}
	wg.Wait()

	if got := hub.ClientCount(); got != 0 {
		t.Errorf("ClientCount = %d, want 0", got)
	}
}
