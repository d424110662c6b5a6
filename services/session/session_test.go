package session

import (
	"testing"

	"labura/models"
)

func TestSubscribeDeliversCurrentValueImmediately(t *testing.T) {
	cell := NewCell()
	cell.Set(&models.Identity{ID: "u1"})

	var got *models.Identity
	cell.Subscribe(func(id *models.Identity) { got = id })

	if got == nil || got.ID != "u1" {
		t.Errorf("expected immediate delivery of the current identity, got %v", got)
	}
}

func TestSetPublishesToAllSubscribers(t *testing.T) {
	cell := NewCell()

	var a, b *models.Identity
	cell.Subscribe(func(id *models.Identity) { a = id })
	cell.Subscribe(func(id *models.Identity) { b = id })

	cell.Set(&models.Identity{ID: "u1"})
	if a == nil || b == nil || a.ID != "u1" || b.ID != "u1" {
		t.Errorf("expected both subscribers notified, got %v and %v", a, b)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	cell := NewCell()

	calls := 0
	cell.Subscribe(func(id *models.Identity) { calls++ })
	// The subscribe itself delivers once.
	if calls != 1 {
		t.Fatalf("expected 1 initial delivery, got %d", calls)
	}

	cell.Set(&models.Identity{ID: "u1"})
	cell.Clear()
	cell.Clear()
	cell.Clear()

	// Set + one effective clear; repeated clears publish nothing.
	if calls != 3 {
		t.Errorf("expected 3 deliveries, got %d", calls)
	}
	if cell.Current() != nil {
		t.Error("expected the cell to be signed out")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	cell := NewCell()

	calls := 0
	id := cell.Subscribe(func(identity *models.Identity) { calls++ })
	cell.Unsubscribe(id)

	cell.Set(&models.Identity{ID: "u1"})
	if calls != 1 {
		t.Errorf("expected no delivery after unsubscribe, got %d calls", calls)
	}

	// Unknown ids are ignored.
	cell.Unsubscribe(99)
}
