// Package session holds the current authenticated identity as a
// single-slot publish/subscribe cell: one writer (the auth flow), many
// readers (navbar, profile, wizard). Subscribers get the current value on
// subscribe and every change after, until they unsubscribe.
package session

import (
	"sync"

	"labura/models"
)

// Listener receives the identity after every change. A nil identity means
// signed out.
type Listener func(*models.Identity)

// Cell is the single-slot identity store.
type Cell struct {
	mu        sync.Mutex
	current   *models.Identity
	listeners map[int]Listener
	nextID    int
}

// NewCell creates an empty (signed-out) cell.
func NewCell() *Cell {
	return &Cell{listeners: make(map[int]Listener)}
}

// Current returns the identity in the cell, or nil when signed out.
func (c *Cell) Current() *models.Identity {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Set publishes a new identity to all subscribers.
func (c *Cell) Set(id *models.Identity) {
	c.mu.Lock()
	c.current = id
	listeners := c.snapshot()
	c.mu.Unlock()

	for _, l := range listeners {
		l(id)
	}
}

// Clear signs the cell out. Idempotent: clearing an empty cell publishes
// nothing.
func (c *Cell) Clear() {
	c.mu.Lock()
	if c.current == nil {
		c.mu.Unlock()
		return
	}
	c.current = nil
	listeners := c.snapshot()
	c.mu.Unlock()

	for _, l := range listeners {
		l(nil)
	}
}

// Subscribe registers a listener and immediately delivers the current
// value. The returned id is used to unsubscribe.
func (c *Cell) Subscribe(l Listener) int {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = l
	current := c.current
	c.mu.Unlock()

	l(current)
	return id
}

// Unsubscribe removes a listener. Unknown ids are ignored.
func (c *Cell) Unsubscribe(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.listeners, id)
}

// snapshot copies the listener set; callers must hold the lock.
func (c *Cell) snapshot() []Listener {
	out := make([]Listener, 0, len(c.listeners))
	for _, l := range c.listeners {
		out = append(out, l)
	}
	return out
}
