package events

import (
	"sync"

	"github.com/cbodonnell/gridstead/pkg/log"
)

// Handler handles values emitted on a Channel.
type Handler[T any] func(value T)

type entry[T any] struct {
	id      int
	handler Handler[T]
}

// Channel is a typed observer list. Handlers are invoked synchronously
// and in subscription order. A panicking handler does not prevent
// delivery to later handlers.
type Channel[T any] struct {
	lock    sync.Mutex
	nextID  int
	entries []entry[T]
}

func NewChannel[T any]() *Channel[T] {
	return &Channel[T]{}
}

// On registers a handler and returns its subscription ID.
func (c *Channel[T]) On(handler Handler[T]) int {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.nextID++
	c.entries = append(c.entries, entry[T]{
		id:      c.nextID,
		handler: handler,
	})
	return c.nextID
}

// Off removes the handler with the given subscription ID.
// Removing an unknown ID is a no-op, so Off is safe to call twice.
func (c *Channel[T]) Off(id int) {
	c.lock.Lock()
	defer c.lock.Unlock()
	for i, e := range c.entries {
		if e.id == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

// Emit delivers value to every registered handler in subscription order.
func (c *Channel[T]) Emit(value T) {
	c.lock.Lock()
	entries := make([]entry[T], len(c.entries))
	copy(entries, c.entries)
	c.lock.Unlock()

	for _, e := range entries {
		invoke(e.handler, value)
	}
}

func invoke[T any](handler Handler[T], value T) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("Event handler panicked: %v", r)
		}
	}()
	handler(value)
}
