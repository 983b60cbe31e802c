// Package eventbus delivers typed events to subscribers on the publisher's goroutine.
package eventbus

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"admin-panel/internal/logger"
)

type Event struct {
	Type      string
	Timestamp time.Time
	Data      any
}

// Handler receives one event. It must not block for long: Publish waits for it.
type Handler func(event Event)

type subscription struct {
	id      string
	handler Handler
}

type Bus struct {
	mu          sync.RWMutex
	subscribers map[string][]subscription
	logger      logger.Logger
}

func New(log logger.Logger) *Bus {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Bus{
		subscribers: make(map[string][]subscription),
		logger:      log,
	}
}

// Subscribe registers handler for eventType and returns its subscription id.
func (b *Bus) Subscribe(eventType string, handler Handler) string {
	id := uuid.NewString()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[eventType] = append(b.subscribers[eventType], subscription{id: id, handler: handler})
	return id
}

// Unsubscribe removes a subscription. It reports whether the id was registered.
func (b *Bus) Unsubscribe(eventType, id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subscribers[eventType]
	for i, s := range subs {
		if s.id == id {
			next := make([]subscription, 0, len(subs)-1)
			next = append(next, subs[:i]...)
			next = append(next, subs[i+1:]...)
			b.subscribers[eventType] = next
			return true
		}
	}
	return false
}

// Subscribers returns the number of handlers registered for eventType.
func (b *Bus) Subscribers(eventType string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers[eventType])
}

// Publish stamps the event and hands it to every subscriber in registration order.
func (b *Bus) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	b.mu.RLock()
	handlers := make([]subscription, len(b.subscribers[event.Type]))
	copy(handlers, b.subscribers[event.Type])
	b.mu.RUnlock()

	for _, s := range handlers {
		b.dispatch(s, event)
	}
}

func (b *Bus) dispatch(s subscription, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("EventBus", fmt.Errorf("handler panic: %v", r), map[string]interface{}{
				"event":        event.Type,
				"subscription": s.id,
			})
		}
	}()
	s.handler(event)
}
