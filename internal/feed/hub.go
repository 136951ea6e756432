// Package feed propagates order change notifications to live observers.
// Delivery is best-effort, at-least-once within the process: a subscriber
// that disconnects must re-query on reconnect instead of assuming it saw
// every event.
package feed

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tejasmmali/canteen-swift/internal/domain"
)

type Op string

const (
	OpInsert Op = "INSERT"
	OpUpdate Op = "UPDATE"
	OpDelete Op = "DELETE"
)

// Event is a change notification. It carries only non-sensitive fields:
// the public stream can render it directly, and the admin stream treats it
// as a hint to re-fetch through the authorization gate.
type Event struct {
	Op        Op                 `json:"op"`
	OrderID   string             `json:"orderId"`
	Status    domain.OrderStatus `json:"status,omitempty"`
	UpdatedAt time.Time          `json:"updatedAt,omitempty"`
}

// Hint strips an event down to operation and order id for the privileged
// stream, which must never trust pushed field values.
func (e Event) Hint() Event {
	return Event{Op: e.Op, OrderID: e.OrderID}
}

type Stream int

const (
	// StreamPublic feeds the tracking page: masked change events.
	StreamPublic Stream = iota
	// StreamAdmin feeds the dashboard: id-only hints, re-fetched through
	// the authorized path.
	StreamAdmin
)

type subscriber struct {
	stream Stream
	ch     chan Event
}

// Hub fans change events out to all active subscribers. A subscriber whose
// buffer is full is skipped rather than allowed to block the hub; dropped
// deliveries are covered by the re-sync-on-reconnect contract.
type Hub struct {
	mu     sync.Mutex
	subs   map[int]*subscriber
	nextID int
	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{subs: make(map[int]*subscriber), logger: logger}
}

// Subscribe registers an observer on one stream and returns the event
// channel plus a cancellation handle. Cancel is idempotent and closes the
// channel.
func (h *Hub) Subscribe(stream Stream, buffer int) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	sub := &subscriber{stream: stream, ch: make(chan Event, buffer)}
	h.subs[id] = sub

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs, id)
			close(sub.ch)
		})
	}
	return sub.ch, cancel
}

// Publish delivers the event to every public subscriber and its hint to
// every admin subscriber.
func (h *Hub) Publish(event Event) {
	hint := event.Hint()

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, sub := range h.subs {
		out := event
		if sub.stream == StreamAdmin {
			out = hint
		}
		select {
		case sub.ch <- out:
		default:
			h.logger.Warn("dropping feed event for slow subscriber",
				zap.String("order_id", event.OrderID),
				zap.String("op", string(event.Op)))
		}
	}
}

// Subscribers reports the number of active subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
