package events

import (
	"time"

	"github.com/tejasmmali/canteen-swift/internal/domain"
)

const (
	TypeOrderCreated       = "order.created"
	TypeOrderStatusChanged = "order.status_changed"
)

// OrderEvent is the integration event published for downstream consumers
// (kitchen displays, notification senders). It intentionally omits customer
// contact fields: the broker is a broadcast channel without masking
// semantics, so unmasked data never crosses it.
type OrderEvent struct {
	EventID        string            `json:"event_id"`
	Type           string            `json:"type"`
	OrderID        string            `json:"order_id"`
	Items          []domain.CartItem `json:"items,omitempty"`
	TotalAmount    int64             `json:"total_amount"`
	Status         string            `json:"status"`
	PreviousStatus string            `json:"previous_status,omitempty"`
	EstimatedTime  int               `json:"estimated_time,omitempty"`
	Timestamp      time.Time         `json:"timestamp"`
}
