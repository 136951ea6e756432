package service

import (
	"context"
	"time"

	"github.com/tejasmmali/canteen-swift/internal/domain"
	"github.com/tejasmmali/canteen-swift/internal/feed"
)

// OrderStore is the authoritative order store. UpdateStatus must be a
// conditional write against the expected current status so concurrent
// transitions serialize.
type OrderStore interface {
	Insert(ctx context.Context, order domain.Order) error
	Get(ctx context.Context, id string) (domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.OrderStatus, at time.Time) (domain.Order, error)
}

// Catalog resolves menu-item references at order time.
type Catalog interface {
	Get(id string) (domain.MenuItem, bool)
}

// EventPublisher emits integration events to the broker.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, order domain.Order) error
	PublishStatusChanged(ctx context.Context, order domain.Order, previous domain.OrderStatus) error
}

// ChangeFeed notifies live subscribers of order changes.
type ChangeFeed interface {
	Publish(event feed.Event)
}

// Metrics counts orders by the status they reach.
type Metrics interface {
	RecordOrder(status string)
}
