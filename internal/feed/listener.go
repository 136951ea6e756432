package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/tejasmmali/canteen-swift/internal/domain"
)

// notifyPayload matches the JSON built by the orders notify trigger. Only
// op and id are load-bearing; status and updated_at let the public stream
// render without a round trip.
type notifyPayload struct {
	Op        string    `json:"op"`
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Listener holds a dedicated Postgres connection on LISTEN and feeds the
// hub, so changes committed by other service instances reach local
// subscribers too.
type Listener struct {
	databaseURL string
	channel     string
	hub         *Hub
	logger      *zap.Logger
}

func NewListener(databaseURL, channel string, hub *Hub, logger *zap.Logger) *Listener {
	return &Listener{databaseURL: databaseURL, channel: channel, hub: hub, logger: logger}
}

// Run listens until the context is cancelled, reconnecting with backoff.
// Events missed while disconnected are not replayed; subscribers re-query
// on reconnect per the feed contract.
func (l *Listener) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		err := l.listen(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		l.logger.Error("feed listener disconnected, retrying",
			zap.Duration("backoff", backoff), zap.Error(err))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		if backoff < 30*time.Second {
			backoff *= 2
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.databaseURL)
	if err != nil {
		return fmt.Errorf("connect listener: %w", err)
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return fmt.Errorf("listen %s: %w", l.channel, err)
	}
	l.logger.Info("feed listener connected", zap.String("channel", l.channel))

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}

		event, ok := l.eventFromPayload(notification.Payload)
		if !ok {
			continue
		}
		l.hub.Publish(event)
	}
}

// eventFromPayload validates a raw notification fail-closed, like the row
// scanner does for stored rows. A payload whose status does not parse is
// downgraded to an id-only hint so subscribers re-fetch instead of
// rendering a value the transport cannot vouch for.
func (l *Listener) eventFromPayload(raw string) (Event, bool) {
	var payload notifyPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		l.logger.Error("malformed feed notification",
			zap.String("payload", raw), zap.Error(err))
		return Event{}, false
	}
	if payload.ID == "" {
		l.logger.Error("feed notification without order id", zap.String("payload", raw))
		return Event{}, false
	}

	event := Event{Op: Op(payload.Op), OrderID: payload.ID}
	status, err := domain.ParseStatus(payload.Status)
	if err != nil {
		l.logger.Warn("feed notification carried unrecognized status, publishing hint only",
			zap.String("order_id", payload.ID),
			zap.String("status", payload.Status))
		return event, true
	}
	event.Status = status
	event.UpdatedAt = payload.UpdatedAt
	return event, true
}
