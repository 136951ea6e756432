package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tejasmmali/canteen-swift/internal/domain"
)

func testListener() *Listener {
	return NewListener("postgres://unused", "orders_feed", NewHub(zap.NewNop()), zap.NewNop())
}

func TestEventFromPayloadValid(t *testing.T) {
	l := testListener()

	event, ok := l.eventFromPayload(
		`{"op":"UPDATE","id":"ORD-ABC","status":"preparing","updated_at":"2025-06-01T12:00:00Z"}`)

	require.True(t, ok)
	assert.Equal(t, OpUpdate, event.Op)
	assert.Equal(t, "ORD-ABC", event.OrderID)
	assert.Equal(t, domain.StatusPreparing, event.Status)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), event.UpdatedAt)
}

func TestEventFromPayloadUnknownStatusDowngradesToHint(t *testing.T) {
	l := testListener()

	event, ok := l.eventFromPayload(`{"op":"UPDATE","id":"ORD-ABC","status":"shipped"}`)

	require.True(t, ok)
	assert.Equal(t, "ORD-ABC", event.OrderID)
	assert.Equal(t, OpUpdate, event.Op)
	assert.Empty(t, event.Status)
	assert.True(t, event.UpdatedAt.IsZero())
}

func TestEventFromPayloadMalformedDropped(t *testing.T) {
	l := testListener()

	_, ok := l.eventFromPayload(`{"op":`)
	assert.False(t, ok)
}

func TestEventFromPayloadMissingIDDropped(t *testing.T) {
	l := testListener()

	_, ok := l.eventFromPayload(`{"op":"UPDATE","status":"preparing"}`)
	assert.False(t, ok)
}
