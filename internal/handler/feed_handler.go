package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tejasmmali/canteen-swift/internal/feed"
	"github.com/tejasmmali/canteen-swift/internal/service"
)

const (
	subscriberBuffer  = 16
	keepaliveInterval = 25 * time.Second
)

// FeedHandler exposes the synchronization feed over SSE. Delivery is
// best-effort: each stream opens with a snapshot so a reconnecting client
// re-syncs instead of relying on replay.
type FeedHandler struct {
	orderService *service.OrderService
	hub          *feed.Hub
	logger       *zap.Logger
}

func NewFeedHandler(orderService *service.OrderService, hub *feed.Hub, logger *zap.Logger) *FeedHandler {
	return &FeedHandler{orderService: orderService, hub: hub, logger: logger}
}

// TrackOrder streams masked change events for one order to the tracking
// page.
func (h *FeedHandler) TrackOrder(c *gin.Context) {
	id := strings.ToUpper(c.Param("id"))

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	ch, cancel := h.hub.Subscribe(feed.StreamPublic, subscriberBuffer)
	defer cancel()

	sseHeaders(c)
	c.SSEvent("snapshot", order.Public())
	c.Writer.Flush()

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if event.OrderID != id {
				continue
			}
			c.SSEvent("change", event)
			c.Writer.Flush()
		case <-keepalive.C:
			c.SSEvent("keepalive", time.Now().UTC())
			c.Writer.Flush()
		}
	}
}

// AdminEvents streams change hints to the dashboard. Hints carry only the
// operation and order id; the dashboard re-fetches through the authorized
// listing, never trusting pushed payloads.
func (h *FeedHandler) AdminEvents(c *gin.Context) {
	ch, cancel := h.hub.Subscribe(feed.StreamAdmin, subscriberBuffer)
	defer cancel()

	sseHeaders(c)
	c.SSEvent("ready", gin.H{"resync": true})
	c.Writer.Flush()

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			c.SSEvent("change", event)
			c.Writer.Flush()
		case <-keepalive.C:
			c.SSEvent("keepalive", time.Now().UTC())
			c.Writer.Flush()
		}
	}
}

func sseHeaders(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
}
