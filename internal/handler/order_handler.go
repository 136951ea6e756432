package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tejasmmali/canteen-swift/internal/catalog"
	"github.com/tejasmmali/canteen-swift/internal/domain"
	"github.com/tejasmmali/canteen-swift/internal/service"
)

type OrderHandler struct {
	orderService *service.OrderService
	menu         *catalog.Catalog
	logger       *zap.Logger
}

func NewOrderHandler(orderService *service.OrderService, menu *catalog.Catalog, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		menu:         menu,
		logger:       logger,
	}
}

// CreateOrder is the public self-service creation path. The response body
// is the full unmasked order: the creator already possesses the data it
// submitted.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req domain.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request format",
			"details": err.Error(),
		})
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		requestID := c.GetString("request_id")
		h.logger.Error("Failed to create order",
			zap.String("request_id", requestID),
			zap.Error(err))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrder is the public tracking lookup. Customer contact fields come back
// masked regardless of who asks.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id := strings.ToUpper(c.Param("id"))

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, order.Project(nil))
}

func (h *OrderHandler) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items":      h.menu.List(),
		"categories": h.menu.Categories(),
	})
}

// writeError maps the error taxonomy onto HTTP statuses. Unauthorized and
// forbidden responses are produced by the auth middleware before handlers
// run; they never reference order existence.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied, staff role required"})
	case errors.Is(err, domain.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrTransport):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service temporarily unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
