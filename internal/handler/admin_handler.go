package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tejasmmali/canteen-swift/internal/auth"
	"github.com/tejasmmali/canteen-swift/internal/domain"
	"github.com/tejasmmali/canteen-swift/internal/service"
)

// AdminHandler serves the dashboard. Every route here sits behind
// auth.RequireStaff, so the caller context is always present.
type AdminHandler struct {
	orderService *service.OrderService
	logger       *zap.Logger
}

func NewAdminHandler(orderService *service.OrderService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{orderService: orderService, logger: logger}
}

// ListOrders returns every order unmasked, newest first.
func (h *AdminHandler) ListOrders(c *gin.Context) {
	caller, ok := auth.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), caller)
	if err != nil {
		h.logger.Error("Failed to list orders", zap.Error(err))
		writeError(c, err)
		return
	}

	projected := make([]domain.Order, len(orders))
	for i, order := range orders {
		projected[i] = order.Project(&caller)
	}

	c.JSON(http.StatusOK, gin.H{"orders": projected})
}

// UpdateStatus advances an order through the fulfillment pipeline.
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	caller, ok := auth.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req domain.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request format",
			"details": err.Error(),
		})
		return
	}

	id := strings.ToUpper(c.Param("id"))
	order, err := h.orderService.UpdateStatus(c.Request.Context(), id, req.Status, caller)
	if err != nil {
		h.logger.Warn("Status update rejected",
			zap.String("order_id", id),
			zap.String("target", req.Status),
			zap.String("user_id", caller.UserID),
			zap.Error(err))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}
