package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tejasmmali/canteen-swift/internal/domain"
	"github.com/tejasmmali/canteen-swift/internal/feed"
	"github.com/tejasmmali/canteen-swift/internal/repository"
)

// prepBuffer is added to the slowest item's preparation estimate.
const prepBuffer = 5

const minPhoneLen = 10

// idGenerator produces ORD-<uppercase base36 millisecond> ids. The mutex
// bumps the millisecond forward when two creations land on the same tick,
// keeping ids unique in-process while preserving the shareable format.
type idGenerator struct {
	mu       sync.Mutex
	lastUnix int64
	now      func() time.Time
}

func (g *idGenerator) next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ms := g.now().UnixMilli()
	if ms <= g.lastUnix {
		ms = g.lastUnix + 1
	}
	g.lastUnix = ms
	return "ORD-" + strings.ToUpper(strconv.FormatInt(ms, 36))
}

type OrderService struct {
	store    OrderStore
	catalog  Catalog
	producer EventPublisher
	changes  ChangeFeed
	metrics  Metrics
	logger   *zap.Logger
	ids      idGenerator
	now      func() time.Time
}

func NewOrderService(store OrderStore, catalog Catalog, producer EventPublisher, changes ChangeFeed, metrics Metrics, logger *zap.Logger) *OrderService {
	s := &OrderService{
		store:    store,
		catalog:  catalog,
		producer: producer,
		changes:  changes,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
	s.ids.now = func() time.Time { return s.now() }
	return s
}

// CreateOrder is the sole creation path and is open to any caller. The
// request's item references are resolved against the catalog and snapshotted
// so later menu edits never affect this order; totalAmount and estimatedTime
// are computed once here and never recomputed.
func (s *OrderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	if err := validateCreate(req); err != nil {
		return domain.Order{}, err
	}

	items := make([]domain.CartItem, 0, len(req.Items))
	var total int64
	maxPrep := 0
	for _, line := range req.Items {
		menuItem, ok := s.catalog.Get(line.ItemID)
		if !ok {
			return domain.Order{}, &domain.ValidationError{Field: "items", Reason: fmt.Sprintf("unknown menu item %q", line.ItemID)}
		}
		if !menuItem.Available {
			return domain.Order{}, &domain.ValidationError{Field: "items", Reason: fmt.Sprintf("%s is not available", menuItem.Name)}
		}
		items = append(items, domain.CartItem{
			ItemID:          menuItem.ID,
			Name:            menuItem.Name,
			Price:           menuItem.Price,
			Quantity:        line.Quantity,
			PreparationTime: menuItem.PreparationTime,
		})
		total += menuItem.Price * int64(line.Quantity)
		if menuItem.PreparationTime > maxPrep {
			maxPrep = menuItem.PreparationTime
		}
	}

	now := s.now().UTC()
	order := domain.Order{
		Items:         items,
		TotalAmount:   total,
		Status:        domain.StatusPending,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		CreatedAt:     now,
		UpdatedAt:     now,
		EstimatedTime: maxPrep + prepBuffer,
	}

	if err := s.insertWithFreshID(ctx, &order); err != nil {
		s.logger.Error("Failed to save order", zap.Error(err))
		return domain.Order{}, err
	}

	s.notify(ctx, feed.Event{
		Op:        feed.OpInsert,
		OrderID:   order.ID,
		Status:    order.Status,
		UpdatedAt: order.UpdatedAt,
	})
	if err := s.producer.PublishOrderCreated(ctx, order); err != nil {
		// Event publication never fails the committed write.
		s.logger.Error("Failed to publish order created event",
			zap.String("order_id", order.ID), zap.Error(err))
	}

	s.recordOrder(order.Status)
	s.logger.Info("Order created",
		zap.String("order_id", order.ID),
		zap.Int64("total_amount", order.TotalAmount),
		zap.Int("estimated_time", order.EstimatedTime))

	// Returned unmasked: the creator already possesses the data it sent.
	return order, nil
}

// insertWithFreshID retries the insert with a regenerated id if another
// instance claimed the same millisecond.
func (s *OrderService) insertWithFreshID(ctx context.Context, order *domain.Order) error {
	const attempts = 3
	var err error
	for i := 0; i < attempts; i++ {
		order.ID = s.ids.next()
		err = s.store.Insert(ctx, *order)
		if err == nil || !isDuplicateID(err) {
			return err
		}
		s.logger.Warn("order id collision, regenerating", zap.String("order_id", order.ID))
	}
	return err
}

func isDuplicateID(err error) bool {
	return errors.Is(err, repository.ErrDuplicateID)
}

// GetOrder returns the stored order unmasked; callers apply the projection
// appropriate to their privilege.
func (s *OrderService) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	return s.store.Get(ctx, id)
}

// ListOrders returns every order, newest first, for staff callers only.
func (s *OrderService) ListOrders(ctx context.Context, caller domain.Caller) ([]domain.Order, error) {
	if !caller.Role.Staff() {
		return nil, domain.ErrForbidden
	}
	return s.store.List(ctx)
}

// UpdateStatus is the single authorized path for status changes. The
// legality check runs against the loaded status and the store's conditional
// write re-checks it at commit, so a losing concurrent writer fails instead
// of overwriting.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, targetStatus string, caller domain.Caller) (domain.Order, error) {
	if !caller.Role.Staff() {
		return domain.Order{}, domain.ErrForbidden
	}

	target, err := domain.ParseStatus(targetStatus)
	if err != nil {
		return domain.Order{}, err
	}

	order, err := s.store.Get(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}

	if !order.Status.CanTransition(target) {
		return domain.Order{}, domain.InvalidTransition(order.Status, target)
	}

	previous := order.Status
	updated, err := s.store.UpdateStatus(ctx, orderID, previous, target, s.now().UTC())
	if err != nil {
		return domain.Order{}, err
	}

	s.notify(ctx, feed.Event{
		Op:        feed.OpUpdate,
		OrderID:   updated.ID,
		Status:    updated.Status,
		UpdatedAt: updated.UpdatedAt,
	})
	if err := s.producer.PublishStatusChanged(ctx, updated, previous); err != nil {
		s.logger.Error("Failed to publish status changed event",
			zap.String("order_id", updated.ID), zap.Error(err))
	}

	s.recordOrder(updated.Status)
	s.logger.Info("Order status updated",
		zap.String("order_id", updated.ID),
		zap.String("from", string(previous)),
		zap.String("to", string(updated.Status)),
		zap.String("user_id", caller.UserID))

	return updated, nil
}

func (s *OrderService) notify(_ context.Context, event feed.Event) {
	if s.changes != nil {
		s.changes.Publish(event)
	}
}

func (s *OrderService) recordOrder(status domain.OrderStatus) {
	if s.metrics != nil {
		s.metrics.RecordOrder(string(status))
	}
}

func validateCreate(req domain.CreateOrderRequest) error {
	if len(req.Items) == 0 {
		return &domain.ValidationError{Field: "items", Reason: "at least one item is required"}
	}
	for _, line := range req.Items {
		if line.Quantity < 1 {
			return &domain.ValidationError{Field: "items", Reason: "quantity must be at least 1"}
		}
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return &domain.ValidationError{Field: "customerName", Reason: "name is required"}
	}
	if len(strings.TrimSpace(req.CustomerPhone)) < minPhoneLen {
		return &domain.ValidationError{Field: "customerPhone", Reason: fmt.Sprintf("phone must be at least %d digits", minPhoneLen)}
	}
	return nil
}
