package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/tejasmmali/canteen-swift/internal/domain"
)

const orderEventsTopic = "order-events"

type Producer struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewProducer(brokers string, logger *zap.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers),
		Topic:        orderEventsTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}

	return &Producer{
		writer: writer,
		logger: logger,
	}
}

func (p *Producer) PublishOrderCreated(ctx context.Context, order domain.Order) error {
	return p.publish(ctx, OrderEvent{
		EventID:       uuid.New().String(),
		Type:          TypeOrderCreated,
		OrderID:       order.ID,
		Items:         order.Items,
		TotalAmount:   order.TotalAmount,
		Status:        string(order.Status),
		EstimatedTime: order.EstimatedTime,
		Timestamp:     time.Now().UTC(),
	})
}

func (p *Producer) PublishStatusChanged(ctx context.Context, order domain.Order, previous domain.OrderStatus) error {
	return p.publish(ctx, OrderEvent{
		EventID:        uuid.New().String(),
		Type:           TypeOrderStatusChanged,
		OrderID:        order.ID,
		TotalAmount:    order.TotalAmount,
		Status:         string(order.Status),
		PreviousStatus: string(previous),
		Timestamp:      time.Now().UTC(),
	})
}

func (p *Producer) publish(ctx context.Context, event OrderEvent) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal order event", zap.Error(err))
		return err
	}

	// Keyed by order id so per-order events stay in partition order.
	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: eventBytes,
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish order event",
			zap.String("event_id", event.EventID),
			zap.String("order_id", event.OrderID),
			zap.Error(err))
		return err
	}

	p.logger.Info("Order event published",
		zap.String("event_id", event.EventID),
		zap.String("type", event.Type),
		zap.String("order_id", event.OrderID))

	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
