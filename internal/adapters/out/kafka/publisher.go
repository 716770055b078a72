// Package kafka publishes fulfillment integration events to a Kafka topic.
// Order status transitions are the only events emitted today; downstream
// consumers (customer notifications, analytics) subscribe to the topic and
// key on the order's public token.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"fulfillment/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// messageWriter abstracts the kafka-go writer so publishing can be tested
// without a broker.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// orderStatusChangedPayload is the JSON wire format of the event. Field
// names are part of the integration contract with downstream consumers.
type orderStatusChangedPayload struct {
	OrderID    int64     `json:"order_id"`
	SecureID   string    `json:"secure_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// StatusEventPublisher implements ports.EventPublisher on top of a Kafka
// topic. Messages are keyed by the order's secure id so all events of one
// order land in the same partition, preserving their order.
type StatusEventPublisher struct {
	writer messageWriter
}

// NewStatusEventPublisher creates a publisher writing to the given topic
// on the given broker.
func NewStatusEventPublisher(brokerAddr, topic string) *StatusEventPublisher {
	return &StatusEventPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokerAddr),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// NewStatusEventPublisherWithWriter creates a publisher with an injected
// writer. Used in tests.
func NewStatusEventPublisherWithWriter(writer messageWriter) *StatusEventPublisher {
	return &StatusEventPublisher{writer: writer}
}

// PublishOrderStatusChanged emits a status-changed event for an order.
func (p *StatusEventPublisher) PublishOrderStatusChanged(
	ctx context.Context,
	event ports.OrderStatusChangedEvent,
) error {
	payload := orderStatusChangedPayload{
		OrderID:    event.OrderID.Int64(),
		SecureID:   event.SecureID.String(),
		FromStatus: event.FromStatus,
		ToStatus:   event.ToStatus,
		OccurredAt: event.OccurredAt,
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.SecureID),
		Value: value,
	})
}

// Close shuts down the underlying writer.
func (p *StatusEventPublisher) Close() error {
	return p.writer.Close()
}
