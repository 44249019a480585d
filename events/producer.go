// Package events publishes order lifecycle events to Kafka. Publishing is
// best-effort: a broker outage must never fail an order.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrderPlacedEvent is emitted after an order has been persisted.
type OrderPlacedEvent struct {
	OrderID     uint              `json:"order_id"`
	OrderNumber string            `json:"order_number"`
	UserID      *uint             `json:"user_id,omitempty"`
	GuestID     string            `json:"guest_id,omitempty"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Items       []OrderPlacedItem `json:"items"`
	Timestamp   time.Time         `json:"timestamp"`
}

// OrderPlacedItem is one line of an OrderPlacedEvent.
type OrderPlacedItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// Publisher is the producer capability injected into the order service. A
// nil Publisher disables eventing.
type Publisher interface {
	PublishOrderPlaced(ctx context.Context, evt OrderPlacedEvent) error
}

// KafkaProducer implements Publisher on a kafka-go writer.
type KafkaProducer struct {
	writer *kafka.Writer
}

// NewKafkaProducer creates a producer for the given brokers and topic.
func NewKafkaProducer(brokers []string, topic string) *KafkaProducer {
	w := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	zap.L().Info("Kafka producer initialized",
		zap.Strings("brokers", brokers),
		zap.String("topic", topic),
	)
	return &KafkaProducer{writer: w}
}

func (p *KafkaProducer) PublishOrderPlaced(ctx context.Context, evt OrderPlacedEvent) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(evt.OrderNumber),
		Value: data,
	}
	return p.writer.WriteMessages(ctx, msg)
}

// Close flushes and closes the underlying writer.
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
