package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"foodee-backend/internal/config"
	"foodee-backend/pkg/logger"
)

type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event OrderEvent) error
	Close() error
}

// messageWriter là phần của *kafka.Writer được dùng
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer  messageWriter
	timeout time.Duration
}

// NewOrderEventPublisher trả về NoopPublisher khi chưa cấu hình broker
func NewOrderEventPublisher(cfg config.KafkaConfig) OrderEventPublisher {
	if len(cfg.Brokers) == 0 {
		logger.Info("Kafka brokers not configured, order events disabled", nil)
		return NoopPublisher{}
	}

	return &KafkaPublisher{writer: newWriter(cfg), timeout: cfg.WriteTimeout}
}

// Publish đồng bộ trong request nên không chờ gom batch (mặc định kafka-go đợi 1s)
const writerBatchTimeout = 10 * time.Millisecond

func newWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.OrderTopic,
		Balancer:               &kafka.Hash{},
		BatchSize:              1,
		BatchTimeout:           writerBatchTimeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// Key = orderID để mọi event của một order vào cùng partition (giữ thứ tự)
func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, event OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish order event: %w", err)
	}

	logger.Debug("Order event published", map[string]interface{}{
		"event_id": event.EventID,
		"type":     event.Type,
		"order_id": event.OrderID,
	})
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

type NoopPublisher struct{}

func (NoopPublisher) PublishOrderEvent(context.Context, OrderEvent) error { return nil }
func (NoopPublisher) Close() error                                        { return nil }
