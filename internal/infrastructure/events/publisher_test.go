package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodee-backend/internal/config"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaPublisherKeysByOrder(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w}

	ev := NewOrderEvent(OrderCreated, 42, 7, "PENDING", "PENDING", decimal.NewFromInt(130))
	require.NoError(t, p.PublishOrderEvent(context.Background(), ev))

	require.Len(t, w.msgs, 1)
	assert.Equal(t, "42", string(w.msgs[0].Key))
	assert.Equal(t, OrderCreated, string(w.msgs[0].Headers[0].Value))

	var got OrderEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, ev.EventID, got.EventID)
	assert.True(t, got.TotalAmount.Equal(decimal.NewFromInt(130)))
}

func TestKafkaPublisherWriteError(t *testing.T) {
	p := &KafkaPublisher{writer: &fakeWriter{err: errors.New("broker down")}}
	err := p.PublishOrderEvent(context.Background(), NewOrderEvent(OrderDeleted, 1, 1, "", "", decimal.Zero))
	assert.Error(t, err)
}

func TestNewOrderEventPublisherWithoutBrokers(t *testing.T) {
	p := NewOrderEventPublisher(config.KafkaConfig{})
	assert.IsType(t, NoopPublisher{}, p)
	assert.NoError(t, p.PublishOrderEvent(context.Background(), OrderEvent{}))
}

func TestNewWriterDoesNotWaitForBatch(t *testing.T) {
	w := newWriter(config.KafkaConfig{Brokers: []string{"localhost:9092"}, OrderTopic: "foodee.orders"})
	defer w.Close()

	assert.Equal(t, "foodee.orders", w.Topic)
	assert.Equal(t, 1, w.BatchSize)
	assert.LessOrEqual(t, w.BatchTimeout, 10*time.Millisecond)
	assert.Positive(t, w.BatchTimeout)
	assert.False(t, w.Async)
	assert.IsType(t, &kafka.Hash{}, w.Balancer)
}
