package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/bookstore/storefront/internal/cart"
	"github.com/bookstore/storefront/internal/catalog"
	"github.com/bookstore/storefront/internal/order"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeChannel numbers publishes like a confirm-mode channel and answers each
// one on a single confirmation stream
type fakeChannel struct {
	mu        sync.Mutex
	seq       uint64
	confirms  chan amqp.Confirmation
	withhold  map[uint64]bool
	nack      bool
	published []amqp.Publishing
}

func newFakeChannel() *fakeChannel {
	return &fakeChannel{
		confirms: make(chan amqp.Confirmation, 64),
		withhold: make(map[uint64]bool),
	}
}

func (f *fakeChannel) GetNextPublishSeqNo() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seq + 1
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _, _ string, _, _ bool, msg amqp.Publishing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	f.published = append(f.published, msg)
	if !f.withhold[f.seq] {
		f.confirms <- amqp.Confirmation{DeliveryTag: f.seq, Ack: !f.nack}
	}
	return nil
}

func (f *fakeChannel) Close() error { return nil }

func (f *fakeChannel) publishCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.published)
}

func setupPublisher(ch *fakeChannel) *Publisher {
	p := newPublisher(nil, ch, ch.confirms, zap.NewNop())
	p.confirmTimeout = 20 * time.Millisecond
	return p
}

func TestNewOrderPlacedEvent(t *testing.T) {
	o := order.New(catalog.Default(), []cart.Line{{ID: "WOH001", Quantity: 2}}, "Anu", "9876543210", "MG Road Kochi", "682001")
	ctx := WithCorrelationID(context.Background(), "corr-1")

	event := newOrderPlacedEvent(ctx, o)
	assert.Equal(t, EventTypeOrderPlaced, event.EventType)
	assert.Equal(t, "corr-1", event.CorrelationID)
	assert.NotEmpty(t, event.EventID)

	body, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	payload := decoded["payload"].(map[string]any)
	assert.Equal(t, o.OrderID, payload["order_id"])
	assert.Equal(t, float64(598), payload["total"])
}

func TestNewOrderPlacedEventWithoutCorrelation(t *testing.T) {
	event := newOrderPlacedEvent(context.Background(), order.Order{OrderID: "o-1"})
	assert.Empty(t, event.CorrelationID)
}

func TestNopNotifier(t *testing.T) {
	var n Notifier = Nop{}
	assert.NoError(t, n.OrderPlaced(context.Background(), order.Order{}))
}

func TestZeroPublisherIsUnhealthy(t *testing.T) {
	p := &Publisher{}
	assert.False(t, p.IsHealthy())
}

func TestSequentialOrdersShareOneConfirmStream(t *testing.T) {
	ch := newFakeChannel()
	p := setupPublisher(ch)

	for i := 0; i < 5; i++ {
		require.NoError(t, p.OrderPlaced(context.Background(), order.Order{OrderID: fmt.Sprintf("o-%d", i)}))
	}
	assert.Equal(t, 5, ch.publishCount())
	assert.Empty(t, ch.confirms)
}

func TestConcurrentOrdersEachGetTheirConfirmation(t *testing.T) {
	ch := newFakeChannel()
	p := setupPublisher(ch)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = p.OrderPlaced(context.Background(), order.Order{OrderID: fmt.Sprintf("o-%d", i)})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, 8, ch.publishCount())
	assert.Empty(t, ch.confirms)
}

func TestStaleConfirmationIsSkipped(t *testing.T) {
	ch := newFakeChannel()
	ch.seq = 3
	// arrives late from an earlier attempt that timed out
	ch.confirms <- amqp.Confirmation{DeliveryTag: 2, Ack: false}
	p := setupPublisher(ch)

	require.NoError(t, p.OrderPlaced(context.Background(), order.Order{OrderID: "o-1"}))
	assert.Equal(t, 1, ch.publishCount())
}

func TestConfirmTimeoutRetries(t *testing.T) {
	ch := newFakeChannel()
	ch.withhold[1] = true
	p := setupPublisher(ch)

	require.NoError(t, p.OrderPlaced(context.Background(), order.Order{OrderID: "o-1"}))
	assert.Equal(t, 2, ch.publishCount())
}

func TestNackFailsAfterRetries(t *testing.T) {
	ch := newFakeChannel()
	ch.nack = true
	p := setupPublisher(ch)

	err := p.OrderPlaced(context.Background(), order.Order{OrderID: "o-1"})
	require.Error(t, err)
	assert.Equal(t, maxRetries, ch.publishCount())
}

func TestClosedConfirmStreamStopsRetrying(t *testing.T) {
	ch := newFakeChannel()
	ch.withhold[1] = true
	close(ch.confirms)
	p := setupPublisher(ch)

	err := p.OrderPlaced(context.Background(), order.Order{OrderID: "o-1"})
	assert.True(t, errors.Is(err, errConfirmsClosed))
	assert.Equal(t, 1, ch.publishCount())
}

func TestCancelledContextStopsWaiting(t *testing.T) {
	ch := newFakeChannel()
	ch.withhold[1] = true
	p := setupPublisher(ch)
	p.confirmTimeout = time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := p.OrderPlaced(ctx, order.Order{OrderID: "o-1"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCloseNilPublisher(t *testing.T) {
	var p *Publisher
	assert.NoError(t, p.Close())
}
