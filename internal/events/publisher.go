package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bookstore/storefront/internal/order"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	exchangeName = "bookstore.events"
	exchangeType = "topic"

	// Event types
	EventTypeOrderPlaced = "storefront.order.placed"

	// Retry configuration
	maxRetries     = 3
	initialBackoff = 100 * time.Millisecond
	maxBackoff     = 5 * time.Second

	confirmTimeout = 5 * time.Second

	// confirmBuffer holds late confirmations of timed out attempts until the
	// next publish discards them
	confirmBuffer = 16
)

var errConfirmsClosed = errors.New("confirmation channel closed")

// Notifier receives completed orders
type Notifier interface {
	OrderPlaced(ctx context.Context, o order.Order) error
}

// Nop discards notifications
type Nop struct{}

func (Nop) OrderPlaced(context.Context, order.Order) error { return nil }

// confirmChannel is the part of *amqp.Channel the publisher uses
type confirmChannel interface {
	GetNextPublishSeqNo() uint64
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher handles event publishing to RabbitMQ. Publishes are serialised so
// each one reads exactly the confirmation carrying its own delivery tag.
type Publisher struct {
	mu             sync.Mutex
	conn           *amqp.Connection
	channel        confirmChannel
	confirms       <-chan amqp.Confirmation
	confirmTimeout time.Duration
	log            *zap.Logger
}

func newPublisher(conn *amqp.Connection, ch confirmChannel, confirms <-chan amqp.Confirmation, log *zap.Logger) *Publisher {
	return &Publisher{
		conn:           conn,
		channel:        ch,
		confirms:       confirms,
		confirmTimeout: confirmTimeout,
		log:            log,
	}
}

// Event represents a domain event
type Event struct {
	EventID       string      `json:"event_id"`
	EventType     string      `json:"event_type"`
	EventVersion  string      `json:"event_version"`
	Timestamp     string      `json:"timestamp"`
	CorrelationID string      `json:"correlation_id,omitempty"`
	Payload       order.Order `json:"payload"`
}

type correlationKey struct{}

// WithCorrelationID attaches id to events published with the returned context
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// NewPublisher creates a new event publisher
func NewPublisher(url string, log *zap.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	// Declare exchange
	if err := channel.ExchangeDeclare(
		exchangeName,
		exchangeType,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,   // arguments
	); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	// Enable publisher confirms for reliability
	if err := channel.Confirm(false); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to enable publisher confirms: %w", err)
	}

	// One listener for the channel's lifetime; every listener must be drained
	confirms := channel.NotifyPublish(make(chan amqp.Confirmation, confirmBuffer))

	log.Info("Connected to RabbitMQ", zap.String("exchange", exchangeName))

	return newPublisher(conn, channel, confirms, log), nil
}

// OrderPlaced publishes an order placed event
func (p *Publisher) OrderPlaced(ctx context.Context, o order.Order) error {
	return p.publishWithRetry(ctx, EventTypeOrderPlaced, newOrderPlacedEvent(ctx, o))
}

func newOrderPlacedEvent(ctx context.Context, o order.Order) Event {
	event := Event{
		EventID:      uuid.New().String(),
		EventType:    EventTypeOrderPlaced,
		EventVersion: "1.0.0",
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Payload:      o,
	}
	if corrID, ok := ctx.Value(correlationKey{}).(string); ok {
		event.CorrelationID = corrID
	}
	return event
}

// publishWithRetry publishes an event with exponential backoff retry
func (p *Publisher) publishWithRetry(ctx context.Context, routingKey string, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error("Failed to marshal event", zap.Error(err))
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	backoff := initialBackoff
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
				backoff *= 2
				if backoff > maxBackoff {
					backoff = maxBackoff
				}
			}
		}

		tag := p.channel.GetNextPublishSeqNo()
		err := p.channel.PublishWithContext(
			ctx,
			exchangeName,
			routingKey,
			false, // mandatory
			false, // immediate
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				Timestamp:    time.Now(),
				MessageId:    event.EventID,
				Body:         body,
				Headers: amqp.Table{
					"event_type":    event.EventType,
					"event_version": event.EventVersion,
				},
			},
		)

		if err != nil {
			lastErr = err
			p.log.Warn("Failed to publish event, retrying",
				zap.Int("attempt", attempt+1),
				zap.Error(err),
			)
			continue
		}

		ack, err := p.awaitConfirm(ctx, tag)
		switch {
		case ctx.Err() != nil:
			return ctx.Err()
		case err == nil && ack:
			p.log.Info("Event published successfully",
				zap.String("event_id", event.EventID),
				zap.String("order_id", event.Payload.OrderID),
				zap.String("routing_key", routingKey),
			)
			return nil
		case err == nil:
			lastErr = fmt.Errorf("event not acknowledged")
		default:
			lastErr = err
		}
		if errors.Is(lastErr, errConfirmsClosed) {
			break
		}

		p.log.Warn("Event publish not confirmed, retrying",
			zap.Int("attempt", attempt+1),
			zap.Error(lastErr),
		)
	}

	p.log.Error("Failed to publish event after retries",
		zap.String("event_id", event.EventID),
		zap.String("event_type", event.EventType),
		zap.Int("attempts", maxRetries),
		zap.Error(lastErr),
	)
	return fmt.Errorf("failed to publish event after %d attempts: %w", maxRetries, lastErr)
}

// awaitConfirm reads confirmations until the one for tag arrives. Lower tags
// belong to earlier attempts that timed out and are discarded.
func (p *Publisher) awaitConfirm(ctx context.Context, tag uint64) (bool, error) {
	timeout := time.NewTimer(p.confirmTimeout)
	defer timeout.Stop()

	for {
		select {
		case confirm, ok := <-p.confirms:
			if !ok {
				return false, errConfirmsClosed
			}
			if confirm.DeliveryTag < tag {
				continue
			}
			return confirm.Ack, nil
		case <-ctx.Done():
			return false, ctx.Err()
		case <-timeout.C:
			return false, fmt.Errorf("confirmation timeout")
		}
	}
}

// IsHealthy checks if the publisher connection is healthy
func (p *Publisher) IsHealthy() bool {
	return p != nil && p.conn != nil && !p.conn.IsClosed()
}

// Close closes the publisher connection
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			p.log.Error("Failed to close channel", zap.Error(err))
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			p.log.Error("Failed to close connection", zap.Error(err))
			return err
		}
	}
	p.log.Info("Publisher closed")
	return nil
}
