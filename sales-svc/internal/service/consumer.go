package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"food-ordering/sales-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	defaultRetryBackoff = 500 * time.Millisecond
	maxRetryBackoff     = 30 * time.Second
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Logger *slog.Logger
	// RetryBackoff is the first pause before a failed event is retried. It
	// doubles on every further failure, up to maxRetryBackoff.
	RetryBackoff time.Duration
}

func NewConsumer(reader MessageReader, store StoreInterface, logger *slog.Logger) *Consumer {
	return &Consumer{
		Reader:       reader,
		Store:        store,
		Logger:       logger,
		RetryBackoff: defaultRetryBackoff,
	}
}

// Start consumes order events until ctx is cancelled or the reader is
// closed. An offset is committed only once its event has been recorded or
// deliberately skipped, so a failed event is never lost to a restart.
func (c *Consumer) Start(ctx context.Context) {
	c.Logger.Info("sales consumer started")
	for {
		message, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				c.Logger.Info("sales consumer stopped")
				return
			}
			c.Logger.Error("error reading message", "error", err)
			continue
		}

		if !c.handle(ctx, message) {
			c.Logger.Info("sales consumer stopped", "uncommitted_offset", message.Offset)
			return
		}

		if err := c.Reader.CommitMessages(ctx, message); err != nil {
			if ctx.Err() != nil {
				c.Logger.Info("sales consumer stopped")
				return
			}
			// The event marker makes the redelivery after a rebalance harmless.
			c.Logger.Error("error committing offset",
				"partition", message.Partition, "offset", message.Offset, "error", err)
		}
	}
}

// handle processes one message, retrying transient failures until they
// succeed. It reports false when ctx ends first.
func (c *Consumer) handle(ctx context.Context, message kafka.Message) bool {
	var event domain.OrderEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		c.Logger.Warn("skipping undecodable message", "offset", message.Offset, "error", err)
		return true
	}

	backoff := c.RetryBackoff
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}
	for attempt := 1; ; attempt++ {
		err := c.ProcessEvent(ctx, event)
		if err == nil {
			return true
		}
		if errors.Is(err, domain.ErrInvalidEvent) {
			c.Logger.Warn("skipping invalid event", "offset", message.Offset, "error", err)
			return true
		}

		c.Logger.Error("error processing event",
			"event_id", event.EventID, "type", event.Type, "attempt", attempt, "retry_in", backoff, "error", err)

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
		backoff = min(backoff*2, maxRetryBackoff)
	}
}

// ProcessEvent counts one event toward its restaurant's daily sales. Each
// event id is counted once; if recording fails the id is released so a
// redelivery can count it.
func (c *Consumer) ProcessEvent(ctx context.Context, event domain.OrderEvent) error {
	day := event.Day(time.Now())

	var record func() error
	switch event.Type {
	case domain.EventOrderPlaced:
		record = func() error { return c.Store.RecordPlaced(ctx, event.RestaurantID, day) }
	case domain.EventOrderPaid:
		record = func() error { return c.Store.RecordPaid(ctx, event.RestaurantID, day, event.Amount) }
	case domain.EventPaymentFailed:
		record = func() error { return c.Store.RecordFailed(ctx, event.RestaurantID, day) }
	default:
		return nil
	}

	if event.EventID == uuid.Nil {
		return domain.ErrInvalidEvent
	}

	first, err := c.Store.MarkSeen(ctx, event.EventID)
	if err != nil {
		return fmt.Errorf("mark event seen: %w", err)
	}
	if !first {
		c.Logger.Debug("duplicate event skipped", "event_id", event.EventID, "type", event.Type)
		return nil
	}

	if err := record(); err != nil {
		if forgetErr := c.Store.Forget(ctx, event.EventID); forgetErr != nil {
			c.Logger.Warn("could not release event marker", "event_id", event.EventID, "error", forgetErr)
		}
		return fmt.Errorf("record %s: %w", event.Type, err)
	}

	c.Logger.Info("event recorded",
		"event_id", event.EventID, "type", event.Type, "restaurant_id", event.RestaurantID, "day", day)
	return nil
}

var _ ConsumerInterface = (*Consumer)(nil)
