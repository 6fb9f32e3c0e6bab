package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	EventOrderPlaced   = "order_placed"
	EventOrderPaid     = "order_paid"
	EventPaymentFailed = "payment_failed"
)

// DayLayout names the UTC day a sales figure belongs to.
const DayLayout = "2006-01-02"

var (
	ErrInvalidEvent = errors.New("event has no id")
	ErrInvalidDate  = errors.New("date must be YYYY-MM-DD")
)

// OrderEvent is the message order-svc publishes on the orders topic.
type OrderEvent struct {
	EventID      uuid.UUID       `json:"event_id"`
	Type         string          `json:"type"`
	OrderID      uuid.UUID       `json:"order_id"`
	RestaurantID uuid.UUID       `json:"restaurant_id"`
	UserID       uuid.UUID       `json:"user_id"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency,omitempty"`
	Timestamp    time.Time       `json:"timestamp"`
}

// Day is the UTC day the event is counted under. Events without a
// timestamp count toward the day they are processed.
func (e OrderEvent) Day(now time.Time) string {
	if e.Timestamp.IsZero() {
		return now.UTC().Format(DayLayout)
	}
	return e.Timestamp.UTC().Format(DayLayout)
}

type RestaurantSales struct {
	RestaurantID   uuid.UUID       `json:"restaurant_id"`
	Date           string          `json:"date"`
	OrdersPlaced   int64           `json:"orders_placed"`
	OrdersPaid     int64           `json:"orders_paid"`
	PaymentsFailed int64           `json:"payments_failed"`
	Revenue        decimal.Decimal `json:"revenue"`
}
