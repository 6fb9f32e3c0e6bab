package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Restaurant struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	IsOpen      bool      `json:"is_open"`
	CreatedAt   time.Time `json:"created_at"`
}

type Menu struct {
	ID           uuid.UUID       `json:"id"`
	RestaurantID uuid.UUID       `json:"restaurant_id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	IsAvailable  bool            `json:"is_available"`
	CreatedAt    time.Time       `json:"created_at"`
}

type Order struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"user_id"`
	RestaurantID uuid.UUID       `json:"restaurant_id"`
	Status       OrderStatus     `json:"status"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	CreatedAt    time.Time       `json:"created_at"`
	Items        []OrderItem     `json:"items"`
}

// OrderItem carries the menu price as it was when the order was placed.
type OrderItem struct {
	ID           uuid.UUID       `json:"id"`
	OrderID      uuid.UUID       `json:"order_id"`
	MenuID       uuid.UUID       `json:"menu_id"`
	Quantity     int             `json:"quantity"`
	PriceAtOrder decimal.Decimal `json:"price_at_order"`
}

// MaxItemQuantity caps a single order line.
const MaxItemQuantity = 1000

// PlaceOrderItem is one requested line: a menu reference and a quantity.
type PlaceOrderItem struct {
	MenuID   uuid.UUID `json:"menu_id"`
	Quantity int       `json:"quantity"`
}

type Payment struct {
	ID                uuid.UUID       `json:"id"`
	OrderID           uuid.UUID       `json:"order_id"`
	UserID            uuid.UUID       `json:"user_id"`
	ProviderSessionID string          `json:"provider_session_id"`
	RedirectURL       string          `json:"redirect_url"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	Status            PaymentStatus   `json:"status"`
	ProviderResponse  json.RawMessage `json:"-"`
	QRCode            []byte          `json:"-"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// Checkout is what the caller needs to send the user to the provider.
type Checkout struct {
	PaymentID   uuid.UUID       `json:"payment_id"`
	SessionID   string          `json:"session_id"`
	RedirectURL string          `json:"redirect_url"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Status      PaymentStatus   `json:"status"`
	QRCodeURL   string          `json:"qr_code_url,omitempty"`
}

type CheckoutRequest struct {
	Amount     decimal.Decimal
	Currency   string
	Metadata   map[string]string
	SuccessURL string
	CancelURL  string
}

type CheckoutSession struct {
	SessionID   string
	RedirectURL string
	RawResponse json.RawMessage
}

type PaymentOutcome string

const (
	OutcomeNone      PaymentOutcome = ""
	OutcomeSucceeded PaymentOutcome = "succeeded"
	OutcomeFailed    PaymentOutcome = "failed"
)

// PaymentEvent is a verified provider notification reduced to what the
// reconciler needs. OrderID and AmountMinor come from the event body and are
// only used to cross-check the local payment row.
type PaymentEvent struct {
	ID          string
	Type        string
	Outcome     PaymentOutcome
	SessionID   string
	OrderID     string
	AmountMinor int64
	Currency    string
}

type Confirmation struct {
	PaymentID uuid.UUID
	OrderID   uuid.UUID
	ToAddress string
	Amount    decimal.Decimal
	Currency  string
	// NeedsRefund marks a charge captured after the order stopped accepting
	// payment, for example because it was cancelled first.
	NeedsRefund bool
}

const (
	EventOrderPlaced   = "order_placed"
	EventOrderPaid     = "order_paid"
	EventPaymentFailed = "payment_failed"
)

// OrderEvent is published to Kafka for downstream consumers.
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

// Settlement is the result of moving a payment to a terminal status.
type Settlement struct {
	Payment      Payment
	RestaurantID uuid.UUID
	// OrderPaid is true when this settlement moved the order to PAID.
	OrderPaid bool
}
