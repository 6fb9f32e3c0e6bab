package domain

import "strings"

type OrderStatus string

const (
	OrderPlaced         OrderStatus = "PLACED"
	OrderPaid           OrderStatus = "PAID"
	OrderPreparing      OrderStatus = "PREPARING"
	OrderOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderDelivered      OrderStatus = "DELIVERED"
	OrderCancelled      OrderStatus = "CANCELLED"
)

var orderRank = map[OrderStatus]int{
	OrderPlaced:         0,
	OrderPaid:           1,
	OrderPreparing:      2,
	OrderOutForDelivery: 3,
	OrderDelivered:      4,
}

// ParseOrderStatus accepts any casing and rejects unknown values.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := orderRank[status]; ok || status == OrderCancelled {
		return status, nil
	}
	return "", ErrInvalidStatus
}

// IsPaid reports whether the order has been paid for, including every
// fulfilment stage after payment.
func (s OrderStatus) IsPaid() bool {
	rank, ok := orderRank[s]
	return ok && rank >= orderRank[OrderPaid]
}

// CanTransitionTo allows forward moves only. CANCELLED is reachable from any
// non-final state and is itself final, as is DELIVERED.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == OrderCancelled || s == OrderDelivered {
		return false
	}
	if next == OrderCancelled {
		return true
	}
	from, ok := orderRank[s]
	if !ok {
		return false
	}
	to, ok := orderRank[next]
	return ok && to > from
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentSuccess PaymentStatus = "SUCCESS"
	PaymentFailed  PaymentStatus = "FAILED"
)

func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentSuccess || s == PaymentFailed
}
