package domain

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindAccessDenied
	KindInvalidInput
	KindConflict
	KindExternalService
	KindSecurityViolation
	KindPersistence
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrMenuNotFound       = errors.New("menu item not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrUserNotFound       = errors.New("user not found")

	ErrAccessDenied    = errors.New("access denied")
	ErrUnauthenticated = errors.New("authentication required")

	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthenticated)

	ErrInvalidOrderItems       = errors.New("invalid or unavailable menu items")
	ErrInvalidQuantity         = fmt.Errorf("quantity must be an integer between 1 and %d", MaxItemQuantity)
	ErrInvalidStatus           = errors.New("unknown order status")
	ErrInvalidStatusTransition = errors.New("order status cannot move backwards")
	ErrInvalidAmount           = errors.New("order amount must be positive")
	ErrInvalidInput            = errors.New("invalid input")
	ErrMalformedEvent          = errors.New("malformed webhook event")

	ErrAlreadyPaid      = errors.New("order already paid")
	ErrPaymentSettled   = errors.New("payment already settled")
	ErrOrderNotPayable  = errors.New("order is cancelled")
	ErrStatusConflict   = errors.New("order status changed concurrently")
	ErrReferencedEntity = errors.New("entity is referenced by existing orders")
	ErrEmailTaken       = errors.New("email already registered")

	ErrPaymentProvider  = errors.New("payment provider error")
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrPersistence      = errors.New("persistence failure")
)

var kinds = map[error]Kind{
	ErrRestaurantNotFound:      KindNotFound,
	ErrMenuNotFound:            KindNotFound,
	ErrOrderNotFound:           KindNotFound,
	ErrPaymentNotFound:         KindNotFound,
	ErrUserNotFound:            KindNotFound,
	ErrAccessDenied:            KindAccessDenied,
	ErrUnauthenticated:         KindAccessDenied,
	ErrInvalidOrderItems:       KindInvalidInput,
	ErrInvalidQuantity:         KindInvalidInput,
	ErrInvalidStatus:           KindInvalidInput,
	ErrInvalidStatusTransition: KindInvalidInput,
	ErrInvalidAmount:           KindInvalidInput,
	ErrInvalidInput:            KindInvalidInput,
	ErrMalformedEvent:          KindInvalidInput,
	ErrAlreadyPaid:             KindConflict,
	ErrPaymentSettled:          KindConflict,
	ErrOrderNotPayable:         KindConflict,
	ErrStatusConflict:          KindConflict,
	ErrReferencedEntity:        KindConflict,
	ErrEmailTaken:              KindConflict,
	ErrPaymentProvider:         KindExternalService,
	ErrInvalidSignature:        KindSecurityViolation,
	ErrPersistence:             KindPersistence,
}

// KindOf classifies err by the first sentinel found in its chain.
func KindOf(err error) Kind {
	for sentinel, kind := range kinds {
		if errors.Is(err, sentinel) {
			return kind
		}
	}
	return KindInternal
}
