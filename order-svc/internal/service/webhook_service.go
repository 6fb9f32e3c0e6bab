package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"food-ordering/order-svc/internal/domain"
)

const (
	ResultProcessed        = "processed"
	ResultIgnored          = "ignored"
	ResultAlreadyProcessed = "already_processed"
	ResultMismatch         = "mismatch"
)

// WebhookResult is the acknowledgement returned to the provider.
type WebhookResult struct {
	Status string `json:"status"`
}

var errEventMismatch = errors.New("event does not match local payment")

type WebhookService struct {
	payments PaymentRepository
	orders   OrderRepository
	provider PaymentProvider
	notifier Notifier
	events   EventPublisher
	logger   *slog.Logger
}

func NewWebhookService(payments PaymentRepository, orders OrderRepository, provider PaymentProvider,
	notifier Notifier, events EventPublisher, logger *slog.Logger) *WebhookService {
	return &WebhookService{
		payments: payments,
		orders:   orders,
		provider: provider,
		notifier: notifier,
		events:   events,
		logger:   logger,
	}
}

// HandleEvent verifies and applies one provider event. Only signature,
// decoding and persistence failures are returned as errors; everything else
// is acknowledged so the provider stops redelivering.
func (s *WebhookService) HandleEvent(ctx context.Context, payload []byte, signature string) (WebhookResult, error) {
	event, err := s.provider.ParseEvent(payload, signature)
	if err != nil {
		s.logger.Warn("webhook rejected", "error", err)
		return WebhookResult{}, err
	}

	var status domain.PaymentStatus
	switch event.Outcome {
	case domain.OutcomeSucceeded:
		status = domain.PaymentSuccess
	case domain.OutcomeFailed:
		status = domain.PaymentFailed
	default:
		s.logger.Debug("webhook ignored", "event_id", event.ID, "type", event.Type)
		return WebhookResult{Status: ResultIgnored}, nil
	}
	if event.SessionID == "" {
		return WebhookResult{}, fmt.Errorf("%w: missing session id", domain.ErrMalformedEvent)
	}

	settlement, err := s.payments.SettlePayment(ctx, event.SessionID, status, func(payment *domain.Payment) error {
		return matchEvent(event, payment)
	})
	switch {
	case errors.Is(err, domain.ErrPaymentNotFound), errors.Is(err, domain.ErrPaymentSettled):
		s.logger.Info("webhook already processed",
			"event_id", event.ID, "session_id", event.SessionID, "reason", err.Error())
		return WebhookResult{Status: ResultAlreadyProcessed}, nil
	case errors.Is(err, errEventMismatch):
		s.logger.Error("webhook does not match payment",
			"event_id", event.ID, "session_id", event.SessionID, "error", err)
		return WebhookResult{Status: ResultMismatch}, nil
	case err != nil:
		s.logger.Error("webhook settlement failed",
			"event_id", event.ID, "session_id", event.SessionID, "error", err)
		return WebhookResult{}, err
	}

	payment := settlement.Payment
	s.logger.Info("payment settled",
		"payment_id", payment.ID, "order_id", payment.OrderID, "status", payment.Status, "order_paid", settlement.OrderPaid)

	if status == domain.PaymentSuccess {
		if !settlement.OrderPaid {
			s.logger.Error("payment captured for an order that is no longer payable",
				"payment_id", payment.ID, "order_id", payment.OrderID, "amount", payment.Amount, "currency", payment.Currency)
		}
		s.confirm(ctx, payment, !settlement.OrderPaid)
		if settlement.OrderPaid {
			s.publish(ctx, domain.EventOrderPaid, settlement)
		}
	} else {
		s.publish(ctx, domain.EventPaymentFailed, settlement)
	}
	return WebhookResult{Status: ResultProcessed}, nil
}

// confirm hands the confirmation to the notifier, which delivers it in the
// background. Lookup failures are logged and swallowed.
func (s *WebhookService) confirm(ctx context.Context, payment domain.Payment, needsRefund bool) {
	if s.notifier == nil {
		return
	}
	email, err := s.orders.OwnerEmail(ctx, payment.OrderID)
	if err != nil {
		s.logger.Error("cannot resolve confirmation recipient",
			"payment_id", payment.ID, "order_id", payment.OrderID, "error", err)
		return
	}
	s.notifier.Dispatch(domain.Confirmation{
		PaymentID:   payment.ID,
		OrderID:     payment.OrderID,
		ToAddress:   email,
		Amount:      payment.Amount,
		Currency:    payment.Currency,
		NeedsRefund: needsRefund,
	})
}

func (s *WebhookService) publish(ctx context.Context, eventType string, settlement *domain.Settlement) {
	publishEvent(ctx, s.events, s.logger, domain.OrderEvent{
		Type:         eventType,
		OrderID:      settlement.Payment.OrderID,
		RestaurantID: settlement.RestaurantID,
		UserID:       settlement.Payment.UserID,
		Amount:       settlement.Payment.Amount,
		Currency:     settlement.Payment.Currency,
	})
}

// matchEvent cross-checks the correlation data carried by the event against
// the locked payment row. The row is authoritative; fields absent from the
// event are not compared.
func matchEvent(event *domain.PaymentEvent, payment *domain.Payment) error {
	if event.OrderID != "" && event.OrderID != payment.OrderID.String() {
		return fmt.Errorf("%w: order %s, payment belongs to %s", errEventMismatch, event.OrderID, payment.OrderID)
	}
	if event.AmountMinor != 0 {
		want := payment.Amount.Shift(2).Round(0).IntPart()
		if event.AmountMinor != want {
			return fmt.Errorf("%w: amount %d, expected %d", errEventMismatch, event.AmountMinor, want)
		}
	}
	if event.Currency != "" && !strings.EqualFold(event.Currency, payment.Currency) {
		return fmt.Errorf("%w: currency %s, expected %s", errEventMismatch, event.Currency, payment.Currency)
	}
	return nil
}

var _ WebhookServiceInterface = (*WebhookService)(nil)
