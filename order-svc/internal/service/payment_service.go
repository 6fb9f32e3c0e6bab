package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"food-ordering/order-svc/internal/domain"

	"github.com/google/uuid"
)

type PaymentOptions struct {
	Currency   string
	Timeout    time.Duration
	SuccessURL string
	CancelURL  string
	// PublicBaseURL prefixes the QR code link returned with a checkout.
	PublicBaseURL string
}

type PaymentService struct {
	orders   OrderRepository
	payments PaymentRepository
	provider PaymentProvider
	qr       QRGenerator
	opts     PaymentOptions
	logger   *slog.Logger
}

func NewPaymentService(orders OrderRepository, payments PaymentRepository, provider PaymentProvider,
	qr QRGenerator, opts PaymentOptions, logger *slog.Logger) *PaymentService {
	return &PaymentService{
		orders:   orders,
		payments: payments,
		provider: provider,
		qr:       qr,
		opts:     opts,
		logger:   logger,
	}
}

// InitiatePayment opens a checkout session with the provider and records a
// PENDING payment for it. Nothing is written unless the provider call
// succeeds.
func (s *PaymentService) InitiatePayment(ctx context.Context, identity domain.Identity, orderID uuid.UUID) (*domain.Checkout, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != identity.UserID {
		return nil, domain.ErrAccessDenied
	}
	if err := checkPayable(order.Status); err != nil {
		return nil, err
	}
	if !order.TotalAmount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	currency := strings.ToLower(s.opts.Currency)
	session, err := s.createCheckout(ctx, domain.CheckoutRequest{
		Amount:   order.TotalAmount,
		Currency: currency,
		Metadata: map[string]string{
			"order_id": order.ID.String(),
			"user_id":  identity.UserID.String(),
		},
		SuccessURL: s.opts.SuccessURL,
		CancelURL:  s.opts.CancelURL,
	})
	if err != nil {
		s.logger.Error("checkout session failed", "order_id", order.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentProvider, err)
	}

	payment := &domain.Payment{
		ID:                uuid.New(),
		OrderID:           order.ID,
		UserID:            identity.UserID,
		ProviderSessionID: session.SessionID,
		RedirectURL:       session.RedirectURL,
		Amount:            order.TotalAmount,
		Currency:          currency,
		Status:            domain.PaymentPending,
		ProviderResponse:  session.RawResponse,
	}
	if s.qr != nil && session.RedirectURL != "" {
		if code, err := s.qr.Generate(session.RedirectURL); err == nil {
			payment.QRCode = code
		} else {
			s.logger.Warn("qr code generation failed", "order_id", order.ID, "error", err)
		}
	}

	if err := s.payments.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}
	s.logger.Info("payment initiated",
		"payment_id", payment.ID, "order_id", order.ID, "session_id", payment.ProviderSessionID)

	checkout := &domain.Checkout{
		PaymentID:   payment.ID,
		SessionID:   payment.ProviderSessionID,
		RedirectURL: payment.RedirectURL,
		Amount:      payment.Amount,
		Currency:    payment.Currency,
		Status:      payment.Status,
	}
	if len(payment.QRCode) > 0 {
		checkout.QRCodeURL = s.QRLink(payment.ID)
	}
	return checkout, nil
}

func (s *PaymentService) createCheckout(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutSession, error) {
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}
	session, err := s.provider.CreateCheckout(ctx, req)
	if err != nil {
		return nil, err
	}
	if session.SessionID == "" {
		return nil, fmt.Errorf("provider returned an empty session id")
	}
	return session, nil
}

// GetQRCode returns the scan-to-pay code of a payment, rendering it again
// when none was stored.
func (s *PaymentService) GetQRCode(ctx context.Context, identity domain.Identity, paymentID uuid.UUID) ([]byte, error) {
	payment, err := s.payments.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.UserID != identity.UserID {
		return nil, domain.ErrAccessDenied
	}
	if len(payment.QRCode) > 0 {
		return payment.QRCode, nil
	}
	if s.qr == nil || payment.RedirectURL == "" {
		return nil, domain.ErrPaymentNotFound
	}
	return s.qr.Generate(payment.RedirectURL)
}

func (s *PaymentService) QRLink(paymentID uuid.UUID) string {
	return fmt.Sprintf("%s/api/payments/%s/qrcode", strings.TrimRight(s.opts.PublicBaseURL, "/"), paymentID)
}

func checkPayable(status domain.OrderStatus) error {
	switch {
	case status.IsPaid():
		return domain.ErrAlreadyPaid
	case status == domain.OrderCancelled:
		return domain.ErrOrderNotPayable
	}
	return nil
}

var _ PaymentServiceInterface = (*PaymentService)(nil)
