package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"food-ordering/config"
	"food-ordering/order-svc/internal/domain"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	eventSessionCompleted      = "checkout.session.completed"
	eventAsyncPaymentSucceeded = "checkout.session.async_payment_succeeded"
	eventAsyncPaymentFailed    = "checkout.session.async_payment_failed"
	eventSessionExpired        = "checkout.session.expired"
)

// Stripe is a checkout-session payment provider. Every instance owns its
// client and never touches the package level stripe.Key.
type Stripe struct {
	api           *client.API
	webhookSecret string
}

func NewStripe(cfg config.PaymentConfig, httpClient *http.Client) *Stripe {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	backendConfig := &stripe.BackendConfig{
		HTTPClient: httpClient,
		// Checkout creation is bounded by the caller's timeout; the SDK's own
		// retries would outlive it.
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
	}
	if cfg.APIURL != "" {
		backendConfig.URL = stripe.String(cfg.APIURL)
	}

	api := &client.API{}
	api.Init(cfg.SecretKey, &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, backendConfig),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, backendConfig),
	})
	return &Stripe{api: api, webhookSecret: cfg.WebhookSecret}
}

func (s *Stripe) CreateCheckout(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(req.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Order " + req.Metadata["order_id"]),
					},
					UnitAmount: stripe.Int64(req.Amount.Shift(2).Round(0).IntPart()),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	if orderID, ok := req.Metadata["order_id"]; ok {
		params.ClientReferenceID = stripe.String(orderID)
	}
	for key, value := range req.Metadata {
		params.AddMetadata(key, value)
	}
	params.Context = ctx

	session, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	var raw json.RawMessage
	if session.LastResponse != nil {
		raw = session.LastResponse.RawJSON
	}
	return &domain.CheckoutSession{
		SessionID:   session.ID,
		RedirectURL: session.URL,
		RawResponse: raw,
	}, nil
}

// ParseEvent verifies the Stripe-Signature header and reduces the event to
// its payment outcome. Only checkout session events carry an outcome.
func (s *Stripe) ParseEvent(payload []byte, signature string) (*domain.PaymentEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, s.webhookSecret, webhook.ConstructEventOptions{
		Tolerance:                webhook.DefaultTolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		if isSignatureError(err) {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSignature, err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedEvent, err)
	}

	parsed := &domain.PaymentEvent{ID: event.ID, Type: string(event.Type)}
	switch parsed.Type {
	case eventSessionCompleted, eventAsyncPaymentSucceeded, eventAsyncPaymentFailed, eventSessionExpired:
	default:
		return parsed, nil
	}

	if event.Data == nil || len(event.Data.Raw) == 0 {
		return nil, fmt.Errorf("%w: %s without data", domain.ErrMalformedEvent, parsed.Type)
	}
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedEvent, err)
	}

	parsed.Outcome = outcome(parsed.Type, session.PaymentStatus)
	parsed.SessionID = session.ID
	parsed.OrderID = session.Metadata["order_id"]
	if parsed.OrderID == "" {
		parsed.OrderID = session.ClientReferenceID
	}
	parsed.AmountMinor = session.AmountTotal
	parsed.Currency = string(session.Currency)
	return parsed, nil
}

// outcome maps checkout session events to a definitive result. A completed
// session that is still unpaid waits for an async_payment event.
func outcome(eventType string, status stripe.CheckoutSessionPaymentStatus) domain.PaymentOutcome {
	switch eventType {
	case eventSessionCompleted:
		if status == stripe.CheckoutSessionPaymentStatusPaid {
			return domain.OutcomeSucceeded
		}
	case eventAsyncPaymentSucceeded:
		return domain.OutcomeSucceeded
	case eventAsyncPaymentFailed, eventSessionExpired:
		return domain.OutcomeFailed
	}
	return domain.OutcomeNone
}

func isSignatureError(err error) bool {
	return errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrNoValidSignature) ||
		errors.Is(err, webhook.ErrInvalidHeader) ||
		errors.Is(err, webhook.ErrTooOld)
}
