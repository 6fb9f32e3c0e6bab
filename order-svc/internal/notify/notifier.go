package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"food-ordering/order-svc/internal/domain"

	"github.com/google/uuid"
)

type Sender interface {
	SendPaymentConfirmation(ctx context.Context, c domain.Confirmation) error
}

type Markers interface {
	NotificationKey(paymentID uuid.UUID) string
	Claim(ctx context.Context, key string) (bool, error)
}

// AsyncNotifier sends each confirmation once, in the background. A failed
// send is logged and dropped.
type AsyncNotifier struct {
	sender  Sender
	markers Markers
	timeout time.Duration
	logger  *slog.Logger
	wg      sync.WaitGroup
}

func NewAsyncNotifier(sender Sender, markers Markers, timeout time.Duration, logger *slog.Logger) *AsyncNotifier {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &AsyncNotifier{sender: sender, markers: markers, timeout: timeout, logger: logger}
}

func (n *AsyncNotifier) Dispatch(confirmation domain.Confirmation) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		n.deliver(confirmation)
	}()
}

// Wait blocks until every dispatched confirmation has been attempted.
func (n *AsyncNotifier) Wait() {
	n.wg.Wait()
}

func (n *AsyncNotifier) deliver(c domain.Confirmation) {
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	log := n.logger.With("payment_id", c.PaymentID, "order_id", c.OrderID)

	// Settlement already happens once per payment, so a marker store outage
	// only loses the second guard and the send goes ahead.
	if n.markers != nil {
		claimed, err := n.markers.Claim(ctx, n.markers.NotificationKey(c.PaymentID))
		switch {
		case err != nil:
			log.Warn("notification marker unavailable", "error", err)
		case !claimed:
			log.Info("confirmation already sent")
			return
		}
	}

	if err := n.sender.SendPaymentConfirmation(ctx, c); err != nil {
		log.Error("payment confirmation failed", "to", c.ToAddress, "error", err)
		return
	}
	log.Info("payment confirmation sent", "to", c.ToAddress, "needs_refund", c.NeedsRefund)
}
