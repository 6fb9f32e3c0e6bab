package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"food-ordering/config"
	"food-ordering/order-svc/internal/domain"

	"github.com/wneessen/go-mail"
)

// SMTPSender delivers confirmations over SMTP, upgrading to TLS when the
// server offers STARTTLS.
type SMTPSender struct {
	host     string
	port     int
	from     string
	username string
	password string
	timeout  time.Duration
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		host:     cfg.Host,
		port:     cfg.Port,
		from:     cfg.From,
		username: cfg.Username,
		password: cfg.Password,
		timeout:  cfg.Timeout,
	}
}

func (s *SMTPSender) SendPaymentConfirmation(ctx context.Context, c domain.Confirmation) error {
	msg, err := confirmationMessage(s.from, c)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.host, s.clientOptions()...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send confirmation: %w", err)
	}
	return nil
}

func (s *SMTPSender) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(s.port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if s.timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.timeout))
	}
	if s.username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.username),
			mail.WithPassword(s.password),
		)
	}
	return opts
}

// confirmationMessage builds the mail for one settled payment. Addresses are
// parsed, so header injection through either of them is rejected.
func confirmationMessage(from string, c domain.Confirmation) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("sender address: %w", err)
	}
	if err := msg.To(c.ToAddress); err != nil {
		return nil, fmt.Errorf("recipient address: %w", err)
	}
	msg.SetDate()
	msg.SetMessageID()

	amount := fmt.Sprintf("%s %s", c.Amount.StringFixed(2), strings.ToUpper(c.Currency))
	if c.NeedsRefund {
		msg.Subject(fmt.Sprintf("Refund pending for order %s", c.OrderID))
		msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
			"We received your payment of %s for order %s, but the order could no longer be accepted.\r\n"+
				"The payment will be refunded to your original payment method.\r\n",
			amount, c.OrderID))
		return msg, nil
	}

	msg.Subject(fmt.Sprintf("Payment received for order %s", c.OrderID))
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"We received your payment of %s for order %s.\r\n"+
			"The restaurant has started on your order.\r\n",
		amount, c.OrderID))
	return msg, nil
}
