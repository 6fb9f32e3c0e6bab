package storage

import (
	"context"
	"database/sql"
	"errors"

	"food-ordering/order-svc/internal/domain"

	"github.com/google/uuid"
)

// CreatePayment re-locks the order so a payment is never recorded for an
// order that got paid or cancelled while the provider was being called.
func (r *PostgresRepository) CreatePayment(ctx context.Context, payment *domain.Payment) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return dbError("begin payment", err)
	}
	defer tx.Rollback()

	var status domain.OrderStatus
	err = tx.QueryRowContext(ctx, "SELECT status FROM orders WHERE id = $1 FOR UPDATE", payment.OrderID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrOrderNotFound
	}
	if err != nil {
		return dbError("lock order", err)
	}
	if status.IsPaid() {
		return domain.ErrAlreadyPaid
	}
	if status == domain.OrderCancelled {
		return domain.ErrOrderNotPayable
	}

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO payments (id, order_id, user_id, provider_session_id, redirect_url, amount, currency, status, provider_response, qr_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`, payment.ID, payment.OrderID, payment.UserID, payment.ProviderSessionID, payment.RedirectURL,
		payment.Amount, payment.Currency, payment.Status, jsonb(payment.ProviderResponse), payment.QRCode,
	).Scan(&payment.CreatedAt, &payment.UpdatedAt); err != nil {
		return dbError("insert payment", err)
	}

	if err := tx.Commit(); err != nil {
		return dbError("commit payment", err)
	}
	return nil
}

func (r *PostgresRepository) GetPayment(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	var payment domain.Payment
	var response []byte
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, order_id, user_id, provider_session_id, redirect_url, amount, currency, status,
		       provider_response, qr_code, created_at, updated_at
		FROM payments WHERE id = $1`, id).
		Scan(&payment.ID, &payment.OrderID, &payment.UserID, &payment.ProviderSessionID, &payment.RedirectURL,
			&payment.Amount, &payment.Currency, &payment.Status, &response, &payment.QRCode,
			&payment.CreatedAt, &payment.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPaymentNotFound
	}
	if err != nil {
		return nil, dbError("get payment", err)
	}
	payment.ProviderResponse = response
	return &payment, nil
}

// SettlePayment locks the payment row for sessionID, moves it from PENDING
// to status and, on success, moves its order from PLACED to PAID. Both
// updates are conditional and commit together. A row that is missing or
// already terminal yields ErrPaymentNotFound or ErrPaymentSettled with
// nothing written; so does any error returned by check.
func (r *PostgresRepository) SettlePayment(ctx context.Context, sessionID string, status domain.PaymentStatus, check func(*domain.Payment) error) (*domain.Settlement, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, dbError("begin settlement", err)
	}
	defer tx.Rollback()

	var payment domain.Payment
	err = tx.QueryRowContext(ctx, `
		SELECT id, order_id, user_id, provider_session_id, redirect_url, amount, currency, status, created_at, updated_at
		FROM payments
		WHERE provider_session_id = $1
		FOR UPDATE`, sessionID).
		Scan(&payment.ID, &payment.OrderID, &payment.UserID, &payment.ProviderSessionID, &payment.RedirectURL,
			&payment.Amount, &payment.Currency, &payment.Status, &payment.CreatedAt, &payment.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPaymentNotFound
	}
	if err != nil {
		return nil, dbError("lock payment", err)
	}
	if payment.Status.IsTerminal() {
		return nil, domain.ErrPaymentSettled
	}
	if check != nil {
		if err := check(&payment); err != nil {
			return nil, err
		}
	}

	err = tx.QueryRowContext(ctx, `
		UPDATE payments SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
		RETURNING updated_at`, status, payment.ID, domain.PaymentPending).Scan(&payment.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPaymentSettled
	}
	if err != nil {
		return nil, dbError("update payment", err)
	}
	payment.Status = status

	settlement := &domain.Settlement{Payment: payment}
	if err := tx.QueryRowContext(ctx,
		"SELECT restaurant_id FROM orders WHERE id = $1 FOR UPDATE", payment.OrderID,
	).Scan(&settlement.RestaurantID); err != nil {
		return nil, dbError("lock order", err)
	}

	if status == domain.PaymentSuccess {
		result, err := tx.ExecContext(ctx,
			"UPDATE orders SET status = $1 WHERE id = $2 AND status = $3",
			domain.OrderPaid, payment.OrderID, domain.OrderPlaced)
		if err != nil {
			return nil, dbError("mark order paid", err)
		}
		n, err := rowsAffected(result, "mark order paid")
		if err != nil {
			return nil, err
		}
		settlement.OrderPaid = n == 1
	}

	if err := tx.Commit(); err != nil {
		return nil, dbError("commit settlement", err)
	}
	return settlement, nil
}

// jsonb passes raw JSON as text so the driver does not send it as bytea.
func jsonb(raw []byte) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
