package storage

import (
	"context"
	"database/sql"
	"errors"

	"food-ordering/order-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const orderColumns = "id, user_id, restaurant_id, status, total_amount, created_at"

func scanOrder(row interface{ Scan(...any) error }, order *domain.Order) error {
	return row.Scan(&order.ID, &order.UserID, &order.RestaurantID, &order.Status, &order.TotalAmount, &order.CreatedAt)
}

// CreateOrder writes the order header and every item in one transaction.
// The owner must already be a registered user.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return dbError("begin order", err)
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (id, user_id, restaurant_id, status, total_amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, order.ID, order.UserID, order.RestaurantID, order.Status, order.TotalAmount).Scan(&order.CreatedAt); err != nil {
		return dbError("insert order", err)
	}

	for _, item := range order.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, menu_id, quantity, price_at_order)
			VALUES ($1, $2, $3, $4, $5)
		`, item.ID, order.ID, item.MenuID, item.Quantity, item.PriceAtOrder); err != nil {
			return dbError("insert order item", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return dbError("commit order", err)
	}
	return nil
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	var order domain.Order
	err := scanOrder(r.DB.QueryRowContext(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1", id), &order)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, dbError("get order", err)
	}

	items, err := r.orderItems(ctx, []uuid.UUID{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = items[order.ID]
	if order.Items == nil {
		order.Items = []domain.OrderItem{}
	}
	return &order, nil
}

func (r *PostgresRepository) ListUserOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, dbError("list orders", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	ids := []uuid.UUID{}
	for rows.Next() {
		var order domain.Order
		if err := scanOrder(rows, &order); err != nil {
			return nil, dbError("scan order", err)
		}
		orders = append(orders, order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("list orders", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	items, err := r.orderItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}
	return orders, nil
}

func (r *PostgresRepository) orderItems(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]domain.OrderItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, order_id, menu_id, quantity, price_at_order
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, id`, pq.Array(uuidStrings(orderIDs)))
	if err != nil {
		return nil, dbError("list order items", err)
	}
	defer rows.Close()

	items := make(map[uuid.UUID][]domain.OrderItem, len(orderIDs))
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuID, &item.Quantity, &item.PriceAtOrder); err != nil {
			return nil, dbError("scan order item", err)
		}
		items[item.OrderID] = append(items[item.OrderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("list order items", err)
	}
	return items, nil
}

// UpdateOrderStatus only writes when the stored status still equals from.
func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to domain.OrderStatus) (bool, error) {
	result, err := r.DB.ExecContext(ctx, "UPDATE orders SET status=$1 WHERE id=$2 AND status=$3", to, id, from)
	if err != nil {
		return false, dbError("update order status", err)
	}
	n, err := rowsAffected(result, "update order status")
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *PostgresRepository) OwnerEmail(ctx context.Context, orderID uuid.UUID) (string, error) {
	var email string
	err := r.DB.QueryRowContext(ctx, `
		SELECT u.email
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE o.id = $1`, orderID).Scan(&email)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrOrderNotFound
	}
	if err != nil {
		return "", dbError("owner email", err)
	}
	return email, nil
}
