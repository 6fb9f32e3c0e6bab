package storage

import (
	"context"
	"database/sql"
	"errors"

	"food-ordering/order-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const restaurantColumns = "id, name, description, address, is_open, created_at"

func scanRestaurant(row interface{ Scan(...any) error }, rest *domain.Restaurant) error {
	return row.Scan(&rest.ID, &rest.Name, &rest.Description, &rest.Address, &rest.IsOpen, &rest.CreatedAt)
}

// CreateRestaurant always assigns a fresh id; ids are never taken from input.
func (r *PostgresRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	rest.ID = uuid.New()
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO restaurants (id, name, description, address, is_open) VALUES ($1, $2, $3, $4, $5) RETURNING created_at",
		rest.ID, rest.Name, rest.Description, rest.Address, rest.IsOpen,
	).Scan(&rest.CreatedAt)
	if err != nil {
		return dbError("insert restaurant", err)
	}
	return nil
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+restaurantColumns+" FROM restaurants ORDER BY created_at DESC")
	if err != nil {
		return nil, dbError("list restaurants", err)
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := scanRestaurant(rows, &rest); err != nil {
			return nil, dbError("scan restaurant", err)
		}
		restaurants = append(restaurants, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("list restaurants", err)
	}
	return restaurants, nil
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := scanRestaurant(r.DB.QueryRowContext(ctx, "SELECT "+restaurantColumns+" FROM restaurants WHERE id = $1", id), &rest)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, dbError("get restaurant", err)
	}
	return &rest, nil
}

func (r *PostgresRepository) UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	err := r.DB.QueryRowContext(ctx,
		"UPDATE restaurants SET name=$1, description=$2, address=$3, is_open=$4 WHERE id=$5 RETURNING created_at",
		rest.Name, rest.Description, rest.Address, rest.IsOpen, rest.ID,
	).Scan(&rest.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrRestaurantNotFound
	}
	if err != nil {
		return dbError("update restaurant", err)
	}
	return nil
}

// DeleteRestaurant relies on ON DELETE CASCADE for menus. Restaurants that
// orders still point at are refused with ErrReferencedEntity.
func (r *PostgresRepository) DeleteRestaurant(ctx context.Context, id uuid.UUID) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM restaurants WHERE id=$1", id)
	if err != nil {
		return dbError("delete restaurant", err)
	}
	n, err := rowsAffected(result, "delete restaurant")
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrRestaurantNotFound
	}
	return nil
}

const menuColumns = "id, restaurant_id, name, price, is_available, created_at"

func scanMenu(row interface{ Scan(...any) error }, menu *domain.Menu) error {
	return row.Scan(&menu.ID, &menu.RestaurantID, &menu.Name, &menu.Price, &menu.IsAvailable, &menu.CreatedAt)
}

func (r *PostgresRepository) CreateMenu(ctx context.Context, menu *domain.Menu) error {
	menu.ID = uuid.New()
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO menus (id, restaurant_id, name, price, is_available) VALUES ($1, $2, $3, $4, $5) RETURNING created_at",
		menu.ID, menu.RestaurantID, menu.Name, menu.Price, menu.IsAvailable,
	).Scan(&menu.CreatedAt)
	if err != nil {
		return dbError("insert menu", err)
	}
	return nil
}

func (r *PostgresRepository) ListMenus(ctx context.Context, restaurantID uuid.UUID) ([]domain.Menu, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+menuColumns+" FROM menus WHERE restaurant_id = $1 ORDER BY created_at DESC", restaurantID)
	if err != nil {
		return nil, dbError("list menus", err)
	}
	return collectMenus(rows)
}

func (r *PostgresRepository) GetMenu(ctx context.Context, restaurantID, menuID uuid.UUID) (*domain.Menu, error) {
	var menu domain.Menu
	err := scanMenu(r.DB.QueryRowContext(ctx,
		"SELECT "+menuColumns+" FROM menus WHERE id = $1 AND restaurant_id = $2", menuID, restaurantID), &menu)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrMenuNotFound
	}
	if err != nil {
		return nil, dbError("get menu", err)
	}
	return &menu, nil
}

func (r *PostgresRepository) UpdateMenu(ctx context.Context, menu *domain.Menu) error {
	err := r.DB.QueryRowContext(ctx, `
		UPDATE menus
		SET name=$1, price=$2, is_available=$3
		WHERE id=$4 AND restaurant_id=$5
		RETURNING created_at`,
		menu.Name, menu.Price, menu.IsAvailable, menu.ID, menu.RestaurantID,
	).Scan(&menu.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrMenuNotFound
	}
	if err != nil {
		return dbError("update menu", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteMenu(ctx context.Context, restaurantID, menuID uuid.UUID) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM menus WHERE id=$1 AND restaurant_id=$2", menuID, restaurantID)
	if err != nil {
		return dbError("delete menu", err)
	}
	n, err := rowsAffected(result, "delete menu")
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrMenuNotFound
	}
	return nil
}

// AvailableMenus resolves all requested ids in a single query.
func (r *PostgresRepository) AvailableMenus(ctx context.Context, restaurantID uuid.UUID, menuIDs []uuid.UUID) ([]domain.Menu, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+menuColumns+`
		FROM menus
		WHERE restaurant_id = $1 AND is_available AND id = ANY($2)`,
		restaurantID, pq.Array(uuidStrings(menuIDs)))
	if err != nil {
		return nil, dbError("resolve menus", err)
	}
	return collectMenus(rows)
}

func collectMenus(rows *sql.Rows) ([]domain.Menu, error) {
	defer rows.Close()

	menus := []domain.Menu{}
	for rows.Next() {
		var menu domain.Menu
		if err := scanMenu(rows, &menu); err != nil {
			return nil, dbError("scan menu", err)
		}
		menus = append(menus, menu)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("list menus", err)
	}
	return menus, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
