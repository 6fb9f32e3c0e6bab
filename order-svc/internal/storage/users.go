package storage

import (
	"context"
	"database/sql"
	"errors"

	"food-ordering/order-svc/internal/domain"

	"github.com/google/uuid"
)

const userColumns = "id, first_name, last_name, email, phone, address, role, password_hash, created_at"

func scanUser(row interface{ Scan(...any) error }, user *domain.User) error {
	return row.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Phone,
		&user.Address, &user.Role, &user.PasswordHash, &user.CreatedAt)
}

// CreateUser inserts a new account. The table lock makes the first-account
// check and the insert atomic, so exactly one account ever becomes admin.
func (r *PostgresRepository) CreateUser(ctx context.Context, user *domain.User) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return dbError("begin user", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "LOCK TABLE users IN SHARE ROW EXCLUSIVE MODE"); err != nil {
		return dbError("lock users", err)
	}
	var exists bool
	if err := tx.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM users)").Scan(&exists); err != nil {
		return dbError("count users", err)
	}

	user.ID = uuid.New()
	user.Role = domain.RoleUser
	if !exists {
		user.Role = domain.RoleAdmin
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO users (id, first_name, last_name, email, phone, address, role, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`, user.ID, user.FirstName, user.LastName, user.Email, user.Phone, user.Address, user.Role, user.PasswordHash).
		Scan(&user.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrEmailTaken
	}
	if err != nil {
		return dbError("insert user", err)
	}

	if err := tx.Commit(); err != nil {
		return dbError("commit user", err)
	}
	return nil
}

func (r *PostgresRepository) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getUser(ctx, "id", id)
}

func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, "email", email)
}

func (r *PostgresRepository) getUser(ctx context.Context, column string, value interface{}) (*domain.User, error) {
	var user domain.User
	err := scanUser(r.DB.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE "+column+" = $1", value), &user)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, dbError("get user", err)
	}
	return &user, nil
}

func (r *PostgresRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY created_at")
	if err != nil {
		return nil, dbError("list users", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var user domain.User
		if err := scanUser(rows, &user); err != nil {
			return nil, dbError("scan user", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("list users", err)
	}
	return users, nil
}

// UpdateUser writes the profile fields. Email, role and password are not
// changed here.
func (r *PostgresRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE users SET first_name=$1, last_name=$2, phone=$3, address=$4 WHERE id=$5",
		user.FirstName, user.LastName, user.Phone, user.Address, user.ID)
	if err != nil {
		return dbError("update user", err)
	}
	n, err := rowsAffected(result, "update user")
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// DeleteUser fails with ErrReferencedEntity while the user still has orders.
func (r *PostgresRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return dbError("delete user", err)
	}
	n, err := rowsAffected(result, "delete user")
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
