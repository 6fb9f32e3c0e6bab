package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"food-ordering/order-svc/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// dummyHash is compared against when the email is unknown, so a login for a
// missing account costs the same as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

type UserService struct {
	users  UserRepository
	tokens TokenIssuer
	authz  Authorizer
	logger *slog.Logger
}

func NewUserService(users UserRepository, tokens TokenIssuer, authz Authorizer, logger *slog.Logger) *UserService {
	return &UserService{
		users:  users,
		tokens: tokens,
		authz:  authz,
		logger: logger,
	}
}

// Register creates an account. The first account ever registered becomes the
// admin.
func (s *UserService) Register(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	email, err := normalizeEmail(reg.Email)
	if err != nil {
		return nil, err
	}
	for _, field := range []struct{ name, value string }{
		{"first_name", reg.FirstName},
		{"last_name", reg.LastName},
		{"phone", reg.Phone},
	} {
		if strings.TrimSpace(field.value) == "" {
			return nil, fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, field.name)
		}
	}
	if len(reg.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	user := &domain.User{
		FirstName:    strings.TrimSpace(reg.FirstName),
		LastName:     strings.TrimSpace(reg.LastName),
		Email:        email,
		Phone:        strings.TrimSpace(reg.Phone),
		Address:      strings.TrimSpace(reg.Address),
		PasswordHash: string(hash),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("user registered", "user_id", user.ID, "role", user.Role)
	return user, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (domain.AccessToken, error) {
	user, err := s.users.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, domain.ErrUserNotFound) {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return domain.AccessToken{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.AccessToken{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.AccessToken{}, domain.ErrInvalidCredentials
	}
	return s.tokens.Issue(user.ID)
}

func (s *UserService) Profile(ctx context.Context, identity domain.Identity) (*domain.User, error) {
	return s.users.GetUser(ctx, identity.UserID)
}

func (s *UserService) UpdateProfile(ctx context.Context, identity domain.Identity, update domain.ProfileUpdate) (*domain.User, error) {
	user, err := s.users.GetUser(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	apply := func(field string, value *string, target *string, required bool) error {
		if value == nil {
			return nil
		}
		trimmed := strings.TrimSpace(*value)
		if required && trimmed == "" {
			return fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidInput, field)
		}
		*target = trimmed
		return nil
	}
	if err := apply("first_name", update.FirstName, &user.FirstName, true); err != nil {
		return nil, err
	}
	if err := apply("last_name", update.LastName, &user.LastName, true); err != nil {
		return nil, err
	}
	if err := apply("phone", update.Phone, &user.Phone, true); err != nil {
		return nil, err
	}
	if err := apply("address", update.Address, &user.Address, false); err != nil {
		return nil, err
	}

	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, identity domain.Identity) ([]domain.User, error) {
	if !s.authz.Allow(identity, domain.ActionManageUsers) {
		return nil, domain.ErrAccessDenied
	}
	return s.users.ListUsers(ctx)
}

func (s *UserService) GetUser(ctx context.Context, identity domain.Identity, id uuid.UUID) (*domain.User, error) {
	if !s.authz.Allow(identity, domain.ActionManageUsers) {
		return nil, domain.ErrAccessDenied
	}
	return s.users.GetUser(ctx, id)
}

func (s *UserService) DeleteUser(ctx context.Context, identity domain.Identity, id uuid.UUID) error {
	if !s.authz.Allow(identity, domain.ActionManageUsers) {
		return domain.ErrAccessDenied
	}
	if err := s.users.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", "user_id", id, "by", identity.UserID)
	return nil
}

func normalizeEmail(raw string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil || addr.Name != "" {
		return "", fmt.Errorf("%w: email is not a valid address", domain.ErrInvalidInput)
	}
	return strings.ToLower(addr.Address), nil
}

var _ UserServiceInterface = (*UserService)(nil)
