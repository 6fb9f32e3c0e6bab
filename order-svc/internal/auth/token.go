package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"food-ordering/order-svc/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenTypeAccess = "access"
	tokenTypeBearer = "bearer"
)

// Claims is the payload of an access token. The subject is the user id;
// everything else about the caller is read from the users table.
type Claims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// TokenIssuer signs HS256 access tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (i *TokenIssuer) Issue(userID uuid.UUID) (domain.AccessToken, error) {
	now := i.now()
	expires := now.Add(i.ttl)
	claims := Claims{
		Type: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return domain.AccessToken{}, fmt.Errorf("sign access token: %w", err)
	}
	return domain.AccessToken{AccessToken: signed, TokenType: tokenTypeBearer, ExpiresAt: expires}, nil
}

type UserLookup interface {
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// TokenVerifier turns HS256 bearer tokens into identities backed by the
// users table.
type TokenVerifier struct {
	secret []byte
	users  UserLookup
}

func NewTokenVerifier(secret string, users UserLookup) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret), users: users}
}

func (v *TokenVerifier) Authenticate(r *http.Request) (domain.Identity, error) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	userID, err := v.Verify(strings.TrimSpace(token))
	if err != nil {
		return domain.Identity{}, err
	}

	user, err := v.users.GetUser(r.Context(), userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.Identity{}, fmt.Errorf("%w: account no longer exists", domain.ErrUnauthenticated)
	}
	if err != nil {
		return domain.Identity{}, err
	}
	return user.Identity(), nil
}

// Verify checks the signature, expiry and token type and returns the subject.
func (v *TokenVerifier) Verify(raw string) (uuid.UUID, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	if claims.Type != tokenTypeAccess {
		return uuid.Nil, fmt.Errorf("%w: not an access token", domain.ErrUnauthenticated)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad subject", domain.ErrUnauthenticated)
	}
	return userID, nil
}
