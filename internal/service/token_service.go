package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yurtswap/yurtswap-api/pkg/config"
	appErrors "github.com/yurtswap/yurtswap-api/pkg/errors"
)

// Resource kinds embedded in owner tokens. A token minted for a listing
// cannot mutate a roommate search and vice versa.
const (
	ResourceListing        = "listing"
	ResourceRoommateSearch = "roommate-search"
)

// OwnerClaims ties a signed token to a single record. The record ID is
// the JWT subject so a token only ever authorizes its own record.
type OwnerClaims struct {
	Resource string `json:"res"`
	jwt.RegisteredClaims
}

// TokenService mints and validates per-record owner tokens. Records have
// no user accounts behind them; whoever holds the token issued at
// creation time may update or delete that record.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// NewTokenService constructs a token service from configuration.
func NewTokenService(cfg config.OwnerTokenConfig) *TokenService {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 90 * 24 * time.Hour
	}
	return &TokenService{secret: []byte(cfg.Secret), ttl: ttl, issuer: cfg.Issuer}
}

// Issue signs an owner token for the given resource kind and record ID.
func (s *TokenService) Issue(resource, recordID string) (string, error) {
	now := time.Now().UTC()
	claims := &OwnerClaims{
		Resource: resource,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   recordID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign owner token: %w", err)
	}
	return signed, nil
}

// Validate parses the token and checks it authorizes the given record.
func (s *TokenService) Validate(tokenString, resource, recordID string) error {
	token, err := jwt.ParseWithClaims(tokenString, &OwnerClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid owner token")
	}

	claims, ok := token.Claims.(*OwnerClaims)
	if !ok || !token.Valid {
		return appErrors.Clone(appErrors.ErrUnauthorized, "invalid owner token claims")
	}
	if claims.Resource != resource || claims.Subject != recordID {
		return appErrors.Clone(appErrors.ErrForbidden, "token does not authorize this record")
	}
	return nil
}
