package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/eventhub/events-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// tokenClaims is the wire shape of a session token payload.
type tokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService mints and verifies HS256 session tokens. The signing key is
// process-wide configuration, loaded once at startup. Verification holds no
// state: it depends only on the token, the key, and the clock.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time // overridable in tests
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token embedding the claims plus issued-at and expiry stamps.
func (s *TokenService) Issue(claims domain.Claims) (string, error) {
	now := s.now().UTC()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   string(claims.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	return t.SignedString(s.secret)
}

// Verify checks signature integrity and expiry. Any failure collapses to
// domain.ErrInvalidToken; callers never see the claims of a bad token.
func (s *TokenService) Verify(token string) (*domain.Claims, error) {
	var tc tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &tc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	role, ok := domain.ParseRole(tc.Role)
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	return &domain.Claims{UserID: tc.UserID, Email: tc.Email, Role: role}, nil
}
