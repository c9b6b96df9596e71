package auth

import (
	"errors"
	"time"

	"github.com/akash4797/secure-encryption-decyrption-app/internal/apperr"
	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the lifetime of every session token.
const TokenTTL = time.Hour

var (
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
	ErrEmptySecret  = errors.New("token signing secret is empty")
)

// Identity is what a session token asserts about its holder.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Claims is the JWT payload: the identity plus the registered exp/iat claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"id"`
	Username string `json:"username"`
}

func (c *Claims) Identity() Identity {
	return Identity{ID: c.UserID, Username: c.Username}
}

// TokenService issues and verifies HS256 session tokens with one
// process-wide secret. There is no revocation; rotating the secret
// invalidates every outstanding token.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

type TokenOption func(*TokenService)

// WithClock overrides the time source used for iat/exp and for expiry checks.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) { s.now = now }
}

func NewTokenService(secret string, opts ...TokenOption) (*TokenService, error) {
	if secret == "" {
		return nil, apperr.Config("session secret", ErrEmptySecret)
	}
	s := &TokenService{secret: []byte(secret), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *TokenService) Issue(id Identity) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		UserID:   id.ID,
		Username: id.Username,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", apperr.Internal("sign token", err)
	}
	return signed, nil
}

// Parse validates the token and returns its claims. The error is
// ErrTokenExpired for expired tokens and ErrInvalidToken for everything else.
func (s *TokenService) Parse(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid || claims.Username == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Verify is Parse without the reason: ok is false for any token that is
// missing, malformed, wrongly signed or expired.
func (s *TokenService) Verify(tokenString string) (Identity, bool) {
	claims, err := s.Parse(tokenString)
	if err != nil {
		return Identity{}, false
	}
	return claims.Identity(), true
}
