package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = 24 * time.Hour

var (
	// ErrInvalidToken covers every verification failure.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired also matches ErrInvalidToken.
	ErrTokenExpired = fmt.Errorf("%w: token expired", ErrInvalidToken)
	// ErrSigningDisabled is returned by Issue when no secret is configured.
	ErrSigningDisabled = errors.New("token signing is not configured")
)

// Claims is the public profile carried by a token.
type Claims struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// Complete reports whether the profile claims are all present.
func (c *Claims) Complete() bool {
	return c.Name != "" && c.Lastname != "" && c.Email != ""
}

type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type TokenOption func(*TokenService)

// WithClock replaces time.Now for issuing and verifying.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) {
		s.now = now
	}
}

// WithTTL overrides DefaultTokenTTL. Non-positive values are ignored.
func WithTTL(ttl time.Duration) TokenOption {
	return func(s *TokenService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewTokenService signs tokens with HS256. An empty secret leaves the service disabled.
func NewTokenService(secret string, opts ...TokenOption) *TokenService {
	s := &TokenService{
		secret: []byte(secret),
		ttl:    DefaultTokenTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enabled is false when no signing secret was configured.
func (s *TokenService) Enabled() bool {
	return len(s.secret) > 0
}

// Issue signs a token for the given profile, valid from now until now+TTL.
func (s *TokenService) Issue(name, lastname, email string) (string, error) {
	if !s.Enabled() {
		return "", ErrSigningDisabled
	}

	now := s.now()
	claims := &Claims{
		Name:     name,
		Lastname: lastname,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature, algorithm and expiry of a token and returns its claims.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	if !s.Enabled() {
		return nil, ErrSigningDisabled
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// TokenFromHeader extracts the token from an Authorization header value. A "Bearer " prefix is optional.
func TokenFromHeader(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}
