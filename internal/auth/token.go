package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long an issued token stays valid unless a caller asks
// for something else.
const DefaultTTL = 1800 * time.Second

// expirationLayout is the human-readable timestamp echoed alongside the
// signed token.
const expirationLayout = "2006-01-02 15:04:05"

// Token is an issued bearer token. Tokens are stateless: nothing is stored
// server-side and they cannot be revoked before their embedded expiration.
type Token struct {
	AccessToken string `json:"access_token"`
	Expiration  string `json:"expiration"`
	Type        string `json:"type"`
}

// TokenManager issues and parses signed bearer tokens with a process-wide
// symmetric secret.
type TokenManager struct {
	secret []byte
	method jwt.SigningMethod
}

// NewTokenManager creates a token manager for the given secret and signing
// algorithm name. Only HMAC algorithms are accepted.
func NewTokenManager(secret, algorithm string) (*TokenManager, error) {
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}

	return &TokenManager{
		secret: []byte(secret),
		method: method,
	}, nil
}

// Issue creates a signed token for subject expiring ttl from now.
func (m *TokenManager) Issue(subject string, ttl time.Duration) (Token, error) {
	expiration := time.Now().UTC().Add(ttl)

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiration),
	}

	signed, err := jwt.NewWithClaims(m.method, claims).SignedString(m.secret)
	if err != nil {
		return Token{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return Token{
		AccessToken: signed,
		Expiration:  expiration.Format(expirationLayout),
		Type:        "bearer",
	}, nil
}

// Parse validates a signed token and returns its subject. Any failure,
// including expiry, yields ErrInvalidToken.
func (m *TokenManager) Parse(tokenString string) (string, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{m.method.Alg()}))

	claims := &jwt.RegisteredClaims{}
	_, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	// exp == now counts as expired
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) <= 0 {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
