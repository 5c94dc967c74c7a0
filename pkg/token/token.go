package token

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"tenantgate/pkg/rbac"
)

// Issuer is the "iss" claim on every token tenantgate mints.
const Issuer = "tenantgate"

// KeyEnvVar names the environment variable holding the base64-encoded
// token signing key.
const KeyEnvVar = "TENANTGATE_TOKEN_KEY"

// minKeyLen is the minimum decoded signing key length in bytes.
const minKeyLen = 32

var (
	// ErrInvalidToken covers malformed, expired, and badly signed tokens
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims is the payload of a tenantgate access token.
type Claims struct {
	Login   string `json:"login"`
	Role    string `json:"role"`
	Company string `json:"company,omitempty"`
	jwt.RegisteredClaims
}

// Signer mints and verifies access tokens with an HMAC-SHA256 key.
type Signer struct {
	key []byte
	ttl time.Duration
}

// NewSigner creates a Signer. The key must be at least 32 bytes.
func NewSigner(key []byte, ttl time.Duration) (*Signer, error) {
	if len(key) < minKeyLen {
		return nil, fmt.Errorf("token signing key must be at least %d bytes, got %d", minKeyLen, len(key))
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}
	return &Signer{key: key, ttl: ttl}, nil
}

// KeyFromEnv reads and decodes the base64 signing key from the environment.
func KeyFromEnv() ([]byte, error) {
	encoded, ok := os.LookupEnv(KeyEnvVar)
	if !ok {
		return nil, fmt.Errorf("%s environment variable is required", KeyEnvVar)
	}
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("bad %s: %w", KeyEnvVar, err)
	}
	return key, nil
}

// GenerateKey returns a fresh base64-encoded signing key suitable for
// the environment variable.
func GenerateKey() (string, error) {
	key := make([]byte, minKeyLen)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("failed to generate token key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// Issue mints a signed token for the principal, valid from now for the
// signer's TTL.
func (s *Signer) Issue(principal rbac.Principal, now time.Time) (string, error) {
	claims := Claims{
		Login: principal.Login,
		Role:  principal.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   principal.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	if principal.Company != uuid.Nil {
		claims.Company = principal.Company.String()
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

// Parse verifies a token and reconstructs the principal it was minted
// for. Any verification failure is reported as ErrInvalidToken.
func (s *Signer) Parse(raw string) (rbac.Principal, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.key, nil
	}, jwt.WithIssuer(Issuer), jwt.WithExpirationRequired(), jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return rbac.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return rbac.Principal{}, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	role, err := rbac.RoleString(claims.Role)
	if err != nil {
		return rbac.Principal{}, fmt.Errorf("%w: bad role", ErrInvalidToken)
	}

	company := uuid.Nil
	if claims.Company != "" {
		company, err = uuid.Parse(claims.Company)
		if err != nil {
			return rbac.Principal{}, fmt.Errorf("%w: bad company", ErrInvalidToken)
		}
	}

	principal, err := rbac.NewPrincipal(id, claims.Login, role, company)
	if err != nil {
		return rbac.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return principal, nil
}

// TTL returns the signer's token lifetime.
func (s *Signer) TTL() time.Duration {
	return s.ttl
}
