package auth

import (
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// TokenIssuer signs HS256 access tokens.
type TokenIssuer struct {
	ja  *jwtauth.JWTAuth
	ttl time.Duration
	now func() time.Time
}

// NewTokenIssuer constructs an issuer for tokens valid for ttl.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		ja:  jwtauth.New("HS256", []byte(secret), nil, jwt.WithAcceptableSkew(30*time.Second)),
		ttl: ttl,
		now: time.Now,
	}
}

// JWTAuth exposes the verifier for middleware.
func (t *TokenIssuer) JWTAuth() *jwtauth.JWTAuth { return t.ja }

// TTL is the lifetime of issued tokens.
func (t *TokenIssuer) TTL() time.Duration { return t.ttl }

// Issue signs an access token for a.
func (t *TokenIssuer) Issue(a Account) (string, time.Time, error) {
	now := t.now()
	expiresAt := now.Add(t.ttl)
	claims := map[string]interface{}{
		"jti":      uuid.NewString(),
		"user_id":  a.ID,
		"username": a.Username,
		"type":     "access",
		"iat":      now.Unix(),
		"exp":      expiresAt.Unix(),
	}
	_, token, err := t.ja.Encode(claims)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("auth: sign token: %w", err)
	}
	return token, expiresAt, nil
}
