// Package auth issues and verifies the HS256 bearer tokens that guard the
// protected routes.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrUnauthorized is returned for a missing, malformed, tampered or expired token.
var ErrUnauthorized = errors.New("unauthorized access")

const bearerPrefix = "Bearer "

// Claims is the decoded payload of a verified token.
type Claims struct {
	Email string
	Raw   jwt.MapClaims
}

// Auth signs and verifies tokens with a single server-held secret.
type Auth struct {
	secret []byte
	ttl    time.Duration
	parser *jwt.Parser
	now    func() time.Time
}

// New constructs an Auth. Tokens it issues expire after ttl.
func New(secret string, ttl time.Duration) (*Auth, error) {
	if secret == "" {
		return nil, errors.New("auth: empty token secret")
	}
	return &Auth{
		secret: []byte(secret),
		ttl:    ttl,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
		now: time.Now,
	}, nil
}

// Issue signs the given claims. The claim set is not validated; any exp the
// caller sent is replaced.
func (a *Auth) Issue(claims map[string]any) (string, error) {
	mc := make(jwt.MapClaims, len(claims)+2)
	for k, v := range claims {
		mc[k] = v
	}
	now := a.now()
	mc["iat"] = jwt.NewNumericDate(now)
	mc["exp"] = jwt.NewNumericDate(now.Add(a.ttl))

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates an Authorization header value of the form "Bearer <token>".
func (a *Auth) Verify(authorization string) (Claims, error) {
	if !strings.HasPrefix(authorization, bearerPrefix) {
		return Claims{}, ErrUnauthorized
	}
	raw := strings.TrimSpace(strings.TrimPrefix(authorization, bearerPrefix))
	if raw == "" {
		return Claims{}, ErrUnauthorized
	}

	mc := jwt.MapClaims{}
	token, err := a.parser.ParseWithClaims(raw, mc, func(*jwt.Token) (any, error) {
		return a.secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %s", ErrUnauthorized, err)
	}
	if !token.Valid {
		return Claims{}, ErrUnauthorized
	}

	email, _ := mc["email"].(string)
	return Claims{Email: email, Raw: mc}, nil
}
