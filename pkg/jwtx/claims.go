package jwtx

import (
	"fmt"
	"time"

	"github.com/aussiebroadwan/todo/pkg/cryptox"
	"github.com/golang-jwt/jwt/v5"
)

// AccessAuth is the purpose tag carried by session tokens.
const AccessAuth = "auth"

// Claims are the session-token claims. Access tags what the token may be
// used for so a token minted for one purpose is not accepted for another.
type Claims struct {
	jwt.RegisteredClaims

	Access string `json:"access"`
}

// NewClaims builds claims for subject with a fresh random jti, so two tokens
// minted for the same user within one second still differ. A zero ttl leaves
// the token without an expiry; it then lives until it is revoked.
func NewClaims(subject, access, issuer string, ttl time.Duration, now time.Time) (Claims, error) {
	jti, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		return Claims{}, fmt.Errorf("jwtx: jti: %w", err)
	}

	c := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  subject,
			IssuedAt: jwt.NewNumericDate(now),
			ID:       jti,
		},
		Access: access,
	}
	if ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	return c, nil
}

// ValidateIssuer checks the issuer when one is expected.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}
