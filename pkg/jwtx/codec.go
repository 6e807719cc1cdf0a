package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers every reason a token cannot be trusted: bad
	// structure, wrong algorithm, bad signature, expiry or claim mismatch.
	ErrInvalidToken = errors.New("jwtx: invalid token")

	ErrIssuer   = errors.New("jwtx: issuer mismatch")
	ErrNoSecret = errors.New("jwtx: empty signing secret")
)

// Decoded is what a verified token tells us about its bearer.
type Decoded struct {
	Subject string
	Access  string
	ID      string
}

// Codec signs and verifies HS256 session tokens with a shared secret. It is
// immutable after construction and safe for concurrent use.
type Codec struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

type CodecOption func(*Codec)

// WithTTL sets an expiry on minted tokens. The default is no expiry.
func WithTTL(ttl time.Duration) CodecOption {
	return func(c *Codec) { c.ttl = ttl }
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) CodecOption {
	return func(c *Codec) { c.now = now }
}

func NewCodec(secret []byte, issuer string, opts ...CodecOption) (*Codec, error) {
	if len(secret) == 0 {
		return nil, ErrNoSecret
	}

	c := &Codec{
		secret: append([]byte(nil), secret...),
		issuer: issuer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Encode mints a signed token binding subject to the access purpose.
func (c *Codec) Encode(subject, access string) (string, error) {
	claims, err := NewClaims(subject, access, c.issuer, c.ttl, c.now().UTC())
	if err != nil {
		return "", err
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// Decode verifies token and returns its subject and purpose. Any failure is
// reported as ErrInvalidToken with the cause wrapped alongside.
func (c *Codec) Decode(token string) (Decoded, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(c.now),
	)

	parsed, err := parser.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		return Decoded{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Decoded{}, ErrInvalidToken
	}
	if err := claims.ValidateIssuer(c.issuer); err != nil {
		return Decoded{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Subject == "" || claims.Access == "" {
		return Decoded{}, fmt.Errorf("%w: missing sub or access", ErrInvalidToken)
	}

	return Decoded{Subject: claims.Subject, Access: claims.Access, ID: claims.ID}, nil
}
