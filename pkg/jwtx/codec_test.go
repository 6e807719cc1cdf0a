package jwtx_test

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var secret = []byte("0123456789abcdef0123456789abcdef")

func newCodec(t *testing.T, opts ...jwtx.CodecOption) *jwtx.Codec {
	t.Helper()
	c, err := jwtx.NewCodec(secret, "todo-test", opts...)
	require.NoError(t, err)
	return c
}

func TestCodec_RoundTrip(t *testing.T) {
	c := newCodec(t)

	token, err := c.Encode("01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", jwtx.AccessAuth)
	require.NoError(t, err)

	got, err := c.Decode(token)
	require.NoError(t, err)
	require.Equal(t, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", got.Subject)
	require.Equal(t, jwtx.AccessAuth, got.Access)
	require.NotEmpty(t, got.ID)
}

func TestCodec_DistinctTokensSameInstant(t *testing.T) {
	fixed := time.Unix(1700000000, 0)
	c := newCodec(t, jwtx.WithClock(func() time.Time { return fixed }))

	a, err := c.Encode("user", jwtx.AccessAuth)
	require.NoError(t, err)
	b, err := c.Encode("user", jwtx.AccessAuth)
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestCodec_Rejects(t *testing.T) {
	c := newCodec(t)
	good, err := c.Encode("user", jwtx.AccessAuth)
	require.NoError(t, err)

	other, err := jwtx.NewCodec([]byte("another-secret"), "todo-test")
	require.NoError(t, err)
	foreign, err := other.Encode("user", jwtx.AccessAuth)
	require.NoError(t, err)

	otherIssuer, err := jwtx.NewCodec(secret, "someone-else")
	require.NoError(t, err)
	wrongIss, err := otherIssuer.Encode("user", jwtx.AccessAuth)
	require.NoError(t, err)

	noAccess, err := c.Encode("user", "")
	require.NoError(t, err)

	parts := strings.Split(good, ".")
	tamperedPayload := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"admin","access":"auth","iss":"todo-test"}`))

	claims, err := jwtx.NewClaims("user", jwtx.AccessAuth, "todo-test", 0, time.Now())
	require.NoError(t, err)
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.jwt"},
		{"tampered payload", parts[0] + "." + tamperedPayload + "." + parts[2]},
		{"truncated signature", good[:len(good)-4]},
		{"foreign secret", foreign},
		{"wrong issuer", wrongIss},
		{"missing access", noAccess},
		{"alg none", unsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decode(tt.token)
			require.ErrorIs(t, err, jwtx.ErrInvalidToken)
		})
	}
}

func TestCodec_Expiry(t *testing.T) {
	now := time.Unix(1700000000, 0)
	clock := func() time.Time { return now }
	c := newCodec(t, jwtx.WithTTL(time.Hour), jwtx.WithClock(clock))

	token, err := c.Encode("user", jwtx.AccessAuth)
	require.NoError(t, err)

	_, err = c.Decode(token)
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, err = c.Decode(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)
}

func TestNewClaims_FreshJTI(t *testing.T) {
	now := time.Unix(1700000000, 0)

	a, err := jwtx.NewClaims("user", jwtx.AccessAuth, "todo-test", 0, now)
	require.NoError(t, err)
	b, err := jwtx.NewClaims("user", jwtx.AccessAuth, "todo-test", time.Hour, now)
	require.NoError(t, err)

	require.Len(t, a.ID, 22)
	require.NotEqual(t, a.ID, b.ID)
	require.Nil(t, a.ExpiresAt)
	require.Equal(t, now.Add(time.Hour).Unix(), b.ExpiresAt.Unix())
}

func TestNewCodec_EmptySecret(t *testing.T) {
	_, err := jwtx.NewCodec(nil, "x")
	require.ErrorIs(t, err, jwtx.ErrNoSecret)
}
