package httpx_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func resolver(ctx context.Context, token string) (context.Context, error) {
	switch token {
	case "good":
		return httpx.WithSession(ctx, "user-1", token), nil
	case "store-down":
		return nil, errors.New("sql: database is closed")
	default:
		return nil, fmt.Errorf("%w: unknown token", httpx.ErrTokenRejected)
	}
}

func whoami(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"user":  httpx.UserID(r.Context()),
		"token": httpx.Token(r.Context()),
	})
}

func TestAuthenticate(t *testing.T) {
	h := httpx.Authenticate(resolver)(http.HandlerFunc(whoami))

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"invalid", "bad", http.StatusUnauthorized},
		{"valid", "good", http.StatusOK},
		{"store failure", "store-down", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			if tt.token != "" {
				req.Header.Set(httpx.AuthHeader, tt.token)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, tt.status, rec.Code)
			switch tt.status {
			case http.StatusUnauthorized:
				require.Empty(t, rec.Body.String())
				return
			case http.StatusInternalServerError:
				require.JSONEq(t, `{"error":"server_error","error_description":"internal server error"}`, rec.Body.String())
				return
			}
			require.JSONEq(t, `{"user":"user-1","token":"good"}`, rec.Body.String())
		})
	}
}

func TestAuthenticateOptional(t *testing.T) {
	h := httpx.AuthenticateOptional(resolver)(http.HandlerFunc(whoami))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/todos", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"user":"","token":""}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodPost, "/todos", nil)
	req.Header.Set(httpx.AuthHeader, "bad")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mw("a"), mw("b"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"a", "b", "handler"}, order)
}
