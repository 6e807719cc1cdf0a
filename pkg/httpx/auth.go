package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/todo/pkg/slogx"
)

// AuthHeader carries the session token on requests and on the responses
// that mint one.
const AuthHeader = "X-Auth"

// ErrTokenRejected marks resolve errors meaning the token does not identify a
// live session. Other resolve errors are server failures.
var ErrTokenRejected = errors.New("httpx: token rejected")

// ResolveFunc turns a raw token into an authenticated context. It should
// store at least the session (see WithSession) and return an error wrapping
// ErrTokenRejected when the token does not identify a live session.
type ResolveFunc func(ctx context.Context, token string) (context.Context, error)

// Authenticate rejects requests that do not carry a token resolvable by
// resolve. Rejections are a bare 401 with no body; a resolve that fails for
// any other reason is a 500.
func Authenticate(resolve ResolveFunc) Middleware {
	return authenticate(resolve, false)
}

// AuthenticateOptional lets requests without a token through anonymously but
// still rejects a token that is present and invalid.
func AuthenticateOptional(resolve ResolveFunc) Middleware {
	return authenticate(resolve, true)
}

func authenticate(resolve ResolveFunc, optional bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimSpace(r.Header.Get(AuthHeader))
			if token == "" {
				if optional {
					next.ServeHTTP(w, r)
					return
				}
				Unauthorized(w)
				return
			}

			ctx, err := resolve(r.Context(), token)
			switch {
			case errors.Is(err, ErrTokenRejected):
				slogx.FromContext(r.Context()).Warn("token rejected", "err", err)
				Unauthorized(w)
				return
			case err != nil:
				slogx.FromContext(r.Context()).Error("resolve session", "err", err)
				ServerError(w)
				return
			}

			ctx = slogx.With(ctx, "user_id", UserID(ctx))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Unauthorized writes a 401 with an empty body.
func Unauthorized(w http.ResponseWriter) {
	NoCache(w)
	w.WriteHeader(http.StatusUnauthorized)
}
