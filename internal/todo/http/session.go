package http

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/jwtx"
)

type userCtxKey struct{}

// resolveSession adapts UserService.ResolveToken to httpx.ResolveFunc. Store
// failures pass through unmarked so they surface as a 500.
func (r *Router) resolveSession(ctx context.Context, token string) (context.Context, error) {
	u, err := r.UserService.ResolveToken(ctx, token)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) || errors.Is(err, jwtx.ErrInvalidToken) {
			return nil, fmt.Errorf("%w: %w", httpx.ErrTokenRejected, err)
		}
		return nil, err
	}

	ctx = httpx.WithSession(ctx, u.ID, token)
	return context.WithValue(ctx, userCtxKey{}, u), nil
}

func userFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(userCtxKey{}).(domain.User)
	return u, ok
}
