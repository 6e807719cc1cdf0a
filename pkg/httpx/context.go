package httpx

import "context"

type ctxKey string

const (
	ctxKeyUserID ctxKey = "user_id"
	ctxKeyToken  ctxKey = "token"
)

// WithSession records the authenticated user id and the token it presented.
func WithSession(ctx context.Context, userID, token string) context.Context {
	ctx = context.WithValue(ctx, ctxKeyUserID, userID)
	return context.WithValue(ctx, ctxKeyToken, token)
}

// UserID returns the authenticated user id, or "" for anonymous requests.
func UserID(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyUserID).(string)
	return v
}

// Token returns the raw token the request authenticated with.
func Token(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyToken).(string)
	return v
}
