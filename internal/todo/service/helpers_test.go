package service_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/sqlite"
	"github.com/aussiebroadwan/todo/pkg/cryptox"
	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

type services struct {
	store *sqlite.Store
	users *service.UserService
	todos *service.TodoService
	codec *jwtx.Codec
}

func newServices(t *testing.T) services {
	t.Helper()

	s, err := sqlite.NewStore(sqlite.DSN(":memory:"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	codec, err := jwtx.NewCodec([]byte("service-test-secret"), "todo-test")
	require.NoError(t, err)

	return services{
		store: s,
		users: &service.UserService{Store: s, Hasher: cryptox.NewArgon2Hasher("pepper"), Tokens: codec},
		todos: &service.TodoService{Store: s},
		codec: codec,
	}
}

func countTokens(t *testing.T, svc services, userID string) int {
	t.Helper()
	toks, err := svc.store.Tokens().ListTokens(context.Background(), userID)
	require.NoError(t, err)
	return len(toks)
}
