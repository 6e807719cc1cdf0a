package app

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/pkg/todosdk"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	return Config{
		Issuer:              "todo-test",
		SecretFile:          filepath.Join(dir, "secrets", "jwt_secret"),
		DatabaseFile:        filepath.Join(dir, "todo.db"),
		PepperFile:          filepath.Join(dir, "secrets", "pepper"),
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "text",
		Port:                8080,
		ShutdownGracePeriod: time.Second,
	}
}

func TestApplication_ServesAndPersists(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	a, err := New(cfg)
	require.NoError(t, err)

	srv := httptest.NewServer(a.Handler())
	client := todosdk.NewClient(srv.URL)

	_, token, err := client.Register(ctx, "ada@example.com", "hunter22")
	require.NoError(t, err)
	created, err := client.WithToken(token).CreateTodo(ctx, "persist me")
	require.NoError(t, err)

	srv.Close()
	require.NoError(t, a.Shutdown())

	// Secrets were generated once and are reused on restart, so the old
	// session token still verifies.
	_, err = os.Stat(cfg.PepperFile)
	require.NoError(t, err)

	b, err := New(cfg)
	require.NoError(t, err)
	srv = httptest.NewServer(b.Handler())
	t.Cleanup(srv.Close)
	t.Cleanup(func() { _ = b.Shutdown() })

	client = todosdk.NewClient(srv.URL)
	got, err := client.GetTodo(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "persist me", got.Text)

	me, err := client.WithToken(token).Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", me.Email)
}

func TestOpenCore_PrefersConfiguredSecret(t *testing.T) {
	cfg := testConfig(t)
	cfg.JWTSecret = "configured"

	core, err := OpenCore(cfg, NewLogger(cfg, "todo-test"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = core.Close() })

	_, err = os.Stat(cfg.SecretFile)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestNew_HousekeepingOnlyWithTTL(t *testing.T) {
	cfg := testConfig(t)

	a, err := New(cfg)
	require.NoError(t, err)
	require.Nil(t, a.housekeeping)
	require.NoError(t, a.Shutdown())

	cfg.TokenTTL = time.Hour
	b, err := New(cfg)
	require.NoError(t, err)
	require.NotNil(t, b.housekeeping)
	require.Equal(t, time.Hour, b.housekeeping.TokenTTL)
	require.NoError(t, b.Shutdown())
}
