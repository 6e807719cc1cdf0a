package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aussiebroadwan/todo/internal/todo/app"
	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/stretchr/testify/require"
)

// setup points the environment at a fresh database seeded with todos.
func setup(t *testing.T, texts ...string) []domain.Todo {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("TODO_DATABASE_FILE", filepath.Join(dir, "todo.db"))
	t.Setenv("TODO_PEPPER_FILE", filepath.Join(dir, "pepper"))
	t.Setenv("TODO_SECRET_FILE", filepath.Join(dir, "jwt_secret"))
	t.Setenv("TODO_JWT_SECRET", "")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := app.LoadConfig("")
	require.NoError(t, err)
	cfg.LogLevel = "error"

	core, err := app.OpenCore(cfg, app.NewLogger(cfg, "todoctl-test"))
	require.NoError(t, err)
	defer core.Close()

	ctx := context.Background()
	var out []domain.Todo
	for _, text := range texts {
		td, err := core.Todos.Create(ctx, "", text)
		require.NoError(t, err)
		out = append(out, td)
	}
	return out
}

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestUsageErrors(t *testing.T) {
	setup(t)

	_, stderr, err := runCmd(t)
	require.ErrorIs(t, err, errUsage)
	require.Contains(t, stderr, "usage: todoctl")

	_, stderr, err = runCmd(t, "explode")
	require.ErrorIs(t, err, errUsage)
	require.Contains(t, stderr, `unknown command "explode"`)

	_, stderr, err = runCmd(t, "purge")
	require.ErrorIs(t, err, errUsage)
	require.Contains(t, stderr, "-text is required")
}

func TestList(t *testing.T) {
	seed := setup(t, "one", "two")

	stdout, _, err := runCmd(t, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[1], seed[0].ID)
	require.Contains(t, lines[2], seed[1].ID)
}

func TestPurgeAndDeleteOne(t *testing.T) {
	setup(t, "dup", "dup", "dup", "keep")

	stdout, _, err := runCmd(t, "delete-one", "-text", "dup")
	require.NoError(t, err)
	require.Contains(t, stdout, "dup")

	stdout, _, err = runCmd(t, "purge", "-text", "dup")
	require.NoError(t, err)
	require.Equal(t, "deleted 2 todo(s)\n", stdout)

	stdout, _, err = runCmd(t, "delete-one", "-text", "dup")
	require.NoError(t, err)
	require.Equal(t, "no matching todo\n", stdout)

	stdout, _, err = runCmd(t, "list")
	require.NoError(t, err)
	require.Contains(t, stdout, "keep")
	require.NotContains(t, stdout, "dup")
}

func TestDeleteByID(t *testing.T) {
	seed := setup(t, "gone")

	stdout, _, err := runCmd(t, "delete", "-id", seed[0].ID)
	require.NoError(t, err)
	require.Contains(t, stdout, seed[0].ID)

	_, _, err = runCmd(t, "delete", "-id", seed[0].ID)
	require.Error(t, err)
}

func TestRename(t *testing.T) {
	setup(t, "old", "old", "other")

	stdout, _, err := runCmd(t, "rename", "-from", "old", "-to", "new")
	require.NoError(t, err)
	require.Equal(t, "renamed 2 todo(s)\n", stdout)
}

func TestPasswd(t *testing.T) {
	setup(t)

	cfg, err := app.LoadConfig("")
	require.NoError(t, err)
	core, err := app.OpenCore(cfg, app.NewLogger(cfg, "todoctl-test"))
	require.NoError(t, err)
	_, err = core.Users.Register(context.Background(), "ada@example.com", "hunter22")
	require.NoError(t, err)
	require.NoError(t, core.Close())

	stdout, _, err := runCmd(t, "passwd", "-email", "ada@example.com", "-password", "brand-new")
	require.NoError(t, err)
	require.Contains(t, stdout, "password updated for ada@example.com")

	_, _, err = runCmd(t, "passwd", "-email", "nobody@example.com", "-password", "hunter22")
	require.Error(t, err)
}
