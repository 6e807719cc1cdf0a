package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/sqlite"
	"github.com/aussiebroadwan/todo/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(sqlite.DSN(":memory:"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func createUser(t *testing.T, s store.Store, email string) domain.User {
	t.Helper()
	u := domain.User{ID: idx.New().String(), Email: email, PasswordHash: "$argon2id$stub"}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func TestApplyMigrations_Idempotent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestUsers_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	u := createUser(t, s, "alice@example.com")

	got, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", got.Email)
	require.Empty(t, got.Tokens)

	got, err = s.Users().GetUserByEmail(ctx, "ALICE@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = s.Users().GetUserByEmail(ctx, "bob@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsers_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	createUser(t, s, "alice@example.com")

	err := s.Users().CreateUser(ctx, domain.User{ID: idx.New().String(), Email: "Alice@Example.com", PasswordHash: "x"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestUsers_UpdatePasswordHash(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	u := createUser(t, s, "alice@example.com")

	require.NoError(t, s.Users().UpdatePasswordHash(ctx, u.ID, "new-hash"))
	got, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "new-hash", got.PasswordHash)

	require.ErrorIs(t, s.Users().UpdatePasswordHash(ctx, "missing", "x"), store.ErrNotFound)
}

func TestTokens_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	u := createUser(t, s, "alice@example.com")

	for _, h := range []string{"fp-1", "fp-2", "fp-3"} {
		require.NoError(t, s.Tokens().AddToken(ctx, u.ID, domain.SessionToken{Access: "auth", TokenHash: h}))
	}

	ok, err := s.Tokens().HasToken(ctx, u.ID, "auth", "fp-2")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.Tokens().HasToken(ctx, u.ID, "reset", "fp-2")
	require.NoError(t, err)
	require.False(t, ok, "access tag must match")

	require.NoError(t, s.Tokens().RemoveToken(ctx, u.ID, "fp-2"))
	require.NoError(t, s.Tokens().RemoveToken(ctx, u.ID, "fp-2"), "removal is idempotent")

	got, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, got.Tokens, 2)
	require.Equal(t, "fp-1", got.Tokens[0].TokenHash)
	require.Equal(t, "fp-3", got.Tokens[1].TokenHash)
}

func TestTokens_DeleteBefore(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	u := createUser(t, s, "alice@example.com")

	old := time.UnixMilli(1_000).UTC()
	recent := time.UnixMilli(5_000).UTC()
	require.NoError(t, s.Tokens().AddToken(ctx, u.ID, domain.SessionToken{Access: "auth", TokenHash: "old", CreatedAt: old}))
	require.NoError(t, s.Tokens().AddToken(ctx, u.ID, domain.SessionToken{Access: "auth", TokenHash: "recent", CreatedAt: recent}))

	n, err := s.Tokens().DeleteTokensBefore(ctx, time.UnixMilli(2_000))
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	toks, err := s.Tokens().ListTokens(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, toks, 1)
	require.Equal(t, "recent", toks[0].TokenHash)
}

func TestTodos_CRUD(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	u := createUser(t, s, "alice@example.com")

	done := time.UnixMilli(333).UTC()
	seed := []domain.Todo{
		{ID: idx.New().String(), Text: "First test todo", CreatorID: u.ID},
		{ID: idx.New().String(), Text: "Second test todo", Completed: true, CompletedAt: &done},
		{ID: idx.New().String(), Text: "Third test todo", CreatorID: u.ID},
	}
	for _, td := range seed {
		require.NoError(t, s.Todos().CreateTodo(ctx, td))
	}

	all, err := s.Todos().ListTodos(ctx, store.TodoFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i := range seed {
		require.Equal(t, seed[i].ID, all[i].ID, "insertion order")
	}
	require.Equal(t, done, *all[1].CompletedAt)
	require.Empty(t, all[1].CreatorID)

	mine, err := s.Todos().ListTodos(ctx, store.TodoFilter{CreatorID: u.ID})
	require.NoError(t, err)
	require.Len(t, mine, 2)

	n, err := s.Todos().CountTodos(ctx, store.TodoFilter{Text: "Third test todo"})
	require.NoError(t, err)
	require.Equal(t, 1, n)

	upd := all[0]
	upd.Text = "Updated"
	upd.Complete(true, time.Now())
	require.NoError(t, s.Todos().UpdateTodo(ctx, upd))

	got, err := s.Todos().GetTodo(ctx, upd.ID)
	require.NoError(t, err)
	require.Equal(t, "Updated", got.Text)
	require.True(t, got.Completed)
	require.NotNil(t, got.CompletedAt)

	removed, err := s.Todos().DeleteTodo(ctx, upd.ID)
	require.NoError(t, err)
	require.Equal(t, "Updated", removed.Text)

	_, err = s.Todos().GetTodo(ctx, upd.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Todos().DeleteTodo(ctx, upd.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, s.Todos().UpdateTodo(ctx, upd), store.ErrNotFound)
}

func TestTodos_CompletionInvariantEnforced(t *testing.T) {
	s := newStore(t)

	err := s.Todos().CreateTodo(context.Background(), domain.Todo{ID: idx.New().String(), Text: "x", Completed: true})
	require.Error(t, err, "completed without a timestamp must be rejected")
}

func TestTodos_BulkMaintenance(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	var first string
	for i := range 4 {
		id := idx.New().String()
		if i == 0 {
			first = id
		}
		text := "Eat lunch"
		if i == 3 {
			text = "Walk dog"
		}
		require.NoError(t, s.Todos().CreateTodo(ctx, domain.Todo{ID: id, Text: text}))
	}

	removed, err := s.Todos().DeleteFirstTodoByText(ctx, "Eat lunch")
	require.NoError(t, err)
	require.Equal(t, first, removed.ID)

	n, err := s.Todos().RenameTodos(ctx, "Walk dog", "Walk cat")
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	n, err = s.Todos().DeleteTodosByText(ctx, "Eat lunch")
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	_, err = s.Todos().DeleteFirstTodoByText(ctx, "Eat lunch")
	require.ErrorIs(t, err, store.ErrNotFound)

	left, err := s.Todos().ListTodos(ctx, store.TodoFilter{})
	require.NoError(t, err)
	require.Len(t, left, 1)
	require.Equal(t, "Walk cat", left[0].Text)
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	boom := errors.New("boom")

	err := s.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Todos().CreateTodo(ctx, domain.Todo{ID: idx.New().String(), Text: "ghost"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	n, err := s.Todos().CountTodos(ctx, store.TodoFilter{})
	require.NoError(t, err)
	require.Zero(t, n)

	err = s.WithTx(ctx, func(tx store.Tx) error {
		return tx.Todos().CreateTodo(ctx, domain.Todo{ID: idx.New().String(), Text: "kept"})
	})
	require.NoError(t, err)

	n, err = s.Todos().CountTodos(ctx, store.TodoFilter{})
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
