//go:build e2e

package todo_test

import (
	"testing"

	"github.com/aussiebroadwan/todo/pkg/todosdk"
	"github.com/stretchr/testify/require"
)

func TestUserSessions(t *testing.T) {
	c := setupTodoContainer(t, nil)
	ctx := t.Context()

	user, session := registerUser(t, c.client, "ada@example.com")

	t.Run("me", func(t *testing.T) {
		me, err := session.Me(ctx)
		require.NoError(t, err)
		require.Equal(t, user.ID, me.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, _, err := c.client.Register(ctx, "ada@example.com", "another1")
		require.ErrorIs(t, err, todosdk.ErrEmailTaken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := c.client.Login(ctx, "ada@example.com", "not-it")
		require.ErrorIs(t, err, todosdk.ErrInvalidCredentials)
	})

	t.Run("no token", func(t *testing.T) {
		_, err := c.client.Me(ctx)
		require.ErrorIs(t, err, todosdk.ErrUnauthorized)
	})

	t.Run("todos attributed to creator", func(t *testing.T) {
		td, err := session.CreateTodo(ctx, "mine")
		require.NoError(t, err)
		require.Equal(t, user.ID, td.Creator)

		mine, err := c.client.ListTodos(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, mine, 1)
	})

	t.Run("logout revokes the token", func(t *testing.T) {
		require.NoError(t, session.Logout(ctx))

		_, err := session.Me(ctx)
		require.ErrorIs(t, err, todosdk.ErrUnauthorized)

		_, token, err := c.client.Login(ctx, "ada@example.com", testPassword)
		require.NoError(t, err)
		_, err = c.client.WithToken(token).Me(ctx)
		require.NoError(t, err)
	})
}

func TestPasswordResetEndsSessions(t *testing.T) {
	c := setupTodoContainer(t, nil)
	ctx := t.Context()

	_, session := registerUser(t, c.client, "grace@example.com")

	code, out := c.todoctl(t, "passwd", "-email", "grace@example.com", "-password", "reset-pass")
	require.Equal(t, 0, code, out)

	_, err := session.Me(ctx)
	require.ErrorIs(t, err, todosdk.ErrUnauthorized)

	_, _, err = c.client.Login(ctx, "grace@example.com", "reset-pass")
	require.NoError(t, err)
}
