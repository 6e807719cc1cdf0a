package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface implemented by each driver. Work
// is split into sub-repositories; a Tx exposes the same repositories bound to
// one transaction.
type Store interface {
	Users() Users
	Tokens() Tokens
	Todos() Todos

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller must Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transaction scoped Store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts u. Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID loads a user with its session tokens.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail matches the email case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// UpdatePasswordHash replaces the stored hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID, hash string) error
}

type Tokens interface {
	// AddToken appends a session token fingerprint to the user's list.
	AddToken(ctx context.Context, userID string, t domain.SessionToken) error

	// HasToken reports whether the user holds the fingerprint for access.
	HasToken(ctx context.Context, userID, access, tokenHash string) (bool, error)

	// ListTokens returns the user's tokens oldest first.
	ListTokens(ctx context.Context, userID string) ([]domain.SessionToken, error)

	// RemoveToken deletes the fingerprint. Removing an absent token is not
	// an error.
	RemoveToken(ctx context.Context, userID, tokenHash string) error

	// RemoveAllTokens ends every session of the user.
	RemoveAllTokens(ctx context.Context, userID string) (int64, error)

	// DeleteTokensBefore drops every token issued before the cutoff.
	DeleteTokensBefore(ctx context.Context, before time.Time) (int64, error)
}

// TodoFilter narrows ListTodos. Zero values match everything.
type TodoFilter struct {
	CreatorID string
	Text      string
}

type Todos interface {
	CreateTodo(ctx context.Context, t domain.Todo) error
	GetTodo(ctx context.Context, id string) (domain.Todo, error)

	// ListTodos returns matching todos in insertion order.
	ListTodos(ctx context.Context, f TodoFilter) ([]domain.Todo, error)

	CountTodos(ctx context.Context, f TodoFilter) (int, error)

	// UpdateTodo writes text, completion state and completion time in a
	// single statement so readers never see a half applied change.
	UpdateTodo(ctx context.Context, t domain.Todo) error

	// DeleteTodo removes a todo and returns the removed row.
	DeleteTodo(ctx context.Context, id string) (domain.Todo, error)

	// DeleteFirstTodoByText removes the oldest todo with exactly this text.
	DeleteFirstTodoByText(ctx context.Context, text string) (domain.Todo, error)

	// DeleteTodosByText removes every todo with exactly this text.
	DeleteTodosByText(ctx context.Context, text string) (int64, error)

	// RenameTodos replaces the text of every todo whose text equals from.
	RenameTodos(ctx context.Context, from, to string) (int64, error)
}
