package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/pkg/idx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
)

type TodoService struct {
	Store store.Store

	// Now defaults to time.Now.
	Now func() time.Time
}

// TodoPatch lists the fields an update may change. Nil leaves a field as is.
type TodoPatch struct {
	Text      *string
	Completed *bool
}

// ListFilter narrows List. An empty CreatorID lists every todo.
type ListFilter struct {
	CreatorID string
}

func (s *TodoService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func cleanText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", invalidField("text", "must not be blank")
	}
	return text, nil
}

func parseID(id string) (string, error) {
	parsed, err := idx.Parse(id)
	if err != nil {
		return "", ErrMalformedID
	}
	return parsed.String(), nil
}

func mapTodoErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// Create stores a new, incomplete todo. creatorID may be empty.
func (s *TodoService) Create(ctx context.Context, creatorID, text string) (domain.Todo, error) {
	text, err := cleanText(text)
	if err != nil {
		return domain.Todo{}, err
	}

	now := s.now().UTC()
	t := domain.Todo{
		ID:        idx.New().String(),
		Text:      text,
		CreatorID: creatorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Todos().CreateTodo(ctx, t); err != nil {
		return domain.Todo{}, err
	}

	slogx.FromContext(ctx).Debug("todo created", slog.String("todo_id", t.ID))
	return t, nil
}

// List returns todos in insertion order.
func (s *TodoService) List(ctx context.Context, f ListFilter) ([]domain.Todo, error) {
	return s.Store.Todos().ListTodos(ctx, store.TodoFilter{CreatorID: f.CreatorID})
}

// Count reports how many todos exist.
func (s *TodoService) Count(ctx context.Context) (int, error) {
	return s.Store.Todos().CountTodos(ctx, store.TodoFilter{})
}

// Get returns the todo with id. Malformed ids fail with ErrMalformedID,
// absent ones with ErrNotFound.
func (s *TodoService) Get(ctx context.Context, id string) (domain.Todo, error) {
	id, err := parseID(id)
	if err != nil {
		return domain.Todo{}, err
	}

	t, err := s.Store.Todos().GetTodo(ctx, id)
	if err != nil {
		return domain.Todo{}, mapTodoErr(err)
	}
	return t, nil
}

// Update applies p. Setting Completed on an incomplete todo stamps
// CompletedAt; clearing it removes the stamp. The read and the single-row
// write share one transaction. An absent todo is reported before blank text.
func (s *TodoService) Update(ctx context.Context, id string, p TodoPatch) (domain.Todo, error) {
	id, err := parseID(id)
	if err != nil {
		return domain.Todo{}, err
	}

	var t domain.Todo
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		t, err = tx.Todos().GetTodo(ctx, id)
		if err != nil {
			return mapTodoErr(err)
		}

		if p.Text != nil {
			text, err := cleanText(*p.Text)
			if err != nil {
				return err
			}
			t.Text = text
		}
		if p.Completed != nil {
			t.Complete(*p.Completed, s.now())
		}

		return mapTodoErr(tx.Todos().UpdateTodo(ctx, t))
	})
	if err != nil {
		return domain.Todo{}, err
	}
	return t, nil
}

// Delete removes the todo with id and returns it.
func (s *TodoService) Delete(ctx context.Context, id string) (domain.Todo, error) {
	id, err := parseID(id)
	if err != nil {
		return domain.Todo{}, err
	}

	t, err := s.Store.Todos().DeleteTodo(ctx, id)
	if err != nil {
		return domain.Todo{}, mapTodoErr(err)
	}

	slogx.FromContext(ctx).Debug("todo deleted", slog.String("todo_id", t.ID))
	return t, nil
}

// DeleteByText removes every todo whose text is exactly text.
func (s *TodoService) DeleteByText(ctx context.Context, text string) (int64, error) {
	text, err := cleanText(text)
	if err != nil {
		return 0, err
	}
	return s.Store.Todos().DeleteTodosByText(ctx, text)
}

// DeleteFirstByText removes the oldest todo whose text is exactly text.
func (s *TodoService) DeleteFirstByText(ctx context.Context, text string) (domain.Todo, error) {
	text, err := cleanText(text)
	if err != nil {
		return domain.Todo{}, err
	}

	t, err := s.Store.Todos().DeleteFirstTodoByText(ctx, text)
	if err != nil {
		return domain.Todo{}, mapTodoErr(err)
	}
	return t, nil
}

// RenameAll rewrites the text of every todo matching from.
func (s *TodoService) RenameAll(ctx context.Context, from, to string) (int64, error) {
	from, err := cleanText(from)
	if err != nil {
		return 0, err
	}
	if to, err = cleanText(to); err != nil {
		return 0, err
	}
	return s.Store.Todos().RenameTodos(ctx, from, to)
}
