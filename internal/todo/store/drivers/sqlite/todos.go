package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
)

type todosRepo struct {
	db dbtx
}

const todoColumns = `id, text, completed, completed_at, creator_id, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanTodo(s scanner) (domain.Todo, error) {
	var (
		t                domain.Todo
		completedAt      sql.NullInt64
		creator          sql.NullString
		created, updated int64
	)
	if err := s.Scan(&t.ID, &t.Text, &t.Completed, &completedAt, &creator, &created, &updated); err != nil {
		return domain.Todo{}, err
	}
	t.CompletedAt = timeFromNull(completedAt)
	t.CreatorID = creator.String
	t.CreatedAt = fromMillis(created)
	t.UpdatedAt = fromMillis(updated)
	return t, nil
}

func (r *todosRepo) CreateTodo(ctx context.Context, t domain.Todo) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = t.CreatedAt
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO todos (`+todoColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Text, t.Completed, nullMillis(t.CompletedAt), nullString(t.CreatorID),
		toMillis(t.CreatedAt), toMillis(t.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *todosRepo) GetTodo(ctx context.Context, id string) (domain.Todo, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+todoColumns+` FROM todos WHERE id = ?`, id)
	t, err := scanTodo(row)
	if err != nil {
		return domain.Todo{}, mapNotFound(err)
	}
	return t, nil
}

func where(f store.TodoFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.CreatorID != "" {
		conds = append(conds, "creator_id = ?")
		args = append(args, f.CreatorID)
	}
	if f.Text != "" {
		conds = append(conds, "text = ?")
		args = append(args, f.Text)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *todosRepo) ListTodos(ctx context.Context, f store.TodoFilter) ([]domain.Todo, error) {
	clause, args := where(f)

	// ids are ULIDs, so id order is insertion order.
	rows, err := r.db.QueryContext(ctx, `SELECT `+todoColumns+` FROM todos`+clause+` ORDER BY id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Todo{}
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *todosRepo) CountTodos(ctx context.Context, f store.TodoFilter) (int, error) {
	clause, args := where(f)

	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM todos`+clause, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *todosRepo) UpdateTodo(ctx context.Context, t domain.Todo) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE todos SET text = ?, completed = ?, completed_at = ?, updated_at = ? WHERE id = ?`,
		t.Text, t.Completed, nullMillis(t.CompletedAt), toMillis(time.Now()), t.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *todosRepo) DeleteTodo(ctx context.Context, id string) (domain.Todo, error) {
	row := r.db.QueryRowContext(ctx, `DELETE FROM todos WHERE id = ? RETURNING `+todoColumns, id)
	t, err := scanTodo(row)
	if err != nil {
		return domain.Todo{}, mapNotFound(err)
	}
	return t, nil
}

func (r *todosRepo) DeleteFirstTodoByText(ctx context.Context, text string) (domain.Todo, error) {
	row := r.db.QueryRowContext(ctx,
		`DELETE FROM todos WHERE id = (SELECT id FROM todos WHERE text = ? ORDER BY id LIMIT 1) RETURNING `+todoColumns,
		text,
	)
	t, err := scanTodo(row)
	if err != nil {
		return domain.Todo{}, mapNotFound(err)
	}
	return t, nil
}

func (r *todosRepo) DeleteTodosByText(ctx context.Context, text string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE text = ?`, text)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *todosRepo) RenameTodos(ctx context.Context, from, to string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE todos SET text = ?, updated_at = ? WHERE text = ?`,
		to, toMillis(time.Now()), from,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
