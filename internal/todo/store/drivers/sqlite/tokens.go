package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
)

type tokensRepo struct {
	db dbtx
}

func (r *tokensRepo) AddToken(ctx context.Context, userID string, t domain.SessionToken) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_tokens (user_id, access, token_hash, created_at) VALUES (?, ?, ?, ?)`,
		userID, t.Access, t.TokenHash, toMillis(t.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *tokensRepo) HasToken(ctx context.Context, userID, access, tokenHash string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM user_tokens WHERE user_id = ? AND access = ? AND token_hash = ?`,
		userID, access, tokenHash,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *tokensRepo) ListTokens(ctx context.Context, userID string) ([]domain.SessionToken, error) {
	return listTokens(ctx, r.db, userID)
}

func (r *tokensRepo) RemoveToken(ctx context.Context, userID, tokenHash string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM user_tokens WHERE user_id = ? AND token_hash = ?`,
		userID, tokenHash,
	)
	return err
}

func (r *tokensRepo) RemoveAllTokens(ctx context.Context, userID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM user_tokens WHERE user_id = ?`, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *tokensRepo) DeleteTokensBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM user_tokens WHERE created_at < ?`, toMillis(before))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func listTokens(ctx context.Context, db dbtx, userID string) ([]domain.SessionToken, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT access, token_hash, created_at FROM user_tokens WHERE user_id = ? ORDER BY rowid`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SessionToken
	for rows.Next() {
		var (
			t       domain.SessionToken
			created int64
		)
		if err := rows.Scan(&t.Access, &t.TokenHash, &created); err != nil {
			return nil, err
		}
		t.CreatedAt = fromMillis(created)
		out = append(out, t)
	}
	return out, rows.Err()
}
