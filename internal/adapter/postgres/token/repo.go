// Package token implements the RefreshToken repository using PostgreSQL.
package token

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/reminders-backend/internal/adapter/postgres"
	"github.com/heartmarshall/reminders-backend/internal/domain"
)

const selectColumns = "id, user_id, token_hash, expires_at, created_at, revoked_at"

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new refresh token.
func (r *Repo) Create(ctx context.Context, token *domain.RefreshToken) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, created_at)
		 VALUES ($1, $2, $3, $4, now())`,
		uuid.New(), token.UserID, token.TokenHash, token.ExpiresAt)
	if err != nil {
		return postgres.MapError(err, "refresh_token", uuid.Nil)
	}

	return nil
}

// GetByHash returns an active (non-revoked) refresh token by its hash.
// Returns domain.ErrNotFound if the token does not exist or is revoked.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		"SELECT "+selectColumns+` FROM refresh_tokens
		 WHERE token_hash = $1 AND revoked_at IS NULL`,
		tokenHash)

	t, err := scanToken(row)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}

	return t, nil
}

// RevokeByID revokes a specific refresh token by setting revoked_at.
// Idempotent: revoking an already-revoked token is not an error.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`UPDATE refresh_tokens SET revoked_at = now()
		 WHERE id = $1 AND revoked_at IS NULL`,
		id)
	if err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}

	return nil
}

// RevokeAllByUser revokes all active refresh tokens for the given user.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`UPDATE refresh_tokens SET revoked_at = now()
		 WHERE user_id = $1 AND revoked_at IS NULL`,
		userID)
	if err != nil {
		return postgres.MapError(err, "refresh_token", uuid.Nil)
	}

	return nil
}

// DeleteExpired removes expired and revoked tokens, returning the count.
// Used by the cleanup-tokens command.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM refresh_tokens WHERE expires_at < now() OR revoked_at IS NOT NULL`)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", uuid.Nil)
	}

	return int(tag.RowsAffected()), nil
}

func scanToken(row pgx.Row) (*domain.RefreshToken, error) {
	var t domain.RefreshToken
	err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.RevokedAt)
	if err != nil {
		return nil, fmt.Errorf("scan refresh token: %w", err)
	}
	return &t, nil
}
