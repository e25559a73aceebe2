package account

import (
	"context"
	"fmt"
	"time"

	"circulation/internal/platform/postgres"
)

func (r *PostgresRepo) Revoke(ctx context.Context, jti string, accountID int64, expiresAt time.Time) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	const q = `
		INSERT INTO revoked_tokens (jti, account_id, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (jti) DO NOTHING`
	if _, err := postgres.Conn(ctx, r.db).Exec(ctx, q, jti, accountID, expiresAt); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (r *PostgresRepo) IsRevoked(ctx context.Context, jti string) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	const q = `
		SELECT EXISTS (
			SELECT 1 FROM revoked_tokens
			WHERE jti = $1 AND expires_at > NOW()
		)`
	var revoked bool
	if err := postgres.Conn(ctx, r.db).QueryRow(ctx, q, jti).Scan(&revoked); err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return revoked, nil
}

// PurgeExpired deletes revocations of tokens that have expired anyway.
func (r *PostgresRepo) PurgeExpired(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := postgres.Conn(ctx, r.db).Exec(ctx, `DELETE FROM revoked_tokens WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("purge revoked tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
