package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"circulation/internal/apperr"
	"circulation/internal/platform/postgres"
)

const accountColumns = `account_id, username, password_hash, card_id, is_admin, created_at`

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func scanAccount(row pgx.Row) (Account, error) {
	var a Account
	err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CardID, &a.IsAdmin, &a.CreatedAt)
	return a, err
}

func (r *PostgresRepo) Create(ctx context.Context, na NewAccount) (Account, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	a, err := scanAccount(postgres.Conn(ctx, r.db).QueryRow(ctx, `
		INSERT INTO accounts (username, password_hash, card_id, is_admin)
		VALUES ($1, $2, $3, $4)
		RETURNING `+accountColumns, na.Username, na.PasswordHash, na.CardID, na.IsAdmin))
	if err != nil {
		if postgres.IsUniqueViolation(err, "accounts_username_key") {
			return Account{}, apperr.Conflict(apperr.ReasonUsernameTaken, "username '%s' is already taken", na.Username)
		}
		return Account{}, fmt.Errorf("insert account: %w", err)
	}
	return a, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Account, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	a, err := scanAccount(postgres.Conn(ctx, r.db).QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE account_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Account{}, apperr.NotFound(apperr.ReasonAccount, "account %d not found", id)
		}
		return Account{}, fmt.Errorf("get account %d: %w", id, err)
	}
	return a, nil
}

func (r *PostgresRepo) GetByUsername(ctx context.Context, username string) (Account, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	a, err := scanAccount(postgres.Conn(ctx, r.db).QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE username = $1`, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Account{}, apperr.NotFound(apperr.ReasonAccount, "account '%s' not found", username)
		}
		return Account{}, fmt.Errorf("get account %s: %w", username, err)
	}
	return a, nil
}

func (r *PostgresRepo) SetCard(ctx context.Context, id int64, cardID int64) error {
	return r.update(ctx, id, `UPDATE accounts SET card_id = $2 WHERE account_id = $1`, cardID)
}

func (r *PostgresRepo) Promote(ctx context.Context, id int64) error {
	return r.update(ctx, id, `UPDATE accounts SET is_admin = TRUE WHERE account_id = $1`)
}

func (r *PostgresRepo) update(ctx context.Context, id int64, sql string, args ...any) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := postgres.Conn(ctx, r.db).Exec(ctx, sql, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("update account %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(apperr.ReasonAccount, "account %d not found", id)
	}
	return nil
}
