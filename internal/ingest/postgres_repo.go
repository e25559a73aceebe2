package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"circulation/internal/platform/postgres"
)

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

func (r *PostgresRepo) ExistingISBNs(ctx context.Context, isbns []string) (map[string]bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := postgres.Conn(ctx, r.db).Query(ctx, `SELECT isbn FROM books WHERE isbn = ANY($1)`, isbns)
	if err != nil {
		return nil, fmt.Errorf("query existing isbns: %w", err)
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var isbn string
		if err := rows.Scan(&isbn); err != nil {
			return nil, fmt.Errorf("scan isbn: %w", err)
		}
		out[isbn] = true
	}
	return out, rows.Err()
}

// InsertBook writes the book, its authors and the links between them. The
// caller provides the transaction.
func (r *PostgresRepo) InsertBook(ctx context.Context, rec Record) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	db := postgres.Conn(ctx, r.db)

	const insertBook = `INSERT INTO books (isbn, title) VALUES ($1, $2) ON CONFLICT (isbn) DO NOTHING`
	if _, err := db.Exec(ctx, insertBook, rec.ISBN, rec.Title); err != nil {
		return fmt.Errorf("insert book %s: %w", rec.ISBN, err)
	}

	const upsertAuthor = `
		INSERT INTO authors (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING author_id`
	const link = `INSERT INTO book_authors (author_id, isbn) VALUES ($1, $2) ON CONFLICT DO NOTHING`

	for _, name := range rec.Authors {
		var authorID int64
		if err := db.QueryRow(ctx, upsertAuthor, name).Scan(&authorID); err != nil {
			return fmt.Errorf("upsert author %q: %w", name, err)
		}
		if _, err := db.Exec(ctx, link, authorID, rec.ISBN); err != nil {
			return fmt.Errorf("link author %q to %s: %w", name, rec.ISBN, err)
		}
	}
	return nil
}
