package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"circulation/internal/apperr"
	"circulation/internal/platform/postgres"
	"circulation/internal/platform/query"
)

const (
	authorsSubquery = `COALESCE((SELECT array_agg(a.name ORDER BY a.name)
		FROM book_authors ba JOIN authors a ON a.author_id = ba.author_id
		WHERE ba.isbn = b.isbn), '{}')`
	openLoanExists = `EXISTS (SELECT 1 FROM book_loans bl WHERE bl.isbn = b.isbn AND bl.date_in IS NULL)`
	authorMatches  = `EXISTS (SELECT 1 FROM book_authors ba JOIN authors a ON a.author_id = ba.author_id
		WHERE ba.isbn = b.isbn AND a.name ILIKE ?)`
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

func bookNotFound(isbn string) error {
	return apperr.NotFound(apperr.ReasonBook, "book with ISBN '%s' not found", isbn)
}

func borrowerNotFound(cardID int64) error {
	return apperr.NotFound(apperr.ReasonBorrower, "borrower with card ID %d not found", cardID)
}

func (r *PostgresRepo) BookByISBN(ctx context.Context, isbn string) (Book, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var b Book
	err := postgres.Conn(ctx, r.db).QueryRow(ctx, `
		SELECT b.isbn, b.title, `+authorsSubquery+`,
		       CASE WHEN `+openLoanExists+` THEN 'OUT' ELSE 'IN' END
		FROM books b
		WHERE b.isbn = $1`, isbn).Scan(&b.ISBN, &b.Title, &b.Authors, &b.Availability)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, bookNotFound(isbn)
		}
		return Book{}, fmt.Errorf("get book %s: %w", isbn, err)
	}
	return b, nil
}

func (r *PostgresRepo) LockBook(ctx context.Context, isbn string) (Book, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var b Book
	err := postgres.Conn(ctx, r.db).QueryRow(ctx,
		`SELECT isbn, title FROM books WHERE isbn = $1 FOR UPDATE`, isbn).Scan(&b.ISBN, &b.Title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, bookNotFound(isbn)
		}
		return Book{}, fmt.Errorf("lock book %s: %w", isbn, err)
	}
	return b, nil
}

const borrowerColumns = `card_id, ssn, name, address, COALESCE(phone, ''), created_at`

func scanBorrower(row pgx.Row) (Borrower, error) {
	var b Borrower
	err := row.Scan(&b.CardID, &b.SSN, &b.Name, &b.Address, &b.Phone, &b.CreatedAt)
	return b, err
}

func (r *PostgresRepo) BorrowerByCard(ctx context.Context, cardID int64) (Borrower, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	b, err := scanBorrower(postgres.Conn(ctx, r.db).QueryRow(ctx,
		`SELECT `+borrowerColumns+` FROM borrowers WHERE card_id = $1`, cardID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Borrower{}, borrowerNotFound(cardID)
		}
		return Borrower{}, fmt.Errorf("get borrower %d: %w", cardID, err)
	}
	return b, nil
}

func (r *PostgresRepo) LockBorrower(ctx context.Context, cardID int64) (Borrower, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	b, err := scanBorrower(postgres.Conn(ctx, r.db).QueryRow(ctx,
		`SELECT `+borrowerColumns+` FROM borrowers WHERE card_id = $1 FOR UPDATE`, cardID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Borrower{}, borrowerNotFound(cardID)
		}
		return Borrower{}, fmt.Errorf("lock borrower %d: %w", cardID, err)
	}
	return b, nil
}

func (r *PostgresRepo) CreateBorrower(ctx context.Context, nb NewBorrower) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var cardID int64
	err := postgres.Conn(ctx, r.db).QueryRow(ctx, `
		INSERT INTO borrowers (ssn, name, address, phone)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		RETURNING card_id`, nb.SSN, nb.Name, nb.Address, nb.Phone).Scan(&cardID)
	if err != nil {
		if postgres.IsUniqueViolation(err, "borrowers_ssn_key") {
			return 0, apperr.Conflict(apperr.ReasonDuplicateSSN, "a borrower with this SSN already exists")
		}
		return 0, fmt.Errorf("insert borrower: %w", err)
	}
	return cardID, nil
}

func (r *PostgresRepo) UpdateContact(ctx context.Context, cardID int64, address, phone string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := postgres.Conn(ctx, r.db).Exec(ctx, `
		UPDATE borrowers SET address = $2, phone = NULLIF($3, '')
		WHERE card_id = $1`, cardID, address, phone)
	if err != nil {
		return fmt.Errorf("update borrower %d: %w", cardID, err)
	}
	if tag.RowsAffected() == 0 {
		return borrowerNotFound(cardID)
	}
	return nil
}

// searchPredicates builds the WHERE clause shared by the count and page queries.
func searchPredicates(q BookQuery) *query.Predicates {
	var p query.Predicates
	if q.Q != "" {
		pattern := query.ContainsPattern(q.Q)
		p.Add(goqu.Or(
			goqu.I("b.isbn").ILike(pattern),
			goqu.I("b.title").ILike(pattern),
			goqu.L(authorMatches, pattern),
		))
	}
	switch q.Status {
	case StatusAvailable:
		p.Add(goqu.L("NOT " + openLoanExists))
	case StatusCheckedOut:
		p.Add(goqu.L(openLoanExists))
	}
	return &p
}

func searchCountSQL(q BookQuery) (string, []any, error) {
	ds := query.From(goqu.T("books").As("b")).Select(goqu.COUNT(goqu.Star()))
	return searchPredicates(q).Apply(ds).ToSQL()
}

func searchPageSQL(q BookQuery) (string, []any, error) {
	ds := query.From(goqu.T("books").As("b")).
		Select(
			goqu.I("b.isbn"),
			goqu.I("b.title"),
			goqu.L(authorsSubquery).As("authors"),
			goqu.L("CASE WHEN "+openLoanExists+" THEN 'OUT' ELSE 'IN' END").As("availability"),
		)
	return searchPredicates(q).Apply(ds).
		Order(goqu.I("b.title").Asc(), goqu.I("b.isbn").Asc()).
		Limit(uint(q.PageSize)).
		Offset(uint(q.offset())).
		ToSQL()
}

func (r *PostgresRepo) SearchBooks(ctx context.Context, q BookQuery) ([]Book, int, error) {
	q = q.normalized()

	countSQL, countArgs, err := searchCountSQL(q)
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	pageSQL, pageArgs, err := searchPageSQL(q)
	if err != nil {
		return nil, 0, fmt.Errorf("build search query: %w", err)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	db := postgres.Conn(ctx, r.db)

	var total int
	if err := db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	rows, err := db.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("search books: %w", err)
	}
	defer rows.Close()

	books := make([]Book, 0, q.PageSize)
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ISBN, &b.Title, &b.Authors, &b.Availability); err != nil {
			return nil, 0, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("search books: %w", err)
	}
	return books, total, nil
}
