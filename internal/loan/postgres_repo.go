package loan

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

const openPerBookIndex = "book_loans_one_open_per_book"

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

func loanNotFound(loanID int64) error {
	return apperr.NotFound(apperr.ReasonLoan, "loan %d not found", loanID)
}

func (r *PostgresRepo) CountOpenByBorrower(ctx context.Context, cardID int64) (int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var n int
	err := postgres.Conn(ctx, r.db).QueryRow(ctx,
		`SELECT COUNT(*) FROM book_loans WHERE card_id = $1 AND date_in IS NULL`, cardID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count open loans for card %d: %w", cardID, err)
	}
	return n, nil
}

// openLoans is the projection shared by OpenLoanForBook and FindOpen.
func openLoans() *goqu.SelectDataset {
	return query.From(goqu.T("book_loans").As("bl")).
		Join(goqu.T("books").As("b"), goqu.On(goqu.I("b.isbn").Eq(goqu.I("bl.isbn")))).
		Join(goqu.T("borrowers").As("bor"), goqu.On(goqu.I("bor.card_id").Eq(goqu.I("bl.card_id")))).
		Select("bl.loan_id", "bl.isbn", "b.title", "bl.card_id", "bor.name", "bl.date_out", "bl.due_date").
		Where(goqu.I("bl.date_in").IsNull())
}

func scanOpenLoan(row pgx.Row) (OpenLoan, error) {
	var l OpenLoan
	err := row.Scan(&l.LoanID, &l.ISBN, &l.Title, &l.CardID, &l.BorrowerName, &l.DateOut, &l.DueDate)
	return l, err
}

func (r *PostgresRepo) OpenLoanForBook(ctx context.Context, isbn string) (OpenLoan, bool, error) {
	sql, args, err := openLoans().Where(goqu.I("bl.isbn").Eq(isbn)).ToSQL()
	if err != nil {
		return OpenLoan{}, false, fmt.Errorf("build open loan query: %w", err)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	l, err := scanOpenLoan(postgres.Conn(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return OpenLoan{}, false, nil
		}
		return OpenLoan{}, false, fmt.Errorf("open loan for %s: %w", isbn, err)
	}
	return l, true, nil
}

func (r *PostgresRepo) Insert(ctx context.Context, isbn string, cardID int64, dateOut, dueDate time.Time) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var id int64
	err := postgres.Conn(ctx, r.db).QueryRow(ctx, `
		INSERT INTO book_loans (isbn, card_id, date_out, due_date)
		VALUES ($1, $2, $3, $4)
		RETURNING loan_id`, isbn, cardID, dateOut, dueDate).Scan(&id)
	if err != nil {
		if postgres.IsUniqueViolation(err, openPerBookIndex) {
			return 0, apperr.Conflict(apperr.ReasonAlreadyCheckedOut,
				"checkout failed: book with ISBN '%s' is already checked out", isbn)
		}
		return 0, fmt.Errorf("insert loan: %w", err)
	}
	return id, nil
}

const loanColumns = `loan_id, isbn, card_id, date_out, due_date, date_in`

func scanLoan(row pgx.Row) (Loan, error) {
	var l Loan
	err := row.Scan(&l.LoanID, &l.ISBN, &l.CardID, &l.DateOut, &l.DueDate, &l.DateIn)
	return l, err
}

func (r *PostgresRepo) Get(ctx context.Context, loanID int64) (Loan, error) {
	return r.get(ctx, loanID, `SELECT `+loanColumns+` FROM book_loans WHERE loan_id = $1`)
}

func (r *PostgresRepo) GetForUpdate(ctx context.Context, loanID int64) (Loan, error) {
	return r.get(ctx, loanID, `SELECT `+loanColumns+` FROM book_loans WHERE loan_id = $1 FOR UPDATE`)
}

func (r *PostgresRepo) get(ctx context.Context, loanID int64, sql string) (Loan, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	l, err := scanLoan(postgres.Conn(ctx, r.db).QueryRow(ctx, sql, loanID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Loan{}, loanNotFound(loanID)
		}
		return Loan{}, fmt.Errorf("get loan %d: %w", loanID, err)
	}
	return l, nil
}

// Close sets date_in on an open loan. It reports AlreadyClosed when the loan
// was closed concurrently.
func (r *PostgresRepo) Close(ctx context.Context, loanID int64, dateIn time.Time) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := postgres.Conn(ctx, r.db).Exec(ctx,
		`UPDATE book_loans SET date_in = $2 WHERE loan_id = $1 AND date_in IS NULL`, loanID, dateIn)
	if err != nil {
		return fmt.Errorf("close loan %d: %w", loanID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.AlreadyClosed("loan %d is already checked in", loanID)
	}
	return nil
}

func findOpenSQL(f Filter) (string, []any, error) {
	var p query.Predicates
	p.EqualFold("bl.isbn", f.ISBN)
	if f.CardID != 0 {
		p.Equal("bl.card_id", f.CardID)
	}
	p.Contains("bor.name", f.Name)

	return p.Apply(openLoans()).
		Order(goqu.I("bl.due_date").Asc(), goqu.I("bl.loan_id").Asc()).
		ToSQL()
}

func (r *PostgresRepo) FindOpen(ctx context.Context, f Filter) ([]OpenLoan, error) {
	sql, args, err := findOpenSQL(f)
	if err != nil {
		return nil, fmt.Errorf("build find open query: %w", err)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := postgres.Conn(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("find open loans: %w", err)
	}
	defer rows.Close()

	out := []OpenLoan{}
	for rows.Next() {
		l, err := scanOpenLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan open loan: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
