package fine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"circulation/internal/apperr"
	"circulation/internal/platform/postgres"
	"circulation/internal/platform/query"
)

// unpaid fines with a zero amount are not a debt.
const unpaidCond = `f.paid = FALSE AND f.fine_amt > 0`

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

func (r *PostgresRepo) LoanDates(ctx context.Context, loanID int64) (LoanDates, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	l := LoanDates{LoanID: loanID}
	err := postgres.Conn(ctx, r.db).QueryRow(ctx,
		`SELECT due_date, date_in FROM book_loans WHERE loan_id = $1 FOR UPDATE`, loanID).
		Scan(&l.DueDate, &l.DateIn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return LoanDates{}, apperr.NotFound(apperr.ReasonLoan, "loan %d not found", loanID)
		}
		return LoanDates{}, fmt.Errorf("get loan %d: %w", loanID, err)
	}
	return l, nil
}

func (r *PostgresRepo) RefreshCandidates(ctx context.Context, today time.Time) ([]LoanDates, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := postgres.Conn(ctx, r.db).Query(ctx, `
		SELECT loan_id, due_date, date_in
		FROM book_loans
		WHERE date_in IS NOT NULL OR due_date < $1
		ORDER BY loan_id`, today)
	if err != nil {
		return nil, fmt.Errorf("list refresh candidates: %w", err)
	}
	defer rows.Close()

	var out []LoanDates
	for rows.Next() {
		var l LoanDates
		if err := rows.Scan(&l.LoanID, &l.DueDate, &l.DateIn); err != nil {
			return nil, fmt.Errorf("scan loan: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) UpsertAmount(ctx context.Context, loanID int64, amount decimal.Decimal) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := postgres.Conn(ctx, r.db).Exec(ctx, `
		INSERT INTO fines (loan_id, fine_amt, paid)
		VALUES ($1, $2, FALSE)
		ON CONFLICT (loan_id) DO UPDATE SET fine_amt = EXCLUDED.fine_amt`, loanID, amount)
	if err != nil {
		return fmt.Errorf("upsert fine for loan %d: %w", loanID, err)
	}
	return nil
}

func (r *PostgresRepo) ClearAmount(ctx context.Context, loanID int64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := postgres.Conn(ctx, r.db).Exec(ctx,
		`UPDATE fines SET fine_amt = 0 WHERE loan_id = $1 AND fine_amt <> 0`, loanID)
	if err != nil {
		return fmt.Errorf("clear fine for loan %d: %w", loanID, err)
	}
	return nil
}

func (r *PostgresRepo) UnpaidSummary(ctx context.Context, cardID int64) (Summary, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var s Summary
	err := postgres.Conn(ctx, r.db).QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(f.fine_amt), 0)
		FROM fines f
		JOIN book_loans bl ON bl.loan_id = f.loan_id
		WHERE bl.card_id = $1 AND `+unpaidCond, cardID).Scan(&s.Count, &s.Total)
	if err != nil {
		return Summary{}, fmt.Errorf("unpaid summary for card %d: %w", cardID, err)
	}
	return s, nil
}

func (r *PostgresRepo) MarkPaid(ctx context.Context, cardID int64) (Settlement, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := postgres.Conn(ctx, r.db).Query(ctx, `
		UPDATE fines f SET paid = TRUE
		FROM book_loans bl
		WHERE bl.loan_id = f.loan_id AND bl.card_id = $1 AND `+unpaidCond+`
		RETURNING f.fine_amt`, cardID)
	if err != nil {
		return Settlement{}, fmt.Errorf("pay fines for card %d: %w", cardID, err)
	}
	defer rows.Close()

	s := Settlement{CardID: cardID, Total: decimal.Zero}
	for rows.Next() {
		var amt decimal.Decimal
		if err := rows.Scan(&amt); err != nil {
			return Settlement{}, fmt.Errorf("scan paid fine: %w", err)
		}
		s.Count++
		s.Total = s.Total.Add(amt)
	}
	if err := rows.Err(); err != nil {
		return Settlement{}, fmt.Errorf("pay fines for card %d: %w", cardID, err)
	}
	return s, nil
}

func outstandingSQL(cardID int64) (string, []any, error) {
	var p query.Predicates
	p.Add(goqu.L(unpaidCond))
	if cardID > 0 {
		p.Equal("bl.card_id", cardID)
	}
	ds := query.From(goqu.T("fines").As("f")).
		Join(goqu.T("book_loans").As("bl"), goqu.On(goqu.I("bl.loan_id").Eq(goqu.I("f.loan_id")))).
		Join(goqu.T("books").As("b"), goqu.On(goqu.I("b.isbn").Eq(goqu.I("bl.isbn")))).
		Join(goqu.T("borrowers").As("bor"), goqu.On(goqu.I("bor.card_id").Eq(goqu.I("bl.card_id")))).
		Select("f.fine_id", "f.loan_id", "f.fine_amt", "bl.isbn", "b.title", "bl.card_id", "bor.name",
			"bl.date_out", "bl.due_date", "bl.date_in")
	return p.Apply(ds).Order(goqu.I("bl.card_id").Asc(), goqu.I("f.loan_id").Asc()).ToSQL()
}

// Outstanding lists unpaid fines, for one borrower when cardID > 0.
func (r *PostgresRepo) Outstanding(ctx context.Context, cardID int64) ([]Outstanding, error) {
	sql, args, err := outstandingSQL(cardID)
	if err != nil {
		return nil, fmt.Errorf("build outstanding query: %w", err)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := postgres.Conn(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list outstanding fines: %w", err)
	}
	defer rows.Close()

	out := []Outstanding{}
	for rows.Next() {
		var o Outstanding
		if err := rows.Scan(&o.FineID, &o.LoanID, &o.Amount, &o.ISBN, &o.Title, &o.CardID, &o.BorrowerName,
			&o.DateOut, &o.DueDate, &o.DateIn); err != nil {
			return nil, fmt.Errorf("scan outstanding fine: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Balances(ctx context.Context) ([]Balance, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := postgres.Conn(ctx, r.db).Query(ctx, `
		SELECT bor.card_id, bor.name, COUNT(*), SUM(f.fine_amt)
		FROM fines f
		JOIN book_loans bl ON bl.loan_id = f.loan_id
		JOIN borrowers bor ON bor.card_id = bl.card_id
		WHERE `+unpaidCond+`
		GROUP BY bor.card_id, bor.name
		ORDER BY SUM(f.fine_amt) DESC, bor.card_id`)
	if err != nil {
		return nil, fmt.Errorf("list balances: %w", err)
	}
	defer rows.Close()

	out := []Balance{}
	for rows.Next() {
		var b Balance
		if err := rows.Scan(&b.CardID, &b.Name, &b.Count, &b.Total); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
