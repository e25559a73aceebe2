package loan

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"circulation/internal/catalog"
	"circulation/internal/fine"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=loan

// Repository defines the contract for loan storage.
type Repository interface {
	CountOpenByBorrower(ctx context.Context, cardID int64) (int, error)
	// OpenLoanForBook reports the open loan of isbn, if any.
	OpenLoanForBook(ctx context.Context, isbn string) (OpenLoan, bool, error)
	Insert(ctx context.Context, isbn string, cardID int64, dateOut, dueDate time.Time) (int64, error)
	Get(ctx context.Context, loanID int64) (Loan, error)
	// GetForUpdate locks the loan row; it must run inside a transaction.
	GetForUpdate(ctx context.Context, loanID int64) (Loan, error)
	Close(ctx context.Context, loanID int64, dateIn time.Time) error
	FindOpen(ctx context.Context, f Filter) ([]OpenLoan, error)
}

// Catalog locks the book and borrower rows a checkout depends on.
type Catalog interface {
	LockBook(ctx context.Context, isbn string) (catalog.Book, error)
	LockBorrower(ctx context.Context, cardID int64) (catalog.Borrower, error)
}

// Fines is the part of the fine ledger used by checkout and check-in.
type Fines interface {
	UnpaidSummary(ctx context.Context, cardID int64) (fine.Summary, error)
	Refresh(ctx context.Context, loanID int64) (decimal.Decimal, error)
}
