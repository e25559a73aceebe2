package fine

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"circulation/internal/catalog"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=fine

// Repository defines the contract for fine storage.
type Repository interface {
	// LoanDates locks the loan row and returns its dates.
	LoanDates(ctx context.Context, loanID int64) (LoanDates, error)
	// RefreshCandidates returns every closed loan and every open loan due before today.
	RefreshCandidates(ctx context.Context, today time.Time) ([]LoanDates, error)
	// UpsertAmount creates the fine row or overwrites its amount, leaving paid untouched.
	UpsertAmount(ctx context.Context, loanID int64, amount decimal.Decimal) error
	// ClearAmount zeroes an existing fine row and never creates one.
	ClearAmount(ctx context.Context, loanID int64) error
	UnpaidSummary(ctx context.Context, cardID int64) (Summary, error)
	MarkPaid(ctx context.Context, cardID int64) (Settlement, error)
	Outstanding(ctx context.Context, cardID int64) ([]Outstanding, error)
	Balances(ctx context.Context) ([]Balance, error)
}

// Borrowers locks borrower rows owned by the catalog.
type Borrowers interface {
	LockBorrower(ctx context.Context, cardID int64) (catalog.Borrower, error)
}
