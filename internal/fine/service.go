package fine

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"circulation/internal/apperr"
	"circulation/internal/platform/calendar"
	"circulation/internal/platform/postgres"
)

// Service is the fine ledger.
type Service struct {
	repo      Repository
	borrowers Borrowers
	tx        postgres.Transactor
	clock     calendar.Clock
	loc       *time.Location
}

func NewService(repo Repository, borrowers Borrowers, tx postgres.Transactor, clock calendar.Clock, loc *time.Location) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{repo: repo, borrowers: borrowers, tx: tx, clock: clock, loc: loc}
}

func (s *Service) today() time.Time {
	return calendar.Today(s.clock, s.loc)
}

// Refresh recomputes the fine of one loan and returns the new amount. A zero
// amount never creates a row; an existing row keeps its paid flag.
func (s *Service) Refresh(ctx context.Context, loanID int64) (decimal.Decimal, error) {
	if loanID <= 0 {
		return decimal.Zero, apperr.InvalidArgument("loan id must be positive, got %d", loanID)
	}

	var amount decimal.Decimal
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		l, err := s.repo.LoanDates(ctx, loanID)
		if err != nil {
			return err
		}
		amount = AmountFor(l, s.today())
		return s.store(ctx, loanID, amount)
	})
	if err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

func (s *Service) store(ctx context.Context, loanID int64, amount decimal.Decimal) error {
	if amount.IsZero() {
		return s.repo.ClearAmount(ctx, loanID)
	}
	return s.repo.UpsertAmount(ctx, loanID, amount)
}

// RefreshAll refreshes every closed loan and every overdue open loan in one
// transaction and returns how many loans were examined.
func (s *Service) RefreshAll(ctx context.Context) (int, error) {
	var n int
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		today := s.today()
		loans, err := s.repo.RefreshCandidates(ctx, today)
		if err != nil {
			return err
		}
		for _, l := range loans {
			if err := s.store(ctx, l.LoanID, AmountFor(l, today)); err != nil {
				return err
			}
		}
		n = len(loans)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// UnpaidSummary reports the borrower's unpaid fines. It joins the caller's
// transaction when there is one.
func (s *Service) UnpaidSummary(ctx context.Context, cardID int64) (Summary, error) {
	return s.repo.UnpaidSummary(ctx, cardID)
}

// Pay marks every unpaid fine of the borrower as paid. Paying with nothing
// outstanding succeeds with a zero settlement.
func (s *Service) Pay(ctx context.Context, cardID int64) (Settlement, error) {
	if cardID <= 0 {
		return Settlement{}, apperr.InvalidArgument("card id must be positive, got %d", cardID)
	}

	var st Settlement
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.borrowers.LockBorrower(ctx, cardID); err != nil {
			return err
		}
		var err error
		st, err = s.repo.MarkPaid(ctx, cardID)
		return err
	})
	if err != nil {
		return Settlement{}, err
	}
	return st, nil
}

func (s *Service) ListOutstanding(ctx context.Context) ([]Outstanding, error) {
	return s.repo.Outstanding(ctx, 0)
}

func (s *Service) OutstandingForBorrower(ctx context.Context, cardID int64) ([]Outstanding, error) {
	if cardID <= 0 {
		return nil, apperr.InvalidArgument("card id must be positive, got %d", cardID)
	}
	return s.repo.Outstanding(ctx, cardID)
}

func (s *Service) BalancesByBorrower(ctx context.Context) ([]Balance, error) {
	return s.repo.Balances(ctx)
}
