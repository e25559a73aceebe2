package loan

import (
	"context"
	"log/slog"
	"time"

	"circulation/internal/apperr"
	"circulation/internal/catalog"
	"circulation/internal/platform/calendar"
	"circulation/internal/platform/postgres"
)

// Service is the loan ledger.
type Service struct {
	repo    Repository
	catalog Catalog
	fines   Fines
	tx      postgres.Transactor
	clock   calendar.Clock
	loc     *time.Location
	logger  *slog.Logger
}

type Deps struct {
	Repo    Repository
	Catalog Catalog
	Fines   Fines
	Tx      postgres.Transactor
	Clock   calendar.Clock
	Loc     *time.Location
	Logger  *slog.Logger
}

func NewService(d Deps) *Service {
	if d.Clock == nil {
		d.Clock = time.Now
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return &Service{
		repo:    d.Repo,
		catalog: d.Catalog,
		fines:   d.Fines,
		tx:      d.Tx,
		clock:   d.Clock,
		loc:     d.Loc,
		logger:  d.Logger,
	}
}

func (s *Service) today() time.Time {
	return calendar.Today(s.clock, s.loc)
}

// Checkout lends the book to the borrower and returns the new loan id. All
// checks and the insert share one transaction with the book and borrower rows
// locked.
func (s *Service) Checkout(ctx context.Context, isbn string, cardID int64) (int64, error) {
	isbn = catalog.NormalizeISBN(isbn)
	if isbn == "" {
		return 0, apperr.InvalidArgument("isbn is required")
	}
	if cardID <= 0 {
		return 0, apperr.InvalidArgument("card id must be positive, got %d", cardID)
	}

	var loanID int64
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var (
			st  checkoutState
			err error
		)
		if st.book, err = s.catalog.LockBook(ctx, isbn); err != nil {
			return err
		}
		if st.borrower, err = s.catalog.LockBorrower(ctx, cardID); err != nil {
			return err
		}
		if st.openLoans, err = s.repo.CountOpenByBorrower(ctx, cardID); err != nil {
			return err
		}
		if st.unpaid, err = s.fines.UnpaidSummary(ctx, cardID); err != nil {
			return err
		}
		current, open, err := s.repo.OpenLoanForBook(ctx, isbn)
		if err != nil {
			return err
		}
		if open {
			st.current = &current
		}

		if err := decideCheckout(st); err != nil {
			return err
		}

		out := s.today()
		loanID, err = s.repo.Insert(ctx, isbn, cardID, out, calendar.AddDays(out, LoanPeriodDays))
		return err
	})
	if err != nil {
		return 0, err
	}

	s.logger.InfoContext(ctx, "book checked out", "loan_id", loanID, "isbn", isbn, "card_id", cardID)
	return loanID, nil
}

// FindOpen searches open loans. At least one criterion is required.
func (s *Service) FindOpen(ctx context.Context, f Filter) ([]OpenLoan, error) {
	f = f.normalized()
	if f.Empty() {
		return nil, apperr.InvalidArgument("provide at least one search parameter: isbn, card id or borrower name")
	}
	if f.CardID < 0 {
		return nil, apperr.InvalidArgument("card id must be positive, got %d", f.CardID)
	}
	if f.ISBN != "" {
		f.ISBN = catalog.NormalizeISBN(f.ISBN)
	}
	return s.repo.FindOpen(ctx, f)
}

func (s *Service) Get(ctx context.Context, loanID int64) (Loan, error) {
	if loanID <= 0 {
		return Loan{}, apperr.InvalidArgument("loan id must be positive, got %d", loanID)
	}
	return s.repo.Get(ctx, loanID)
}

// Checkin closes the loan as of today and refreshes its fine in the same
// transaction.
func (s *Service) Checkin(ctx context.Context, loanID int64) error {
	if loanID <= 0 {
		return apperr.InvalidArgument("loan id must be positive, got %d", loanID)
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		l, err := s.repo.GetForUpdate(ctx, loanID)
		if err != nil {
			return err
		}
		if !l.Open() {
			return apperr.AlreadyClosed("loan %d was already checked in on %s", loanID, l.DateIn.Format(calendar.Layout))
		}
		if err := s.repo.Close(ctx, loanID, s.today()); err != nil {
			return err
		}
		_, err = s.fines.Refresh(ctx, loanID)
		return err
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "book checked in", "loan_id", loanID)
	return nil
}

// CheckinMany checks in each loan in its own transaction, in order, and stops
// at the first failure. The result has one entry per id.
func (s *Service) CheckinMany(ctx context.Context, ids []int64) (BatchResult, error) {
	if len(ids) == 0 {
		return BatchResult{}, apperr.InvalidArgument("at least one loan id is required")
	}
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return BatchResult{}, apperr.InvalidArgument("loan id %d is listed more than once", id)
		}
		seen[id] = struct{}{}
	}

	res := BatchResult{Results: make([]ItemResult, 0, len(ids))}
	failed := false
	for _, id := range ids {
		if failed {
			res.Results = append(res.Results, ItemResult{LoanID: id, Outcome: OutcomeSkipped})
			continue
		}
		if err := s.Checkin(ctx, id); err != nil {
			failed = true
			res.Results = append(res.Results, ItemResult{LoanID: id, Outcome: OutcomeFailed, Error: clientMessage(err), err: err})
			continue
		}
		res.Results = append(res.Results, ItemResult{LoanID: id, Outcome: OutcomeCheckedIn})
	}
	return res, nil
}

// clientMessage hides infrastructure errors; Err keeps the full error.
func clientMessage(err error) string {
	if apperr.KindOf(err) == apperr.KindUnknown {
		return "internal error"
	}
	return err.Error()
}
