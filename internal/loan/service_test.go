package loan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circulation/internal/apperr"
	"circulation/internal/catalog"
	"circulation/internal/fine"
	"circulation/internal/platform/calendar"
	"circulation/internal/platform/logging"
	"circulation/internal/testutil"
)

type fixture struct {
	repo    *MockRepository
	catalog *MockCatalog
	fines   *MockFines
	tx      *testutil.Tx
	svc     *Service
}

func newFixture(t *testing.T, today string) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	f := &fixture{
		repo:    NewMockRepository(ctrl),
		catalog: NewMockCatalog(ctrl),
		fines:   NewMockFines(ctrl),
		tx:      &testutil.Tx{},
	}
	f.svc = NewService(Deps{
		Repo:    f.repo,
		Catalog: f.catalog,
		Fines:   f.fines,
		Tx:      f.tx,
		Clock:   testutil.FixedClock(today),
		Loc:     time.UTC,
		Logger:  logging.Discard(),
	})
	return f
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := calendar.Parse(s)
	require.NoError(t, err)
	return d
}

var (
	nineteen84 = catalog.Book{ISBN: "0451524934", Title: "1984"}
	ann        = catalog.Borrower{CardID: 1001, Name: "Ann Reader"}
)

// expectEligible sets up a checkout that passes every rule up to the insert.
func (f *fixture) expectEligible(openLoans int) {
	f.catalog.EXPECT().LockBook(gomock.Any(), nineteen84.ISBN).Return(nineteen84, nil)
	f.catalog.EXPECT().LockBorrower(gomock.Any(), ann.CardID).Return(ann, nil)
	f.repo.EXPECT().CountOpenByBorrower(gomock.Any(), ann.CardID).Return(openLoans, nil)
	f.fines.EXPECT().UnpaidSummary(gomock.Any(), ann.CardID).Return(fine.Summary{Total: decimal.Zero}, nil)
	f.repo.EXPECT().OpenLoanForBook(gomock.Any(), nineteen84.ISBN).Return(OpenLoan{}, false, nil)
}

func TestService_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("due date is fourteen days out", func(t *testing.T) {
		f := newFixture(t, "2024-01-01")
		f.expectEligible(2)
		f.repo.EXPECT().Insert(gomock.Any(), "0451524934", int64(1001), day(t, "2024-01-01"), day(t, "2024-01-15")).
			Return(int64(77), nil)

		id, err := f.svc.Checkout(ctx, "0-451-52493-4", 1001)
		require.NoError(t, err)
		assert.Equal(t, int64(77), id)
		assert.Equal(t, 1, f.tx.Opened)
	})

	t.Run("book checked before borrower", func(t *testing.T) {
		f := newFixture(t, "2024-01-01")
		f.catalog.EXPECT().LockBook(gomock.Any(), "0000000000").
			Return(catalog.Book{}, apperr.NotFound(apperr.ReasonBook, "book with ISBN '%s' not found", "0000000000"))

		_, err := f.svc.Checkout(ctx, "0000000000", 999999)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
		assert.Equal(t, apperr.ReasonBook, apperr.ReasonOf(err))
	})

	t.Run("unknown borrower", func(t *testing.T) {
		f := newFixture(t, "2024-01-01")
		f.catalog.EXPECT().LockBook(gomock.Any(), nineteen84.ISBN).Return(nineteen84, nil)
		f.catalog.EXPECT().LockBorrower(gomock.Any(), int64(999999)).
			Return(catalog.Borrower{}, apperr.NotFound(apperr.ReasonBorrower, "borrower with card ID %d not found", 999999))

		_, err := f.svc.Checkout(ctx, nineteen84.ISBN, 999999)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
		assert.Equal(t, apperr.ReasonBorrower, apperr.ReasonOf(err))
	})

	t.Run("fourth loan is refused", func(t *testing.T) {
		f := newFixture(t, "2024-01-01")
		f.catalog.EXPECT().LockBook(gomock.Any(), nineteen84.ISBN).Return(nineteen84, nil)
		f.catalog.EXPECT().LockBorrower(gomock.Any(), ann.CardID).Return(ann, nil)
		f.repo.EXPECT().CountOpenByBorrower(gomock.Any(), ann.CardID).Return(3, nil)
		f.fines.EXPECT().UnpaidSummary(gomock.Any(), ann.CardID).Return(fine.Summary{Total: decimal.Zero}, nil)
		f.repo.EXPECT().OpenLoanForBook(gomock.Any(), nineteen84.ISBN).Return(OpenLoan{}, false, nil)

		_, err := f.svc.Checkout(ctx, nineteen84.ISBN, ann.CardID)
		assert.ErrorIs(t, err, apperr.ErrPolicyViolation)
		assert.Equal(t, apperr.ReasonLoanLimit, apperr.ReasonOf(err))
	})

	t.Run("unpaid fines block", func(t *testing.T) {
		f := newFixture(t, "2024-01-01")
		f.catalog.EXPECT().LockBook(gomock.Any(), nineteen84.ISBN).Return(nineteen84, nil)
		f.catalog.EXPECT().LockBorrower(gomock.Any(), ann.CardID).Return(ann, nil)
		f.repo.EXPECT().CountOpenByBorrower(gomock.Any(), ann.CardID).Return(0, nil)
		f.fines.EXPECT().UnpaidSummary(gomock.Any(), ann.CardID).
			Return(fine.Summary{Count: 1, Total: decimal.RequireFromString("10")}, nil)
		f.repo.EXPECT().OpenLoanForBook(gomock.Any(), nineteen84.ISBN).Return(OpenLoan{}, false, nil)

		_, err := f.svc.Checkout(ctx, nineteen84.ISBN, ann.CardID)
		assert.Equal(t, apperr.ReasonUnpaidFines, apperr.ReasonOf(err))
		assert.Contains(t, err.Error(), "$10.00")
	})

	t.Run("held by another borrower", func(t *testing.T) {
		f := newFixture(t, "2024-01-01")
		f.catalog.EXPECT().LockBook(gomock.Any(), nineteen84.ISBN).Return(nineteen84, nil)
		f.catalog.EXPECT().LockBorrower(gomock.Any(), ann.CardID).Return(ann, nil)
		f.repo.EXPECT().CountOpenByBorrower(gomock.Any(), ann.CardID).Return(0, nil)
		f.fines.EXPECT().UnpaidSummary(gomock.Any(), ann.CardID).Return(fine.Summary{Total: decimal.Zero}, nil)
		f.repo.EXPECT().OpenLoanForBook(gomock.Any(), nineteen84.ISBN).
			Return(OpenLoan{CardID: 2002, BorrowerName: "Bob", DueDate: day(t, "2024-01-10")}, true, nil)

		_, err := f.svc.Checkout(ctx, nineteen84.ISBN, ann.CardID)
		assert.ErrorIs(t, err, apperr.ErrConflict)
		assert.Equal(t, apperr.ReasonAlreadyCheckedOut, apperr.ReasonOf(err))
	})

	t.Run("insert race maps to conflict", func(t *testing.T) {
		f := newFixture(t, "2024-01-01")
		f.expectEligible(0)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), apperr.Conflict(apperr.ReasonAlreadyCheckedOut, "already checked out"))

		_, err := f.svc.Checkout(ctx, nineteen84.ISBN, ann.CardID)
		assert.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("invalid input", func(t *testing.T) {
		f := newFixture(t, "2024-01-01")

		_, err := f.svc.Checkout(ctx, "  ", 1001)
		assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
		_, err = f.svc.Checkout(ctx, nineteen84.ISBN, 0)
		assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
		assert.Zero(t, f.tx.Opened)
	})
}

func TestService_FindOpen(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "2024-01-01")

	_, err := f.svc.FindOpen(ctx, Filter{Name: "   "})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	f.repo.EXPECT().FindOpen(gomock.Any(), Filter{ISBN: "080442957X", Name: "ann"}).
		Return([]OpenLoan{{LoanID: 1}}, nil)
	loans, err := f.svc.FindOpen(ctx, Filter{ISBN: "0-8044-2957-x", Name: " ann "})
	require.NoError(t, err)
	assert.Len(t, loans, 1)
}

func TestService_Checkin(t *testing.T) {
	ctx := context.Background()

	t.Run("closes and refreshes fine", func(t *testing.T) {
		f := newFixture(t, "2024-01-21")
		gomock.InOrder(
			f.repo.EXPECT().GetForUpdate(gomock.Any(), int64(5)).Return(Loan{LoanID: 5, DueDate: day(t, "2024-01-15")}, nil),
			f.repo.EXPECT().Close(gomock.Any(), int64(5), day(t, "2024-01-21")).Return(nil),
			f.fines.EXPECT().Refresh(gomock.Any(), int64(5)).Return(decimal.RequireFromString("1.50"), nil),
		)

		require.NoError(t, f.svc.Checkin(ctx, 5))
		assert.Equal(t, 1, f.tx.Opened)
	})

	t.Run("unknown loan", func(t *testing.T) {
		f := newFixture(t, "2024-01-21")
		f.repo.EXPECT().GetForUpdate(gomock.Any(), int64(404)).Return(Loan{}, loanNotFound(404))

		err := f.svc.Checkin(ctx, 404)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
		assert.Equal(t, apperr.ReasonLoan, apperr.ReasonOf(err))
	})

	t.Run("already closed leaves date untouched", func(t *testing.T) {
		f := newFixture(t, "2024-01-21")
		in := day(t, "2024-01-18")
		f.repo.EXPECT().GetForUpdate(gomock.Any(), int64(6)).Return(Loan{LoanID: 6, DateIn: &in}, nil)

		err := f.svc.Checkin(ctx, 6)
		assert.ErrorIs(t, err, apperr.ErrAlreadyClosed)
		assert.Contains(t, err.Error(), "2024-01-18")
	})

	t.Run("fine refresh failure fails the checkin", func(t *testing.T) {
		f := newFixture(t, "2024-01-21")
		boom := errors.New("boom")
		f.repo.EXPECT().GetForUpdate(gomock.Any(), int64(7)).Return(Loan{LoanID: 7}, nil)
		f.repo.EXPECT().Close(gomock.Any(), int64(7), gomock.Any()).Return(nil)
		f.fines.EXPECT().Refresh(gomock.Any(), int64(7)).Return(decimal.Zero, boom)

		assert.ErrorIs(t, f.svc.Checkin(ctx, 7), boom)
	})
}

func TestService_CheckinMany(t *testing.T) {
	ctx := context.Background()

	t.Run("stops at first failure", func(t *testing.T) {
		f := newFixture(t, "2024-01-21")
		in := day(t, "2024-01-20")
		f.repo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(Loan{LoanID: 1}, nil)
		f.repo.EXPECT().Close(gomock.Any(), int64(1), gomock.Any()).Return(nil)
		f.fines.EXPECT().Refresh(gomock.Any(), int64(1)).Return(decimal.Zero, nil)
		f.repo.EXPECT().GetForUpdate(gomock.Any(), int64(2)).Return(Loan{LoanID: 2, DateIn: &in}, nil)

		res, err := f.svc.CheckinMany(ctx, []int64{1, 2, 3})
		require.NoError(t, err)
		require.Len(t, res.Results, 3)
		assert.Equal(t, OutcomeCheckedIn, res.Results[0].Outcome)
		assert.Equal(t, OutcomeFailed, res.Results[1].Outcome)
		assert.ErrorIs(t, res.Results[1].Err(), apperr.ErrAlreadyClosed)
		assert.NotEmpty(t, res.Results[1].Error)
		assert.Equal(t, OutcomeSkipped, res.Results[2].Outcome)
		assert.Equal(t, 1, res.CheckedIn())
		assert.ErrorIs(t, res.Err(), apperr.ErrAlreadyClosed)
		assert.Equal(t, 2, f.tx.Opened)
	})

	t.Run("infrastructure errors are not exposed", func(t *testing.T) {
		f := newFixture(t, "2024-01-21")
		dbErr := errors.New(`pq: relation "book_loans" does not exist`)
		f.repo.EXPECT().GetForUpdate(gomock.Any(), int64(7)).Return(Loan{}, dbErr)

		res, err := f.svc.CheckinMany(ctx, []int64{7, 8})
		require.NoError(t, err)
		assert.Equal(t, OutcomeFailed, res.Results[0].Outcome)
		assert.Equal(t, "internal error", res.Results[0].Error)
		assert.ErrorIs(t, res.Results[0].Err(), dbErr)
		assert.Equal(t, OutcomeSkipped, res.Results[1].Outcome)
	})

	t.Run("all succeed", func(t *testing.T) {
		f := newFixture(t, "2024-01-21")
		for _, id := range []int64{4, 5} {
			f.repo.EXPECT().GetForUpdate(gomock.Any(), id).Return(Loan{LoanID: id}, nil)
			f.repo.EXPECT().Close(gomock.Any(), id, gomock.Any()).Return(nil)
			f.fines.EXPECT().Refresh(gomock.Any(), id).Return(decimal.Zero, nil)
		}

		res, err := f.svc.CheckinMany(ctx, []int64{4, 5})
		require.NoError(t, err)
		assert.NoError(t, res.Err())
		assert.Equal(t, 2, res.CheckedIn())
	})

	t.Run("empty and duplicate lists are rejected up front", func(t *testing.T) {
		f := newFixture(t, "2024-01-21")

		_, err := f.svc.CheckinMany(ctx, nil)
		assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
		_, err = f.svc.CheckinMany(ctx, []int64{1, 2, 1})
		assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
		assert.Zero(t, f.tx.Opened)
	})
}
