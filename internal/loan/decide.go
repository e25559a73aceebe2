package loan

import (
	"circulation/internal/apperr"
	"circulation/internal/catalog"
	"circulation/internal/fine"
	"circulation/internal/platform/calendar"
)

// checkoutState is everything a checkout decision depends on, read under the
// book and borrower row locks.
type checkoutState struct {
	book      catalog.Book
	borrower  catalog.Borrower
	openLoans int
	unpaid    fine.Summary
	current   *OpenLoan
}

// decideCheckout applies the borrowing rules in order and returns the first
// one that fails.
func decideCheckout(s checkoutState) error {
	if s.openLoans >= MaxOpenLoans {
		return apperr.PolicyViolation(apperr.ReasonLoanLimit,
			"checkout failed: %s (card ID %d) already has %d active loans, maximum allowed is %d",
			s.borrower.Name, s.borrower.CardID, s.openLoans, MaxOpenLoans)
	}

	if s.unpaid.Count > 0 {
		return apperr.PolicyViolation(apperr.ReasonUnpaidFines,
			"checkout failed: %s (card ID %d) has %d unpaid fine(s) totaling $%s, pay all fines before checking out",
			s.borrower.Name, s.borrower.CardID, s.unpaid.Count, s.unpaid.Total.StringFixed(2))
	}

	if cur := s.current; cur != nil {
		if cur.CardID == s.borrower.CardID {
			return apperr.Conflict(apperr.ReasonSelfDuplicate,
				"checkout failed: %s already has this book checked out (due %s)",
				s.borrower.Name, cur.DueDate.Format(calendar.Layout))
		}
		return apperr.Conflict(apperr.ReasonAlreadyCheckedOut,
			"checkout failed: '%s' is currently checked out by %s (card ID %d) and is due back on %s",
			s.book.Title, cur.BorrowerName, cur.CardID, cur.DueDate.Format(calendar.Layout))
	}

	return nil
}
