// Package loan is the loan ledger: checkout eligibility, open-loan search and
// check-in.
package loan

import (
	"strings"
	"time"
)

const (
	// MaxOpenLoans is the number of books a borrower may hold at once.
	MaxOpenLoans = 3
	// LoanPeriodDays is the time from checkout to due date.
	LoanPeriodDays = 14
)

type Loan struct {
	LoanID  int64      `json:"loan_id"`
	ISBN    string     `json:"isbn"`
	CardID  int64      `json:"card_id"`
	DateOut time.Time  `json:"date_out"`
	DueDate time.Time  `json:"due_date"`
	DateIn  *time.Time `json:"date_in,omitempty"`
}

func (l Loan) Open() bool {
	return l.DateIn == nil
}

// OpenLoan is an open loan with the book title and borrower name.
type OpenLoan struct {
	LoanID       int64     `json:"loan_id"`
	ISBN         string    `json:"isbn"`
	Title        string    `json:"title"`
	CardID       int64     `json:"card_id"`
	BorrowerName string    `json:"borrower_name"`
	DateOut      time.Time `json:"date_out"`
	DueDate      time.Time `json:"due_date"`
}

// Filter selects open loans. Set criteria are combined with AND.
type Filter struct {
	ISBN   string
	CardID int64
	Name   string
}

func (f Filter) normalized() Filter {
	f.ISBN = strings.TrimSpace(f.ISBN)
	f.Name = strings.TrimSpace(f.Name)
	return f
}

func (f Filter) Empty() bool {
	return f.ISBN == "" && f.CardID == 0 && f.Name == ""
}

type Outcome string

const (
	OutcomeCheckedIn Outcome = "checked_in"
	OutcomeFailed    Outcome = "failed"
	OutcomeSkipped   Outcome = "skipped"
)

type ItemResult struct {
	LoanID  int64   `json:"loan_id"`
	Outcome Outcome `json:"outcome"`
	Error   string  `json:"error,omitempty"`
	err     error
}

// Err returns the failure of a failed item.
func (r ItemResult) Err() error {
	return r.err
}

// BatchResult lists one entry per requested loan id, in request order.
type BatchResult struct {
	Results []ItemResult `json:"results"`
}

// CheckedIn counts the loans closed by the batch.
func (b BatchResult) CheckedIn() int {
	n := 0
	for _, r := range b.Results {
		if r.Outcome == OutcomeCheckedIn {
			n++
		}
	}
	return n
}

// Err returns the error of the failed item, or nil when every loan was checked in.
func (b BatchResult) Err() error {
	for _, r := range b.Results {
		if r.Outcome == OutcomeFailed {
			return r.err
		}
	}
	return nil
}
