// Package fine derives overdue fines from loan dates and tracks their
// paid/unpaid state.
package fine

import (
	"time"

	"github.com/shopspring/decimal"
)

type Fine struct {
	FineID int64           `json:"fine_id"`
	LoanID int64           `json:"loan_id"`
	Amount decimal.Decimal `json:"amount"`
	Paid   bool            `json:"paid"`
}

// LoanDates is the part of a loan that determines its fine.
type LoanDates struct {
	LoanID  int64
	DueDate time.Time
	DateIn  *time.Time
}

// Summary is a borrower's unpaid balance.
type Summary struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// Settlement reports what a payment marked paid.
type Settlement struct {
	CardID int64           `json:"card_id"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
}

// Outstanding is an unpaid fine with its loan, book and borrower.
type Outstanding struct {
	FineID       int64           `json:"fine_id"`
	LoanID       int64           `json:"loan_id"`
	Amount       decimal.Decimal `json:"amount"`
	ISBN         string          `json:"isbn"`
	Title        string          `json:"title"`
	CardID       int64           `json:"card_id"`
	BorrowerName string          `json:"borrower_name"`
	DateOut      time.Time       `json:"date_out"`
	DueDate      time.Time       `json:"due_date"`
	DateIn       *time.Time      `json:"date_in,omitempty"`
}

// Balance groups the unpaid fines of one borrower.
type Balance struct {
	CardID int64           `json:"card_id"`
	Name   string          `json:"name"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
}
