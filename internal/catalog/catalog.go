// Package catalog holds the book and borrower identity records consulted by
// the loan and fine ledgers.
package catalog

import (
	"strings"
	"time"
)

// Book availability as shown in search results.
const (
	AvailabilityIn  = "IN"
	AvailabilityOut = "OUT"
)

// Search status filters.
const (
	StatusAll        = "all"
	StatusAvailable  = "available"
	StatusCheckedOut = "checked_out"
)

type Book struct {
	ISBN         string   `json:"isbn"`
	Title        string   `json:"title"`
	Authors      []string `json:"authors"`
	Availability string   `json:"availability,omitempty"`
}

type Borrower struct {
	CardID    int64     `json:"card_id"`
	SSN       string    `json:"ssn"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type NewBorrower struct {
	SSN     string `json:"ssn" validate:"required,min=9,max=20"`
	Name    string `json:"name" validate:"required,max=200"`
	Address string `json:"address" validate:"required,max=500"`
	Phone   string `json:"phone" validate:"omitempty,max=32"`
}

// BookQuery filters SearchBooks. Q matches ISBN, title or any author.
type BookQuery struct {
	Q        string
	Status   string
	Page     int
	PageSize int
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

func (q BookQuery) normalized() BookQuery {
	q.Q = strings.TrimSpace(q.Q)
	switch q.Status {
	case StatusAvailable, StatusCheckedOut:
	default:
		q.Status = StatusAll
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize <= 0 || q.PageSize > MaxPageSize {
		q.PageSize = DefaultPageSize
	}
	return q
}

func (q BookQuery) offset() int {
	return (q.Page - 1) * q.PageSize
}

// NormalizeISBN strips hyphens and spaces and upper-cases a trailing X.
func NormalizeISBN(isbn string) string {
	isbn = strings.TrimSpace(isbn)
	isbn = strings.ReplaceAll(isbn, "-", "")
	isbn = strings.ReplaceAll(isbn, " ", "")
	return strings.ToUpper(isbn)
}

// NormalizeSSN keeps digits only so that 123-45-6789 and 123456789 collide.
func NormalizeSSN(ssn string) string {
	var b strings.Builder
	for _, r := range ssn {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
