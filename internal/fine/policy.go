package fine

import (
	"time"

	"github.com/shopspring/decimal"

	"circulation/internal/platform/calendar"
)

// DailyRate is charged for every whole day past the due date.
var DailyRate = decimal.New(25, -2)

// DaysOverdue counts calendar days from due to the return date, or to today
// while the loan is open. It is never negative.
func DaysOverdue(l LoanDates, today time.Time) int {
	end := today
	if l.DateIn != nil {
		end = *l.DateIn
	}
	days := calendar.DaysBetween(l.DueDate, end)
	if days < 0 {
		return 0
	}
	return days
}

// AmountFor returns the fine owed for l as of today.
func AmountFor(l LoanDates, today time.Time) decimal.Decimal {
	days := DaysOverdue(l, today)
	if days == 0 {
		return decimal.Zero
	}
	return DailyRate.Mul(decimal.NewFromInt(int64(days))).Round(2)
}
