// Package calendar works with calendar dates. A date is a time.Time at
// midnight UTC, which is also how pgx returns DATE columns.
package calendar

import "time"

const Layout = "2006-01-02"

// Clock returns the current instant.
type Clock func() time.Time

// Date returns the calendar date of t as observed in loc.
func Date(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today is Date(clock(), loc).
func Today(clock Clock, loc *time.Location) time.Time {
	return Date(clock(), loc)
}

// AddDays moves a date n calendar days.
func AddDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

// DaysBetween returns to minus from in whole days. Negative when to is earlier.
func DaysBetween(from, to time.Time) int {
	f := normalize(from)
	t := normalize(to)
	return int(t.Sub(f).Hours() / 24)
}

func Parse(s string) (time.Time, error) {
	return time.Parse(Layout, s)
}

func normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
