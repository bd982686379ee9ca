package timeutil

import (
	"fmt"
	"time"
)

// Date is a civil calendar date without a time or zone component.
// It is comparable and safe to use as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the civil date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a date string in "YYYY-MM-DD" format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return d.Time().Format("2006-01-02")
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Date) Before(o Date) bool {
	return d.Time().Before(o.Time())
}

func (d Date) After(o Date) bool {
	return d.Time().After(o.Time())
}

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// MinDate returns the earlier of a and b.
func MinDate(a, b Date) Date {
	if a.Before(b) {
		return a
	}
	return b
}

// MaxDate returns the later of a and b.
func MaxDate(a, b Date) Date {
	if a.After(b) {
		return a
	}
	return b
}

// Period is a closed date range [Start, End].
type Period struct {
	Start Date
	End   Date
}

// NewPeriod builds a period and rejects an end before the start.
func NewPeriod(start, end Date) (Period, error) {
	if end.Before(start) {
		return Period{}, fmt.Errorf("period end %s is before start %s", end, start)
	}
	return Period{Start: start, End: end}, nil
}

// Days returns the number of calendar days in the period, inclusive.
func (p Period) Days() int {
	return int(p.End.Time().Sub(p.Start.Time()).Hours()/24) + 1
}

// Contains reports whether d falls inside the period.
func (p Period) Contains(d Date) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

// Dates enumerates every date in the period in chronological order.
func (p Period) Dates() []Date {
	out := make([]Date, 0, p.Days())
	for d := p.Start; !d.After(p.End); d = d.AddDays(1) {
		out = append(out, d)
	}
	return out
}

// Clip intersects [start, end] with the period. The second return value is
// false when there is no overlap. A reversed input range is normalized first.
func (p Period) Clip(start, end Date) (Period, bool) {
	if end.Before(start) {
		start, end = end, start
	}
	s := MaxDate(start, p.Start)
	e := MinDate(end, p.End)
	if e.Before(s) {
		return Period{}, false
	}
	return Period{Start: s, End: e}, true
}
