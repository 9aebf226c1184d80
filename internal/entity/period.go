package entity

import (
	"errors"
	"time"
)

// ErrInvalidRange is returned for a reporting range whose end precedes its
// start.
var ErrInvalidRange = errors.New("end date precedes start date")

// DateRange is an inclusive calendar range. From and To are stored at
// midnight; the full-day timestamps are expanded only at query-build time.
type DateRange struct {
	From time.Time
	To   time.Time
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NewDateRange normalizes both bounds to midnight and validates order.
// A single-day range (from == to) is valid.
func NewDateRange(from, to time.Time) (DateRange, error) {
	from, to = dateOnly(from), dateOnly(to)
	if to.Before(from) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{From: from, To: to}, nil
}

// Days returns the inclusive day count of the range, at least 1.
func (r DateRange) Days() int {
	return int(r.To.Sub(r.From).Hours()/24) + 1
}

// StartParam renders the range start as a full-day SQL timestamp.
func (r DateRange) StartParam() string {
	return r.From.Format("2006-01-02") + " 00:00:00"
}

// EndParam renders the range end as a full-day SQL timestamp.
func (r DateRange) EndParam() string {
	return r.To.Format("2006-01-02") + " 23:59:59"
}

// PreviousPeriod returns the adjacent preceding range of equal length: it
// ends the day before From and spans the same number of days.
func (r DateRange) PreviousPeriod() DateRange {
	prevEnd := r.From.AddDate(0, 0, -1)
	prevStart := prevEnd.AddDate(0, 0, -(r.Days() - 1))
	return DateRange{From: prevStart, To: prevEnd}
}

// PeriodPair holds the requested range and its comparison period.
type PeriodPair struct {
	Current  DateRange
	Previous DateRange
}

// NewPeriodPair derives the comparison period from the current range.
func NewPeriodPair(cur DateRange) (PeriodPair, error) {
	if cur.To.Before(cur.From) {
		return PeriodPair{}, ErrInvalidRange
	}
	return PeriodPair{Current: cur, Previous: cur.PreviousPeriod()}, nil
}
