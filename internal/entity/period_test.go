package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewDateRange(t *testing.T) {
	r, err := NewDateRange(day(2024, 2, 10), day(2024, 2, 15))
	require.NoError(t, err)
	assert.Equal(t, day(2024, 2, 10), r.From)
	assert.Equal(t, day(2024, 2, 15), r.To)
	assert.Equal(t, 6, r.Days())

	// time-of-day is discarded
	r, err = NewDateRange(
		time.Date(2024, 2, 10, 15, 30, 45, 0, time.UTC),
		time.Date(2024, 2, 10, 23, 59, 59, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.Equal(t, day(2024, 2, 10), r.From)
	assert.Equal(t, 1, r.Days())

	_, err = NewDateRange(day(2024, 2, 15), day(2024, 2, 10))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestDateRange_Params(t *testing.T) {
	r, err := NewDateRange(day(2024, 2, 10), day(2024, 2, 15))
	require.NoError(t, err)
	assert.Equal(t, "2024-02-10 00:00:00", r.StartParam())
	assert.Equal(t, "2024-02-15 23:59:59", r.EndParam())
}

func TestDateRange_PreviousPeriod(t *testing.T) {
	r, err := NewDateRange(day(2024, 2, 10), day(2024, 2, 15))
	require.NoError(t, err)

	prev := r.PreviousPeriod()
	assert.Equal(t, day(2024, 2, 4), prev.From)
	assert.Equal(t, day(2024, 2, 9), prev.To)
	assert.Equal(t, r.Days(), prev.Days())

	// previous period ends the day before the current one starts
	assert.Equal(t, r.From.AddDate(0, 0, -1), prev.To)
}

func TestDateRange_PreviousPeriod_SingleDay(t *testing.T) {
	r, err := NewDateRange(day(2024, 3, 1), day(2024, 3, 1))
	require.NoError(t, err)

	prev := r.PreviousPeriod()
	assert.Equal(t, day(2024, 2, 29), prev.From)
	assert.Equal(t, day(2024, 2, 29), prev.To)
}

func TestDateRange_PreviousPeriod_MonthBoundary(t *testing.T) {
	r, err := NewDateRange(day(2024, 3, 1), day(2024, 3, 31))
	require.NoError(t, err)

	prev := r.PreviousPeriod()
	assert.Equal(t, day(2024, 1, 31), prev.From)
	assert.Equal(t, day(2024, 2, 29), prev.To)
	assert.Equal(t, 31, prev.Days())
}

func TestNewPeriodPair(t *testing.T) {
	r, err := NewDateRange(day(2024, 2, 10), day(2024, 2, 15))
	require.NoError(t, err)

	pp, err := NewPeriodPair(r)
	require.NoError(t, err)
	assert.Equal(t, r, pp.Current)
	assert.Equal(t, r.PreviousPeriod(), pp.Previous)

	_, err = NewPeriodPair(DateRange{From: day(2024, 2, 15), To: day(2024, 2, 10)})
	assert.ErrorIs(t, err, ErrInvalidRange)
}
