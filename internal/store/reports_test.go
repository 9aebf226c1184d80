package store

import (
	"testing"
	"time"

	"github.com/oqrlabs/revenue-manager/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPeriodPair(t *testing.T) entity.PeriodPair {
	t.Helper()
	cur, err := entity.NewDateRange(
		time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	pp, err := entity.NewPeriodPair(cur)
	require.NoError(t, err)
	return pp
}

func TestKPIDateArgs(t *testing.T) {
	pp := testPeriodPair(t)
	args := kpiDateArgs(pp)

	require.Len(t, args, dateMarkerCounts[ReportKPI])
	assert.Equal(t, []any{
		"2024-02-10 00:00:00", "2024-02-15 23:59:59",
		"2024-02-10 00:00:00", "2024-02-15 23:59:59",
		"2024-02-04 00:00:00", "2024-02-09 23:59:59",
		"2024-02-04 00:00:00", "2024-02-09 23:59:59",
		"2024-02-04 00:00:00", "2024-02-15 23:59:59",
	}, args)
}

func TestQuantityDateArgs(t *testing.T) {
	pp := testPeriodPair(t)
	args := quantityDateArgs(pp)

	require.Len(t, args, dateMarkerCounts[ReportKPIQuantity])
	assert.Equal(t, []any{
		"2024-02-10 00:00:00", "2024-02-15 23:59:59",
		"2024-02-04 00:00:00", "2024-02-09 23:59:59",
		"2024-02-04 00:00:00", "2024-02-15 23:59:59",
	}, args)
}

func TestCurrentDateArgs(t *testing.T) {
	pp := testPeriodPair(t)
	args := currentDateArgs(pp.Current)

	require.Len(t, args, dateMarkerCounts[ReportHourlyTrend])
	assert.Equal(t, []any{"2024-02-10 00:00:00", "2024-02-15 23:59:59"}, args)
}

func TestShareDateArgs(t *testing.T) {
	pp := testPeriodPair(t)
	args := shareDateArgs(pp.Current)

	require.Len(t, args, dateMarkerCounts[ReportRevenueByBrand])
	assert.Equal(t, []any{
		"2024-02-10 00:00:00", "2024-02-15 23:59:59",
		"2024-02-10 00:00:00", "2024-02-15 23:59:59",
	}, args)
}

func TestBrandPerformanceDateArgs(t *testing.T) {
	pp := testPeriodPair(t)
	assert.Equal(t, kpiDateArgs(pp), brandPerformanceDateArgs(pp))
	assert.Len(t, brandPerformanceDateArgs(pp), dateMarkerCounts[ReportBrandPerformance])
}
