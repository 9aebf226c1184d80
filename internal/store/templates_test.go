package store

import (
	"strings"
	"testing"

	"github.com/oqrlabs/revenue-manager/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allReports = []ReportName{
	ReportKPI,
	ReportKPIQuantity,
	ReportHourlyTrend,
	ReportOrderStatus,
	ReportProvince,
	ReportBrandPlatform,
	ReportBrandPerformance,
	ReportRevenueByBrand,
	ReportRevenueByPlatform,
}

func dummyDateArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = "2024-01-01 00:00:00"
	}
	return args
}

func TestLoadTemplate_AllReports(t *testing.T) {
	for _, name := range allReports {
		sqlText, err := loadTemplate(name)
		require.NoError(t, err, "template %s", name)
		assert.Equal(t, 1, strings.Count(sqlText, filtersPlaceholder), "template %s", name)

		// every declared date marker is present in the raw template
		want, ok := dateMarkerCounts[name]
		require.True(t, ok, "template %s has no declared marker count", name)
		assert.Equal(t, want, strings.Count(sqlText, "?"), "template %s", name)
	}
}

func TestLoadTemplate_NotFound(t *testing.T) {
	_, err := loadTemplate(ReportName("no_such_report"))
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestRenderTemplate_NoFilters(t *testing.T) {
	for _, name := range allReports {
		sqlText, err := loadTemplate(name)
		require.NoError(t, err)

		query, args, err := renderTemplate(name, sqlText, dummyDateArgs(dateMarkerCounts[name]), entity.FilterSelection{}, OrderFilterColumns)
		require.NoError(t, err, "template %s", name)
		assert.NotContains(t, query, filtersPlaceholder)
		assert.Equal(t, strings.Count(query, "?"), len(args), "template %s", name)
	}
}

func TestRenderTemplate_WithFilters(t *testing.T) {
	sel := entity.FilterSelection{
		Brands:    []string{"BrandA", "BrandB"},
		Platforms: []string{"Shopee"},
	}

	sqlText, err := loadTemplate(ReportHourlyTrend)
	require.NoError(t, err)

	query, args, err := renderTemplate(ReportHourlyTrend, sqlText, dummyDateArgs(2), sel, OrderFilterColumns)
	require.NoError(t, err)

	assert.Contains(t, query, "brand IN (?, ?)")
	assert.Contains(t, query, "PlatformName IN (?)")
	assert.Len(t, args, 5)

	// date args first, filter args after
	assert.Equal(t, "2024-01-01 00:00:00", args[0])
	assert.Equal(t, "BrandA", args[2])
	assert.Equal(t, "Shopee", args[4])
}

func TestRenderTemplate_ParamCountMismatch(t *testing.T) {
	sqlText, err := loadTemplate(ReportKPI)
	require.NoError(t, err)

	_, _, err = renderTemplate(ReportKPI, sqlText, dummyDateArgs(4), entity.FilterSelection{}, OrderFilterColumns)
	assert.ErrorIs(t, err, ErrParamCountMismatch)

	_, _, err = renderTemplate(ReportKPI, sqlText, dummyDateArgs(12), entity.FilterSelection{}, OrderFilterColumns)
	assert.ErrorIs(t, err, ErrParamCountMismatch)
}
