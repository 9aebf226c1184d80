package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/oqrlabs/revenue-manager/internal/entity"
)

type (
	// Reports assembles the dashboard report shapes. Implementations must
	// degrade to zero-valued results when a template cannot be resolved
	// or the executor fails; the caller never sees an error for those,
	// only "no data".
	Reports interface {
		// KPIAggregate returns raw current/previous sums for the KPI cards.
		KPIAggregate(ctx context.Context, pp entity.PeriodPair, sel entity.FilterSelection) entity.KPIAggregate
		// HourlyTrend returns one row per hour that had activity.
		HourlyTrend(ctx context.Context, cur entity.DateRange, sel entity.FilterSelection) []entity.HourlyPoint
		// StatusSummary returns order counts per status.
		StatusSummary(ctx context.Context, cur entity.DateRange, sel entity.FilterSelection) []entity.StatusCount
		// ProvinceRanking returns the top provinces; limit is applied after fetch.
		ProvinceRanking(ctx context.Context, cur entity.DateRange, sel entity.FilterSelection, limit int) []entity.ProvinceMetric
		// BrandPlatformRevenue returns flat cells for the stacked-chart pivot.
		BrandPlatformRevenue(ctx context.Context, cur entity.DateRange, sel entity.FilterSelection) []entity.BrandPlatformRow
		// BrandPerformance returns per-brand current and previous period sums.
		BrandPerformance(ctx context.Context, pp entity.PeriodPair, sel entity.FilterSelection) []entity.BrandPerformanceRow
		// RevenueByBrand returns per-brand revenue with period share.
		RevenueByBrand(ctx context.Context, cur entity.DateRange, sel entity.FilterSelection) []entity.ShareRow
		// RevenueByPlatform returns per-platform revenue with period share.
		RevenueByPlatform(ctx context.Context, cur entity.DateRange, sel entity.FilterSelection) []entity.ShareRow
		// FilterOptions loads the distinct values for the filter dropdowns.
		FilterOptions(ctx context.Context) (entity.FilterOptions, error)
	}

	Repository interface {
		Reports() Reports
		Now() time.Time
		Close()
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}
)
