package entity

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// KPIAggregate holds the raw period sums the KPI report templates produce.
// Revenue/orders and quantity come from two separate templates against
// different source aggregations; a partial failure leaves the failed half
// at zero while the other half keeps its real values.
type KPIAggregate struct {
	CurrentRevenue   decimal.Decimal
	CurrentOrders    int
	PreviousRevenue  decimal.Decimal
	PreviousOrders   int
	CurrentQuantity  int
	PreviousQuantity int
}

// HourlyPoint is one active hour of the hourly trend. Hours without
// activity are absent from raw rows; the transformer zero-fills them.
type HourlyPoint struct {
	Hour    int             `db:"hour_num"`
	Revenue decimal.Decimal `db:"revenue"`
	Orders  int             `db:"orders"`
}

// StatusCount is one row of the order status distribution. Status stays
// nullable here; the transformer maps null/blank to "Unknown".
type StatusCount struct {
	Status sql.NullString `db:"status_name"`
	Orders int            `db:"orders"`
}

// ProvinceMetric is one row of the province ranking.
type ProvinceMetric struct {
	Province string          `db:"province"`
	Orders   int             `db:"orders"`
	Revenue  decimal.Decimal `db:"revenue"`
}

// BrandPlatformRow is one flat (brand, platform, revenue) cell feeding
// the stacked-chart pivot.
type BrandPlatformRow struct {
	Brand    sql.NullString  `db:"brand"`
	Platform sql.NullString  `db:"platform"`
	Revenue  decimal.Decimal `db:"revenue"`
}

// BrandPerformanceRow is one brand's current and previous period sums.
// All numerics are nullable so partial data never fails the report.
type BrandPerformanceRow struct {
	Brand           sql.NullString      `db:"brand"`
	Revenue         decimal.NullDecimal `db:"revenue"`
	Orders          sql.NullInt64       `db:"orders"`
	PreviousRevenue decimal.NullDecimal `db:"previous_revenue"`
	PreviousOrders  sql.NullInt64       `db:"previous_orders"`
}

// ShareRow is one row of the revenue-by-brand / revenue-by-platform
// breakdowns, with the revenue share of the whole period.
type ShareRow struct {
	Name           string          `db:"name"`
	Revenue        decimal.Decimal `db:"revenue"`
	Orders         int             `db:"orders"`
	RevenuePercent float64         `db:"revenue_percent"`
}
