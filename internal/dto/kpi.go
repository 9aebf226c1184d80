package dto

import (
	"github.com/oqrlabs/revenue-manager/internal/entity"
	"github.com/shopspring/decimal"
)

// KPISummary is the card payload for the dashboard header. Values are
// plain numbers so the chart frontend consumes them directly.
type KPISummary struct {
	Revenue        float64 `json:"revenue"`
	Orders         int     `json:"orders"`
	Quantity       int     `json:"quantity"`
	AOV            float64 `json:"aov"`
	RevenueGrowth  float64 `json:"revenue_growth"`
	OrdersGrowth   float64 `json:"orders_growth"`
	QuantityGrowth float64 `json:"quantity_growth"`
	AOVGrowth      float64 `json:"aov_growth"`
	// Pre-formatted card strings, thousands separated.
	RevenueDisplay  string `json:"revenue_display"`
	OrdersDisplay   string `json:"orders_display"`
	QuantityDisplay string `json:"quantity_display"`
	AOVDisplay      string `json:"aov_display"`
}

// GrowthPct is the period-over-period growth rule used everywhere:
// a zero previous value yields +100 when the current value is positive
// (a "new" entry) and 0 otherwise, never a division by zero.
func GrowthPct(current, previous decimal.Decimal) float64 {
	if previous.IsPositive() {
		f, _ := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Float64()
		return f
	}
	if current.IsPositive() {
		return 100
	}
	return 0
}

func growthPctInt(current, previous int) float64 {
	return GrowthPct(decimal.NewFromInt(int64(current)), decimal.NewFromInt(int64(previous)))
}

// BuildKPISummary derives AOV and growth percentages from the raw period
// sums. AOV growth compares the two periods' per-order averages.
func BuildKPISummary(agg entity.KPIAggregate) KPISummary {
	aov := avgOrderValue(agg.CurrentRevenue, agg.CurrentOrders)
	prevAOV := avgOrderValue(agg.PreviousRevenue, agg.PreviousOrders)

	revenue, _ := agg.CurrentRevenue.Float64()
	aovF, _ := aov.Float64()

	return KPISummary{
		Revenue:         revenue,
		Orders:          agg.CurrentOrders,
		Quantity:        agg.CurrentQuantity,
		AOV:             aovF,
		RevenueGrowth:   GrowthPct(agg.CurrentRevenue, agg.PreviousRevenue),
		OrdersGrowth:    growthPctInt(agg.CurrentOrders, agg.PreviousOrders),
		QuantityGrowth:  growthPctInt(agg.CurrentQuantity, agg.PreviousQuantity),
		AOVGrowth:       GrowthPct(aov, prevAOV),
		RevenueDisplay:  FormatCurrency(agg.CurrentRevenue),
		OrdersDisplay:   FormatNumber(int64(agg.CurrentOrders)),
		QuantityDisplay: FormatNumber(int64(agg.CurrentQuantity)),
		AOVDisplay:      FormatCurrency(aov),
	}
}

func avgOrderValue(revenue decimal.Decimal, orders int) decimal.Decimal {
	if orders == 0 {
		return decimal.Zero
	}
	return revenue.Div(decimal.NewFromInt(int64(orders))).Round(2)
}
