package dto

import (
	"testing"

	"github.com/oqrlabs/revenue-manager/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGrowthPct(t *testing.T) {
	d := decimal.NewFromInt

	assert.InDelta(t, 50, GrowthPct(d(150), d(100)), 0.0001)
	assert.InDelta(t, -100, GrowthPct(d(0), d(100)), 0.0001)
	assert.InDelta(t, -50, GrowthPct(d(50), d(100)), 0.0001)

	// zero previous: +100 for anything new, 0 for nothing at all
	assert.InDelta(t, 100, GrowthPct(d(50), d(0)), 0.0001)
	assert.InDelta(t, 0, GrowthPct(d(0), d(0)), 0.0001)
}

func TestBuildKPISummary(t *testing.T) {
	agg := entity.KPIAggregate{
		CurrentRevenue:   decimal.NewFromInt(1000),
		CurrentOrders:    8,
		PreviousRevenue:  decimal.NewFromInt(500),
		PreviousOrders:   10,
		CurrentQuantity:  20,
		PreviousQuantity: 0,
	}

	s := BuildKPISummary(agg)

	assert.InDelta(t, 1000, s.Revenue, 0.0001)
	assert.Equal(t, 8, s.Orders)
	assert.Equal(t, 20, s.Quantity)
	assert.InDelta(t, 125, s.AOV, 0.0001)

	assert.InDelta(t, 100, s.RevenueGrowth, 0.0001)
	assert.InDelta(t, -20, s.OrdersGrowth, 0.0001)
	assert.InDelta(t, 100, s.QuantityGrowth, 0.0001)
	// prev AOV is 50, current 125
	assert.InDelta(t, 150, s.AOVGrowth, 0.0001)

	assert.Equal(t, "1,000", s.RevenueDisplay)
	assert.Equal(t, "8", s.OrdersDisplay)
	assert.Equal(t, "125", s.AOVDisplay)
}

func TestBuildKPISummary_Empty(t *testing.T) {
	s := BuildKPISummary(entity.KPIAggregate{})

	assert.Zero(t, s.Revenue)
	assert.Zero(t, s.Orders)
	assert.Zero(t, s.AOV)
	assert.Zero(t, s.RevenueGrowth)
	assert.Zero(t, s.OrdersGrowth)
	assert.Zero(t, s.QuantityGrowth)
	assert.Zero(t, s.AOVGrowth)
}
