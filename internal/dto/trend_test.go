package dto

import (
	"database/sql"
	"testing"

	"github.com/oqrlabs/revenue-manager/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourlyFrame(t *testing.T) {
	rows := []entity.HourlyPoint{
		{Hour: 3, Revenue: decimal.NewFromInt(100), Orders: 2},
		{Hour: 23, Revenue: decimal.NewFromInt(50), Orders: 1},
	}

	trend := HourlyFrame(rows)

	require.Len(t, trend.Labels, 24)
	require.Len(t, trend.Revenue, 24)
	require.Len(t, trend.Orders, 24)

	assert.Equal(t, "0:00", trend.Labels[0])
	assert.Equal(t, "3:00", trend.Labels[3])
	assert.Equal(t, "23:00", trend.Labels[23])

	assert.InDelta(t, 100, trend.Revenue[3], 0.0001)
	assert.Equal(t, 2, trend.Orders[3])
	assert.InDelta(t, 50, trend.Revenue[23], 0.0001)
	assert.Equal(t, 1, trend.Orders[23])

	// everything else stays zero
	assert.Zero(t, trend.Revenue[0])
	assert.Zero(t, trend.Orders[12])
}

func TestHourlyFrame_Empty(t *testing.T) {
	trend := HourlyFrame(nil)
	require.Len(t, trend.Labels, 24)
	for h := 0; h < 24; h++ {
		assert.Zero(t, trend.Revenue[h])
		assert.Zero(t, trend.Orders[h])
	}
}

func TestHourlyFrame_OutOfRangeDropped(t *testing.T) {
	rows := []entity.HourlyPoint{
		{Hour: -1, Revenue: decimal.NewFromInt(10), Orders: 1},
		{Hour: 24, Revenue: decimal.NewFromInt(10), Orders: 1},
	}

	trend := HourlyFrame(rows)
	for h := 0; h < 24; h++ {
		assert.Zero(t, trend.Revenue[h])
		assert.Zero(t, trend.Orders[h])
	}
}

func TestStatusBreakdown(t *testing.T) {
	rows := []entity.StatusCount{
		{Status: ns("Delivered"), Orders: 10},
		{Status: sql.NullString{}, Orders: 3},
		{Status: ns(""), Orders: 2},
	}

	out := StatusBreakdown(rows)

	require.Len(t, out, 3)
	assert.Equal(t, StatusSlice{Label: "Delivered", Orders: 10}, out[0])
	assert.Equal(t, StatusSlice{Label: "Unknown", Orders: 3}, out[1])
	assert.Equal(t, StatusSlice{Label: "Unknown", Orders: 2}, out[2])
}
