package dto

import (
	"fmt"

	"github.com/oqrlabs/revenue-manager/internal/entity"
)

// HourlyTrend is the 24-slot line-chart payload. Every hour of the day is
// present; hours the query returned no row for hold zeros.
type HourlyTrend struct {
	Labels  []string  `json:"labels"`
	Revenue []float64 `json:"revenue"`
	Orders  []int     `json:"orders"`
}

// HourlyFrame zero-fills the sparse hourly rows into a full 24-hour frame.
// Rows with an hour outside 0-23 are dropped.
func HourlyFrame(rows []entity.HourlyPoint) HourlyTrend {
	t := HourlyTrend{
		Labels:  make([]string, 24),
		Revenue: make([]float64, 24),
		Orders:  make([]int, 24),
	}
	for h := 0; h < 24; h++ {
		t.Labels[h] = fmt.Sprintf("%d:00", h)
	}
	for _, row := range rows {
		if row.Hour < 0 || row.Hour > 23 {
			continue
		}
		rev, _ := row.Revenue.Float64()
		t.Revenue[row.Hour] = rev
		t.Orders[row.Hour] = row.Orders
	}
	return t
}

// StatusSlice is one label/count pair of the order status distribution.
type StatusSlice struct {
	Label  string `json:"label"`
	Orders int    `json:"orders"`
}

// StatusBreakdown maps null or blank status values to "Unknown" before
// they reach the UI.
func StatusBreakdown(rows []entity.StatusCount) []StatusSlice {
	out := make([]StatusSlice, 0, len(rows))
	for _, row := range rows {
		label := row.Status.String
		if !row.Status.Valid || label == "" {
			label = unknownLabel
		}
		out = append(out, StatusSlice{Label: label, Orders: row.Orders})
	}
	return out
}
