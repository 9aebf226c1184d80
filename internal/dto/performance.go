package dto

import (
	"github.com/oqrlabs/revenue-manager/internal/entity"
	"github.com/shopspring/decimal"
)

// BrandPerformance is one ranked table row with period-over-period growth.
type BrandPerformance struct {
	Brand         string  `json:"brand"`
	Revenue       float64 `json:"revenue"`
	Orders        int     `json:"orders"`
	RevenueGrowth float64 `json:"rev_growth"`
	OrdersGrowth  float64 `json:"ord_growth"`
}

// PerformanceTotal is the grand-total row across all brands.
type PerformanceTotal struct {
	Revenue       float64 `json:"revenue"`
	Orders        int     `json:"orders"`
	RevenueGrowth float64 `json:"rev_growth"`
	OrdersGrowth  float64 `json:"ord_growth"`
}

// PerformanceMaxima are the normalization denominators for bar widths,
// floored at 1 so an all-zero period never divides by zero.
type PerformanceMaxima struct {
	Revenue float64 `json:"rev"`
	Orders  int     `json:"ord"`
}

// PieSlice is one label/value pair for the proportion chart.
type PieSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"y"`
}

// SummarizeBrandPerformance turns raw per-brand sums into the ranked
// table, grand total, bar maxima and pie data. Missing or null numerics
// coerce to zero; the row stays in the table.
func SummarizeBrandPerformance(rows []entity.BrandPerformanceRow) ([]BrandPerformance, PerformanceTotal, PerformanceMaxima, []PieSlice) {
	table := make([]BrandPerformance, 0, len(rows))
	pie := make([]PieSlice, 0, len(rows))
	var maxima PerformanceMaxima

	var totalRev, totalPrevRev decimal.Decimal
	var totalOrd, totalPrevOrd int

	for _, row := range rows {
		brand := row.Brand.String
		if !row.Brand.Valid || brand == "" {
			brand = unknownLabel
		}
		rev := nullDecimal(row.Revenue)
		prevRev := nullDecimal(row.PreviousRevenue)
		ord := int(row.Orders.Int64)
		prevOrd := int(row.PreviousOrders.Int64)

		totalRev = totalRev.Add(rev)
		totalPrevRev = totalPrevRev.Add(prevRev)
		totalOrd += ord
		totalPrevOrd += prevOrd

		revF, _ := rev.Float64()
		if revF > maxima.Revenue {
			maxima.Revenue = revF
		}
		if ord > maxima.Orders {
			maxima.Orders = ord
		}

		table = append(table, BrandPerformance{
			Brand:         brand,
			Revenue:       revF,
			Orders:        ord,
			RevenueGrowth: GrowthPct(rev, prevRev),
			OrdersGrowth:  growthPctInt(ord, prevOrd),
		})
		pie = append(pie, PieSlice{Name: brand, Value: revF})
	}

	// Floor of 1 so a zero-only period still renders bars safely.
	if maxima.Revenue == 0 {
		maxima.Revenue = 1
	}
	if maxima.Orders == 0 {
		maxima.Orders = 1
	}

	totalRevF, _ := totalRev.Float64()
	total := PerformanceTotal{
		Revenue:       totalRevF,
		Orders:        totalOrd,
		RevenueGrowth: GrowthPct(totalRev, totalPrevRev),
		OrdersGrowth:  growthPctInt(totalOrd, totalPrevOrd),
	}

	return table, total, maxima, pie
}

func nullDecimal(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
