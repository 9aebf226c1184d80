package dto

import "github.com/oqrlabs/revenue-manager/internal/entity"

// ProvinceEntry is one row of the province ranking table.
type ProvinceEntry struct {
	Name    string  `json:"name"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

func ProvinceList(rows []entity.ProvinceMetric) []ProvinceEntry {
	out := make([]ProvinceEntry, 0, len(rows))
	for _, row := range rows {
		rev, _ := row.Revenue.Float64()
		out = append(out, ProvinceEntry{Name: row.Province, Orders: row.Orders, Revenue: rev})
	}
	return out
}

// ShareEntry is one row of the revenue-by-brand / revenue-by-platform
// breakdowns.
type ShareEntry struct {
	Name           string  `json:"name"`
	Revenue        float64 `json:"revenue"`
	Orders         int     `json:"orders"`
	RevenuePercent float64 `json:"revenue_percent"`
}

func ShareList(rows []entity.ShareRow) []ShareEntry {
	out := make([]ShareEntry, 0, len(rows))
	for _, row := range rows {
		rev, _ := row.Revenue.Float64()
		out = append(out, ShareEntry{
			Name:           row.Name,
			Revenue:        rev,
			Orders:         row.Orders,
			RevenuePercent: row.RevenuePercent,
		})
	}
	return out
}
