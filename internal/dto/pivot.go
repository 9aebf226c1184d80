package dto

import (
	"sort"

	"github.com/oqrlabs/revenue-manager/internal/entity"
	"github.com/shopspring/decimal"
)

// PlatformSeries is one platform's revenue vector, aligned positionally
// with BrandPlatformMatrix.Categories.
type PlatformSeries struct {
	Name string    `json:"name"`
	Data []float64 `json:"data"`
}

// BrandPlatformMatrix is the chart-ready pivot of flat (brand, platform,
// revenue) rows: brands ordered by descending total revenue, platforms
// ordered lexicographically, missing cells zero-filled.
type BrandPlatformMatrix struct {
	Categories []string         `json:"categories"`
	Series     []PlatformSeries `json:"series"`
}

const unknownLabel = "Unknown"

// PivotBrandPlatform reshapes flat rows into the stacked-chart structure.
// Rows are pre-indexed by (brand, platform) so the fill pass is
// O(rows + brands×platforms).
func PivotBrandPlatform(rows []entity.BrandPlatformRow) BrandPlatformMatrix {
	if len(rows) == 0 {
		return BrandPlatformMatrix{Categories: []string{}, Series: []PlatformSeries{}}
	}

	type cellKey struct {
		brand    string
		platform string
	}

	totals := make(map[string]decimal.Decimal)
	cells := make(map[cellKey]decimal.Decimal)
	var brandOrder []string
	platformSet := make(map[string]struct{})

	for _, row := range rows {
		brand := row.Brand.String
		if !row.Brand.Valid || brand == "" {
			brand = unknownLabel
		}
		platform := row.Platform.String
		if !row.Platform.Valid || platform == "" {
			platform = "Other"
		}

		if _, seen := totals[brand]; !seen {
			brandOrder = append(brandOrder, brand)
		}
		totals[brand] = totals[brand].Add(row.Revenue)
		platformSet[platform] = struct{}{}
		cells[cellKey{brand, platform}] = cells[cellKey{brand, platform}].Add(row.Revenue)
	}

	// Descending by total revenue; SliceStable keeps encounter order on ties.
	brands := append([]string{}, brandOrder...)
	sort.SliceStable(brands, func(i, j int) bool {
		return totals[brands[i]].GreaterThan(totals[brands[j]])
	})

	platforms := make([]string, 0, len(platformSet))
	for p := range platformSet {
		platforms = append(platforms, p)
	}
	sort.Strings(platforms)

	series := make([]PlatformSeries, 0, len(platforms))
	for _, platform := range platforms {
		data := make([]float64, len(brands))
		for i, brand := range brands {
			v, _ := cells[cellKey{brand, platform}].Float64()
			data[i] = v
		}
		series = append(series, PlatformSeries{Name: platform, Data: data})
	}

	return BrandPlatformMatrix{Categories: brands, Series: series}
}
