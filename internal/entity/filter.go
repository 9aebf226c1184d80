package entity

// FilterCategory is a dimension the operator can restrict reports by.
type FilterCategory string

const (
	FilterBrand    FilterCategory = "brand"
	FilterPlatform FilterCategory = "platform"
	FilterShop     FilterCategory = "shop"
	FilterStatus   FilterCategory = "status"
)

// SelectAllSentinel is the reserved value the UI sends for "no restriction"
// on a category. A selection containing it behaves as if nothing was picked.
const SelectAllSentinel = "Tất cả"

// FilterSelection is one request's worth of categorical filters. Empty
// slices mean unrestricted; the struct is never mutated after construction.
type FilterSelection struct {
	Brands    []string
	Platforms []string
	Shops     []string
	Statuses  []string
}

// Values returns the selected values for a category.
func (s FilterSelection) Values(c FilterCategory) []string {
	switch c {
	case FilterBrand:
		return s.Brands
	case FilterPlatform:
		return s.Platforms
	case FilterShop:
		return s.Shops
	case FilterStatus:
		return s.Statuses
	}
	return nil
}

// ActiveValues resolves a value list against the select-all sentinel. A
// nil result means the category is unrestricted and must contribute no
// predicate at all, never an empty IN () that would match nothing.
func ActiveValues(values []string) []string {
	var out []string
	for _, v := range values {
		if v == SelectAllSentinel {
			return nil
		}
		out = append(out, v)
	}
	return out
}

// FilterOptions are the distinct values offered to the UI for each category.
type FilterOptions struct {
	Brands    []string `json:"brands"`
	Platforms []string `json:"platforms"`
	Shops     []string `json:"shops"`
	Statuses  []string `json:"statuses"`
}
