package store

import (
	"fmt"
	"strings"

	"github.com/oqrlabs/revenue-manager/internal/entity"
)

// FilterColumn binds a filter category to the column name the analytics
// database actually uses. The order of a column set is the order clauses
// appear in generated SQL, so the same selection always renders the same
// predicate and parameter list.
type FilterColumn struct {
	Category entity.FilterCategory
	Column   string
}

// OrderFilterColumns is the column set for order/revenue queries.
var OrderFilterColumns = []FilterColumn{
	{entity.FilterBrand, "brand"},
	{entity.FilterPlatform, "PlatformName"},
	{entity.FilterShop, "ShopName"},
	{entity.FilterStatus, "StatusName"},
}

// InventoryFilterColumns is the restricted set for inventory queries,
// which have no platform or status columns.
var InventoryFilterColumns = []FilterColumn{
	{entity.FilterBrand, "brand"},
	{entity.FilterShop, "ShopName"},
}

// BuildFilterClause renders a selection as a parameter-bound predicate
// fragment plus its ordered argument list. A category that is empty or
// contains the select-all sentinel contributes nothing: unrestricted,
// not "match nothing". Filter args are always appended after the
// date-range args of the query they belong to.
func BuildFilterClause(sel entity.FilterSelection, columns []FilterColumn) (string, []any) {
	var clauses []string
	var args []any
	for _, fc := range columns {
		values := entity.ActiveValues(sel.Values(fc.Category))
		if len(values) == 0 {
			continue
		}
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")
		clauses = append(clauses, fmt.Sprintf("%s IN (%s)", fc.Column, placeholders))
		for _, v := range values {
			args = append(args, v)
		}
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return "AND " + strings.Join(clauses, " AND "), args
}

// BuildFilterClauseInline renders the same predicate with quote-escaped
// literals instead of bound parameters. Only for executors that cannot
// bind IN-list parameters; BuildFilterClause is the supported path.
func BuildFilterClauseInline(sel entity.FilterSelection, columns []FilterColumn) string {
	var clauses []string
	for _, fc := range columns {
		values := entity.ActiveValues(sel.Values(fc.Category))
		if len(values) == 0 {
			continue
		}
		quoted := make([]string, len(values))
		for i, v := range values {
			quoted[i] = "'" + escapeSQLString(v) + "'"
		}
		clauses = append(clauses, fmt.Sprintf("%s IN (%s)", fc.Column, strings.Join(quoted, ", ")))
	}
	if len(clauses) == 0 {
		return ""
	}
	return "AND " + strings.Join(clauses, " AND ")
}

// escapeSQLString doubles single quotes so a value can appear inside a
// quoted SQL literal.
func escapeSQLString(v string) string {
	return strings.ReplaceAll(v, "'", "''")
}
