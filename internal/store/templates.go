package store

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/oqrlabs/revenue-manager/internal/dependency"
	"github.com/oqrlabs/revenue-manager/internal/entity"
)

//go:embed queries/*.sql
var queriesFS embed.FS

// ReportName is the logical name of a SQL report template.
type ReportName string

const (
	ReportKPI               ReportName = "order_revenue_aov"
	ReportKPIQuantity       ReportName = "order_quantity"
	ReportHourlyTrend       ReportName = "hourly_trend"
	ReportOrderStatus       ReportName = "order_status"
	ReportProvince          ReportName = "province_revenue"
	ReportBrandPlatform     ReportName = "brand_platform_revenue"
	ReportBrandPerformance  ReportName = "brand_performance"
	ReportRevenueByBrand    ReportName = "revenue_by_brand"
	ReportRevenueByPlatform ReportName = "revenue_by_platform"
)

const filtersPlaceholder = "{filters}"

var (
	// ErrTemplateNotFound means the logical query name is unresolvable.
	// Callers treat it the same as an empty result.
	ErrTemplateNotFound = errors.New("query template not found")
	// ErrParamCountMismatch means the built parameter list does not match
	// the template's marker count. This is a programmer error: the check
	// exists so a misassembled date-pair list fails loudly instead of
	// silently returning wrong numbers.
	ErrParamCountMismatch = errors.New("parameter count mismatch")
)

// dateMarkerCounts declares, per template, how many date parameters the
// orchestrator must supply before the filter parameters.
var dateMarkerCounts = map[ReportName]int{
	ReportKPI:               10,
	ReportKPIQuantity:       6,
	ReportHourlyTrend:       2,
	ReportOrderStatus:       2,
	ReportProvince:          2,
	ReportBrandPlatform:     2,
	ReportBrandPerformance:  10,
	ReportRevenueByBrand:    4,
	ReportRevenueByPlatform: 4,
}

// loadTemplate resolves a logical report name to its SQL text. Every
// template carries exactly one {filters} substitution point.
func loadTemplate(name ReportName) (string, error) {
	b, err := queriesFS.ReadFile(fmt.Sprintf("queries/%s.sql", name))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	sqlText := strings.TrimSpace(string(b))
	if strings.Count(sqlText, filtersPlaceholder) != 1 {
		return "", fmt.Errorf("template %s: expected exactly one %s placeholder", name, filtersPlaceholder)
	}
	return sqlText, nil
}

// renderTemplate substitutes the filter predicate and asserts the final
// positional marker count against the built argument list.
func renderTemplate(name ReportName, sqlText string, dateArgs []any, sel entity.FilterSelection, columns []FilterColumn) (string, []any, error) {
	if want := dateMarkerCounts[name]; len(dateArgs) != want {
		return "", nil, fmt.Errorf("%w: template %s expects %d date params, got %d",
			ErrParamCountMismatch, name, want, len(dateArgs))
	}

	clause, filterArgs := BuildFilterClause(sel, columns)
	query := strings.Replace(sqlText, filtersPlaceholder, clause, 1)

	args := make([]any, 0, len(dateArgs)+len(filterArgs))
	args = append(args, dateArgs...)
	args = append(args, filterArgs...)

	if markers := strings.Count(query, "?"); markers != len(args) {
		return "", nil, fmt.Errorf("%w: template %s has %d markers, built %d args",
			ErrParamCountMismatch, name, markers, len(args))
	}
	return query, args, nil
}

// queryReport loads a template, binds date and filter parameters
// positionally and scans every row into T.
func queryReport[T any](
	ctx context.Context,
	conn dependency.DB,
	name ReportName,
	dateArgs []any,
	sel entity.FilterSelection,
	columns []FilterColumn,
) ([]T, error) {
	sqlText, err := loadTemplate(name)
	if err != nil {
		return nil, err
	}
	query, args, err := renderTemplate(name, sqlText, dateArgs, sel, columns)
	if err != nil {
		return nil, err
	}

	rows, err := conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query context: %w", err)
	}
	defer rows.Close()

	var target []T
	for rows.Next() {
		var t T
		if err := rows.StructScan(&t); err != nil {
			return nil, fmt.Errorf("struct scan: %w", err)
		}
		target = append(target, t)
	}
	return target, nil
}

// queryReportOne is queryReport for single-row aggregate templates.
func queryReportOne[T any](
	ctx context.Context,
	conn dependency.DB,
	name ReportName,
	dateArgs []any,
	sel entity.FilterSelection,
	columns []FilterColumn,
) (T, error) {
	var target T
	sqlText, err := loadTemplate(name)
	if err != nil {
		return target, err
	}
	query, args, err := renderTemplate(name, sqlText, dateArgs, sel, columns)
	if err != nil {
		return target, err
	}

	row := conn.QueryRowxContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		return target, fmt.Errorf("query row: %w", err)
	}
	if err := row.StructScan(&target); err != nil {
		return target, fmt.Errorf("struct scan: %w", err)
	}
	return target, nil
}
