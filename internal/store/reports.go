package store

import (
	"context"

	"log/slog"

	"github.com/oqrlabs/revenue-manager/internal/dependency"
	"github.com/oqrlabs/revenue-manager/internal/entity"
	"github.com/shopspring/decimal"
)

type reportsStore struct {
	*MYSQLStore
}

func (ms *MYSQLStore) Reports() dependency.Reports {
	return &reportsStore{MYSQLStore: ms}
}

// Wide window used when loading filter options: the dropdowns offer every
// value the table has ever seen, not just the selected range.
const (
	optionsWindowStart = "2020-01-01 00:00:00"
	optionsWindowEnd   = "2030-12-31 23:59:59"
)

// Date-argument assembly is kept in pure helpers so the positional layout
// of every template has a single authoritative definition that tests can
// pin down. The order must match the template's markers exactly.

func kpiDateArgs(pp entity.PeriodPair) []any {
	cs, ce := pp.Current.StartParam(), pp.Current.EndParam()
	ps, pe := pp.Previous.StartParam(), pp.Previous.EndParam()
	return []any{
		cs, ce, // revenue CASE, current
		cs, ce, // orders CASE, current
		ps, pe, // revenue CASE, previous
		ps, pe, // orders CASE, previous
		ps, ce, // outer WHERE spanning both periods
	}
}

func quantityDateArgs(pp entity.PeriodPair) []any {
	cs, ce := pp.Current.StartParam(), pp.Current.EndParam()
	ps, pe := pp.Previous.StartParam(), pp.Previous.EndParam()
	return []any{
		cs, ce, // quantity CASE, current
		ps, pe, // quantity CASE, previous
		ps, ce, // outer WHERE spanning both periods
	}
}

func currentDateArgs(cur entity.DateRange) []any {
	return []any{cur.StartParam(), cur.EndParam()}
}

func shareDateArgs(cur entity.DateRange) []any {
	s, e := cur.StartParam(), cur.EndParam()
	return []any{
		s, e, // share denominator subquery
		s, e, // outer WHERE
	}
}

func brandPerformanceDateArgs(pp entity.PeriodPair) []any {
	// Same layout as the KPI template, per brand.
	return kpiDateArgs(pp)
}

func reportFailed(ctx context.Context, report ReportName, err error) {
	slog.Default().ErrorContext(ctx, "report query failed, returning empty result",
		slog.String("report", string(report)),
		slog.String("err", err.Error()),
	)
}

// KPIAggregate merges the revenue/orders template with the separate
// quantity template. The two halves fail independently: a failed half
// stays zero while the other keeps its real values.
func (rs *reportsStore) KPIAggregate(ctx context.Context, pp entity.PeriodPair, sel entity.FilterSelection) entity.KPIAggregate {
	var agg entity.KPIAggregate

	type kpiRow struct {
		CurRevenue  decimal.Decimal `db:"cur_revenue"`
		CurOrders   int             `db:"cur_orders"`
		PrevRevenue decimal.Decimal `db:"prev_revenue"`
		PrevOrders  int             `db:"prev_orders"`
	}
	r, err := queryReportOne[kpiRow](ctx, rs.DB(), ReportKPI, kpiDateArgs(pp), sel, OrderFilterColumns)
	if err != nil {
		reportFailed(ctx, ReportKPI, err)
	} else {
		agg.CurrentRevenue = r.CurRevenue
		agg.CurrentOrders = r.CurOrders
		agg.PreviousRevenue = r.PrevRevenue
		agg.PreviousOrders = r.PrevOrders
	}

	type quantityRow struct {
		CurQuantity  int `db:"cur_quantity"`
		PrevQuantity int `db:"prev_quantity"`
	}
	q, err := queryReportOne[quantityRow](ctx, rs.DB(), ReportKPIQuantity, quantityDateArgs(pp), sel, OrderFilterColumns)
	if err != nil {
		reportFailed(ctx, ReportKPIQuantity, err)
	} else {
		agg.CurrentQuantity = q.CurQuantity
		agg.PreviousQuantity = q.PrevQuantity
	}

	return agg
}

func (rs *reportsStore) HourlyTrend(ctx context.Context, cur entity.DateRange, sel entity.FilterSelection) []entity.HourlyPoint {
	rows, err := queryReport[entity.HourlyPoint](ctx, rs.DB(), ReportHourlyTrend, currentDateArgs(cur), sel, OrderFilterColumns)
	if err != nil {
		reportFailed(ctx, ReportHourlyTrend, err)
		return nil
	}
	return rows
}

func (rs *reportsStore) StatusSummary(ctx context.Context, cur entity.DateRange, sel entity.FilterSelection) []entity.StatusCount {
	rows, err := queryReport[entity.StatusCount](ctx, rs.DB(), ReportOrderStatus, currentDateArgs(cur), sel, OrderFilterColumns)
	if err != nil {
		reportFailed(ctx, ReportOrderStatus, err)
		return nil
	}
	return rows
}

func (rs *reportsStore) ProvinceRanking(ctx context.Context, cur entity.DateRange, sel entity.FilterSelection, limit int) []entity.ProvinceMetric {
	rows, err := queryReport[entity.ProvinceMetric](ctx, rs.DB(), ReportProvince, currentDateArgs(cur), sel, OrderFilterColumns)
	if err != nil {
		reportFailed(ctx, ReportProvince, err)
		return nil
	}
	if limit <= 0 {
		limit = 20
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

func (rs *reportsStore) BrandPlatformRevenue(ctx context.Context, cur entity.DateRange, sel entity.FilterSelection) []entity.BrandPlatformRow {
	rows, err := queryReport[entity.BrandPlatformRow](ctx, rs.DB(), ReportBrandPlatform, currentDateArgs(cur), sel, OrderFilterColumns)
	if err != nil {
		reportFailed(ctx, ReportBrandPlatform, err)
		return nil
	}
	return rows
}

func (rs *reportsStore) BrandPerformance(ctx context.Context, pp entity.PeriodPair, sel entity.FilterSelection) []entity.BrandPerformanceRow {
	rows, err := queryReport[entity.BrandPerformanceRow](ctx, rs.DB(), ReportBrandPerformance, brandPerformanceDateArgs(pp), sel, OrderFilterColumns)
	if err != nil {
		reportFailed(ctx, ReportBrandPerformance, err)
		return nil
	}
	return rows
}

func (rs *reportsStore) RevenueByBrand(ctx context.Context, cur entity.DateRange, sel entity.FilterSelection) []entity.ShareRow {
	rows, err := queryReport[entity.ShareRow](ctx, rs.DB(), ReportRevenueByBrand, shareDateArgs(cur), sel, OrderFilterColumns)
	if err != nil {
		reportFailed(ctx, ReportRevenueByBrand, err)
		return nil
	}
	return rows
}

func (rs *reportsStore) RevenueByPlatform(ctx context.Context, cur entity.DateRange, sel entity.FilterSelection) []entity.ShareRow {
	rows, err := queryReport[entity.ShareRow](ctx, rs.DB(), ReportRevenueByPlatform, shareDateArgs(cur), sel, OrderFilterColumns)
	if err != nil {
		reportFailed(ctx, ReportRevenueByPlatform, err)
		return nil
	}
	return rows
}

type optionRow struct {
	Value string `db:"value"`
}

func (rs *reportsStore) loadOptions(ctx context.Context, column string) ([]string, error) {
	query := `
		SELECT DISTINCT ` + column + ` AS value
		FROM omisell_catalogue
		WHERE OrderDate BETWEEN :from AND :to
		AND ` + column + ` IS NOT NULL AND ` + column + ` <> ''
		ORDER BY value
	`
	rows, err := QueryListNamed[optionRow](ctx, rs.DB(), query, map[string]any{
		"from": optionsWindowStart,
		"to":   optionsWindowEnd,
	})
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(rows))
	for _, r := range rows {
		values = append(values, r.Value)
	}
	return values, nil
}

// FilterOptions loads the distinct brand/shop/status values. Platforms are
// a static configured list and are filled in by the dashboard service.
func (rs *reportsStore) FilterOptions(ctx context.Context) (entity.FilterOptions, error) {
	var opts entity.FilterOptions
	var err error
	if opts.Brands, err = rs.loadOptions(ctx, "brand"); err != nil {
		return entity.FilterOptions{}, err
	}
	if opts.Shops, err = rs.loadOptions(ctx, "ShopName"); err != nil {
		return entity.FilterOptions{}, err
	}
	if opts.Statuses, err = rs.loadOptions(ctx, "StatusName"); err != nil {
		return entity.FilterOptions{}, err
	}
	return opts, nil
}
