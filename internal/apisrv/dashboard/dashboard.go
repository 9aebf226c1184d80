// Package dashboard assembles the B2C revenue & orders overview from the
// report store, applying the period math and TTL caching in front of it.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/oqrlabs/revenue-manager/internal/cache"
	"github.com/oqrlabs/revenue-manager/internal/dependency"
	"github.com/oqrlabs/revenue-manager/internal/dto"
	"github.com/oqrlabs/revenue-manager/internal/entity"
)

// Config holds the dashboard-level settings.
type Config struct {
	// Platforms is the static platform list offered in the filter UI.
	Platforms []string `mapstructure:"platforms"`
	// ProvinceLimit caps the province ranking, default 20.
	ProvinceLimit int `mapstructure:"province_limit"`
}

// Server computes dashboard payloads. All reports of one request are
// derived from a single period/filter snapshot captured up front.
type Server struct {
	c        *Config
	cacheCfg cache.Config
	repo     dependency.Repository
	store    *cache.Store
}

func New(c *Config, cacheCfg cache.Config, repo dependency.Repository, store *cache.Store) *Server {
	if cacheCfg.DataTTL <= 0 {
		cacheCfg.DataTTL = cache.DefaultDataTTL
	}
	if cacheCfg.OptionsTTL <= 0 {
		cacheCfg.OptionsTTL = cache.DefaultOptionsTTL
	}
	return &Server{c: c, cacheCfg: cacheCfg, repo: repo, store: store}
}

// OverviewRequest is the raw UI/API input: calendar dates plus the four
// multi-select filters. Unset dates default to today.
type OverviewRequest struct {
	Start     string
	End       string
	Brands    []string
	Platforms []string
	Shops     []string
	Statuses  []string
}

// PeriodInfo echoes the resolved current and previous ranges back to the UI.
type PeriodInfo struct {
	Start         string `json:"start"`
	End           string `json:"end"`
	PreviousStart string `json:"previous_start"`
	PreviousEnd   string `json:"previous_end"`
}

// BrandPerformanceReport bundles the ranked table with its aggregates.
type BrandPerformanceReport struct {
	Table  []dto.BrandPerformance `json:"table"`
	Total  dto.PerformanceTotal   `json:"total"`
	Maxima dto.PerformanceMaxima  `json:"maxima"`
	Pie    []dto.PieSlice         `json:"pie"`
}

// OverviewResponse is the full dashboard payload.
type OverviewResponse struct {
	Period            PeriodInfo              `json:"period"`
	KPI               dto.KPISummary          `json:"kpi"`
	HourlyTrend       dto.HourlyTrend         `json:"hourly_trend"`
	Statuses          []dto.StatusSlice       `json:"statuses"`
	Provinces         []dto.ProvinceEntry     `json:"provinces"`
	BrandPlatform     dto.BrandPlatformMatrix `json:"brand_platform"`
	BrandPerformance  BrandPerformanceReport  `json:"brand_performance"`
	RevenueByBrand    []dto.ShareEntry        `json:"revenue_by_brand"`
	RevenueByPlatform []dto.ShareEntry        `json:"revenue_by_platform"`
}

const dateLayout = "2006-01-02"

// resolveRange parses the requested dates, defaulting both to today, and
// rejects a range that ends before it starts.
func (s *Server) resolveRange(req OverviewRequest) (entity.DateRange, error) {
	today := s.repo.Now()
	from, to := today, today
	var err error
	if req.Start != "" {
		from, err = time.Parse(dateLayout, req.Start)
		if err != nil {
			return entity.DateRange{}, fmt.Errorf("invalid start date %q: %w", req.Start, err)
		}
	}
	if req.End != "" {
		to, err = time.Parse(dateLayout, req.End)
		if err != nil {
			return entity.DateRange{}, fmt.Errorf("invalid end date %q: %w", req.End, err)
		}
	}
	return entity.NewDateRange(from, to)
}

// Overview computes the full dashboard payload for one request snapshot.
// Only invalid input is an error; report failures degrade to empty data
// inside the store.
func (s *Server) Overview(ctx context.Context, req OverviewRequest) (*OverviewResponse, error) {
	cur, err := s.resolveRange(req)
	if err != nil {
		return nil, err
	}
	pp, err := entity.NewPeriodPair(cur)
	if err != nil {
		return nil, err
	}
	sel := entity.FilterSelection{
		Brands:    req.Brands,
		Platforms: req.Platforms,
		Shops:     req.Shops,
		Statuses:  req.Statuses,
	}

	return cache.GetOrCompute(s.store, overviewKey(pp.Current, sel), s.cacheCfg.DataTTL, func() (*OverviewResponse, error) {
		return s.computeOverview(ctx, pp, sel), nil
	})
}

func (s *Server) computeOverview(ctx context.Context, pp entity.PeriodPair, sel entity.FilterSelection) *OverviewResponse {
	reports := s.repo.Reports()

	table, total, maxima, pie := dto.SummarizeBrandPerformance(reports.BrandPerformance(ctx, pp, sel))

	return &OverviewResponse{
		Period: PeriodInfo{
			Start:         pp.Current.From.Format(dateLayout),
			End:           pp.Current.To.Format(dateLayout),
			PreviousStart: pp.Previous.From.Format(dateLayout),
			PreviousEnd:   pp.Previous.To.Format(dateLayout),
		},
		KPI:           dto.BuildKPISummary(reports.KPIAggregate(ctx, pp, sel)),
		HourlyTrend:   dto.HourlyFrame(reports.HourlyTrend(ctx, pp.Current, sel)),
		Statuses:      dto.StatusBreakdown(reports.StatusSummary(ctx, pp.Current, sel)),
		Provinces:     dto.ProvinceList(reports.ProvinceRanking(ctx, pp.Current, sel, s.c.ProvinceLimit)),
		BrandPlatform: dto.PivotBrandPlatform(reports.BrandPlatformRevenue(ctx, pp.Current, sel)),
		BrandPerformance: BrandPerformanceReport{
			Table:  table,
			Total:  total,
			Maxima: maxima,
			Pie:    pie,
		},
		RevenueByBrand:    dto.ShareList(reports.RevenueByBrand(ctx, pp.Current, sel)),
		RevenueByPlatform: dto.ShareList(reports.RevenueByPlatform(ctx, pp.Current, sel)),
	}
}

// FilterOptions returns the dropdown values, cached for the options TTL.
// A failed load degrades to empty lists so the dashboard still renders.
func (s *Server) FilterOptions(ctx context.Context) entity.FilterOptions {
	opts, err := cache.GetOrCompute(s.store, "filter-options", s.cacheCfg.OptionsTTL, func() (entity.FilterOptions, error) {
		return s.repo.Reports().FilterOptions(ctx)
	})
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't load filter options",
			slog.String("err", err.Error()),
		)
		opts = entity.FilterOptions{}
	}
	opts.Platforms = append([]string{}, s.c.Platforms...)
	return opts
}

// overviewKey builds the cache key from the resolved snapshot, so the same
// selection always hits the same entry.
func overviewKey(cur entity.DateRange, sel entity.FilterSelection) string {
	parts := []string{
		"overview",
		cur.From.Format(dateLayout),
		cur.To.Format(dateLayout),
		strings.Join(sel.Brands, ","),
		strings.Join(sel.Platforms, ","),
		strings.Join(sel.Shops, ","),
		strings.Join(sel.Statuses, ","),
	}
	return strings.Join(parts, "|")
}
