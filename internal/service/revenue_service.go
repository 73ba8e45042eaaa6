package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"shopstock/internal/dto"
	"shopstock/internal/model"
	"shopstock/internal/repository"

	"github.com/shopspring/decimal"
)

// Period granularities for revenue bucketing. Unrecognized values fall back
// to daily rather than failing.
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodAnnual  = "annual"
)

// RevenueService provides read-only analytics over the sale collection.
// Aggregation happens over a single snapshot read, so a summary is always
// internally consistent even while sales are being written.
type RevenueService interface {
	Summary(ctx context.Context, period string) ([]dto.RevenueBucket, error)
	Comparison(ctx context.Context, period string) ([]dto.RevenueComparisonRow, error)
}

type revenueService struct {
	saleRepo repository.SaleRepository
}

func NewRevenueService(saleRepo repository.SaleRepository) RevenueService {
	return &revenueService{saleRepo: saleRepo}
}

func normalizePeriod(period string) string {
	switch period {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodAnnual:
		return period
	default:
		return PeriodDaily
	}
}

// bucketKey truncates t to the period granularity. The formats sort
// lexicographically in chronological order, which keeps bucket ordering a
// plain string sort.
func bucketKey(period string, t time.Time) string {
	switch period {
	case PeriodWeekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case PeriodMonthly:
		return t.Format("2006-01")
	case PeriodAnnual:
		return t.Format("2006")
	default:
		return t.Format("2006-01-02")
	}
}

// shiftBack moves t one period length into the past. Monthly and annual use
// fixed 30/365 day lengths, an intentional approximation kept for
// comparison alignment rather than calendar-exact arithmetic.
func shiftBack(period string, t time.Time) time.Time {
	switch period {
	case PeriodWeekly:
		return t.AddDate(0, 0, -7)
	case PeriodMonthly:
		return t.AddDate(0, 0, -30)
	case PeriodAnnual:
		return t.AddDate(0, 0, -365)
	default:
		return t.AddDate(0, 0, -1)
	}
}

// aggregate buckets all non-deleted sales for one snapshot. It returns the
// revenue per bucket and the earliest sale timestamp seen in each bucket
// (used as the representative time when shifting for comparisons).
func (s *revenueService) aggregate(ctx context.Context, period string) (map[string]decimal.Decimal, map[string]time.Time, error) {
	sales, err := s.saleRepo.List(ctx, dto.SaleFilter{})
	if err != nil {
		return nil, nil, err
	}
	revenue := make(map[string]decimal.Decimal)
	earliest := make(map[string]time.Time)
	for i := range sales {
		bucketTotals(&sales[i], period, revenue, earliest)
	}
	return revenue, earliest, nil
}

func bucketTotals(sale *model.Sale, period string, revenue map[string]decimal.Decimal, earliest map[string]time.Time) {
	key := bucketKey(period, sale.SaleDate)
	revenue[key] = revenue[key].Add(sale.TotalPrice)
	if first, ok := earliest[key]; !ok || sale.SaleDate.Before(first) {
		earliest[key] = sale.SaleDate
	}
}

func (s *revenueService) Summary(ctx context.Context, period string) ([]dto.RevenueBucket, error) {
	period = normalizePeriod(period)
	revenue, _, err := s.aggregate(ctx, period)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(revenue))
	for k := range revenue {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]dto.RevenueBucket, 0, len(keys))
	for _, k := range keys {
		out = append(out, dto.RevenueBucket{Bucket: k, TotalRevenue: revenue[k]})
	}
	return out, nil
}

func (s *revenueService) Comparison(ctx context.Context, period string) ([]dto.RevenueComparisonRow, error) {
	period = normalizePeriod(period)
	revenue, earliest, err := s.aggregate(ctx, period)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(revenue))
	for k := range revenue {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	hundred := decimal.NewFromInt(100)
	out := make([]dto.RevenueComparisonRow, 0, len(keys))
	for _, k := range keys {
		prevKey := bucketKey(period, shiftBack(period, earliest[k]))
		prev := revenue[prevKey] // zero value when the shifted bucket is empty

		// Percent change is 0 by convention when there is nothing to compare
		// against, never a division by zero.
		pct := decimal.Zero
		if prev.IsPositive() {
			pct = revenue[k].Sub(prev).Div(prev).Mul(hundred)
		}

		out = append(out, dto.RevenueComparisonRow{
			CurrentBucket:   k,
			CurrentRevenue:  revenue[k],
			PreviousBucket:  prevKey,
			PreviousRevenue: prev,
			PercentChange:   pct,
		})
	}
	return out, nil
}
