package service

import (
	"context"
	"testing"
	"time"

	"shopstock/internal/dto"
	"shopstock/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Fixed-result SaleRepository stub ─────────────────────────────────────────

type stubSaleRepo struct {
	sales []model.Sale
}

func (r *stubSaleRepo) CreateTx(_ *gorm.DB, s *model.Sale) error {
	r.sales = append(r.sales, *s)
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	for i := range r.sales {
		if r.sales[i].ID == id {
			return &r.sales[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSaleRepo) List(_ context.Context, _ dto.SaleFilter) ([]model.Sale, error) {
	return r.sales, nil
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

func saleAt(date string, total string) model.Sale {
	t, err := time.Parse("2006-01-02T15:04:05", date)
	if err != nil {
		panic(err)
	}
	return model.Sale{
		ID:         uuid.New(),
		ProductID:  uuid.New(),
		Quantity:   1,
		TotalPrice: decimal.RequireFromString(total),
		SaleDate:   t.UTC(),
		Channel:    model.ChannelRetail,
	}
}

// ── Summary ──────────────────────────────────────────────────────────────────

func TestSummaryDailyBucketsAndOrder(t *testing.T) {
	repo := &stubSaleRepo{sales: []model.Sale{
		saleAt("2024-06-11T09:00:00", "20.00"),
		saleAt("2024-06-10T10:00:00", "100.00"),
		saleAt("2024-06-10T18:30:00", "50.00"),
	}}
	svc := NewRevenueService(repo)

	buckets, err := svc.Summary(context.Background(), "daily")
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	assert.Equal(t, "2024-06-10", buckets[0].Bucket)
	assert.True(t, buckets[0].TotalRevenue.Equal(decimal.RequireFromString("150.00")))
	assert.Equal(t, "2024-06-11", buckets[1].Bucket)
	assert.True(t, buckets[1].TotalRevenue.Equal(decimal.RequireFromString("20.00")))
}

func TestSummaryConservesTotalAcrossPeriods(t *testing.T) {
	repo := &stubSaleRepo{sales: []model.Sale{
		saleAt("2024-01-15T12:00:00", "10.50"),
		saleAt("2024-03-02T12:00:00", "39.99"),
		saleAt("2024-03-02T13:00:00", "0.01"),
		saleAt("2025-07-20T12:00:00", "149.50"),
	}}
	svc := NewRevenueService(repo)
	want := decimal.RequireFromString("200.00")

	for _, period := range []string{"daily", "weekly", "monthly", "annual"} {
		buckets, err := svc.Summary(context.Background(), period)
		require.NoError(t, err)

		sum := decimal.Zero
		for _, b := range buckets {
			sum = sum.Add(b.TotalRevenue)
		}
		assert.True(t, sum.Equal(want), "period %s: total %s, want %s", period, sum, want)
	}
}

func TestSummaryWeeklyUsesISOWeeks(t *testing.T) {
	// 2024-06-10 is a Monday; 2024-06-09 (Sunday) belongs to the prior ISO week.
	repo := &stubSaleRepo{sales: []model.Sale{
		saleAt("2024-06-09T12:00:00", "1.00"),
		saleAt("2024-06-10T12:00:00", "2.00"),
	}}
	svc := NewRevenueService(repo)

	buckets, err := svc.Summary(context.Background(), "weekly")
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, "2024-W23", buckets[0].Bucket)
	assert.Equal(t, "2024-W24", buckets[1].Bucket)
}

func TestSummaryUnknownPeriodFallsBackToDaily(t *testing.T) {
	repo := &stubSaleRepo{sales: []model.Sale{
		saleAt("2024-06-10T12:00:00", "5.00"),
	}}
	svc := NewRevenueService(repo)

	buckets, err := svc.Summary(context.Background(), "fortnightly")
	require.NoError(t, err)
	require.Len(t, buckets, 1)
	assert.Equal(t, "2024-06-10", buckets[0].Bucket, "unknown period buckets by day")
}

func TestSummaryEmptyLedger(t *testing.T) {
	svc := NewRevenueService(&stubSaleRepo{})

	buckets, err := svc.Summary(context.Background(), "monthly")
	require.NoError(t, err)
	assert.Empty(t, buckets)
}

// ── Comparison ───────────────────────────────────────────────────────────────

func TestComparisonDailyPercentChange(t *testing.T) {
	repo := &stubSaleRepo{sales: []model.Sale{
		saleAt("2024-06-10T12:00:00", "100.00"),
		saleAt("2024-06-11T12:00:00", "150.00"),
	}}
	svc := NewRevenueService(repo)

	rows, err := svc.Comparison(context.Background(), "daily")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// First bucket has no previous data: percent change is 0 by convention.
	first := rows[0]
	assert.Equal(t, "2024-06-10", first.CurrentBucket)
	assert.Equal(t, "2024-06-09", first.PreviousBucket)
	assert.True(t, first.PreviousRevenue.IsZero())
	assert.True(t, first.PercentChange.IsZero())

	second := rows[1]
	assert.Equal(t, "2024-06-11", second.CurrentBucket)
	assert.Equal(t, "2024-06-10", second.PreviousBucket)
	assert.True(t, second.PreviousRevenue.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, second.PercentChange.Equal(decimal.RequireFromString("50")),
		"150 vs 100 is +50%%, got %s", second.PercentChange)
}

func TestComparisonNegativeChange(t *testing.T) {
	repo := &stubSaleRepo{sales: []model.Sale{
		saleAt("2024-06-10T12:00:00", "200.00"),
		saleAt("2024-06-11T12:00:00", "50.00"),
	}}
	svc := NewRevenueService(repo)

	rows, err := svc.Comparison(context.Background(), "daily")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[1].PercentChange.Equal(decimal.RequireFromString("-75")))
}

func TestComparisonAnnualUsesFixedShift(t *testing.T) {
	// The annual shift is a fixed 365 days, so a leap year boundary lands the
	// previous bucket where the date arithmetic says, not calendar-year-exact.
	repo := &stubSaleRepo{sales: []model.Sale{
		saleAt("2023-03-01T12:00:00", "80.00"),
		saleAt("2024-02-29T12:00:00", "120.00"),
	}}
	svc := NewRevenueService(repo)

	rows, err := svc.Comparison(context.Background(), "annual")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	cur := rows[1]
	assert.Equal(t, "2024", cur.CurrentBucket)
	assert.Equal(t, "2023", cur.PreviousBucket)
	assert.True(t, cur.PercentChange.Equal(decimal.RequireFromString("50")))
}
