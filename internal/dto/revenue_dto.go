package dto

import "github.com/shopspring/decimal"

// RevenueBucket is one time bucket of the revenue summary, keyed by the
// period granularity (calendar day, ISO week, month, or year).
type RevenueBucket struct {
	Bucket       string          `json:"bucket"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// RevenueComparisonRow aligns a current bucket with the bucket one period
// earlier. PercentChange is 0 by convention when the previous bucket is
// empty.
type RevenueComparisonRow struct {
	CurrentBucket   string          `json:"current_bucket"`
	CurrentRevenue  decimal.Decimal `json:"current_revenue"`
	PreviousBucket  string          `json:"previous_bucket"`
	PreviousRevenue decimal.Decimal `json:"previous_revenue"`
	PercentChange   decimal.Decimal `json:"percent_change"`
}
