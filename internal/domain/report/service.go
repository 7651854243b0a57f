package report

import (
	"context"
	"time"
)

// ReportService generates attendance reports. Every method takes the anchor
// time explicitly; the HTTP layer supplies the current time.
type ReportService interface {
	// Overall aggregates every employee's attendance over the period containing now
	Overall(ctx context.Context, granularity Granularity, now time.Time) ([]OverallGroup, error)

	// Daily breaks one employee's current week down by day
	Daily(ctx context.Context, employeeID string, now time.Time) (DailyReport, error)

	// Weekly breaks one employee's current month down by week
	Weekly(ctx context.Context, employeeID string, now time.Time) (WeeklyReport, error)

	// Monthly breaks one employee's current year down by month
	Monthly(ctx context.Context, employeeID string, now time.Time) (MonthlyReport, error)

	// Stats summarizes one employee's check-ins over the period containing now
	Stats(ctx context.Context, employeeID string, granularity Granularity, now time.Time) (Stats, error)
}
