package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
)

// ========================================
// GRANULARITY & RANGE
// ========================================

type Granularity string

const (
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
)

func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(strings.ToLower(strings.TrimSpace(s))); g {
	case Daily, Weekly, Monthly:
		return g, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGranularity, s)
	}
}

// Range is an inclusive instant range.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether start <= t <= end.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ========================================
// OVERALL REPORT
// ========================================

type OverallGroup struct {
	EmployeeID string                 `json:"-"`
	Name       string                 `json:"name"`
	Count      int                    `json:"count"`
	Timestamps []time.Time            `json:"timestamps"`
	Locations  []*attendance.Location `json:"locations"`
}

// ========================================
// CALENDAR BREAKDOWNS
// ========================================

type DayBucket struct {
	Day     string                  `json:"day"`
	Records []attendance.Attendance `json:"records"`
	Present bool                    `json:"present"`
}

type DailySummary struct {
	TotalDaysPresent int `json:"totalDaysPresent"`
	TotalDays        int `json:"totalDays"`
}

type DailyReport struct {
	Days    []DayBucket  `json:"days"`
	Summary DailySummary `json:"summary"`
}

type WeekBucket struct {
	Week        string                  `json:"week"`
	Records     []attendance.Attendance `json:"records"`
	DaysPresent int                     `json:"daysPresent"`
}

type WeeklySummary struct {
	TotalWeeks       int `json:"totalWeeks"`
	TotalDaysPresent int `json:"totalDaysPresent"`
}

type WeeklyReport struct {
	Weeks   []WeekBucket  `json:"weeks"`
	Summary WeeklySummary `json:"summary"`
}

type MonthBucket struct {
	Month       string                  `json:"month"`
	Records     []attendance.Attendance `json:"records"`
	DaysPresent int                     `json:"daysPresent"`
}

type MonthlySummary struct {
	TotalMonths      int `json:"totalMonths"`
	TotalDaysPresent int `json:"totalDaysPresent"`
}

type MonthlyReport struct {
	Months  []MonthBucket  `json:"months"`
	Summary MonthlySummary `json:"summary"`
}

// ========================================
// STATS
// ========================================

type Stats struct {
	TotalRecords   int     `json:"totalRecords"`
	TotalDays      int     `json:"totalDays"`
	FirstCheckIn   *string `json:"firstCheckIn"`
	LastCheckOut   *string `json:"lastCheckOut"`
	AverageCheckIn *string `json:"averageCheckIn"`
}
