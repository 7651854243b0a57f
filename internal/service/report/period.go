package report

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
)

const lastMillisecond = int(999 * time.Millisecond)

// ResolveRange returns the inclusive range of the period containing anchor:
// its calendar day, its Sunday-start week, or its calendar month. All
// boundaries are computed in anchor's location.
func ResolveRange(anchor time.Time, granularity report.Granularity) (report.Range, error) {
	switch granularity {
	case report.Daily:
		return report.Range{Start: startOfDay(anchor), End: endOfDay(anchor)}, nil
	case report.Weekly:
		start := startOfWeek(anchor)
		return report.Range{Start: start, End: endOfDay(start.AddDate(0, 0, 6))}, nil
	case report.Monthly:
		return report.Range{Start: startOfMonth(anchor), End: endOfMonth(anchor)}, nil
	default:
		return report.Range{}, fmt.Errorf("%w: %q", report.ErrInvalidGranularity, granularity)
	}
}

// BreakdownWindow returns the period a per-employee breakdown covers: the week
// for the daily view, the month for the weekly view, the year for the monthly view.
func BreakdownWindow(anchor time.Time, granularity report.Granularity) (report.Range, error) {
	switch granularity {
	case report.Daily:
		return ResolveRange(anchor, report.Weekly)
	case report.Weekly:
		return ResolveRange(anchor, report.Monthly)
	case report.Monthly:
		y := anchor.Year()
		loc := anchor.Location()
		return report.Range{
			Start: time.Date(y, time.January, 1, 0, 0, 0, 0, loc),
			End:   time.Date(y, time.December, 31, 23, 59, 59, lastMillisecond, loc),
		}, nil
	default:
		return report.Range{}, fmt.Errorf("%w: %q", report.ErrInvalidGranularity, granularity)
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, lastMillisecond, t.Location())
}

func startOfWeek(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d-int(t.Weekday()), 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

func endOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	// day 0 of the next month normalizes to the last day of this one
	return time.Date(y, m+1, 0, 23, 59, 59, lastMillisecond, t.Location())
}

func daysInMonth(t time.Time) int {
	return endOfMonth(t).Day()
}

// weeksInMonth counts the Sunday-start calendar weeks that overlap t's month.
func weeksInMonth(t time.Time) int {
	end := endOfMonth(t)
	n := 0
	for cur := startOfWeek(startOfMonth(t)); cur.Before(end); cur = cur.AddDate(0, 0, 7) {
		n++
	}
	if minWeeks := (daysInMonth(t) + 6) / 7; n < minWeeks {
		n = minWeeks
	}
	return n
}
