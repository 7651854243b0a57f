package report

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
)

const dateKey = "2006-01-02"

// BuildDaily splits the week containing anchor into seven day buckets,
// Sunday first. Records outside that week are ignored.
func BuildDaily(anchor time.Time, records []attendance.Attendance) report.DailyReport {
	window, _ := BreakdownWindow(anchor, report.Daily)
	loc := anchor.Location()

	buckets := make([][]attendance.Attendance, 7)
	for _, rec := range inWindow(records, window) {
		wd := rec.Timestamp.In(loc).Weekday()
		buckets[wd] = append(buckets[wd], rec)
	}

	days := make([]report.DayBucket, 0, 7)
	present := 0
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		recs := nonNil(buckets[wd])
		days = append(days, report.DayBucket{
			Day:     wd.String(),
			Records: recs,
			Present: len(recs) > 0,
		})
		if len(recs) > 0 {
			present++
		}
	}

	return report.DailyReport{
		Days: days,
		Summary: report.DailySummary{
			TotalDaysPresent: present,
			TotalDays:        len(days),
		},
	}
}

// BuildWeekly splits the month containing anchor into "Week 1".."Week N",
// where day d of the month lands in week (d-1)/7+1.
func BuildWeekly(anchor time.Time, records []attendance.Attendance) report.WeeklyReport {
	window, _ := BreakdownWindow(anchor, report.Weekly)
	loc := anchor.Location()

	n := weeksInMonth(anchor)
	buckets := make([][]attendance.Attendance, n)
	for _, rec := range inWindow(records, window) {
		i := (rec.Timestamp.In(loc).Day() - 1) / 7
		buckets[i] = append(buckets[i], rec)
	}

	weeks := make([]report.WeekBucket, 0, n)
	total := 0
	for i, recs := range buckets {
		days := distinctDays(recs, loc)
		weeks = append(weeks, report.WeekBucket{
			Week:        fmt.Sprintf("Week %d", i+1),
			Records:     nonNil(recs),
			DaysPresent: days,
		})
		total += days
	}

	return report.WeeklyReport{
		Weeks: weeks,
		Summary: report.WeeklySummary{
			TotalWeeks:       len(weeks),
			TotalDaysPresent: total,
		},
	}
}

// BuildMonthly splits the year containing anchor into twelve month buckets.
func BuildMonthly(anchor time.Time, records []attendance.Attendance) report.MonthlyReport {
	window, _ := BreakdownWindow(anchor, report.Monthly)
	loc := anchor.Location()

	buckets := make([][]attendance.Attendance, 12)
	for _, rec := range inWindow(records, window) {
		i := int(rec.Timestamp.In(loc).Month()) - 1
		buckets[i] = append(buckets[i], rec)
	}

	months := make([]report.MonthBucket, 0, 12)
	total := 0
	for i, recs := range buckets {
		days := distinctDays(recs, loc)
		months = append(months, report.MonthBucket{
			Month:       time.Month(i + 1).String(),
			Records:     nonNil(recs),
			DaysPresent: days,
		})
		total += days
	}

	return report.MonthlyReport{
		Months: months,
		Summary: report.MonthlySummary{
			TotalMonths:      len(months),
			TotalDaysPresent: total,
		},
	}
}

// inWindow returns the records inside window in ascending timestamp order.
func inWindow(records []attendance.Attendance, window report.Range) []attendance.Attendance {
	out := make([]attendance.Attendance, 0, len(records))
	for _, rec := range records {
		if window.Contains(rec.Timestamp) {
			out = append(out, rec)
		}
	}
	sortByTimestamp(out)
	return out
}

// distinctDays counts the distinct local calendar dates among records.
func distinctDays(records []attendance.Attendance, loc *time.Location) int {
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		seen[rec.Timestamp.In(loc).Format(dateKey)] = struct{}{}
	}
	return len(seen)
}

func nonNil(records []attendance.Attendance) []attendance.Attendance {
	if records == nil {
		return []attendance.Attendance{}
	}
	return records
}
