package report

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
)

// ComputeStats summarizes records in loc. The average check-in is the mean
// local hour of day, formatted like "8.25 hours". With no records every
// optional field stays nil.
func ComputeStats(records []attendance.Attendance, loc *time.Location) report.Stats {
	stats := report.Stats{
		TotalRecords: len(records),
		TotalDays:    distinctDays(records, loc),
	}
	if len(records) == 0 {
		return stats
	}

	first, last := records[0].Timestamp, records[0].Timestamp
	var hours float64
	for _, rec := range records {
		ts := rec.Timestamp.In(loc)
		if ts.Before(first) {
			first = ts
		}
		if ts.After(last) {
			last = ts
		}
		hours += float64(ts.Hour()) + float64(ts.Minute())/60
	}

	firstCheckIn := first.In(loc).Format(time.RFC3339)
	lastCheckOut := last.In(loc).Format(time.RFC3339)
	average := fmt.Sprintf("%.2f hours", hours/float64(len(records)))

	stats.FirstCheckIn = &firstCheckIn
	stats.LastCheckOut = &lastCheckOut
	stats.AverageCheckIn = &average
	return stats
}
