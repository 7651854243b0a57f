package report

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday 13 March 2024, inside the week of Sunday 10 March.
var anchor = time.Date(2024, time.March, 13, 14, 30, 0, 0, time.UTC)

func at(month time.Month, day, hour int) time.Time {
	return time.Date(2024, month, day, hour, 0, 0, 0, time.UTC)
}

func record(id, name string, ts time.Time) attendance.Attendance {
	return attendance.Attendance{
		ID:           fmt.Sprintf("%s-%d", id, ts.Unix()),
		EmployeeID:   id,
		EmployeeName: name,
		Timestamp:    ts,
	}
}

// ===== RANGE RESOLUTION =====

func TestResolveRange(t *testing.T) {
	cases := []struct {
		granularity report.Granularity
		wantStart   time.Time
		wantEnd     time.Time
	}{
		{report.Daily, at(time.March, 13, 0), time.Date(2024, time.March, 13, 23, 59, 59, 999000000, time.UTC)},
		{report.Weekly, at(time.March, 10, 0), time.Date(2024, time.March, 16, 23, 59, 59, 999000000, time.UTC)},
		{report.Monthly, at(time.March, 1, 0), time.Date(2024, time.March, 31, 23, 59, 59, 999000000, time.UTC)},
	}
	for _, c := range cases {
		t.Run(string(c.granularity), func(t *testing.T) {
			rng, err := ResolveRange(anchor, c.granularity)
			require.NoError(t, err)
			assert.True(t, c.wantStart.Equal(rng.Start), "start = %s", rng.Start)
			assert.True(t, c.wantEnd.Equal(rng.End), "end = %s", rng.End)
		})
	}
}

func TestResolveRange_InvalidGranularity(t *testing.T) {
	_, err := ResolveRange(anchor, report.Granularity("yearly"))
	assert.ErrorIs(t, err, report.ErrInvalidGranularity)
}

func TestResolveRange_ContainsAnchorEveryHourOfYear(t *testing.T) {
	spans := map[report.Granularity]func(start time.Time) time.Duration{
		report.Daily:   func(start time.Time) time.Duration { return 24 * time.Hour },
		report.Weekly:  func(start time.Time) time.Duration { return 7 * 24 * time.Hour },
		report.Monthly: func(start time.Time) time.Duration { return start.AddDate(0, 1, 0).Sub(start) },
	}

	for cur := at(time.January, 1, 0); cur.Year() == 2024; cur = cur.Add(7 * time.Hour) {
		for g, span := range spans {
			rng, err := ResolveRange(cur, g)
			require.NoError(t, err)
			assert.False(t, cur.Before(rng.Start), "%s %s starts after anchor", g, cur)
			assert.False(t, cur.After(rng.End), "%s %s ends before anchor", g, cur)
			assert.Equal(t, span(rng.Start)-time.Millisecond, rng.End.Sub(rng.Start), "%s %s", g, cur)
		}
	}
}

func TestResolveRange_WeekStartsOnSunday(t *testing.T) {
	// Sunday is its own week start, Saturday belongs to the preceding Sunday.
	sunday := at(time.March, 10, 0)
	saturday := time.Date(2024, time.March, 16, 23, 0, 0, 0, time.UTC)

	for _, ts := range []time.Time{sunday, saturday} {
		rng, err := ResolveRange(ts, report.Weekly)
		require.NoError(t, err)
		assert.Equal(t, time.Sunday, rng.Start.Weekday())
		assert.True(t, sunday.Equal(rng.Start))
	}
}

func TestResolveRange_UsesAnchorLocation(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	// 20:00 UTC on the 13th is already the 14th in Jakarta.
	rng, err := ResolveRange(time.Date(2024, time.March, 13, 20, 0, 0, 0, time.UTC).In(jakarta), report.Daily)
	require.NoError(t, err)
	assert.Equal(t, 14, rng.Start.Day())
	assert.Equal(t, jakarta, rng.Start.Location())
}

func TestWeeksInMonth(t *testing.T) {
	cases := []struct {
		month time.Time
		want  int
	}{
		{time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC), 4}, // starts Sunday, 28 days
		{time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), 5},
		{time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), 6}, // Friday 1st, 31 days
		{time.Date(2024, time.September, 10, 0, 0, 0, 0, time.UTC), 5},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, weeksInMonth(c.month), c.month.Format("2006-01"))
	}
}

// ===== AGGREGATE =====

func TestAggregate_AliceAndBob(t *testing.T) {
	rng, err := ResolveRange(anchor, report.Weekly)
	require.NoError(t, err)

	records := []attendance.Attendance{
		record("e-bob", "Bob", at(time.March, 11, 10)),
		record("e-alice", "Alice", at(time.March, 12, 9)),
		record("e-alice", "Alice", at(time.March, 11, 9)),
	}

	groups := Aggregate(records, nil, rng)

	require.Len(t, groups, 2)
	assert.Equal(t, "Alice", groups[0].Name)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, []time.Time{at(time.March, 11, 9), at(time.March, 12, 9)}, groups[0].Timestamps)
	assert.Equal(t, "Bob", groups[1].Name)
	assert.Equal(t, 1, groups[1].Count)
}

func TestAggregate_CountsOnlyRecordsInRange(t *testing.T) {
	rng, err := ResolveRange(anchor, report.Daily)
	require.NoError(t, err)

	records := []attendance.Attendance{
		record("e1", "Alice", rng.Start),
		record("e1", "Alice", rng.End),
		record("e1", "Alice", rng.Start.Add(-time.Millisecond)),
		record("e2", "Bob", rng.End.Add(time.Millisecond)),
	}

	groups := Aggregate(records, nil, rng)

	require.Len(t, groups, 1)
	assert.Equal(t, 2, groups[0].Count)
}

func TestAggregate_SameNameDifferentEmployees(t *testing.T) {
	rng, err := ResolveRange(anchor, report.Monthly)
	require.NoError(t, err)

	records := []attendance.Attendance{
		record("e2", "Sam", at(time.March, 4, 9)),
		record("e1", "Sam", at(time.March, 5, 9)),
		record("e1", "Sam", at(time.March, 6, 9)),
	}

	groups := Aggregate(records, nil, rng)

	require.Len(t, groups, 2)
	assert.Equal(t, "e1", groups[0].EmployeeID)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, "e2", groups[1].EmployeeID)
	assert.Equal(t, 1, groups[1].Count)

	total := 0
	for _, g := range groups {
		total += g.Count
	}
	assert.Equal(t, len(records), total)
}

func TestAggregate_NameResolution(t *testing.T) {
	rng, err := ResolveRange(anchor, report.Monthly)
	require.NoError(t, err)

	records := []attendance.Attendance{
		record("e1", "Old Name", at(time.March, 4, 9)),
		record("e1", "Older Name", at(time.March, 2, 9)),
		record("gone", "Former", at(time.March, 2, 9)),
		record("gone", "Former Employee", at(time.March, 3, 9)),
	}
	names := map[string]string{"e1": "Current Name"}

	groups := Aggregate(records, names, rng)

	require.Len(t, groups, 2)
	assert.Equal(t, "Current Name", groups[0].Name)
	assert.Equal(t, "Former Employee", groups[1].Name)
}

func TestAggregate_LocationsParallelTimestamps(t *testing.T) {
	rng, err := ResolveRange(anchor, report.Daily)
	require.NoError(t, err)

	withLoc := record("e1", "Alice", at(time.March, 13, 10))
	withLoc.Location = &attendance.Location{Latitude: -6.2, Longitude: 106.8, PlaceName: "Jakarta"}
	withoutLoc := record("e1", "Alice", at(time.March, 13, 8))

	groups := Aggregate([]attendance.Attendance{withLoc, withoutLoc}, nil, rng)

	require.Len(t, groups, 1)
	require.Len(t, groups[0].Locations, 2)
	assert.Nil(t, groups[0].Locations[0])
	assert.Equal(t, "Jakarta", groups[0].Locations[1].PlaceName)

	body, err := json.Marshal(groups)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"locations":[null,{"latitude":-6.2`)
	assert.NotContains(t, string(body), "e1")
}

func TestAggregate_EmptyIsNotNull(t *testing.T) {
	rng, err := ResolveRange(anchor, report.Daily)
	require.NoError(t, err)

	body, err := json.Marshal(Aggregate(nil, nil, rng))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}

// ===== BREAKDOWNS =====

func TestBuildDaily_GapFillsEmptyWeek(t *testing.T) {
	got := BuildDaily(anchor, nil)

	require.Len(t, got.Days, 7)
	want := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	for i, day := range got.Days {
		assert.Equal(t, want[i], day.Day)
		assert.False(t, day.Present)
		assert.NotNil(t, day.Records)
		assert.Empty(t, day.Records)
	}
	assert.Equal(t, report.DailySummary{TotalDaysPresent: 0, TotalDays: 7}, got.Summary)

	body, err := json.Marshal(got.Days[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":"Sunday","records":[],"present":false}`, string(body))
}

func TestBuildDaily_BucketsByWeekday(t *testing.T) {
	records := []attendance.Attendance{
		record("e1", "Alice", at(time.March, 11, 9)),
		record("e1", "Alice", at(time.March, 11, 17)),
		record("e1", "Alice", at(time.March, 16, 9)),
		record("e1", "Alice", at(time.March, 17, 9)), // next week
	}

	got := BuildDaily(anchor, records)

	assert.True(t, got.Days[1].Present)
	assert.Len(t, got.Days[1].Records, 2)
	assert.True(t, got.Days[6].Present)
	assert.False(t, got.Days[0].Present)
	assert.Equal(t, 2, got.Summary.TotalDaysPresent)
}

func TestBuildDaily_ConvertsToAnchorLocation(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	// Tuesday 20:00 UTC is Wednesday 03:00 in Jakarta.
	records := []attendance.Attendance{record("e1", "Alice", at(time.March, 12, 20))}

	got := BuildDaily(anchor.In(jakarta), records)

	assert.False(t, got.Days[2].Present)
	assert.True(t, got.Days[3].Present)
}

func TestBuildWeekly_DedupsSameDay(t *testing.T) {
	records := []attendance.Attendance{
		record("e1", "Alice", at(time.March, 4, 8)),
		record("e1", "Alice", at(time.March, 4, 17)),
		record("e1", "Alice", at(time.March, 5, 8)),
		record("e1", "Alice", at(time.March, 29, 8)),
		record("e1", "Alice", at(time.March, 31, 8)),
	}

	got := BuildWeekly(anchor, records)

	require.Len(t, got.Weeks, 6)
	assert.Equal(t, "Week 1", got.Weeks[0].Week)
	assert.Equal(t, "Week 6", got.Weeks[5].Week)
	assert.Len(t, got.Weeks[0].Records, 3)
	assert.Equal(t, 2, got.Weeks[0].DaysPresent)
	assert.Equal(t, 2, got.Weeks[4].DaysPresent)
	assert.Equal(t, 0, got.Weeks[5].DaysPresent)
	assert.Equal(t, report.WeeklySummary{TotalWeeks: 6, TotalDaysPresent: 4}, got.Summary)
}

func TestBuildWeekly_ShortMonthKeepsEveryRecord(t *testing.T) {
	feb := time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)
	records := []attendance.Attendance{
		record("e1", "Alice", time.Date(2026, time.February, 28, 9, 0, 0, 0, time.UTC)),
	}

	got := BuildWeekly(feb, records)

	require.Len(t, got.Weeks, 4)
	assert.Len(t, got.Weeks[3].Records, 1)
	assert.Equal(t, 1, got.Summary.TotalDaysPresent)
}

func TestBuildMonthly(t *testing.T) {
	records := []attendance.Attendance{
		record("e1", "Alice", at(time.January, 2, 9)),
		record("e1", "Alice", at(time.January, 2, 18)),
		record("e1", "Alice", at(time.December, 31, 23)),
		record("e1", "Alice", time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)),
	}

	got := BuildMonthly(anchor, records)

	require.Len(t, got.Months, 12)
	assert.Equal(t, "January", got.Months[0].Month)
	assert.Equal(t, "December", got.Months[11].Month)
	assert.Equal(t, 1, got.Months[0].DaysPresent)
	assert.Len(t, got.Months[0].Records, 2)
	assert.Equal(t, 1, got.Months[11].DaysPresent)
	assert.Empty(t, got.Months[5].Records)
	assert.Equal(t, report.MonthlySummary{TotalMonths: 12, TotalDaysPresent: 2}, got.Summary)
}

func TestBreakdowns_SummaryMatchesBuckets(t *testing.T) {
	var records []attendance.Attendance
	for d := 1; d <= 31; d += 3 {
		records = append(records, record("e1", "Alice", at(time.March, d, 9)))
	}

	weekly := BuildWeekly(anchor, records)
	sum := 0
	for _, w := range weekly.Weeks {
		sum += w.DaysPresent
	}
	assert.Equal(t, sum, weekly.Summary.TotalDaysPresent)
	assert.Equal(t, len(weekly.Weeks), weekly.Summary.TotalWeeks)

	daily := BuildDaily(anchor, records)
	present := 0
	for _, d := range daily.Days {
		if d.Present {
			present++
		}
	}
	assert.Equal(t, present, daily.Summary.TotalDaysPresent)
}

func TestBreakdowns_Idempotent(t *testing.T) {
	records := []attendance.Attendance{
		record("e1", "Alice", at(time.March, 12, 9)),
		record("e1", "Alice", at(time.March, 11, 9)),
	}

	first, err := json.Marshal(BuildMonthly(anchor, records))
	require.NoError(t, err)
	second, err := json.Marshal(BuildMonthly(anchor, records))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

// ===== STATS =====

func TestComputeStats(t *testing.T) {
	records := []attendance.Attendance{
		record("e1", "Alice", time.Date(2024, time.March, 12, 8, 30, 0, 0, time.UTC)),
		record("e1", "Alice", time.Date(2024, time.March, 11, 9, 0, 0, 0, time.UTC)),
		record("e1", "Alice", time.Date(2024, time.March, 11, 7, 30, 0, 0, time.UTC)),
	}

	stats := ComputeStats(records, time.UTC)

	assert.Equal(t, 3, stats.TotalRecords)
	assert.Equal(t, 2, stats.TotalDays)
	require.NotNil(t, stats.FirstCheckIn)
	assert.Equal(t, "2024-03-11T07:30:00Z", *stats.FirstCheckIn)
	require.NotNil(t, stats.LastCheckOut)
	assert.Equal(t, "2024-03-12T08:30:00Z", *stats.LastCheckOut)
	require.NotNil(t, stats.AverageCheckIn)
	assert.Equal(t, "8.33 hours", *stats.AverageCheckIn)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil, time.UTC)

	assert.Equal(t, report.Stats{}, stats)

	body, err := json.Marshal(stats)
	require.NoError(t, err)
	assert.JSONEq(t, `{"totalRecords":0,"totalDays":0,"firstCheckIn":null,"lastCheckOut":null,"averageCheckIn":null}`, string(body))
}
