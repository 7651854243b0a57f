package report

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
)

// Aggregate groups the records that fall inside rng by employee.
//
// names maps employee IDs to their current display name. Employees missing
// from names (deleted since marking) keep the name denormalized on their most
// recent record. Groups come back sorted by name, then by employee ID.
func Aggregate(records []attendance.Attendance, names map[string]string, rng report.Range) []report.OverallGroup {
	inRange := make([]attendance.Attendance, 0, len(records))
	for _, rec := range records {
		if rng.Contains(rec.Timestamp) {
			inRange = append(inRange, rec)
		}
	}
	sortByTimestamp(inRange)

	index := make(map[string]int)
	groups := make([]report.OverallGroup, 0)
	for _, rec := range inRange {
		i, ok := index[rec.EmployeeID]
		if !ok {
			i = len(groups)
			index[rec.EmployeeID] = i
			groups = append(groups, report.OverallGroup{
				EmployeeID: rec.EmployeeID,
				Timestamps: []time.Time{},
				Locations:  []*attendance.Location{},
			})
		}

		g := &groups[i]
		g.Count++
		g.Timestamps = append(g.Timestamps, rec.Timestamp)
		g.Locations = append(g.Locations, rec.Location)
		if rec.EmployeeName != "" {
			// ascending order, so the last write is the latest name
			g.Name = rec.EmployeeName
		}
	}

	for i := range groups {
		if name, ok := names[groups[i].EmployeeID]; ok && name != "" {
			groups[i].Name = name
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Name != groups[j].Name {
			return groups[i].Name < groups[j].Name
		}
		return groups[i].EmployeeID < groups[j].EmployeeID
	})

	return groups
}

func sortByTimestamp(records []attendance.Attendance) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})
}
