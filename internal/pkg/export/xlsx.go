package export

import (
	"fmt"
	"io"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	summarySheet = "Summary"
	recordSheet  = "Records"
	timeLayout   = "2006-01-02 15:04:05"
)

// WriteOverallReport renders an overall report as an XLSX workbook with a
// per-employee summary sheet and one row per check-in on a second sheet.
// Times are written in the location of rng.Start.
func WriteOverallReport(w io.Writer, granularity report.Granularity, rng report.Range, groups []report.OverallGroup) error {
	f := excelize.NewFile()
	defer f.Close()

	loc := rng.Start.Location()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(recordSheet); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	// Summary sheet
	title := fmt.Sprintf("Attendance report (%s): %s to %s",
		granularity, rng.Start.Format("2006-01-02"), rng.End.In(loc).Format("2006-01-02"))
	if err := f.SetCellValue(summarySheet, "A1", title); err != nil {
		return err
	}
	if err := f.MergeCell(summarySheet, "A1", "D1"); err != nil {
		return err
	}

	if err := writeRow(f, summarySheet, 3, headerStyle, "Name", "Check-ins", "First", "Last"); err != nil {
		return err
	}
	for i, g := range groups {
		first, last := "", ""
		if n := len(g.Timestamps); n > 0 {
			first = g.Timestamps[0].In(loc).Format(timeLayout)
			last = g.Timestamps[n-1].In(loc).Format(timeLayout)
		}
		if err := writeRow(f, summarySheet, 4+i, 0, g.Name, g.Count, first, last); err != nil {
			return err
		}
	}

	// Records sheet
	if err := writeRow(f, recordSheet, 1, headerStyle, "Name", "Timestamp", "Place", "Latitude", "Longitude"); err != nil {
		return err
	}
	row := 2
	for _, g := range groups {
		for i, ts := range g.Timestamps {
			values := []interface{}{g.Name, ts.In(loc).Format(timeLayout), "", "", ""}
			if i < len(g.Locations) && g.Locations[i] != nil {
				l := g.Locations[i]
				values[2], values[3], values[4] = l.PlaceName, l.Latitude, l.Longitude
			}
			if err := writeRow(f, recordSheet, row, 0, values...); err != nil {
				return err
			}
			row++
		}
	}

	_ = f.SetColWidth(summarySheet, "A", "A", 30)
	_ = f.SetColWidth(summarySheet, "C", "D", 22)
	_ = f.SetColWidth(recordSheet, "A", "C", 30)

	_, err = f.WriteTo(w)
	return err
}

// writeRow fills row starting at column A. A zero style leaves cells unstyled.
func writeRow(f *excelize.File, sheet string, row int, style int, values ...interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
		if style != 0 {
			if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
				return err
			}
		}
	}
	return nil
}

// Filename names an export after its period, e.g. attendance-weekly-2024-03-10.xlsx.
func Filename(granularity report.Granularity, start time.Time) string {
	return fmt.Sprintf("attendance-%s-%s.xlsx", granularity, start.Format("2006-01-02"))
}
