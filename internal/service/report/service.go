package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewReportService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// Overall implements report.ReportService.
func (s *ReportServiceImpl) Overall(ctx context.Context, granularity report.Granularity, now time.Time) ([]report.OverallGroup, error) {
	rng, err := ResolveRange(now, granularity)
	if err != nil {
		return nil, err
	}

	var (
		records   []attendance.Attendance
		employees []employee.Employee
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListBetween(gctx, rng.Start, rng.End)
		if err != nil {
			return fmt.Errorf("list attendance: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("list employees: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, s.generationFailed("overall", err)
	}

	names := make(map[string]string, len(employees))
	for _, emp := range employees {
		names[emp.ID] = emp.Name
	}

	return Aggregate(records, names, rng), nil
}

// Daily implements report.ReportService.
func (s *ReportServiceImpl) Daily(ctx context.Context, employeeID string, now time.Time) (report.DailyReport, error) {
	records, err := s.employeeRecords(ctx, employeeID, now, report.Daily)
	if err != nil {
		return report.DailyReport{}, err
	}
	return BuildDaily(now, records), nil
}

// Weekly implements report.ReportService.
func (s *ReportServiceImpl) Weekly(ctx context.Context, employeeID string, now time.Time) (report.WeeklyReport, error) {
	records, err := s.employeeRecords(ctx, employeeID, now, report.Weekly)
	if err != nil {
		return report.WeeklyReport{}, err
	}
	return BuildWeekly(now, records), nil
}

// Monthly implements report.ReportService.
func (s *ReportServiceImpl) Monthly(ctx context.Context, employeeID string, now time.Time) (report.MonthlyReport, error) {
	records, err := s.employeeRecords(ctx, employeeID, now, report.Monthly)
	if err != nil {
		return report.MonthlyReport{}, err
	}
	return BuildMonthly(now, records), nil
}

// Stats implements report.ReportService.
func (s *ReportServiceImpl) Stats(ctx context.Context, employeeID string, granularity report.Granularity, now time.Time) (report.Stats, error) {
	rng, err := ResolveRange(now, granularity)
	if err != nil {
		return report.Stats{}, err
	}

	records, err := s.attendanceRepo.ListByEmployeeBetween(ctx, employeeID, rng.Start, rng.End)
	if err != nil {
		return report.Stats{}, s.generationFailed("stats", err)
	}

	return ComputeStats(records, now.Location()), nil
}

func (s *ReportServiceImpl) employeeRecords(ctx context.Context, employeeID string, now time.Time, granularity report.Granularity) ([]attendance.Attendance, error) {
	window, err := BreakdownWindow(now, granularity)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByEmployeeBetween(ctx, employeeID, window.Start, window.End)
	if err != nil {
		return nil, s.generationFailed(string(granularity), err)
	}
	return records, nil
}

func (s *ReportServiceImpl) generationFailed(kind string, err error) error {
	slog.Error("Failed to generate report", "report", kind, "error", err)
	return fmt.Errorf("%w: %s: %w", report.ErrReportGenerationFailed, kind, err)
}
