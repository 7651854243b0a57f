package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingAttendanceRepo struct {
	attendance.AttendanceRepository
}

func (failingAttendanceRepo) ListBetween(context.Context, time.Time, time.Time) ([]attendance.Attendance, error) {
	return nil, errors.New("connection reset")
}

func (failingAttendanceRepo) ListByEmployeeBetween(context.Context, string, time.Time, time.Time) ([]attendance.Attendance, error) {
	return nil, errors.New("connection reset")
}

func seed(t *testing.T) (report.ReportService, employee.Employee, employee.Employee) {
	t.Helper()
	ctx := context.Background()
	attendanceRepo := memory.NewAttendanceRepository()
	employeeRepo := memory.NewEmployeeRepository()

	alice, err := employeeRepo.Create(ctx, employee.Employee{Name: "Alice", Email: "alice@example.com", Contact: "0811111111"})
	require.NoError(t, err)
	bob, err := employeeRepo.Create(ctx, employee.Employee{Name: "Bob", Email: "bob@example.com", Contact: "0822222222"})
	require.NoError(t, err)

	for _, rec := range []attendance.Attendance{
		{EmployeeID: alice.ID, EmployeeName: "Alice", Timestamp: at(time.March, 11, 9)},
		{EmployeeID: alice.ID, EmployeeName: "Alice", Timestamp: at(time.March, 12, 9)},
		{EmployeeID: bob.ID, EmployeeName: "Bob", Timestamp: at(time.March, 11, 10)},
		{EmployeeID: bob.ID, EmployeeName: "Bob", Timestamp: at(time.February, 11, 10)},
	} {
		_, err := attendanceRepo.Create(ctx, rec)
		require.NoError(t, err)
	}

	return NewReportService(attendanceRepo, employeeRepo), alice, bob
}

func TestReportService_Overall(t *testing.T) {
	svc, _, _ := seed(t)

	groups, err := svc.Overall(context.Background(), report.Weekly, anchor)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Alice", groups[0].Name)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, "Bob", groups[1].Name)
	assert.Equal(t, 1, groups[1].Count)

	daily, err := svc.Overall(context.Background(), report.Daily, anchor)
	require.NoError(t, err)
	assert.Empty(t, daily)
}

func TestReportService_Overall_InvalidGranularity(t *testing.T) {
	svc, _, _ := seed(t)

	_, err := svc.Overall(context.Background(), report.Granularity("hourly"), anchor)
	assert.ErrorIs(t, err, report.ErrInvalidGranularity)
}

func TestReportService_Breakdowns(t *testing.T) {
	svc, alice, bob := seed(t)
	ctx := context.Background()

	daily, err := svc.Daily(ctx, alice.ID, anchor)
	require.NoError(t, err)
	assert.Equal(t, 2, daily.Summary.TotalDaysPresent)

	weekly, err := svc.Weekly(ctx, alice.ID, anchor)
	require.NoError(t, err)
	assert.Equal(t, 2, weekly.Summary.TotalDaysPresent)

	monthly, err := svc.Monthly(ctx, bob.ID, anchor)
	require.NoError(t, err)
	assert.Equal(t, 1, monthly.Months[1].DaysPresent)
	assert.Equal(t, 1, monthly.Months[2].DaysPresent)
	assert.Equal(t, 2, monthly.Summary.TotalDaysPresent)
}

func TestReportService_UnknownEmployeeIsAllAbsent(t *testing.T) {
	svc, _, _ := seed(t)

	got, err := svc.Daily(context.Background(), "does-not-exist", anchor)
	require.NoError(t, err)
	require.Len(t, got.Days, 7)
	assert.Equal(t, 0, got.Summary.TotalDaysPresent)
}

func TestReportService_Stats(t *testing.T) {
	svc, alice, _ := seed(t)

	stats, err := svc.Stats(context.Background(), alice.ID, report.Weekly, anchor)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalRecords)
	assert.Equal(t, 2, stats.TotalDays)
	require.NotNil(t, stats.AverageCheckIn)
	assert.Equal(t, "9.00 hours", *stats.AverageCheckIn)
}

func TestReportService_StoreFailure(t *testing.T) {
	svc := NewReportService(failingAttendanceRepo{}, memory.NewEmployeeRepository())
	ctx := context.Background()

	_, err := svc.Overall(ctx, report.Monthly, anchor)
	assert.ErrorIs(t, err, report.ErrReportGenerationFailed)

	_, err = svc.Weekly(ctx, "e1", anchor)
	assert.ErrorIs(t, err, report.ErrReportGenerationFailed)

	_, err = svc.Stats(ctx, "e1", report.Daily, anchor)
	assert.ErrorIs(t, err, report.ErrReportGenerationFailed)
}
