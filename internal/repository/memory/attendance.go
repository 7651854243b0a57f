package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/google/uuid"
)

type attendanceRepositoryImpl struct {
	mu      sync.RWMutex
	records []attendance.Attendance
}

// NewAttendanceRepository returns a process-local attendance log.
// It backs tests and STORE_DRIVER=memory.
func NewAttendanceRepository() attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	if err := ctx.Err(); err != nil {
		return attendance.Attendance{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Attendance{}, err
	}
	newAttendance.ID = id.String()
	if newAttendance.Location != nil {
		loc := *newAttendance.Location
		newAttendance.Location = &loc
	}

	r.mu.Lock()
	r.records = append(r.records, newAttendance)
	r.mu.Unlock()

	return newAttendance, nil
}

// ListBetween implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListBetween(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	return r.list(ctx, start, end, func(attendance.Attendance) bool { return true })
}

// ListByEmployeeBetween implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	return r.list(ctx, start, end, func(a attendance.Attendance) bool { return a.EmployeeID == employeeID })
}

func (r *attendanceRepositoryImpl) list(ctx context.Context, start, end time.Time, match func(attendance.Attendance) bool) ([]attendance.Attendance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]attendance.Attendance, 0)
	for _, a := range r.records {
		if a.Timestamp.Before(start) || a.Timestamp.After(end) || !match(a) {
			continue
		}
		result = append(result, a)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.Before(result[j].Timestamp)
	})
	return result, nil
}
