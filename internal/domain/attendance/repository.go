package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// The attendance log only grows; records are never updated or deleted.
type AttendanceRepository interface {
	// Create stores a new record and returns it with its assigned ID
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// ListBetween returns every record with start <= timestamp <= end, oldest first
	ListBetween(ctx context.Context, start, end time.Time) ([]Attendance, error)

	// ListByEmployeeBetween is ListBetween narrowed to one employee.
	// A malformed or unknown employeeID yields an empty slice, not an error.
	ListByEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
}
