package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// MarkAttendance records a check-in for the employee identified by ID or email
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (Attendance, error)

	// GetTodayAttendance returns the records of the calendar day containing now
	GetTodayAttendance(ctx context.Context, now time.Time) ([]Attendance, error)

	// Subscribe streams newly marked records until the returned cleanup is called
	Subscribe(ctx context.Context) (<-chan Attendance, func())
}
