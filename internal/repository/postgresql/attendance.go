package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Attendance{}, err
	}

	var lat, lon *float64
	var placeName *string
	if loc := newAttendance.Location; loc != nil {
		lat, lon, placeName = &loc.Latitude, &loc.Longitude, &loc.PlaceName
	}

	query := `
		INSERT INTO attendances (id, employee_id, employee_name, latitude, longitude, place_name, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, employee_id, employee_name, latitude, longitude, place_name, timestamp
	`

	row := q.QueryRow(ctx, query,
		id, newAttendance.EmployeeID, newAttendance.EmployeeName,
		lat, lon, placeName, newAttendance.Timestamp,
	)
	created, err := scanAttendance(row)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return created, nil
}

// ListBetween implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListBetween(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	query := `
		SELECT id, employee_id, employee_name, latitude, longitude, place_name, timestamp
		FROM attendances
		WHERE timestamp >= $1 AND timestamp <= $2
		ORDER BY timestamp, id
	`
	return a.list(ctx, query, start, end)
}

// ListByEmployeeBetween implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return []attendance.Attendance{}, nil
	}

	query := `
		SELECT id, employee_id, employee_name, latitude, longitude, place_name, timestamp
		FROM attendances
		WHERE employee_id = $3 AND timestamp >= $1 AND timestamp <= $2
		ORDER BY timestamp, id
	`
	return a.list(ctx, query, start, end, employeeID)
}

func (a *attendanceRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var (
		rec       attendance.Attendance
		lat, lon  *float64
		placeName *string
	)
	if err := row.Scan(&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &lat, &lon, &placeName, &rec.Timestamp); err != nil {
		return attendance.Attendance{}, err
	}
	if lat != nil && lon != nil {
		rec.Location = &attendance.Location{Latitude: *lat, Longitude: *lon}
		if placeName != nil {
			rec.Location.PlaceName = *placeName
		}
	}
	return rec, nil
}
