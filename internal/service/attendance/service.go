package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/geocode"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/sse"
	reportservice "github.com/cmlabs-hris/attendance-backend-go/internal/service/report"
)

const (
	// Topic is the hub topic new attendance records are published on.
	Topic = "attendance"
	// EventMarked names the SSE event carrying a new record.
	EventMarked = "attendance.marked"

	geocodeTimeout = 5 * time.Second
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	geocoder       geocode.GeocodeService
	hub            *sse.Hub
	now            func() time.Time
}

// NewAttendanceService builds the mark-attendance service. geocoder may be
// nil, in which case coordinates without a place name get the "Coords:" name.
func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	geocoder geocode.GeocodeService,
	hub *sse.Hub,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		geocoder:       geocoder,
		hub:            hub,
		now:            time.Now,
	}
}

// MarkAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	emp, err := s.resolveEmployee(ctx, req)
	if err != nil {
		return attendance.Attendance{}, err
	}

	timestamp := s.now()
	if req.ParsedTimestamp != nil {
		timestamp = *req.ParsedTimestamp
	}

	newAttendance := attendance.Attendance{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Timestamp:    timestamp,
	}
	if req.HasCoordinates() {
		newAttendance.Location = &attendance.Location{
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
			PlaceName: s.placeName(ctx, req),
		}
	}

	created, err := s.attendanceRepo.Create(ctx, newAttendance)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to mark attendance: %w", err)
	}

	slog.Info("Attendance marked", "attendance_id", created.ID, "employee_id", created.EmployeeID)

	if s.hub != nil {
		s.hub.Publish(Topic, sse.Event{Event: EventMarked, Data: created})
	}

	return created, nil
}

func (s *AttendanceServiceImpl) resolveEmployee(ctx context.Context, req attendance.MarkAttendanceRequest) (employee.Employee, error) {
	var (
		emp employee.Employee
		err error
	)
	if req.EmployeeID != "" {
		emp, err = s.employeeRepo.GetByID(ctx, req.EmployeeID)
	} else {
		emp, err = s.employeeRepo.GetByEmail(ctx, req.Email)
	}
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// placeName returns the caller's place name, or reverse geocodes the
// coordinates. Geocoding failures never fail the mark.
func (s *AttendanceServiceImpl) placeName(ctx context.Context, req attendance.MarkAttendanceRequest) string {
	if req.PlaceName != nil && strings.TrimSpace(*req.PlaceName) != "" {
		return strings.TrimSpace(*req.PlaceName)
	}

	lat, lon := *req.Latitude, *req.Longitude
	fallback := geocode.CoordinatePlaceName(lat, lon)
	if s.geocoder == nil {
		return fallback
	}

	ctx, cancel := context.WithTimeout(ctx, geocodeTimeout)
	defer cancel()

	res, err := s.geocoder.ReverseGeocode(ctx, geocode.ReverseGeocodeRequest{Latitude: lat, Longitude: lon})
	if err != nil {
		slog.Warn("Reverse geocoding failed, using coordinates", "lat", lat, "lon", lon, "error", err)
		return fallback
	}
	return res.PlaceName
}

// GetTodayAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetTodayAttendance(ctx context.Context, now time.Time) ([]attendance.Attendance, error) {
	day, err := reportservice.ResolveRange(now, report.Daily)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListBetween(ctx, day.Start, day.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list today's attendance: %w", err)
	}
	return records, nil
}

// Subscribe implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Subscribe(ctx context.Context) (<-chan attendance.Attendance, func()) {
	ch, cleanup := s.hub.Subscribe(Topic)

	out := make(chan attendance.Attendance, 10)

	go func() {
		defer close(out)
		for {
			select {
			case event, ok := <-ch:
				if !ok {
					return
				}
				rec, ok := event.Data.(attendance.Attendance)
				if !ok {
					continue
				}
				select {
				case out <- rec:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, cleanup
}
