package attendance

import (
	"time"
)

// Attendance is one mark-attendance event. Records are append-only: once stored,
// nothing rewrites them.
type Attendance struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	Location     *Location `json:"location"`
	Timestamp    time.Time `json:"timestamp"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	PlaceName string  `json:"placeName"`
}
