package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/sse"
	attendanceservice "github.com/cmlabs-hris/attendance-backend-go/internal/service/attendance"
)

const keepaliveInterval = 30 * time.Second

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)

	// Stream pushes newly marked records over server-sent events
	Stream(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	now               func() time.Time
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, loc *time.Location) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		now: func() time.Time {
			return time.Now().In(loc)
		},
	}
}

// Mark handles POST /attendance/mark
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Debug("Failed to decode mark attendance request", "error", err)
		response.BadRequest(w, "Invalid request body")
		return
	}

	created, err := h.attendanceService.MarkAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, created)
}

// Today handles GET /attendance/today
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.GetTodayAttendance(r.Context(), h.now())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, records)
}

// Stream handles GET /attendance/stream
func (h *attendanceHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	records, cleanup := h.attendanceService.Subscribe(r.Context())
	defer cleanup()

	fmt.Fprint(w, "event: connected\ndata: {\"status\":\"connected\"}\n\n")
	flusher.Flush()

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	for {
		select {
		case rec, ok := <-records:
			if !ok {
				return
			}
			event := sse.Event{Topic: attendanceservice.Topic, Event: attendanceservice.EventMarked, Data: rec}
			if _, err := event.WriteTo(w); err != nil {
				slog.Warn("Failed to write attendance event", "error", err)
				return
			}
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
