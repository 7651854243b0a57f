package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/export"
	reportservice "github.com/cmlabs-hris/attendance-backend-go/internal/service/report"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	// Overall attendance of every employee for the current day, week or month
	Overall(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)

	// Per-employee calendar breakdowns
	Daily(w http.ResponseWriter, r *http.Request)
	Weekly(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)

	Stats(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
	now           func() time.Time
}

// NewReportHandler creates a report handler whose periods are computed in loc.
func NewReportHandler(reportService report.ReportService, loc *time.Location) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		now: func() time.Time {
			return time.Now().In(loc)
		},
	}
}

// Overall handles GET /overall/{type}
func (h *reportHandlerImpl) Overall(w http.ResponseWriter, r *http.Request) {
	granularity, err := report.ParseGranularity(chi.URLParam(r, "type"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	groups, err := h.reportService.Overall(r.Context(), granularity, h.now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, groups)
}

// Export handles GET /overall/{type}/export
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	granularity, err := report.ParseGranularity(chi.URLParam(r, "type"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	now := h.now()
	groups, err := h.reportService.Overall(r.Context(), granularity, now)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Overall already validated the granularity
	rng, _ := reportservice.ResolveRange(now, granularity)

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(granularity, rng.Start)+`"`)
	if err := export.WriteOverallReport(w, granularity, rng, groups); err != nil {
		// headers already sent
		slog.Error("Failed to write overall report workbook", "type", granularity, "error", err)
	}
}

// Daily handles GET /daily/{employeeId}
func (h *reportHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Daily(r.Context(), chi.URLParam(r, "employeeId"), h.now())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, result)
}

// Weekly handles GET /weekly/{employeeId}
func (h *reportHandlerImpl) Weekly(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Weekly(r.Context(), chi.URLParam(r, "employeeId"), h.now())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, result)
}

// Monthly handles GET /monthly/{employeeId}
func (h *reportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Monthly(r.Context(), chi.URLParam(r, "employeeId"), h.now())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, result)
}

// Stats handles GET /employees/{id}/stats/{type}
func (h *reportHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	granularity, err := report.ParseGranularity(chi.URLParam(r, "type"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	stats, err := h.reportService.Stats(r.Context(), chi.URLParam(r, "id"), granularity, h.now())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, stats)
}
