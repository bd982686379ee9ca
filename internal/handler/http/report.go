package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-recon-go/internal/handler/http/response"
)

type ReportHandler struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Run handles POST /api/v1/reports/attendance/run
func (h *ReportHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req report.RunReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.reportService.RunAttendanceReport(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Export handles GET /api/v1/reports/attendance/export
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	req := report.RunReportRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
		Source:    r.URL.Query().Get("source"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	content, filename, err := h.reportService.ExportAttendanceReport(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if _, err := w.Write(content); err != nil {
		response.InternalServerError(w, "Failed to write file")
	}
}
