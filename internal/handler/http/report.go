package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gpe-labs/payroll-backend-go/internal/domain/report"
	"github.com/gpe-labs/payroll-backend-go/internal/handler/http/response"
	"github.com/gpe-labs/payroll-backend-go/internal/pkg/validator"
)

type ReportHandler interface {
	EmployeeReport(w http.ResponseWriter, r *http.Request)
	SummaryReport(w http.ResponseWriter, r *http.Request)
	PayrollReport(w http.ResponseWriter, r *http.Request)
	StatisticsReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// EmployeeReport implements ReportHandler
func (h *reportHandlerImpl) EmployeeReport(w http.ResponseWriter, r *http.Request) {
	payTypeFilter := r.URL.Query().Get("type")

	result, err := h.reportService.EmployeeReport(r.Context(), payTypeFilter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SummaryReport implements ReportHandler
func (h *reportHandlerImpl) SummaryReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Summary(r.Context())
	if err != nil {
		slog.Error("SummaryReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PayrollReport implements ReportHandler. The report date defaults to
// today when the date query parameter is absent.
func (h *reportHandlerImpl) PayrollReport(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, ok := validator.IsValidDate(raw)
		if !ok {
			response.BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
			return
		}
		date = parsed
	}

	result, err := h.reportService.Payroll(r.Context(), date)
	if err != nil {
		slog.Error("PayrollReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// StatisticsReport implements ReportHandler
func (h *reportHandlerImpl) StatisticsReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Statistics(r.Context())
	if err != nil {
		slog.Error("StatisticsReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
