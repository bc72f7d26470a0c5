package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/workdayhq/workday-backend-go/internal/domain/report"
	"github.com/workdayhq/workday-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	WorkHours(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// WorkHours implements ReportHandler.
func (h *reportHandlerImpl) WorkHours(w http.ResponseWriter, r *http.Request) {
	var req report.ExecuteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode report request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.reportService.Execute(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
