package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/workdayhq/workday-backend-go/internal/domain/workday"
	"github.com/workdayhq/workday-backend-go/internal/handler/http/response"
)

type WorkdayHandler interface {
	BulkProcess(w http.ResponseWriter, r *http.Request)
	UnmarkedDays(w http.ResponseWriter, r *http.Request)
	UnmarkedRange(w http.ResponseWriter, r *http.Request)
}

type workdayHandlerImpl struct {
	workdayService workday.Service
}

func NewWorkdayHandler(workdayService workday.Service) WorkdayHandler {
	return &workdayHandlerImpl{
		workdayService: workdayService,
	}
}

// BulkProcess implements WorkdayHandler.
func (h *workdayHandlerImpl) BulkProcess(w http.ResponseWriter, r *http.Request) {
	var req workday.BulkProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode bulk process request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if req.Background {
		if err := h.workdayService.BulkProcessBackground(r.Context(), req); err != nil {
			response.HandleError(w, err)
			return
		}
		response.Accepted(w, "Bulk operation is enqueued in background.")
		return
	}

	result, err := h.workdayService.BulkProcess(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UnmarkedDays implements WorkdayHandler.
func (h *workdayHandlerImpl) UnmarkedDays(w http.ResponseWriter, r *http.Request) {
	req := workday.UnmarkedDaysRequest{
		EmployeeID:      r.URL.Query().Get("employee_id"),
		Month:           r.URL.Query().Get("month"),
		ExcludeHolidays: r.URL.Query().Get("exclude_holidays") == "true",
	}

	days, err := h.workdayService.UnmarkedDays(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, days)
}

// UnmarkedRange implements WorkdayHandler.
func (h *workdayHandlerImpl) UnmarkedRange(w http.ResponseWriter, r *http.Request) {
	req := workday.UnmarkedRangeRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		FromDate:   r.URL.Query().Get("from"),
		ToDate:     r.URL.Query().Get("to"),
	}

	days, err := h.workdayService.UnmarkedRange(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, days)
}
