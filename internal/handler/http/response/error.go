package response

import (
	"errors"
	"net/http"

	"github.com/workdayhq/workday-backend-go/internal/domain/employee"
	"github.com/workdayhq/workday-backend-go/internal/domain/workday"
	"github.com/workdayhq/workday-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Workday domain errors
	case errors.Is(err, workday.ErrEmployeeInactive):
		BadRequest(w, "Employee is not active", nil)
	case errors.Is(err, workday.ErrNoDatesSelected):
		BadRequest(w, "Please select a date", nil)
	case errors.Is(err, workday.ErrWorkdayExists):
		Conflict(w, "Workday already exists for this date")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
