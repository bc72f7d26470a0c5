package workday

import (
	"github.com/workdayhq/workday-backend-go/internal/pkg/dateutil"
	"github.com/workdayhq/workday-backend-go/internal/pkg/validator"
)

type UnmarkedDaysRequest struct {
	EmployeeID      string `json:"employee_id"`
	Month           string `json:"month"`
	ExcludeHolidays bool   `json:"exclude_holidays"`
}

func (r *UnmarkedDaysRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := dateutil.MonthNumber(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be a full English month name",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UnmarkedRangeRequest struct {
	EmployeeID string `json:"employee_id"`
	FromDate   string `json:"from_date"`
	ToDate     string `json:"to_date"`
}

func (r *UnmarkedRangeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	from, fromOK := validator.IsValidDate(r.FromDate)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be in YYYY-MM-DD format",
		})
	}
	to, toOK := validator.IsValidDate(r.ToDate)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be in YYYY-MM-DD format",
		})
	}
	if fromOK && toOK && from.After(to) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must not be before from_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkProcessRequest struct {
	EmployeeID   string   `json:"employee_id"`
	UnmarkedDays []string `json:"unmarked_days"`
	Background   bool     `json:"background"`
}

func (r *BulkProcessRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	for _, day := range r.UnmarkedDays {
		if _, ok := validator.IsValidDate(day); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "unmarked_days",
				Message: "dates must be in YYYY-MM-DD format",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DateFailure reports why one date in a batch could not be materialized.
type DateFailure struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// BulkProcessResult is the per-date outcome of a batch. Skipped dates had no
// time entries; failed dates were logged and did not abort the batch.
type BulkProcessResult struct {
	Created []string      `json:"created"`
	Skipped []string      `json:"skipped"`
	Failed  []DateFailure `json:"failed"`
}
