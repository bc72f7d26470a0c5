package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/workdayhq/workday-backend-go/internal/pkg/dateutil"
	"github.com/workdayhq/workday-backend-go/internal/pkg/validator"
)

// ========================================
// WORK HOUR REPORT
// ========================================

type ExecuteRequest struct {
	Month      string `json:"month"`
	Year       int    `json:"year"`
	EmployeeID string `json:"employee_id"`
}

func (r *ExecuteRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month != "" {
		if _, ok := dateutil.MonthNumber(r.Month); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be a full English month name",
			})
		}
	}

	if r.Year != 0 {
		currentYear := time.Now().Year()
		if r.Year < 2020 || r.Year > currentYear+1 {
			errs = append(errs, validator.ValidationError{
				Field:   "year",
				Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
			})
		}
	}

	// The date predicate needs both halves.
	if (r.Month == "") != (r.Year == 0) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month and year must be provided together",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Column describes one column of the tabular output. The schema is fixed.
type Column struct {
	Fieldname string `json:"fieldname"`
	Label     string `json:"label"`
	Fieldtype string `json:"fieldtype,omitempty"`
	Options   string `json:"options,omitempty"`
	Width     int    `json:"width"`
}

// Columns returns the report's fixed column schema.
func Columns() []Column {
	return []Column{
		{Fieldname: "log_date", Label: "Datum", Width: 110},
		{Fieldname: "name", Label: "Werktag (Link)", Fieldtype: "Link", Options: "Workday", Width: 150},
		{Fieldname: "total_work_seconds", Label: "Ist-Stunden", Width: 110},
		{Fieldname: "total_target_seconds", Label: "Soll-Stunden", Width: 110},
		{Fieldname: "actual_diff_log", Label: "Differenz", Width: 90},
	}
}

// Row is one report line with the variance figures computed.
type Row struct {
	Name                 string          `json:"name"`
	LogDate              string          `json:"log_date"`
	EmployeeID           string          `json:"employee"`
	Status               string          `json:"status"`
	TargetHours          decimal.Decimal `json:"target_hours"`
	TotalWorkSeconds     int64           `json:"total_work_seconds"`
	TotalTargetSeconds   int64           `json:"total_target_seconds"`
	ActualWorkingSeconds int64           `json:"actual_working_seconds"`
	DiffSeconds          int64           `json:"diff_log"`
	ActualDiffSeconds    int64           `json:"actual_diff_log"`
}

// Result pairs the fixed column schema with the row data.
type Result struct {
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// WorkdayRecord is the raw projection read from the store; variance figures
// are computed by the service.
type WorkdayRecord struct {
	Name               string
	LogDate            time.Time
	EmployeeID         string
	Status             string
	TargetHours        decimal.Decimal
	TotalWorkSeconds   int64
	TotalTargetSeconds int64
	ActualWorkingHours decimal.Decimal
}

// Filter holds the optional report predicates. Zero values mean "absent";
// Month and Year only take effect together.
type Filter struct {
	Month      time.Month
	Year       int
	EmployeeID string
}
