package workday

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/workdayhq/workday-backend-go/internal/pkg/validator"
)

// Workday is one employee's attendance outcome for one calendar date.
// At most one record may exist per (employee, log_date).
type Workday struct {
	ID                 string
	EmployeeID         string
	CompanyID          string
	LogDate            time.Time
	HoursWorked        decimal.Decimal
	TargetHours        decimal.Decimal
	TotalWorkSeconds   int64
	TotalTargetSeconds int64
	ActualWorkingHours decimal.Decimal
	Status             string
	DocStatus          int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

const (
	StatusPresent = "Present"
	StatusHalfDay = "Half Day"
	StatusOnLeave = "On Leave"
	StatusAbsent  = "Absent"
)

// Document status values. Reports only read records below DocStatusCancelled.
const (
	DocStatusDraft     = 0
	DocStatusSubmitted = 1
	DocStatusCancelled = 2
)

// NewWorkdayParams carries the fields required to build a Workday. Status is
// optional; when empty it is derived from the worked hours.
type NewWorkdayParams struct {
	EmployeeID  string
	CompanyID   string
	LogDate     time.Time
	HoursWorked decimal.Decimal
	TargetHours decimal.Decimal
	Status      string
}

// NewWorkday validates params and builds a record ready for persistence.
// Status defaults first; the Half Day / On Leave target adjustment runs
// after that, so second totals always reflect the adjusted target.
func NewWorkday(p NewWorkdayParams) (Workday, error) {
	var errs validator.ValidationErrors

	if validator.IsEmpty(p.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(p.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}
	if p.LogDate.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "log_date",
			Message: "log_date is required",
		})
	}
	if p.HoursWorked.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hours_worked",
			Message: "hours_worked must not be negative",
		})
	}
	if len(errs) > 0 {
		return Workday{}, errs
	}

	w := Workday{
		EmployeeID:         p.EmployeeID,
		CompanyID:          p.CompanyID,
		LogDate:            p.LogDate,
		HoursWorked:        p.HoursWorked,
		TargetHours:        p.TargetHours,
		ActualWorkingHours: p.HoursWorked,
		Status:             p.Status,
		DocStatus:          DocStatusDraft,
	}

	if w.Status == "" {
		w.Status = defaultStatus(p.HoursWorked)
	}

	switch w.Status {
	case StatusHalfDay:
		w.TargetHours = w.TargetHours.Div(decimal.NewFromInt(2))
	case StatusOnLeave:
		w.TargetHours = decimal.Zero
	}

	w.TotalWorkSeconds = SecondsFromHours(w.HoursWorked)
	w.TotalTargetSeconds = SecondsFromHours(w.TargetHours)

	return w, nil
}

func defaultStatus(hoursWorked decimal.Decimal) string {
	if hoursWorked.IsZero() {
		return StatusAbsent
	}
	return StatusPresent
}

// SecondsFromHours converts an hour quantity to whole seconds.
func SecondsFromHours(hours decimal.Decimal) int64 {
	return hours.Mul(decimal.NewFromInt(3600)).IntPart()
}
