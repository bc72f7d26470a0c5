package timesheet

import (
	"context"
	"time"
)

type TimesheetRepository interface {
	// ListForDate returns every entry for the employee whose
	// [start_date, end_date] interval contains date, inclusive both ends.
	ListForDate(ctx context.Context, employeeID string, date time.Time) ([]TimeEntry, error)
}
