package workday

import (
	"context"
	"time"
)

type WorkdayRepository interface {
	// Create inserts a new workday record
	Create(ctx context.Context, wd Workday) (Workday, error)

	// ExistsForDate reports whether the employee already has a workday on
	// the given date. Used to turn a duplicate into a reportable conflict.
	ExistsForDate(ctx context.Context, employeeID string, date time.Time) (bool, error)

	// ListMarkedDates returns the log dates with an existing workday for
	// the employee within [from, to].
	ListMarkedDates(ctx context.Context, employeeID string, from, to time.Time) ([]time.Time, error)
}
