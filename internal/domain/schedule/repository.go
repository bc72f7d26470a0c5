package schedule

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// WeeklyScheduleRepository reads the employee's weekly-hours configuration.
// A schedule is active for a date when valid_from <= date <= valid_to;
// validity intervals per employee are assumed non-overlapping.
type WeeklyScheduleRepository interface {
	// FindActiveID returns the schedule whose validity interval contains
	// date, or ErrNoActiveSchedule.
	FindActiveID(ctx context.Context, employeeID string, date time.Time) (string, error)

	// DayHours returns the configured hours for the named weekday
	// ("Monday".."Sunday"), zero when the weekday has no entry.
	DayHours(ctx context.Context, scheduleID string, weekdayName string) (decimal.Decimal, error)
}
