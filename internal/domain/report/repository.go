package report

import "context"

type ReportRepository interface {
	// ListWorkdays returns non-cancelled workday records matching the
	// filter, ordered by log date ascending.
	ListWorkdays(ctx context.Context, filter Filter) ([]WorkdayRecord, error)
}
