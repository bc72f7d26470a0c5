package workday

import "context"

// Service is the reconciliation core exposed to invokers: finding unmarked
// days and materializing workday records from time-tracking entries.
type Service interface {
	// UnmarkedDays returns the unmarked dates of the named month in the
	// current year, earliest first, stopping before today.
	UnmarkedDays(ctx context.Context, req UnmarkedDaysRequest) ([]string, error)

	// UnmarkedRange returns every unmarked date in the inclusive range,
	// future dates included.
	UnmarkedRange(ctx context.Context, req UnmarkedRangeRequest) ([]string, error)

	// BulkProcess materializes one workday per selected date, isolating
	// per-date failures; the batch never aborts on a single date.
	BulkProcess(ctx context.Context, req BulkProcessRequest) (BulkProcessResult, error)

	// BulkProcessBackground validates, then defers the identical batch to
	// the background worker and acknowledges immediately.
	BulkProcessBackground(ctx context.Context, req BulkProcessRequest) error
}
