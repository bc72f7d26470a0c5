package holiday

import (
	"context"
	"time"
)

// Calendar is the optional holiday-lookup capability. The composition root
// injects an implementation when the platform provides holiday lists and nil
// when it does not; callers must treat a nil Calendar as "capability absent".
type Calendar interface {
	// Dates returns the employee's holiday dates within [from, to].
	Dates(ctx context.Context, employeeID string, from, to time.Time) ([]time.Time, error)
}
