package timesheet

import "github.com/shopspring/decimal"

// TimeEntry is a read-only time-tracking entry. Entries cover a date range
// and several entries may overlap the same calendar date; each overlapping
// entry contributes its full hours.
type TimeEntry struct {
	Name       string
	TotalHours decimal.Decimal
}
