package workday

import "errors"

// Workday domain errors
var (
	ErrEmployeeInactive = errors.New("employee is not active")
	ErrNoDatesSelected  = errors.New("please select a date")
	ErrWorkdayExists    = errors.New("workday already exists for this date")
)
