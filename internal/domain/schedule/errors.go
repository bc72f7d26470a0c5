package schedule

import "errors"

var ErrNoActiveSchedule = errors.New("no active weekly schedule for date")
