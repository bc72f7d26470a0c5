package workday

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/workdayhq/workday-backend-go/internal/domain/employee"
	"github.com/workdayhq/workday-backend-go/internal/domain/holiday"
	"github.com/workdayhq/workday-backend-go/internal/domain/schedule"
	"github.com/workdayhq/workday-backend-go/internal/domain/timesheet"
	"github.com/workdayhq/workday-backend-go/internal/domain/workday"
	"github.com/workdayhq/workday-backend-go/internal/pkg/database"
	"github.com/workdayhq/workday-backend-go/internal/pkg/dateutil"
	"github.com/workdayhq/workday-backend-go/internal/pkg/jobs"
	"github.com/workdayhq/workday-backend-go/internal/pkg/notify"
	"github.com/workdayhq/workday-backend-go/internal/repository/postgresql"
)

type WorkdayServiceImpl struct {
	db            *database.DB
	workdayRepo   workday.WorkdayRepository
	employeeRepo  employee.EmployeeRepository
	timesheetRepo timesheet.TimesheetRepository
	scheduleRepo  schedule.WeeklyScheduleRepository
	holidays      holiday.Calendar // nil when the platform lacks holiday lookup
	queue         *jobs.Queue
	notifier      notify.Notifier
	now           func() time.Time
	inTx          func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewWorkdayService(
	db *database.DB,
	workdayRepo workday.WorkdayRepository,
	employeeRepo employee.EmployeeRepository,
	timesheetRepo timesheet.TimesheetRepository,
	scheduleRepo schedule.WeeklyScheduleRepository,
	holidays holiday.Calendar,
	queue *jobs.Queue,
	notifier notify.Notifier,
) workday.Service {
	return &WorkdayServiceImpl{
		db:            db,
		workdayRepo:   workdayRepo,
		employeeRepo:  employeeRepo,
		timesheetRepo: timesheetRepo,
		scheduleRepo:  scheduleRepo,
		holidays:      holidays,
		queue:         queue,
		notifier:      notifier,
		now:           time.Now,
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
				return fn(context.WithValue(ctx, "tx", tx))
			})
		},
	}
}

// UnmarkedDays implements workday.Service.
func (s *WorkdayServiceImpl) UnmarkedDays(ctx context.Context, req workday.UnmarkedDaysRequest) ([]string, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	month, _ := dateutil.MonthNumber(req.Month)
	today := s.now()

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	startDay := 1
	endDay := dateutil.MonthDays(today.Year(), month)

	// Clip to the employment window when it starts or ends in this month.
	if !emp.JoiningDate.IsZero() && emp.JoiningDate.Month() == month {
		startDay = emp.JoiningDate.Day()
	}
	if emp.RelievingDate != nil && emp.RelievingDate.Month() == month {
		endDay = emp.RelievingDate.Day()
	}

	var days []time.Time
	for d := startDay; d <= endDay; d++ {
		days = append(days, time.Date(today.Year(), month, d, 0, 0, 0, 0, time.UTC))
	}
	if len(days) == 0 {
		return []string{}, nil
	}

	marked, err := s.markedSet(ctx, req.EmployeeID, days[0], days[len(days)-1])
	if err != nil {
		return nil, err
	}

	if req.ExcludeHolidays && s.holidays != nil {
		holidayDates, err := s.holidays.Dates(ctx, req.EmployeeID, days[0], days[len(days)-1])
		if err != nil {
			return nil, fmt.Errorf("failed to lookup holiday dates: %w", err)
		}
		for _, h := range holidayDates {
			marked[dateutil.FormatDate(h)] = struct{}{}
		}
	}

	unmarked := make([]string, 0, len(days))
	for _, d := range days {
		// Stops before today so future days are never pre-marked. Day and
		// month are compared independently as plain numbers; across a year
		// boundary this is not calendar order, and is kept that way.
		if today.Day() <= d.Day() && int(today.Month()) <= int(d.Month()) {
			break
		}
		if _, ok := marked[dateutil.FormatDate(d)]; !ok {
			unmarked = append(unmarked, dateutil.FormatDate(d))
		}
	}

	return unmarked, nil
}

// UnmarkedRange implements workday.Service.
func (s *WorkdayServiceImpl) UnmarkedRange(ctx context.Context, req workday.UnmarkedRangeRequest) ([]string, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	from, _ := dateutil.ParseDate(req.FromDate)
	to, _ := dateutil.ParseDate(req.ToDate)

	marked, err := s.markedSet(ctx, req.EmployeeID, from, to)
	if err != nil {
		return nil, err
	}

	var unmarked []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if _, ok := marked[dateutil.FormatDate(d)]; !ok {
			unmarked = append(unmarked, dateutil.FormatDate(d))
		}
	}

	return unmarked, nil
}

func (s *WorkdayServiceImpl) markedSet(ctx context.Context, employeeID string, from, to time.Time) (map[string]struct{}, error) {
	dates, err := s.workdayRepo.ListMarkedDates(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query workdays: %w", err)
	}
	marked := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		marked[dateutil.FormatDate(d)] = struct{}{}
	}
	return marked, nil
}

// BulkProcess implements workday.Service. Each date is processed
// independently and sequentially; one date's failure never aborts the batch.
func (s *WorkdayServiceImpl) BulkProcess(ctx context.Context, req workday.BulkProcessRequest) (workday.BulkProcessResult, error) {
	emp, err := s.validateBatch(ctx, req)
	if err != nil {
		return workday.BulkProcessResult{}, err
	}

	result := workday.BulkProcessResult{
		Created: []string{},
		Skipped: []string{},
		Failed:  []workday.DateFailure{},
	}

	for _, dateStr := range req.UnmarkedDays {
		logDate, _ := dateutil.ParseDate(dateStr)

		created, err := s.processDate(ctx, emp, logDate)
		if err != nil {
			slog.ErrorContext(ctx, "Workday creation failed",
				"employee_id", emp.ID,
				"log_date", dateStr,
				"error", err)
			s.notifier.Notice(ctx, fmt.Sprintf("Something went wrong in Workday Creation for %s: %v", dateStr, err))
			result.Failed = append(result.Failed, workday.DateFailure{
				Date:   dateStr,
				Reason: err.Error(),
			})
			continue
		}
		if created {
			result.Created = append(result.Created, dateStr)
		} else {
			result.Skipped = append(result.Skipped, dateStr)
		}
	}

	return result, nil
}

// BulkProcessBackground implements workday.Service. Validation still happens
// synchronously; only the per-date loop is deferred, as one unit of work.
func (s *WorkdayServiceImpl) BulkProcessBackground(ctx context.Context, req workday.BulkProcessRequest) error {
	if _, err := s.validateBatch(ctx, req); err != nil {
		return err
	}

	jobName := fmt.Sprintf("bulk_process_workdays:%s", req.EmployeeID)
	err := s.queue.Enqueue(jobName, func(jobCtx context.Context) error {
		_, err := s.BulkProcess(jobCtx, req)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to enqueue bulk operation: %w", err)
	}

	s.notifier.Notice(ctx, "Bulk operation is enqueued in background.")
	return nil
}

func (s *WorkdayServiceImpl) validateBatch(ctx context.Context, req workday.BulkProcessRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	if len(req.UnmarkedDays) == 0 {
		return employee.Employee{}, workday.ErrNoDatesSelected
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if !emp.IsActive() {
		return employee.Employee{}, workday.ErrEmployeeInactive
	}

	return emp, nil
}

// processDate materializes one date. The bool result reports whether a
// record was created; a date with no time entries is skipped, not failed.
func (s *WorkdayServiceImpl) processDate(ctx context.Context, emp employee.Employee, logDate time.Time) (bool, error) {
	entries, err := s.timesheetRepo.ListForDate(ctx, emp.ID, logDate)
	if err != nil {
		return false, fmt.Errorf("query time entries: %w", err)
	}
	if len(entries) == 0 {
		// Nothing to materialize.
		return false, nil
	}

	hoursWorked := decimal.Zero
	for _, entry := range entries {
		hoursWorked = hoursWorked.Add(entry.TotalHours)
	}

	targetHours, err := s.targetHours(ctx, emp.ID, logDate)
	if err != nil {
		return false, err
	}

	wd, err := workday.NewWorkday(workday.NewWorkdayParams{
		EmployeeID:  emp.ID,
		CompanyID:   emp.CompanyID,
		LogDate:     logDate,
		HoursWorked: hoursWorked,
		TargetHours: targetHours,
	})
	if err != nil {
		return false, err
	}

	// The existence check and the insert run in one transaction so two
	// concurrent batches cannot both pass the check.
	err = s.inTx(ctx, func(txCtx context.Context) error {
		exists, err := s.workdayRepo.ExistsForDate(txCtx, emp.ID, logDate)
		if err != nil {
			return fmt.Errorf("check existing workday: %w", err)
		}
		if exists {
			return workday.ErrWorkdayExists
		}

		if _, err := s.workdayRepo.Create(txCtx, wd); err != nil {
			return fmt.Errorf("create workday: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	return true, nil
}

// targetHours resolves the expected hours for the date from the employee's
// active weekly schedule. Missing data means no obligation, never an error.
func (s *WorkdayServiceImpl) targetHours(ctx context.Context, employeeID string, date time.Time) (decimal.Decimal, error) {
	scheduleID, err := s.scheduleRepo.FindActiveID(ctx, employeeID, date)
	if err != nil {
		if errors.Is(err, schedule.ErrNoActiveSchedule) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("query weekly schedule: %w", err)
	}

	hours, err := s.scheduleRepo.DayHours(ctx, scheduleID, date.Weekday().String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("query schedule day hours: %w", err)
	}

	return hours, nil
}
