package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/workdayhq/workday-backend-go/internal/domain/workday"
	"github.com/workdayhq/workday-backend-go/internal/pkg/database"
)

type workdayRepository struct {
	db *database.DB
}

// Create implements workday.WorkdayRepository.
func (r *workdayRepository) Create(ctx context.Context, wd workday.Workday) (workday.Workday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workdays (
			employee_id, company_id, log_date, hours_worked, target_hours,
			total_work_seconds, total_target_seconds, actual_working_hours,
			status, doc_status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		wd.EmployeeID,
		wd.CompanyID,
		wd.LogDate,
		wd.HoursWorked,
		wd.TargetHours,
		wd.TotalWorkSeconds,
		wd.TotalTargetSeconds,
		wd.ActualWorkingHours,
		wd.Status,
		wd.DocStatus,
	).Scan(&wd.ID, &wd.CreatedAt, &wd.UpdatedAt)
	if err != nil {
		return workday.Workday{}, fmt.Errorf("failed to create workday: %w", err)
	}

	return wd, nil
}

// ExistsForDate implements workday.WorkdayRepository.
func (r *workdayRepository) ExistsForDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM workdays
			WHERE employee_id = $1
			  AND log_date = $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check workday existence: %w", err)
	}

	return exists, nil
}

// ListMarkedDates implements workday.WorkdayRepository.
func (r *workdayRepository) ListMarkedDates(ctx context.Context, employeeID string, from, to time.Time) ([]time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT log_date
		FROM workdays
		WHERE employee_id = $1
		  AND log_date >= $2
		  AND log_date <= $3
		ORDER BY log_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query marked dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan marked date: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read marked dates: %w", err)
	}

	return dates, nil
}

func NewWorkdayRepository(db *database.DB) workday.WorkdayRepository {
	return &workdayRepository{db: db}
}
