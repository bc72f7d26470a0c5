package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/workdayhq/workday-backend-go/internal/domain/timesheet"
	"github.com/workdayhq/workday-backend-go/internal/pkg/database"
)

type timesheetRepository struct {
	db *database.DB
}

// ListForDate implements timesheet.TimesheetRepository.
func (r *timesheetRepository) ListForDate(ctx context.Context, employeeID string, date time.Time) ([]timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT name, total_hours
		FROM time_entries
		WHERE employee_id = $1
		  AND start_date <= $2
		  AND end_date >= $2
	`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query time entries: %w", err)
	}
	defer rows.Close()

	var entries []timesheet.TimeEntry
	for rows.Next() {
		var entry timesheet.TimeEntry
		if err := rows.Scan(&entry.Name, &entry.TotalHours); err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read time entries: %w", err)
	}

	return entries, nil
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepository{db: db}
}
