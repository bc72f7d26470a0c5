package postgresql

import (
	"context"
	"fmt"

	"github.com/workdayhq/workday-backend-go/internal/domain/report"
	"github.com/workdayhq/workday-backend-go/internal/domain/workday"
	"github.com/workdayhq/workday-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

// ListWorkdays implements report.ReportRepository. All filter values are
// bound as parameters, never interpolated into the SQL text.
func (r *reportRepository) ListWorkdays(ctx context.Context, filter report.Filter) ([]report.WorkdayRecord, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	baseWhere := "doc_status < $1"
	args := []interface{}{workday.DocStatusCancelled}
	argIdx := 2

	if filter.Month != 0 && filter.Year != 0 {
		baseWhere += fmt.Sprintf(" AND EXTRACT(MONTH FROM log_date) = $%d AND EXTRACT(YEAR FROM log_date) = $%d", argIdx, argIdx+1)
		args = append(args, int(filter.Month), filter.Year)
		argIdx += 2
	}

	if filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, filter.EmployeeID)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT id, log_date, employee_id, status, target_hours,
			   total_work_seconds, total_target_seconds, actual_working_hours
		FROM workdays
		WHERE %s
		ORDER BY log_date ASC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query workdays for report: %w", err)
	}
	defer rows.Close()

	var records []report.WorkdayRecord
	for rows.Next() {
		var rec report.WorkdayRecord
		err := rows.Scan(
			&rec.Name, &rec.LogDate, &rec.EmployeeID, &rec.Status, &rec.TargetHours,
			&rec.TotalWorkSeconds, &rec.TotalTargetSeconds, &rec.ActualWorkingHours,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workday record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read workday records: %w", err)
	}

	return records, nil
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}
