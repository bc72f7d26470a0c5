package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/workdayhq/workday-backend-go/internal/domain/holiday"
	"github.com/workdayhq/workday-backend-go/internal/pkg/database"
)

type holidayCalendar struct {
	db *database.DB
}

// Dates implements holiday.Calendar.
func (r *holidayCalendar) Dates(ctx context.Context, employeeID string, from, to time.Time) ([]time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT h.holiday_date
		FROM holidays h
		JOIN employees e ON e.holiday_list_id = h.holiday_list_id
		WHERE e.id = $1
		  AND h.holiday_date >= $2
		  AND h.holiday_date <= $3
		ORDER BY h.holiday_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query holiday dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan holiday date: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read holiday dates: %w", err)
	}

	return dates, nil
}

func NewHolidayCalendar(db *database.DB) holiday.Calendar {
	return &holidayCalendar{db: db}
}
