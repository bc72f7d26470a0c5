package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/workdayhq/workday-backend-go/internal/domain/schedule"
	"github.com/workdayhq/workday-backend-go/internal/pkg/database"
)

type weeklyScheduleRepository struct {
	db *database.DB
}

// FindActiveID implements schedule.WeeklyScheduleRepository.
func (r *weeklyScheduleRepository) FindActiveID(ctx context.Context, employeeID string, date time.Time) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id
		FROM weekly_schedules
		WHERE employee_id = $1
		  AND valid_from <= $2
		  AND valid_to >= $2
		LIMIT 1
	`

	var id string
	err := q.QueryRow(ctx, query, employeeID, date).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", schedule.ErrNoActiveSchedule
		}
		return "", fmt.Errorf("failed to find active weekly schedule: %w", err)
	}

	return id, nil
}

// DayHours implements schedule.WeeklyScheduleRepository.
func (r *weeklyScheduleRepository) DayHours(ctx context.Context, scheduleID string, weekdayName string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT hours
		FROM weekly_schedule_days
		WHERE schedule_id = $1
		  AND day = $2
		LIMIT 1
	`

	var hours decimal.Decimal
	err := q.QueryRow(ctx, query, scheduleID, weekdayName).Scan(&hours)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No entry for this weekday means no obligation.
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to get schedule day hours: %w", err)
	}

	return hours, nil
}

func NewWeeklyScheduleRepository(db *database.DB) schedule.WeeklyScheduleRepository {
	return &weeklyScheduleRepository{db: db}
}
