package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workdayhq/workday-backend-go/internal/domain/employee"
	"github.com/workdayhq/workday-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, status, joining_date, relieving_date
		FROM employees
		WHERE id = $1
	`

	var (
		emp           employee.Employee
		joiningDate   *time.Time
		relievingDate *time.Time
	)
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.CompanyID, &emp.Status, &joiningDate, &relievingDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	if joiningDate != nil {
		emp.JoiningDate = *joiningDate
	}
	emp.RelievingDate = relievingDate

	return emp, nil
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}
