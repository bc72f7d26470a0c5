package employee

import "time"

// Employee is the read-only view of an employee owned by the wider HR
// platform. Only the fields the reconciliation core needs are carried.
type Employee struct {
	ID            string
	CompanyID     string
	Status        EmploymentStatus
	JoiningDate   time.Time
	RelievingDate *time.Time
}

type EmploymentStatus string

const (
	StatusActive   EmploymentStatus = "Active"
	StatusInactive EmploymentStatus = "Inactive"
)

// IsActive reports whether the employee may have workdays materialized.
func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}
