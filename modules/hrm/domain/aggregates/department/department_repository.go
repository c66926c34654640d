package department

import (
	"context"
	"time"
)

type Repository interface {
	// GetAllWithEmployees returns every department with its full roster and
	// the currently active leader subset.
	GetAllWithEmployees(ctx context.Context) ([]Department, error)
	// AddLeader opens a new leadership record starting at start. The write
	// affects zero rows when the employee does not exist.
	AddLeader(ctx context.Context, departmentID, employeeID uint, start time.Time) error
	// RemoveLeader closes the open leadership record for the pair by setting
	// its end date. The write affects zero rows when no open record exists.
	RemoveLeader(ctx context.Context, departmentID, employeeID uint, end time.Time) error
	GetLeadershipHistory(ctx context.Context, departmentID uint) ([]Leadership, error)
}
