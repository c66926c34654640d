package persistence

import (
	"context"
	"time"

	"github.com/vandaszabo/mintaprojekt/modules/hrm/domain/aggregates/department"
	"github.com/vandaszabo/mintaprojekt/modules/hrm/infrastructure/persistence/models"
	"github.com/vandaszabo/mintaprojekt/pkg/composables"
	"github.com/vandaszabo/mintaprojekt/pkg/serrors"
)

var (
	ErrNoDepartments          = serrors.NotFound("no departments found")
	ErrLeaderNotInserted      = serrors.NoRowsAffected("no employee found with the provided id for leader create")
	ErrNoOpenLeadershipRecord = serrors.NoRowsAffected("no open leadership record found for the pair")
)

const (
	// One row per (department, employee) with the employee's currently
	// active leadership record joined in when there is one. Departments
	// without employees still produce a row of nulls.
	departmentRosterQuery = `
		SELECT
			d.id,
			d.name,
			e.id,
			e.first_name,
			e.last_name,
			e.job_title,
			dl.start_date,
			dl.end_date
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id
		LEFT JOIN department_leaders dl
			ON dl.employee_id = e.id
			AND dl.department_id = d.id
			AND (dl.end_date IS NULL OR dl.end_date >= CURRENT_DATE)
		ORDER BY d.id, e.id`

	// INSERT ... SELECT so a missing employee shows up as zero rows
	// affected instead of a foreign key fault.
	leaderInsertQuery = `
		INSERT INTO department_leaders (employee_id, department_id, start_date)
		SELECT e.id, $2, $3
		FROM employees e
		WHERE e.id = $1`

	leaderCloseQuery = `
		UPDATE department_leaders
		SET end_date = $3
		WHERE employee_id = $1 AND department_id = $2 AND end_date IS NULL`

	leadershipHistoryQuery = `
		SELECT employee_id, department_id, start_date, end_date
		FROM department_leaders
		WHERE department_id = $1
		ORDER BY start_date, employee_id`
)

type PgDepartmentRepository struct{}

func NewDepartmentRepository() department.Repository {
	return &PgDepartmentRepository{}
}

func (g *PgDepartmentRepository) GetAllWithEmployees(ctx context.Context) ([]department.Department, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, departmentRosterQuery)
	if err != nil {
		return nil, serrors.StoreFault("failed to query departments", err)
	}
	defer rows.Close()

	var rosterRows []models.DepartmentRosterRow
	for rows.Next() {
		var row models.DepartmentRosterRow
		if err := rows.Scan(
			&row.DepartmentID,
			&row.DepartmentName,
			&row.EmployeeID,
			&row.FirstName,
			&row.LastName,
			&row.JobTitle,
			&row.StartDate,
			&row.EndDate,
		); err != nil {
			return nil, serrors.StoreFault("failed to scan department row", err)
		}
		rosterRows = append(rosterRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, serrors.StoreFault("failed to read department rows", err)
	}

	departments, err := toDomainDepartments(rosterRows, time.Now())
	if err != nil {
		return nil, err
	}
	// An organization without departments is a provisioning fault, not an
	// empty listing.
	if len(departments) == 0 {
		return nil, ErrNoDepartments
	}
	return departments, nil
}

func (g *PgDepartmentRepository) AddLeader(ctx context.Context, departmentID, employeeID uint, start time.Time) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, leaderInsertQuery, employeeID, departmentID, start)
	if err != nil {
		return serrors.StoreFault("failed to add department leader", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLeaderNotInserted
	}
	return nil
}

func (g *PgDepartmentRepository) RemoveLeader(ctx context.Context, departmentID, employeeID uint, end time.Time) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, leaderCloseQuery, employeeID, departmentID, end)
	if err != nil {
		return serrors.StoreFault("failed to remove department leader", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNoOpenLeadershipRecord
	}
	return nil
}

func (g *PgDepartmentRepository) GetLeadershipHistory(ctx context.Context, departmentID uint) ([]department.Leadership, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, leadershipHistoryQuery, departmentID)
	if err != nil {
		return nil, serrors.StoreFault("failed to query leadership history", err)
	}
	defer rows.Close()

	var out []department.Leadership
	for rows.Next() {
		var record department.Leadership
		if err := rows.Scan(&record.EmployeeID, &record.DepartmentID, &record.StartDate, &record.EndDate); err != nil {
			return nil, serrors.StoreFault("failed to scan leadership row", err)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, serrors.StoreFault("failed to read leadership rows", err)
	}
	return out, nil
}
