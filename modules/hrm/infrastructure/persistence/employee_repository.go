package persistence

import (
	"context"
	"fmt"

	gerrors "github.com/go-faster/errors"

	"github.com/vandaszabo/mintaprojekt/modules/hrm/domain/aggregates/employee"
	"github.com/vandaszabo/mintaprojekt/modules/hrm/infrastructure/persistence/models"
	"github.com/vandaszabo/mintaprojekt/pkg/composables"
	"github.com/vandaszabo/mintaprojekt/pkg/repo"
	"github.com/vandaszabo/mintaprojekt/pkg/serrors"
)

var ErrEmployeeNotFound = serrors.NotFound("employee not found")

const (
	employeeFindQuery = `
		SELECT
			e.id,
			e.first_name,
			e.last_name,
			e.email,
			e.phone,
			e.hire_date,
			e.job_title,
			e.department_id,
			e.created_by,
			e.updated_by,
			e.created_at,
			e.updated_at
		FROM employees e`

	employeeInsertQuery = `
		INSERT INTO employees (
			first_name, last_name, email, phone, hire_date, job_title, department_id,
			created_by, updated_by, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8, now(), now())
		RETURNING id`

	employeeUpdateQuery = `
		UPDATE employees
		SET first_name = $2,
			last_name = $3,
			email = $4,
			phone = $5,
			hire_date = $6,
			job_title = $7,
			department_id = $8,
			updated_by = $9,
			updated_at = now()
		WHERE id = $1`

	employeeDeleteQuery = `DELETE FROM employees WHERE id = $1`
)

type PgEmployeeRepository struct{}

func NewEmployeeRepository() employee.Repository {
	return &PgEmployeeRepository{}
}

func (g *PgEmployeeRepository) GetPaginated(ctx context.Context, params *employee.FindParams) ([]employee.Employee, error) {
	var (
		conditions []string
		args       []interface{}
	)
	if params.DepartmentID != 0 {
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", len(args)+1))
		args = append(args, params.DepartmentID)
	}

	query := repo.Join(
		employeeFindQuery,
		repo.JoinWhere(conditions...),
		"ORDER BY e.id",
		repo.FormatLimitOffset(params.Limit, params.Offset),
	)
	employees, err := g.queryEmployees(ctx, query, args...)
	if err != nil {
		return nil, gerrors.Wrap(err, "failed to get paginated employees")
	}
	return employees, nil
}

func (g *PgEmployeeRepository) GetByID(ctx context.Context, id uint) (employee.Employee, error) {
	employees, err := g.queryEmployees(ctx, employeeFindQuery+" WHERE e.id = $1", id)
	if err != nil {
		return nil, gerrors.Wrapf(err, "failed to query employee with id: %d", id)
	}
	if len(employees) == 0 {
		return nil, ErrEmployeeNotFound
	}
	return employees[0], nil
}

func (g *PgEmployeeRepository) Create(ctx context.Context, data employee.Employee) (employee.Employee, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	dbEmployee := toDBEmployee(data)
	var id uint
	if err := tx.QueryRow(
		ctx,
		employeeInsertQuery,
		dbEmployee.FirstName,
		dbEmployee.LastName,
		dbEmployee.Email,
		dbEmployee.Phone,
		dbEmployee.HireDate,
		dbEmployee.JobTitle,
		dbEmployee.DepartmentID,
		dbEmployee.CreatedBy,
	).Scan(&id); err != nil {
		return nil, serrors.StoreFault("failed to create employee", err)
	}
	return g.GetByID(ctx, id)
}

func (g *PgEmployeeRepository) Update(ctx context.Context, data employee.Employee) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	dbEmployee := toDBEmployee(data)
	tag, err := tx.Exec(
		ctx,
		employeeUpdateQuery,
		dbEmployee.ID,
		dbEmployee.FirstName,
		dbEmployee.LastName,
		dbEmployee.Email,
		dbEmployee.Phone,
		dbEmployee.HireDate,
		dbEmployee.JobTitle,
		dbEmployee.DepartmentID,
		dbEmployee.UpdatedBy,
	)
	if err != nil {
		return serrors.StoreFault("failed to update employee", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

// Delete removes the employee row. The store's foreign keys reject deleting
// an employee with leadership history; that surfaces as a store fault
// carrying the referential-integrity SQLSTATE, and the row is kept.
func (g *PgEmployeeRepository) Delete(ctx context.Context, id uint) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, employeeDeleteQuery, id)
	if err != nil {
		return serrors.StoreFault("failed to delete employee", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func (g *PgEmployeeRepository) queryEmployees(ctx context.Context, query string, args ...any) ([]employee.Employee, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, serrors.StoreFault("failed to query employees", err)
	}
	defer rows.Close()

	var out []employee.Employee
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(
			&e.ID,
			&e.FirstName,
			&e.LastName,
			&e.Email,
			&e.Phone,
			&e.HireDate,
			&e.JobTitle,
			&e.DepartmentID,
			&e.CreatedBy,
			&e.UpdatedBy,
			&e.CreatedAt,
			&e.UpdatedAt,
		); err != nil {
			return nil, serrors.StoreFault("failed to scan employee row", err)
		}
		entity, err := toDomainEmployee(&e)
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, serrors.StoreFault("failed to read employee rows", err)
	}
	return out, nil
}
