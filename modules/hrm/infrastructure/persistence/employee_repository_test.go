package persistence_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vandaszabo/mintaprojekt/modules/core/domain/value_objects/internet"
	"github.com/vandaszabo/mintaprojekt/modules/hrm/domain/aggregates/employee"
	"github.com/vandaszabo/mintaprojekt/modules/hrm/domain/value_objects/phone"
	"github.com/vandaszabo/mintaprojekt/modules/hrm/infrastructure/persistence"
	"github.com/vandaszabo/mintaprojekt/pkg/serrors"
)

func testEmployee(t *testing.T, id uint, actor uuid.UUID) employee.Employee {
	t.Helper()
	email, err := internet.NewEmail("alice.smith@example.com")
	require.NoError(t, err)
	number, err := phone.New("+36", "30", "1234567")
	require.NoError(t, err)
	return employee.New(
		"Alice", "Smith", email, number,
		time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
		"HR Manager", 1,
		employee.WithID(id),
		employee.WithCreatedBy(actor),
		employee.WithUpdatedBy(actor),
	)
}

func employeeColumns() []string {
	return []string{
		"id", "first_name", "last_name", "email", "phone", "hire_date",
		"job_title", "department_id", "created_by", "updated_by",
		"created_at", "updated_at",
	}
}

func employeeRow(rows *pgxmock.Rows, id uint, actor string) *pgxmock.Rows {
	now := time.Now()
	return rows.AddRow(
		id, "Alice", "Smith", "alice.smith@example.com", "+36301234567",
		time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
		"HR Manager", uint(1), actor, actor, now, now,
	)
}

func TestEmployeeRepository_GetPaginated(t *testing.T) {
	mock, ctx := mockPoolCtx(t)
	actor := uuid.NewString()

	rows := employeeRow(pgxmock.NewRows(employeeColumns()), 10, actor)
	mock.ExpectQuery("FROM employees e ORDER BY e.id").WillReturnRows(rows)

	employees, err := persistence.NewEmployeeRepository().GetPaginated(ctx, &employee.FindParams{})
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, uint(10), employees[0].ID())
	assert.Equal(t, "Alice Smith", employees[0].FullName())
	assert.Equal(t, "+36301234567", employees[0].Phone().String())
	assert.Equal(t, actor, employees[0].CreatedBy().String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_GetPaginated_WithBounds(t *testing.T) {
	mock, ctx := mockPoolCtx(t)
	actor := uuid.NewString()

	rows := employeeRow(pgxmock.NewRows(employeeColumns()), 10, actor)
	mock.ExpectQuery(`FROM employees e WHERE e.department_id = \$1 ORDER BY e.id LIMIT 2 OFFSET 4`).
		WithArgs(uint(1)).
		WillReturnRows(rows)

	employees, err := persistence.NewEmployeeRepository().GetPaginated(ctx, &employee.FindParams{
		Limit:        2,
		Offset:       4,
		DepartmentID: 1,
	})
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, uint(1), employees[0].DepartmentID())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_GetByID_NotFound(t *testing.T) {
	mock, ctx := mockPoolCtx(t)

	mock.ExpectQuery("FROM employees e").
		WithArgs(uint(404)).
		WillReturnRows(pgxmock.NewRows(employeeColumns()))

	_, err := persistence.NewEmployeeRepository().GetByID(ctx, 404)
	require.ErrorIs(t, err, persistence.ErrEmployeeNotFound)
	assert.True(t, serrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Update_NotFound(t *testing.T) {
	mock, ctx := mockPoolCtx(t)
	actor := uuid.New()

	mock.ExpectExec("UPDATE employees").
		WithArgs(
			uint(404), "Alice", "Smith", "alice.smith@example.com", "+36301234567",
			time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC), "HR Manager", uint(1), actor.String(),
		).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := persistence.NewEmployeeRepository().Update(ctx, testEmployee(t, 404, actor))
	require.ErrorIs(t, err, persistence.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Delete(t *testing.T) {
	mock, ctx := mockPoolCtx(t)

	mock.ExpectExec("DELETE FROM employees").
		WithArgs(uint(10)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := persistence.NewEmployeeRepository().Delete(ctx, 10)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Delete_LeaderReferenced(t *testing.T) {
	mock, ctx := mockPoolCtx(t)

	mock.ExpectExec("DELETE FROM employees").
		WithArgs(uint(10)).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "department_leaders_employee_id_fkey"})

	err := persistence.NewEmployeeRepository().Delete(ctx, 10)
	require.Error(t, err)
	assert.True(t, serrors.IsStoreFault(err))
	assert.True(t, serrors.IsForeignKeyViolation(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Delete_NotFound(t *testing.T) {
	mock, ctx := mockPoolCtx(t)

	mock.ExpectExec("DELETE FROM employees").
		WithArgs(uint(404)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := persistence.NewEmployeeRepository().Delete(ctx, 404)
	require.ErrorIs(t, err, persistence.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
