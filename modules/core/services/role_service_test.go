package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vandaszabo/mintaprojekt/modules/core/domain/entities/permission"
	"github.com/vandaszabo/mintaprojekt/modules/core/infrastructure/persistence"
	"github.com/vandaszabo/mintaprojekt/modules/core/services"
	"github.com/vandaszabo/mintaprojekt/pkg/composables"
)

func setupRoleService(t *testing.T) (*services.RoleService, pgxmock.PgxPoolIface, context.Context) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	svc := services.NewRoleService(persistence.NewRoleRepository())
	return svc, mock, composables.WithPool(context.Background(), mock)
}

func roleRows(id uint, name string) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).AddRow(id, name, now, now)
}

func TestEnsureRole_AlreadyExists(t *testing.T) {
	svc, mock, ctx := setupRoleService(t)

	mock.ExpectQuery("FROM roles r").WithArgs("Admin").WillReturnRows(roleRows(1, "Admin"))

	found, err := svc.EnsureRole(ctx, "Admin")
	require.NoError(t, err)
	assert.Equal(t, uint(1), found.ID())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureRole_CreatesWhenAbsent(t *testing.T) {
	svc, mock, ctx := setupRoleService(t)

	mock.ExpectQuery("FROM roles r").
		WithArgs("Manager").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "created_at", "updated_at"}))
	mock.ExpectQuery("INSERT INTO roles").
		WithArgs("Manager").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(uint(2)))
	mock.ExpectQuery("FROM roles r").WithArgs(uint(2)).WillReturnRows(roleRows(2, "Manager"))

	created, err := svc.EnsureRole(ctx, "Manager")
	require.NoError(t, err)
	assert.Equal(t, "Manager", created.Name())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureRole_LosesCreateRace(t *testing.T) {
	svc, mock, ctx := setupRoleService(t)

	mock.ExpectQuery("FROM roles r").
		WithArgs("Manager").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "created_at", "updated_at"}))
	mock.ExpectQuery("INSERT INTO roles").
		WithArgs("Manager").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "roles_name_key"})
	mock.ExpectQuery("FROM roles r").WithArgs("Manager").WillReturnRows(roleRows(2, "Manager"))

	found, err := svc.EnsureRole(ctx, "Manager")
	require.NoError(t, err)
	assert.Equal(t, uint(2), found.ID())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureClaim_SkipsExisting(t *testing.T) {
	svc, mock, ctx := setupRoleService(t)

	mock.ExpectQuery("FROM roles r").WithArgs("User").WillReturnRows(roleRows(3, "User"))
	found, err := svc.GetByName(ctx, "User")
	require.NoError(t, err)

	mock.ExpectQuery("FROM role_claims").
		WithArgs(uint(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "role_id", "claim_type", "claim_value"}).
			AddRow(uint(9), uint(3), permission.ClaimType, string(permission.Select)))

	// The claim is already there, no insert happens.
	err = svc.EnsureClaim(ctx, found, permission.Select)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureClaim_AddsMissing(t *testing.T) {
	svc, mock, ctx := setupRoleService(t)

	mock.ExpectQuery("FROM roles r").WithArgs("User").WillReturnRows(roleRows(3, "User"))
	found, err := svc.GetByName(ctx, "User")
	require.NoError(t, err)

	mock.ExpectQuery("FROM role_claims").
		WithArgs(uint(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "role_id", "claim_type", "claim_value"}))
	mock.ExpectExec("INSERT INTO role_claims").
		WithArgs(uint(3), permission.ClaimType, string(permission.Select)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = svc.EnsureClaim(ctx, found, permission.Select)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
