package serrors_test

import (
	"testing"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/vandaszabo/mintaprojekt/pkg/serrors"
)

func TestClassification(t *testing.T) {
	notFound := serrors.NotFound("employee not found")
	wrapped := errors.Wrap(notFound, "failed to get employee")

	assert.True(t, serrors.IsNotFound(wrapped))
	assert.False(t, serrors.IsInvalidArgument(wrapped))
	assert.False(t, serrors.IsNoRowsAffected(wrapped))

	noRows := serrors.NoRowsAffected("no open leadership record")
	assert.True(t, serrors.IsNoRowsAffected(noRows))
	assert.False(t, serrors.IsNotFound(noRows))
}

func TestStoreFault_PreservesSQLState(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "department_leaders_employee_id_fkey"}
	fault := serrors.StoreFault("failed to delete employee", pgErr)

	assert.True(t, serrors.IsStoreFault(fault))
	assert.True(t, serrors.IsForeignKeyViolation(fault))
	assert.False(t, serrors.IsUniqueViolation(fault))
	assert.Equal(t, "23503", serrors.SQLState(fault))
}

func TestStoreFault_NonPgError(t *testing.T) {
	fault := serrors.StoreFault("failed to query", errors.New("connection reset"))

	assert.True(t, serrors.IsStoreFault(fault))
	assert.Empty(t, serrors.SQLState(fault))
	assert.False(t, serrors.IsForeignKeyViolation(fault))
}
