package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vandaszabo/mintaprojekt/modules/hrm/domain/aggregates/department"
	"github.com/vandaszabo/mintaprojekt/modules/hrm/infrastructure/persistence"
	"github.com/vandaszabo/mintaprojekt/modules/hrm/services"
	"github.com/vandaszabo/mintaprojekt/pkg/composables"
	"github.com/vandaszabo/mintaprojekt/pkg/eventbus"
	"github.com/vandaszabo/mintaprojekt/pkg/serrors"
)

// capturingBus records published events instead of dispatching them.
type capturingBus struct {
	events []interface{}
}

var _ eventbus.EventBus = (*capturingBus)(nil)

func (b *capturingBus) Publish(args ...interface{})     { b.events = append(b.events, args...) }
func (b *capturingBus) Subscribe(handler interface{})   {}
func (b *capturingBus) Unsubscribe(handler interface{}) {}
func (b *capturingBus) Clear()                          {}
func (b *capturingBus) SubscribersCount() int           { return 0 }

func setupDepartmentService(t *testing.T) (*services.DepartmentService, pgxmock.PgxPoolIface, context.Context, *capturingBus) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	bus := &capturingBus{}
	svc := services.NewDepartmentService(persistence.NewDepartmentRepository(), bus)

	ctx := composables.WithPool(context.Background(), mock)
	ctx = composables.WithActor(ctx, uuid.New())
	return svc, mock, ctx, bus
}

func TestDepartmentService_AddLeader(t *testing.T) {
	svc, mock, ctx, bus := setupDepartmentService(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO department_leaders").
		WithArgs(uint(10), uint(1), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := svc.AddLeader(ctx, 1, 10)
	require.NoError(t, err)

	require.Len(t, bus.events, 1)
	ev, ok := bus.events[0].(*department.LeaderAddedEvent)
	require.True(t, ok)
	assert.Equal(t, uint(1), ev.DepartmentID)
	assert.Equal(t, uint(10), ev.EmployeeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentService_AddLeader_MissingEmployee(t *testing.T) {
	svc, mock, ctx, bus := setupDepartmentService(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO department_leaders").
		WithArgs(uint(999), uint(1), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectRollback()

	err := svc.AddLeader(ctx, 1, 999)
	require.ErrorIs(t, err, persistence.ErrLeaderNotInserted)
	assert.Empty(t, bus.events)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentService_AddLeader_InvalidArguments(t *testing.T) {
	svc, _, ctx, bus := setupDepartmentService(t)

	err := svc.AddLeader(ctx, 0, 10)
	assert.True(t, serrors.IsInvalidArgument(err))

	err = svc.AddLeader(ctx, 1, 0)
	assert.True(t, serrors.IsInvalidArgument(err))
	assert.Empty(t, bus.events)
}

func TestDepartmentService_RemoveLeader(t *testing.T) {
	svc, mock, ctx, bus := setupDepartmentService(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE department_leaders").
		WithArgs(uint(10), uint(1), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := svc.RemoveLeader(ctx, 1, 10)
	require.NoError(t, err)

	require.Len(t, bus.events, 1)
	_, ok := bus.events[0].(*department.LeaderRemovedEvent)
	require.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentService_RemoveLeader_NoOpenRecord(t *testing.T) {
	svc, mock, ctx, bus := setupDepartmentService(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE department_leaders").
		WithArgs(uint(10), uint(1), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	err := svc.RemoveLeader(ctx, 1, 10)
	require.ErrorIs(t, err, persistence.ErrNoOpenLeadershipRecord)
	assert.Empty(t, bus.events)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentService_NoActor(t *testing.T) {
	svc, mock, _, _ := setupDepartmentService(t)

	ctx := composables.WithPool(context.Background(), mock)
	err := svc.AddLeader(ctx, 1, 10)
	require.ErrorIs(t, err, composables.ErrNoActor)
}
