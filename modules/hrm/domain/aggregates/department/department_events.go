package department

import (
	"context"

	"github.com/google/uuid"

	"github.com/vandaszabo/mintaprojekt/pkg/composables"
)

type LeaderAddedEvent struct {
	Actor        uuid.UUID
	DepartmentID uint
	EmployeeID   uint
}

type LeaderRemovedEvent struct {
	Actor        uuid.UUID
	DepartmentID uint
	EmployeeID   uint
}

func NewLeaderAddedEvent(ctx context.Context, departmentID, employeeID uint) (*LeaderAddedEvent, error) {
	actor, err := composables.UseActor(ctx)
	if err != nil {
		return nil, err
	}
	return &LeaderAddedEvent{Actor: actor, DepartmentID: departmentID, EmployeeID: employeeID}, nil
}

func NewLeaderRemovedEvent(ctx context.Context, departmentID, employeeID uint) (*LeaderRemovedEvent, error) {
	actor, err := composables.UseActor(ctx)
	if err != nil {
		return nil, err
	}
	return &LeaderRemovedEvent{Actor: actor, DepartmentID: departmentID, EmployeeID: employeeID}, nil
}
