package employee

import (
	"context"

	"github.com/google/uuid"

	"github.com/vandaszabo/mintaprojekt/pkg/composables"
)

type CreatedEvent struct {
	Actor  uuid.UUID
	Result Employee
}

type UpdatedEvent struct {
	Actor  uuid.UUID
	Result Employee
}

type DeletedEvent struct {
	Actor  uuid.UUID
	Result Employee
}

func NewCreatedEvent(ctx context.Context, result Employee) (*CreatedEvent, error) {
	actor, err := composables.UseActor(ctx)
	if err != nil {
		return nil, err
	}
	return &CreatedEvent{Actor: actor, Result: result}, nil
}

func NewUpdatedEvent(ctx context.Context, result Employee) (*UpdatedEvent, error) {
	actor, err := composables.UseActor(ctx)
	if err != nil {
		return nil, err
	}
	return &UpdatedEvent{Actor: actor, Result: result}, nil
}

func NewDeletedEvent(ctx context.Context, result Employee) (*DeletedEvent, error) {
	actor, err := composables.UseActor(ctx)
	if err != nil {
		return nil, err
	}
	return &DeletedEvent{Actor: actor, Result: result}, nil
}
