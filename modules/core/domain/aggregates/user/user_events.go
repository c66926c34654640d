package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/vandaszabo/mintaprojekt/pkg/composables"
)

// RoleChangedEvent is published after a role change has been committed and
// the user's sessions have been invalidated.
type RoleChangedEvent struct {
	Actor    uuid.UUID
	UserID   uuid.UUID
	RoleName string
}

func NewRoleChangedEvent(ctx context.Context, userID uuid.UUID, roleName string) (*RoleChangedEvent, error) {
	actor, err := composables.UseActor(ctx)
	if err != nil {
		return nil, err
	}
	return &RoleChangedEvent{
		Actor:    actor,
		UserID:   userID,
		RoleName: roleName,
	}, nil
}
