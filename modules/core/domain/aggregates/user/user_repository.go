package user

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetAll(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByUserName(ctx context.Context, userName string) (User, error)
	Create(ctx context.Context, data User) (User, error)
	Update(ctx context.Context, data User) error

	// GetRoles returns the names of the roles currently assigned to the user.
	GetRoles(ctx context.Context, userID uuid.UUID) ([]string, error)
	AddRole(ctx context.Context, userID uuid.UUID, roleID uint) error
	// RemoveAllRoles reports how many assignments were removed so callers
	// can detect a partial state.
	RemoveAllRoles(ctx context.Context, userID uuid.UUID) (int64, error)
	UpdateSecurityStamp(ctx context.Context, userID uuid.UUID, stamp uuid.UUID) error
	// HasClaim reports whether any of the user's roles carries the given
	// (claim type, claim value) pair.
	HasClaim(ctx context.Context, userID uuid.UUID, claimType, claimValue string) (bool, error)
}
