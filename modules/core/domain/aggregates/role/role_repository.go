package role

import (
	"context"

	"github.com/vandaszabo/mintaprojekt/modules/core/domain/entities/permission"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Role, error)
	// GetAllWithPermissions returns every role with its permission set
	// populated, for the administrator view.
	GetAllWithPermissions(ctx context.Context) ([]Role, error)
	GetByID(ctx context.Context, id uint) (Role, error)
	GetByName(ctx context.Context, name string) (Role, error)
	Create(ctx context.Context, data Role) (Role, error)
	GetPermissions(ctx context.Context, roleID uint) ([]permission.Permission, error)
	AddPermission(ctx context.Context, roleID uint, p permission.Permission) error
}
