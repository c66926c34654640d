package seed

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/vandaszabo/mintaprojekt/modules/core/domain/aggregates/role"
	"github.com/vandaszabo/mintaprojekt/modules/core/domain/entities/permission"
	"github.com/vandaszabo/mintaprojekt/modules/core/services"
)

type rolePermissions struct {
	name        string
	permissions []permission.Permission
}

// Built-in roles and their permission sets. Converged idempotently at every
// process start; re-running against an already seeded store is a no-op.
var builtinRoles = []rolePermissions{
	{role.Admin, []permission.Permission{permission.Select, permission.Insert, permission.Update, permission.Delete}},
	{role.Manager, []permission.Permission{permission.Select, permission.Insert, permission.Update}},
	{role.User, []permission.Permission{permission.Select}},
}

func Roles(ctx context.Context, roleService *services.RoleService) error {
	for _, rp := range builtinRoles {
		entity, err := roleService.EnsureRole(ctx, rp.name)
		if err != nil {
			return errors.Wrapf(err, "failed to ensure role %s", rp.name)
		}
		for _, p := range rp.permissions {
			if err := roleService.EnsureClaim(ctx, entity, p); err != nil {
				return errors.Wrapf(err, "failed to ensure claim %s on role %s", p, rp.name)
			}
		}
	}
	return nil
}
