package services

import (
	"context"

	"github.com/vandaszabo/mintaprojekt/modules/core/domain/aggregates/role"
	"github.com/vandaszabo/mintaprojekt/modules/core/domain/entities/permission"
	"github.com/vandaszabo/mintaprojekt/pkg/composables"
	"github.com/vandaszabo/mintaprojekt/pkg/serrors"
)

type RoleService struct {
	repo role.Repository
}

func NewRoleService(repo role.Repository) *RoleService {
	return &RoleService{repo: repo}
}

func (s *RoleService) GetAll(ctx context.Context) ([]role.Role, error) {
	return s.repo.GetAll(ctx)
}

func (s *RoleService) GetByName(ctx context.Context, name string) (role.Role, error) {
	return s.repo.GetByName(ctx, name)
}

// GetRolesWithClaims is the read-only aggregate behind the administrator view.
func (s *RoleService) GetRolesWithClaims(ctx context.Context) ([]role.Role, error) {
	return s.repo.GetAllWithPermissions(ctx)
}

// EnsureRole looks the role up by name and creates it when absent. Losing a
// create race to another instance is treated the same as "already exists".
func (s *RoleService) EnsureRole(ctx context.Context, name string) (role.Role, error) {
	existing, err := s.repo.GetByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !serrors.IsNotFound(err) {
		return nil, err
	}

	created, err := s.repo.Create(ctx, role.New(name))
	if err != nil {
		if serrors.IsUniqueViolation(err) {
			return s.repo.GetByName(ctx, name)
		}
		return nil, err
	}

	composables.UseLogger(ctx).Infof("role %s created", name)
	return created, nil
}

// EnsureClaim adds the permission claim to the role unless an identical
// (type, value) pair is already present. Calling it twice with the same
// arguments leaves the claim set unchanged.
func (s *RoleService) EnsureClaim(ctx context.Context, r role.Role, p permission.Permission) error {
	existing, err := s.repo.GetPermissions(ctx, r.ID())
	if err != nil {
		return err
	}
	for _, candidate := range existing {
		if candidate == p {
			return nil
		}
	}
	return s.repo.AddPermission(ctx, r.ID(), p)
}
