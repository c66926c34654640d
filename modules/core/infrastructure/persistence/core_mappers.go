package persistence

import (
	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/vandaszabo/mintaprojekt/modules/core/domain/aggregates/role"
	"github.com/vandaszabo/mintaprojekt/modules/core/domain/aggregates/user"
	"github.com/vandaszabo/mintaprojekt/modules/core/domain/entities/permission"
	"github.com/vandaszabo/mintaprojekt/modules/core/domain/value_objects/internet"
	"github.com/vandaszabo/mintaprojekt/modules/core/infrastructure/persistence/models"
)

func toDomainRole(dbRole *models.Role, permissions []permission.Permission) role.Role {
	return role.New(
		dbRole.Name,
		role.WithID(dbRole.ID),
		role.WithPermissions(permissions),
		role.WithCreatedAt(dbRole.CreatedAt),
		role.WithUpdatedAt(dbRole.UpdatedAt),
	)
}

func toDomainPermissions(claims []models.RoleClaim) ([]permission.Permission, error) {
	permissions := make([]permission.Permission, 0, len(claims))
	for _, c := range claims {
		p, err := permission.FromClaim(permission.Claim{Type: c.ClaimType, Value: c.ClaimValue})
		if err != nil {
			return nil, errors.Wrap(err, "failed to map role claim")
		}
		permissions = append(permissions, p)
	}
	return permissions, nil
}

func toDomainUser(dbUser *models.User) (user.User, error) {
	id, err := uuid.Parse(dbUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse user id")
	}
	stamp, err := uuid.Parse(dbUser.SecurityStamp)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse security stamp")
	}
	email, err := internet.NewEmail(dbUser.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse user email")
	}
	return user.New(
		dbUser.UserName,
		email,
		user.WithID(id),
		user.WithPasswordHash(dbUser.PasswordHash),
		user.WithSecurityStamp(stamp),
		user.WithCreatedAt(dbUser.CreatedAt),
		user.WithUpdatedAt(dbUser.UpdatedAt),
	), nil
}

func toDBUser(entity user.User) *models.User {
	return &models.User{
		ID:            entity.ID().String(),
		UserName:      entity.UserName(),
		Email:         entity.Email().Value(),
		PasswordHash:  entity.PasswordHash(),
		SecurityStamp: entity.SecurityStamp().String(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}
