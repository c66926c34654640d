package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/vandaszabo/mintaprojekt/modules/core/domain/aggregates/role"
	"github.com/vandaszabo/mintaprojekt/modules/core/domain/aggregates/user"
	"github.com/vandaszabo/mintaprojekt/modules/core/domain/entities/permission"
	"github.com/vandaszabo/mintaprojekt/pkg/composables"
	"github.com/vandaszabo/mintaprojekt/pkg/eventbus"
	"github.com/vandaszabo/mintaprojekt/pkg/serrors"
)

type UserService struct {
	repo      user.Repository
	roles     role.Repository
	publisher eventbus.EventBus
}

func NewUserService(repo user.Repository, roles role.Repository, publisher eventbus.EventBus) *UserService {
	return &UserService{
		repo:      repo,
		roles:     roles,
		publisher: publisher,
	}
}

func (s *UserService) GetAll(ctx context.Context) ([]user.User, error) {
	return s.repo.GetAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	if id == uuid.Nil {
		return nil, serrors.InvalidArgument("user id must not be empty")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetByUserName(ctx context.Context, userName string) (user.User, error) {
	if userName == "" {
		return nil, serrors.InvalidArgument("user name must not be empty")
	}
	return s.repo.GetByUserName(ctx, userName)
}

func (s *UserService) GetRoles(ctx context.Context, id uuid.UUID) ([]string, error) {
	if id == uuid.Nil {
		return nil, serrors.InvalidArgument("user id must not be empty")
	}
	return s.repo.GetRoles(ctx, id)
}

func (s *UserService) Create(ctx context.Context, data *user.CreateDTO) (user.User, error) {
	entity, err := data.ToEntity()
	if err != nil {
		return nil, serrors.InvalidArgument(err.Error())
	}

	var created user.User
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		created, err = s.repo.Create(txCtx, entity)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// HasPermission answers the authorization guard: does any of the user's
// roles carry a claim for the given permission.
func (s *UserService) HasPermission(ctx context.Context, userID uuid.UUID, p permission.Permission) (bool, error) {
	if userID == uuid.Nil {
		return false, serrors.InvalidArgument("user id must not be empty")
	}
	claim := p.Claim()
	return s.repo.HasClaim(ctx, userID, claim.Type, claim.Value)
}

// ChangeRoleAndLogout reassigns the user's single role and rotates their
// security stamp so every issued session is rejected at its next validation,
// as one all-or-nothing transaction. When the user already holds exactly the
// requested role the call succeeds without touching role state or the stamp,
// so existing sessions stay valid.
func (s *UserService) ChangeRoleAndLogout(ctx context.Context, userID uuid.UUID, roleName string) error {
	if userID == uuid.Nil {
		return serrors.InvalidArgument("user id must not be empty")
	}
	if roleName == "" {
		return serrors.InvalidArgument("role name must not be empty")
	}

	logger := composables.UseLogger(ctx)

	event, err := user.NewRoleChangedEvent(ctx, userID, roleName)
	if err != nil {
		return err
	}

	noop := false
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.GetByID(txCtx, userID); err != nil {
			return err
		}

		// The role must pre-exist; a role change never creates roles.
		target, err := s.roles.GetByName(txCtx, roleName)
		if err != nil {
			if serrors.IsNotFound(err) {
				return serrors.InvalidOperation("role does not exist: " + roleName)
			}
			return err
		}

		current, err := s.repo.GetRoles(txCtx, userID)
		if err != nil {
			return err
		}
		if len(current) == 1 && current[0] == roleName {
			noop = true
			return nil
		}

		removed, err := s.repo.RemoveAllRoles(txCtx, userID)
		if err != nil {
			return err
		}
		if removed != int64(len(current)) {
			return serrors.InvalidOperation("role removal left the user in a partial state")
		}

		if err := s.repo.AddRole(txCtx, userID, target.ID()); err != nil {
			return err
		}

		return s.repo.UpdateSecurityStamp(txCtx, userID, uuid.New())
	})
	if err != nil {
		return err
	}

	if noop {
		logger.Infof("user %s already has role %s, nothing to do", userID, roleName)
		return nil
	}

	s.publisher.Publish(event)
	return nil
}
