package services

import (
	"context"
	"time"

	"github.com/vandaszabo/mintaprojekt/modules/hrm/domain/aggregates/department"
	"github.com/vandaszabo/mintaprojekt/pkg/composables"
	"github.com/vandaszabo/mintaprojekt/pkg/eventbus"
	"github.com/vandaszabo/mintaprojekt/pkg/serrors"
)

type DepartmentService struct {
	repo      department.Repository
	publisher eventbus.EventBus
}

func NewDepartmentService(repo department.Repository, publisher eventbus.EventBus) *DepartmentService {
	return &DepartmentService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllWithEmployees returns every department together with its full
// roster and the subset of employees currently leading it.
func (s *DepartmentService) GetAllWithEmployees(ctx context.Context) ([]department.Department, error) {
	return s.repo.GetAllWithEmployees(ctx)
}

func (s *DepartmentService) GetLeadershipHistory(ctx context.Context, departmentID uint) ([]department.Leadership, error) {
	if departmentID == 0 {
		return nil, serrors.InvalidArgument("department id must be greater than zero")
	}
	return s.repo.GetLeadershipHistory(ctx, departmentID)
}

func (s *DepartmentService) AddLeader(ctx context.Context, departmentID, employeeID uint) error {
	if departmentID == 0 {
		return serrors.InvalidArgument("department id must be greater than zero")
	}
	if employeeID == 0 {
		return serrors.InvalidArgument("employee id must be greater than zero")
	}

	ev, err := department.NewLeaderAddedEvent(ctx, departmentID, employeeID)
	if err != nil {
		return err
	}

	err = composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.AddLeader(txCtx, departmentID, employeeID, time.Now())
	})
	if err != nil {
		return err
	}

	composables.UseLogger(ctx).Infof("employee %d assigned as leader of department %d", employeeID, departmentID)
	s.publisher.Publish(ev)
	return nil
}

func (s *DepartmentService) RemoveLeader(ctx context.Context, departmentID, employeeID uint) error {
	if departmentID == 0 {
		return serrors.InvalidArgument("department id must be greater than zero")
	}
	if employeeID == 0 {
		return serrors.InvalidArgument("employee id must be greater than zero")
	}

	ev, err := department.NewLeaderRemovedEvent(ctx, departmentID, employeeID)
	if err != nil {
		return err
	}

	err = composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.RemoveLeader(txCtx, departmentID, employeeID, time.Now())
	})
	if err != nil {
		return err
	}

	composables.UseLogger(ctx).Infof("employee %d stepped down as leader of department %d", employeeID, departmentID)
	s.publisher.Publish(ev)
	return nil
}
