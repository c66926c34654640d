package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/vandaszabo/mintaprojekt/modules/hrm/domain/aggregates/employee"
	"github.com/vandaszabo/mintaprojekt/pkg/composables"
	"github.com/vandaszabo/mintaprojekt/pkg/eventbus"
	"github.com/vandaszabo/mintaprojekt/pkg/serrors"
)

type EmployeeService struct {
	repo      employee.Repository
	publisher eventbus.EventBus
}

func NewEmployeeService(repo employee.Repository, publisher eventbus.EventBus) *EmployeeService {
	return &EmployeeService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *EmployeeService) GetPaginated(ctx context.Context, params *employee.FindParams) ([]employee.Employee, error) {
	if params.Limit < 0 || params.Offset < 0 {
		return nil, serrors.InvalidArgument("limit and offset must not be negative")
	}
	return s.repo.GetPaginated(ctx, params)
}

func (s *EmployeeService) GetByID(ctx context.Context, id uint) (employee.Employee, error) {
	if id == 0 {
		return nil, serrors.InvalidArgument("employee id must be greater than zero")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *EmployeeService) Create(ctx context.Context, data *employee.CreateDTO) (employee.Employee, error) {
	actor, err := composables.UseActor(ctx)
	if err != nil {
		return nil, err
	}

	entity, err := data.ToEntity()
	if err != nil {
		return nil, serrors.InvalidArgument(err.Error())
	}

	var created employee.Employee
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		created, err = s.repo.Create(txCtx, withAudit(entity, actor))
		return err
	})
	if err != nil {
		return nil, err
	}

	ev, err := employee.NewCreatedEvent(ctx, created)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(ev)
	return created, nil
}

func (s *EmployeeService) Update(ctx context.Context, id uint, data *employee.UpdateDTO) error {
	if id == 0 {
		return serrors.InvalidArgument("employee id must be greater than zero")
	}
	actor, err := composables.UseActor(ctx)
	if err != nil {
		return err
	}

	entity, err := data.ToEntity(id)
	if err != nil {
		return serrors.InvalidArgument(err.Error())
	}

	err = composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.Update(txCtx, withAudit(entity, actor))
	})
	if err != nil {
		return err
	}

	ev, err := employee.NewUpdatedEvent(ctx, entity)
	if err != nil {
		return err
	}
	s.publisher.Publish(ev)
	return nil
}

func (s *EmployeeService) Delete(ctx context.Context, id uint) (employee.Employee, error) {
	if id == 0 {
		return nil, serrors.InvalidArgument("employee id must be greater than zero")
	}
	actor, err := composables.UseActor(ctx)
	if err != nil {
		return nil, err
	}

	var deleted employee.Employee
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		entity, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.repo.Delete(txCtx, id); err != nil {
			return err
		}
		deleted = entity
		return nil
	})
	if err != nil {
		if serrors.IsForeignKeyViolation(err) {
			composables.UseLogger(ctx).WithError(err).Errorf(
				"employee %d is referenced as a department leader, deletion rejected by actor %s", id, actor,
			)
		}
		return nil, err
	}

	ev, err := employee.NewDeletedEvent(ctx, deleted)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(ev)
	return deleted, nil
}

func withAudit(entity employee.Employee, actor uuid.UUID) employee.Employee {
	return employee.New(
		entity.FirstName(),
		entity.LastName(),
		entity.Email(),
		entity.Phone(),
		entity.HireDate(),
		entity.JobTitle(),
		entity.DepartmentID(),
		employee.WithID(entity.ID()),
		employee.WithCreatedBy(actor),
		employee.WithUpdatedBy(actor),
	)
}
