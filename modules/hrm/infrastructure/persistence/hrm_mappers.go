package persistence

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/vandaszabo/mintaprojekt/modules/core/domain/value_objects/internet"
	"github.com/vandaszabo/mintaprojekt/modules/hrm/domain/aggregates/department"
	"github.com/vandaszabo/mintaprojekt/modules/hrm/domain/aggregates/employee"
	"github.com/vandaszabo/mintaprojekt/modules/hrm/domain/value_objects/phone"
	"github.com/vandaszabo/mintaprojekt/modules/hrm/infrastructure/persistence/models"
)

func toDomainEmployee(dbEmployee *models.Employee) (employee.Employee, error) {
	email, err := internet.NewEmail(dbEmployee.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse employee email")
	}
	createdBy, err := uuid.Parse(dbEmployee.CreatedBy)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse employee creator")
	}
	updatedBy, err := uuid.Parse(dbEmployee.UpdatedBy)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse employee modifier")
	}
	return employee.New(
		dbEmployee.FirstName,
		dbEmployee.LastName,
		email,
		phone.Parse(dbEmployee.Phone),
		dbEmployee.HireDate,
		dbEmployee.JobTitle,
		dbEmployee.DepartmentID,
		employee.WithID(dbEmployee.ID),
		employee.WithCreatedBy(createdBy),
		employee.WithUpdatedBy(updatedBy),
		employee.WithCreatedAt(dbEmployee.CreatedAt),
		employee.WithUpdatedAt(dbEmployee.UpdatedAt),
	), nil
}

func toDBEmployee(entity employee.Employee) *models.Employee {
	return &models.Employee{
		ID:           entity.ID(),
		FirstName:    entity.FirstName(),
		LastName:     entity.LastName(),
		Email:        entity.Email().Value(),
		Phone:        entity.Phone().String(),
		HireDate:     entity.HireDate(),
		JobTitle:     entity.JobTitle(),
		DepartmentID: entity.DepartmentID(),
		CreatedBy:    entity.CreatedBy().String(),
		UpdatedBy:    entity.UpdatedBy().String(),
	}
}

// toDomainDepartments folds the flat join rows into departments, splitting
// each roster entry into the employee list and, when its leadership record
// is active, the leader list as well.
func toDomainDepartments(rows []models.DepartmentRosterRow, now time.Time) ([]department.Department, error) {
	var (
		order     []uint
		names     = make(map[uint]department.Name)
		employees = make(map[uint][]department.Member)
		leaders   = make(map[uint][]department.Member)
	)

	for _, row := range rows {
		if _, ok := names[row.DepartmentID]; !ok {
			name, err := department.NewName(row.DepartmentName)
			if err != nil {
				return nil, errors.Wrap(err, "failed to map department row")
			}
			names[row.DepartmentID] = name
			order = append(order, row.DepartmentID)
		}

		if row.EmployeeID == nil {
			continue
		}

		member := department.Member{
			EmployeeID: *row.EmployeeID,
		}
		if row.FirstName != nil {
			member.FirstName = *row.FirstName
		}
		if row.LastName != nil {
			member.LastName = *row.LastName
		}
		if row.JobTitle != nil {
			member.JobTitle = *row.JobTitle
		}
		employees[row.DepartmentID] = append(employees[row.DepartmentID], member)

		if row.StartDate != nil {
			record := department.Leadership{
				EmployeeID:   *row.EmployeeID,
				DepartmentID: row.DepartmentID,
				StartDate:    *row.StartDate,
				EndDate:      row.EndDate,
			}
			if record.Active(now) {
				leaders[row.DepartmentID] = append(leaders[row.DepartmentID], member)
			}
		}
	}

	out := make([]department.Department, 0, len(order))
	for _, id := range order {
		out = append(out, department.New(
			id,
			names[id],
			department.WithEmployees(employees[id]),
			department.WithLeaders(leaders[id]),
		))
	}
	return out, nil
}
