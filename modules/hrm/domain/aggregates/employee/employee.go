package employee

import (
	"time"

	"github.com/google/uuid"

	"github.com/vandaszabo/mintaprojekt/modules/core/domain/value_objects/internet"
	"github.com/vandaszabo/mintaprojekt/modules/hrm/domain/value_objects/phone"
)

type Option func(e *employeeImpl)

func WithID(id uint) Option {
	return func(e *employeeImpl) {
		e.id = id
	}
}

func WithCreatedBy(actorID uuid.UUID) Option {
	return func(e *employeeImpl) {
		e.createdBy = actorID
	}
}

func WithUpdatedBy(actorID uuid.UUID) Option {
	return func(e *employeeImpl) {
		e.updatedBy = actorID
	}
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(e *employeeImpl) {
		e.createdAt = createdAt
	}
}

func WithUpdatedAt(updatedAt time.Time) Option {
	return func(e *employeeImpl) {
		e.updatedAt = updatedAt
	}
}

type Employee interface {
	ID() uint
	FirstName() string
	LastName() string
	FullName() string
	Email() internet.Email
	Phone() phone.Phone
	HireDate() time.Time
	JobTitle() string
	DepartmentID() uint
	CreatedBy() uuid.UUID
	UpdatedBy() uuid.UUID
	CreatedAt() time.Time
	UpdatedAt() time.Time
}

func New(
	firstName, lastName string,
	email internet.Email,
	phoneNumber phone.Phone,
	hireDate time.Time,
	jobTitle string,
	departmentID uint,
	opts ...Option,
) Employee {
	e := &employeeImpl{
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		phone:        phoneNumber,
		hireDate:     hireDate,
		jobTitle:     jobTitle,
		departmentID: departmentID,
		createdAt:    time.Now(),
		updatedAt:    time.Now(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type employeeImpl struct {
	id           uint
	firstName    string
	lastName     string
	email        internet.Email
	phone        phone.Phone
	hireDate     time.Time
	jobTitle     string
	departmentID uint
	createdBy    uuid.UUID
	updatedBy    uuid.UUID
	createdAt    time.Time
	updatedAt    time.Time
}

func (e *employeeImpl) ID() uint {
	return e.id
}

func (e *employeeImpl) FirstName() string {
	return e.firstName
}

func (e *employeeImpl) LastName() string {
	return e.lastName
}

func (e *employeeImpl) FullName() string {
	return e.firstName + " " + e.lastName
}

func (e *employeeImpl) Email() internet.Email {
	return e.email
}

func (e *employeeImpl) Phone() phone.Phone {
	return e.phone
}

func (e *employeeImpl) HireDate() time.Time {
	return e.hireDate
}

func (e *employeeImpl) JobTitle() string {
	return e.jobTitle
}

func (e *employeeImpl) DepartmentID() uint {
	return e.departmentID
}

func (e *employeeImpl) CreatedBy() uuid.UUID {
	return e.createdBy
}

func (e *employeeImpl) UpdatedBy() uuid.UUID {
	return e.updatedBy
}

func (e *employeeImpl) CreatedAt() time.Time {
	return e.createdAt
}

func (e *employeeImpl) UpdatedAt() time.Time {
	return e.updatedAt
}
