package role

import (
	"time"

	"github.com/vandaszabo/mintaprojekt/modules/core/domain/entities/permission"
)

// Built-in role names. They are created once at bootstrap and expected to
// be stable afterwards.
const (
	Admin   = "Admin"
	Manager = "Manager"
	User    = "User"
)

type Option func(r *roleImpl)

func WithID(id uint) Option {
	return func(r *roleImpl) {
		r.id = id
	}
}

func WithPermissions(permissions []permission.Permission) Option {
	return func(r *roleImpl) {
		r.permissions = permissions
	}
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(r *roleImpl) {
		r.createdAt = createdAt
	}
}

func WithUpdatedAt(updatedAt time.Time) Option {
	return func(r *roleImpl) {
		r.updatedAt = updatedAt
	}
}

type Role interface {
	ID() uint
	Name() string
	Permissions() []permission.Permission
	HasPermission(p permission.Permission) bool
	CreatedAt() time.Time
	UpdatedAt() time.Time
}

func New(name string, opts ...Option) Role {
	r := &roleImpl{
		name:      name,
		createdAt: time.Now(),
		updatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type roleImpl struct {
	id          uint
	name        string
	permissions []permission.Permission
	createdAt   time.Time
	updatedAt   time.Time
}

func (r *roleImpl) ID() uint {
	return r.id
}

func (r *roleImpl) Name() string {
	return r.name
}

func (r *roleImpl) Permissions() []permission.Permission {
	return r.permissions
}

func (r *roleImpl) HasPermission(p permission.Permission) bool {
	for _, candidate := range r.permissions {
		if candidate == p {
			return true
		}
	}
	return false
}

func (r *roleImpl) CreatedAt() time.Time {
	return r.createdAt
}

func (r *roleImpl) UpdatedAt() time.Time {
	return r.updatedAt
}
