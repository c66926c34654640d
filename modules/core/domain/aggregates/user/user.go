package user

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vandaszabo/mintaprojekt/modules/core/domain/value_objects/internet"
)

type Option func(u *userImpl)

func WithID(id uuid.UUID) Option {
	return func(u *userImpl) {
		u.id = id
	}
}

func WithPasswordHash(hash string) Option {
	return func(u *userImpl) {
		u.passwordHash = hash
	}
}

func WithSecurityStamp(stamp uuid.UUID) Option {
	return func(u *userImpl) {
		u.securityStamp = stamp
	}
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(u *userImpl) {
		u.createdAt = createdAt
	}
}

func WithUpdatedAt(updatedAt time.Time) Option {
	return func(u *userImpl) {
		u.updatedAt = updatedAt
	}
}

// User is an authenticatable account. Role membership lives in the
// repository; the aggregate carries the credentials and the security
// stamp whose rotation invalidates issued sessions.
type User interface {
	ID() uuid.UUID
	UserName() string
	Email() internet.Email
	PasswordHash() string
	SecurityStamp() uuid.UUID
	CreatedAt() time.Time
	UpdatedAt() time.Time

	SetPassword(password string) (User, error)
	CheckPassword(password string) bool
	RegenerateSecurityStamp() User
}

func New(userName string, email internet.Email, opts ...Option) User {
	u := &userImpl{
		id:            uuid.New(),
		userName:      userName,
		email:         email,
		securityStamp: uuid.New(),
		createdAt:     time.Now(),
		updatedAt:     time.Now(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

type userImpl struct {
	id            uuid.UUID
	userName      string
	email         internet.Email
	passwordHash  string
	securityStamp uuid.UUID
	createdAt     time.Time
	updatedAt     time.Time
}

func (u *userImpl) ID() uuid.UUID {
	return u.id
}

func (u *userImpl) UserName() string {
	return u.userName
}

func (u *userImpl) Email() internet.Email {
	return u.email
}

func (u *userImpl) PasswordHash() string {
	return u.passwordHash
}

func (u *userImpl) SecurityStamp() uuid.UUID {
	return u.securityStamp
}

func (u *userImpl) CreatedAt() time.Time {
	return u.createdAt
}

func (u *userImpl) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *userImpl) SetPassword(password string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	out := *u
	out.passwordHash = string(hash)
	out.updatedAt = time.Now()
	return &out, nil
}

func (u *userImpl) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)) == nil
}

func (u *userImpl) RegenerateSecurityStamp() User {
	out := *u
	out.securityStamp = uuid.New()
	out.updatedAt = time.Now()
	return &out
}
