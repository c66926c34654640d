package user_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vandaszabo/mintaprojekt/modules/core/domain/aggregates/user"
	"github.com/vandaszabo/mintaprojekt/modules/core/domain/value_objects/internet"
)

func testUser(t *testing.T) user.User {
	t.Helper()
	email, err := internet.NewEmail("alice@example.com")
	require.NoError(t, err)
	return user.New("alice", email)
}

func TestNew_Defaults(t *testing.T) {
	entity := testUser(t)
	assert.NotEqual(t, uuid.Nil, entity.ID())
	assert.NotEqual(t, uuid.Nil, entity.SecurityStamp())
	assert.Empty(t, entity.PasswordHash())
}

func TestSetPassword(t *testing.T) {
	entity := testUser(t)

	updated, err := entity.SetPassword("correct horse battery")
	require.NoError(t, err)
	assert.True(t, updated.CheckPassword("correct horse battery"))
	assert.False(t, updated.CheckPassword("wrong"))
	// The original value stays untouched.
	assert.Empty(t, entity.PasswordHash())
}

func TestRegenerateSecurityStamp(t *testing.T) {
	entity := testUser(t)

	rotated := entity.RegenerateSecurityStamp()
	assert.NotEqual(t, entity.SecurityStamp(), rotated.SecurityStamp())
	assert.Equal(t, entity.ID(), rotated.ID())
}

func TestCreateDTO_ToEntity(t *testing.T) {
	data := &user.CreateDTO{
		UserName: "alice",
		Email:    "alice@example.com",
		Password: "correct horse battery",
	}
	entity, err := data.ToEntity()
	require.NoError(t, err)
	assert.Equal(t, "alice", entity.UserName())
	assert.True(t, entity.CheckPassword("correct horse battery"))
}

func TestCreateDTO_ToEntity_Invalid(t *testing.T) {
	data := &user.CreateDTO{UserName: "al", Email: "not-an-email", Password: "short"}
	_, err := data.ToEntity()
	require.Error(t, err)
}
