package repo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vandaszabo/mintaprojekt/pkg/repo"
)

func TestJoin(t *testing.T) {
	assert.Equal(t, "SELECT 1 FROM users WHERE id = $1", repo.Join("SELECT 1 FROM users", "", "WHERE id = $1"))
	assert.Equal(t, "", repo.Join("", "  "))
}

func TestJoinWhere(t *testing.T) {
	assert.Equal(t, "", repo.JoinWhere())
	assert.Equal(t, "WHERE a = $1 AND b = $2", repo.JoinWhere("a = $1", "b = $2"))
}

func TestFormatLimitOffset(t *testing.T) {
	assert.Equal(t, "", repo.FormatLimitOffset(0, 0))
	assert.Equal(t, "LIMIT 10", repo.FormatLimitOffset(10, 0))
	assert.Equal(t, "OFFSET 5", repo.FormatLimitOffset(0, 5))
	assert.Equal(t, "LIMIT 10 OFFSET 5", repo.FormatLimitOffset(10, 5))
}

func TestExists(t *testing.T) {
	assert.Equal(t, "SELECT EXISTS (SELECT 1 FROM roles)", repo.Exists("SELECT 1 FROM roles"))
}
