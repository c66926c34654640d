package persistence

import (
	"context"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/vandaszabo/mintaprojekt/modules/core/domain/aggregates/user"
	"github.com/vandaszabo/mintaprojekt/modules/core/infrastructure/persistence/models"
	"github.com/vandaszabo/mintaprojekt/pkg/composables"
	"github.com/vandaszabo/mintaprojekt/pkg/repo"
	"github.com/vandaszabo/mintaprojekt/pkg/serrors"
)

var ErrUserNotFound = serrors.NotFound("user not found")

const (
	userFindQuery = `
		SELECT
			u.id,
			u.user_name,
			u.email,
			u.password_hash,
			u.security_stamp,
			u.created_at,
			u.updated_at
		FROM users u`

	userInsertQuery = `
		INSERT INTO users (id, user_name, email, password_hash, security_stamp, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())`

	userUpdateQuery = `
		UPDATE users
		SET user_name = $2, email = $3, password_hash = $4, security_stamp = $5, updated_at = now()
		WHERE id = $1`

	userRolesQuery = `
		SELECT r.name
		FROM user_roles ur
		JOIN roles r ON r.id = ur.role_id
		WHERE ur.user_id = $1
		ORDER BY r.name`

	userRoleInsertQuery = `INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`

	userRolesDeleteQuery = `DELETE FROM user_roles WHERE user_id = $1`

	userStampUpdateQuery = `UPDATE users SET security_stamp = $2, updated_at = now() WHERE id = $1`

	userClaimExistsQuery = `
		SELECT 1
		FROM user_roles ur
		JOIN role_claims c ON c.role_id = ur.role_id
		WHERE ur.user_id = $1 AND c.claim_type = $2 AND c.claim_value = $3`
)

type PgUserRepository struct{}

func NewUserRepository() user.Repository {
	return &PgUserRepository{}
}

func (g *PgUserRepository) GetAll(ctx context.Context) ([]user.User, error) {
	users, err := g.queryUsers(ctx, userFindQuery+" ORDER BY u.user_name")
	if err != nil {
		return nil, gerrors.Wrap(err, "failed to get all users")
	}
	return users, nil
}

func (g *PgUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	users, err := g.queryUsers(ctx, userFindQuery+" WHERE u.id = $1", id.String())
	if err != nil {
		return nil, gerrors.Wrapf(err, "failed to query user with id: %s", id)
	}
	if len(users) == 0 {
		return nil, ErrUserNotFound
	}
	return users[0], nil
}

func (g *PgUserRepository) GetByUserName(ctx context.Context, userName string) (user.User, error) {
	users, err := g.queryUsers(ctx, userFindQuery+" WHERE u.user_name = $1", userName)
	if err != nil {
		return nil, gerrors.Wrapf(err, "failed to query user with name: %s", userName)
	}
	if len(users) == 0 {
		return nil, ErrUserNotFound
	}
	return users[0], nil
}

func (g *PgUserRepository) Create(ctx context.Context, data user.User) (user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	dbUser := toDBUser(data)
	if _, err := tx.Exec(
		ctx,
		userInsertQuery,
		dbUser.ID,
		dbUser.UserName,
		dbUser.Email,
		dbUser.PasswordHash,
		dbUser.SecurityStamp,
	); err != nil {
		return nil, serrors.StoreFault("failed to create user", err)
	}
	return g.GetByID(ctx, data.ID())
}

func (g *PgUserRepository) Update(ctx context.Context, data user.User) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	dbUser := toDBUser(data)
	tag, err := tx.Exec(
		ctx,
		userUpdateQuery,
		dbUser.ID,
		dbUser.UserName,
		dbUser.Email,
		dbUser.PasswordHash,
		dbUser.SecurityStamp,
	)
	if err != nil {
		return serrors.StoreFault("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (g *PgUserRepository) GetRoles(ctx context.Context, userID uuid.UUID) ([]string, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, userRolesQuery, userID.String())
	if err != nil {
		return nil, serrors.StoreFault("failed to query user roles", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, serrors.StoreFault("failed to scan user role", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, serrors.StoreFault("failed to read user roles", err)
	}
	return names, nil
}

func (g *PgUserRepository) AddRole(ctx context.Context, userID uuid.UUID, roleID uint) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, userRoleInsertQuery, userID.String(), roleID); err != nil {
		return serrors.StoreFault("failed to add user role", err)
	}
	return nil
}

func (g *PgUserRepository) RemoveAllRoles(ctx context.Context, userID uuid.UUID) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}

	tag, err := tx.Exec(ctx, userRolesDeleteQuery, userID.String())
	if err != nil {
		return 0, serrors.StoreFault("failed to remove user roles", err)
	}
	return tag.RowsAffected(), nil
}

func (g *PgUserRepository) UpdateSecurityStamp(ctx context.Context, userID uuid.UUID, stamp uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, userStampUpdateQuery, userID.String(), stamp.String())
	if err != nil {
		return serrors.StoreFault("failed to update security stamp", err)
	}
	if tag.RowsAffected() == 0 {
		return serrors.NoRowsAffected("no user row updated for security stamp")
	}
	return nil
}

func (g *PgUserRepository) HasClaim(ctx context.Context, userID uuid.UUID, claimType, claimValue string) (bool, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return false, err
	}

	exists := false
	query := repo.Exists(userClaimExistsQuery)
	if err := tx.QueryRow(ctx, query, userID.String(), claimType, claimValue).Scan(&exists); err != nil {
		return false, serrors.StoreFault("failed to check user claim", err)
	}
	return exists, nil
}

func (g *PgUserRepository) queryUsers(ctx context.Context, query string, args ...any) ([]user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, serrors.StoreFault("failed to query users", err)
	}
	defer rows.Close()

	var out []user.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.UserName, &u.Email, &u.PasswordHash, &u.SecurityStamp, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, serrors.StoreFault("failed to scan user row", err)
		}
		entity, err := toDomainUser(&u)
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, serrors.StoreFault("failed to read user rows", err)
	}
	return out, nil
}
