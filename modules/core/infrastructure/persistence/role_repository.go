package persistence

import (
	"context"
	"errors"

	gerrors "github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/vandaszabo/mintaprojekt/modules/core/domain/aggregates/role"
	"github.com/vandaszabo/mintaprojekt/modules/core/domain/entities/permission"
	"github.com/vandaszabo/mintaprojekt/modules/core/infrastructure/persistence/models"
	"github.com/vandaszabo/mintaprojekt/pkg/composables"
	"github.com/vandaszabo/mintaprojekt/pkg/serrors"
)

var ErrRoleNotFound = serrors.NotFound("role not found")

const (
	roleFindQuery = `
		SELECT
			r.id,
			r.name,
			r.created_at,
			r.updated_at
		FROM roles r`

	roleInsertQuery = `
		INSERT INTO roles (name, created_at, updated_at)
		VALUES ($1, now(), now())
		RETURNING id`

	roleClaimsQuery = `
		SELECT id, role_id, claim_type, claim_value
		FROM role_claims
		WHERE role_id = $1
		ORDER BY id`

	roleClaimInsertQuery = `
		INSERT INTO role_claims (role_id, claim_type, claim_value)
		VALUES ($1, $2, $3)`

	rolesWithClaimsQuery = `
		SELECT
			r.id,
			r.name,
			r.created_at,
			r.updated_at,
			c.claim_type,
			c.claim_value
		FROM roles r
		LEFT JOIN role_claims c ON c.role_id = r.id
		ORDER BY r.id, c.id`
)

type PgRoleRepository struct{}

func NewRoleRepository() role.Repository {
	return &PgRoleRepository{}
}

func (g *PgRoleRepository) GetAll(ctx context.Context) ([]role.Role, error) {
	roles, err := g.queryRoles(ctx, roleFindQuery+" ORDER BY r.id")
	if err != nil {
		return nil, gerrors.Wrap(err, "failed to get all roles")
	}
	return roles, nil
}

func (g *PgRoleRepository) GetAllWithPermissions(ctx context.Context) ([]role.Role, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, rolesWithClaimsQuery)
	if err != nil {
		return nil, serrors.StoreFault("failed to query roles with claims", err)
	}
	defer rows.Close()

	var (
		order  []uint
		byID   = make(map[uint]*models.Role)
		claims = make(map[uint][]models.RoleClaim)
	)
	for rows.Next() {
		var (
			r          models.Role
			claimType  *string
			claimValue *string
		)
		if err := rows.Scan(&r.ID, &r.Name, &r.CreatedAt, &r.UpdatedAt, &claimType, &claimValue); err != nil {
			return nil, serrors.StoreFault("failed to scan role row", err)
		}
		if _, ok := byID[r.ID]; !ok {
			byID[r.ID] = &r
			order = append(order, r.ID)
		}
		if claimType != nil && claimValue != nil {
			claims[r.ID] = append(claims[r.ID], models.RoleClaim{
				RoleID:     r.ID,
				ClaimType:  *claimType,
				ClaimValue: *claimValue,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, serrors.StoreFault("failed to read role rows", err)
	}

	out := make([]role.Role, 0, len(order))
	for _, id := range order {
		permissions, err := toDomainPermissions(claims[id])
		if err != nil {
			return nil, err
		}
		out = append(out, toDomainRole(byID[id], permissions))
	}
	return out, nil
}

func (g *PgRoleRepository) GetByID(ctx context.Context, id uint) (role.Role, error) {
	roles, err := g.queryRoles(ctx, roleFindQuery+" WHERE r.id = $1", id)
	if err != nil {
		return nil, gerrors.Wrapf(err, "failed to get role with id: %d", id)
	}
	if len(roles) == 0 {
		return nil, ErrRoleNotFound
	}
	return roles[0], nil
}

func (g *PgRoleRepository) GetByName(ctx context.Context, name string) (role.Role, error) {
	roles, err := g.queryRoles(ctx, roleFindQuery+" WHERE r.name = $1", name)
	if err != nil {
		return nil, gerrors.Wrapf(err, "failed to get role with name: %s", name)
	}
	if len(roles) == 0 {
		return nil, ErrRoleNotFound
	}
	return roles[0], nil
}

func (g *PgRoleRepository) Create(ctx context.Context, data role.Role) (role.Role, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	var id uint
	if err := tx.QueryRow(ctx, roleInsertQuery, data.Name()).Scan(&id); err != nil {
		return nil, serrors.StoreFault("failed to create role", err)
	}

	for _, p := range data.Permissions() {
		if err := g.AddPermission(ctx, id, p); err != nil {
			return nil, err
		}
	}

	return g.GetByID(ctx, id)
}

func (g *PgRoleRepository) GetPermissions(ctx context.Context, roleID uint) ([]permission.Permission, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, roleClaimsQuery, roleID)
	if err != nil {
		return nil, serrors.StoreFault("failed to query role claims", err)
	}
	defer rows.Close()

	var claims []models.RoleClaim
	for rows.Next() {
		var c models.RoleClaim
		if err := rows.Scan(&c.ID, &c.RoleID, &c.ClaimType, &c.ClaimValue); err != nil {
			return nil, serrors.StoreFault("failed to scan role claim", err)
		}
		claims = append(claims, c)
	}
	if err := rows.Err(); err != nil {
		return nil, serrors.StoreFault("failed to read role claims", err)
	}

	return toDomainPermissions(claims)
}

func (g *PgRoleRepository) AddPermission(ctx context.Context, roleID uint, p permission.Permission) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	claim := p.Claim()
	if _, err := tx.Exec(ctx, roleClaimInsertQuery, roleID, claim.Type, claim.Value); err != nil {
		return serrors.StoreFault("failed to add role claim", err)
	}
	return nil
}

func (g *PgRoleRepository) queryRoles(ctx context.Context, query string, args ...any) ([]role.Role, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, serrors.StoreFault("failed to query roles", err)
	}
	defer rows.Close()

	var out []role.Role
	for rows.Next() {
		var r models.Role
		if err := rows.Scan(&r.ID, &r.Name, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, serrors.StoreFault("failed to scan role row", err)
		}
		out = append(out, toDomainRole(&r, nil))
	}
	if err := rows.Err(); err != nil {
		return nil, serrors.StoreFault("failed to read role rows", err)
	}
	return out, nil
}
