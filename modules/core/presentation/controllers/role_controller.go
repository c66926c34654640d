package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vandaszabo/mintaprojekt/modules/core/domain/aggregates/role"
	"github.com/vandaszabo/mintaprojekt/modules/core/domain/entities/permission"
	"github.com/vandaszabo/mintaprojekt/modules/core/services"
	"github.com/vandaszabo/mintaprojekt/pkg/application"
)

type RoleController struct {
	app         application.Application
	roleService *services.RoleService
	userService *services.UserService
	basePath    string
}

func NewRoleController(app application.Application) application.Controller {
	return &RoleController{
		app:         app,
		roleService: app.Service(services.RoleService{}).(*services.RoleService),
		userService: app.Service(services.UserService{}).(*services.UserService),
		basePath:    "/api/roles",
	}
}

func (c *RoleController) Key() string {
	return c.basePath
}

func (c *RoleController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
}

type claimResponse struct {
	Type  string `json:"claim_type"`
	Value string `json:"claim_value"`
}

type roleResponse struct {
	ID     uint            `json:"id"`
	Name   string          `json:"name"`
	Claims []claimResponse `json:"claims"`
}

func toRoleResponse(entity role.Role) *roleResponse {
	claims := make([]claimResponse, 0, len(entity.Permissions()))
	for _, p := range entity.Permissions() {
		claim := p.Claim()
		claims = append(claims, claimResponse{Type: claim.Type, Value: claim.Value})
	}
	return &roleResponse{
		ID:     entity.ID(),
		Name:   entity.Name(),
		Claims: claims,
	}
}

// List returns every role together with its permission claims.
func (c *RoleController) List(w http.ResponseWriter, r *http.Request) {
	if !ensurePermission(w, r, c.userService, permission.Select) {
		return
	}

	roles, err := c.roleService.GetRolesWithClaims(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]*roleResponse, 0, len(roles))
	for _, entity := range roles {
		out = append(out, toRoleResponse(entity))
	}
	writeJSON(w, http.StatusOK, out)
}
