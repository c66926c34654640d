package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/vandaszabo/mintaprojekt/modules/core/domain/aggregates/user"
	"github.com/vandaszabo/mintaprojekt/modules/core/domain/entities/permission"
	"github.com/vandaszabo/mintaprojekt/modules/core/services"
	"github.com/vandaszabo/mintaprojekt/pkg/application"
	"github.com/vandaszabo/mintaprojekt/pkg/serrors"
)

type UserController struct {
	app         application.Application
	userService *services.UserService
	basePath    string
}

func NewUserController(app application.Application) application.Controller {
	return &UserController{
		app:         app,
		userService: app.Service(services.UserService{}).(*services.UserService),
		basePath:    "/api/users",
	}
}

func (c *UserController) Key() string {
	return c.basePath
}

func (c *UserController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/{id}/roles", c.GetRoles).Methods(http.MethodGet)
	router.HandleFunc("/{id}/role", c.ChangeRole).Methods(http.MethodPut)
}

type userResponse struct {
	ID        string    `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(entity user.User) *userResponse {
	return &userResponse{
		ID:        entity.ID().String(),
		UserName:  entity.UserName(),
		Email:     entity.Email().Value(),
		CreatedAt: entity.CreatedAt(),
	}
}

func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	if !ensurePermission(w, r, c.userService, permission.Select) {
		return
	}

	// ?user_name= narrows the listing to a single account lookup.
	if userName := r.URL.Query().Get("user_name"); userName != "" {
		entity, err := c.userService.GetByUserName(r.Context(), userName)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, []*userResponse{toUserResponse(entity)})
		return
	}

	users, err := c.userService.GetAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]*userResponse, 0, len(users))
	for _, entity := range users {
		out = append(out, toUserResponse(entity))
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	if !ensurePermission(w, r, c.userService, permission.Insert) {
		return
	}

	data := &user.CreateDTO{}
	if err := json.NewDecoder(r.Body).Decode(data); err != nil {
		writeError(w, r, serrors.InvalidArgument("malformed request body"))
		return
	}

	created, err := c.userService.Create(r.Context(), data)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(created))
}

func (c *UserController) GetRoles(w http.ResponseWriter, r *http.Request) {
	if !ensurePermission(w, r, c.userService, permission.Select) {
		return
	}

	userID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, serrors.InvalidArgument("user id must be a UUID"))
		return
	}

	roles, err := c.userService.GetRoles(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"roles": roles})
}

type changeRoleRequest struct {
	RoleName string `json:"role_name"`
}

// ChangeRole swaps the user's role and invalidates their sessions in one
// transaction.
func (c *UserController) ChangeRole(w http.ResponseWriter, r *http.Request) {
	if !ensurePermission(w, r, c.userService, permission.Update) {
		return
	}

	userID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, serrors.InvalidArgument("user id must be a UUID"))
		return
	}

	data := &changeRoleRequest{}
	if err := json.NewDecoder(r.Body).Decode(data); err != nil {
		writeError(w, r, serrors.InvalidArgument("malformed request body"))
		return
	}

	if err := c.userService.ChangeRoleAndLogout(r.Context(), userID, data.RoleName); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
