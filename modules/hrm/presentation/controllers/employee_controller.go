package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/vandaszabo/mintaprojekt/modules/core/domain/entities/permission"
	coreservices "github.com/vandaszabo/mintaprojekt/modules/core/services"
	"github.com/vandaszabo/mintaprojekt/modules/hrm/domain/aggregates/employee"
	"github.com/vandaszabo/mintaprojekt/modules/hrm/services"
	"github.com/vandaszabo/mintaprojekt/pkg/application"
	"github.com/vandaszabo/mintaprojekt/pkg/serrors"
)

type EmployeeController struct {
	app             application.Application
	employeeService *services.EmployeeService
	userService     *coreservices.UserService
	basePath        string
}

func NewEmployeeController(app application.Application) application.Controller {
	return &EmployeeController{
		app:             app,
		employeeService: app.Service(services.EmployeeService{}).(*services.EmployeeService),
		userService:     app.Service(coreservices.UserService{}).(*coreservices.UserService),
		basePath:        "/api/employees",
	}
}

func (c *EmployeeController) Key() string {
	return c.basePath
}

func (c *EmployeeController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9]+}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9]+}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/{id:[0-9]+}", c.Delete).Methods(http.MethodDelete)
}

type employeeResponse struct {
	ID           uint      `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	HireDate     time.Time `json:"hire_date"`
	JobTitle     string    `json:"job_title"`
	DepartmentID uint      `json:"department_id"`
}

func toEmployeeResponse(entity employee.Employee) *employeeResponse {
	return &employeeResponse{
		ID:           entity.ID(),
		FirstName:    entity.FirstName(),
		LastName:     entity.LastName(),
		Email:        entity.Email().Value(),
		Phone:        entity.Phone().String(),
		HireDate:     entity.HireDate(),
		JobTitle:     entity.JobTitle(),
		DepartmentID: entity.DepartmentID(),
	}
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, serrors.InvalidArgument("id must be a positive integer")
	}
	return uint(id), nil
}

// listParams reads the optional limit, offset and department_id query
// parameters into find params.
func listParams(r *http.Request) (*employee.FindParams, error) {
	params := &employee.FindParams{}
	query := r.URL.Query()
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return nil, serrors.InvalidArgument("limit must be a non-negative integer")
		}
		params.Limit = limit
	}
	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return nil, serrors.InvalidArgument("offset must be a non-negative integer")
		}
		params.Offset = offset
	}
	if raw := query.Get("department_id"); raw != "" {
		departmentID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, serrors.InvalidArgument("department_id must be a positive integer")
		}
		params.DepartmentID = uint(departmentID)
	}
	return params, nil
}

func (c *EmployeeController) List(w http.ResponseWriter, r *http.Request) {
	if !ensurePermission(w, r, c.userService, permission.Select) {
		return
	}

	params, err := listParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	employees, err := c.employeeService.GetPaginated(r.Context(), params)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]*employeeResponse, 0, len(employees))
	for _, entity := range employees {
		out = append(out, toEmployeeResponse(entity))
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *EmployeeController) GetByID(w http.ResponseWriter, r *http.Request) {
	if !ensurePermission(w, r, c.userService, permission.Select) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	entity, err := c.employeeService.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeResponse(entity))
}

func (c *EmployeeController) Create(w http.ResponseWriter, r *http.Request) {
	if !ensurePermission(w, r, c.userService, permission.Insert) {
		return
	}

	data := &employee.CreateDTO{}
	if err := json.NewDecoder(r.Body).Decode(data); err != nil {
		writeError(w, r, serrors.InvalidArgument("malformed request body"))
		return
	}

	created, err := c.employeeService.Create(r.Context(), data)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEmployeeResponse(created))
}

func (c *EmployeeController) Update(w http.ResponseWriter, r *http.Request) {
	if !ensurePermission(w, r, c.userService, permission.Update) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	data := &employee.UpdateDTO{}
	if err := json.NewDecoder(r.Body).Decode(data); err != nil {
		writeError(w, r, serrors.InvalidArgument("malformed request body"))
		return
	}

	if err := c.employeeService.Update(r.Context(), id, data); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (c *EmployeeController) Delete(w http.ResponseWriter, r *http.Request) {
	if !ensurePermission(w, r, c.userService, permission.Delete) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := c.employeeService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
