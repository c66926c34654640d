package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/vandaszabo/mintaprojekt/modules/core/domain/entities/permission"
	coreservices "github.com/vandaszabo/mintaprojekt/modules/core/services"
	"github.com/vandaszabo/mintaprojekt/modules/hrm/domain/aggregates/department"
	"github.com/vandaszabo/mintaprojekt/modules/hrm/services"
	"github.com/vandaszabo/mintaprojekt/pkg/application"
	"github.com/vandaszabo/mintaprojekt/pkg/serrors"
)

type DepartmentController struct {
	app               application.Application
	departmentService *services.DepartmentService
	userService       *coreservices.UserService
	basePath          string
}

func NewDepartmentController(app application.Application) application.Controller {
	return &DepartmentController{
		app:               app,
		departmentService: app.Service(services.DepartmentService{}).(*services.DepartmentService),
		userService:       app.Service(coreservices.UserService{}).(*coreservices.UserService),
		basePath:          "/api/departments",
	}
}

func (c *DepartmentController) Key() string {
	return c.basePath
}

func (c *DepartmentController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9]+}/leaders/history", c.LeadershipHistory).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9]+}/leaders", c.AddLeader).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9]+}/leaders/{employeeID:[0-9]+}", c.RemoveLeader).Methods(http.MethodDelete)
}

type memberResponse struct {
	EmployeeID uint   `json:"employee_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	JobTitle   string `json:"job_title"`
}

type departmentResponse struct {
	ID        uint             `json:"id"`
	Name      string           `json:"name"`
	Employees []memberResponse `json:"employees"`
	Leaders   []memberResponse `json:"leaders"`
}

type leadershipResponse struct {
	EmployeeID   uint       `json:"employee_id"`
	DepartmentID uint       `json:"department_id"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
}

func toMemberResponses(members []department.Member) []memberResponse {
	out := make([]memberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, memberResponse{
			EmployeeID: m.EmployeeID,
			FirstName:  m.FirstName,
			LastName:   m.LastName,
			JobTitle:   m.JobTitle,
		})
	}
	return out
}

func toDepartmentResponse(entity department.Department) *departmentResponse {
	return &departmentResponse{
		ID:        entity.ID(),
		Name:      entity.Name().String(),
		Employees: toMemberResponses(entity.Employees()),
		Leaders:   toMemberResponses(entity.Leaders()),
	}
}

// List returns every department with its roster and current leaders.
func (c *DepartmentController) List(w http.ResponseWriter, r *http.Request) {
	if !ensurePermission(w, r, c.userService, permission.Select) {
		return
	}

	departments, err := c.departmentService.GetAllWithEmployees(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]*departmentResponse, 0, len(departments))
	for _, entity := range departments {
		out = append(out, toDepartmentResponse(entity))
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *DepartmentController) LeadershipHistory(w http.ResponseWriter, r *http.Request) {
	if !ensurePermission(w, r, c.userService, permission.Select) {
		return
	}

	departmentID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	history, err := c.departmentService.GetLeadershipHistory(r.Context(), departmentID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]leadershipResponse, 0, len(history))
	for _, record := range history {
		out = append(out, leadershipResponse{
			EmployeeID:   record.EmployeeID,
			DepartmentID: record.DepartmentID,
			StartDate:    record.StartDate,
			EndDate:      record.EndDate,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type addLeaderRequest struct {
	EmployeeID uint `json:"employee_id"`
}

func (c *DepartmentController) AddLeader(w http.ResponseWriter, r *http.Request) {
	if !ensurePermission(w, r, c.userService, permission.Insert) {
		return
	}

	departmentID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	data := &addLeaderRequest{}
	if err := json.NewDecoder(r.Body).Decode(data); err != nil {
		writeError(w, r, serrors.InvalidArgument("malformed request body"))
		return
	}

	if err := c.departmentService.AddLeader(r.Context(), departmentID, data.EmployeeID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, nil)
}

func (c *DepartmentController) RemoveLeader(w http.ResponseWriter, r *http.Request) {
	if !ensurePermission(w, r, c.userService, permission.Update) {
		return
	}

	departmentID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	employeeID, err := strconv.ParseUint(mux.Vars(r)["employeeID"], 10, 32)
	if err != nil {
		writeError(w, r, serrors.InvalidArgument("employee id must be a positive integer"))
		return
	}

	if err := c.departmentService.RemoveLeader(r.Context(), departmentID, uint(employeeID)); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
