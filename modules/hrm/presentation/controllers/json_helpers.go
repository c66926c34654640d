package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vandaszabo/mintaprojekt/modules/core/domain/entities/permission"
	"github.com/vandaszabo/mintaprojekt/modules/core/services"
	"github.com/vandaszabo/mintaprojekt/pkg/composables"
	"github.com/vandaszabo/mintaprojekt/pkg/serrors"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		panic(err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, composables.ErrNoActor) {
		writeJSON(w, http.StatusUnauthorized, &apiError{Code: "UNAUTHENTICATED", Message: "actor identity is required"})
		return
	}

	var serr *serrors.Error
	if errors.As(err, &serr) {
		switch {
		case serrors.IsInvalidArgument(err):
			writeJSON(w, http.StatusBadRequest, &apiError{Code: serr.Code, Message: serr.Message})
		case serrors.IsNotFound(err):
			writeJSON(w, http.StatusNotFound, &apiError{Code: serr.Code, Message: serr.Message})
		case serrors.IsNoRowsAffected(err), serrors.IsInvalidOperation(err):
			writeJSON(w, http.StatusConflict, &apiError{Code: serr.Code, Message: serr.Message})
		default:
			writeJSON(w, http.StatusInternalServerError, &apiError{Code: serr.Code, Message: serr.Message})
		}
		return
	}

	// Deleting an employee with leadership history trips the store's
	// referential integrity, not a service precondition.
	if serrors.IsForeignKeyViolation(err) {
		writeJSON(w, http.StatusConflict, &apiError{Code: "CONFLICT", Message: "record is referenced by other data"})
		return
	}

	composables.UseLogger(r.Context()).WithError(err).Error("request failed")
	writeJSON(w, http.StatusInternalServerError, &apiError{Code: "INTERNAL", Message: "internal server error"})
}

func ensurePermission(w http.ResponseWriter, r *http.Request, users *services.UserService, p permission.Permission) bool {
	actor, err := composables.UseActor(r.Context())
	if err != nil {
		writeError(w, r, err)
		return false
	}
	allowed, err := users.HasPermission(r.Context(), actor, p)
	if err != nil {
		writeError(w, r, err)
		return false
	}
	if !allowed {
		writeJSON(w, http.StatusForbidden, &apiError{
			Code:    "PERMISSION_DENIED",
			Message: "missing permission: " + string(p),
		})
		return false
	}
	return true
}
