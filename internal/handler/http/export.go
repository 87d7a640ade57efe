package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/leavetrack/leave-backend-go/internal/domain/user"
	"github.com/leavetrack/leave-backend-go/internal/handler/http/response"
	"github.com/leavetrack/leave-backend-go/internal/service/export"
)

type ExportHandler interface {
	Download(w http.ResponseWriter, r *http.Request)
}

type exportHandlerImpl struct {
	exportService *export.Service
}

func NewExportHandler(exportService *export.Service) ExportHandler {
	return &exportHandlerImpl{exportService: exportService}
}

// Download streams the named dataset as a CSV attachment. The
// notifications dataset is scoped to the calling user; the other
// datasets require the admin role.
func (h *exportHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var (
		result export.Export
		err    error
	)
	switch dataset := chi.URLParam(r, "dataset"); dataset {
	case export.DatasetLeaveRequests:
		if !isAdmin(r) {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}
		result, err = h.exportService.ExportLeaveRequests(r.Context())
	case export.DatasetNotifications:
		result, err = h.exportService.ExportNotifications(r.Context(), userID)
	case export.DatasetUsers:
		if !isAdmin(r) {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}
		result, err = h.exportService.ExportUsers(r.Context())
	default:
		response.BadRequest(w, fmt.Sprintf("Unknown dataset %q", dataset), nil)
		return
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Content)
}

func isAdmin(r *http.Request) bool {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return false
	}
	role, ok := claims["role"].(string)
	return ok && user.Role(role) == user.RoleAdmin
}
