package http

import (
	"net/http"
	"time"

	"github.com/leavetrack/leave-backend-go/internal/domain/presence"
	"github.com/leavetrack/leave-backend-go/internal/handler/http/response"
	"github.com/leavetrack/leave-backend-go/internal/pkg/validator"
)

type PresenceHandler interface {
	GetSnapshot(w http.ResponseWriter, r *http.Request)
}

type presenceHandlerImpl struct {
	presenceService presence.PresenceService
}

func NewPresenceHandler(presenceService presence.PresenceService) PresenceHandler {
	return &presenceHandlerImpl{presenceService: presenceService}
}

// GetSnapshot returns who is present and absent on the given date.
// Without a date query parameter it reports on today.
func (h *presenceHandlerImpl) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	date := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, ok := validator.IsValidDate(raw)
		if !ok {
			response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
			return
		}
		date = parsed
	}

	snapshot, err := h.presenceService.GetSnapshot(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, snapshot)
}
