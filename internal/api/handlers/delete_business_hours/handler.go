package delete_business_hours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	hoursService "github.com/m04kA/SMC-AvailabilityService/internal/service/hours"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "рабочие часы не заданы"
	msgForbidden     = "доступ запрещен"
	msgInvalidData   = "некорректный ID бизнеса"
)

type Handler struct {
	service HoursService
	logger  Logger
}

func NewHandler(service HoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/businesses/{businessId}/hours
// После удаления действуют часы по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID := mux.Vars(r)["businessId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /businesses/{id}/hours - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Clear(r.Context(), businessID, userID); err != nil {
		switch {
		case errors.Is(err, hoursService.ErrHoursNotFound):
			h.logger.Warn("DELETE /businesses/{id}/hours - Hours not found: business_id=%s", businessID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, hoursService.ErrAccessDenied):
			h.logger.Warn("DELETE /businesses/{id}/hours - Access denied: business_id=%s, user_id=%s", businessID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, hoursService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("DELETE /businesses/{id}/hours - Failed to clear hours: business_id=%s, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /businesses/{id}/hours - Hours cleared: business_id=%s", businessID)
	handlers.RespondNoContent(w)
}
