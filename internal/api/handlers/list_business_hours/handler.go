package list_business_hours

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/hours/models"
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

// ListResponse HTTP response model
type ListResponse struct {
	Items []*models.HoursResponse `json:"items"`
}

// Handle GET /api/v1/business-hours?businessId=a&businessId=b
// Отладочный список сохраненных часов; без фильтра возвращаются все записи
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var ids []string
	for _, v := range r.URL.Query()["businessId"] {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}

	items, err := h.service.List(r.Context(), ids)
	if err != nil {
		h.logger.Error("GET /business-hours - Failed to list hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ListResponse{Items: items})
}
