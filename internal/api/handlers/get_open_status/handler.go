package get_open_status

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getOpenStatus "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_open_status"
)

type Handler struct {
	useCase GetOpenStatusUseCase
	logger  Logger
}

func NewHandler(useCase GetOpenStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/open-status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID := mux.Vars(r)["businessId"]

	result, err := h.useCase.Execute(r.Context(), &getOpenStatus.Request{BusinessID: businessID})
	if err != nil {
		h.logger.Error("GET /businesses/{id}/open-status - Failed to get status: business_id=%s, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
