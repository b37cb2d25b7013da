package get_opening_hours

import (
	"net/http"

	"github.com/m04kA/GH-ReservationService/internal/api/handlers"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/opening-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /opening-hours - Failed to get schedule: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /opening-hours - Schedule retrieved successfully: days_count=%d", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
