package get_booking_config

import (
	"net/http"

	"github.com/m04kA/GH-ReservationService/internal/api/handlers"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-config
// Типизированный срез настроек для формы бронирования на сайте
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetBookingConfig(r.Context())
	if err != nil {
		h.logger.Error("GET /booking-config - Failed to get booking config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /booking-config - Booking config retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, result)
}
