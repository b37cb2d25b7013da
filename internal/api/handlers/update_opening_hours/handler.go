package update_opening_hours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/GH-ReservationService/internal/api/handlers"
	"github.com/m04kA/GH-ReservationService/internal/service/schedule"
	"github.com/m04kA/GH-ReservationService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidHours       = "некорректные часы работы"
	msgDayNotFound        = "день недели не найден"
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

// Handle PUT /api/v1/admin/opening-hours/{day}
// day - имя дня недели в нижнем регистре ("monday" ... "sunday")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dayID := vars["day"]

	var req models.UpdateDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/opening-hours/{day} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateDay(r.Context(), dayID, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrDayNotFound):
			h.logger.Warn("PUT /admin/opening-hours/{day} - Unknown weekday: day=%s", dayID)
			handlers.RespondNotFound(w, msgDayNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /admin/opening-hours/{day} - Invalid hours: day=%s, error=%v", dayID, err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("PUT /admin/opening-hours/{day} - Failed to update schedule: day=%s, error=%v",
				dayID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/opening-hours/{day} - Schedule updated successfully: day=%s", dayID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
