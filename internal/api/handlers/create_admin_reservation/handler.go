package create_admin_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/GH-ReservationService/internal/api/handlers"
	createReservation "github.com/m04kA/GH-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректная дата бронирования"
	msgInvalidInput       = "некорректные данные бронирования"
	msgRestaurantClosed   = "ресторан закрыт в выбранный день"
	msgOutsideHours       = "время вне часов работы ресторана"
	msgTooManyGuests      = "слишком много гостей для одного столика"
	msgSlotNotAvailable   = "на выбранное время нет свободных столиков"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAdminReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/reservations - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /admin/reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /admin/reservations - Invalid date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrRestaurantClosed):
			h.logger.Warn("POST /admin/reservations - Restaurant closed: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgRestaurantClosed)

		case errors.Is(err, createReservation.ErrOutsideOpeningHours):
			h.logger.Warn("POST /admin/reservations - Outside opening hours: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createReservation.ErrTooManyGuests):
			h.logger.Warn("POST /admin/reservations - Too many guests: guests=%d", req.Guests)
			handlers.RespondBadRequest(w, msgTooManyGuests)

		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /admin/reservations - Slot not available: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /admin/reservations - Failed to create reservation: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/reservations - Reservation created successfully: id=%d, date=%s, time=%s",
		result.ID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
