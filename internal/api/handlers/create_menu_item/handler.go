package create_menu_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/GH-ReservationService/internal/api/handlers"
	"github.com/m04kA/GH-ReservationService/internal/service/menu"
	"github.com/m04kA/GH-ReservationService/internal/service/menu/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidItem        = "некорректные данные позиции меню"
)

type Handler struct {
	service MenuService
	logger  Logger
}

func NewHandler(service MenuService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/menu-items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMenuItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/menu-items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, menu.ErrInvalidInput):
			h.logger.Warn("POST /admin/menu-items - Invalid item: %v", err)
			handlers.RespondBadRequest(w, msgInvalidItem)

		default:
			h.logger.Error("POST /admin/menu-items - Failed to create menu item: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/menu-items - Menu item created successfully: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
