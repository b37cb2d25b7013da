package update_menu_item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/GH-ReservationService/internal/api/handlers"
	"github.com/m04kA/GH-ReservationService/internal/service/menu"
	"github.com/m04kA/GH-ReservationService/internal/service/menu/models"
)

const (
	msgInvalidItemID      = "некорректный ID позиции меню"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidItem        = "некорректные данные позиции меню"
	msgNotFound           = "позиция меню не найдена"
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

// Handle PUT /api/v1/admin/menu-items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	itemIDStr := vars["itemId"]

	itemID, err := strconv.ParseInt(itemIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/menu-items/{id} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	var req models.UpdateMenuItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/menu-items/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), itemID, &req)
	if err != nil {
		switch {
		case errors.Is(err, menu.ErrMenuItemNotFound):
			h.logger.Warn("PUT /admin/menu-items/{id} - Menu item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, menu.ErrInvalidInput):
			h.logger.Warn("PUT /admin/menu-items/{id} - Invalid item: item_id=%d, error=%v", itemID, err)
			handlers.RespondBadRequest(w, msgInvalidItem)

		default:
			h.logger.Error("PUT /admin/menu-items/{id} - Failed to update menu item: item_id=%d, error=%v",
				itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/menu-items/{id} - Menu item updated successfully: item_id=%d", itemID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
