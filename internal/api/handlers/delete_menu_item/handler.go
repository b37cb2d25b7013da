package delete_menu_item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/GH-ReservationService/internal/api/handlers"
	"github.com/m04kA/GH-ReservationService/internal/service/menu"
)

const (
	msgInvalidItemID = "некорректный ID позиции меню"
	msgNotFound      = "позиция меню не найдена"
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

// Handle DELETE /api/v1/admin/menu-items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	itemIDStr := vars["itemId"]

	itemID, err := strconv.ParseInt(itemIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/menu-items/{id} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	if err := h.service.Delete(r.Context(), itemID); err != nil {
		switch {
		case errors.Is(err, menu.ErrMenuItemNotFound):
			h.logger.Warn("DELETE /admin/menu-items/{id} - Menu item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/menu-items/{id} - Failed to delete menu item: item_id=%d, error=%v",
				itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/menu-items/{id} - Menu item deleted successfully: item_id=%d", itemID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
