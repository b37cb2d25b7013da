package get_admin_menu

import (
	"net/http"

	"github.com/m04kA/GH-ReservationService/internal/api/handlers"
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

// Handle GET /api/v1/admin/menu-items
// В отличие от публичного меню возвращает и скрытые позиции
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/menu-items - Failed to get menu items: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/menu-items - Menu items retrieved successfully: items_count=%d", len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, result)
}
