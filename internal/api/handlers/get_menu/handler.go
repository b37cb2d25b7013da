package get_menu

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

// Handle GET /api/v1/menu
// Query params: category (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var category *string
	if c := r.URL.Query().Get("category"); c != "" {
		category = &c
	}

	result, err := h.service.GetPublicMenu(r.Context(), category)
	if err != nil {
		h.logger.Error("GET /menu - Failed to get menu: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /menu - Menu retrieved successfully: items_count=%d", len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, result)
}
