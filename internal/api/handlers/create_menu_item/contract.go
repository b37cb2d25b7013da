package create_menu_item

import (
	"context"

	"github.com/m04kA/GH-ReservationService/internal/service/menu/models"
)

type MenuService interface {
	Create(ctx context.Context, req *models.CreateMenuItemRequest) (*models.MenuItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
