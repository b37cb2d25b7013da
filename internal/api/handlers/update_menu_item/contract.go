package update_menu_item

import (
	"context"

	"github.com/m04kA/GH-ReservationService/internal/service/menu/models"
)

type MenuService interface {
	Update(ctx context.Context, id int64, req *models.UpdateMenuItemRequest) (*models.MenuItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
