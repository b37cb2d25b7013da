package get_admin_menu

import (
	"context"

	"github.com/m04kA/GH-ReservationService/internal/service/menu/models"
)

type MenuService interface {
	GetAll(ctx context.Context) (*models.MenuListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
