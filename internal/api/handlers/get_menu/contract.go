package get_menu

import (
	"context"

	"github.com/m04kA/GH-ReservationService/internal/service/menu/models"
)

type MenuService interface {
	GetPublicMenu(ctx context.Context, category *string) (*models.MenuListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
