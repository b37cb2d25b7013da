package get_settings

import (
	"context"

	"github.com/m04kA/GH-ReservationService/internal/service/settings/models"
)

type SettingsService interface {
	GetAll(ctx context.Context) (*models.SettingsListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
