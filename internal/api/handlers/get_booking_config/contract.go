package get_booking_config

import (
	"context"

	"github.com/m04kA/GH-ReservationService/internal/service/settings/models"
)

type SettingsService interface {
	GetBookingConfig(ctx context.Context) (*models.BookingConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
