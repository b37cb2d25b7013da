package get_opening_hours

import (
	"context"

	"github.com/m04kA/GH-ReservationService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetAll(ctx context.Context) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
