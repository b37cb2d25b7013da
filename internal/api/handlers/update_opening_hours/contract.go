package update_opening_hours

import (
	"context"

	"github.com/m04kA/GH-ReservationService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateDay(ctx context.Context, dayID string, req *models.UpdateDayRequest) (*models.DayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
