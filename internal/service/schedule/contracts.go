package schedule

import (
	"context"

	"github.com/m04kA/GH-ReservationService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания работы
type ScheduleRepository interface {
	GetAll(ctx context.Context) ([]*domain.OpeningHours, error)
	GetByDay(ctx context.Context, dayID string) (*domain.OpeningHours, error)
	Update(ctx context.Context, h *domain.OpeningHours) error
	InsertDefaults(ctx context.Context, hours []*domain.OpeningHours) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
