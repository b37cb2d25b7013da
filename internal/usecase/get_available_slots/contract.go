package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/GH-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetWithFilter получает бронирования по фильтру (дата, статус)
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// ScheduleRepository интерфейс репозитория расписания работы
type ScheduleRepository interface {
	// GetByDay получает часы работы на день недели ("monday" ... "sunday")
	GetByDay(ctx context.Context, dayID string) (*domain.OpeningHours, error)
}

// SettingsRepository интерфейс репозитория настроек ресторана
type SettingsRepository interface {
	GetAll(ctx context.Context) ([]*domain.SystemSetting, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
