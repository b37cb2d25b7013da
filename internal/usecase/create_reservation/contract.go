package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/GH-ReservationService/internal/domain"
	"github.com/m04kA/GH-ReservationService/internal/integrations/mailer"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// ScheduleRepository интерфейс репозитория расписания работы
type ScheduleRepository interface {
	GetByDay(ctx context.Context, dayID string) (*domain.OpeningHours, error)
}

// SettingsRepository интерфейс репозитория настроек ресторана
type SettingsRepository interface {
	GetAll(ctx context.Context) ([]*domain.SystemSetting, error)
}

// MailerClient интерфейс клиента транзакционной почты
type MailerClient interface {
	SendReservationEmail(ctx context.Context, kind mailer.Kind, payload mailer.ReservationPayload) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
