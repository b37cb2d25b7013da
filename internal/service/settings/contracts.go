package settings

import (
	"context"

	"github.com/m04kA/GH-ReservationService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	GetAll(ctx context.Context) ([]*domain.SystemSetting, error)
	GetByKey(ctx context.Context, key string) (*domain.SystemSetting, error)
	UpdateValue(ctx context.Context, key string, value string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
