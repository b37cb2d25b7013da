package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/GH-ReservationService/internal/domain"
	settingsRepo "github.com/m04kA/GH-ReservationService/internal/infra/storage/settings"
	"github.com/m04kA/GH-ReservationService/internal/service/settings/models"
)

// Ключи, значения которых обязаны быть положительными целыми числами
var numericKeys = map[string]struct{}{
	domain.SettingTotalTables:         {},
	domain.SettingSeatsPerTable:       {},
	domain.SettingReservationDuration: {},
	domain.SettingTimeSlotInterval:    {},
	domain.SettingMinNotice:           {},
}

// Service сервис для работы с настройками ресторана
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetAll получает все настройки как есть, для админки
func (s *Service) GetAll(ctx context.Context) (*models.SettingsListResponse, error) {
	s.logger.Info("GetAll: fetching all settings")

	rows, err := s.settingsRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(rows), nil
}

// GetBookingConfig получает типизированный срез настроек для формы бронирования
// Отсутствующие и битые значения заменяются дефолтами
func (s *Service) GetBookingConfig(ctx context.Context) (*models.BookingConfigResponse, error) {
	s.logger.Info("GetBookingConfig: fetching booking configuration")

	rows, err := s.settingsRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetBookingConfig: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetBookingConfig - repository error: %v", ErrInternal, err)
	}

	return models.FromReservationSettings(domain.BuildReservationSettings(rows)), nil
}

// UpdateValue обновляет значение настройки по ключу
// Для числовых ключей значение проверяется на положительное целое
func (s *Service) UpdateValue(ctx context.Context, key string, req *models.UpdateSettingRequest) (*models.SettingResponse, error) {
	s.logger.Info("UpdateValue: updating setting %q", key)

	value := strings.TrimSpace(req.Value)
	if value == "" {
		s.logger.Warn("UpdateValue: empty value for setting %q", key)
		return nil, fmt.Errorf("%w: value is required", ErrInvalidInput)
	}

	if _, numeric := numericKeys[key]; numeric {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 {
			s.logger.Warn("UpdateValue: invalid numeric value %q for setting %q", value, key)
			return nil, fmt.Errorf("%w: %s must be a positive integer", ErrInvalidInput, key)
		}
	}

	if err := s.settingsRepo.UpdateValue(ctx, key, value); err != nil {
		if errors.Is(err, settingsRepo.ErrSettingNotFound) {
			s.logger.Warn("UpdateValue: setting %q not found", key)
			return nil, ErrSettingNotFound
		}
		s.logger.Error("UpdateValue: repository error for setting %q: %v", key, err)
		return nil, fmt.Errorf("%w: UpdateValue - repository error: %v", ErrInternal, err)
	}

	updated, err := s.settingsRepo.GetByKey(ctx, key)
	if err != nil {
		s.logger.Error("UpdateValue: failed to re-read setting %q: %v", key, err)
		return nil, fmt.Errorf("%w: UpdateValue - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateValue: successfully updated setting %q", key)
	return models.FromDomainSetting(updated), nil
}
