package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/GH-ReservationService/internal/domain"
	scheduleRepo "github.com/m04kA/GH-ReservationService/internal/infra/storage/schedule"
	"github.com/m04kA/GH-ReservationService/internal/service/schedule/models"
)

// Service сервис для работы с расписанием ресторана
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// GetAll получает расписание на всю неделю
// Пустая таблица засевается дефолтным расписанием (09:00-22:00 ежедневно),
// чтобы публичная страница и админка всегда видели семь дней
func (s *Service) GetAll(ctx context.Context) (*models.ScheduleResponse, error) {
	s.logger.Info("GetAll: fetching weekly schedule")

	hours, err := s.scheduleRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	if len(hours) == 0 {
		s.logger.Info("GetAll: schedule is empty, seeding defaults")

		defaults := domain.DefaultOpeningHours()
		if err := s.scheduleRepo.InsertDefaults(ctx, defaults); err != nil {
			s.logger.Error("GetAll: failed to seed default schedule: %v", err)
			return nil, fmt.Errorf("%w: GetAll - failed to seed schedule: %v", ErrInternal, err)
		}
		hours = defaults
	}

	return models.FromDomainSchedule(hours), nil
}

// UpdateDay обновляет часы работы одного дня недели
func (s *Service) UpdateDay(ctx context.Context, dayID string, req *models.UpdateDayRequest) (*models.DayResponse, error) {
	s.logger.Info("UpdateDay: updating %s: open=%s, close=%s, closed=%t", dayID, req.Open, req.Close, req.Closed)

	dayName, ok := weekdayName(dayID)
	if !ok {
		s.logger.Warn("UpdateDay: unknown weekday %q", dayID)
		return nil, ErrDayNotFound
	}

	hours, err := req.ToDomain(dayID, dayName)
	if err != nil {
		s.logger.Warn("UpdateDay: validation failed for %s: %v", dayID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.scheduleRepo.Update(ctx, hours); err != nil {
		if errors.Is(err, scheduleRepo.ErrDayNotFound) {
			// Строки дня ещё нет: засеваем неделю и повторяем обновление
			s.logger.Info("UpdateDay: %s not present, seeding defaults first", dayID)
			if seedErr := s.scheduleRepo.InsertDefaults(ctx, domain.DefaultOpeningHours()); seedErr != nil {
				s.logger.Error("UpdateDay: failed to seed schedule: %v", seedErr)
				return nil, fmt.Errorf("%w: UpdateDay - failed to seed schedule: %v", ErrInternal, seedErr)
			}
			err = s.scheduleRepo.Update(ctx, hours)
		}
		if err != nil {
			s.logger.Error("UpdateDay: repository error for %s: %v", dayID, err)
			return nil, fmt.Errorf("%w: UpdateDay - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateDay: successfully updated %s", dayID)
	return models.FromDomainDay(hours), nil
}

// weekdayName возвращает отображаемое имя дня по его ключу
func weekdayName(dayID string) (string, bool) {
	for _, wd := range domain.Weekdays {
		if wd.ID == dayID {
			return wd.Day, true
		}
	}
	return "", false
}
