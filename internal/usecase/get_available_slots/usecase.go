package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/GH-ReservationService/internal/domain"
	scheduleRepo "github.com/m04kA/GH-ReservationService/internal/infra/storage/schedule"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	reservationRepo ReservationRepository
	scheduleRepo    ScheduleRepository
	settingsRepo    SettingsRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	scheduleRepo ScheduleRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		scheduleRepo:    scheduleRepo,
		settingsRepo:    settingsRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, mode=%s", req.Date.Format(domain.DateFormat), req.Mode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Дата в прошлом - пустой список без похода в базу
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, Slots: []Slot{}}, nil
	}

	// 4. Получаем настройки ресторана
	settingRows, err := uc.settingsRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	settings := domain.BuildReservationSettings(settingRows)

	// 5. Получаем часы работы на день недели.
	// День без записи в расписании считается закрытым
	dayID := domain.WeekdayID(req.Date)
	hours, err := uc.scheduleRepo.GetByDay(ctx, dayID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrDayNotFound) {
			uc.logger.Info("GetAvailableSlots: no schedule for %s, treating as closed", dayID)
			return &Response{Date: req.Date, Slots: []Slot{}}, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get schedule for %s: %v", dayID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	if !hours.IsWorkable() {
		uc.logger.Info("GetAvailableSlots: restaurant is closed on %s", dayID)
		return &Response{Date: req.Date, Slots: []Slot{}}, nil
	}

	// 6. Генерируем кандидаты времени начала
	starts, err := generateTimeSlots(hours, settings.SlotIntervalMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 7. Получаем бронирования на эту дату (pending и confirmed занимают стол)
	reservations, err := uc.reservationRepo.GetWithFilter(ctx, domain.ReservationsFilter{Date: &req.Date})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 8. Вычисляем занятость столов для каждого слота.
	// Для гостей слоты ближе минимального запаса времени помечаются
	// недоступными, но остаются в списке
	slots := calculateAvailability(starts, reservations, settings, req.Date, now, req.Mode == ModeGuest)

	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s, mode=%s",
		len(slots), req.Date.Format(domain.DateFormat), req.Mode)

	return &Response{Date: req.Date, Slots: slots}, nil
}
