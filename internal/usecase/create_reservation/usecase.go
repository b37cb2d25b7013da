package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/GH-ReservationService/internal/domain"
	scheduleRepo "github.com/m04kA/GH-ReservationService/internal/infra/storage/schedule"
	"github.com/m04kA/GH-ReservationService/internal/integrations/mailer"
)

// mailTimeout ограничивает фоновую отправку писем после коммита
const mailTimeout = 30 * time.Second

// UseCase use case для создания бронирования столика
type UseCase struct {
	reservationRepo ReservationRepository
	scheduleRepo    ScheduleRepository
	settingsRepo    SettingsRepository
	mailerClient    MailerClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	scheduleRepo ScheduleRepository,
	settingsRepo SettingsRepository,
	mailerClient MailerClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		scheduleRepo:    scheduleRepo,
		settingsRepo:    settingsRepo,
		mailerClient:    mailerClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка занятости столов и вставка идут в одной сериализуемой транзакции,
// чтобы две параллельные заявки не заняли последний стол одновременно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: date=%s, time=%s, guests=%d, source=%s",
		req.Date.Format(domain.DateFormat), req.Time, req.Guests, req.Source)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Дата не должна быть в прошлом
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateReservation: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем настройки ресторана
		settingRows, err := uc.settingsRepo.GetAll(txCtx)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get settings: %v", err)
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		settings := domain.BuildReservationSettings(settingRows)

		// 4.2. Количество гостей не должно превышать вместимость стола
		if req.Guests > settings.SeatsPerTable {
			uc.logger.Warn("CreateReservation: %d guests exceed table capacity %d",
				req.Guests, settings.SeatsPerTable)
			return fmt.Errorf("%w: max %d guests per table", ErrTooManyGuests, settings.SeatsPerTable)
		}

		// 4.3. Получаем часы работы на день недели.
		// День без записи в расписании считается закрытым
		dayID := domain.WeekdayID(req.Date)
		hours, err := uc.scheduleRepo.GetByDay(txCtx, dayID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrDayNotFound) {
				uc.logger.Warn("CreateReservation: no schedule for %s, treating as closed", dayID)
				return ErrRestaurantClosed
			}
			uc.logger.Error("CreateReservation: failed to get schedule for %s: %v", dayID, err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		if !hours.IsWorkable() {
			uc.logger.Warn("CreateReservation: restaurant is closed on %s", dayID)
			return ErrRestaurantClosed
		}

		// 4.4. Время должно попадать в рабочее окно
		if err := validateTimeInWindow(req.Time, hours); err != nil {
			uc.logger.Warn("CreateReservation: time validation failed: %v", err)
			return err
		}

		// 4.5. Для гостей проверяем минимальный запас времени до брони
		if req.Source == SourceGuest {
			if err := validateNotice(req.Date, req.Time, now, settings.MinNoticeMinutes); err != nil {
				uc.logger.Warn("CreateReservation: notice validation failed: %v", err)
				return err
			}
		}

		// 4.6. Получаем бронирования на эту дату с блокировкой (FOR UPDATE)
		reservations, err := uc.reservationRepo.GetWithFilter(txCtx, domain.ReservationsFilter{Date: &req.Date})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 4.7. Проверяем, что остался свободный стол
		occupied, err := countOverlappingReservations(req.Time, settings.DurationMinutes, reservations)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to count overlapping reservations: %v", err)
			return fmt.Errorf("%w: failed to count overlapping reservations: %v", ErrInternal, err)
		}

		if occupied >= settings.TotalTables {
			uc.logger.Warn("CreateReservation: slot %s not available, %d/%d tables taken",
				req.Time, occupied, settings.TotalTables)
			return ErrSlotNotAvailable
		}

		uc.logger.Info("CreateReservation: slot %s available, %d/%d tables taken",
			req.Time, occupied, settings.TotalTables)

		// 4.8. Гостевая заявка ждет подтверждения, ручная бронь подтверждена сразу
		status := domain.StatusPending
		if req.Source == SourceStaff {
			status = domain.StatusConfirmed
		}

		reservation := &domain.Reservation{
			Date:            req.Date,
			Time:            req.Time,
			Name:            strings.TrimSpace(req.Name),
			Email:           strings.TrimSpace(req.Email),
			Phone:           req.Phone,
			Guests:          req.Guests,
			SpecialRequests: req.SpecialRequests,
			Status:          status,
		}

		// 4.9. Сохраняем бронирование
		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, status=%s",
		result.ID, result.Status)

	// 5. Для гостевых заявок отправляем письма в фоне: письмо гостю и
	// уведомление ресторану. Ошибки почты не влияют на результат запроса
	if req.Source == SourceGuest {
		uc.dispatchReceivedEmails(result)
	}

	return &Response{
		ID:              result.ID,
		Date:            result.Date,
		Time:            result.Time,
		Name:            result.Name,
		Email:           result.Email,
		Phone:           result.Phone,
		Guests:          result.Guests,
		SpecialRequests: result.SpecialRequests,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// dispatchReceivedEmails отправляет письма о полученной заявке fire-and-forget.
// Используется отдельный контекст: запрос к этому моменту уже завершен.
func (uc *UseCase) dispatchReceivedEmails(res *domain.Reservation) {
	payload := mailer.ReservationPayload{
		Name:            res.Name,
		Email:           res.Email,
		Phone:           res.Phone,
		Guests:          res.Guests,
		Date:            res.Date.Format(domain.DateFormat),
		Time:            res.Time.String(),
		SpecialRequests: res.SpecialRequests,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
		defer cancel()

		if err := uc.mailerClient.SendReservationEmail(ctx, mailer.KindReceived, payload); err != nil {
			uc.logger.Error("CreateReservation: failed to send emails for reservation id=%d: %v", res.ID, err)
		}
	}()
}
