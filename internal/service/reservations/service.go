package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/GH-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/GH-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/GH-ReservationService/internal/integrations/mailer"
	"github.com/m04kA/GH-ReservationService/internal/service/reservations/models"
)

// mailTimeout ограничивает фоновую отправку писем о смене статуса
const mailTimeout = 30 * time.Second

// Service сервис для работы с бронированиями из админки
type Service struct {
	reservationRepo ReservationRepository
	mailerClient    MailerClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	mailerClient MailerClient,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		mailerClient:    mailerClient,
		logger:          logger,
	}
}

// List получает бронирования с фильтрацией по дате и статусу
// Без даты возвращаются все бронирования (обзор в дашборде),
// с датой - список на день для календаря
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations, date=%v, status=%v", req.Date, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// UpdateStatus меняет статус бронирования
// Без явного статуса в запросе выполняется переключение pending <-> confirmed.
// Повторное применение одного и того же явного статуса безопасно.
// С флагом notify гостю уходит письмо: confirmed → "подтверждено",
// pending → "отклонено"
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateStatus: updating reservation id=%d, status=%v, notify=%t", id, req.Status, req.Notify)

	// Получаем бронирование
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Определяем целевой статус
	var newStatus domain.ReservationStatus
	if req.Status != nil {
		newStatus, err = models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", *req.Status, id)
			return nil, ErrInvalidStatus
		}
	} else {
		newStatus = reservation.Status.Toggled()
	}

	// Обновляем статус
	if err := s.reservationRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found during update", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated reservation id=%d to status=%s", id, newStatus)

	reservation.Status = newStatus

	// Письмо гостю о решении отправляется в фоне и не влияет на результат
	if req.Notify {
		s.dispatchStatusEmail(reservation, newStatus)
	}

	return models.FromDomainReservation(reservation), nil
}

// Delete удаляет бронирование насовсем
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting reservation id=%d", id)

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%d", id)
	return nil
}

// dispatchStatusEmail отправляет гостю письмо о смене статуса fire-and-forget
func (s *Service) dispatchStatusEmail(r *domain.Reservation, status domain.ReservationStatus) {
	kind := mailer.KindConfirmed
	if status == domain.StatusPending {
		kind = mailer.KindDeclined
	}

	payload := mailer.ReservationPayload{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Guests:          r.Guests,
		Date:            r.Date.Format(domain.DateFormat),
		Time:            r.Time.String(),
		SpecialRequests: r.SpecialRequests,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
		defer cancel()

		if err := s.mailerClient.SendReservationEmail(ctx, kind, payload); err != nil {
			s.logger.Error("UpdateStatus: failed to send %s email for reservation id=%d: %v", kind, r.ID, err)
		}
	}()
}
