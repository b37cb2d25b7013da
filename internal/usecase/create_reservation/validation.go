package create_reservation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/GH-ReservationService/internal/domain"
	"github.com/m04kA/GH-ReservationService/pkg/types"
)

// Формат email проверяется мягко: непустая локальная часть, @, домен с точкой
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Source != SourceGuest && req.Source != SourceStaff {
		return fmt.Errorf("%w: unknown source %q", ErrInvalidInput, req.Source)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}

	if req.Guests < domain.MinGuests {
		return fmt.Errorf("%w: guests must be at least %d", ErrInvalidInput, domain.MinGuests)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: special requests must not exceed %d characters",
			ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}

	return nil
}

// validateTimeInWindow проверяет, что время начала попадает в рабочее окно дня.
// Кратность шагу слотов не требуется: админка может вводить произвольное
// время, сетка слотов - только подсказка для гостя.
func validateTimeInWindow(start types.TimeString, hours *domain.OpeningHours) error {
	if start.IsBefore(hours.Open) || !start.IsBefore(hours.Close) {
		return fmt.Errorf("%w: %s is outside %s-%s", ErrOutsideOpeningHours, start, hours.Open, hours.Close)
	}
	return nil
}

// validateNotice проверяет, что до начала брони осталось не меньше
// noticeMinutes. Сравнение по полной дате-времени, как в выдаче слотов.
func validateNotice(date time.Time, start types.TimeString, now time.Time, noticeMinutes int) error {
	startAt, err := start.OnDate(date)
	if err != nil {
		return fmt.Errorf("%w: failed to resolve start time: %v", ErrInternal, err)
	}

	if startAt.Sub(now) < time.Duration(noticeMinutes)*time.Minute {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, noticeMinutes)
	}

	return nil
}

// countOverlappingReservations подсчитывает бронирования, пересекающиеся с запрошенным временем
// Строгие неравенства: граничащие интервалы не считаются пересечением.
func countOverlappingReservations(
	start types.TimeString,
	durationMinutes int,
	reservations []*domain.Reservation,
) (int, error) {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return 0, err
	}

	count := 0

	for _, res := range reservations {
		resStart := res.StartTimeOrDefault()
		resEnd, err := resStart.AddMinutes(durationMinutes)
		if err != nil {
			continue
		}

		if resStart.IsBefore(end) && resEnd.IsAfter(start) {
			count++
		}
	}

	return count, nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
