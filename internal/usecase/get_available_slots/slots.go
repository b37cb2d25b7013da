package get_available_slots

import (
	"time"

	"github.com/m04kA/GH-ReservationService/internal/domain"
	"github.com/m04kA/GH-ReservationService/pkg/types"
)

// generateTimeSlots генерирует список всех кандидатов времени начала на день
// Слоты идут от открытия с шагом intervalMinutes, пока время начала СТРОГО
// раньше закрытия. Конец бронирования за время закрытия не проверяется:
// последняя посадка возможна вплоть до последнего слота перед закрытием.
func generateTimeSlots(hours *domain.OpeningHours, intervalMinutes int) ([]types.TimeString, error) {
	if !hours.IsWorkable() {
		return []types.TimeString{}, nil
	}

	if err := hours.Open.Validate(); err != nil {
		return nil, err
	}
	if err := hours.Close.Validate(); err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0)
	current := hours.Open

	for current.IsBefore(hours.Close) {
		slots = append(slots, current)

		next, err := current.AddMinutes(intervalMinutes)
		if err != nil {
			return nil, err
		}
		// AddMinutes заворачивается через полночь; остановка по IsBefore
		// тогда сработала бы некорректно, поэтому выходим явно
		if !next.IsAfter(current) {
			break
		}
		current = next
	}

	return slots, nil
}

// meetsNotice проверяет, что до начала слота осталось не меньше
// noticeMinutes. Сравнение идёт по полной дате-времени, поэтому для
// завтрашних дат проверка прозрачна, а для сегодняшних закрывает
// ближайшие слоты.
func meetsNotice(slot types.TimeString, date time.Time, now time.Time, noticeMinutes int) bool {
	startAt, err := slot.OnDate(date)
	if err != nil {
		return false
	}
	return startAt.Sub(now) >= time.Duration(noticeMinutes)*time.Minute
}

// calculateAvailability вычисляет занятость столов для каждого слота.
// Слоты ближе минимального запаса времени остаются в списке, но помечаются
// недоступными независимо от количества свободных столов: гость видит
// полную сетку дня.
func calculateAvailability(
	slots []types.TimeString,
	reservations []*domain.Reservation,
	settings domain.ReservationSettings,
	date time.Time,
	now time.Time,
	applyNotice bool,
) []Slot {
	result := make([]Slot, len(slots))

	for i, slotStart := range slots {
		occupied := countOverlappingReservations(slotStart, settings.DurationMinutes, reservations)

		remaining := settings.TotalTables - occupied
		if remaining < 0 {
			remaining = 0
		}

		available := remaining > 0
		if applyNotice && !meetsNotice(slotStart, date, now, settings.MinNoticeMinutes) {
			available = false
		}

		result[i] = Slot{
			StartTime:       slotStart,
			DurationMinutes: settings.DurationMinutes,
			Available:       available,
			TablesRemaining: remaining,
			TotalTables:     settings.TotalTables,
		}
	}

	return result
}

// countOverlappingReservations подсчитывает бронирования, пересекающиеся со слотом
// Каждое бронирование занимает один стол на durationMinutes от своего начала.
// Пересечение есть только если интервалы действительно накладываются:
// если бронирование заканчивается ровно там, где начинается слот
// (или наоборот) - это НЕ пересечение.
//
// Примеры (duration = 120):
// - Слот 18:00-20:00, бронирование 19:00-21:00 → ЕСТЬ пересечение
// - Слот 18:00-20:00, бронирование 16:00-18:00 → НЕТ пересечения (граничат)
// - Слот 18:00-20:00, бронирование 20:00-22:00 → НЕТ пересечения (граничат)
func countOverlappingReservations(
	slotStart types.TimeString,
	durationMinutes int,
	reservations []*domain.Reservation,
) int {
	slotEnd, err := slotStart.AddMinutes(durationMinutes)
	if err != nil {
		// Если не можем вычислить конец слота, считаем что пересечений нет
		return 0
	}

	count := 0

	for _, res := range reservations {
		// Битая запись времени трактуется как начало в полночь
		resStart := res.StartTimeOrDefault()
		resEnd, err := resStart.AddMinutes(durationMinutes)
		if err != nil {
			continue
		}

		// Интервалы пересекаются, только если:
		// - начало бронирования СТРОГО раньше конца слота И
		// - конец бронирования СТРОГО позже начала слота
		if resStart.IsBefore(slotEnd) && resEnd.IsAfter(slotStart) {
			count++
		}
	}

	return count
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
