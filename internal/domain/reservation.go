package domain

import (
	"time"

	"github.com/m04kA/GH-ReservationService/pkg/types"
)

// ReservationStatus represents the status of a table reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
)

// IsValid returns true for a known reservation status.
func (s ReservationStatus) IsValid() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Toggled returns the opposite status (pending <-> confirmed).
func (s ReservationStatus) Toggled() ReservationStatus {
	if s == StatusConfirmed {
		return StatusPending
	}
	return StatusConfirmed
}

// Reservation represents a table reservation in the system
type Reservation struct {
	ID              int64
	Date            time.Time // Календарный день (без времени)
	Time            types.TimeString
	Name            string
	Email           string
	Phone           *string
	Guests          int
	SpecialRequests *string
	Status          ReservationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StartTimeOrDefault returns the stored start time, or "00:00" when the
// value is missing or malformed. Битые записи не отбрасываем, а считаем
// занимающими стол с полуночи.
func (r *Reservation) StartTimeOrDefault() types.TimeString {
	if r.Time.IsZero() || r.Time.Validate() != nil {
		return DefaultReservationTime
	}
	return r.Time
}

// ReservationsFilter фильтр для выборки бронирований
type ReservationsFilter struct {
	Date   *time.Time         // Конкретная дата (опционально, если nil - все даты)
	Status *ReservationStatus // Фильтр по статусу (опционально)
}
