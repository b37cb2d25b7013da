package domain

import "github.com/m04kA/GH-ReservationService/pkg/types"

// TimeSlot represents a candidate reservation start time within one day's
// open window. Не персистится, пересчитывается на каждый выбор даты.
type TimeSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Available       bool
	TablesRemaining int // Свободные столы на этот слот
	TotalTables     int // Общее количество столов
}

// IsFull returns true if no tables remain for the slot.
func (s *TimeSlot) IsFull() bool {
	return s.TablesRemaining <= 0
}

// IsPartiallyBooked returns true if some but not all tables are taken.
func (s *TimeSlot) IsPartiallyBooked() bool {
	return s.TablesRemaining > 0 && s.TablesRemaining < s.TotalTables
}
